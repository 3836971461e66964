package genome

import "math/rand"

// SinglePointCrossover recombines two parent genomes at a single cut
// point chosen within the shorter parent's length, producing two
// children. Ported from genevo's SinglePointCrossBreeder as used by
// original_source/.../simulator.rs's CraftSimulator::new.
func SinglePointCrossover(rng *rand.Rand, a, b Genome) (Genome, Genome) {
	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	if shorter < 2 {
		return a.Clone(), b.Clone()
	}

	cut := 1 + rng.Intn(shorter-1)

	childA := make(Genome, 0, len(a))
	childA = append(childA, a[:cut]...)
	childA = append(childA, b[cut:]...)

	childB := make(Genome, 0, len(b))
	childB = append(childB, b[:cut]...)
	childB = append(childB, a[cut:]...)

	return childA, childB
}
