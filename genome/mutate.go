package genome

import (
	"math/rand"

	"github.com/craftsim/craftsolve/engine"
)

// SizeAndValueMutator mutates both gene values and genome length, ported
// from genevo's SizeAndValueMutator as used by
// original_source/.../simulator.rs's CraftSimulator::new
// (SizeAndValueMutator::new(0, n, 1, 50, 0.3)): value range [0, n], genome
// length range [minLength, maxLength], mutation rate applied per gene.
type SizeAndValueMutator struct {
	MinLength int
	MaxLength int
	Rate      float64
}

// NewDefaultMutator mirrors the Rust source's (1, 50, 0.3) tuning, except
// that the maximum length is the maxLength argument rather than a fixed 50.
func NewDefaultMutator(maxLength int) SizeAndValueMutator {
	return SizeAndValueMutator{MinLength: 1, MaxLength: maxLength, Rate: 0.3}
}

// Mutate returns a mutated clone. Each existing gene independently rolls
// against Rate; on a hit it is replaced, deleted, or a new gene is
// inserted before it, with equal odds, subject to the length bounds. An
// insertion is skipped once MaxLength is reached; a deletion is skipped
// once MinLength would be violated.
func (m SizeAndValueMutator) Mutate(rng *rand.Rand, g Genome, crafter *engine.Crafter) Genome {
	out := make(Genome, 0, len(g)+2)
	deleteBudget := len(g) - m.MinLength
	insertBudget := m.MaxLength - len(g)

	// Mutated values span [0, n], so a mutation may introduce the no-op gene.
	randomValue := func() byte { return byte(rng.Intn(len(crafter.Actions) + 1)) }

	for _, gene := range g {
		if rng.Float64() >= m.Rate {
			out = append(out, gene)
			continue
		}
		switch rng.Intn(3) {
		case 0: // replace
			out = append(out, randomValue())
		case 1: // delete
			if deleteBudget > 0 {
				deleteBudget--
				continue
			}
			out = append(out, gene)
		case 2: // insert before
			if insertBudget > 0 {
				insertBudget--
				out = append(out, randomValue(), gene)
			} else {
				out = append(out, gene)
			}
		}
	}

	for len(out) < m.MinLength {
		out = append(out, randomValue())
	}
	if len(out) > m.MaxLength {
		out = out[:m.MaxLength]
	}
	return out
}
