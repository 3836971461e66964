// Package genome implements the flat, bounded byte-sequence chromosome this
// solver evolves: a candidate crafting macro. Gene value 0 is a reserved
// no-op; gene value i in 1..=len(crafter.Actions) indexes
// crafter.Actions[i-1].
package genome

import (
	"math/rand"

	"github.com/craftsim/craftsolve/engine"
)

// Genome is a variable-length action-index sequence, bounded by the
// solver's configured max length (spec.md §4.5).
type Genome []byte

// Random builds a genome of random length in [1, maxLength] with
// uniformly random gene values over the crafter's action alphabet.
func Random(rng *rand.Rand, crafter *engine.Crafter, maxLength int) Genome {
	if maxLength < 1 {
		maxLength = 1
	}
	n := 1 + rng.Intn(maxLength)
	g := make(Genome, n)
	for i := range g {
		g[i] = randomGene(rng, crafter)
	}
	return g
}

func randomGene(rng *rand.Rand, crafter *engine.Crafter) byte {
	if len(crafter.Actions) == 0 {
		return 0
	}
	return byte(1 + rng.Intn(len(crafter.Actions)))
}

// Decode resolves a genome to its concrete, no-op-free action sequence.
// Out-of-range genes (possible after a crossover against a shorter
// crafter's alphabet) are skipped rather than rejected, matching the
// Rust source's tolerant CalcState::get_actions_list.
func (g Genome) Decode(crafter *engine.Crafter) []engine.Action {
	actions := make([]engine.Action, 0, len(g))
	for _, gene := range g {
		if gene == 0 {
			continue
		}
		idx := int(gene) - 1
		if idx < 0 || idx >= len(crafter.Actions) {
			continue
		}
		actions = append(actions, crafter.Actions[idx])
	}
	return actions
}

// Clone returns an independent copy.
func (g Genome) Clone() Genome {
	c := make(Genome, len(g))
	copy(c, g)
	return c
}

// Len is the gene count, including no-ops (mirrors the genevo crate's
// ChromosomeWrapper::genes().len()).
func (g Genome) Len() int { return len(g) }
