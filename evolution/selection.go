package evolution

import (
	"math/rand"
	"sort"
)

// SelectElite returns the top n individuals by fitness — the preserved
// fraction of spec.md §4.5's maximizing selector.
func SelectElite(pop *Population, n int) []*Individual {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil
	}

	if n > len(pop.Individuals) {
		n = len(pop.Individuals)
	}
	if n < 1 {
		return nil
	}

	// Sort by fitness (descending)
	sorted := make([]*Individual, len(pop.Individuals))
	copy(sorted, pop.Individuals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Fitness > sorted[j].Fitness
	})

	return sorted[:n]
}

// RankSelection picks one parent with probability proportional to its
// fitness rank (worst=1 .. best=n) rather than its raw fitness, per
// spec.md §4.5: "fills the remainder stochastically in proportion to
// fitness rank." Rank-based weighting keeps selection pressure stable
// even when fitness values span the huge violation-penalty range C4
// introduces.
func RankSelection(pop *Population, rng *rand.Rand) *Individual {
	if pop == nil || len(pop.Individuals) == 0 {
		return nil
	}

	n := len(pop.Individuals)

	// Sort by fitness (ascending - worst first)
	sorted := make([]*Individual, n)
	copy(sorted, pop.Individuals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Fitness < sorted[j].Fitness
	})

	// Assign ranks: worst=1, best=n
	// Total rank sum = n*(n+1)/2
	totalRank := float64(n * (n + 1) / 2)

	// Spin based on rank
	spin := rng.Float64() * totalRank
	var cumulative float64
	for rank, ind := range sorted {
		cumulative += float64(rank + 1)
		if cumulative >= spin {
			return ind
		}
	}

	return sorted[n-1]
}
