package evolution

import (
	"math/rand"

	"github.com/craftsim/craftsolve/fitness"
	"github.com/craftsim/craftsolve/genome"
)

// DiversityThreshold is the threshold below which diversity is considered
// critical (spec.md §4.5's stagnation/diversity-crisis handling).
const DiversityThreshold = 0.1

// Individual pairs a genome with its evaluation result.
type Individual struct {
	Genome    genome.Genome
	Fitness   float64
	Evaluated bool
	Metrics   fitness.Metrics
}

// Clone creates a deep copy of the individual.
func (ind *Individual) Clone() *Individual {
	return &Individual{
		Genome:    ind.Genome.Clone(),
		Fitness:   ind.Fitness,
		Evaluated: ind.Evaluated,
		Metrics:   ind.Metrics,
	}
}

// Population is a generation's worth of individuals.
type Population struct {
	Individuals []*Individual
	Generation  int
}

// NewPopulation creates a new population from a list of individuals.
func NewPopulation(individuals []*Individual) *Population {
	return &Population{Individuals: individuals}
}

// Size returns the number of individuals in the population.
func (p *Population) Size() int {
	return len(p.Individuals)
}

// GetBestIndividual returns the individual with the highest fitness.
func (p *Population) GetBestIndividual() *Individual {
	if len(p.Individuals) == 0 {
		return nil
	}
	best := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

// GetAverageFitness returns the average fitness of evaluated individuals.
func (p *Population) GetAverageFitness() float64 {
	var sum float64
	var count int
	for _, ind := range p.Individuals {
		if ind.Evaluated {
			sum += ind.Fitness
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// ComputeDiversity calculates population diversity using pairwise genome
// distances: all pairs for populations of 50 or fewer, a sample of 100
// random pairs otherwise.
func (p *Population) ComputeDiversity() float64 {
	if len(p.Individuals) < 2 {
		return 0.0
	}

	var totalDistance float64
	var pairCount int

	if len(p.Individuals) <= 50 {
		for i := 0; i < len(p.Individuals); i++ {
			for j := i + 1; j < len(p.Individuals); j++ {
				totalDistance += GenomeDistance(p.Individuals[i].Genome, p.Individuals[j].Genome)
				pairCount++
			}
		}
	} else {
		for k := 0; k < 100; k++ {
			i := rand.Intn(len(p.Individuals))
			j := rand.Intn(len(p.Individuals))
			if i == j {
				j = (i + 1) % len(p.Individuals)
			}
			totalDistance += GenomeDistance(p.Individuals[i].Genome, p.Individuals[j].Genome)
			pairCount++
		}
	}

	if pairCount == 0 {
		return 0.0
	}
	return totalDistance / float64(pairCount)
}

// CheckDiversityCrisis returns true if diversity has collapsed.
func (p *Population) CheckDiversityCrisis() bool {
	return p.ComputeDiversity() < DiversityThreshold
}

// GetUnevaluated returns all individuals that haven't been evaluated.
func (p *Population) GetUnevaluated() []*Individual {
	var unevaluated []*Individual
	for _, ind := range p.Individuals {
		if !ind.Evaluated {
			unevaluated = append(unevaluated, ind)
		}
	}
	return unevaluated
}

// SortByFitness returns individuals sorted by fitness (descending).
func (p *Population) SortByFitness() []*Individual {
	sorted := make([]*Individual, len(p.Individuals))
	copy(sorted, p.Individuals)

	for i := 1; i < len(sorted); i++ {
		j := i
		for j > 0 && sorted[j-1].Fitness < sorted[j].Fitness {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
			j--
		}
	}
	return sorted
}

// GenomeDistance computes a normalized distance between two genomes: the
// length difference plus a positional mismatch count over the shared
// prefix, both scaled to [0,1] and averaged.
func GenomeDistance(g1, g2 genome.Genome) float64 {
	shorter, longer := len(g1), len(g2)
	if longer < shorter {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return 0.0
	}

	lengthDiff := float64(longer-shorter) / float64(longer)

	var mismatches int
	for i := 0; i < shorter; i++ {
		if g1[i] != g2[i] {
			mismatches++
		}
	}
	var mismatchRate float64
	if shorter > 0 {
		mismatchRate = float64(mismatches) / float64(shorter)
	}

	return (lengthDiff + mismatchRate) / 2.0
}
