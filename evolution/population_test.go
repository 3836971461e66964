package evolution

import (
	"testing"

	"github.com/craftsim/craftsolve/genome"
)

func newTestPopulation(fitnesses ...float64) *Population {
	individuals := make([]*Individual, len(fitnesses))
	for i, f := range fitnesses {
		individuals[i] = &Individual{
			Genome:    genome.Genome{byte(i + 1)},
			Fitness:   f,
			Evaluated: true,
		}
	}
	return NewPopulation(individuals)
}

func TestGetBestIndividual(t *testing.T) {
	pop := newTestPopulation(3, 7, 1, 5)
	best := pop.GetBestIndividual()
	if best.Fitness != 7 {
		t.Fatalf("best fitness = %v, want 7", best.Fitness)
	}
}

func TestGetBestIndividualEmptyPopulation(t *testing.T) {
	pop := NewPopulation(nil)
	if pop.GetBestIndividual() != nil {
		t.Fatalf("expected nil best individual for an empty population")
	}
}

func TestGetAverageFitnessIgnoresUnevaluated(t *testing.T) {
	pop := newTestPopulation(10, 20)
	pop.Individuals = append(pop.Individuals, &Individual{Genome: genome.Genome{9}, Fitness: 1000, Evaluated: false})

	avg := pop.GetAverageFitness()
	if avg != 15 {
		t.Fatalf("average fitness = %v, want 15 (unevaluated individual must not count)", avg)
	}
}

func TestComputeDiversityZeroForIdenticalGenomes(t *testing.T) {
	pop := &Population{Individuals: []*Individual{
		{Genome: genome.Genome{1, 2, 3}},
		{Genome: genome.Genome{1, 2, 3}},
		{Genome: genome.Genome{1, 2, 3}},
	}}
	if d := pop.ComputeDiversity(); d != 0 {
		t.Fatalf("diversity = %v, want 0 for identical genomes", d)
	}
}

func TestComputeDiversityPositiveForDistinctGenomes(t *testing.T) {
	pop := &Population{Individuals: []*Individual{
		{Genome: genome.Genome{1, 1, 1}},
		{Genome: genome.Genome{2, 2, 2, 2}},
	}}
	if d := pop.ComputeDiversity(); d <= 0 {
		t.Fatalf("diversity = %v, want > 0 for distinct genomes", d)
	}
}

func TestSortByFitnessDescending(t *testing.T) {
	pop := newTestPopulation(3, 7, 1, 5)
	sorted := pop.SortByFitness()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Fitness < sorted[i].Fitness {
			t.Fatalf("sorted population is not descending: %+v", sorted)
		}
	}
}

func TestGenomeDistanceZeroForEqualGenomes(t *testing.T) {
	a := genome.Genome{1, 2, 3}
	b := genome.Genome{1, 2, 3}
	if d := GenomeDistance(a, b); d != 0 {
		t.Fatalf("distance = %v, want 0", d)
	}
}

func TestGenomeDistanceNonZeroForDifferentGenomes(t *testing.T) {
	a := genome.Genome{1, 2, 3}
	b := genome.Genome{1, 9, 3, 4}
	if d := GenomeDistance(a, b); d <= 0 || d > 1 {
		t.Fatalf("distance = %v, want in (0,1]", d)
	}
}
