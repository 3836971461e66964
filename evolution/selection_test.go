package evolution

import (
	"math/rand"
	"testing"
)

func TestSelectEliteReturnsTopN(t *testing.T) {
	pop := newTestPopulation(1, 2, 3, 4, 5)
	elite := SelectElite(pop, 2)
	if len(elite) != 2 {
		t.Fatalf("len(elite) = %d, want 2", len(elite))
	}
	if elite[0].Fitness != 5 || elite[1].Fitness != 4 {
		t.Fatalf("elite = %+v, want [5, 4]", elite)
	}
}

func TestSelectEliteEmptyPopulation(t *testing.T) {
	if SelectElite(NewPopulation(nil), 3) != nil {
		t.Fatalf("expected nil elite for an empty population")
	}
}

func TestRankSelectionAlwaysReturnsAMember(t *testing.T) {
	pop := newTestPopulation(1, 2, 3, 4, 5)
	rng := rand.New(rand.NewSource(7))

	seen := make(map[float64]bool)
	for i := 0; i < 200; i++ {
		winner := RankSelection(pop, rng)
		if winner == nil {
			t.Fatalf("RankSelection returned nil for a non-empty population")
		}
		seen[winner.Fitness] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected rank selection to pick more than one distinct individual across 200 draws, got %v", seen)
	}
}

func TestRankSelectionFavorsHigherRank(t *testing.T) {
	pop := newTestPopulation(1, 100)
	rng := rand.New(rand.NewSource(3))

	var highCount int
	const trials = 500
	for i := 0; i < trials; i++ {
		if RankSelection(pop, rng).Fitness == 100 {
			highCount++
		}
	}
	if highCount <= trials/2 {
		t.Fatalf("expected the higher-ranked individual to win more than half of %d trials, got %d", trials, highCount)
	}
}

func TestRankSelectionNilForEmptyPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if RankSelection(NewPopulation(nil), rng) != nil {
		t.Fatalf("expected nil for an empty population")
	}
}
