package evolution

import (
	"errors"
	"math/rand"
	"time"

	"github.com/craftsim/craftsolve/engine"
	"github.com/craftsim/craftsolve/genome"
)

// Config tunes a solver run. ElitismRate/MaxStagnationCounter default to
// the original_source's genevo tuning (MaximizeSelector::new(0.85, 18)).
type Config struct {
	PopulationSize       int
	MaxGenerations       int
	ElitismRate          float64
	MaxStagnationCounter int
	RandomSeed           int64
}

// DefaultConfig mirrors original_source/.../simulator.rs's
// CraftSimulator::new tuning.
func DefaultConfig() Config {
	return Config{
		PopulationSize:       100,
		MaxGenerations:       100,
		ElitismRate:          0.85,
		MaxStagnationCounter: 18,
	}
}

// GenerationStats summarizes one completed generation.
type GenerationStats struct {
	Generation  int
	BestFitness float64
	AvgFitness  float64
	Diversity   float64
	Timestamp   time.Time
}

// StepKind tags a Driver.Step() result, mirroring
// original_source/.../simulator.rs's SimStep enum.
type StepKind int

const (
	StepProgress StepKind = iota
	StepSuccess
	StepError
)

func (k StepKind) String() string {
	switch k {
	case StepProgress:
		return "progress"
	case StepSuccess:
		return "success"
	case StepError:
		return "error"
	default:
		return "unknown"
	}
}

// StepResult is the tagged union a Driver.Step() call returns.
type StepResult struct {
	Kind  StepKind
	Stats GenerationStats
	Best  *Individual
	Err   error
}

var errEmptyPopulation = errors.New("evolution: population has no individuals")

// Driver runs the genetic algorithm one generation per Step() call,
// letting a caller interleave reporting, cancellation, or a UI refresh
// between generations instead of blocking for the whole run. Adapted from
// teacher's EvolutionEngine.Evolve() generation loop, restructured behind
// a single externally-driven Step() per spec.md §4.6 / §9's redesign flag.
type Driver struct {
	Config Config
	Synth  *engine.Synth
	Rng    *rand.Rand

	Population   *Population
	Evaluator    *ParallelEvaluator
	Mutator      genome.SizeAndValueMutator
	BestEver     *Individual
	StatsHistory []GenerationStats

	stagnation int
	generation int
}

// NewDriver builds a driver for one solver run against synth.
func NewDriver(config Config, synth *engine.Synth) *Driver {
	seed := config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Driver{
		Config:    config,
		Synth:     synth,
		Rng:       rand.New(rand.NewSource(seed)),
		Evaluator: NewParallelEvaluator(synth, 0),
		Mutator:   genome.NewDefaultMutator(synth.MaxLength),
	}
}

func (d *Driver) initializePopulation() {
	individuals := make([]*Individual, d.Config.PopulationSize)
	for i := range individuals {
		individuals[i] = &Individual{
			Genome: genome.Random(d.Rng, &d.Synth.Crafter, d.Synth.MaxLength),
		}
	}
	d.Population = NewPopulation(individuals)
}

func (d *Driver) createOffspring() []*Individual {
	offspring := make([]*Individual, 0, d.Config.PopulationSize)

	nElite := int(float64(d.Config.PopulationSize) * d.Config.ElitismRate)
	for _, ind := range SelectElite(d.Population, nElite) {
		offspring = append(offspring, ind.Clone())
	}

	for len(offspring) < d.Config.PopulationSize {
		parent1 := RankSelection(d.Population, d.Rng)
		parent2 := RankSelection(d.Population, d.Rng)

		child1, child2 := genome.SinglePointCrossover(d.Rng, parent1.Genome, parent2.Genome)
		child1 = d.Mutator.Mutate(d.Rng, child1, &d.Synth.Crafter)
		child2 = d.Mutator.Mutate(d.Rng, child2, &d.Synth.Crafter)

		offspring = append(offspring, &Individual{Genome: child1})
		if len(offspring) < d.Config.PopulationSize {
			offspring = append(offspring, &Individual{Genome: child2})
		}
	}

	return offspring[:d.Config.PopulationSize]
}

// Step advances the solver by exactly one generation. It reports
// StepProgress for an ordinary generation, StepSuccess once the
// generation cap or stagnation limit is reached, and StepError if the
// population is empty.
func (d *Driver) Step() StepResult {
	if d.Population == nil {
		d.initializePopulation()
		d.Evaluator.EvaluateIndividuals(d.Population.Individuals)
	}

	best := d.Population.GetBestIndividual()
	if best == nil {
		return StepResult{Kind: StepError, Err: errEmptyPopulation}
	}

	if d.BestEver == nil || best.Fitness > d.BestEver.Fitness {
		d.BestEver = best.Clone()
		d.stagnation = 0
	} else {
		d.stagnation++
	}

	stats := GenerationStats{
		Generation:  d.generation,
		BestFitness: best.Fitness,
		AvgFitness:  d.Population.GetAverageFitness(),
		Diversity:   d.Population.ComputeDiversity(),
		Timestamp:   time.Now(),
	}
	d.StatsHistory = append(d.StatsHistory, stats)

	doneByGenerations := d.generation >= d.Config.MaxGenerations
	doneByStagnation := d.Config.MaxStagnationCounter > 0 && d.stagnation >= d.Config.MaxStagnationCounter
	if doneByGenerations || doneByStagnation {
		return StepResult{Kind: StepSuccess, Stats: stats, Best: d.BestEver}
	}

	d.generation++
	d.Population = NewPopulation(d.createOffspring())
	d.Population.Generation = d.generation
	d.Evaluator.EvaluateIndividuals(d.Population.Individuals)

	return StepResult{Kind: StepProgress, Stats: stats, Best: d.BestEver}
}

// Run drives Step() to completion and returns the terminal result.
func (d *Driver) Run() StepResult {
	for {
		res := d.Step()
		if res.Kind != StepProgress {
			return res
		}
	}
}
