package evolution

import (
	"runtime"
	"sync"

	"github.com/craftsim/craftsolve/engine"
	"github.com/craftsim/craftsolve/fitness"
)

// evaluationTask is a single genome evaluation assignment.
type evaluationTask struct {
	index int
	ind   *Individual
}

// evaluationResult carries a finished evaluation back to its slot.
type evaluationResult struct {
	index   int
	metrics fitness.Metrics
}

// ParallelEvaluator evaluates a population's unevaluated individuals
// concurrently across a fixed worker pool, reassembling results in their
// original index order so a parallel run is indistinguishable from a
// single-threaded one (spec.md §5).
type ParallelEvaluator struct {
	NumWorkers int
	Synth      *engine.Synth
}

// NewParallelEvaluator creates a new parallel evaluator against a fixed
// synth instance. numWorkers <= 0 auto-detects from runtime.NumCPU().
func NewParallelEvaluator(synth *engine.Synth, numWorkers int) *ParallelEvaluator {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &ParallelEvaluator{NumWorkers: numWorkers, Synth: synth}
}

// EvaluateIndividuals evaluates every unevaluated individual in place.
func (pe *ParallelEvaluator) EvaluateIndividuals(individuals []*Individual) {
	pending := make([]*Individual, 0, len(individuals))
	indices := make([]int, 0, len(individuals))
	for i, ind := range individuals {
		if !ind.Evaluated {
			pending = append(pending, ind)
			indices = append(indices, i)
		}
	}
	if len(pending) == 0 {
		return
	}

	tasks := make(chan evaluationTask, len(pending))
	results := make(chan evaluationResult, len(pending))

	var wg sync.WaitGroup
	for w := 0; w < pe.NumWorkers; w++ {
		wg.Add(1)
		go pe.worker(tasks, results, &wg)
	}

	for i, ind := range pending {
		tasks <- evaluationTask{index: i, ind: ind}
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	metricsBySlot := make([]fitness.Metrics, len(pending))
	for r := range results {
		metricsBySlot[r.index] = r.metrics
	}

	for i, m := range metricsBySlot {
		original := indices[i]
		individuals[original].Fitness = float64(m.Fitness)
		individuals[original].Metrics = m
		individuals[original].Evaluated = true
	}
}

func (pe *ParallelEvaluator) worker(tasks <-chan evaluationTask, results chan<- evaluationResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for t := range tasks {
		m := fitness.Evaluate(t.ind.Genome, pe.Synth)
		results <- evaluationResult{index: t.index, metrics: m}
	}
}
