// Package fitness folds a decoded genome through the engine's state
// machine and scores the terminal state, per spec.md §4.4.
package fitness

import (
	"math"

	"github.com/craftsim/craftsolve/engine"
	"github.com/craftsim/craftsolve/genome"
)

// violationWeight is the per-violation penalty weight, ported from
// original_source/.../simulator.rs's calculate_penalties(10000.0).
const violationWeight = 10000.0

// Metrics is the full per-genome evaluation breakdown; the driver's
// selection only needs Fitness, but the rest is useful for reporting and
// for driver Progress events.
type Metrics struct {
	Progress      int
	Quality       int
	CP            int
	Durability    int
	WastedActions float64
	Violations    engine.Violations
	Fitness       int
}

// Evaluate runs g to completion against synth and scores the result.
func Evaluate(g genome.Genome, synth *engine.Synth) Metrics {
	state := engine.NewCraftState(synth)
	actions := g.Decode(&synth.Crafter)
	if len(actions) > synth.MaxLength {
		actions = actions[:synth.MaxLength]
	}
	for _, a := range actions {
		state = engine.Apply(state, a, synth)
		state.ClampToSynth(synth)
	}

	violations := state.CheckViolations(synth)
	m := Metrics{
		Progress:      state.Progress,
		Quality:       state.Quality,
		CP:            state.CP,
		Durability:    state.Durability,
		WastedActions: state.WastedActions,
		Violations:    violations,
	}
	m.Fitness = fitnessOf(&state, synth, violations)
	return m
}

func fitnessOf(state *engine.CraftState, synth *engine.Synth, v engine.Violations) int {
	penalty := 0.0
	for _, ok := range []bool{v.ProgressOK, v.CPOK, v.DurabilityOK, v.TrickOK, v.ReliabilityOK} {
		if !ok {
			penalty += violationWeight
		}
	}
	penalty += state.WastedActions / 20

	var base float64
	if synth.Solver.SolveForCompletion {
		base = float64(state.CP*synth.Solver.RemainderCPFitness + state.Durability*synth.Solver.RemainderDurFitness)
	} else {
		quality := state.Quality
		if quality > synth.Recipe.MaxQuality {
			quality = synth.Recipe.MaxQuality
		}
		base = float64(quality)
	}

	fit := base - penalty
	if state.HeartAndSoulUsed {
		fit -= 1
	}

	safetyThreshold := float64(synth.Recipe.MaxQuality) * (1 + float64(synth.Recipe.SafetyMargin)*0.01)
	if v.ProgressOK && float64(state.Quality) >= safetyThreshold && state.Step > 0 {
		fit *= 1 + 4/float64(state.Step)
	}

	switch {
	case fit > math.MaxInt32:
		return math.MaxInt32
	case fit < math.MinInt32:
		return math.MinInt32
	default:
		return int(fit)
	}
}

// HighestPossible is the theoretical ceiling fitness for a recipe.
func HighestPossible(synth *engine.Synth) int {
	return synth.Recipe.Difficulty + synth.Recipe.MaxQuality*5
}

// LowestPossible mirrors the Rust source's i32::MIN sentinel.
const LowestPossible = math.MinInt32
