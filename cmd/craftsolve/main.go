// Command craftsolve runs the genetic-algorithm crafting macro solver
// against a Synth description read from JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/craftsim/craftsolve/engine"
	"github.com/craftsim/craftsolve/evolution"
	"github.com/craftsim/craftsolve/internal/config"
	"github.com/craftsim/craftsolve/internal/synthio"
)

var (
	synthPath      string
	configPath     string
	generations    int
	populationSize int
	seed           int64
	workers        int
	verbose        bool
	dumpLog        string
)

func init() {
	flag.StringVar(&synthPath, "synth", "", "path to synth JSON describing the crafting problem (required)")
	flag.StringVar(&configPath, "config", "", "optional YAML tuning file (overrides built-in defaults)")
	flag.IntVar(&generations, "generations", 0, "generation cap (0 = use config default)")
	flag.IntVar(&populationSize, "population-size", 0, "population size (0 = use config default)")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 = use current time)")
	flag.IntVar(&workers, "workers", 0, "number of worker goroutines (0 = auto-detect CPU count)")
	flag.BoolVar(&verbose, "verbose", false, "print per-generation progress")
	flag.StringVar(&dumpLog, "dump-log", "", "write a fixed-width per-action debug log for the best genome to this path")
}

func main() {
	flag.Parse()

	if synthPath == "" {
		fmt.Fprintln(os.Stderr, "craftsolve: -synth is required")
		os.Exit(1)
	}

	f, err := os.Open(synthPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "craftsolve: %v\n", err)
		os.Exit(1)
	}
	synth, err := synthio.Decode(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "craftsolve: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "craftsolve: %v\n", err)
		os.Exit(1)
	}
	if generations > 0 {
		cfg.MaxGenerations = generations
	}
	if populationSize > 0 {
		cfg.PopulationSize = populationSize
	}
	if seed != 0 {
		cfg.RandomSeed = seed
	} else if cfg.RandomSeed == 0 {
		cfg.RandomSeed = time.Now().UnixNano()
	}

	driver := evolution.NewDriver(cfg, synth)
	if workers > 0 {
		driver.Evaluator.NumWorkers = workers
	}

	start := time.Now()
	var result evolution.StepResult
	for {
		result = driver.Step()
		if verbose {
			fmt.Printf("gen %3d | best=%.2f avg=%.2f diversity=%.3f\n",
				result.Stats.Generation, result.Stats.BestFitness, result.Stats.AvgFitness, result.Stats.Diversity)
		}
		if result.Kind != evolution.StepProgress {
			break
		}
	}

	if result.Kind == evolution.StepError {
		fmt.Fprintf(os.Stderr, "craftsolve: %v\n", result.Err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Printf("solved in %s across %d generations\n", elapsed.Round(time.Millisecond), len(driver.StatsHistory))
	if result.Best != nil {
		fmt.Printf("best fitness: %.2f\n", result.Best.Fitness)
		printMacro(result.Best.Genome, synth)
	}

	if dumpLog != "" && result.Best != nil {
		if err := writeDumpLog(dumpLog, result.Best, synth); err != nil {
			fmt.Fprintf(os.Stderr, "craftsolve: dump-log: %v\n", err)
		}
	}
}

func printMacro(g interface{ Decode(*engine.Crafter) []engine.Action }, synth *engine.Synth) {
	actions := g.Decode(&synth.Crafter)
	encoded, _ := json.MarshalIndent(shortNames(actions), "", "  ")
	fmt.Println(string(encoded))
}

func shortNames(actions []engine.Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = engine.DetailsOf(a).ShortName
	}
	return names
}

// writeDumpLog writes the fixed-width per-action trace format this
// solver's original_source carried as a commented-out debug routine
// (sim_synth's '%2d %30s %5.0f %5.0f ...' line), replayed over the
// winning genome.
func writeDumpLog(path string, ind *evolution.Individual, synth *engine.Synth) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	state := engine.NewCraftState(synth)
	actions := ind.Genome.Decode(&synth.Crafter)
	for _, a := range actions {
		state = engine.Apply(state, a, synth)
		state.ClampToSynth(synth)
		details := engine.DetailsOf(a)
		fmt.Fprintf(f, "%2d %30s %5d %5d %8d %8d %5.1f %8d %8d\n",
			state.Step, details.FullName, state.Durability, state.CP,
			state.Progress, state.Quality, state.WastedActions,
			state.TrickUses, state.Reliability)
	}
	return nil
}
