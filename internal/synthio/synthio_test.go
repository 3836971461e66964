package synthio

import (
	"strings"
	"testing"

	"github.com/craftsim/craftsolve/engine"
)

const validRequest = `{
	"crafter": {
		"level": 90,
		"craftsmanship": 4000,
		"control": 3800,
		"cp": 600,
		"actions": ["basicSynth", "basicTouch", "mastersMend"]
	},
	"recipe": {
		"level": 90,
		"difficulty": 5000,
		"durability": 80,
		"maxQuality": 10000,
		"progressDivider": 130,
		"qualityDivider": 115
	},
	"maxLength": 30
}`

func TestDecodeValidRequest(t *testing.T) {
	synth, err := Decode(strings.NewReader(validRequest))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if synth.Crafter.Level != 90 {
		t.Fatalf("Level = %d, want 90", synth.Crafter.Level)
	}
	if len(synth.Crafter.Actions) != 3 {
		t.Fatalf("len(Actions) = %d, want 3", len(synth.Crafter.Actions))
	}
	if synth.Crafter.Actions[0] != engine.BasicSynth {
		t.Fatalf("Actions[0] = %v, want BasicSynth", synth.Crafter.Actions[0])
	}
	if synth.Recipe.BaseLevel != synth.Recipe.Level {
		t.Fatalf("BaseLevel = %d, want to default to Level %d", synth.Recipe.BaseLevel, synth.Recipe.Level)
	}
}

func TestDecodeMissingRequiredFieldFails(t *testing.T) {
	const missingCraftsmanship = `{
		"crafter": {"level": 90, "control": 3800, "cp": 600, "actions": ["basicSynth"]},
		"recipe": {"level": 90, "difficulty": 5000, "durability": 80, "maxQuality": 10000, "progressDivider": 130, "qualityDivider": 115},
		"maxLength": 30
	}`
	if _, err := Decode(strings.NewReader(missingCraftsmanship)); err == nil {
		t.Fatalf("expected a validation error for missing craftsmanship")
	}
}

func TestDecodeUnknownActionFails(t *testing.T) {
	const unknownAction = `{
		"crafter": {"level": 90, "craftsmanship": 4000, "control": 3800, "cp": 600, "actions": ["definitelyNotAnAction"]},
		"recipe": {"level": 90, "difficulty": 5000, "durability": 80, "maxQuality": 10000, "progressDivider": 130, "qualityDivider": 115},
		"maxLength": 30
	}`
	if _, err := Decode(strings.NewReader(unknownAction)); err == nil {
		t.Fatalf("expected an error for an unrecognized action name")
	}
}

func TestDecodeMalformedJSONFails(t *testing.T) {
	if _, err := Decode(strings.NewReader("{not json")); err == nil {
		t.Fatalf("expected a decode error for malformed JSON")
	}
}

func TestDecodeMatchesSpecFieldNames(t *testing.T) {
	const fullRequest = `{
		"crafter": {"level": 50, "craftsmanship": 2000, "control": 1800, "cp": 400,
			"specialist": true, "actions": ["basicSynth"]},
		"recipe": {"baseLevel": 45, "level": 50, "difficulty": 3000, "durability": 70,
			"startQuality": 100, "maxQuality": 8000, "safetyMargin": 5,
			"progressDivider": 100, "progressModifier": 90,
			"qualityDivider": 90, "qualityModifier": 80, "stars": true},
		"maxTricksUses": 2, "reliabilityPercent": 50, "maxLength": 25,
		"solver": {"solveForCompletion": true, "remainderCPFitnessValue": 3,
			"remainderDurFitnessValue": 4, "maxStagnationCounter": 10,
			"population": 80, "generations": 40}
	}`

	synth, err := Decode(strings.NewReader(fullRequest))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if synth.Recipe.BaseLevel != 45 {
		t.Fatalf("BaseLevel = %d, want 45", synth.Recipe.BaseLevel)
	}
	if synth.Recipe.StartQuality != 100 {
		t.Fatalf("StartQuality = %d, want 100", synth.Recipe.StartQuality)
	}
	if synth.Recipe.SafetyMargin != 5 {
		t.Fatalf("SafetyMargin = %d, want 5", synth.Recipe.SafetyMargin)
	}
	if synth.Recipe.ProgressModifier != 90 {
		t.Fatalf("ProgressModifier = %d, want 90", synth.Recipe.ProgressModifier)
	}
	if synth.Recipe.QualityModifier != 80 {
		t.Fatalf("QualityModifier = %d, want 80", synth.Recipe.QualityModifier)
	}
	if !synth.Recipe.Stars {
		t.Fatalf("expected Stars to be true")
	}
	if synth.MaxTrickUses != 2 {
		t.Fatalf("MaxTrickUses = %d, want 2", synth.MaxTrickUses)
	}
	if synth.ReliabilityPercent != 50 {
		t.Fatalf("ReliabilityPercent = %d, want 50", synth.ReliabilityPercent)
	}
	if !synth.Solver.SolveForCompletion {
		t.Fatalf("expected SolveForCompletion to be true")
	}
	if synth.Solver.RemainderCPFitness != 3 {
		t.Fatalf("RemainderCPFitness = %d, want 3", synth.Solver.RemainderCPFitness)
	}
	if synth.Solver.RemainderDurFitness != 4 {
		t.Fatalf("RemainderDurFitness = %d, want 4", synth.Solver.RemainderDurFitness)
	}
	if synth.Solver.MaxStagnationCounter != 10 {
		t.Fatalf("MaxStagnationCounter = %d, want 10", synth.Solver.MaxStagnationCounter)
	}
	if synth.Solver.Population != 80 {
		t.Fatalf("Population = %d, want 80", synth.Solver.Population)
	}
	if synth.Solver.Generations != 40 {
		t.Fatalf("Generations = %d, want 40", synth.Solver.Generations)
	}
}
