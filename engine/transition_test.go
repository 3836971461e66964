package engine

import "testing"

func weaverSynth() *Synth {
	return &Synth{
		Crafter: Crafter{
			Level: 9, Craftsmanship: 110, Control: 100, CP: 180,
			Actions: []Action{BasicSynth, BasicTouch, MastersMend},
		},
		Recipe: Recipe{
			BaseLevel: 10, Level: 10, Difficulty: 45, Durability: 60,
			MaxQuality: 250, ProgressDivider: 50, QualityDivider: 30,
		},
		MaxLength: 10,
	}
}

// S1 — trivial finish.
func TestApplyTrivialFinish(t *testing.T) {
	synth := weaverSynth()
	state := NewCraftState(synth)

	state = Apply(state, BasicSynth, synth)
	state.ClampToSynth(synth)
	state = Apply(state, BasicSynth, synth)
	state.ClampToSynth(synth)

	v := state.CheckViolations(synth)
	if state.Progress < synth.Recipe.Difficulty {
		t.Fatalf("progress %d did not reach difficulty %d", state.Progress, synth.Recipe.Difficulty)
	}
	if !v.ProgressOK {
		t.Fatalf("expected progress_ok, got violations %+v", v)
	}
	if state.Durability != 40 {
		t.Fatalf("durability = %d, want 40", state.Durability)
	}
}

// S2 — empty/no-op genome.
func TestApplyEmptyGenomeLeavesStateUnchanged(t *testing.T) {
	synth := weaverSynth()
	initial := NewCraftState(synth)

	// No Apply calls at all: an all-zero genome decodes to zero actions.
	if initial.Step != 0 {
		t.Fatalf("step = %d, want 0", initial.Step)
	}
	if initial.Progress != 0 || initial.Quality != 0 {
		t.Fatalf("expected zeroed progress/quality, got progress=%d quality=%d", initial.Progress, initial.Quality)
	}

	v := initial.CheckViolations(synth)
	if v.OK() {
		t.Fatalf("expected a violated terminal state for an empty genome, got %+v", v)
	}
}

// S3 — Reflect at step 1 sets Inner Quiet to 1.
func TestApplyReflectAtStepOneSetsInnerQuiet(t *testing.T) {
	synth := weaverSynth()
	state := NewCraftState(synth)

	state = Apply(state, Reflect, synth)

	stacks, ok := state.Effects.CountUpGet(InnerQuiet)
	if !ok {
		t.Fatalf("expected InnerQuiet to be present after Reflect")
	}
	if stacks != 1 {
		t.Fatalf("InnerQuiet stacks = %d, want 1", stacks)
	}
}

// S4 — WasteNot + PrudentTouch conflict.
func TestApplyWasteNotPrudentTouchConflict(t *testing.T) {
	synth := weaverSynth()
	synth.Crafter.Actions = []Action{WasteNot, PrudentTouch}
	state := NewCraftState(synth)

	state = Apply(state, WasteNot, synth)
	durabilityBeforePrudentTouch := state.Durability

	before := state.WastedActions
	state = Apply(state, PrudentTouch, synth)

	if state.WastedActions <= before {
		t.Fatalf("expected wasted_actions to increase, got %v -> %v", before, state.WastedActions)
	}
	if state.Durability != durabilityBeforePrudentTouch-DetailsOf(PrudentTouch).Durability {
		t.Fatalf("expected full (unhalved) durability cost under the Prudent/WasteNot conflict, got durability=%d", state.Durability)
	}
}

// S5 — TrainedEye gate.
func TestApplyTrainedEyeGate(t *testing.T) {
	synth := &Synth{
		Crafter: Crafter{Level: 90, Actions: []Action{TrainedEye}},
		Recipe:  Recipe{BaseLevel: 50, Difficulty: 1000, Durability: 60, MaxQuality: 9000, ProgressDivider: 50, QualityDivider: 30},
		MaxLength: 10,
	}
	state := NewCraftState(synth)

	state = Apply(state, TrainedEye, synth)

	if state.Quality != synth.Recipe.MaxQuality {
		t.Fatalf("quality = %d, want max_quality %d", state.Quality, synth.Recipe.MaxQuality)
	}
}

// S6 — focused combo guarantees success probability 1.0 for the combo
// follow-up, even though FocusedSynthesis alone only succeeds half the
// time.
func TestApplyFocusedComboGuaranteesSuccess(t *testing.T) {
	synth := weaverSynth()
	synth.Crafter.Actions = []Action{Observe, FocusedSynthesis}
	state := NewCraftState(synth)

	state = Apply(state, Observe, synth)
	before := state.Progress
	state = Apply(state, FocusedSynthesis, synth)

	progressPerPoint := synth.calculateBaseProgressIncrease(EffectiveCrafterLevel(synth))
	expectedGain := int(float64(progressPerPoint) * DetailsOf(FocusedSynthesis).ProgressMul)
	if state.Progress != before+expectedGain {
		t.Fatalf("progress gain = %d, want %d (full success, no 0.5 probability discount)", state.Progress-before, expectedGain)
	}
}
