package macrotext

import (
	"testing"

	"github.com/craftsim/craftsolve/engine"
)

func TestParseSimpleMacro(t *testing.T) {
	source := "/ac \"Basic Synthesis\" <wait.3>\n/ac \"Basic Touch\" <wait.3>\n"

	actions, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := []engine.Action{engine.BasicSynth, engine.BasicTouch}
	if len(actions) != len(want) {
		t.Fatalf("actions = %v, want %v", actions, want)
	}
	for i := range want {
		if actions[i] != want[i] {
			t.Fatalf("actions[%d] = %v, want %v", i, actions[i], want[i])
		}
	}
}

func TestParseIgnoresComments(t *testing.T) {
	source := "# a reminder to myself\n/ac \"Basic Synthesis\"\n# trailing note\n"

	actions, err := Parse(source)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(actions) != 1 || actions[0] != engine.BasicSynth {
		t.Fatalf("actions = %v, want [BasicSynth]", actions)
	}
}

func TestParseUnknownActionFails(t *testing.T) {
	_, err := Parse(`/ac "Not A Real Action"` + "\n")
	if err == nil {
		t.Fatalf("expected an error for an unrecognized action name")
	}
}

func TestParseEmptyMacroReturnsNoActions(t *testing.T) {
	actions, err := Parse("")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(actions) != 0 {
		t.Fatalf("actions = %v, want none", actions)
	}
}
