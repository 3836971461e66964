// Package macrotext parses crafting macro text — one "/ac" line per
// action, the format players copy in and out of the game's own macro
// editor — into an ordered engine.Action sequence. Grammar defined as Go
// structs with participle/v2 tags, the same approach the wider example
// pack uses for its own structured-text parser.
package macrotext

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/craftsim/craftsolve/engine"
)

// Macro is the top-level parsed document: an ordered list of lines.
type Macro struct {
	Lines []*Line `@@*`
}

// Line is a single macro line: either an action line or a "#" comment.
// Only action lines carry meaning for the solver; comment lines parse but
// are otherwise ignored.
type Line struct {
	Action  *ActionLine `  @@`
	Comment *string     `| @Comment`
}

// ActionLine is "/ac \"Action Name\"" optionally followed by a
// "<wait.N>" tag, which this parser accepts but does not interpret (the
// engine's own action-level durations are authoritative, per spec.md
// §9's "wait tags are display-only" note).
type ActionLine struct {
	Name    string  `"/ac" @String`
	WaitTag *string `@Wait?`
}

var macroLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Command", Pattern: `/ac`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Wait", Pattern: `<wait\.\d+(\.\d+)?>`},
})

var parser = participle.MustBuild[Macro](
	participle.Lexer(macroLexer),
	participle.Elide("Whitespace", "Newline"),
)

// Parse decodes macro text into its ordered engine.Action sequence,
// resolving each quoted action name against the catalog's full-name
// index. Text other than "/ac" lines and "#" comments (including the
// game's other slash commands) is a parse error, and an action name that
// is not in the catalog is an error as well.
func Parse(source string) ([]engine.Action, error) {
	macro, err := parser.ParseString("", source)
	if err != nil {
		return nil, fmt.Errorf("macrotext: %w", err)
	}

	actions := make([]engine.Action, 0, len(macro.Lines))
	for _, line := range macro.Lines {
		if line.Action == nil {
			continue
		}
		name := strings.Trim(line.Action.Name, `"`)
		a, ok := byFullName(name)
		if !ok {
			return nil, fmt.Errorf("macrotext: unknown action %q", name)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

var fullNameIndex = buildFullNameIndex()

func buildFullNameIndex() map[string]engine.Action {
	index := make(map[string]engine.Action)
	for a := engine.Action(0); int(a) < engine.NumActions(); a++ {
		// Several catalog entries share a full name (e.g. BasicSynth and
		// BasicSynth2); the first, lowest-numbered entry wins.
		name := engine.DetailsOf(a).FullName
		if _, taken := index[name]; !taken {
			index[name] = a
		}
	}
	return index
}

func byFullName(name string) (engine.Action, bool) {
	a, ok := fullNameIndex[name]
	return a, ok
}
