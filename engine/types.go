package engine

// Condition is the stochastic per-step material condition. This
// implementation collapses its effect to a closed-form expectation (see
// ConditionQualityMultiplier) rather than sampling it; the field still
// exists on CraftState for diagnostics and external reporting.
type Condition uint8

const (
	ConditionNormal Condition = iota
	ConditionGood
	ConditionExcellent
	ConditionPoor
)

// Crafter holds the acting character's stats and the ordered action list
// that defines the genome alphabet: gene value 0 is the reserved no-op,
// and gene value i (1..=len(Actions)) indexes Actions[i-1].
type Crafter struct {
	Level         int
	Craftsmanship int
	Control       int
	CP            int
	Specialist    bool
	Actions       []Action
}

// Recipe describes the item being crafted.
type Recipe struct {
	BaseLevel        int
	Level            int
	Difficulty       int
	Durability       int
	StartQuality     int
	MaxQuality       int
	SafetyMargin     int
	ProgressDivider  float64
	ProgressModifier int // percent; 0 means "unset", treated as 100
	QualityDivider   float64
	QualityModifier  int // percent; 0 means "unset", treated as 100
	Stars            bool
}

func (r *Recipe) progressModifierOrDefault() int {
	if r.ProgressModifier == 0 {
		return 100
	}
	return r.ProgressModifier
}

func (r *Recipe) qualityModifierOrDefault() int {
	if r.QualityModifier == 0 {
		return 100
	}
	return r.QualityModifier
}

// SolverVars tunes the GA and, when SolveForCompletion is set, the
// per-resource fitness weights C4 uses instead of raw quality.
type SolverVars struct {
	Population           int
	Generations          int
	MaxStagnationCounter int
	SolveForCompletion   bool
	RemainderCPFitness   int
	RemainderDurFitness  int
}

// Synth bundles a crafting problem instance. Treated as immutable for the
// duration of a solver run; it is passed as an explicit *Synth argument to
// every transition call rather than held as a back-reference, so states stay
// trivially copyable (see DESIGN.md / spec.md §9's "shared-borrowed Synth"
// re-architecture point).
type Synth struct {
	Crafter            Crafter
	Recipe             Recipe
	MaxTrickUses       int
	ReliabilityPercent int
	MaxLength          int
	Solver             SolverVars
}

func (s *Synth) calculateBaseProgressIncrease(effCrafterLevel int) int {
	base := float64(s.Crafter.Craftsmanship)*10.0/s.Recipe.ProgressDivider + 2.0
	if effCrafterLevel <= s.Recipe.Level {
		return int(base * float64(s.Recipe.progressModifierOrDefault()) / 100.0)
	}
	return int(base)
}

func (s *Synth) calculateBaseQualityIncrease(effCrafterLevel int) int {
	base := float64(s.Crafter.Control)*10.0/s.Recipe.QualityDivider + 35.0
	if effCrafterLevel <= s.Recipe.BaseLevel {
		return int((base * float64(s.Recipe.qualityModifierOrDefault()) / 100.0))
	}
	return int(base)
}

// CraftState is a snapshot of a partial craft. It is immutable-per-step:
// Apply never mutates its receiver, always returning a fresh value.
type CraftState struct {
	Step                   int
	LastStep               int
	Action                 Action
	HasAction              bool
	Durability             int
	CP                     int
	Quality                int
	Progress               int
	BonusMaxCP             int
	WastedActions          float64
	TrickUses              int
	CarefulObservationUses int
	HeartAndSoulUsed       bool
	Reliability            int
	Effects                EffectTracker
	Condition              Condition
	TouchComboStep         int

	BaseProgressGain int
	BaseQualityGain  int

	ppPoor, ppNormal, ppGood, ppExcellent float64
}

// NewCraftState builds the initial state for a solver run: full durability,
// full CP, zero progress/quality, InnerQuiet armed but empty (stack value
// −1, "armed but empty" per spec.md §3), condition Normal.
func NewCraftState(synth *Synth) CraftState {
	s := CraftState{
		Durability:  synth.Recipe.Durability,
		CP:          synth.Crafter.CP,
		Reliability: 1,
		Condition:   ConditionNormal,
		ppNormal:    1.0,
	}
	s.Effects.CountUpInsert(InnerQuiet, -1)
	return s
}

// Violations is the terminal-state check set C4 folds into a penalty.
type Violations struct {
	ProgressOK    bool
	CPOK          bool
	DurabilityOK  bool
	TrickOK       bool
	ReliabilityOK bool
}

// OK reports whether every check passed.
func (v Violations) OK() bool {
	return v.ProgressOK && v.CPOK && v.DurabilityOK && v.TrickOK && v.ReliabilityOK
}

// CheckViolations computes the terminal-state violation set per
// spec.md §4.4 step 2, including the "edge finish" durability allowance.
func (s *CraftState) CheckViolations(synth *Synth) Violations {
	progressOK := s.Progress >= synth.Recipe.Difficulty
	cpOK := s.CP >= 0

	durabilityOK := false
	if s.Durability >= -5 && progressOK {
		if s.HasAction && DetailsOf(s.Action).Durability == 10 {
			durabilityOK = true
		} else {
			durabilityOK = s.Durability >= 0
		}
	}

	trickOK := s.TrickUses <= synth.MaxTrickUses
	// Open Question #3 (DESIGN.md): the integer form is authoritative.
	reliabilityOK := s.Reliability > synth.ReliabilityPercent/100

	return Violations{
		ProgressOK:    progressOK,
		CPOK:          cpOK,
		DurabilityOK:  durabilityOK,
		TrickOK:       trickOK,
		ReliabilityOK: reliabilityOK,
	}
}
