package engine

// Action identifies a crafting action drawn from the closed, global catalog.
type Action uint8

const (
	Observe Action = iota
	BasicSynth
	BasicSynth2
	CarefulSynthesis
	CarefulSynthesis2
	RapidSynthesis
	RapidSynthesis2
	BasicTouch
	StandardTouch
	AdvancedTouch
	HastyTouch
	ByregotsBlessing
	MastersMend
	TricksOfTheTrade
	InnerQuiet
	Manipulation
	WasteNot
	WasteNot2
	Veneration
	Innovation
	GreatStrides
	PreciseTouch
	MuscleMemory
	PrudentTouch
	PrudentSynthesis
	FocusedSynthesis
	FocusedTouch
	Reflect
	PreparatoryTouch
	Groundwork
	Groundwork2
	DelicateSynthesis
	IntensiveSynthesis
	TrainedEye
	TrainedFinesse
	FinalAppraisal
	FocusedTouchCombo
	FocusedSynthesisCombo
	CarefulObservation
	HeartAndSoul

	numActions
)

// Kind classifies how an action's effect persists once applied.
type Kind uint8

const (
	Immediate Kind = iota
	CountUp
	Countdown
)

// Combo names the predecessor pair that unlocks a reduced-cost variant of
// an action when the second of the pair was the immediately prior action.
type Combo struct {
	First, Second Action
}

// Details is the static, immutable record C1 exposes for a single action.
type Details struct {
	ShortName    string
	FullName     string
	Durability   int
	CP           int
	Probability  float64
	QualityMul   float64
	ProgressMul  float64
	Kind         Kind
	ActiveTurns  int // only meaningful when Kind == Countdown
	Level        int
	OnGood       bool
	OnExcellent  bool
	Combo        *Combo
}

// catalog is the program-lifetime, index-by-Action static data table.
// Implementations must match the reference table in spec.md §6 bit-for-bit,
// including the HastyTouch full-name carried over from the source (see
// DESIGN.md's Open Question resolution #1).
var catalog = [numActions]Details{
	Observe: {
		ShortName: "observe", FullName: "Observe",
		Durability: 0, CP: 7, Probability: 1.0,
		Kind: Immediate, Level: 13,
	},
	BasicSynth: {
		ShortName: "basicSynth", FullName: "Basic Synthesis",
		Durability: 10, CP: 0, Probability: 1.0, ProgressMul: 1.0,
		Kind: Immediate, Level: 1,
	},
	BasicSynth2: {
		ShortName: "basicSynth2", FullName: "Basic Synthesis",
		Durability: 10, CP: 0, Probability: 1.0, ProgressMul: 1.2,
		Kind: Immediate, Level: 31,
	},
	CarefulSynthesis: {
		ShortName: "carefulSynthesis", FullName: "Careful Synthesis",
		Durability: 10, CP: 7, Probability: 1.0, ProgressMul: 1.2,
		Kind: Immediate, Level: 62,
	},
	CarefulSynthesis2: {
		ShortName: "carefulSynthesis2", FullName: "Careful Synthesis",
		Durability: 10, CP: 7, Probability: 1.0, ProgressMul: 1.8,
		Kind: Immediate, Level: 82,
	},
	RapidSynthesis: {
		ShortName: "rapidSynthesis", FullName: "Rapid Synthesis",
		Durability: 10, CP: 0, Probability: 0.5, ProgressMul: 2.5,
		Kind: Immediate, Level: 9,
	},
	RapidSynthesis2: {
		ShortName: "rapidSynthesis2", FullName: "Rapid Synthesis",
		Durability: 10, CP: 0, Probability: 0.5, ProgressMul: 5.0,
		Kind: Immediate, Level: 63,
	},
	BasicTouch: {
		ShortName: "basicTouch", FullName: "Basic Touch",
		Durability: 10, CP: 18, Probability: 1.0, QualityMul: 1.0,
		Kind: Immediate, Level: 18,
	},
	StandardTouch: {
		ShortName: "standardTouch", FullName: "Standard Touch",
		Durability: 10, CP: 32, Probability: 1.0, QualityMul: 1.25,
		Kind: Immediate, Level: 18,
	},
	AdvancedTouch: {
		ShortName: "advancedTouch", FullName: "Advanced Touch",
		Durability: 10, CP: 46, Probability: 1.0, QualityMul: 1.5,
		Kind: Immediate, Level: 84,
	},
	HastyTouch: {
		// The original source's full_name for this entry is "Basic Touch",
		// not "Hasty Touch" — an apparent copy-paste bug. Kept verbatim;
		// see DESIGN.md's Open Question resolution #1.
		ShortName: "hastyTouch", FullName: "Basic Touch",
		Durability: 10, CP: 0, Probability: 0.6, QualityMul: 1.0,
		Kind: Immediate, Level: 9,
	},
	ByregotsBlessing: {
		ShortName: "byregotsBlessing", FullName: "Byregot's Blessing",
		Durability: 10, CP: 24, Probability: 1.0, QualityMul: 1.0,
		Kind: Immediate, Level: 50,
	},
	MastersMend: {
		ShortName: "mastersMend", FullName: "Master's Mend",
		Durability: 0, CP: 88, Probability: 1.0,
		Kind: Immediate, Level: 7,
	},
	TricksOfTheTrade: {
		ShortName: "tricksOfTheTrade", FullName: "Tricks of the Trade",
		Durability: 0, CP: 0, Probability: 1.0,
		Kind: Immediate, Level: 13, OnGood: true, OnExcellent: true,
	},
	InnerQuiet: {
		ShortName: "innerQuiet", FullName: "Inner Quiet",
		Durability: 0, CP: 18, Probability: 1.0,
		Kind: CountUp, Level: 11,
	},
	Manipulation: {
		ShortName: "manipulation", FullName: "Manipulation",
		Durability: 0, CP: 96, Probability: 1.0,
		Kind: Countdown, ActiveTurns: 8, Level: 65,
	},
	WasteNot: {
		ShortName: "wasteNot", FullName: "Waste Not",
		Durability: 0, CP: 56, Probability: 1.0,
		Kind: Countdown, ActiveTurns: 4, Level: 15,
	},
	WasteNot2: {
		ShortName: "wasteNot2", FullName: "Waste Not II",
		Durability: 0, CP: 98, Probability: 1.0,
		Kind: Countdown, ActiveTurns: 8, Level: 47,
	},
	Veneration: {
		ShortName: "veneration", FullName: "Veneration",
		Durability: 0, CP: 18, Probability: 1.0,
		Kind: Countdown, ActiveTurns: 4, Level: 15,
	},
	Innovation: {
		ShortName: "innovation", FullName: "Innovation",
		Durability: 0, CP: 18, Probability: 1.0,
		Kind: Countdown, ActiveTurns: 4, Level: 26,
	},
	GreatStrides: {
		ShortName: "greatStrides", FullName: "Great Strides",
		Durability: 0, CP: 32, Probability: 1.0,
		Kind: Countdown, ActiveTurns: 3, Level: 31,
	},
	PreciseTouch: {
		ShortName: "preciseTouch", FullName: "Precise Touch",
		Durability: 10, CP: 18, Probability: 1.0, QualityMul: 1.5,
		Kind: Immediate, Level: 53, OnGood: true, OnExcellent: true,
	},
	MuscleMemory: {
		ShortName: "muscleMemory", FullName: "Muscle Memory",
		Durability: 10, CP: 6, Probability: 1.0, ProgressMul: 3.0,
		Kind: Countdown, ActiveTurns: 5, Level: 54,
	},
	PrudentTouch: {
		ShortName: "prudentTouch", FullName: "Prudent Touch",
		Durability: 5, CP: 25, Probability: 1.0, QualityMul: 1.0,
		Kind: Immediate, Level: 66,
	},
	PrudentSynthesis: {
		ShortName: "prudentSynthesis", FullName: "Prudent Synthesis",
		Durability: 5, CP: 18, Probability: 1.0, ProgressMul: 1.8,
		Kind: Immediate, Level: 88,
	},
	FocusedSynthesis: {
		ShortName: "focusedSynthesis", FullName: "Focused Synthesis",
		Durability: 10, CP: 5, Probability: 0.5, ProgressMul: 2.0,
		Kind: Immediate, Level: 67,
	},
	FocusedTouch: {
		ShortName: "focusedTouch", FullName: "Focused Touch",
		Durability: 10, CP: 18, Probability: 0.5, QualityMul: 1.5,
		Kind: Immediate, Level: 68,
	},
	Reflect: {
		ShortName: "reflect", FullName: "Reflect",
		Durability: 10, CP: 6, Probability: 1.0, QualityMul: 1.0,
		Kind: Immediate, Level: 69,
	},
	PreparatoryTouch: {
		ShortName: "preparatoryTouch", FullName: "Preparatory Touch",
		Durability: 20, CP: 40, Probability: 1.0, QualityMul: 2.0,
		Kind: Immediate, Level: 71,
	},
	Groundwork: {
		ShortName: "groundwork", FullName: "Groundwork",
		Durability: 20, CP: 18, Probability: 1.0, ProgressMul: 3.0,
		Kind: Immediate, Level: 72,
	},
	Groundwork2: {
		ShortName: "groundwork2", FullName: "Groundwork",
		Durability: 20, CP: 18, Probability: 1.0, ProgressMul: 3.6,
		Kind: Immediate, Level: 86,
	},
	DelicateSynthesis: {
		ShortName: "delicateSynthesis", FullName: "Delicate Synthesis",
		Durability: 10, CP: 32, Probability: 1.0, QualityMul: 1.0, ProgressMul: 1.0,
		Kind: Immediate, Level: 76,
	},
	IntensiveSynthesis: {
		ShortName: "intensiveSynthesis", FullName: "Intensive Synthesis",
		Durability: 10, CP: 6, Probability: 1.0, ProgressMul: 4.0,
		Kind: Immediate, Level: 78, OnGood: true, OnExcellent: true,
	},
	TrainedEye: {
		ShortName: "trainedEye", FullName: "Trained Eye",
		Durability: 10, CP: 250, Probability: 1.0,
		Kind: Immediate, Level: 80,
	},
	TrainedFinesse: {
		ShortName: "trainedFinesse", FullName: "Trained Finesse",
		Durability: 0, CP: 32, Probability: 1.0, QualityMul: 1.0,
		Kind: Immediate, Level: 90,
	},
	FinalAppraisal: {
		ShortName: "finalAppraisal", FullName: "Final Appraisal",
		Durability: 0, CP: 1, Probability: 1.0,
		Kind: Countdown, ActiveTurns: 5, Level: 42,
	},
	FocusedTouchCombo: {
		ShortName: "focusedTouchCombo", FullName: "Focused Touch Combo",
		Durability: 10, CP: 25, Probability: 1.0, QualityMul: 1.5,
		Kind: Immediate, Level: 68,
		Combo: &Combo{First: Observe, Second: FocusedTouch},
	},
	FocusedSynthesisCombo: {
		ShortName: "focusedSynthesisCombo", FullName: "Focused Synthesis Combo",
		Durability: 10, CP: 12, Probability: 1.0, ProgressMul: 2.0,
		Kind: Immediate, Level: 67,
		Combo: &Combo{First: Observe, Second: FocusedSynthesis},
	},
	CarefulObservation: {
		ShortName: "carefulObservation", FullName: "Careful Observation",
		Durability: 0, CP: 0, Probability: 1.0,
		Kind: Immediate, Level: 55,
	},
	HeartAndSoul: {
		ShortName: "heartAndSoul", FullName: "Heart and Soul",
		Durability: 0, CP: 0, Probability: 1.0,
		Kind: Immediate, Level: 86,
	},
}

// shortNameIndex maps each catalog short name back to its Action for
// parsing a crafter's action list out of Synth JSON.
var shortNameIndex = func() map[string]Action {
	idx := make(map[string]Action, numActions)
	for a := Action(0); a < numActions; a++ {
		idx[catalog[a].ShortName] = a
	}
	return idx
}()

// DetailsOf returns the static record for a, by reference into catalog.
func DetailsOf(a Action) *Details {
	return &catalog[a]
}

// ByShortName resolves a catalog short name to its Action, reporting
// whether the name is recognized.
func ByShortName(name string) (Action, bool) {
	a, ok := shortNameIndex[name]
	return a, ok
}

// NumActions is the size of the closed action catalog.
func NumActions() int {
	return int(numActions)
}
