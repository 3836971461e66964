// Package synthio decodes and validates the external JSON description of a
// crafting problem into engine.Synth, per spec.md §6's input contract.
package synthio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/craftsim/craftsolve/engine"
)

var validate = validator.New()

// Request is the wire shape of a solve request: struct tags drive
// go-playground/validator/v10 field checks the way the wider example
// pack's REST layer validates JSON bodies before binding them into
// domain types.
type Request struct {
	Crafter struct {
		Level         int      `json:"level" validate:"required,min=1,max=90"`
		Craftsmanship int      `json:"craftsmanship" validate:"required,min=1"`
		Control       int      `json:"control" validate:"required,min=1"`
		CP            int      `json:"cp" validate:"required,min=1"`
		Specialist    bool     `json:"specialist"`
		Actions       []string `json:"actions" validate:"required,min=1,dive,required"`
	} `json:"crafter" validate:"required"`

	Recipe struct {
		BaseLevel        int     `json:"baseLevel" validate:"omitempty,min=1"`
		Level             int     `json:"level" validate:"required,min=1"`
		Difficulty        int     `json:"difficulty" validate:"required,min=1"`
		Durability        int     `json:"durability" validate:"required,min=1"`
		StartQuality      int     `json:"startQuality"`
		MaxQuality        int     `json:"maxQuality" validate:"required,min=1"`
		SafetyMargin      int     `json:"safetyMargin"`
		ProgressDivider   float64 `json:"progressDivider" validate:"required,gt=0"`
		ProgressModifier  int     `json:"progressModifier"`
		QualityDivider    float64 `json:"qualityDivider" validate:"required,gt=0"`
		QualityModifier   int     `json:"qualityModifier"`
		Stars             bool    `json:"stars"`
	} `json:"recipe" validate:"required"`

	MaxTrickUses       int `json:"maxTricksUses"`
	ReliabilityPercent int `json:"reliabilityPercent" validate:"min=0,max=100"`
	MaxLength          int `json:"maxLength" validate:"required,min=1,max=128"`

	Solver struct {
		Population           int  `json:"population"`
		Generations          int  `json:"generations"`
		MaxStagnationCounter int  `json:"maxStagnationCounter"`
		SolveForCompletion   bool `json:"solveForCompletion"`
		RemainderCPFitness   int  `json:"remainderCPFitnessValue"`
		RemainderDurFitness  int  `json:"remainderDurFitnessValue"`
	} `json:"solver"`
}

// Decode reads a Request from r, validates its struct tags, resolves its
// action-name strings against the catalog, and returns the assembled
// engine.Synth.
func Decode(r io.Reader) (*engine.Synth, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("synthio: decode request: %w", err)
	}

	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("synthio: %w", err)
	}

	actions := make([]engine.Action, 0, len(req.Crafter.Actions))
	for _, name := range req.Crafter.Actions {
		a, ok := engine.ByShortName(name)
		if !ok {
			return nil, fmt.Errorf("synthio: unknown action %q", name)
		}
		actions = append(actions, a)
	}

	synth := &engine.Synth{
		Crafter: engine.Crafter{
			Level:         req.Crafter.Level,
			Craftsmanship: req.Crafter.Craftsmanship,
			Control:       req.Crafter.Control,
			CP:            req.Crafter.CP,
			Specialist:    req.Crafter.Specialist,
			Actions:       actions,
		},
		Recipe: engine.Recipe{
			BaseLevel:        req.Recipe.BaseLevel,
			Level:            req.Recipe.Level,
			Difficulty:       req.Recipe.Difficulty,
			Durability:       req.Recipe.Durability,
			StartQuality:     req.Recipe.StartQuality,
			MaxQuality:       req.Recipe.MaxQuality,
			SafetyMargin:     req.Recipe.SafetyMargin,
			ProgressDivider:  req.Recipe.ProgressDivider,
			ProgressModifier: req.Recipe.ProgressModifier,
			QualityDivider:   req.Recipe.QualityDivider,
			QualityModifier:  req.Recipe.QualityModifier,
			Stars:            req.Recipe.Stars,
		},
		MaxTrickUses:       req.MaxTrickUses,
		ReliabilityPercent: req.ReliabilityPercent,
		MaxLength:          req.MaxLength,
		Solver: engine.SolverVars{
			Population:           req.Solver.Population,
			Generations:          req.Solver.Generations,
			MaxStagnationCounter: req.Solver.MaxStagnationCounter,
			SolveForCompletion:   req.Solver.SolveForCompletion,
			RemainderCPFitness:   req.Solver.RemainderCPFitness,
			RemainderDurFitness:  req.Solver.RemainderDurFitness,
		},
	}

	if synth.Recipe.BaseLevel == 0 {
		synth.Recipe.BaseLevel = synth.Recipe.Level
	}

	return synth, nil
}
