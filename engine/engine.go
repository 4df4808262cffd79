// Package engine wires the tokenizer, classifier and world model into a
// single Step() that interprets one input line at a time.
package engine

import (
	"github.com/erer-can/witcher-tracker/engine/parser"
	"github.com/erer-can/witcher-tracker/engine/state"
	"github.com/erer-can/witcher-tracker/types"
)

// Invalid is the response for any line that matches no recognized form.
const Invalid = "INVALID"

// Engine holds the mutable world and interprets lines against it.
type Engine struct {
	World *types.World
}

// New creates an engine over an empty world.
func New() *Engine {
	return &Engine{World: state.NewWorld()}
}

// NewWithWorld creates an engine over a preloaded world (e.g. from a
// journal bootstrap).
func NewWithWorld(w *types.World) *Engine {
	return &Engine{World: w}
}

// Step processes one input line to completion and returns its single
// response. A line is atomic: either fully valid and applied, or
// rejected in full with no state change.
func (e *Engine) Step(line string) types.Result {
	tokens := parser.Tokenize(line)
	cmd := parser.Classify(line, tokens)

	if cmd.Kind == types.KindExit {
		return types.Result{Exit: true}
	}
	e.World.LineCount++

	var out string
	switch cmd.Kind {
	case types.KindLoot:
		out = e.loot(cmd)
	case types.KindTrade:
		out = e.trade(cmd)
	case types.KindBrew:
		out = e.brew(cmd)
	case types.KindSignKnowledge:
		out = e.signKnowledge(cmd)
	case types.KindPotionKnowledge:
		out = e.potionKnowledge(cmd)
	case types.KindPotionRecipe:
		out = e.potionRecipe(cmd)
	case types.KindEncounter:
		out = e.encounter(cmd)

	case types.KindIngredientCount:
		out = e.ingredientCount(cmd)
	case types.KindIngredientTotal:
		out = e.ingredientTotal()
	case types.KindPotionCount:
		out = e.potionCount(cmd)
	case types.KindPotionTotal:
		out = e.potionTotal()
	case types.KindTrophyCount:
		out = e.trophyCount(cmd)
	case types.KindTrophyTotal:
		out = e.trophyTotal()
	case types.KindMonsterKnowledge:
		out = e.monsterKnowledge(cmd)
	case types.KindPotionFormula:
		out = e.potionFormula(cmd)

	default:
		out = Invalid
	}
	return types.Result{Output: out}
}
