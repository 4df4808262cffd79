package engine

import (
	"strconv"
	"strings"

	"github.com/erer-can/witcher-tracker/engine/state"
	"github.com/erer-can/witcher-tracker/types"
)

func (e *Engine) ingredientCount(cmd types.Command) string {
	return strconv.Itoa(state.IngredientCount(e.World, cmd.Ingredient))
}

func (e *Engine) ingredientTotal() string {
	return formatLedger(e.World.Ingredients)
}

func (e *Engine) potionCount(cmd types.Command) string {
	return strconv.Itoa(state.PotionCount(e.World, cmd.Potion))
}

func (e *Engine) potionTotal() string {
	return formatLedger(e.World.Potions)
}

func (e *Engine) trophyCount(cmd types.Command) string {
	return strconv.Itoa(state.TrophyCount(e.World, cmd.Trophy))
}

func (e *Engine) trophyTotal() string {
	return formatLedger(e.World.Trophies)
}

// monsterKnowledge lists a monster's known weaknesses: signs and potions
// merged in ascending alphabetical order.
func (e *Engine) monsterKnowledge(cmd types.Command) string {
	names := state.Weaknesses(state.Entry(e.World, cmd.Monster))
	if len(names) == 0 {
		return "No knowledge of " + cmd.Monster
	}
	return strings.Join(names, ", ")
}

// potionFormula lists a potion's ingredients by descending quantity,
// ties broken alphabetically.
func (e *Engine) potionFormula(cmd types.Command) string {
	formula := state.Formula(e.World, cmd.Potion)
	if formula == nil {
		return "No formula for " + cmd.Potion
	}
	return formatStacks(state.SortedFormula(formula))
}

// formatLedger renders a ledger as "<count> <name>" pairs in ascending
// name order, or "None" when empty.
func formatLedger(ledger map[string]int) string {
	stacks := state.SortedLedger(ledger)
	if len(stacks) == 0 {
		return "None"
	}
	return formatStacks(stacks)
}

func formatStacks(stacks []types.ItemStack) string {
	parts := make([]string, len(stacks))
	for i, s := range stacks {
		parts[i] = strconv.Itoa(s.Count) + " " + s.Name
	}
	return strings.Join(parts, ", ")
}
