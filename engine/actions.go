package engine

import (
	"github.com/erer-can/witcher-tracker/engine/state"
	"github.com/erer-can/witcher-tracker/types"
)

// loot adds every looted stack to the ingredient ledger. Always succeeds.
func (e *Engine) loot(cmd types.Command) string {
	for _, item := range cmd.Ingredients {
		state.AddIngredient(e.World, item.Name, item.Count)
	}
	return "Alchemy ingredients obtained"
}

// trade exchanges trophies for ingredients. The whole payment is checked
// against the untouched ledger first; nothing is decremented on failure.
func (e *Engine) trade(cmd types.Command) string {
	payment := map[string]int{}
	for _, t := range cmd.Trophies {
		if state.TrophyCount(e.World, t.Name) < t.Count {
			return "Not enough trophies"
		}
		payment[t.Name] = t.Count // duplicate names: last request wins
	}
	for name, count := range payment {
		state.UseTrophy(e.World, name, count)
	}
	for _, item := range cmd.Ingredients {
		state.AddIngredient(e.World, item.Name, item.Count)
	}
	return "Trade successful"
}

// brew consumes a potion's formula ingredients and adds one brewed unit.
// Ingredient sufficiency is verified in full before anything is deducted.
func (e *Engine) brew(cmd types.Command) string {
	formula := state.Formula(e.World, cmd.Potion)
	if formula == nil {
		return "No formula for " + cmd.Potion
	}
	for _, item := range formula {
		if state.IngredientCount(e.World, item.Name) < item.Count {
			return "Not enough ingredients"
		}
	}
	for _, item := range formula {
		state.UseIngredient(e.World, item.Name, item.Count)
	}
	state.AddPotion(e.World, cmd.Potion)
	return "Alchemy item created: " + cmd.Potion
}

// signKnowledge records a sign as effective against a monster.
func (e *Engine) signKnowledge(cmd types.Command) string {
	entry := state.Entry(e.World, cmd.Monster)
	if entry == nil {
		state.EnsureEntry(e.World, cmd.Monster).Signs[cmd.Sign] = true
		return "New bestiary entry added: " + cmd.Monster
	}
	if entry.Signs[cmd.Sign] {
		return "Already known effectiveness"
	}
	entry.Signs[cmd.Sign] = true
	return "Bestiary entry updated: " + cmd.Monster
}

// potionKnowledge records a potion as effective against a monster.
func (e *Engine) potionKnowledge(cmd types.Command) string {
	entry := state.Entry(e.World, cmd.Monster)
	if entry == nil {
		state.EnsureEntry(e.World, cmd.Monster).Potions[cmd.Potion] = true
		return "New bestiary entry added: " + cmd.Monster
	}
	if entry.Potions[cmd.Potion] {
		return "Already known effectiveness"
	}
	entry.Potions[cmd.Potion] = true
	return "Bestiary entry updated: " + cmd.Monster
}

// potionRecipe stores a potion's formula. A non-empty stored formula is
// immutable; relearning it is a no-op.
func (e *Engine) potionRecipe(cmd types.Command) string {
	if state.Formula(e.World, cmd.Potion) != nil {
		return "Already known formula"
	}
	state.SetFormula(e.World, cmd.Potion, cmd.Ingredients)
	return "New alchemy formula obtained: " + cmd.Potion
}

// encounter resolves a fight. A known effective sign always wins the
// fight; with only potions known, at least one must be in stock. A won
// fight drinks one of each in-stock effective potion and awards a trophy.
func (e *Engine) encounter(cmd types.Command) string {
	const unprepared = "Geralt is unprepared and barely escapes with his life"

	entry := state.Entry(e.World, cmd.Monster)
	if entry == nil || (len(entry.Signs) == 0 && len(entry.Potions) == 0) {
		return unprepared
	}

	if len(entry.Signs) == 0 {
		inStock := false
		for potion := range entry.Potions {
			if state.PotionCount(e.World, potion) > 0 {
				inStock = true
				break
			}
		}
		if !inStock {
			return unprepared
		}
	}

	for potion := range entry.Potions {
		if state.PotionCount(e.World, potion) > 0 {
			state.UsePotion(e.World, potion)
		}
	}
	state.AddTrophy(e.World, cmd.Monster, 1)
	return "Geralt defeats " + cmd.Monster
}
