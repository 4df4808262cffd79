// Package state manages the mutable world model: ingredient, trophy and
// potion ledgers, learned formulas, and the bestiary. Ledger entries are
// always positive; reaching zero removes the entry.
package state

import (
	"sort"

	"github.com/erer-can/witcher-tracker/types"
)

// NewWorld creates an empty world.
func NewWorld() *types.World {
	return &types.World{
		Ingredients: map[string]int{},
		Trophies:    map[string]int{},
		Potions:     map[string]int{},
		Formulas:    map[string][]types.ItemStack{},
		Bestiary:    map[string]*types.BestiaryEntry{},
	}
}

// AddIngredient adds count units of an ingredient.
func AddIngredient(w *types.World, name string, count int) {
	w.Ingredients[name] += count
}

// UseIngredient removes count units of an ingredient, deleting the
// entry when it reaches zero.
func UseIngredient(w *types.World, name string, count int) {
	w.Ingredients[name] -= count
	if w.Ingredients[name] <= 0 {
		delete(w.Ingredients, name)
	}
}

// IngredientCount returns the ingredient count; absent means 0.
func IngredientCount(w *types.World, name string) int {
	return w.Ingredients[name]
}

// AddTrophy adds count trophies for a monster.
func AddTrophy(w *types.World, name string, count int) {
	w.Trophies[name] += count
}

// UseTrophy removes count trophies, deleting the entry at zero.
func UseTrophy(w *types.World, name string, count int) {
	w.Trophies[name] -= count
	if w.Trophies[name] <= 0 {
		delete(w.Trophies, name)
	}
}

// TrophyCount returns the trophy count for a monster; absent means 0.
func TrophyCount(w *types.World, name string) int {
	return w.Trophies[name]
}

// AddPotion adds one brewed unit of a potion.
func AddPotion(w *types.World, name string) {
	w.Potions[name]++
}

// UsePotion consumes one brewed unit, deleting the entry at zero.
func UsePotion(w *types.World, name string) {
	w.Potions[name]--
	if w.Potions[name] <= 0 {
		delete(w.Potions, name)
	}
}

// PotionCount returns the brewed count of a potion; absent means 0.
func PotionCount(w *types.World, name string) int {
	return w.Potions[name]
}

// Formula returns a potion's required ingredients, or nil when the
// formula is unknown. An empty stored list also counts as unknown.
func Formula(w *types.World, potion string) []types.ItemStack {
	f := w.Formulas[potion]
	if len(f) == 0 {
		return nil
	}
	return f
}

// SetFormula stores a potion's ingredient list in learn order.
func SetFormula(w *types.World, potion string, ingredients []types.ItemStack) {
	w.Formulas[potion] = ingredients
}

// Entry returns the bestiary entry for a monster, or nil if unseen.
func Entry(w *types.World, monster string) *types.BestiaryEntry {
	return w.Bestiary[monster]
}

// EnsureEntry returns the bestiary entry for a monster, creating an
// empty one if needed.
func EnsureEntry(w *types.World, monster string) *types.BestiaryEntry {
	e := w.Bestiary[monster]
	if e == nil {
		e = &types.BestiaryEntry{Signs: map[string]bool{}, Potions: map[string]bool{}}
		w.Bestiary[monster] = e
	}
	return e
}

// SortedLedger flattens a ledger into stacks in ascending name order.
func SortedLedger(ledger map[string]int) []types.ItemStack {
	stacks := make([]types.ItemStack, 0, len(ledger))
	for name, count := range ledger {
		stacks = append(stacks, types.ItemStack{Name: name, Count: count})
	}
	sort.Slice(stacks, func(i, j int) bool { return stacks[i].Name < stacks[j].Name })
	return stacks
}

// SortedFormula orders a formula for presentation: descending quantity,
// ties broken by ascending ingredient name. The stored learn order is
// left untouched.
func SortedFormula(formula []types.ItemStack) []types.ItemStack {
	out := make([]types.ItemStack, len(formula))
	copy(out, formula)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Name < out[j].Name
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// Weaknesses merges a bestiary entry's signs and potions into one
// ascending alphabetical list. Signs and potions share the namespace for
// ordering; a name present in both categories appears twice.
func Weaknesses(e *types.BestiaryEntry) []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.Signs)+len(e.Potions))
	for s := range e.Signs {
		names = append(names, s)
	}
	for p := range e.Potions {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}
