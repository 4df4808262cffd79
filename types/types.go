// Package types defines the shared data structures for the witcher tracker.
// This package contains only type definitions — no logic, no methods.
package types

// Kind identifies the classified form of an input line.
type Kind int

const (
	// KindInvalid marks a line that matches no recognized form.
	KindInvalid Kind = iota

	// KindExit ends the session.
	KindExit

	// Sentence forms (state-mutating actions).
	KindLoot
	KindTrade
	KindBrew
	KindSignKnowledge
	KindPotionKnowledge
	KindPotionRecipe
	KindEncounter

	// Question forms (read-only).
	KindIngredientCount
	KindIngredientTotal
	KindPotionCount
	KindPotionTotal
	KindTrophyCount
	KindTrophyTotal
	KindMonsterKnowledge
	KindPotionFormula
)

// ItemStack pairs a name with a quantity. Used for loot hauls, trade
// payments and goods, and formula ingredient lists.
type ItemStack struct {
	Name  string
	Count int
}

// Command is the fully classified representation of one input line.
// Only the fields relevant to Kind are populated; the classifier
// guarantees they are well-formed before the engine sees them.
type Command struct {
	Kind Kind

	Ingredients []ItemStack // loot haul, trade goods, recipe formula
	Trophies    []ItemStack // trade payment

	Potion     string // brew / potion knowledge / recipe / potion queries
	Sign       string // sign knowledge
	Monster    string // knowledge sentences, encounter, bestiary query
	Ingredient string // specific ingredient count query
	Trophy     string // specific trophy count query
}

// BestiaryEntry records what is known to be effective against one monster.
type BestiaryEntry struct {
	Signs   map[string]bool
	Potions map[string]bool
}

// World is the complete mutable session state. Ledger maps never hold
// zero or negative counts; absence means zero.
type World struct {
	Ingredients map[string]int            // ingredient name → count
	Trophies    map[string]int            // monster name → trophy count
	Potions     map[string]int            // potion name → brewed count
	Formulas    map[string][]ItemStack    // potion name → required ingredients
	Bestiary    map[string]*BestiaryEntry // monster name → known weaknesses
	LineCount   int                       // lines processed this session
}

// Result is the output of a single interpreter step.
type Result struct {
	Output string // exactly one response line; empty only when Exit is set
	Exit   bool   // true when the session must end
}
