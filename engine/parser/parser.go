// Package parser converts raw input lines into classified commands.
// The grammar is fixed and positional: no NLP, just token shape checks.
package parser

import (
	"github.com/erer-can/witcher-tracker/types"
)

// Positional anchors shared across sentence forms. Token 0 is always the
// subject ("Geralt") or question head; the payload starts at token 2.
const (
	verbIndex    = 1
	payloadIndex = 2
)

// Classify determines which sentence or question form the token sequence
// takes and extracts its fields. The raw line is needed alongside the
// tokens to validate the internal spacing of multi-word names.
// Classification never partially succeeds: the result is either a fully
// populated command or KindInvalid.
func Classify(line string, tokens []Token) types.Command {
	if len(tokens) == 0 {
		return types.Command{Kind: types.KindInvalid}
	}
	if len(tokens) == 1 && tokens[0].Text == "Exit" {
		return types.Command{Kind: types.KindExit}
	}
	// A line ending in "?" is a question or nothing; it is never
	// reinterpreted as a sentence.
	if tokens[len(tokens)-1].Text == "?" {
		return classifyQuestion(line, tokens)
	}
	return classifySentence(line, tokens)
}

func classifySentence(line string, tokens []Token) types.Command {
	invalid := types.Command{Kind: types.KindInvalid}
	n := len(tokens)

	if tokens[0].Text != "Geralt" || n <= 2 {
		return invalid
	}
	// No valid form puts a comma right after the verb or at the end.
	if tokens[payloadIndex].Text == "," || tokens[n-1].Text == "," {
		return invalid
	}

	switch tokens[verbIndex].Text {
	case "loots":
		items, ok := ingredientGroups(tokens, payloadIndex)
		if !ok {
			return invalid
		}
		return types.Command{Kind: types.KindLoot, Ingredients: items}

	case "trades":
		return classifyTrade(tokens)

	case "brews":
		if !validName(line, tokens, payloadIndex, n-1) {
			return invalid
		}
		return types.Command{Kind: types.KindBrew, Potion: joinName(tokens, payloadIndex, n-1)}

	case "learns":
		return classifyLearn(line, tokens)

	case "encounters":
		if n != 4 || tokens[2].Text != "a" || !alphabetic(tokens[3].Text) {
			return invalid
		}
		return types.Command{Kind: types.KindEncounter, Monster: tokens[3].Text}
	}
	return invalid
}

// classifyTrade validates "Geralt trades <payment> for <goods>" where the
// payment is one or more groups of "<count> <monster> trophy" separated by
// commas, the last group terminated by "for" instead, and the goods are
// ordinary ingredient groups.
func classifyTrade(tokens []Token) types.Command {
	invalid := types.Command{Kind: types.KindInvalid}
	n := len(tokens)

	var payment []types.ItemStack
	i := payloadIndex
	for {
		// Group shape: <count> <name> trophy <,|for>
		if i+3 >= n {
			return invalid
		}
		count, ok := parseCount(tokens[i].Text)
		if !ok || !alphabetic(tokens[i+1].Text) || tokens[i+2].Text != "trophy" {
			return invalid
		}
		payment = append(payment, types.ItemStack{Name: tokens[i+1].Text, Count: count})

		sep := tokens[i+3].Text
		i += 4
		if sep == "for" {
			break
		}
		if sep != "," {
			return invalid
		}
	}

	goods, ok := ingredientGroups(tokens, i)
	if !ok {
		return invalid
	}
	return types.Command{Kind: types.KindTrade, Trophies: payment, Ingredients: goods}
}

// classifyLearn handles the three "Geralt learns ..." forms: sign
// knowledge, potion knowledge, and potion recipes.
func classifyLearn(line string, tokens []Token) types.Command {
	invalid := types.Command{Kind: types.KindInvalid}
	n := len(tokens)

	// Every learns form is at least 8 tokens long.
	if n < 8 {
		return invalid
	}

	if tokens[3].Text == "sign" {
		// Geralt learns <sign> sign is effective against <monster>
		if n != 8 || tokens[4].Text != "is" || tokens[5].Text != "effective" || tokens[6].Text != "against" {
			return invalid
		}
		if !alphabetic(tokens[2].Text) || !alphabetic(tokens[7].Text) {
			return invalid
		}
		return types.Command{Kind: types.KindSignKnowledge, Sign: tokens[2].Text, Monster: tokens[7].Text}
	}

	// Both remaining forms name a potion: the name runs from token 2 up
	// to (not including) the first literal "potion".
	p := -1
	for i := payloadIndex; i < n; i++ {
		if tokens[i].Text == "potion" {
			p = i
			break
		}
	}
	if p < 0 || !validName(line, tokens, payloadIndex, p-1) {
		return invalid
	}
	potion := joinName(tokens, payloadIndex, p-1)

	switch {
	case p+1 < n && tokens[p+1].Text == "is":
		// <potion> potion is effective against <monster>
		if p+4 >= n || tokens[p+2].Text != "effective" || tokens[p+3].Text != "against" {
			return invalid
		}
		monster := tokens[p+4].Text
		if monster != tokens[n-1].Text || !alphabetic(monster) {
			return invalid
		}
		return types.Command{Kind: types.KindPotionKnowledge, Potion: potion, Monster: monster}

	case p+2 < n && tokens[p+1].Text == "consists" && tokens[p+2].Text == "of":
		items, ok := ingredientGroups(tokens, p+3)
		if !ok {
			return invalid
		}
		return types.Command{Kind: types.KindPotionRecipe, Potion: potion, Ingredients: items}
	}
	return invalid
}

func classifyQuestion(line string, tokens []Token) types.Command {
	invalid := types.Command{Kind: types.KindInvalid}
	n := len(tokens)

	switch tokens[0].Text {
	case "Total":
		if n < 3 {
			return invalid
		}
		switch tokens[1].Text {
		case "ingredient":
			if n == 3 && tokens[2].Text == "?" {
				return types.Command{Kind: types.KindIngredientTotal}
			}
			if n == 4 && alphabetic(tokens[2].Text) {
				return types.Command{Kind: types.KindIngredientCount, Ingredient: tokens[2].Text}
			}

		case "potion":
			if n == 3 && tokens[2].Text == "?" {
				return types.Command{Kind: types.KindPotionTotal}
			}
			if n >= 4 && validName(line, tokens, 2, n-2) {
				return types.Command{Kind: types.KindPotionCount, Potion: joinName(tokens, 2, n-2)}
			}

		case "trophy":
			if n == 3 && tokens[2].Text == "?" {
				return types.Command{Kind: types.KindTrophyTotal}
			}
			if n == 4 && alphabetic(tokens[2].Text) {
				return types.Command{Kind: types.KindTrophyCount, Trophy: tokens[2].Text}
			}
		}

	case "What":
		if n >= 4 && tokens[1].Text == "is" && tokens[2].Text == "effective" && tokens[3].Text == "against" {
			// What is effective against <monster> ?
			if n != 6 || !alphabetic(tokens[4].Text) {
				return invalid
			}
			return types.Command{Kind: types.KindMonsterKnowledge, Monster: tokens[4].Text}
		}
		if n >= 4 && tokens[1].Text == "is" && tokens[2].Text == "in" {
			// What is in <potion...> ? — the name runs up to the first
			// "?", which must also be the final token.
			q := 3
			for q < n && tokens[q].Text != "?" {
				q++
			}
			if q != n-1 || !validName(line, tokens, 3, q-1) {
				return invalid
			}
			return types.Command{Kind: types.KindPotionFormula, Potion: joinName(tokens, 3, q-1)}
		}
	}
	return invalid
}

// ingredientGroups parses "<count> <name>, <count> <name>, ..." starting
// at from, with the comma omitted on the final group. The token count
// from there must be ≡ 2 (mod 3) and cover at least one group.
func ingredientGroups(tokens []Token, from int) ([]types.ItemStack, bool) {
	rest := len(tokens) - from
	if rest < 2 || rest%3 != 2 {
		return nil, false
	}

	var items []types.ItemStack
	for i := from; i < len(tokens); i += 3 {
		count, ok := parseCount(tokens[i].Text)
		if !ok || !alphabetic(tokens[i+1].Text) {
			return nil, false
		}
		if i+2 < len(tokens) && tokens[i+2].Text != "," {
			return nil, false
		}
		items = append(items, types.ItemStack{Name: tokens[i+1].Text, Count: count})
	}
	return items, true
}
