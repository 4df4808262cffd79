package parser

import (
	"reflect"
	"testing"

	"github.com/erer-can/witcher-tracker/types"
)

func classify(line string) types.Command {
	return Classify(line, Tokenize(line))
}

var invalid = types.Command{Kind: types.KindInvalid}

func TestClassify_Dispatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		{
			name:  "empty line",
			input: "",
			want:  invalid,
		},
		{
			name:  "exit",
			input: "Exit",
			want:  types.Command{Kind: types.KindExit},
		},
		{
			name:  "exit with surrounding whitespace",
			input: "   Exit  ",
			want:  types.Command{Kind: types.KindExit},
		},
		{
			name:  "exit is case sensitive",
			input: "exit",
			want:  invalid,
		},
		{
			name:  "exit with trailing words",
			input: "Exit now",
			want:  invalid,
		},
		{
			name:  "question mark forces question classification",
			input: "Geralt loots 5 Rebis ?",
			want:  invalid,
		},
		{
			name:  "subject must be Geralt",
			input: "Yennefer loots 5 Rebis",
			want:  invalid,
		},
		{
			name:  "two tokens are never a sentence",
			input: "Geralt loots",
			want:  invalid,
		},
		{
			name:  "comma after verb",
			input: "Geralt loots , 5 Rebis",
			want:  invalid,
		},
		{
			name:  "trailing comma",
			input: "Geralt loots 5 Rebis,",
			want:  invalid,
		},
		{
			name:  "unknown verb",
			input: "Geralt dances 5 Rebis",
			want:  invalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("classify(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_Loot(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		{
			name:  "single group",
			input: "Geralt loots 5 Rebis",
			want: types.Command{Kind: types.KindLoot, Ingredients: []types.ItemStack{
				{Name: "Rebis", Count: 5},
			}},
		},
		{
			name:  "multiple groups",
			input: "Geralt loots 5 Rebis, 3 Vitriol, 1 Quebrith",
			want: types.Command{Kind: types.KindLoot, Ingredients: []types.ItemStack{
				{Name: "Rebis", Count: 5},
				{Name: "Vitriol", Count: 3},
				{Name: "Quebrith", Count: 1},
			}},
		},
		{
			name:  "comma glued to name",
			input: "Geralt loots 5 Rebis,3 Vitriol",
			want: types.Command{Kind: types.KindLoot, Ingredients: []types.ItemStack{
				{Name: "Rebis", Count: 5},
				{Name: "Vitriol", Count: 3},
			}},
		},
		{
			name:  "count and name swapped",
			input: "Geralt loots 5, Rebis",
			want:  invalid,
		},
		{
			name:  "zero count",
			input: "Geralt loots 0 Rebis",
			want:  invalid,
		},
		{
			name:  "negative count",
			input: "Geralt loots -5 Rebis",
			want:  invalid,
		},
		{
			name:  "decimal count",
			input: "Geralt loots 2.5 Rebis",
			want:  invalid,
		},
		{
			name:  "non-alphabetic ingredient",
			input: "Geralt loots 5 R3bis",
			want:  invalid,
		},
		{
			name:  "missing comma between groups",
			input: "Geralt loots 5 Rebis 3 Vitriol",
			want:  invalid,
		},
		{
			name:  "count without name",
			input: "Geralt loots 5",
			want:  invalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("classify(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_Trade(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		{
			name:  "single trophy group",
			input: "Geralt trades 2 Wyvern trophy for 5 Rebis",
			want: types.Command{
				Kind:        types.KindTrade,
				Trophies:    []types.ItemStack{{Name: "Wyvern", Count: 2}},
				Ingredients: []types.ItemStack{{Name: "Rebis", Count: 5}},
			},
		},
		{
			name:  "multiple trophy and ingredient groups",
			input: "Geralt trades 1 Gryphon trophy, 2 Drowner trophy for 5 Rebis, 3 Vitriol",
			want: types.Command{
				Kind: types.KindTrade,
				Trophies: []types.ItemStack{
					{Name: "Gryphon", Count: 1},
					{Name: "Drowner", Count: 2},
				},
				Ingredients: []types.ItemStack{
					{Name: "Rebis", Count: 5},
					{Name: "Vitriol", Count: 3},
				},
			},
		},
		{
			name:  "missing trophy keyword",
			input: "Geralt trades 2 Wyvern for 5 Rebis",
			want:  invalid,
		},
		{
			name:  "missing for keyword",
			input: "Geralt trades 2 Wyvern trophy 5 Rebis",
			want:  invalid,
		},
		{
			name:  "no goods after for",
			input: "Geralt trades 2 Wyvern trophy for",
			want:  invalid,
		},
		{
			name:  "zero trophy count",
			input: "Geralt trades 0 Wyvern trophy for 5 Rebis",
			want:  invalid,
		},
		{
			name:  "non-alphabetic monster",
			input: "Geralt trades 2 Wyv3rn trophy for 5 Rebis",
			want:  invalid,
		},
		{
			name:  "truncated payment",
			input: "Geralt trades 2 Wyvern",
			want:  invalid,
		},
		{
			name:  "malformed goods section",
			input: "Geralt trades 2 Wyvern trophy for 5 Rebis 3 Vitriol",
			want:  invalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("classify(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_Brew(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		{
			name:  "single-word potion",
			input: "Geralt brews Swallow",
			want:  types.Command{Kind: types.KindBrew, Potion: "Swallow"},
		},
		{
			name:  "multi-word potion",
			input: "Geralt brews Black Blood",
			want:  types.Command{Kind: types.KindBrew, Potion: "Black Blood"},
		},
		{
			name:  "double space inside name",
			input: "Geralt brews Black  Blood",
			want:  invalid,
		},
		{
			name:  "non-alphabetic name",
			input: "Geralt brews Swallow2",
			want:  invalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("classify(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_Learn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		{
			name:  "sign knowledge",
			input: "Geralt learns Igni sign is effective against Harpy",
			want:  types.Command{Kind: types.KindSignKnowledge, Sign: "Igni", Monster: "Harpy"},
		},
		{
			name:  "sign knowledge with extra token",
			input: "Geralt learns Igni sign is effective against Harpy now",
			want:  invalid,
		},
		{
			name:  "sign knowledge with wrong filler",
			input: "Geralt learns Igni sign is strong against Harpy",
			want:  invalid,
		},
		{
			name:  "potion knowledge",
			input: "Geralt learns Swallow potion is effective against Harpy",
			want:  types.Command{Kind: types.KindPotionKnowledge, Potion: "Swallow", Monster: "Harpy"},
		},
		{
			name:  "potion knowledge with multi-word name",
			input: "Geralt learns Black Blood potion is effective against Bruxa",
			want:  types.Command{Kind: types.KindPotionKnowledge, Potion: "Black Blood", Monster: "Bruxa"},
		},
		{
			name:  "monster token compared to final token by value",
			input: "Geralt learns Swallow potion is effective against Harpy Harpy",
			want:  types.Command{Kind: types.KindPotionKnowledge, Potion: "Swallow", Monster: "Harpy"},
		},
		{
			name:  "monster differs from final token",
			input: "Geralt learns Swallow potion is effective against Harpy Bruxa",
			want:  invalid,
		},
		{
			name:  "potion name with double space",
			input: "Geralt learns Black  Blood potion is effective against Bruxa",
			want:  invalid,
		},
		{
			name:  "recipe",
			input: "Geralt learns Swallow potion consists of 3 Vitriol, 2 Rebis",
			want: types.Command{Kind: types.KindPotionRecipe, Potion: "Swallow", Ingredients: []types.ItemStack{
				{Name: "Vitriol", Count: 3},
				{Name: "Rebis", Count: 2},
			}},
		},
		{
			name:  "recipe with multi-word potion",
			input: "Geralt learns Black Blood potion consists of 1 Quebrith",
			want: types.Command{Kind: types.KindPotionRecipe, Potion: "Black Blood", Ingredients: []types.ItemStack{
				{Name: "Quebrith", Count: 1},
			}},
		},
		{
			name:  "recipe with bad group",
			input: "Geralt learns Swallow potion consists of 3 Vitriol 2 Rebis",
			want:  invalid,
		},
		{
			name:  "missing potion keyword",
			input: "Geralt learns Swallow is effective against Harpy",
			want:  invalid,
		},
		{
			name:  "learns with nothing after potion",
			input: "Geralt learns Swallow potion grants swiftness x",
			want:  invalid,
		},
		{
			name:  "too short for any learns form",
			input: "Geralt learns Igni sign",
			want:  invalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("classify(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_Encounter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		{
			name:  "valid encounter",
			input: "Geralt encounters a Harpy",
			want:  types.Command{Kind: types.KindEncounter, Monster: "Harpy"},
		},
		{
			name:  "missing article",
			input: "Geralt encounters Harpy",
			want:  invalid,
		},
		{
			name:  "extra token",
			input: "Geralt encounters a Harpy today",
			want:  invalid,
		},
		{
			name:  "non-alphabetic monster",
			input: "Geralt encounters a Harpy7",
			want:  invalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("classify(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_Questions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		{
			name:  "specific ingredient",
			input: "Total ingredient Rebis ?",
			want:  types.Command{Kind: types.KindIngredientCount, Ingredient: "Rebis"},
		},
		{
			name:  "all ingredients",
			input: "Total ingredient ?",
			want:  types.Command{Kind: types.KindIngredientTotal},
		},
		{
			name:  "specific potion",
			input: "Total potion Swallow ?",
			want:  types.Command{Kind: types.KindPotionCount, Potion: "Swallow"},
		},
		{
			name:  "specific multi-word potion",
			input: "Total potion Black Blood ?",
			want:  types.Command{Kind: types.KindPotionCount, Potion: "Black Blood"},
		},
		{
			name:  "all potions",
			input: "Total potion ?",
			want:  types.Command{Kind: types.KindPotionTotal},
		},
		{
			name:  "specific trophy",
			input: "Total trophy Harpy ?",
			want:  types.Command{Kind: types.KindTrophyCount, Trophy: "Harpy"},
		},
		{
			name:  "all trophies",
			input: "Total trophy ?",
			want:  types.Command{Kind: types.KindTrophyTotal},
		},
		{
			name:  "monster knowledge",
			input: "What is effective against Harpy ?",
			want:  types.Command{Kind: types.KindMonsterKnowledge, Monster: "Harpy"},
		},
		{
			name:  "potion formula",
			input: "What is in Swallow ?",
			want:  types.Command{Kind: types.KindPotionFormula, Potion: "Swallow"},
		},
		{
			name:  "potion formula multi-word",
			input: "What is in Black Blood ?",
			want:  types.Command{Kind: types.KindPotionFormula, Potion: "Black Blood"},
		},
		{
			name:  "question mark glued to name",
			input: "Total ingredient Rebis?",
			want:  types.Command{Kind: types.KindIngredientCount, Ingredient: "Rebis"},
		},
		{
			name:  "non-alphabetic ingredient",
			input: "Total ingredient R3bis ?",
			want:  invalid,
		},
		{
			name:  "extra token after specific ingredient",
			input: "Total ingredient Rebis extra ?",
			want:  invalid,
		},
		{
			name:  "double space in potion name",
			input: "Total potion Black  Blood ?",
			want:  invalid,
		},
		{
			name:  "trophy name must be one word",
			input: "Total trophy Giant Wolf ?",
			want:  invalid,
		},
		{
			name:  "monster knowledge wrong arity",
			input: "What is effective against Giant Wolf ?",
			want:  invalid,
		},
		{
			name:  "formula query with empty name",
			input: "What is in ?",
			want:  invalid,
		},
		{
			name:  "unknown question head",
			input: "Which is in Swallow ?",
			want:  invalid,
		},
		{
			name:  "bare question mark",
			input: "?",
			want:  invalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("classify(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidCompoundName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Swallow", true},
		{"Black Blood", true},
		{"Black  Blood", false},
		{" Swallow", false},
		{"Swallow ", false},
		{"", false},
		{"Sw4llow", false},
	}
	for _, tt := range tests {
		if got := ValidCompoundName(tt.input); got != tt.want {
			t.Errorf("ValidCompoundName(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
