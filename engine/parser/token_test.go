package parser

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \t ",
			want:  nil,
		},
		{
			name:  "plain words",
			input: "Geralt brews Swallow",
			want:  []string{"Geralt", "brews", "Swallow"},
		},
		{
			name:  "runs of whitespace collapse",
			input: "Geralt   loots\t5  Rebis",
			want:  []string{"Geralt", "loots", "5", "Rebis"},
		},
		{
			name:  "comma glued to word",
			input: "5 Rebis,",
			want:  []string{"5", "Rebis", ","},
		},
		{
			name:  "comma between words",
			input: "5 Rebis, 3 Vitriol",
			want:  []string{"5", "Rebis", ",", "3", "Vitriol"},
		},
		{
			name:  "question mark glued to word",
			input: "Total ingredient Rebis?",
			want:  []string{"Total", "ingredient", "Rebis", "?"},
		},
		{
			name:  "adjacent punctuation",
			input: "a,,b?",
			want:  []string{"a", ",", ",", "b", "?"},
		},
		{
			name:  "punctuation only",
			input: ",?",
			want:  []string{",", "?"},
		},
		{
			name:  "no other punctuation is special",
			input: "R3b!s-x",
			want:  []string{"R3b!s-x"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(Tokenize(tt.input))
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize_OffsetsSpanSource(t *testing.T) {
	line := "Geralt  loots 5 Rebis, 3  Vitriol?"
	for _, tok := range Tokenize(line) {
		if got := line[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("offsets [%d:%d] give %q, want %q", tok.Start, tok.End, got, tok.Text)
		}
	}
}
