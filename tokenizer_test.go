package lexray

import (
	"path/filepath"
	"reflect"
	"testing"
)

func loadSpanish(t *testing.T) *Dictionary {
	t.Helper()
	dict, err := NewDictionaryLoader("spanish", filepath.Join("testdata", "spanish_dictionary.json")).Load()
	if err != nil {
		t.Fatalf("load spanish dictionary: %v", err)
	}
	return dict
}

func TestNormalizeDashes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"em_dash_to_en_dash", "12—13", "12–13"},
		{"spaces_around_en_dash_collapse", "12 – 13", "12–13"},
		{"hyphen_untouched", "12 - 13", "12 - 13"},
		{"dash_free", "Apr 22, 2022", "Apr 22, 2022"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDashes(tt.in); got != tt.want {
				t.Errorf("NormalizeDashes(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPatternTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "full_date",
			in:   "January 16, 2006",
			want: []string{"January", "16", ",", "2006"},
		},
		{
			name: "day_range",
			in:   "Apr 22-27, 2022",
			want: []string{"Apr", "22", "-", "27", ",", "2022"},
		},
		{
			name: "spaced_en_dash_collapses",
			in:   "12 – 13",
			want: []string{"12", "–", "13"},
		},
		{
			name: "em_dash_normalizes",
			in:   "12—13",
			want: []string{"12", "–", "13"},
		},
		{
			name: "skeleton_string",
			in:   "MMM d – d, y",
			want: []string{"MMM", "d", "–", "d", ",", "y"},
		},
		{
			name: "abbreviation_keeps_period",
			in:   "Jan. 5",
			want: []string{"Jan.", "5"},
		},
		{
			name: "slashes",
			in:   "11/2 - 12/3",
			want: []string{"11", "/", "2", "-", "12", "/", "3"},
		},
		{
			name: "empty",
			in:   "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PatternTokens(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PatternTokens(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSemanticTokens(t *testing.T) {
	spanish := loadSpanish(t)

	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "translated_date",
			in:   "16 de enero de 2006",
			want: []Token{
				{Kind: TokenNumeric, Text: "16"},
				{Kind: TokenLiteral, Text: "de"},
				{Kind: TokenDateWord, Text: "enero"},
				{Kind: TokenLiteral, Text: "de"},
				{Kind: TokenNumeric, Text: "2006"},
			},
		},
		{
			name: "compound_number_and_literal",
			in:   "16de enero",
			want: []Token{
				{Kind: TokenNumeric, Text: "16"},
				{Kind: TokenLiteral, Text: "de", Attached: true},
				{Kind: TokenDateWord, Text: "enero"},
			},
		},
		{
			name: "compound_number_and_month",
			in:   "16enero",
			want: []Token{
				{Kind: TokenNumeric, Text: "16"},
				{Kind: TokenDateWord, Text: "enero", Attached: true},
			},
		},
		{
			name: "abbreviation_with_period",
			in:   "vie., 22 abr.",
			want: []Token{
				{Kind: TokenDateWord, Text: "vie."},
				{Kind: TokenPunctuation, Text: ","},
				{Kind: TokenNumeric, Text: "22"},
				{Kind: TokenDateWord, Text: "abr."},
			},
		},
		{
			name: "case_insensitive_lookup",
			in:   "ENERO",
			want: []Token{
				{Kind: TokenDateWord, Text: "ENERO"},
			},
		},
		{
			name: "numeric_range",
			in:   "2/11 - 3/12",
			want: []Token{
				{Kind: TokenNumeric, Text: "2"},
				{Kind: TokenPunctuation, Text: "/"},
				{Kind: TokenNumeric, Text: "11"},
				{Kind: TokenPunctuation, Text: "-"},
				{Kind: TokenNumeric, Text: "3"},
				{Kind: TokenPunctuation, Text: "/"},
				{Kind: TokenNumeric, Text: "12"},
			},
		},
		{
			name: "unknown_word_stays_whole",
			in:   "foobar 2006",
			want: []Token{
				{Kind: TokenLiteral, Text: "foobar"},
				{Kind: TokenNumeric, Text: "2006"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SemanticTokens(tt.in, spanish); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SemanticTokens(%q) = %+v; want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSemanticTokensMultiWordForm(t *testing.T) {
	months := []string{
		"month one", "month two", "month three", "month four",
		"month five", "month six", "month seven", "month eight",
		"month nine", "month ten", "month eleven", "month twelve",
	}
	dict, err := NewDictionary("test", map[Field][]string{
		{CategoryMonth, WidthWide, ContextFormatting}: months,
	})
	if err != nil {
		t.Fatalf("NewDictionary: %v", err)
	}

	got := SemanticTokens("5 month one 2024", dict)
	want := []Token{
		{Kind: TokenNumeric, Text: "5"},
		{Kind: TokenDateWord, Text: "month one"},
		{Kind: TokenNumeric, Text: "2024"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SemanticTokens = %+v; want %+v", got, want)
	}
}

func TestBreakDownCompoundWord(t *testing.T) {
	spanish := loadSpanish(t)
	elements := spanish.Elements()

	tests := []struct {
		name string
		word string
		want []compoundPart
	}{
		{
			name: "number_then_month",
			word: "16enero",
			want: []compoundPart{
				{TokenNumeric, "16"},
				{TokenDateWord, "enero"},
			},
		},
		{
			name: "number_then_literal",
			word: "16de",
			want: []compoundPart{
				{TokenNumeric, "16"},
				{TokenLiteral, "de"},
			},
		},
		{
			name: "literal_then_number",
			word: "alle16",
			want: []compoundPart{
				{TokenLiteral, "alle"},
				{TokenNumeric, "16"},
			},
		},
		{
			name: "single_part_is_literal",
			word: "enero",
			want: []compoundPart{
				{TokenLiteral, "enero"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := breakDownCompoundWord([]rune(tt.word), elements)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("breakDownCompoundWord(%q) = %+v; want %+v", tt.word, got, tt.want)
			}
		})
	}
}
