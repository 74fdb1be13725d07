package lexray

import (
	"errors"
	"reflect"
	"testing"
)

func analyzed(t *testing.T, tokens []string) []FormatOptions {
	t.Helper()
	options, err := AnalyzeTokens(tokens, EnglishDictionary())
	if err != nil {
		t.Fatalf("AnalyzeTokens(%q): %v", tokens, err)
	}
	return options
}

func TestGenerateCombinations(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   [][]string
	}{
		{
			name:   "single_token",
			tokens: []string{"F"},
			want:   [][]string{{"LLLLL"}, {"ccccc"}},
		},
		{
			name:   "full_date",
			tokens: []string{"January", "16", ",", "2006"},
			want: [][]string{
				{"MMMM", "d", ",", "y"},
				{"MMMM", "dd", ",", "y"},
			},
		},
		{
			name:   "duplicate_category_rejected_within_section",
			tokens: []string{"1", "2"},
			want: [][]string{
				{"d", "M"},
				{"M", "d"},
			},
		},
		{
			name:   "year_never_doubles",
			tokens: []string{"05", "/", "2006"},
			want: [][]string{
				{"dd", "/", "y"},
				{"MM", "/", "y"},
			},
		},
		{
			name:   "range_sections_recombine_around_dash",
			tokens: []string{"22", "-", "27"},
			want: [][]string{
				{"d", "-", "d"},
				{"d", "-", "dd"},
				{"dd", "-", "d"},
				{"dd", "-", "dd"},
			},
		},
		{
			name:   "range_with_shared_year",
			tokens: []string{"Apr", "22", "-", "27", ",", "2022"},
			want: [][]string{
				{"MMM", "d", "-", "d", ",", "y"},
				{"MMM", "d", "-", "dd", ",", "y"},
				{"MMM", "dd", "-", "d", ",", "y"},
				{"MMM", "dd", "-", "dd", ",", "y"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateCombinations(analyzed(t, tt.tokens))
			if err != nil {
				t.Fatalf("GenerateCombinations error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateCombinations(%q) = %v; want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestGenerateCombinationsErrors(t *testing.T) {
	t.Run("no_options", func(t *testing.T) {
		if _, err := GenerateCombinations(nil); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("error = %v; want %v", err, ErrEmptyInput)
		}
	})

	t.Run("single_token_punctuation", func(t *testing.T) {
		options := []FormatOptions{{punctOption(",")}}
		if _, err := GenerateCombinations(options); !errors.Is(err, ErrInvalidFormatOptions) {
			t.Errorf("error = %v; want %v", err, ErrInvalidFormatOptions)
		}
	})
}
