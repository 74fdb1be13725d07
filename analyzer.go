package lexray

import (
	"fmt"
	"unicode"
)

// FormatOption is one candidate reading of a token: a calendar field, or the
// punctuation token itself.
type FormatOption struct {
	Field Field
	Punct string
}

func fieldOption(f Field) FormatOption  { return FormatOption{Field: f} }
func punctOption(s string) FormatOption { return FormatOption{Punct: s} }

// IsField reports whether the option reads the token as a calendar field.
func (o FormatOption) IsField() bool { return o.Punct == "" }

// Code returns the symbolic skeleton code for a field option, or the
// punctuation text.
func (o FormatOption) Code() string {
	if o.IsField() {
		return o.Field.Code()
	}
	return o.Punct
}

// FormatOptions holds the ordered candidate readings of a single token.
type FormatOptions []FormatOption

// YearGuessPolicy controls whether two-digit multiples of ten (20-90) are
// offered an abbreviated-year reading.
type YearGuessPolicy string

const (
	YearGuessDecades YearGuessPolicy = "decades"
	YearGuessOff     YearGuessPolicy = "off"
)

type analyzeConfig struct {
	yearGuess bool
}

// AnalyzeTokens resolves each token to its ordered candidate fields. Context
// is standalone when the expression is a single token, formatting otherwise.
// A token no field can account for is an error: out of range for numbers,
// unrecognized for words.
func AnalyzeTokens(tokens []string, dict *Dictionary) ([]FormatOptions, error) {
	return analyzeTokensWith(tokens, dict, analyzeConfig{yearGuess: true})
}

func analyzeTokensWith(tokens []string, dict *Dictionary, cfg analyzeConfig) ([]FormatOptions, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("lexray: no tokens to analyze: %w", ErrEmptyInput)
	}
	context := ContextFormatting
	if len(tokens) == 1 {
		context = ContextStandalone
	}

	all := make([]FormatOptions, 0, len(tokens))
	for _, token := range tokens {
		switch {
		case IsPunctuation(token):
			all = append(all, FormatOptions{punctOption(token)})
		case containsLetter(token):
			options := wordCandidates(token, dict, context)
			if len(options) == 0 {
				return nil, fmt.Errorf("lexray: %q is not a recognized date word: %w", token, ErrUnrecognizedToken)
			}
			all = append(all, options)
		case isNumericText(token):
			options := numericCandidates(token, context, cfg)
			if len(options) == 0 {
				return nil, fmt.Errorf("lexray: %q fits no calendar field: %w", token, ErrOutOfRange)
			}
			all = append(all, options)
		default:
			return nil, fmt.Errorf("lexray: %q is not a recognized date element: %w", token, ErrUnrecognizedToken)
		}
	}
	return all, nil
}

// wordCandidates lists the dictionary fields whose form lists contain the
// token, in canonical field order, one option per field.
func wordCandidates(token string, dict *Dictionary, context FieldContext) FormatOptions {
	var options FormatOptions
	seen := make(map[Field]bool)
	for _, occ := range dict.Occurrences(token, context) {
		if seen[occ.Field] {
			continue
		}
		seen[occ.Field] = true
		options = append(options, fieldOption(occ.Field))
	}
	return options
}

// numericCandidates lists the fields a digit token can stand for, pruned by
// the calendar bounds: month at most 12, day of month at most 31. Tokens in
// non-ASCII numerals keep every length-based candidate since their value is
// not computed.
func numericCandidates(token string, context FieldContext, cfg analyzeConfig) FormatOptions {
	value, known := parseIntValue(token)
	fits := func(limit int) bool { return !known || value <= limit }

	var options FormatOptions
	switch runeLen(token) {
	case 4:
		options = append(options, fieldOption(Field{CategoryYear, WidthNumeric, ContextFormatting}))
	case 2:
		if paddedNumeric(token) {
			if fits(31) {
				options = append(options, fieldOption(Field{CategoryMonthDay, WidthPadded, context}))
			}
			if fits(12) {
				options = append(options, fieldOption(Field{CategoryMonth, WidthPadded, context}))
			}
			options = append(options, fieldOption(Field{CategoryYear, WidthAbbreviated, context}))
			break
		}
		if fits(31) {
			options = append(options,
				fieldOption(Field{CategoryMonthDay, WidthNumeric, context}),
				fieldOption(Field{CategoryMonthDay, WidthPadded, context}))
		}
		if fits(12) {
			options = append(options,
				fieldOption(Field{CategoryMonth, WidthNumeric, context}),
				fieldOption(Field{CategoryMonth, WidthPadded, context}))
		}
		if cfg.yearGuess && known && value >= 20 && value <= 99 && value%10 == 0 {
			options = append(options, fieldOption(Field{CategoryYear, WidthAbbreviated, context}))
		}
	case 1:
		options = append(options,
			fieldOption(Field{CategoryMonthDay, WidthNumeric, context}),
			fieldOption(Field{CategoryMonth, WidthNumeric, context}))
	}
	return options
}

func paddedNumeric(token string) bool {
	return len(token) > 0 && token[0] == '0'
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
