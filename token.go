package lexray

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a token produced by tokenization.
type TokenKind string

const (
	TokenNumeric     TokenKind = "numeric"
	TokenPunctuation TokenKind = "punctuation"
	TokenDateWord    TokenKind = "dateword"
	TokenLiteral     TokenKind = "literal"
)

// Token is one unit of a tokenized expression. Attached marks a token whose
// source text had no preceding whitespace (the trailing parts of a compound
// word such as "16de").
type Token struct {
	Kind     TokenKind
	Text     string
	Attached bool
}

// punctuationAlphabet lists the token strings treated as punctuation,
// including the Arabic and Ethiopic commas used by some locales.
var punctuationAlphabet = []string{",", "/", "-", "—", "–", "–—", ".", "،", "፣"}

var punctuationSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(punctuationAlphabet))
	for _, p := range punctuationAlphabet {
		set[p] = struct{}{}
	}
	return set
}()

// IsPunctuation reports whether s is a punctuation token.
func IsPunctuation(s string) bool {
	_, ok := punctuationSet[s]
	return ok
}

func isPunctuationRune(r rune) bool {
	switch r {
	case '/', ',', '.', '-', '–', '—', '،', '፣':
		return true
	}
	return false
}

var dashSpacing = regexp.MustCompile(`\s*–\s*`)

// NormalizeDashes rewrites em-dashes to en-dashes and strips the whitespace
// around en-dashes so range expressions tokenize uniformly.
func NormalizeDashes(expression string) string {
	normalized := strings.ReplaceAll(expression, "—", "–")
	return dashSpacing.ReplaceAllString(normalized, "–")
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isNumericText reports whether s is a non-empty run of numeric characters.
// Unicode digit runs count: the token grammar admits any \p{N} run.
func isNumericText(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// parseIntValue parses an ASCII digit run. Non-ASCII numerals report ok=false;
// bounds checks and width heuristics skip them rather than misread them.
func parseIntValue(s string) (int, bool) {
	for _, r := range s {
		if !isDigit(r) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// runeLen counts characters, not bytes. Numeric shape rules (1, 2, or 4
// digits) apply per character for non-ASCII numerals too.
func runeLen(s string) int { return utf8.RuneCountInString(s) }
