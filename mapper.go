package lexray

import (
	"regexp"
	"strings"
)

// mapConfig bounds the mapper's search space. The Converter feeds it from
// options; the package-level entry point uses the defaults.
type mapConfig struct {
	maxVariants    int
	duplicateLimit int
}

const (
	defaultMaxVariants    = 100
	defaultDuplicateLimit = 2
)

func defaultMapConfig() mapConfig {
	return mapConfig{maxVariants: defaultMaxVariants, duplicateLimit: defaultDuplicateLimit}
}

// MapSkeleton projects a confirmed English skeleton onto a translation of the
// same date. English tokens anchor each skeleton code to a value or word;
// target tokens then pick up codes by matching those values and the
// dictionary's forms. Purely numeric expressions map by value alignment,
// everything else positionally, with unrecognized words quoted as literal
// text. The result lists every target skeleton consistent with the evidence,
// usually exactly one.
func MapSkeleton(englishTokens []string, englishSkeleton string, targetTokens []Token, dict *Dictionary, ambiguities []Ambiguity, targetText string) ([]string, error) {
	return mapSkeletonWith(englishTokens, englishSkeleton, targetTokens, dict, ambiguities, targetText, defaultMapConfig())
}

func mapSkeletonWith(englishTokens []string, englishSkeleton string, targetTokens []Token, dict *Dictionary, ambiguities []Ambiguity, targetText string, cfg mapConfig) ([]string, error) {
	if err := validateEnglishDateValues(englishTokens, englishSkeleton); err != nil {
		return nil, err
	}

	skeletonTokens := PatternTokens(englishSkeleton)
	if numericExpression(englishTokens, skeletonTokens, targetTokens) {
		results, ok, err := mapNumericExpression(englishTokens, englishSkeleton, skeletonTokens, targetTokens, cfg)
		if err != nil {
			return nil, err
		}
		if ok {
			return results, nil
		}
		// Ranges the numeric matcher cannot split cleanly fall through.
	}
	return mapGenericExpression(englishTokens, englishSkeleton, skeletonTokens, targetTokens, dict, ambiguities, targetText, cfg)
}

// validateEnglishDateValues bounds-checks the English example against its own
// skeleton before any mapping. Range expressions check each side against its
// skeleton half; a range that does not split into exactly two halves skips
// the check instead of misaligning values and codes.
func validateEnglishDateValues(tokens []string, skeleton string) error {
	if !strings.ContainsAny(skeleton, "-–") {
		return validateDateValues(tokens, PatternTokens(skeleton))
	}
	parts := strings.Split(strings.ReplaceAll(skeleton, "–", "-"), "-")
	dash := indexOfDash(tokens)
	if len(parts) != 2 || dash < 0 {
		return nil
	}
	if err := validateDateValues(tokens[:dash], PatternTokens(parts[0])); err != nil {
		return err
	}
	return validateDateValues(tokens[dash+1:], PatternTokens(parts[1]))
}

// numericExpression reports whether both expressions and the skeleton stay
// within plain numerals and basic separators. Tokens glued to a word and
// numerals outside the ASCII digits disqualify; those map through the
// generic matcher, which works by position and text rather than parsed
// value.
func numericExpression(englishTokens, skeletonTokens []string, targetTokens []Token) bool {
	for _, t := range englishTokens {
		if isNumericSeparator(t) {
			continue
		}
		if !isNumericText(t) {
			return false
		}
		if _, ok := parseIntValue(t); !ok {
			return false
		}
	}
	for _, t := range skeletonTokens {
		if !isNumericFieldCode(t) && !isNumericSeparator(t) {
			return false
		}
	}
	for _, tok := range targetTokens {
		switch tok.Kind {
		case TokenNumeric:
			if tok.Attached {
				return false
			}
			if _, ok := parseIntValue(tok.Text); !ok {
				return false
			}
		case TokenPunctuation:
			if !isNumericSeparator(tok.Text) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

var numericSeparators = map[string]struct{}{
	",": {}, "/": {}, "-": {}, "–": {}, ".": {},
}

func isNumericSeparator(s string) bool {
	_, ok := numericSeparators[s]
	return ok
}

var numericFieldCodeSet = map[string]struct{}{
	"M": {}, "MM": {}, "d": {}, "dd": {}, "y": {}, "yy": {},
}

func isNumericFieldCode(s string) bool {
	_, ok := numericFieldCodeSet[s]
	return ok
}

// elementCodes filters skeleton tokens down to the numeric field codes, in order.
func elementCodes(tokens []string) []string {
	var codes []string
	for _, t := range tokens {
		if isNumericFieldCode(t) {
			codes = append(codes, t)
		}
	}
	return codes
}

// indexOfDash returns the position of the first range dash among tokens,
// hyphen-minus taking precedence over the en-dash, or -1.
func indexOfDash(tokens []string) int {
	for _, dash := range []string{"-", "–"} {
		for i, t := range tokens {
			if t == dash {
				return i
			}
		}
	}
	return -1
}

// splitRangeTokens splits a token list at its range dash.
func splitRangeTokens(tokens []string) (left, right []string, ok bool) {
	i := indexOfDash(tokens)
	if i < 0 {
		return nil, nil, false
	}
	return tokens[:i], tokens[i+1:], true
}

var (
	skeletonSections = regexp.MustCompile(`[,.\-–—\s]+`)
	skeletonCodeRuns = regexp.MustCompile(`M{1,4}|d{1,2}|y{1,2}|E{1,6}|L{1,5}|c{1,6}`)
)

// hasConsistentFormatting reports whether two range sides agree on field
// widths: every field letter present on both sides must show the same most
// common run length. Fields appearing on one side only ("MMM d – d") pass.
func hasConsistentFormatting(left, right string) bool {
	leftWidths := dominantWidths(left)
	rightWidths := dominantWidths(right)
	for letter, width := range leftWidths {
		if other, ok := rightWidths[letter]; ok && other != width {
			return false
		}
	}
	return true
}

// dominantWidths maps each field letter of a rendered skeleton to its most
// common run length, first seen winning ties.
func dominantWidths(skeleton string) map[byte]int {
	runs := make(map[byte][]int)
	for _, section := range skeletonSections.Split(skeleton, -1) {
		for _, run := range skeletonCodeRuns.FindAllString(section, -1) {
			runs[run[0]] = append(runs[run[0]], len(run))
		}
	}
	widths := make(map[byte]int, len(runs))
	for letter, lengths := range runs {
		widths[letter] = mostCommonWidth(lengths)
	}
	return widths
}

func mostCommonWidth(lengths []int) int {
	counts := make(map[int]int, len(lengths))
	var order []int
	for _, n := range lengths {
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
	}
	best := order[0]
	for _, n := range order[1:] {
		if counts[n] > counts[best] {
			best = n
		}
	}
	return best
}
