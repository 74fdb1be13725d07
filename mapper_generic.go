package lexray

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// tokenClass is the mapping role of one target token.
type tokenClass int

const (
	classNumeric tokenClass = iota
	classPunctuation
	classDateWord
	classLiteral
)

// placedToken carries a target token, its role, and the spacing recovered
// from the source text.
type placedToken struct {
	text        string
	class       tokenClass
	spaceBefore bool
}

// mapGenericExpression maps by position and dictionary lookup. Spacing comes
// from the source text, words resolve through both dictionaries, and target
// tokens the English evidence cannot explain render as quoted literal text
// instead of failing the expression.
func mapGenericExpression(englishTokens []string, englishSkeleton string, skeletonTokens []string, targetTokens []Token, dict *Dictionary, ambiguities []Ambiguity, targetText string, cfg mapConfig) ([]string, error) {
	placed := classifyTargetTokens(targetTokens, dict, targetText)
	mappings := englishElementMappings(englishTokens, skeletonTokens, placed, dict, ambiguities)

	var mappable []placedToken
	for _, tok := range placed {
		if tok.class != classNumeric && tok.class != classDateWord {
			continue
		}
		if _, ok := mappings[tok.text]; ok {
			mappable = append(mappable, tok)
		}
	}

	var results []string
	appendResult := func(s string) {
		if s == "" {
			return
		}
		for _, have := range results {
			if have == s {
				return
			}
		}
		results = append(results, s)
	}

	numeric := numericMappables(mappable)
	switch {
	case len(mappable) == 0:
		appendResult(renderAllLiteral(placed))
	case len(numeric) >= 2:
		for _, perm := range numericPermutations(numeric, skeletonTokens, englishTokens, cfg) {
			appendResult(renderWithPermutation(placed, mappings, perm))
			if len(results) >= cfg.maxVariants {
				break
			}
		}
	default:
		appendResult(renderFirstMapping(placed, mappings))
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("lexray: translation does not correspond to the English expression: %w", ErrInadequateMapping)
	}
	results = filterRangeConsistency(results, englishSkeleton)
	if len(results) == 0 {
		return nil, fmt.Errorf("lexray: range sides disagree on field widths: %w", ErrInconsistentRange)
	}
	return results, nil
}

// classifyTargetTokens assigns each token its mapping role and recovers the
// spacing the tokenizer discarded by locating every token in the normalized
// source text. Attached fragments of a compound never take a space.
func classifyTargetTokens(tokens []Token, dict *Dictionary, text string) []placedToken {
	if text == "" {
		text = strings.Join(tokenTexts(tokens), " ")
	}
	normalized := NormalizeDashes(norm.NFC.String(text))

	placed := make([]placedToken, len(tokens))
	pos := 0
	prevEnd := 0
	for i, tok := range tokens {
		start := pos
		if at := strings.Index(normalized[pos:], tok.Text); at >= 0 {
			start = pos + at
		}
		end := start + len(tok.Text)
		placed[i] = placedToken{
			text:        tok.Text,
			class:       classifyToken(tok, dict),
			spaceBefore: i > 0 && !tok.Attached && start > prevEnd,
		}
		pos = end
		prevEnd = end
	}
	return placed
}

// mappingPunctuation is wider than the tokenizer's alphabet: list separators
// of scripts the dictionaries cover pass through as punctuation rather than
// quoted literals.
var mappingPunctuation = map[string]struct{}{
	",": {}, "/": {}, "-": {}, "–": {}, ".": {},
	"،": {}, "؛": {}, "؟": {}, "！": {}, "？": {}, "。": {},
	"ฯ": {}, "ๆ": {}, "־": {}, "፣": {}, "።": {}, "፤": {}, "፥": {},
	"፦": {}, "፧": {}, "፨": {},
}

func classifyToken(tok Token, dict *Dictionary) tokenClass {
	if tok.Kind == TokenNumeric {
		return classNumeric
	}
	if _, ok := mappingPunctuation[tok.Text]; ok {
		return classPunctuation
	}
	if dict.Contains(tok.Text) {
		return classDateWord
	}
	return classLiteral
}

// englishElementMappings connects English evidence to target text fragments.
// Keys are exact target-side texts; values list candidate codes with the
// first one preferred. A later English token overwrites an earlier claim to
// the same text.
func englishElementMappings(englishTokens, skeletonTokens []string, placed []placedToken, dict *Dictionary, ambiguities []Ambiguity) map[string][]string {
	standalone := usesStandaloneCodes(skeletonTokens)
	mappings := make(map[string][]string)
	for i, token := range englishTokens {
		if i >= len(skeletonTokens) {
			break
		}
		switch {
		case isNumericText(token):
			addNumericVariants(mappings, token, skeletonTokens[i], placed)
		case EnglishDictionary().Contains(token):
			addWordVariants(mappings, token, i, dict, ambiguities, standalone)
		}
	}
	return mappings
}

// addNumericVariants registers the code an English number carries plus the
// shape variants a translation may use: zero-padded forms, both widths for
// values the shapes cannot tell apart, and year widths exchanged when the
// target text carries the other one.
func addNumericVariants(mappings map[string][]string, token, code string, placed []placedToken) {
	mappings[token] = []string{code}
	value, parsed := parseIntValue(token)
	switch code {
	case "M", "d":
		padded := code + code
		if runeLen(token) == 1 {
			mappings["0"+token] = []string{padded}
		} else if runeLen(token) == 2 && parsed && value >= 10 {
			mappings[token] = append(mappings[token], padded)
		}
	case "MM", "dd":
		if runeLen(token) == 2 && parsed && value >= 10 {
			mappings[token] = append(mappings[token], code[:1])
		}
	case "y":
		if runeLen(token) == 4 {
			runes := []rune(token)
			mappings[string(runes[len(runes)-2:])] = []string{"yy"}
		}
	case "yy":
		if runeLen(token) == 2 {
			for _, tok := range placed {
				if tok.class == classNumeric && runeLen(tok.text) == 4 && strings.HasSuffix(tok.text, token) {
					mappings[tok.text] = []string{"y"}
					break
				}
			}
		}
	}
}

// addWordVariants maps an English date word through its calendar entity. A
// resolved ambiguity naming this position decides the entity; otherwise the
// first English field carrying the word does. Every width of the target
// translation at the same index then registers under its own text, coded by
// its own width and the context the English skeleton uses.
func addWordVariants(mappings map[string][]string, token string, position int, dict *Dictionary, ambiguities []Ambiguity, standalone bool) {
	field, index := englishWordEntity(token, position, ambiguities)
	if index < 0 {
		return
	}
	if index >= len(dict.Forms(field)) {
		return
	}

	context := ContextFormatting
	if standalone {
		context = ContextStandalone
	}
	codes := variantWidthCodes[context][field.Category]
	if codes == nil {
		return
	}
	for _, variant := range namedFields {
		if variant.Category != field.Category {
			continue
		}
		form := dict.FormAt(variant, index)
		if form == "" {
			continue
		}
		code := codes[variant.Width]
		if code == "" {
			continue
		}
		mappings[form] = []string{code}
	}
}

// variantWidthCodes gives the skeleton code for each dictionary width, split
// by the context the English skeleton carries. Widths here follow CLDR
// letter counts (EEE for an abbreviated weekday), not the single-letter day
// codes the analyzer emits; short forms share the abbreviated code.
var variantWidthCodes = map[FieldContext]map[FieldCategory]map[FieldWidth]string{
	ContextFormatting: {
		CategoryMonth: {
			WidthNarrow:      "M",
			WidthAbbreviated: "MMM",
			WidthWide:        "MMMM",
			WidthShort:       "MMM",
		},
		CategoryWeekday: {
			WidthNarrow:      "E",
			WidthAbbreviated: "EEE",
			WidthWide:        "EEEE",
			WidthShort:       "EEE",
		},
	},
	ContextStandalone: {
		CategoryMonth: {
			WidthNarrow:      "L",
			WidthAbbreviated: "LLL",
			WidthWide:        "LLLL",
			WidthShort:       "LLL",
		},
		CategoryWeekday: {
			WidthNarrow:      "c",
			WidthAbbreviated: "ccc",
			WidthWide:        "cccc",
			WidthShort:       "ccc",
		},
	},
}

// englishWordEntity locates the calendar entity an English token names: a
// resolved ambiguity for the position wins, else the first English field
// containing the word, formatting context first.
func englishWordEntity(token string, position int, ambiguities []Ambiguity) (Field, int) {
	for _, a := range ambiguities {
		if a.Position != position {
			continue
		}
		if idx := canonicalIndex(a.Label, a.Field.Category); idx >= 0 {
			return a.Field, idx
		}
	}
	english := EnglishDictionary()
	occ := english.Occurrences(token, ContextFormatting)
	if len(occ) == 0 {
		occ = english.Occurrences(token, ContextStandalone)
	}
	if len(occ) == 0 {
		return Field{}, -1
	}
	return occ[0].Field, occ[0].Index
}

// usesStandaloneCodes reports whether the confirmed English skeleton carries
// standalone month or weekday codes, which transfer to the target side.
func usesStandaloneCodes(skeletonTokens []string) bool {
	for _, t := range skeletonTokens {
		if strings.HasPrefix(t, "L") || strings.HasPrefix(t, "c") {
			return true
		}
	}
	return false
}

// numericMappables filters placed tokens down to digits with a mapping.
func numericMappables(mappable []placedToken) []placedToken {
	var numeric []placedToken
	for _, tok := range mappable {
		if tok.class == classNumeric {
			numeric = append(numeric, tok)
		}
	}
	return numeric
}

// numericPermutations enumerates code assignments for the mappable digit
// tokens. A target digit matching an English token exactly keeps that
// token's element; the rest consume the skeleton's remaining elements in
// order. Each element expands to the widths its text shape allows, and the
// product drops permutations repeating a category beyond the duplicate
// limit.
func numericPermutations(numeric []placedToken, skeletonTokens []string, englishTokens []string, cfg mapConfig) [][]string {
	elements := elementCodes(skeletonTokens)

	englishElements := make(map[string]string)
	next := 0
	for _, t := range englishTokens {
		if isNumericText(t) && next < len(elements) {
			englishElements[t] = elements[next]
			next++
		}
	}

	var options [][]string
	for _, tok := range numeric {
		element, ok := englishElements[tok.text]
		if !ok {
			if next >= len(elements) {
				continue
			}
			element = elements[next]
			next++
		}
		options = append(options, permutationCodes(tok.text, element))
	}

	perms := [][]string{{}}
	for _, codes := range options {
		var grown [][]string
		for _, perm := range perms {
			for _, code := range codes {
				extended := make([]string, len(perm)+1)
				copy(extended, perm)
				extended[len(perm)] = code
				grown = append(grown, extended)
			}
		}
		perms = grown
		if len(perms) > cfg.maxVariants {
			perms = perms[:cfg.maxVariants]
		}
	}

	kept := perms[:0]
	for _, perm := range perms {
		if withinDuplicateLimit(perm, cfg.duplicateLimit) {
			kept = append(kept, perm)
		}
	}
	return kept
}

// permutationCodes mirrors widthsFor with a defaulting tail: a permutation
// slot always yields at least one code, so an odd shape degrades to the
// minimal width instead of dropping the token.
func permutationCodes(text, element string) []string {
	n := runeLen(text)
	switch element[0] {
	case 'M', 'd':
		minimal := element[:1]
		padded := minimal + minimal
		switch {
		case n == 1:
			return []string{minimal}
		case n == 2 && paddedNumeric(text):
			return []string{padded}
		case n == 2:
			return []string{minimal, padded}
		default:
			return []string{minimal}
		}
	case 'y':
		if n == 2 {
			return []string{"yy"}
		}
		return []string{"y"}
	}
	return []string{element}
}

// withinDuplicateLimit rejects permutations repeating one category more
// often than a two-sided range can justify.
func withinDuplicateLimit(perm []string, limit int) bool {
	counts := make(map[byte]int, len(perm))
	for _, code := range perm {
		if code == "" {
			continue
		}
		counts[code[0]]++
		if counts[code[0]] > limit {
			return false
		}
	}
	return true
}

// appendPart appends text to parts honoring recorded spacing; the first part
// never takes a leading space.
func appendPart(parts []string, text string, spaceBefore bool) []string {
	if spaceBefore && len(parts) > 0 {
		parts = append(parts, " ")
	}
	return append(parts, text)
}

// renderWithPermutation walks the target tokens once, substituting digits
// from the permutation in order, mapped words by their first code, and
// everything else as punctuation or quoted literals.
func renderWithPermutation(placed []placedToken, mappings map[string][]string, perm []string) string {
	var parts []string
	next := 0
	for _, tok := range placed {
		switch tok.class {
		case classPunctuation:
			parts = appendPart(parts, tok.text, tok.spaceBefore)
		case classLiteral:
			parts = appendPart(parts, quoteLiteral(tok.text), tok.spaceBefore)
		default:
			switch {
			case tok.class == classNumeric && next < len(perm):
				parts = appendPart(parts, perm[next], tok.spaceBefore)
				next++
			case len(mappings[tok.text]) > 0:
				parts = appendPart(parts, mappings[tok.text][0], tok.spaceBefore)
			default:
				parts = appendPart(parts, quoteLiteral(tok.text), tok.spaceBefore)
			}
		}
	}
	return strings.Join(parts, "")
}

// renderFirstMapping walks the target tokens once with every mapped token
// taking its first code.
func renderFirstMapping(placed []placedToken, mappings map[string][]string) string {
	var parts []string
	for _, tok := range placed {
		switch tok.class {
		case classPunctuation:
			parts = appendPart(parts, tok.text, tok.spaceBefore)
		case classLiteral:
			parts = appendPart(parts, quoteLiteral(tok.text), tok.spaceBefore)
		default:
			if codes := mappings[tok.text]; len(codes) > 0 {
				parts = appendPart(parts, codes[0], tok.spaceBefore)
			} else {
				parts = appendPart(parts, quoteLiteral(tok.text), tok.spaceBefore)
			}
		}
	}
	return strings.Join(parts, "")
}

// renderAllLiteral renders an expression with no mappable evidence at all:
// punctuation passes, everything else is quoted.
func renderAllLiteral(placed []placedToken) string {
	var parts []string
	for _, tok := range placed {
		if tok.class == classPunctuation {
			parts = appendPart(parts, tok.text, tok.spaceBefore)
		} else {
			parts = appendPart(parts, quoteLiteral(tok.text), tok.spaceBefore)
		}
	}
	return strings.Join(parts, "")
}

func quoteLiteral(s string) string { return "'" + s + "'" }

// filterRangeConsistency applies the width agreement check to rendered range
// skeletons when the English skeleton itself is a range. Renderings without
// a range separator pass untouched.
func filterRangeConsistency(results []string, englishSkeleton string) []string {
	if !strings.Contains(englishSkeleton, " - ") &&
		!strings.Contains(englishSkeleton, "–") &&
		!strings.Contains(englishSkeleton, "—") {
		return results
	}
	kept := results[:0]
	for _, skeleton := range results {
		left, right, ok := splitRangeSkeleton(skeleton)
		if !ok || hasConsistentFormatting(left, right) {
			kept = append(kept, skeleton)
		}
	}
	return kept
}

// splitRangeSkeleton splits a rendered skeleton at its range separator:
// spaced hyphen first, then either dash.
func splitRangeSkeleton(s string) (left, right string, ok bool) {
	for _, sep := range []string{" - ", "–", "—"} {
		if i := strings.Index(s, sep); i >= 0 {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), true
		}
	}
	return "", "", false
}
