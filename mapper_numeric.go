package lexray

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// mapNumericExpression matches digits to digits. Each English value earns
// its skeleton code by position; a target value can take any code its exact
// value earned, plus a year code when it is the truncated or expanded form
// of the English year. The bool result is false when a range does not split
// into two clean sides, which sends the expression to the generic matcher.
func mapNumericExpression(englishTokens []string, englishSkeleton string, skeletonTokens []string, targetTokens []Token, cfg mapConfig) ([]string, bool, error) {
	for _, pair := range pairValueComponents(englishTokens, skeletonTokens) {
		switch pair.code[0] {
		case 'M':
			if pair.value > 12 {
				return nil, false, fmt.Errorf("lexray: %d is out of bounds for month of the year: %w", pair.value, ErrOutOfRange)
			}
		case 'd':
			if pair.value > 31 {
				return nil, false, fmt.Errorf("lexray: %d is out of bounds for day of the month: %w", pair.value, ErrOutOfRange)
			}
		}
	}

	targetTexts := tokenTexts(targetTokens)
	eLeft, eRight, englishDash := splitRangeTokens(englishTokens)
	tLeft, tRight, targetDash := splitRangeTokens(targetTexts)

	if englishDash && targetDash {
		if len(eLeft) == 0 || len(eRight) == 0 || len(tLeft) == 0 || len(tRight) == 0 {
			return nil, false, nil
		}
		parts := strings.Split(strings.ReplaceAll(englishSkeleton, "–", "-"), "-")
		if len(parts) != 2 {
			return nil, false, nil
		}
		left := sideSkeletons(eLeft, strings.TrimSpace(parts[0]), tLeft, cfg)
		right := sideSkeletons(eRight, strings.TrimSpace(parts[1]), tRight, cfg)
		if len(left) == 0 || len(right) == 0 {
			return nil, false, fmt.Errorf("lexray: inadequate mapping of numeric elements in range: %w", ErrInadequateMapping)
		}
		var results []string
		for _, l := range left {
			for _, r := range right {
				if hasConsistentFormatting(l, r) {
					results = append(results, l+" - "+r)
				}
			}
		}
		if len(results) == 0 {
			return nil, false, fmt.Errorf("lexray: range sides disagree on field widths: %w", ErrInconsistentRange)
		}
		return results, true, nil
	}

	results := sideSkeletons(englishTokens, englishSkeleton, targetTexts, cfg)
	if len(results) == 0 {
		return nil, false, fmt.Errorf("lexray: inadequate mapping of numeric elements: %w", ErrInadequateMapping)
	}
	return results, true, nil
}

// sideSkeletons renders every skeleton one side of the target expression can
// carry, deduplicated and sorted. Nil means some target value has no English
// component to account for it.
func sideSkeletons(englishTokens []string, skeleton string, targetTexts []string, cfg mapConfig) []string {
	englishValues := numericTexts(englishTokens)
	targetValues := numericTexts(targetTexts)
	if len(englishValues) == 0 || len(targetValues) == 0 {
		return nil
	}

	pairs := pairValueComponents(englishTokens, PatternTokens(skeleton))
	byValue := make(map[int][]string)
	for _, p := range pairs {
		byValue[p.value] = append(byValue[p.value], p.code)
	}

	available := make([][]string, len(targetValues))
	for i, text := range targetValues {
		comps := availableComponents(text, byValue, pairs)
		if len(comps) == 0 {
			return nil
		}
		available[i] = comps
	}

	sep := detectSeparator(targetTexts)

	var (
		results  []string
		rendered = make(map[string]struct{})
		codes    = make([]string, 0, len(targetValues))
		used     = make(map[componentUse]int)
	)
	var assign func(i int)
	assign = func(i int) {
		if len(results) >= cfg.maxVariants {
			return
		}
		if i == len(targetValues) {
			s := strings.Join(codes, sep)
			if _, dup := rendered[s]; !dup {
				rendered[s] = struct{}{}
				results = append(results, s)
			}
			return
		}
		text := targetValues[i]
		for _, comp := range available[i] {
			use := componentUse{text: text, comp: comp}
			if used[use] >= componentAllowance(text, comp, byValue) {
				continue
			}
			for _, width := range widthsFor(text, comp) {
				used[use]++
				codes = append(codes, width)
				assign(i + 1)
				codes = codes[:len(codes)-1]
				used[use]--
			}
		}
	}
	assign(0)

	sort.Strings(results)
	return results
}

// componentUse keys the per-branch usage count of one (value, component)
// assignment.
type componentUse struct {
	text string
	comp string
}

// componentAllowance returns how many target values may claim this component:
// as many as the exact English matches earned, or a single use for a year
// claimed through truncation or expansion.
func componentAllowance(text, comp string, byValue map[int][]string) int {
	value, _ := parseIntValue(text)
	exact := 0
	for _, c := range byValue[value] {
		if c == comp {
			exact++
		}
	}
	if comp == "y" && runeLen(text) == 2 && exact == 0 {
		return 1
	}
	if exact < 1 {
		return 1
	}
	return exact
}

// availableComponents lists the abstract components a target value can stand
// for: every code its exact value earned on the English side, plus a year
// when a two-digit value matches the tail of a four-digit English year, or a
// four-digit value restores a two-digit English one.
func availableComponents(text string, byValue map[int][]string, pairs []valueComponent) []string {
	value, ok := parseIntValue(text)
	if !ok {
		return nil
	}
	comps := append([]string(nil), byValue[value]...)
	switch runeLen(text) {
	case 2:
		for _, p := range pairs {
			if len(strconv.Itoa(p.value)) == 4 && p.value%100 == value && p.code[0] == 'y' {
				comps = append(comps, "y")
				break
			}
		}
	case 4:
		for _, p := range pairs {
			if p.code == "yy" && p.value == value%100 {
				comps = append(comps, "y")
				break
			}
		}
	}
	return comps
}

// widthsFor expands an abstract component into the concrete widths a target
// token of this shape can render. Zero-padded values lock to the padded
// width; a bare two-digit month or day stays open to both.
func widthsFor(text, comp string) []string {
	n := runeLen(text)
	switch comp[0] {
	case 'y':
		switch n {
		case 4:
			return []string{"y"}
		case 2:
			return []string{"yy"}
		}
	case 'M':
		switch {
		case n == 1:
			return []string{"M"}
		case n == 2 && paddedNumeric(text):
			return []string{"MM"}
		case n == 2:
			return []string{"M", "MM"}
		}
	case 'd':
		switch {
		case n == 1:
			return []string{"d"}
		case n == 2 && paddedNumeric(text):
			return []string{"dd"}
		case n == 2:
			return []string{"d", "dd"}
		}
	}
	return nil
}

// valueComponent pairs one numeric English token with the skeleton code its
// position earned.
type valueComponent struct {
	text  string
	value int
	code  string
}

// pairValueComponents aligns numeric English tokens with the skeleton's
// numeric codes in order of appearance. Values past the last code drop.
func pairValueComponents(tokens, skeletonTokens []string) []valueComponent {
	codes := elementCodes(skeletonTokens)
	pairs := make([]valueComponent, 0, len(codes))
	for _, t := range tokens {
		if len(pairs) == len(codes) {
			break
		}
		if !isNumericText(t) {
			continue
		}
		value, ok := parseIntValue(t)
		if !ok {
			continue
		}
		pairs = append(pairs, valueComponent{text: t, value: value, code: codes[len(pairs)]})
	}
	return pairs
}

// detectSeparator picks the joining punctuation for a rendered side, slash
// when the side carries none.
func detectSeparator(texts []string) string {
	for _, sep := range []string{"/", ".", "-", "–"} {
		for _, t := range texts {
			if t == sep {
				return sep
			}
		}
	}
	return "/"
}

func numericTexts(texts []string) []string {
	var values []string
	for _, t := range texts {
		if isNumericText(t) {
			values = append(values, t)
		}
	}
	return values
}

func tokenTexts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}
