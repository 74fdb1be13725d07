package lexray

import "fmt"

// GenerateCombinations expands per-token candidates into every coherent code
// sequence. A single-token expression yields one singleton combination per
// candidate, all of which must be field codes. Longer expressions are split
// into sections at dash and period separators; candidates multiply out within
// each section, a category never repeats inside a section, and sections
// recombine around their separators.
func GenerateCombinations(options []FormatOptions) ([][]string, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("lexray: no format options: %w", ErrEmptyInput)
	}
	if len(options) == 1 {
		combos := make([][]string, 0, len(options[0]))
		for _, opt := range options[0] {
			if !opt.IsField() {
				return nil, fmt.Errorf("lexray: %q cannot stand alone: %w", opt.Code(), ErrInvalidFormatOptions)
			}
			combos = append(combos, []string{opt.Code()})
		}
		return combos, nil
	}

	var (
		sections [][]FormatOptions
		joints   []string
		current  []FormatOptions
	)
	for _, tokenOptions := range options {
		if sep, ok := sectionSeparator(tokenOptions); ok {
			if len(current) > 0 {
				sections = append(sections, current)
				current = nil
			}
			joints = append(joints, sep)
			continue
		}
		current = append(current, tokenOptions)
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}

	products := make([][][]FormatOption, len(sections))
	for i, section := range sections {
		products[i] = sectionCombos(section)
	}

	var combos [][]string
	forEachProduct(products, func(choice [][]FormatOption) {
		parts := make([]string, 0, len(options))
		for si, combo := range choice {
			if si > 0 && si-1 < len(joints) {
				parts = append(parts, joints[si-1])
			}
			for _, opt := range combo {
				parts = append(parts, opt.Code())
			}
		}
		// Ranges repeat categories across their sides; anything else may not.
		if !containsDashCode(parts) && duplicateCategoryCodes(parts) {
			return
		}
		combos = append(combos, parts)
	})
	return combos, nil
}

// sectionSeparator reports whether a token is pinned as a section separator.
func sectionSeparator(options FormatOptions) (string, bool) {
	if len(options) != 1 || options[0].IsField() {
		return "", false
	}
	switch options[0].Punct {
	case "-", "–", "—", ".":
		return options[0].Punct, true
	}
	return "", false
}

// sectionCombos multiplies out one section's candidates and drops
// combinations that assign a field category twice.
func sectionCombos(section []FormatOptions) [][]FormatOption {
	combos := [][]FormatOption{nil}
	for _, tokenOptions := range section {
		next := make([][]FormatOption, 0, len(combos)*len(tokenOptions))
		for _, combo := range combos {
			for _, opt := range tokenOptions {
				extended := make([]FormatOption, len(combo), len(combo)+1)
				copy(extended, combo)
				extended = append(extended, opt)
				next = append(next, extended)
			}
		}
		combos = next
	}

	var valid [][]FormatOption
	for _, combo := range combos {
		if duplicateFieldCategory(combo) {
			continue
		}
		valid = append(valid, combo)
	}
	return valid
}

// forEachProduct visits the cross product of per-section combinations, first
// section varying slowest. Any empty section empties the product.
func forEachProduct(products [][][]FormatOption, visit func([][]FormatOption)) {
	if len(products) == 0 {
		return
	}
	for _, p := range products {
		if len(p) == 0 {
			return
		}
	}
	idx := make([]int, len(products))
	for {
		choice := make([][]FormatOption, len(products))
		for i, j := range idx {
			choice[i] = products[i][j]
		}
		visit(choice)

		k := len(idx) - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(products[k]) {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return
		}
	}
}

func duplicateFieldCategory(combo []FormatOption) bool {
	seen := make(map[FieldCategory]bool, len(combo))
	for _, opt := range combo {
		if !opt.IsField() {
			continue
		}
		if seen[opt.Field.Category] {
			return true
		}
		seen[opt.Field.Category] = true
	}
	return false
}

func duplicateCategoryCodes(codes []string) bool {
	seen := make(map[FieldCategory]bool, len(codes))
	for _, code := range codes {
		cat := fieldCodeCategory(code)
		if cat == "" {
			continue
		}
		if seen[cat] {
			return true
		}
		seen[cat] = true
	}
	return false
}

func containsDashCode(parts []string) bool {
	for _, p := range parts {
		if p == "-" || p == "–" {
			return true
		}
	}
	return false
}
