package lexray

import (
	"fmt"
	"sort"
)

// Ambiguity records the disambiguation applied at one token position: the
// field the token was read as and the wide-form label identifying the
// calendar entity. Until a caller selects otherwise, the label is the first
// option's.
type Ambiguity struct {
	Position int    `json:"position"`
	Field    Field  `json:"field"`
	Label    string `json:"label"`
}

// AmbiguityOption is one disambiguation choice for a token position.
type AmbiguityOption struct {
	Name  string `json:"name"`
	Code  string `json:"skeleton_code"`
	Field Field  `json:"field"`
	Index int    `json:"index"`
}

// DetectAmbiguities finds token positions whose text names more than one
// calendar entity, e.g. a narrow "F" naming both February and Friday. For
// each such position it returns the ordered disambiguation options and an
// Ambiguity defaulting to the first. Ambiguity is not an error.
func DetectAmbiguities(tokens, skeletonTokens []string, dict *Dictionary) ([]Ambiguity, map[int][]AmbiguityOption) {
	var ambiguities []Ambiguity
	options := make(map[int][]AmbiguityOption)

	for i, token := range tokens {
		if i >= len(skeletonTokens) {
			continue
		}
		field, ok := ParseFieldCode(skeletonTokens[i])
		if !ok || !field.Named() {
			continue
		}

		occurrences := dict.Occurrences(token, field.Context)
		if countEntities(occurrences) < 2 {
			continue
		}
		opts := ambiguityOptions(occurrences, dict)
		if len(opts) == 0 {
			continue
		}
		options[i] = opts
		ambiguities = append(ambiguities, Ambiguity{Position: i, Field: opts[0].Field, Label: opts[0].Name})
	}
	return ambiguities, options
}

// countEntities counts distinct calendar entities among occurrences. The
// same entity seen at several widths is one entity.
func countEntities(occurrences []FormOccurrence) int {
	type entity struct {
		category FieldCategory
		index    int
	}
	seen := make(map[entity]bool, len(occurrences))
	for _, occ := range occurrences {
		seen[entity{occ.Field.Category, occ.Index}] = true
	}
	return len(seen)
}

// ambiguityOptions labels each occurrence with the wide form at the same
// index, deduplicated by (label, code), preserving canonical field order.
func ambiguityOptions(occurrences []FormOccurrence, dict *Dictionary) []AmbiguityOption {
	type optionKey struct {
		name, code string
	}
	seen := make(map[optionKey]bool, len(occurrences))
	var opts []AmbiguityOption
	for _, occ := range occurrences {
		wide := Field{Category: occ.Field.Category, Width: WidthWide, Context: occ.Field.Context}
		name := dict.FormAt(wide, occ.Index)
		if name == "" {
			continue
		}
		key := optionKey{name, occ.Field.Code()}
		if seen[key] {
			continue
		}
		seen[key] = true
		opts = append(opts, AmbiguityOption{Name: name, Code: occ.Field.Code(), Field: occ.Field, Index: occ.Index})
	}
	return opts
}

// ResolveSelections applies caller-chosen options to a confirmed skeleton:
// the skeleton token at each selected position is replaced by the option's
// code, the skeleton re-rendered, and metadata re-fetched. Positions without
// options are ignored; a selection naming no known option is an error.
func ResolveSelections(skeleton string, selections map[int]string, options map[int][]AmbiguityOption, ref *ReferenceSet) (string, []Ambiguity, []ReferenceMetadata, error) {
	skeletonTokens := PatternTokens(skeleton)

	positions := make([]int, 0, len(selections))
	for pos := range selections {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	var resolved []Ambiguity
	for _, pos := range positions {
		opts, ok := options[pos]
		if !ok || pos >= len(skeletonTokens) {
			continue
		}
		name := selections[pos]
		var selected *AmbiguityOption
		for j := range opts {
			if opts[j].Name == name {
				selected = &opts[j]
				break
			}
		}
		if selected == nil {
			return "", nil, nil, fmt.Errorf("lexray: %q is not an option at position %d: %w", name, pos, ErrInvalidFormatOptions)
		}
		skeletonTokens[pos] = selected.Code
		resolved = append(resolved, Ambiguity{Position: pos, Field: selected.Field, Label: selected.Name})
	}

	updated := renderSkeleton(skeletonTokens)
	return updated, resolved, ref.Metadata(updated, resolved), nil
}

