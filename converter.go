package lexray

import (
	"errors"
	"fmt"
)

// Converter is the package's front door. It owns the English dictionary, the
// reference dataset, and the mapping limits, and runs the pipeline from an
// example date to a confirmed skeleton and onward to other languages.
type Converter struct {
	english   *Dictionary
	reference *ReferenceSet
	yearGuess YearGuessPolicy
	mapping   mapConfig
}

// Option configures a Converter during construction.
type Option func(*Converter) error

// New builds a Converter. Without options it carries the embedded English
// reference data and the default limits.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		english:   EnglishDictionary(),
		yearGuess: YearGuessDecades,
		mapping:   defaultMapConfig(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.reference == nil {
		ref, err := DefaultReferenceSet()
		if err != nil {
			return nil, err
		}
		c.reference = ref
	}
	return c, nil
}

// WithEnglishDictionary replaces the embedded English forms.
func WithEnglishDictionary(d *Dictionary) Option {
	return func(c *Converter) error {
		if d == nil {
			return fmt.Errorf("lexray: nil English dictionary: %w", ErrMissingDictionary)
		}
		c.english = d
		return nil
	}
}

// WithReferenceSet replaces the embedded reference dataset.
func WithReferenceSet(r *ReferenceSet) Option {
	return func(c *Converter) error {
		if r == nil {
			return errors.New("lexray: nil reference set")
		}
		c.reference = r
		return nil
	}
}

// WithYearGuess sets the heuristic for reading bare two-digit numbers as
// abbreviated years.
func WithYearGuess(policy YearGuessPolicy) Option {
	return func(c *Converter) error {
		switch policy {
		case YearGuessDecades, YearGuessOff:
			c.yearGuess = policy
			return nil
		default:
			return fmt.Errorf("lexray: unknown year guess policy %q", policy)
		}
	}
}

// WithDuplicateFieldLimit caps how many times one field category may repeat
// in a mapped skeleton. Two covers both sides of a range.
func WithDuplicateFieldLimit(n int) Option {
	return func(c *Converter) error {
		if n < 1 {
			return errors.New("lexray: duplicate field limit must be at least 1")
		}
		c.mapping.duplicateLimit = n
		return nil
	}
}

// WithMaxMappingVariants caps the mapper's search breadth per expression.
func WithMaxMappingVariants(n int) Option {
	return func(c *Converter) error {
		if n < 1 {
			return errors.New("lexray: mapping variant cap must be at least 1")
		}
		c.mapping.maxVariants = n
		return nil
	}
}

// SkeletonResult carries a confirmed skeleton with everything a caller needs
// to present it: the ambiguous positions with their options, and the
// reference rows backing the skeleton.
type SkeletonResult struct {
	Skeleton    string                    `json:"english_skeleton"`
	Ambiguities []Ambiguity               `json:"ambiguities,omitempty"`
	Options     map[int][]AmbiguityOption `json:"ambiguity_options,omitempty"`
	Metadata    []ReferenceMetadata       `json:"metadata,omitempty"`
}

// SkeletonFor infers the CLDR skeleton behind an English example date.
func (c *Converter) SkeletonFor(english string) (*SkeletonResult, error) {
	tokens := PatternTokens(english)
	if err := ValidateTokens(tokens, "English string"); err != nil {
		return nil, err
	}
	if err := ValidateEnglishTokens(tokens, c.english); err != nil {
		return nil, err
	}

	candidates, err := analyzeTokensWith(tokens, c.english, analyzeConfig{yearGuess: c.yearGuess == YearGuessDecades})
	if err != nil {
		return nil, err
	}
	combos, err := GenerateCombinations(candidates)
	if err != nil {
		return nil, err
	}
	expanded := ExpandDashVariations(RenderSkeletons(combos))

	chosen, err := c.reference.Confirm(expanded, english)
	if err != nil {
		return nil, err
	}

	ambiguities, options := DetectAmbiguities(tokens, PatternTokens(chosen), c.english)
	return &SkeletonResult{
		Skeleton:    chosen,
		Ambiguities: ambiguities,
		Options:     options,
		Metadata:    c.reference.Metadata(chosen, ambiguities),
	}, nil
}

// ResolveAmbiguities applies caller selections to a previously inferred
// skeleton and returns the updated result. Selections index into the Options
// of the earlier SkeletonResult by token position.
func (c *Converter) ResolveAmbiguities(skeleton string, selections map[int]string, options map[int][]AmbiguityOption) (*SkeletonResult, error) {
	updated, resolved, meta, err := ResolveSelections(skeleton, selections, options, c.reference)
	if err != nil {
		return nil, err
	}
	return &SkeletonResult{
		Skeleton:    updated,
		Ambiguities: resolved,
		Options:     options,
		Metadata:    meta,
	}, nil
}

// MapToTarget maps a confirmed English skeleton onto its translation in the
// dictionary's language. Resolved ambiguities carry over so the translation
// follows the caller's reading of the English example.
func (c *Converter) MapToTarget(dict *Dictionary, translation, english, englishSkeleton string, ambiguities []Ambiguity) ([]string, error) {
	if dict == nil {
		return nil, fmt.Errorf("lexray: no dictionary for the target language: %w", ErrMissingDictionary)
	}
	targetTokens := SemanticTokens(translation, dict)
	if err := validateSemanticTokens(targetTokens, "Target language string"); err != nil {
		return nil, err
	}
	return mapSkeletonWith(PatternTokens(english), englishSkeleton, targetTokens, dict, ambiguities, translation, c.mapping)
}

// PatternID returns the stable identifier of a confirmed skeleton, or ""
// when the dataset carries none.
func (c *Converter) PatternID(skeleton string) string {
	return c.reference.PatternID(skeleton)
}
