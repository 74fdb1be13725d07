package lexray

import (
	"fmt"
	"slices"
	"strings"
)

// ReferenceEntry is one row of the canonical English dataset.
type ReferenceEntry struct {
	Skeleton string `json:"english"`
	Header   string `json:"header"`
	Winning  string `json:"winning"`
	Code     string `json:"code"`
	XPath    string `json:"xpath"`
}

// ReferenceMetadata carries the dataset rows backing a confirmed skeleton.
type ReferenceMetadata struct {
	Skeleton string   `json:"skeleton"`
	Codes    []string `json:"codes"`
	XPaths   []string `json:"xpaths"`
}

// ReferenceSet holds the canonical skeleton rows and the pattern-id table.
// Construct once and share; all methods are read-only.
type ReferenceSet struct {
	entries    []ReferenceEntry
	skeletons  []string
	values     map[string]bool
	valid      map[string]bool
	patternIDs map[string]string
}

// NewReferenceSet builds a ReferenceSet from dataset rows. Thin spaces in
// skeleton values are folded to plain spaces. The valid-skeleton set is every
// single-field code plus every (dash-normalized) dataset skeleton.
func NewReferenceSet(entries []ReferenceEntry, patternIDs map[string]string) *ReferenceSet {
	r := &ReferenceSet{
		entries:    make([]ReferenceEntry, 0, len(entries)),
		values:     make(map[string]bool, len(entries)),
		valid:      make(map[string]bool, len(entries)+len(fieldCodes)),
		patternIDs: patternIDs,
	}
	for _, e := range entries {
		e.Skeleton = strings.ReplaceAll(e.Skeleton, " ", " ")
		r.entries = append(r.entries, e)
		if e.Skeleton == "" {
			continue
		}
		r.skeletons = append(r.skeletons, e.Skeleton)
		r.values[e.Skeleton] = true
		r.valid[NormalizeDashes(e.Skeleton)] = true
	}
	for code := range fieldCodes {
		r.valid[code] = true
	}
	// The padded-month fallback synthesizes a skeleton with no dataset row.
	r.valid["MM/y"] = true
	return r
}

// Entries returns the dataset rows, thin spaces already folded.
func (r *ReferenceSet) Entries() []ReferenceEntry { return r.entries }

// Confirm picks the canonical skeleton for the generated candidates, in
// order: a candidate present verbatim in the dataset or made of one repeated
// character; the padded-month fallback MM/y; M/y when a dd/y or month-year
// candidate was generated and the dataset carries M/y; the first dataset
// skeleton structurally matching a candidate; the first candidate with
// hyphens folded to en-dashes. The result must land in the valid-skeleton
// set.
func (r *ReferenceSet) Confirm(expanded []string, original string) (string, error) {
	if len(expanded) == 0 {
		return "", fmt.Errorf("lexray: no official skeleton for %q: %w", original, ErrNoReferenceMatch)
	}
	chosen := r.confirm(expanded)
	if !r.valid[NormalizeDashes(chosen)] {
		return "", fmt.Errorf("lexray: generated skeleton %q is unsupported: %w", chosen, ErrUnsupportedSkeleton)
	}
	return chosen, nil
}

func (r *ReferenceSet) confirm(expanded []string) string {
	for _, opt := range expanded {
		if r.values[opt] || repeatedCharacter(opt) {
			return opt
		}
	}
	for _, opt := range expanded {
		if opt == "MM/y" {
			return "MM/y"
		}
	}
	if r.values["M/y"] {
		for _, opt := range expanded {
			if opt == "dd/y" || opt == "MMM y" || opt == "MMMM y" {
				return "M/y"
			}
		}
	}
	for _, opt := range expanded {
		if match, ok := r.structuralMatch(opt); ok {
			return match
		}
	}
	return strings.ReplaceAll(expanded[0], "-", "–")
}

// structuralMatch finds the first dataset skeleton whose token signature
// equals the candidate's, ignoring dash spelling and spacing.
func (r *ReferenceSet) structuralMatch(candidate string) (string, bool) {
	want := skeletonSignature(candidate)
	for _, value := range r.skeletons {
		if slices.Equal(skeletonSignature(value), want) {
			return value, true
		}
	}
	return "", false
}

// skeletonSignature reduces a skeleton to its token sequence with dashes
// folded to hyphen-minus.
func skeletonSignature(s string) []string {
	return PatternTokens(strings.ReplaceAll(s, "–", "-"))
}

// repeatedCharacter reports whether s consists of one character repeated,
// case-insensitively.
func repeatedCharacter(s string) bool {
	first := rune(-1)
	for _, r := range strings.ToLower(s) {
		if first < 0 {
			first = r
			continue
		}
		if r != first {
			return false
		}
	}
	return first >= 0
}

// Metadata collects the Code/XPath pairs backing a confirmed skeleton.
// Dataset skeletons match by value; repeated-character patterns match named
// rows by field label, narrowed by the first ambiguity's label prefix when a
// disambiguation was made. Anything else reports Unknown.
func (r *ReferenceSet) Metadata(skeleton string, ambiguities []Ambiguity) []ReferenceMetadata {
	var codes, xpaths []string
	switch {
	case r.values[skeleton]:
		for _, e := range r.entries {
			if e.Skeleton == skeleton {
				codes = append(codes, e.Code)
				xpaths = append(xpaths, e.XPath)
			}
		}
	case repeatedCharacter(skeleton):
		field, ok := ParseFieldCode(skeleton)
		if !ok {
			break
		}
		label := field.Label()
		if label == "" {
			break
		}
		prefix := ""
		if len(ambiguities) > 0 {
			prefix = labelCodePrefix(ambiguities[0].Label)
		}
		for _, e := range r.entries {
			if e.Header != label {
				continue
			}
			if prefix != "" && e.Code != prefix {
				continue
			}
			codes = append(codes, e.Code)
			xpaths = append(xpaths, e.XPath)
		}
	}
	if len(codes) == 0 {
		return []ReferenceMetadata{{Skeleton: skeleton, Codes: []string{"Unknown"}, XPaths: []string{"Unknown"}}}
	}
	return []ReferenceMetadata{{Skeleton: skeleton, Codes: codes, XPaths: xpaths}}
}

// PatternID returns the external 16-hex-digit id for a skeleton, or "".
func (r *ReferenceSet) PatternID(skeleton string) string {
	if skeleton == "" || skeleton == "ERROR" {
		return ""
	}
	if id, ok := r.patternIDs[NormalizeDashes(skeleton)]; ok {
		return id
	}
	return r.patternIDs[skeleton]
}

// labelCodePrefix maps a wide-form label to the dataset's row code, e.g.
// "February" to "feb".
func labelCodePrefix(label string) string {
	runes := []rune(label)
	if len(runes) < 3 {
		return strings.ToLower(label)
	}
	return strings.ToLower(string(runes[:3]))
}
