package lexray

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
)

// monthFormCount and weekdayFormCount fix the list lengths the index-alignment
// invariant depends on: position i names the same calendar unit in every width.
const (
	monthFormCount   = 12
	weekdayFormCount = 7
)

// Dictionary holds one language's date vocabulary: ordered form lists per
// named field, plus the derived lexicon used for tokenization and membership
// tests. A Dictionary is immutable after construction.
type Dictionary struct {
	language string
	forms    map[Field][]string
	fields   []Field
	elements []string
	lexicon  []string
	folded   map[string]struct{}
}

// FormOccurrence locates one textual form inside a dictionary.
type FormOccurrence struct {
	Field Field
	Index int
}

// NewDictionary builds an immutable dictionary from per-field form lists.
// Month fields must carry exactly 12 forms and weekday fields exactly 7;
// absent fields are allowed, short or long lists are not.
func NewDictionary(language string, forms map[Field][]string) (*Dictionary, error) {
	d := &Dictionary{
		language: language,
		forms:    make(map[Field][]string, len(forms)),
		folded:   make(map[string]struct{}),
	}

	for _, field := range namedFields {
		list, ok := forms[field]
		if !ok || len(list) == 0 {
			continue
		}

		want := monthFormCount
		if field.Category == CategoryWeekday {
			want = weekdayFormCount
		}
		if len(list) != want {
			return nil, fmt.Errorf("lexray: %s %s forms for %q: got %d, want %d",
				language, field.Label(), field.Code(), len(list), want)
		}

		d.forms[field] = append([]string(nil), list...)
		d.fields = append(d.fields, field)
	}

	for field := range forms {
		if !field.Named() {
			return nil, fmt.Errorf("lexray: field %q carries no textual forms", field.Code())
		}
	}

	d.buildLexicon()
	return d, nil
}

func (d *Dictionary) buildLexicon() {
	seen := make(map[string]struct{})
	for _, field := range d.fields {
		for _, form := range d.forms[field] {
			if form == "" {
				continue
			}
			if _, ok := seen[form]; !ok {
				seen[form] = struct{}{}
				d.lexicon = append(d.lexicon, form)
			}
			d.folded[fold(form)] = struct{}{}
		}
	}

	// Longest first, ties keep lexicon order, so prefix scans take the
	// widest form available.
	d.elements = append([]string(nil), d.lexicon...)
	sort.SliceStable(d.elements, func(i, j int) bool {
		return runeLen(d.elements[i]) > runeLen(d.elements[j])
	})
}

// Language returns the language name the dictionary was loaded for.
func (d *Dictionary) Language() string {
	if d == nil {
		return ""
	}
	return d.language
}

// Fields returns the present named fields for a context, in canonical order.
func (d *Dictionary) Fields(context FieldContext) []Field {
	if d == nil {
		return nil
	}
	fields := make([]Field, 0, len(d.fields))
	for _, field := range d.fields {
		if field.Context == context {
			fields = append(fields, field)
		}
	}
	return fields
}

// Forms returns the ordered form list for a field, nil when absent.
func (d *Dictionary) Forms(field Field) []string {
	if d == nil {
		return nil
	}
	return d.forms[field]
}

// FormAt returns the form at a calendar index, or "" when out of range.
func (d *Dictionary) FormAt(field Field, index int) string {
	forms := d.Forms(field)
	if index < 0 || index >= len(forms) {
		return ""
	}
	return forms[index]
}

// Elements returns every distinct form, longest first.
func (d *Dictionary) Elements() []string {
	if d == nil {
		return nil
	}
	return d.elements
}

// Lexicon returns every distinct form in dictionary order.
func (d *Dictionary) Lexicon() []string {
	if d == nil {
		return nil
	}
	return d.lexicon
}

// Contains reports whether token is a known form, compared case-folded.
func (d *Dictionary) Contains(token string) bool {
	if d == nil {
		return false
	}
	_, ok := d.folded[fold(token)]
	return ok
}

// Occurrences returns every (field, index) position whose form equals token
// case-insensitively, restricted to one context, in canonical field order.
func (d *Dictionary) Occurrences(token string, context FieldContext) []FormOccurrence {
	if d == nil {
		return nil
	}
	folded := fold(token)
	var hits []FormOccurrence
	for _, field := range d.fields {
		if field.Context != context {
			continue
		}
		for i, form := range d.forms[field] {
			if fold(form) == folded {
				hits = append(hits, FormOccurrence{Field: field, Index: i})
			}
		}
	}
	return hits
}

// fold case-folds for membership comparisons across scripts.
func fold(s string) string {
	return cases.Fold().String(s)
}
