package lexray

import (
	"errors"
	"reflect"
	"testing"
)

func newConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestSkeletonFor(t *testing.T) {
	c := newConverter(t)

	tests := []struct {
		name    string
		english string
		want    string
	}{
		{"long_date", "January 16, 2006", "MMMM d, y"},
		{"abbreviated_date", "Jan 16, 2006", "MMM d, y"},
		{"weekday_prefix", "Fri, Apr 22", "E, MMM d"},
		{"slash_date", "1/16/2006", "M/d/y"},
		{"padded_month_year", "05/2006", "MM/y"},
		{"day_year_reads_as_month_year", "22/2006", "M/y"},
		{"day_range", "Apr 22 - 27, 2022", "MMM d – d, y"},
		{"lone_narrow_form", "F", "LLLLL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.SkeletonFor(tt.english)
			if err != nil {
				t.Fatalf("SkeletonFor(%q) error = %v", tt.english, err)
			}
			if result.Skeleton != tt.want {
				t.Errorf("SkeletonFor(%q) = %q; want %q", tt.english, result.Skeleton, tt.want)
			}
		})
	}
}

func TestSkeletonForErrors(t *testing.T) {
	c := newConverter(t)

	tests := []struct {
		name    string
		english string
		want    error
	}{
		{"empty", "", ErrEmptyInput},
		{"whitespace", "   ", ErrEmptyInput},
		{"unknown_word", "Hello 16, 2006", ErrUnrecognizedToken},
		{"three_digit_number", "160/2006", ErrUnrecognizedToken},
		{"trailing_punctuation", "January 16,", ErrUnrecognizedToken},
		{"leading_punctuation", ", January 16", ErrUnrecognizedToken},
		{"value_out_of_range", "45/2006", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.SkeletonFor(tt.english)
			if !errors.Is(err, tt.want) {
				t.Errorf("SkeletonFor(%q) error = %v; want %v", tt.english, err, tt.want)
			}
		})
	}
}

func TestSkeletonForAmbiguity(t *testing.T) {
	c := newConverter(t)

	result, err := c.SkeletonFor("F")
	if err != nil {
		t.Fatalf("SkeletonFor(F) error = %v", err)
	}
	if len(result.Ambiguities) != 1 || result.Ambiguities[0].Label != "February" {
		t.Fatalf("ambiguities = %+v; want February default", result.Ambiguities)
	}
	opts := result.Options[0]
	if len(opts) != 2 || opts[1].Name != "Friday" {
		t.Fatalf("options = %+v; want February then Friday", opts)
	}

	resolved, err := c.ResolveAmbiguities(result.Skeleton, map[int]string{0: "Friday"}, result.Options)
	if err != nil {
		t.Fatalf("ResolveAmbiguities() error = %v", err)
	}
	if resolved.Skeleton != "ccccc" {
		t.Errorf("resolved skeleton = %q; want ccccc", resolved.Skeleton)
	}
	if len(resolved.Metadata) != 1 || !reflect.DeepEqual(resolved.Metadata[0].Codes, []string{"fri"}) {
		t.Errorf("resolved metadata = %+v; want the fri row", resolved.Metadata)
	}
}

func TestConverterYearGuessOption(t *testing.T) {
	// A bare "30" reads as a possible abbreviated year only under the
	// decades policy.
	decades := newConverter(t)
	result, err := decades.SkeletonFor("30")
	if err != nil {
		t.Fatalf("SkeletonFor(30) error = %v", err)
	}
	if result.Skeleton != "d" {
		t.Errorf("skeleton = %q; want d as the first reading", result.Skeleton)
	}

	off := newConverter(t, WithYearGuess(YearGuessOff))
	result, err = off.SkeletonFor("30")
	if err != nil {
		t.Fatalf("SkeletonFor(30) error = %v", err)
	}
	if result.Skeleton != "d" {
		t.Errorf("skeleton = %q; want d", result.Skeleton)
	}

	if _, err := New(WithYearGuess(YearGuessPolicy("maybe"))); err == nil {
		t.Error("New() accepted an unknown year guess policy")
	}
}

func TestConverterOptionValidation(t *testing.T) {
	if _, err := New(WithEnglishDictionary(nil)); !errors.Is(err, ErrMissingDictionary) {
		t.Errorf("nil dictionary error = %v; want ErrMissingDictionary", err)
	}
	if _, err := New(WithReferenceSet(nil)); err == nil {
		t.Error("New() accepted a nil reference set")
	}
	if _, err := New(WithDuplicateFieldLimit(0)); err == nil {
		t.Error("New() accepted a zero duplicate limit")
	}
	if _, err := New(WithMaxMappingVariants(0)); err == nil {
		t.Error("New() accepted a zero variant cap")
	}
}

func TestMapToTarget(t *testing.T) {
	c := newConverter(t)
	spanish := loadSpanish(t)

	t.Run("spanish_long_date", func(t *testing.T) {
		result, err := c.SkeletonFor("January 16, 2006")
		if err != nil {
			t.Fatalf("SkeletonFor() error = %v", err)
		}
		got, err := c.MapToTarget(spanish, "16 de enero de 2006", "January 16, 2006", result.Skeleton, result.Ambiguities)
		if err != nil {
			t.Fatalf("MapToTarget() error = %v", err)
		}
		want := []string{"d 'de' MMMM 'de' y", "dd 'de' MMMM 'de' y"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("MapToTarget() = %v; want %v", got, want)
		}
	})

	t.Run("numeric_reorder", func(t *testing.T) {
		got, err := c.MapToTarget(spanish, "16/1/06", "1/16/2006", "M/d/y", nil)
		if err != nil {
			t.Fatalf("MapToTarget() error = %v", err)
		}
		want := []string{"d/M/yy", "dd/M/yy"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("MapToTarget() = %v; want %v", got, want)
		}
	})

	t.Run("nil_dictionary", func(t *testing.T) {
		_, err := c.MapToTarget(nil, "16 de enero", "January 16", "MMMM d", nil)
		if !errors.Is(err, ErrMissingDictionary) {
			t.Errorf("error = %v; want ErrMissingDictionary", err)
		}
	})

	t.Run("malformed_translation", func(t *testing.T) {
		_, err := c.MapToTarget(spanish, "16 de enero,", "January 16", "MMMM d", nil)
		if !errors.Is(err, ErrUnrecognizedToken) {
			t.Errorf("error = %v; want ErrUnrecognizedToken", err)
		}
	})
}

func TestConverterPatternID(t *testing.T) {
	c := newConverter(t)
	if got, want := c.PatternID("MMMM d, y"), "5d6ea98708b9b43b"; got != want {
		t.Errorf("PatternID = %q; want %q", got, want)
	}
	if got := c.PatternID("ERROR"); got != "" {
		t.Errorf("PatternID(ERROR) = %q; want empty", got)
	}
}
