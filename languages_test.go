package lexray

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegistryLanguages(t *testing.T) {
	reg := NewRegistry("testdata")
	got, err := reg.Languages()
	if err != nil {
		t.Fatalf("Languages() error = %v", err)
	}
	// english_reference.json and german_elements.csv ignore the
	// <language>_dictionary naming and stay out of the listing.
	want := []string{"french", "spanish"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v; want %v", got, want)
	}
}

func TestRegistryDictionary(t *testing.T) {
	reg := NewRegistry("testdata")

	dict, err := reg.Dictionary("spanish")
	if err != nil {
		t.Fatalf("Dictionary(spanish) error = %v", err)
	}
	if dict.Language() != "spanish" || !dict.Contains("enero") {
		t.Errorf("loaded dictionary = %q with enero=%v", dict.Language(), dict.Contains("enero"))
	}

	again, err := reg.Dictionary("Spanish")
	if err != nil {
		t.Fatalf("Dictionary(Spanish) error = %v", err)
	}
	if again != dict {
		t.Error("second lookup did not hit the cache")
	}

	prefixed, err := reg.Dictionary("fre")
	if err != nil {
		t.Fatalf("Dictionary(fre) error = %v", err)
	}
	if prefixed.Language() != "french" {
		t.Errorf("prefix lookup loaded %q; want french", prefixed.Language())
	}

	_, err = reg.Dictionary("klingon")
	if !errors.Is(err, ErrMissingDictionary) {
		t.Errorf("Dictionary(klingon) error = %v; want ErrMissingDictionary", err)
	}
	_, err = reg.Dictionary("  ")
	if !errors.Is(err, ErrMissingDictionary) {
		t.Errorf("Dictionary(blank) error = %v; want ErrMissingDictionary", err)
	}
}

func TestRegistryDisplayName(t *testing.T) {
	reg := NewRegistry("testdata")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bcp47_tag", "fr", "French"},
		{"plain_name", "spanish", "Spanish"},
		{"mixed_case", "FRENCH", "French"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.DisplayName(tt.in); got != tt.want {
				t.Errorf("DisplayName(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}
