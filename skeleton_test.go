package lexray

import (
	"reflect"
	"testing"
)

func TestRenderSkeletons(t *testing.T) {
	tests := []struct {
		name  string
		combo []string
		want  string
	}{
		{"space_between_content", []string{"MMMM", "d"}, "MMMM d"},
		{"no_space_before_comma", []string{"MMMM", "d", ",", "y"}, "MMMM d, y"},
		{"no_space_around_slash", []string{"M", "/", "d", "/", "y"}, "M/d/y"},
		{"no_space_around_dash", []string{"MMM", "d", "-", "d", ",", "y"}, "MMM d-d, y"},
		{"comma_then_content", []string{"E", ",", "MMM", "d"}, "E, MMM d"},
		{"single_code", []string{"LLLL"}, "LLLL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderSkeletons([][]string{tt.combo})
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("RenderSkeletons(%v) = %v; want [%q]", tt.combo, got, tt.want)
			}
		})
	}
}

func TestRenderSkeletonsIdempotent(t *testing.T) {
	combos := [][]string{
		{"MMMM", "d", ",", "y"},
		{"MMM", "d", "-", "d", ",", "y"},
	}
	first := RenderSkeletons(combos)
	second := RenderSkeletons(combos)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated rendering differs: %v vs %v", first, second)
	}
}

func TestExpandDashVariations(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		want    []string
	}{
		{
			name:    "dash_free_unchanged",
			options: []string{"MMMM d, y"},
			want:    []string{"MMMM d, y"},
		},
		{
			name:    "hyphen_doubles",
			options: []string{"M/d-M/d"},
			want:    []string{"M/d-M/d", "M/d–M/d"},
		},
		{
			name:    "en_dash_doubles",
			options: []string{"d–d"},
			want:    []string{"d-d", "d–d"},
		},
		{
			name:    "both_spellings_deduplicate",
			options: []string{"d-d", "d–d"},
			want:    []string{"d-d", "d–d"},
		},
		{
			name:    "mixed_list",
			options: []string{"MMM d, y", "MMM d-d, y"},
			want:    []string{"MMM d, y", "MMM d-d, y", "MMM d–d, y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandDashVariations(tt.options)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandDashVariations(%v) = %v; want %v", tt.options, got, tt.want)
			}
		})
	}
}
