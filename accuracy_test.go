package lexray

import (
	"strings"
	"testing"
)

func TestCompareSkeletons(t *testing.T) {
	tests := []struct {
		name      string
		generated string
		verified  string
		exact     bool
		partial   bool
	}{
		{"identical", "MMMM d, y", "MMMM d, y", true, false},
		{"one_option_matches", "d/M/y; dd/M/y", "dd/M/y", true, false},
		{"dash_spelling_folds", "MMM d–d, y", "MMM d—d, y", true, false},
		{"substring", "MMM dd", "MMM d", false, true},
		{"unrelated", "d/M", "y", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := CompareSkeletons(tt.generated, tt.verified)
			if cmp.ExactMatch != tt.exact {
				t.Errorf("ExactMatch = %v; want %v", cmp.ExactMatch, tt.exact)
			}
			if !tt.exact && cmp.PartialMatch != tt.partial {
				t.Errorf("PartialMatch = %v; want %v", cmp.PartialMatch, tt.partial)
			}
			if !tt.exact && len(cmp.Differences) == 0 {
				t.Error("mismatch reported no differences")
			}
		})
	}

	t.Run("missing_data", func(t *testing.T) {
		cmp := CompareSkeletons("", "MMMM d, y")
		if cmp.ExactMatch || len(cmp.Differences) != 1 || cmp.Differences[0] != "Missing data" {
			t.Errorf("comparison = %+v; want a single Missing data difference", cmp)
		}
	})
}

func TestValidateResults(t *testing.T) {
	results := strings.NewReader("ENGLISH,ENGLISH_SKELETON,TARGET_SKELETON\n" +
		`"January 16, 2006","MMMM d, y","d 'de' MMMM 'de' y"` + "\n" +
		"1/16/2006,M/d/y,d/M/y\n" +
		"5/2006,M/y,M/y\n")
	verified := strings.NewReader("ENGLISH,ENGLISH_SKELETON_VERIFIED,TARGET_SKELETON_VERIFIED\n" +
		`"January 16, 2006","MMMM d, y","d 'de' MMMM 'de' y"` + "\n" +
		"1/16/2006,M/d/y,dd/MM/y\n")

	report, err := ValidateResults(results, verified)
	if err != nil {
		t.Fatalf("ValidateResults() error = %v", err)
	}

	if report.Summary.TotalRows != 3 {
		t.Errorf("TotalRows = %d; want all results rows counted", report.Summary.TotalRows)
	}
	if report.Summary.EnglishCorrect != 2 || report.Summary.TargetCorrect != 1 {
		t.Errorf("correct = %d/%d; want 2 english, 1 target", report.Summary.EnglishCorrect, report.Summary.TargetCorrect)
	}
	if len(report.Detailed) != 2 {
		t.Fatalf("detailed rows = %d; want 2 matched rows", len(report.Detailed))
	}
	first := report.Detailed[0]
	if first.Key != "January 16, 2006" || !first.EnglishValidation.ExactMatch || !first.TargetValidation.ExactMatch {
		t.Errorf("first detail = %+v; want exact matches on both sides", first)
	}
	second := report.Detailed[1]
	if second.TargetValidation.ExactMatch {
		t.Errorf("second target comparison = %+v; want a mismatch", second.TargetValidation)
	}
}

func TestValidateResultsExport(t *testing.T) {
	results := strings.NewReader("ENGLISH,ENGLISH_SKELETON,TARGET_SKELETON\n1/16/2006,M/d/y,d/M/y\n")
	verified := strings.NewReader("ENGLISH,ENGLISH_SKELETON_VERIFIED,TARGET_SKELETON_VERIFIED\n1/16/2006,M/d/y,d/M/y\n")
	report, err := ValidateResults(results, verified)
	if err != nil {
		t.Fatalf("ValidateResults() error = %v", err)
	}

	var out strings.Builder
	if err := report.Export(&out, "txt"); err != nil {
		t.Fatalf("Export(txt) error = %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "english_accuracy: 100%") {
		t.Errorf("text report missing accuracy line:\n%s", text)
	}

	out.Reset()
	if err := report.Export(&out, "csv"); err != nil {
		t.Fatalf("Export(csv) error = %v", err)
	}
	if !strings.Contains(out.String(), "english_correct,1") {
		t.Errorf("csv report missing correct count:\n%s", out.String())
	}
}
