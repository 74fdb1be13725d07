package lexray

import (
	"strings"
	"testing"
)

func TestStatsReport(t *testing.T) {
	stats := NewStats()
	stats.RecordPair("MMMM d, y", "d 'de' MMMM 'de' y")
	stats.RecordPair("MMMM d, y", "d 'de' MMMM 'de' y")
	stats.RecordPair("M/d/y", "d/M/y")
	stats.RecordPair("ERROR", "ERROR")

	report := stats.Report()

	if report.Summary.TotalRows != 4 {
		t.Errorf("TotalRows = %d; want 4", report.Summary.TotalRows)
	}
	if report.Summary.SuccessfulEnglish != 3 || report.Summary.SuccessfulTarget != 3 {
		t.Errorf("successes = %d/%d; want 3/3", report.Summary.SuccessfulEnglish, report.Summary.SuccessfulTarget)
	}
	if report.Summary.EnglishSuccessRate != 0.75 {
		t.Errorf("EnglishSuccessRate = %v; want 0.75", report.Summary.EnglishSuccessRate)
	}

	freq := report.FrequencyAnalysis.EnglishSkeletons
	if len(freq) != 3 || freq[0].Value != "MMMM d, y" || freq[0].Count != 2 {
		t.Errorf("english frequencies = %v; want MMMM d, y first with count 2", freq)
	}

	components := report.FrequencyAnalysis.TargetComponents
	literal := false
	for _, entry := range components.Literals {
		if entry.Value == "'de'" && entry.Count == 4 {
			literal = true
		}
	}
	if !literal {
		t.Errorf("literals = %v; want 'de' counted 4 times", components.Literals)
	}

	if report.FrequencyAnalysis.TotalEnglish != 3 {
		t.Errorf("TotalEnglish = %d; want 3 distinct skeletons", report.FrequencyAnalysis.TotalEnglish)
	}
}

func TestStatsFormatLengths(t *testing.T) {
	stats := NewStats()
	stats.RecordEnglish("MMMM d, y")
	stats.RecordEnglish("MMM d, y")
	stats.RecordEnglish("M/d/y")

	report := stats.Report()
	lengths := make(map[string]int)
	for _, entry := range report.FormatAnalysis.EnglishFormatLengths {
		lengths[entry.Value] = entry.Count
	}
	if lengths["month_wide"] != 1 || lengths["month_abbreviated"] != 1 || lengths["month_narrow"] != 1 {
		t.Errorf("format lengths = %v; want one of each month width", lengths)
	}
}

func TestStatsReportExport(t *testing.T) {
	stats := NewStats()
	stats.RecordEnglish("MMMM d, y")
	report := stats.Report()

	t.Run("json", func(t *testing.T) {
		var out strings.Builder
		if err := report.Export(&out, "json"); err != nil {
			t.Fatalf("Export(json) error = %v", err)
		}
		if !strings.Contains(out.String(), `"total_rows": 1`) {
			t.Errorf("json output missing total_rows: %s", out.String())
		}
	})

	t.Run("csv", func(t *testing.T) {
		var out strings.Builder
		if err := report.Export(&out, "csv"); err != nil {
			t.Fatalf("Export(csv) error = %v", err)
		}
		if !strings.Contains(out.String(), "total_rows,1") {
			t.Errorf("csv output missing total_rows: %s", out.String())
		}
	})

	t.Run("txt", func(t *testing.T) {
		var out strings.Builder
		if err := report.Export(&out, "txt"); err != nil {
			t.Fatalf("Export(txt) error = %v", err)
		}
		if !strings.Contains(out.String(), "ENGLISH SKELETON FREQUENCIES") {
			t.Errorf("text output missing section header: %s", out.String())
		}
	})

	t.Run("unknown_format", func(t *testing.T) {
		var out strings.Builder
		if err := report.Export(&out, "xml"); err == nil {
			t.Error("Export(xml) succeeded")
		}
	})
}
