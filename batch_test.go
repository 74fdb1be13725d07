package lexray

import (
	"encoding/csv"
	"strings"
	"testing"
)

func parseOutput(t *testing.T, out string) [][]string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parse batch output: %v", err)
	}
	return rows
}

func TestProcessEnglish(t *testing.T) {
	runner := NewBatchRunner(newConverter(t))

	in := strings.NewReader("ENGLISH\n" +
		`"January 16, 2006"` + "\n" +
		"1/16/2006\n" +
		"\n" +
		"Hello world\n")
	var out strings.Builder
	if err := runner.ProcessEnglish(in, &out); err != nil {
		t.Fatalf("ProcessEnglish() error = %v", err)
	}

	rows := parseOutput(t, out.String())
	if len(rows) != 4 {
		t.Fatalf("got %d rows; want header plus 3 data rows", len(rows))
	}
	if rows[0][0] != "ENGLISH" || rows[0][1] != "ENGLISH_SKELETON" || rows[0][2] != "PATTERN_ID" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "MMMM d, y" || rows[1][2] != "5d6ea98708b9b43b" {
		t.Errorf("long date row = %v", rows[1])
	}
	if rows[2][1] != "M/d/y" || rows[2][2] != "4af189b39e4e8ddf" {
		t.Errorf("slash date row = %v", rows[2])
	}
	if rows[3][1] != "ERROR" || rows[3][2] != "" {
		t.Errorf("failed row = %v; want ERROR with no pattern id", rows[3])
	}

	report := runner.Stats().Report()
	if report.Summary.TotalRows != 3 || report.Summary.SuccessfulEnglish != 2 {
		t.Errorf("summary = %+v; want 3 rows, 2 successes", report.Summary)
	}
}

func TestProcessEnglishHeaderRequired(t *testing.T) {
	runner := NewBatchRunner(newConverter(t))
	var out strings.Builder
	if err := runner.ProcessEnglish(strings.NewReader("DATE\n1/16/2006\n"), &out); err == nil {
		t.Error("ProcessEnglish() accepted a file without an ENGLISH column")
	}
}

func TestProcessPairs(t *testing.T) {
	runner := NewBatchRunner(newConverter(t))
	spanish := loadSpanish(t)

	in := strings.NewReader("ENGLISH,TARGET\n" +
		`"January 16, 2006","16 de enero de 2006"` + "\n" +
		"1/16/2006,16/1/06\n" +
		"Hello,hola\n")
	var out strings.Builder
	if err := runner.ProcessPairs(in, &out, spanish); err != nil {
		t.Fatalf("ProcessPairs() error = %v", err)
	}

	rows := parseOutput(t, out.String())
	if len(rows) != 4 {
		t.Fatalf("got %d rows; want header plus 3 data rows", len(rows))
	}
	if rows[1][2] != "MMMM d, y" {
		t.Errorf("english skeleton = %q", rows[1][2])
	}
	if rows[1][3] != "d 'de' MMMM 'de' y; dd 'de' MMMM 'de' y" {
		t.Errorf("target skeleton = %q; want both variants joined", rows[1][3])
	}
	if rows[2][3] != "d/M/yy; dd/M/yy" {
		t.Errorf("numeric target skeleton = %q", rows[2][3])
	}
	if rows[3][2] != "ERROR" || rows[3][3] != "ERROR" {
		t.Errorf("failed row = %v; want ERROR in both skeleton columns", rows[3])
	}

	report := runner.Stats().Report()
	if report.Summary.TotalRows != 3 || report.Summary.SuccessfulTarget != 2 {
		t.Errorf("summary = %+v; want 3 rows, 2 target successes", report.Summary)
	}
}

func TestProcessPairsNilDictionary(t *testing.T) {
	runner := NewBatchRunner(newConverter(t))
	var out strings.Builder
	err := runner.ProcessPairs(strings.NewReader("ENGLISH,TARGET\n"), &out, nil)
	if err == nil {
		t.Error("ProcessPairs() accepted a nil dictionary")
	}
}

func TestBatchProgress(t *testing.T) {
	var calls []int
	runner := NewBatchRunner(newConverter(t)).WithProgress(2, func(rows int) {
		calls = append(calls, rows)
	})

	in := strings.NewReader("ENGLISH\n1/16/2006\n2/17/2006\n3/18/2006\n4/19/2006\n5/20/2006\n")
	var out strings.Builder
	if err := runner.ProcessEnglish(in, &out); err != nil {
		t.Fatalf("ProcessEnglish() error = %v", err)
	}
	if len(calls) != 2 || calls[0] != 2 || calls[1] != 4 {
		t.Errorf("progress calls = %v; want [2 4]", calls)
	}
}
