package lexray

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/number"
)

// Verified-file columns.
const (
	columnXPathKey        = "XPATH"
	columnEnglishVerified = "ENGLISH_SKELETON_VERIFIED"
	columnTargetVerified  = "TARGET_SKELETON_VERIFIED"
)

// SkeletonComparison grades one generated skeleton cell against its verified
// counterpart. Cells may carry several options joined by "; "; a single
// matching option counts as an exact match.
type SkeletonComparison struct {
	ExactMatch                bool     `json:"exact_match"`
	PartialMatch              bool     `json:"partial_match"`
	ContainsVerified          bool     `json:"contains_verified"`
	VerifiedContainsGenerated bool     `json:"verified_contains_generated"`
	SimilarityScore           float64  `json:"similarity_score"`
	BestMatch                 string   `json:"best_match,omitempty"`
	Differences               []string `json:"differences,omitempty"`
}

// CompareSkeletons splits both cells into options, normalizing ", " joins to
// "; " and dash variants, and grades every generated option against every
// verified one.
func CompareSkeletons(generated, verified string) SkeletonComparison {
	if generated == "" || verified == "" {
		return SkeletonComparison{Differences: []string{"Missing data"}}
	}

	generatedOptions := skeletonOptions(generated)
	verifiedOptions := skeletonOptions(verified)

	var cmp SkeletonComparison
	for _, gen := range generatedOptions {
		for _, ver := range verifiedOptions {
			if gen == ver {
				cmp.ExactMatch = true
			}
			if strings.Contains(gen, ver) {
				cmp.ContainsVerified = true
			}
			if strings.Contains(ver, gen) {
				cmp.VerifiedContainsGenerated = true
			}
			if similarity := optionSimilarity(gen, ver); similarity > cmp.SimilarityScore {
				cmp.SimilarityScore = similarity
				cmp.BestMatch = ver
			}
		}
	}
	cmp.PartialMatch = cmp.ContainsVerified || cmp.VerifiedContainsGenerated

	if !cmp.ExactMatch {
		cmp.Differences = append(cmp.Differences,
			fmt.Sprintf("Generated options: %q", generatedOptions),
			fmt.Sprintf("Expected options: %q", verifiedOptions))
		if cmp.BestMatch != "" {
			cmp.Differences = append(cmp.Differences,
				fmt.Sprintf("Best match: %q (similarity: %.2f)", cmp.BestMatch, cmp.SimilarityScore))
		}
	}
	return cmp
}

func skeletonOptions(cell string) []string {
	normalized := strings.ReplaceAll(NormalizeDashes(cell), ", ", "; ")
	parts := strings.Split(normalized, ";")
	options := make([]string, 0, len(parts))
	for _, part := range parts {
		options = append(options, strings.TrimSpace(part))
	}
	return options
}

// optionSimilarity is the share of the longer option's runes that the
// generated option has in common with the verified one.
func optionSimilarity(generated, verified string) float64 {
	total := max(runeLen(generated), runeLen(verified))
	if total == 0 {
		return 0
	}
	common := 0
	for _, r := range generated {
		if strings.ContainsRune(verified, r) {
			common++
		}
	}
	return float64(common) / float64(total)
}

// RowValidation is one graded results row.
type RowValidation struct {
	Row               int                `json:"row_index"`
	Key               string             `json:"key"`
	EnglishGenerated  string             `json:"english_generated"`
	EnglishVerified   string             `json:"english_verified"`
	EnglishValidation SkeletonComparison `json:"english_validation"`
	TargetGenerated   string             `json:"target_generated"`
	TargetVerified    string             `json:"target_verified"`
	TargetValidation  SkeletonComparison `json:"target_validation"`
}

type AccuracySummary struct {
	TotalRows       int     `json:"total_rows"`
	EnglishAccuracy float64 `json:"english_accuracy"`
	TargetAccuracy  float64 `json:"target_accuracy"`
	OverallAccuracy float64 `json:"overall_accuracy"`
	EnglishCorrect  int     `json:"english_correct"`
	TargetCorrect   int     `json:"target_correct"`
}

type AccuracyReport struct {
	Summary  AccuracySummary `json:"summary"`
	Detailed []RowValidation `json:"detailed_results"`
}

// ValidateResults grades a batch results CSV against a verified-skeleton
// CSV. Rows join on the XPATH column when both files carry one, otherwise on
// the ENGLISH column; results rows without a verified entry stay in the
// denominator but produce no detail row.
func ValidateResults(results, verified io.Reader) (*AccuracyReport, error) {
	resultRows, resultColumns, err := readTable(results)
	if err != nil {
		return nil, fmt.Errorf("lexray: read results: %w", err)
	}
	verifiedRows, verifiedColumns, err := readTable(verified)
	if err != nil {
		return nil, fmt.Errorf("lexray: read verified data: %w", err)
	}

	keyColumn := columnXPathKey
	if _, ok := resultColumns[keyColumn]; !ok {
		keyColumn = batchColumnEnglish
	}
	resultKey, ok := resultColumns[keyColumn]
	if !ok {
		return nil, fmt.Errorf("lexray: results must contain an %s or %s column", columnXPathKey, batchColumnEnglish)
	}
	verifiedKey, ok := verifiedColumns[keyColumn]
	if !ok {
		return nil, fmt.Errorf("lexray: verified data must contain a %s column", keyColumn)
	}

	verifiedIndex := make(map[string][]string, len(verifiedRows))
	for _, row := range verifiedRows {
		key := cellAt(row, verifiedKey)
		if _, dup := verifiedIndex[key]; !dup {
			verifiedIndex[key] = row
		}
	}

	englishGeneratedCol := columnOrMissing(resultColumns, batchColumnEnglishSkeleton)
	targetGeneratedCol := columnOrMissing(resultColumns, batchColumnTargetSkeleton)
	englishVerifiedCol := columnOrMissing(verifiedColumns, columnEnglishVerified)
	targetVerifiedCol := columnOrMissing(verifiedColumns, columnTargetVerified)

	report := &AccuracyReport{Summary: AccuracySummary{TotalRows: len(resultRows)}}
	for i, row := range resultRows {
		key := cellAt(row, resultKey)
		verifiedRow, ok := verifiedIndex[key]
		if !ok {
			continue
		}

		englishComparison := CompareSkeletons(cellAt(row, englishGeneratedCol), cellAt(verifiedRow, englishVerifiedCol))
		targetComparison := CompareSkeletons(cellAt(row, targetGeneratedCol), cellAt(verifiedRow, targetVerifiedCol))
		if englishComparison.ExactMatch {
			report.Summary.EnglishCorrect++
		}
		if targetComparison.ExactMatch {
			report.Summary.TargetCorrect++
		}

		report.Detailed = append(report.Detailed, RowValidation{
			Row:               i,
			Key:               key,
			EnglishGenerated:  cellAt(row, englishGeneratedCol),
			EnglishVerified:   cellAt(verifiedRow, englishVerifiedCol),
			EnglishValidation: englishComparison,
			TargetGenerated:   cellAt(row, targetGeneratedCol),
			TargetVerified:    cellAt(verifiedRow, targetVerifiedCol),
			TargetValidation:  targetComparison,
		})
	}

	if total := report.Summary.TotalRows; total > 0 {
		report.Summary.EnglishAccuracy = float64(report.Summary.EnglishCorrect) / float64(total)
		report.Summary.TargetAccuracy = float64(report.Summary.TargetCorrect) / float64(total)
		report.Summary.OverallAccuracy = float64(report.Summary.EnglishCorrect+report.Summary.TargetCorrect) / float64(total*2)
	}
	return report, nil
}

func readTable(in io.Reader) ([][]string, map[string]int, error) {
	reader := newBatchReader(in)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty CSV file")
	}
	return rows[1:], columnIndex(rows[0]), nil
}

func columnOrMissing(columns map[string]int, name string) int {
	if i, ok := columns[name]; ok {
		return i
	}
	return -1
}

// Export writes the report in the named format: json, csv, or txt.
func (r *AccuracyReport) Export(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(r)
	case "csv":
		return r.writeCSV(w)
	case "txt":
		return r.writeText(w)
	default:
		return fmt.Errorf("lexray: unsupported report format %q", format)
	}
}

func (r *AccuracyReport) writeCSV(w io.Writer) error {
	rows := [][]string{
		{"Metric", "Value"},
		{"total_rows", fmt.Sprint(r.Summary.TotalRows)},
		{"english_accuracy", fmt.Sprint(r.Summary.EnglishAccuracy)},
		{"target_accuracy", fmt.Sprint(r.Summary.TargetAccuracy)},
		{"overall_accuracy", fmt.Sprint(r.Summary.OverallAccuracy)},
		{"english_correct", fmt.Sprint(r.Summary.EnglishCorrect)},
		{"target_correct", fmt.Sprint(r.Summary.TargetCorrect)},
		{""},
	}
	if len(r.Detailed) > 0 {
		rows = append(rows, []string{
			"Row", "Key", "English_Generated", "English_Verified",
			"English_Exact_Match", "English_Similarity", "Target_Generated",
			"Target_Verified", "Target_Exact_Match", "Target_Similarity",
		})
		for _, result := range r.Detailed {
			rows = append(rows, []string{
				strconv.Itoa(result.Row),
				result.Key,
				result.EnglishGenerated,
				result.EnglishVerified,
				strconv.FormatBool(result.EnglishValidation.ExactMatch),
				fmt.Sprintf("%.2f", result.EnglishValidation.SimilarityScore),
				result.TargetGenerated,
				result.TargetVerified,
				strconv.FormatBool(result.TargetValidation.ExactMatch),
				fmt.Sprintf("%.2f", result.TargetValidation.SimilarityScore),
			})
		}
	}
	return csv.NewWriter(w).WriteAll(rows)
}

func (r *AccuracyReport) writeText(w io.Writer) error {
	var b strings.Builder
	b.WriteString("CLDR Skeleton Validation Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("-", 10) + "\n")
	fmt.Fprintf(&b, "total_rows: %d\n", r.Summary.TotalRows)
	statsPrinter.Fprintf(&b, "english_accuracy: %v\n", number.Percent(r.Summary.EnglishAccuracy, number.MaxFractionDigits(1)))
	statsPrinter.Fprintf(&b, "target_accuracy: %v\n", number.Percent(r.Summary.TargetAccuracy, number.MaxFractionDigits(1)))
	statsPrinter.Fprintf(&b, "overall_accuracy: %v\n", number.Percent(r.Summary.OverallAccuracy, number.MaxFractionDigits(1)))
	fmt.Fprintf(&b, "english_correct: %d\n", r.Summary.EnglishCorrect)
	fmt.Fprintf(&b, "target_correct: %d\n\n", r.Summary.TargetCorrect)

	b.WriteString("DETAILED RESULTS\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for _, result := range r.Detailed {
		fmt.Fprintf(&b, "Row %d:\n", result.Row)
		fmt.Fprintf(&b, "  Key: %s\n", result.Key)
		fmt.Fprintf(&b, "  English: Generated=%q vs Verified=%q\n", result.EnglishGenerated, result.EnglishVerified)
		fmt.Fprintf(&b, "  English Match: %t (Similarity: %.2f)\n", result.EnglishValidation.ExactMatch, result.EnglishValidation.SimilarityScore)
		fmt.Fprintf(&b, "  Target: Generated=%q vs Verified=%q\n", result.TargetGenerated, result.TargetVerified)
		fmt.Fprintf(&b, "  Target Match: %t (Similarity: %.2f)\n\n", result.TargetValidation.ExactMatch, result.TargetValidation.SimilarityScore)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
