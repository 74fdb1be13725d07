package lexray

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var statsPrinter = message.NewPrinter(language.English)

// statsPunctuation is the separator set counted by component analysis.
var statsPunctuation = map[string]bool{",": true, "-": true, "–": true, "/": true, ".": true}

// Stats aggregates skeleton outcomes across a batch run. An ERROR cell
// counts as a failure but still appears in the frequency tables, so failed
// rows stay visible in reports.
type Stats struct {
	totalRows        int
	englishSuccesses int
	targetSuccesses  int
	englishSkeletons map[string]int
	targetSkeletons  map[string]int
	hasTargets       bool
}

func NewStats() *Stats {
	return &Stats{
		englishSkeletons: make(map[string]int),
		targetSkeletons:  make(map[string]int),
	}
}

// RecordEnglish counts one English-only row.
func (s *Stats) RecordEnglish(skeleton string) {
	s.totalRows++
	if skeleton != "" {
		s.englishSkeletons[skeleton]++
	}
	if succeeded(skeleton) {
		s.englishSuccesses++
	}
}

// RecordPair counts one pairs-mode row.
func (s *Stats) RecordPair(english, target string) {
	s.RecordEnglish(english)
	s.hasTargets = true
	if target != "" {
		s.targetSkeletons[target]++
	}
	if succeeded(target) {
		s.targetSuccesses++
	}
}

func succeeded(skeleton string) bool {
	return skeleton != "" && skeleton != errorCell
}

// PatternCount is one value/frequency pair, ordered by descending count.
type PatternCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type StatsSummary struct {
	TotalRows          int     `json:"total_rows"`
	SuccessfulEnglish  int     `json:"successful_english_processing"`
	SuccessfulTarget   int     `json:"successful_target_processing"`
	EnglishSuccessRate float64 `json:"english_success_rate"`
	TargetSuccessRate  float64 `json:"target_success_rate"`
}

// ComponentAnalysis breaks skeletons into space-separated components and
// buckets them as date elements, punctuation, and quoted literals.
type ComponentAnalysis struct {
	Components       []PatternCount `json:"component_frequencies"`
	DateElements     []PatternCount `json:"date_element_frequencies"`
	Punctuation      []PatternCount `json:"punctuation_frequencies"`
	Literals         []PatternCount `json:"literal_text_frequencies"`
	UniqueComponents int            `json:"total_unique_components"`
	LiteralTexts     int            `json:"total_literal_texts"`
}

type FrequencyAnalysis struct {
	EnglishSkeletons  []PatternCount    `json:"english_skeleton_frequencies"`
	TargetSkeletons   []PatternCount    `json:"target_skeleton_frequencies"`
	EnglishComponents ComponentAnalysis `json:"english_component_analysis"`
	TargetComponents  ComponentAnalysis `json:"target_component_analysis"`
	TotalEnglish      int               `json:"total_english_patterns"`
	TotalTarget       int               `json:"total_target_patterns"`
	TotalRows         int               `json:"total_rows"`
}

type FormatAnalysis struct {
	EnglishFormatLengths []PatternCount `json:"english_format_lengths"`
	TargetFormatLengths  []PatternCount `json:"target_format_lengths"`
}

type StatsReport struct {
	Summary           StatsSummary      `json:"summary"`
	FrequencyAnalysis FrequencyAnalysis `json:"frequency_analysis"`
	FormatAnalysis    FormatAnalysis    `json:"format_analysis"`
}

// Report renders the collected counters into an exportable analysis.
func (s *Stats) Report() *StatsReport {
	summary := StatsSummary{
		TotalRows:         s.totalRows,
		SuccessfulEnglish: s.englishSuccesses,
		SuccessfulTarget:  s.targetSuccesses,
	}
	if s.totalRows > 0 {
		summary.EnglishSuccessRate = float64(s.englishSuccesses) / float64(s.totalRows)
		summary.TargetSuccessRate = float64(s.targetSuccesses) / float64(s.totalRows)
	}

	return &StatsReport{
		Summary: summary,
		FrequencyAnalysis: FrequencyAnalysis{
			EnglishSkeletons:  sortedCounts(s.englishSkeletons),
			TargetSkeletons:   sortedCounts(s.targetSkeletons),
			EnglishComponents: analyzeComponents(s.englishSkeletons),
			TargetComponents:  analyzeComponents(s.targetSkeletons),
			TotalEnglish:      len(s.englishSkeletons),
			TotalTarget:       len(s.targetSkeletons),
			TotalRows:         s.totalRows,
		},
		FormatAnalysis: FormatAnalysis{
			EnglishFormatLengths: formatLengthCounts(s.englishSkeletons),
			TargetFormatLengths:  formatLengthCounts(s.targetSkeletons),
		},
	}
}

func analyzeComponents(skeletons map[string]int) ComponentAnalysis {
	components := make(map[string]int)
	literals := make(map[string]int)
	for skeleton, count := range skeletons {
		for _, component := range strings.Fields(skeleton) {
			components[component] += count
			if strings.HasPrefix(component, "'") && strings.HasSuffix(component, "'") {
				literals[component] += count
			}
		}
	}

	dateElements := make(map[string]int)
	punctuation := make(map[string]int)
	for component, count := range components {
		if strings.ContainsAny(component, "MLdyEc") {
			dateElements[component] = count
		}
		if statsPunctuation[component] {
			punctuation[component] = count
		}
	}

	return ComponentAnalysis{
		Components:       sortedCounts(components),
		DateElements:     sortedCounts(dateElements),
		Punctuation:      sortedCounts(punctuation),
		Literals:         sortedCounts(literals),
		UniqueComponents: len(components),
		LiteralTexts:     len(literals),
	}
}

func formatLengthCounts(skeletons map[string]int) []PatternCount {
	lengths := make(map[string]int)
	for skeleton, count := range skeletons {
		for _, length := range formatLengths(skeleton) {
			lengths[length] += count
		}
	}
	return sortedCounts(lengths)
}

// formatLengths names the month and weekday widths a skeleton carries.
func formatLengths(skeleton string) []string {
	var lengths []string
	switch {
	case strings.Contains(skeleton, "MMMM"):
		lengths = append(lengths, "month_wide")
	case strings.Contains(skeleton, "MMM"):
		lengths = append(lengths, "month_abbreviated")
	case strings.Contains(skeleton, "M"):
		lengths = append(lengths, "month_narrow")
	}
	switch {
	case strings.Contains(skeleton, "cccc"):
		lengths = append(lengths, "day_wide")
	case strings.Contains(skeleton, "ccc"):
		lengths = append(lengths, "day_abbreviated")
	case strings.Contains(skeleton, "c"):
		lengths = append(lengths, "day_narrow")
	}
	return lengths
}

func sortedCounts(counts map[string]int) []PatternCount {
	result := make([]PatternCount, 0, len(counts))
	for value, count := range counts {
		result = append(result, PatternCount{Value: value, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	return result
}

// Export writes the report in the named format: json, csv, or txt.
func (r *StatsReport) Export(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return r.WriteJSON(w)
	case "csv":
		return r.WriteCSV(w)
	case "txt":
		return r.WriteText(w)
	default:
		return fmt.Errorf("lexray: unsupported report format %q", format)
	}
}

func (r *StatsReport) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(r)
}

func (r *StatsReport) WriteCSV(w io.Writer) error {
	rows := [][]string{
		{"Metric", "Value"},
		{"total_rows", fmt.Sprint(r.Summary.TotalRows)},
		{"successful_english_processing", fmt.Sprint(r.Summary.SuccessfulEnglish)},
		{"successful_target_processing", fmt.Sprint(r.Summary.SuccessfulTarget)},
		{"english_success_rate", fmt.Sprint(r.Summary.EnglishSuccessRate)},
		{"target_success_rate", fmt.Sprint(r.Summary.TargetSuccessRate)},
		{""},
		{"English Skeleton", "Frequency"},
	}
	for _, entry := range r.FrequencyAnalysis.EnglishSkeletons {
		rows = append(rows, []string{entry.Value, fmt.Sprint(entry.Count)})
	}
	rows = append(rows, []string{""}, []string{"Target Skeleton", "Frequency"})
	for _, entry := range r.FrequencyAnalysis.TargetSkeletons {
		rows = append(rows, []string{entry.Value, fmt.Sprint(entry.Count)})
	}
	return csv.NewWriter(w).WriteAll(rows)
}

func (r *StatsReport) WriteText(w io.Writer) error {
	var b strings.Builder
	b.WriteString("CLDR Date Skeleton Analysis Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("-", 10) + "\n")
	statsPrinter.Fprintf(&b, "total_rows: %v\n", number.Decimal(r.Summary.TotalRows))
	statsPrinter.Fprintf(&b, "successful_english_processing: %v\n", number.Decimal(r.Summary.SuccessfulEnglish))
	statsPrinter.Fprintf(&b, "successful_target_processing: %v\n", number.Decimal(r.Summary.SuccessfulTarget))
	statsPrinter.Fprintf(&b, "english_success_rate: %v\n", number.Percent(r.Summary.EnglishSuccessRate, number.MaxFractionDigits(1)))
	statsPrinter.Fprintf(&b, "target_success_rate: %v\n", number.Percent(r.Summary.TargetSuccessRate, number.MaxFractionDigits(1)))
	b.WriteString("\n")

	b.WriteString("ENGLISH SKELETON FREQUENCIES\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, entry := range r.FrequencyAnalysis.EnglishSkeletons {
		statsPrinter.Fprintf(&b, "%s: %v\n", entry.Value, number.Decimal(entry.Count))
	}
	b.WriteString("\n")

	b.WriteString("TARGET SKELETON FREQUENCIES\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, entry := range r.FrequencyAnalysis.TargetSkeletons {
		statsPrinter.Fprintf(&b, "%s: %v\n", entry.Value, number.Decimal(entry.Count))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
