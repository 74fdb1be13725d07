package lexray

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Column names of the reference sheet layout.
const (
	columnEnglish     = "English"
	columnHeader      = "Header"
	columnTranslation = "Translation"
	columnWinning     = "Winning"
	columnCode        = "Code"
	columnXPath       = "XPath"
)

// DictionaryLoader reads one language's date vocabulary from disk. JSON and
// YAML files use field keys ("month/wide/formatting"), CSV files follow the
// reference sheet layout with a Header column and a Translation or Winning
// value column.
type DictionaryLoader struct {
	language string
	paths    []string
}

func NewDictionaryLoader(language string, paths ...string) *DictionaryLoader {
	return &DictionaryLoader{language: language, paths: append([]string(nil), paths...)}
}

// Load decodes every configured file and merges them, later files winning
// per field. Form lists longer than the calendar (12 months, 7 weekdays) are
// truncated before construction; shorter lists fail it.
func (l *DictionaryLoader) Load() (*Dictionary, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("lexray: no dictionary paths configured")
	}

	forms := make(map[Field][]string)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("lexray: read %s: %w", path, err)
		}
		src, err := decodeDictionaryFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("lexray: decode %s: %w", path, err)
		}
		for field, list := range src {
			forms[field] = list
		}
	}

	for field, list := range forms {
		if !field.Named() {
			continue
		}
		limit := monthFormCount
		if field.Category == CategoryWeekday {
			limit = weekdayFormCount
		}
		if len(list) > limit {
			forms[field] = list[:limit]
		}
	}

	return NewDictionary(l.language, forms)
}

func decodeDictionaryFile(path string, data []byte) (map[Field][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		var raw map[string][]string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return fieldForms(raw)
	case ".yaml", ".yml":
		var raw map[string][]string
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return fieldForms(raw)
	case ".csv":
		return decodeDictionaryCSV(data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func fieldForms(raw map[string][]string) (map[Field][]string, error) {
	forms := make(map[Field][]string, len(raw))
	for key, list := range raw {
		field, err := parseFieldKey(key)
		if err != nil {
			return nil, err
		}
		forms[field] = append([]string(nil), list...)
	}
	return forms, nil
}

// parseFieldKey resolves a dictionary key, either the slash form
// "month/wide/formatting" or the sheet header form "Months - wide - Formatting".
func parseFieldKey(raw string) (Field, error) {
	if strings.Contains(raw, " - ") {
		return parseFieldLabel(raw)
	}
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return Field{}, fmt.Errorf("malformed field key %q", raw)
	}
	category, err := parseFieldCategory(parts[0])
	if err != nil {
		return Field{}, err
	}
	width, err := parseFieldWidth(parts[1])
	if err != nil {
		return Field{}, err
	}
	context, err := parseFieldContext(parts[2])
	if err != nil {
		return Field{}, err
	}
	return Field{Category: category, Width: width, Context: context}, nil
}

// decodeDictionaryCSV collects form lists from sheet rows. Rows whose Header
// names a non-date structure are skipped, as are empty value cells.
func decodeDictionaryCSV(data []byte) (map[Field][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty CSV file")
	}

	columns := columnIndex(rows[0])
	headerCol, ok := columns[columnHeader]
	if !ok {
		return nil, fmt.Errorf("CSV must contain a %s column", columnHeader)
	}
	valueCol, ok := columns[columnTranslation]
	if !ok {
		if valueCol, ok = columns[columnWinning]; !ok {
			return nil, fmt.Errorf("CSV must contain a %s or %s column", columnTranslation, columnWinning)
		}
	}

	forms := make(map[Field][]string)
	for _, row := range rows[1:] {
		if headerCol >= len(row) || valueCol >= len(row) {
			continue
		}
		field, err := parseFieldLabel(row[headerCol])
		if err != nil {
			continue
		}
		if row[valueCol] == "" {
			continue
		}
		forms[field] = append(forms[field], row[valueCol])
	}
	return forms, nil
}

func columnIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// LoadReferenceSet reads an English reference dataset from a JSON or CSV
// file. Rows replace the embedded data; the pattern-id table stays built-in.
func LoadReferenceSet(path string) (*ReferenceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexray: read %s: %w", path, err)
	}
	entries, err := decodeReferenceFile(path, data)
	if err != nil {
		return nil, fmt.Errorf("lexray: decode %s: %w", path, err)
	}
	return NewReferenceSet(entries, defaultPatternIDs), nil
}

func decodeReferenceFile(path string, data []byte) ([]ReferenceEntry, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		var entries []ReferenceEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	case ".csv":
		return decodeReferenceCSV(data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeReferenceCSV(data []byte) ([]ReferenceEntry, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty CSV file")
	}

	columns := columnIndex(rows[0])
	col := func(name string) int {
		if i, ok := columns[name]; ok {
			return i
		}
		return -1
	}
	englishCol := col(columnEnglish)
	if englishCol < 0 {
		return nil, fmt.Errorf("CSV must contain an %s column", columnEnglish)
	}
	headerCol := col(columnHeader)
	winningCol := col(columnWinning)
	codeCol := col(columnCode)
	xpathCol := col(columnXPath)

	entries := make([]ReferenceEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		entries = append(entries, ReferenceEntry{
			Skeleton: cellAt(row, englishCol),
			Header:   cellAt(row, headerCol),
			Winning:  cellAt(row, winningCol),
			Code:     cellAt(row, codeCol),
			XPath:    cellAt(row, xpathCol),
		})
	}
	return entries, nil
}
