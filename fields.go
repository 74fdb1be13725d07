package lexray

import (
	"fmt"
	"strings"
)

// FieldCategory identifies the calendar field a token stands for.
type FieldCategory string

const (
	CategoryMonth    FieldCategory = "month"
	CategoryWeekday  FieldCategory = "weekday"
	CategoryMonthDay FieldCategory = "monthday"
	CategoryYear     FieldCategory = "year"
)

// FieldWidth identifies the rendered width of a calendar field.
type FieldWidth string

const (
	WidthNarrow      FieldWidth = "narrow"
	WidthWide        FieldWidth = "wide"
	WidthAbbreviated FieldWidth = "abbreviated"
	WidthShort       FieldWidth = "short"
	WidthNumeric     FieldWidth = "numeric"
	WidthPadded      FieldWidth = "padded"
)

// FieldContext distinguishes forms embedded in a full date from forms used alone.
type FieldContext string

const (
	ContextFormatting FieldContext = "formatting"
	ContextStandalone FieldContext = "standalone"
)

// Field is one calendar field variant. Every valid Field maps to exactly one
// symbolic skeleton code.
type Field struct {
	Category FieldCategory
	Width    FieldWidth
	Context  FieldContext
}

// Code returns the symbolic skeleton code for the field, or "" when the
// combination is not part of the vocabulary.
func (f Field) Code() string {
	switch f.Category {
	case CategoryMonth:
		letter := "M"
		if f.Context == ContextStandalone {
			letter = "L"
		}
		switch f.Width {
		case WidthNarrow:
			return strings.Repeat(letter, 5)
		case WidthWide:
			return strings.Repeat(letter, 4)
		case WidthAbbreviated:
			return strings.Repeat(letter, 3)
		case WidthPadded:
			return strings.Repeat(letter, 2)
		case WidthNumeric:
			return letter
		}
	case CategoryWeekday:
		letter := "E"
		if f.Context == ContextStandalone {
			letter = "c"
		}
		switch f.Width {
		case WidthShort:
			return strings.Repeat(letter, 6)
		case WidthNarrow:
			return strings.Repeat(letter, 5)
		case WidthWide:
			return strings.Repeat(letter, 4)
		case WidthAbbreviated:
			return letter
		}
	case CategoryMonthDay:
		switch f.Width {
		case WidthPadded:
			return "dd"
		case WidthNumeric:
			return "d"
		}
	case CategoryYear:
		switch f.Width {
		case WidthNumeric:
			return "y"
		case WidthAbbreviated:
			return "yy"
		}
	}
	return ""
}

// Label returns the reference header for named forms, e.g.
// "Months - wide - Formatting". Numeric and padded widths have no header.
func (f Field) Label() string {
	var noun string
	switch f.Category {
	case CategoryMonth:
		noun = "Months"
	case CategoryWeekday:
		noun = "Days"
	default:
		return ""
	}

	var width string
	switch f.Width {
	case WidthNarrow:
		width = "narrow"
	case WidthWide:
		width = "wide"
	case WidthAbbreviated:
		width = "abbreviated"
	case WidthShort:
		width = "short"
	default:
		return ""
	}

	context := "Formatting"
	if f.Context == ContextStandalone {
		context = "Standalone"
	}
	return fmt.Sprintf("%s - %s - %s", noun, width, context)
}

// Named reports whether the field is backed by dictionary forms rather than digits.
func (f Field) Named() bool {
	switch f.Category {
	case CategoryMonth:
		return f.Width == WidthNarrow || f.Width == WidthWide || f.Width == WidthAbbreviated
	case CategoryWeekday:
		return true
	}
	return false
}

// String implements fmt.Stringer using the symbolic code.
func (f Field) String() string { return f.Code() }

// namedFields lists the dictionary-backed fields in canonical order. The order
// is observable: analyzer candidates and ambiguity options preserve it.
var namedFields = []Field{
	{CategoryMonth, WidthNarrow, ContextFormatting},
	{CategoryMonth, WidthWide, ContextFormatting},
	{CategoryMonth, WidthAbbreviated, ContextFormatting},
	{CategoryMonth, WidthNarrow, ContextStandalone},
	{CategoryMonth, WidthWide, ContextStandalone},
	{CategoryMonth, WidthAbbreviated, ContextStandalone},
	{CategoryWeekday, WidthShort, ContextFormatting},
	{CategoryWeekday, WidthNarrow, ContextFormatting},
	{CategoryWeekday, WidthWide, ContextFormatting},
	{CategoryWeekday, WidthAbbreviated, ContextFormatting},
	{CategoryWeekday, WidthShort, ContextStandalone},
	{CategoryWeekday, WidthNarrow, ContextStandalone},
	{CategoryWeekday, WidthWide, ContextStandalone},
	{CategoryWeekday, WidthAbbreviated, ContextStandalone},
}

// numericFields lists the digit-backed fields.
var numericFields = []Field{
	{CategoryMonth, WidthPadded, ContextFormatting},
	{CategoryMonth, WidthNumeric, ContextFormatting},
	{CategoryMonth, WidthPadded, ContextStandalone},
	{CategoryMonth, WidthNumeric, ContextStandalone},
	{CategoryMonthDay, WidthPadded, ContextFormatting},
	{CategoryMonthDay, WidthNumeric, ContextFormatting},
	{CategoryMonthDay, WidthPadded, ContextStandalone},
	{CategoryMonthDay, WidthNumeric, ContextStandalone},
	{CategoryYear, WidthNumeric, ContextFormatting},
	{CategoryYear, WidthAbbreviated, ContextFormatting},
	{CategoryYear, WidthAbbreviated, ContextStandalone},
}

// AllFields returns every field in the vocabulary, named forms first.
func AllFields() []Field {
	fields := make([]Field, 0, len(namedFields)+len(numericFields))
	fields = append(fields, namedFields...)
	fields = append(fields, numericFields...)
	return fields
}

// fieldCodes holds every symbolic code in the vocabulary.
var fieldCodes = func() map[string]Field {
	codes := make(map[string]Field, len(namedFields)+len(numericFields))
	for _, f := range append(append([]Field{}, namedFields...), numericFields...) {
		code := f.Code()
		if _, ok := codes[code]; !ok {
			codes[code] = f
		}
	}
	return codes
}()

// ParseFieldCode resolves a symbolic code back to its field. Codes shared by
// both contexts (d, dd, y, yy) resolve to the formatting variant.
func ParseFieldCode(code string) (Field, bool) {
	f, ok := fieldCodes[code]
	return f, ok
}

// IsFieldCode reports whether s is a symbolic code in the vocabulary.
func IsFieldCode(s string) bool {
	_, ok := fieldCodes[s]
	return ok
}

// fieldCodeCategory returns the category of a symbolic code, or "" for
// punctuation and literals.
func fieldCodeCategory(code string) FieldCategory {
	if f, ok := fieldCodes[code]; ok {
		return f.Category
	}
	return ""
}

func parseFieldCategory(raw string) (FieldCategory, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "month", "months":
		return CategoryMonth, nil
	case "weekday", "weekdays", "day", "days":
		return CategoryWeekday, nil
	case "monthday", "dayofmonth":
		return CategoryMonthDay, nil
	case "year", "years":
		return CategoryYear, nil
	default:
		return "", fmt.Errorf("unknown field category %q", raw)
	}
}

func parseFieldWidth(raw string) (FieldWidth, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "narrow":
		return WidthNarrow, nil
	case "wide":
		return WidthWide, nil
	case "abbreviated":
		return WidthAbbreviated, nil
	case "short":
		return WidthShort, nil
	case "numeric":
		return WidthNumeric, nil
	case "padded":
		return WidthPadded, nil
	default:
		return "", fmt.Errorf("unknown field width %q", raw)
	}
}

func parseFieldContext(raw string) (FieldContext, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "formatting", "format":
		return ContextFormatting, nil
	case "standalone", "stand-alone":
		return ContextStandalone, nil
	default:
		return "", fmt.Errorf("unknown field context %q", raw)
	}
}

// parseFieldLabel resolves a reference header such as "Months - wide - Formatting".
func parseFieldLabel(raw string) (Field, error) {
	parts := strings.Split(raw, " - ")
	if len(parts) != 3 {
		return Field{}, fmt.Errorf("malformed field header %q", raw)
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
