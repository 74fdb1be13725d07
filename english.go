package lexray

import "strings"

// englishForms carries the built-in English date vocabulary. Lists are
// index-aligned: position 0 is January / Sunday in every width.
var englishForms = map[Field][]string{
	{CategoryMonth, WidthNarrow, ContextFormatting}:      {"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	{CategoryMonth, WidthWide, ContextFormatting}:        {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	{CategoryMonth, WidthAbbreviated, ContextFormatting}: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	{CategoryMonth, WidthNarrow, ContextStandalone}:      {"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	{CategoryMonth, WidthWide, ContextStandalone}:        {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	{CategoryMonth, WidthAbbreviated, ContextStandalone}: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},

	{CategoryWeekday, WidthShort, ContextFormatting}:       {"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	{CategoryWeekday, WidthNarrow, ContextFormatting}:      {"S", "M", "T", "W", "T", "F", "S"},
	{CategoryWeekday, WidthWide, ContextFormatting}:        {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	{CategoryWeekday, WidthAbbreviated, ContextFormatting}: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	{CategoryWeekday, WidthShort, ContextStandalone}:       {"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	{CategoryWeekday, WidthNarrow, ContextStandalone}:      {"S", "M", "T", "W", "T", "F", "S"},
	{CategoryWeekday, WidthWide, ContextStandalone}:        {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	{CategoryWeekday, WidthAbbreviated, ContextStandalone}: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

var englishDictionary = func() *Dictionary {
	d, err := NewDictionary("english", englishForms)
	if err != nil {
		panic(err)
	}
	return d
}()

// EnglishDictionary returns the built-in English dictionary.
func EnglishDictionary() *Dictionary {
	return englishDictionary
}

// Canonical three-letter keys for calendar indexing. Disambiguation labels
// resolve to indices through these, so index lookups survive translation.
var (
	monthIndexing = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	dayIndexing   = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// canonicalIndex resolves a wide-form label ("January", "friday") to its
// calendar index by three-letter prefix, or -1 when it matches nothing.
func canonicalIndex(label string, category FieldCategory) int {
	runes := []rune(label)
	if len(runes) < 3 {
		return -1
	}
	prefix := strings.ToLower(string(runes[:3]))

	var keys []string
	switch category {
	case CategoryMonth:
		keys = monthIndexing
	case CategoryWeekday:
		keys = dayIndexing
	default:
		return -1
	}
	for i, key := range keys {
		if strings.ToLower(key) == prefix {
			return i
		}
	}
	return -1
}
