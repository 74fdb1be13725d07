package lexray

import "strings"

// RenderSkeletons joins code combinations into skeleton strings. A comma
// takes a space after it unless punctuation follows, two content elements
// take a single space between them, and dashes bind tight to their
// neighbors.
func RenderSkeletons(combos [][]string) []string {
	rendered := make([]string, 0, len(combos))
	for _, combo := range combos {
		if len(combo) == 0 {
			continue
		}
		rendered = append(rendered, renderSkeleton(combo))
	}
	return rendered
}

func renderSkeleton(parts []string) string {
	var b strings.Builder
	b.WriteString(parts[0])
	for i := 1; i < len(parts); i++ {
		prev, cur := parts[i-1], parts[i]
		switch {
		case prev == "," && !IsPunctuation(cur):
			b.WriteByte(' ')
		case hasContent(prev) && hasContent(cur) && !IsPunctuation(prev) && !IsPunctuation(cur):
			b.WriteByte(' ')
		}
		b.WriteString(cur)
	}
	return b.String()
}

var contentStripper = strings.NewReplacer(",", "", "/", "", "-", "", "–", "", ".", "")

// hasContent reports whether s is more than spacing and basic punctuation.
func hasContent(s string) bool {
	return strings.TrimSpace(contentStripper.Replace(s)) != ""
}

// ExpandDashVariations doubles every dash-carrying skeleton into its
// hyphen-minus and en-dash spellings. Dash-free skeletons pass through.
func ExpandDashVariations(options []string) []string {
	var expanded []string
	contains := func(s string) bool {
		for _, e := range expanded {
			if e == s {
				return true
			}
		}
		return false
	}
	for _, option := range options {
		if !strings.ContainsAny(option, "-–") {
			expanded = append(expanded, option)
			continue
		}
		base := strings.ReplaceAll(option, "–", "-")
		for _, v := range [2]string{base, strings.ReplaceAll(base, "-", "–")} {
			if !contains(v) {
				expanded = append(expanded, v)
			}
		}
	}
	return expanded
}
