package lexray

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// tokenPattern is the date-expression grammar: letter runs (with combining
// marks and an optional trailing period), numeral runs, and single
// punctuation characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}]+\.?|\p{N}+|[/,.\-–—،፣]`)

// PatternTokens splits a date expression or a skeleton string into raw
// tokens. Dashes are normalized first so "12 – 13" and "12—13" tokenize the
// same way.
func PatternTokens(text string) []string {
	return tokenPattern.FindAllString(NormalizeDashes(norm.NFC.String(text)), -1)
}

// SemanticTokens splits a target-language expression into typed tokens,
// recognizing the dictionary's vocabulary: multi-word forms, compound words
// mixing digits and letters, and abbreviated forms with trailing periods.
// Unmatched text degrades to literal tokens; tokenization never fails.
func SemanticTokens(text string, dict *Dictionary) []Token {
	expr := []rune(NormalizeDashes(norm.NFC.String(text)))
	elements := dict.Elements()

	var tokens []Token
	i := 0
	for i < len(expr) {
		for i < len(expr) && unicode.IsSpace(expr[i]) {
			i++
		}
		if i >= len(expr) {
			break
		}

		if isPunctuationRune(expr[i]) {
			tokens = append(tokens, Token{Kind: TokenPunctuation, Text: string(expr[i])})
			i++
			continue
		}

		// Words mixing letters and digits resolve against the lexicon
		// whole before any decomposition ("2nd" style forms).
		if n := matchWordWithDigits(expr[i:]); n > 0 {
			word := string(expr[i : i+n])
			if dict.Contains(word) {
				tokens = append(tokens, Token{Kind: TokenDateWord, Text: word})
				i += n
				continue
			}
			if isDecimalDigit(expr[i]) {
				parts, advance := scanNumberOrCompound(expr, i, elements)
				tokens = append(tokens, parts...)
				i += advance
				continue
			}
			// Letter-led unknown words fall through to the word scan.
		}

		if isDecimalDigit(expr[i]) {
			parts, advance := scanNumberOrCompound(expr, i, elements)
			tokens = append(tokens, parts...)
			i += advance
			continue
		}

		if n, ok := matchPhrase(expr, i, elements); ok {
			tokens = append(tokens, Token{Kind: TokenDateWord, Text: string(expr[i : i+n])})
			i += n
			continue
		}

		if n := longestLexiconMatch(expr, i, dict.Lexicon()); n > 0 {
			tokens = append(tokens, Token{Kind: TokenDateWord, Text: string(expr[i : i+n])})
			i += n
			continue
		}

		if n := matchASCIIWord(expr[i:]); n > 0 {
			word := string(expr[i : i+n])
			if isElement(word, elements) {
				tokens = append(tokens, Token{Kind: TokenDateWord, Text: word})
			} else if parts := breakDownCompoundWord(expr[i:i+n], elements); len(parts) > 1 {
				tokens = append(tokens, compoundTokens(parts)...)
			} else {
				tokens = append(tokens, Token{Kind: TokenLiteral, Text: word})
			}
			i += n
			continue
		}

		// Prefix matches catch forms embedded at the head of longer words
		// ("oct" inside "octre") when nothing wider applied.
		if n, ok := matchElementPrefix(expr, i, elements); ok {
			tokens = append(tokens, Token{Kind: TokenDateWord, Text: string(expr[i : i+n])})
			i += n
			continue
		}

		tokens = append(tokens, Token{Kind: TokenLiteral, Text: string(expr[i])})
		i++
	}
	return tokens
}

// isDecimalDigit matches decimal digits in any script, same as the numeral
// runs the compound decomposition splits on.
func isDecimalDigit(r rune) bool { return unicode.IsDigit(r) }

// matchWordWithDigits matches letters+digits(+letters) or digits+letters at
// the head of expr, returning the matched rune count. Letters are ASCII only;
// other scripts take the lexicon paths instead.
func matchWordWithDigits(expr []rune) int {
	i := 0
	for i < len(expr) && isASCIILetter(expr[i]) {
		i++
	}
	if i > 0 {
		d := i
		for d < len(expr) && isDecimalDigit(expr[d]) {
			d++
		}
		if d == i {
			return 0
		}
		t := d
		for t < len(expr) && isASCIILetter(expr[t]) {
			t++
		}
		return t
	}
	d := 0
	for d < len(expr) && isDecimalDigit(expr[d]) {
		d++
	}
	if d == 0 {
		return 0
	}
	t := d
	for t < len(expr) && isASCIILetter(expr[t]) {
		t++
	}
	if t == d {
		return 0
	}
	return t
}

// scanNumberOrCompound consumes a digit run at expr[i]. When letters follow
// directly, the whole word is decomposed and the trailing parts come back
// attached; otherwise the digits stand alone.
func scanNumberOrCompound(expr []rune, i int, elements []string) ([]Token, int) {
	end := i
	for end < len(expr) && isDecimalDigit(expr[end]) {
		end++
	}
	number := Token{Kind: TokenNumeric, Text: string(expr[i:end])}

	if end < len(expr) && unicode.IsLetter(expr[end]) {
		stop := end
		for stop < len(expr) && !unicode.IsSpace(expr[stop]) && !isPunctuationRune(expr[stop]) {
			stop++
		}
		if parts := breakDownCompoundWord(expr[i:stop], elements); len(parts) > 1 {
			return compoundTokens(parts), stop - i
		}
		return []Token{number}, stop - i
	}
	return []Token{number}, end - i
}

// matchPhrase matches multi-word dictionary forms, longest first, requiring
// non-letter boundaries on both sides.
func matchPhrase(expr []rune, i int, elements []string) (int, bool) {
	for _, element := range elements {
		if !strings.Contains(element, " ") {
			continue
		}
		n := runeLen(element)
		if i+n > len(expr) || !strings.EqualFold(string(expr[i:i+n]), element) {
			continue
		}
		if i > 0 && unicode.IsLetter(expr[i-1]) {
			continue
		}
		if i+n < len(expr) && unicode.IsLetter(expr[i+n]) {
			continue
		}
		return n, true
	}
	return 0, false
}

// longestLexiconMatch finds the longest lexicon form starting at expr[i] that
// ends at a word boundary (end of input, whitespace, or punctuation).
func longestLexiconMatch(expr []rune, i int, lexicon []string) int {
	longest := 0
	for _, word := range lexicon {
		n := runeLen(word)
		if n <= longest || i+n > len(expr) {
			continue
		}
		if !strings.EqualFold(string(expr[i:i+n]), word) {
			continue
		}
		if end := i + n; end < len(expr) && !unicode.IsSpace(expr[end]) && !isPunctuationRune(expr[end]) {
			continue
		}
		longest = n
	}
	return longest
}

// matchASCIIWord matches an ASCII letter run with an optional trailing
// period ("Jan.").
func matchASCIIWord(expr []rune) int {
	i := 0
	for i < len(expr) && isASCIILetter(expr[i]) {
		i++
	}
	if i == 0 {
		return 0
	}
	if i < len(expr) && expr[i] == '.' {
		i++
	}
	return i
}

func isElement(word string, elements []string) bool {
	for _, element := range elements {
		if strings.EqualFold(word, element) {
			return true
		}
	}
	return false
}

// matchElementPrefix matches a dictionary form at the head of the remaining
// input, longest first, requiring only a leading boundary. A following letter
// is allowed so short forms still match inside longer unknown words.
func matchElementPrefix(expr []rune, i int, elements []string) (int, bool) {
	for _, element := range elements {
		n := runeLen(element)
		if i+n > len(expr) || !strings.EqualFold(string(expr[i:i+n]), element) {
			continue
		}
		if i > 0 && unicode.IsLetter(expr[i-1]) {
			continue
		}
		return n, true
	}
	return 0, false
}

// compoundPart is one decomposed piece of a compound word.
type compoundPart struct {
	kind TokenKind
	text string
}

func compoundTokens(parts []compoundPart) []Token {
	tokens := make([]Token, len(parts))
	for i, part := range parts {
		tokens[i] = Token{Kind: part.kind, Text: part.text, Attached: i > 0}
	}
	return tokens
}

// breakDownCompoundWord splits one contiguous word into numeral runs,
// dictionary forms (multi-character forms only inside compounds), and literal
// remainders. A word yielding a single part is a literal as a whole.
func breakDownCompoundWord(word []rune, elements []string) []compoundPart {
	var parts []compoundPart
	i := 0
	for i < len(word) {
		if isDecimalDigit(word[i]) {
			end := i
			for end < len(word) && isDecimalDigit(word[end]) {
				end++
			}
			parts = append(parts, compoundPart{TokenNumeric, string(word[i:end])})
			i = end
			continue
		}

		matched := false
		for _, element := range elements {
			n := runeLen(element)
			if n == 1 && len(word) > 1 {
				continue
			}
			if i+n <= len(word) && strings.EqualFold(string(word[i:i+n]), element) {
				parts = append(parts, compoundPart{TokenDateWord, string(word[i : i+n])})
				i += n
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		next := nextCompoundMatch(word, i, elements)
		parts = append(parts, compoundPart{TokenLiteral, string(word[i:next])})
		i = next
	}

	if len(parts) <= 1 {
		return []compoundPart{{TokenLiteral, string(word)}}
	}
	return parts
}

// nextCompoundMatch locates the next position after i where a numeral run or
// a multi-character dictionary form begins, bounding the literal run.
func nextCompoundMatch(word []rune, i int, elements []string) int {
	next := len(word)
	for j := i + 1; j < len(word); j++ {
		if isDecimalDigit(word[j]) {
			next = j
			break
		}
	}
	for j := i + 1; j <= len(word); j++ {
		for _, element := range elements {
			n := runeLen(element)
			if n == 1 {
				continue
			}
			if j+n <= len(word) && strings.EqualFold(string(word[j:j+n]), element) {
				if j < next {
					next = j
				}
				break
			}
		}
		if next < len(word) {
			break
		}
	}
	return next
}
