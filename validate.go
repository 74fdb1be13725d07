package lexray

import (
	"fmt"
	"strings"
)

// ValidateInput rejects empty or whitespace-only expressions.
func ValidateInput(expression, subject string) error {
	if strings.TrimSpace(expression) == "" {
		return fmt.Errorf("lexray: %s is empty: %w", subject, ErrEmptyInput)
	}
	return nil
}

// ValidateTokens checks the shape rules every tokenized expression obeys:
// numbers are 1-2 or exactly 4 characters, punctuation never leads, trails,
// or doubles up.
func ValidateTokens(tokens []string, subject string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("lexray: %s produced no tokens: %w", subject, ErrEmptyInput)
	}
	for i, token := range tokens {
		if isNumericText(token) {
			if n := runeLen(token); n > 4 || n == 3 {
				return fmt.Errorf("lexray: %q is not a valid numeric date element: %w", token, ErrUnrecognizedToken)
			}
			continue
		}
		if !IsPunctuation(token) {
			continue
		}
		if i == 0 || i == len(tokens)-1 {
			return fmt.Errorf("lexray: %s begins or ends with punctuation %q: %w", subject, token, ErrUnrecognizedToken)
		}
		if IsPunctuation(tokens[i-1]) {
			return fmt.Errorf("lexray: %s has consecutive punctuation at %q: %w", subject, tokens[i-1]+token, ErrUnrecognizedToken)
		}
	}
	return nil
}

// validateSemanticTokens applies the same shape rules to typed tokens.
// Attached numerals are fragments of a compound word, not date values, so
// the numeric length rule skips them.
func validateSemanticTokens(tokens []Token, subject string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("lexray: %s produced no tokens: %w", subject, ErrEmptyInput)
	}
	for i, token := range tokens {
		if token.Kind == TokenNumeric && !token.Attached {
			if n := runeLen(token.Text); n > 4 || n == 3 {
				return fmt.Errorf("lexray: %q is not a valid numeric date element: %w", token.Text, ErrUnrecognizedToken)
			}
			continue
		}
		if token.Kind != TokenPunctuation {
			continue
		}
		if i == 0 || i == len(tokens)-1 {
			return fmt.Errorf("lexray: %s begins or ends with punctuation %q: %w", subject, token.Text, ErrUnrecognizedToken)
		}
		if tokens[i-1].Kind == TokenPunctuation {
			return fmt.Errorf("lexray: %s has consecutive punctuation at %q: %w", subject, tokens[i-1].Text+token.Text, ErrUnrecognizedToken)
		}
	}
	return nil
}

// ValidateEnglishTokens checks every word token against the English
// vocabulary.
func ValidateEnglishTokens(tokens []string, dict *Dictionary) error {
	for _, token := range tokens {
		if isNumericText(token) || IsPunctuation(token) {
			continue
		}
		if !dict.Contains(token) {
			return fmt.Errorf("lexray: %q is not in the English data set: %w", token, ErrUnrecognizedToken)
		}
	}
	return nil
}

// validateDateValues checks numeric tokens against the bounds their skeleton
// codes imply: month 1-12, day of month 1-31. Values pair with codes in
// order of appearance; punctuation on either side does not shift the pairing.
func validateDateValues(tokens, skeletonTokens []string) error {
	var values []int
	for _, token := range tokens {
		if !isNumericText(token) {
			continue
		}
		if value, ok := parseIntValue(token); ok {
			values = append(values, value)
		}
	}
	codes := elementCodes(skeletonTokens)
	for i, value := range values {
		if i >= len(codes) {
			break
		}
		switch codes[i][0] {
		case 'M':
			if value > 12 {
				return fmt.Errorf("lexray: %d is out of bounds for month of the year: %w", value, ErrOutOfRange)
			}
		case 'd':
			if value > 31 {
				return fmt.Errorf("lexray: %d is out of bounds for day of the month: %w", value, ErrOutOfRange)
			}
		}
	}
	return nil
}
