package lexray

import "errors"

// ErrEmptyInput indicates that tokenization produced no tokens.
var ErrEmptyInput = errors.New("lexray: empty input")

// ErrUnrecognizedToken indicates a token with no candidate field in the active language.
var ErrUnrecognizedToken = errors.New("lexray: unrecognized token")

// ErrOutOfRange indicates a numeric token outside calendar bounds (month > 12 or day > 31).
var ErrOutOfRange = errors.New("lexray: value out of range")

// ErrInvalidFormatOptions indicates a single-token input whose candidates are not all field codes.
var ErrInvalidFormatOptions = errors.New("lexray: invalid format options")

// ErrNoReferenceMatch indicates that no candidate skeleton could be generated for the input.
var ErrNoReferenceMatch = errors.New("lexray: no reference skeleton")

// ErrUnsupportedSkeleton indicates a confirmed skeleton outside the supported pattern set.
var ErrUnsupportedSkeleton = errors.New("lexray: unsupported skeleton")

// ErrInadequateMapping indicates the translation cannot be aligned with the English expression.
var ErrInadequateMapping = errors.New("lexray: inadequate mapping")

// ErrInconsistentRange indicates the two sides of a range disagree on field widths.
var ErrInconsistentRange = errors.New("lexray: inconsistent range formatting")

// ErrMissingDictionary indicates an operation that requires a language dictionary got none.
var ErrMissingDictionary = errors.New("lexray: missing dictionary")
