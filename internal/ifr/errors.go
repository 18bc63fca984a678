package ifr

import (
	"errors"
	"fmt"
)

// ParseErrorKind represents the category of parse failure.
type ParseErrorKind int

const (
	// ErrKindInvalidFormat indicates the report is missing the required
	// extraction-mode marker on its first line. Nothing in the file is
	// usable and the whole parse is aborted.
	ErrKindInvalidFormat ParseErrorKind = iota

	// ErrKindNotVerboseExtraction indicates a structurally plausible report
	// that contains no brace-delimited opcode tokens anywhere. Such dumps
	// were produced without IFRExtractor's verbose option and carry no
	// per-offset detail to parse.
	ErrKindNotVerboseExtraction
)

// String returns a human-readable name for the error kind.
func (k ParseErrorKind) String() string {
	switch k {
	case ErrKindInvalidFormat:
		return "Invalid Format"
	case ErrKindNotVerboseExtraction:
		return "Not A Verbose Extraction"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError is returned when a report cannot be parsed at all.
//
// Anything less severe (an option record with no open question, a question
// referencing an undeclared variable store) is absorbed into a best-effort
// model instead of raising an error.
type ParseError struct {
	Kind    ParseErrorKind // Category of failure
	Message string         // Human-readable message
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewInvalidFormatError creates a ParseError for a report missing the
// extraction-mode marker.
func NewInvalidFormatError(message string) *ParseError {
	return &ParseError{Kind: ErrKindInvalidFormat, Message: message}
}

// NewNotVerboseError creates a ParseError for a report produced without
// the verbose extraction option.
func NewNotVerboseError(message string) *ParseError {
	return &ParseError{Kind: ErrKindNotVerboseExtraction, Message: message}
}

// IsInvalidFormat checks whether err is an invalid-format parse error.
func IsInvalidFormat(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == ErrKindInvalidFormat
}

// IsNotVerboseExtraction checks whether err is a not-verbose parse error.
func IsNotVerboseExtraction(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == ErrKindNotVerboseExtraction
}
