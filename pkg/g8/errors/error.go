package errors

import (
	"fmt"
	"strings"

	"mercator-hq/g8/pkg/g8/ast"
)

// ErrorType categorizes the stage at which an error occurred.
type ErrorType string

const (
	ErrorTypeInput             ErrorType = "input"               // Unsupported input kind
	ErrorTypePropertyParse     ErrorType = "property_parse"      // Malformed property text
	ErrorTypeTemplateParse     ErrorType = "template_parse"      // Malformed template text
	ErrorTypePropertyNotFound  ErrorType = "property_not_found"  // Substitution of an unset property
	ErrorTypeFormatterNotFound ErrorType = "formatter_not_found" // Unknown formatter name
	ErrorTypeFilesystem        ErrorType = "filesystem"          // Directory rendering I/O
	ErrorTypeInternal          ErrorType = "internal"            // Broken tree invariant
)

// Code refines parse errors.
type Code string

const (
	CodeUnexpectedToken     Code = "unexpected_token"
	CodeUnexpectedKeyword   Code = "unexpected_keyword"
	CodeUnexpectedLineBreak Code = "unexpected_line_break"
	CodeInvalidExpression   Code = "invalid_expression"
	CodeUnsupportedHelper   Code = "unsupported_helper"
	CodeUnexpectedEOF       Code = "unexpected_eof"
	CodeMalformedKey        Code = "malformed_key"
)

// Sentinels for use with errors.Is. A sentinel matches any *Error whose Type
// (or Code) equals its own.
var (
	ErrInput             = &Error{Type: ErrorTypeInput}
	ErrPropertyParse     = &Error{Type: ErrorTypePropertyParse}
	ErrTemplateParse     = &Error{Type: ErrorTypeTemplateParse}
	ErrPropertyNotFound  = &Error{Type: ErrorTypePropertyNotFound}
	ErrFormatterNotFound = &Error{Type: ErrorTypeFormatterNotFound}
	ErrFilesystem        = &Error{Type: ErrorTypeFilesystem}
	ErrInternal          = &Error{Type: ErrorTypeInternal}

	ErrUnexpectedToken     = &Error{Code: CodeUnexpectedToken}
	ErrUnexpectedKeyword   = &Error{Code: CodeUnexpectedKeyword}
	ErrUnexpectedLineBreak = &Error{Code: CodeUnexpectedLineBreak}
	ErrInvalidExpression   = &Error{Code: CodeInvalidExpression}
	ErrUnsupportedHelper   = &Error{Code: CodeUnsupportedHelper}
	ErrUnexpectedEOF       = &Error{Code: CodeUnexpectedEOF}
	ErrMalformedKey        = &Error{Code: CodeMalformedKey}
)

// Error represents a rich error with location, context, and suggestions.
type Error struct {
	Type       ErrorType    // Category of error
	Code       Code         // Parse error detail (optional)
	Message    string       // Error message
	Token      string       // Offending token or name (optional)
	Location   ast.Location // Source location (source, line, column)
	Context    string       // Surrounding lines of source
	Suggestion string       // Suggested fix (optional)
	Err        error        // Underlying cause (optional)
}

// New creates an error of the given type and code.
func New(errType ErrorType, code Code, message string, location ast.Location) *Error {
	return &Error{
		Type:     errType,
		Code:     code,
		Message:  message,
		Location: location,
	}
}

// Wrap creates an error of the given type caused by err.
func Wrap(errType ErrorType, err error, format string, args ...any) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Error implements the error interface.
// It returns a formatted error message with location and context.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))
	if e.Err != nil {
		sb.WriteString(": " + e.Err.Error())
	}
	sb.WriteString("\n")

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("  --> %s\n", e.Location.String()))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// Summary returns the message and location on a single line.
func (e *Error) Summary() string {
	if e.Location.IsValid() {
		return fmt.Sprintf("%s at %s", e.Message, e.Location)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a sentinel matching this error's type or code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" {
		return false
	}
	if t.Type == "" && t.Code == "" {
		return false
	}
	if t.Type != "" && t.Type != e.Type {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// ErrorList represents a collection of errors.
// It allows accumulating multiple errors instead of failing on the first error.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given parameters.
func (el *ErrorList) AddError(errType ErrorType, message string, location ast.Location) {
	el.Add(&Error{
		Type:     errType,
		Message:  message,
		Location: location,
	})
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s):\n\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("Error %d:\n", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToError returns nil if the error list is empty, otherwise returns the error list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByType returns all errors of the given type.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// HasErrorType returns true if the error list contains at least one error of the given type.
func (el *ErrorList) HasErrorType(errType ErrorType) bool {
	return len(el.ByType(errType)) > 0
}
