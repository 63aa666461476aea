package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for wsbgen
const (
	ExitSuccess            = 0
	ExitGeneralError       = 1
	ExitConfigError        = 2
	ExitTemplateMetadata   = 3
	ExitUnknownTemplate    = 4
	ExitMalformedTemplate  = 5
	ExitMissingEnvironment = 6
	ExitOutputError        = 7
	ExitCancelled          = 8
)

// Error is the base error type for wsbgen
type Error struct {
	Code    int
	Message string
	// Subject names the file, template or variables the error is about.
	Subject string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same exit code.
// This lets callers match on the sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// ExitCode returns the exit code for this error
func (e *Error) ExitCode() int {
	return e.Code
}

// New creates a new Error
func New(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an Error
func Wrap(code int, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Sentinels for errors.Is. Only the code is compared.
var (
	ErrTemplateMetadata        = New(ExitTemplateMetadata, "template metadata error")
	ErrUnknownTemplate         = New(ExitUnknownTemplate, "unknown template")
	ErrMalformedTemplate       = New(ExitMalformedTemplate, "malformed template")
	ErrMissingEnvironmentValue = New(ExitMissingEnvironment, "missing environment value")
	ErrConfig                  = New(ExitConfigError, "configuration error")
	ErrOutput                  = New(ExitOutputError, "output error")
	ErrCancelled               = New(ExitCancelled, "cancelled")
)

// Common error constructors

// TemplateMetadata returns an error for a template file whose [Template]
// section is missing or incomplete.
func TemplateMetadata(file string, cause error) *Error {
	return &Error{
		Code:    ExitTemplateMetadata,
		Message: fmt.Sprintf("invalid template metadata in %s", file),
		Subject: file,
		Cause:   cause,
	}
}

// UnknownTemplate returns an error for an identifier with no matching template
func UnknownTemplate(id string) *Error {
	return &Error{
		Code:    ExitUnknownTemplate,
		Message: fmt.Sprintf("unknown template: %q", id),
		Subject: id,
	}
}

// MalformedTemplate returns an error for a template whose declared mapping or
// command counts do not match its sections.
func MalformedTemplate(id string, cause error) *Error {
	return &Error{
		Code:    ExitMalformedTemplate,
		Message: fmt.Sprintf("malformed template %s", id),
		Subject: id,
		Cause:   cause,
	}
}

// MissingEnvironmentValue returns an error naming every placeholder that has
// no value.
func MissingEnvironmentValue(names []string) *Error {
	return &Error{
		Code:    ExitMissingEnvironment,
		Message: fmt.Sprintf("no value for environment variable(s): %s", strings.Join(names, ", ")),
		Subject: strings.Join(names, ","),
	}
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *Error {
	return Wrap(ExitConfigError, message, cause)
}

// OutputError returns an error for failures writing the descriptor or
// creating host folders.
func OutputError(path string, cause error) *Error {
	return &Error{
		Code:    ExitOutputError,
		Message: fmt.Sprintf("failed to write %s", path),
		Subject: path,
		Cause:   cause,
	}
}

// Cancelled returns an error for a prompt the user aborted
func Cancelled() *Error {
	return New(ExitCancelled, "cancelled by user")
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *Error {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var wsbErr *Error
	if errors.As(err, &wsbErr) {
		return wsbErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
