package jaundice

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"    // unexpected internal failure
	EINVALID     = "invalid"     // malformed input (e.g., an unparseable URL)
	EPARSE       = "parse"       // adapter could not find the article structure
	ETIMEOUT     = "timeout"     // fetch exceeded its time budget
	EUNAVAILABLE = "unavailable" // network-level fetch failure
	EUNSUPPORTED = "unsupported" // no adapter registered for the source
)

// Error represents an application error with a machine-readable code and a
// human-readable message. Codes classify per-URL pipeline failures so the
// orchestrator can attribute them without string matching.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jaundice error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps err and returns its application error code.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its human-readable message.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
