package models

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-checkable reason for a rejected operation.
type ErrorCode string

const (
	CodeMissingCredential ErrorCode = "missing_credential"
	CodeExpiredCredential ErrorCode = "expired_credential"
	CodeInvalidCredential ErrorCode = "invalid_credential"
	CodeForbidden         ErrorCode = "forbidden"
	CodeNotFound          ErrorCode = "not_found"
	CodeConflict          ErrorCode = "conflict"
	CodeInvalidGameType   ErrorCode = "invalid_game_type"
	CodeNotEnrolled       ErrorCode = "not_enrolled"
	CodeBadRequest        ErrorCode = "bad_request"
	CodePartialFailure    ErrorCode = "partial_failure"
	CodeStoreUnavailable  ErrorCode = "store_unavailable"
)

// Error is a domain error carrying a reason code alongside the
// human-readable message.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a domain error with the given code.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the domain error code from err. Errors that are not
// domain errors (failed store round trips, mostly) are reported as
// store_unavailable.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeStoreUnavailable
}

// IsCode reports whether err carries the given domain error code.
func IsCode(err error, code ErrorCode) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}
