// Package apperr defines the error taxonomy shared by every service layer.
//
// Errors carry a machine-readable code so handlers can map them to HTTP
// status codes without inspecting message text, and an optional field list
// naming the offending or conflicting fields.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

const (
	EValidation = "validation" // missing or malformed field
	ENotFound   = "not found"  // id does not resolve within the tenant
	EConflict   = "conflict"   // unique constraint violation
	EStorage    = "storage"    // object store put/delete failure
	EUpstream   = "upstream"   // document store unavailable or query failed
)

// Error is the single error type crossing service boundaries.
type Error struct {
	Code   string
	Msg    string
	Op     string
	Fields []string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		b.WriteString(e.Code)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports a missing or malformed field.
func Validation(field, format string, args ...interface{}) *Error {
	return &Error{Code: EValidation, Msg: fmt.Sprintf(format, args...), Fields: []string{field}}
}

// NotFound reports that a resource id does not resolve within the tenant.
// A resource owned by another tenant is deliberately indistinguishable
// from a truly absent one.
func NotFound(resource string) *Error {
	return &Error{Code: ENotFound, Msg: fmt.Sprintf("%s not found", resource)}
}

// Conflict reports a unique constraint violation on the named field set.
func Conflict(resource string, fields ...string) *Error {
	return &Error{
		Code:   EConflict,
		Msg:    fmt.Sprintf("%s already exists for (%s)", resource, strings.Join(fields, ", ")),
		Fields: fields,
	}
}

// Storage wraps an object store failure.
func Storage(op string, err error) *Error {
	return &Error{Code: EStorage, Op: op, Msg: "object store request failed", Err: err}
}

// Upstream wraps a document store failure.
func Upstream(op string, err error) *Error {
	return &Error{Code: EUpstream, Op: op, Msg: "database request failed", Err: err}
}

// ErrCode returns the taxonomy code of err, or EUpstream for anything
// unclassified so no raw storage error crosses the HTTP boundary as-is.
func ErrCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EUpstream
}

// ErrFields returns the field list of err, if any.
func ErrFields(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// ErrMessage returns the user-facing message for err. Unclassified errors
// collapse to a generic message so internals never leak to clients.
func ErrMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Msg != "" {
			return e.Msg
		}
		return e.Code
	}
	return "internal server error"
}

func IsNotFound(err error) bool { return ErrCode(err) == ENotFound }
func IsConflict(err error) bool { return ErrCode(err) == EConflict }
