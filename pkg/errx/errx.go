// Package errx provides typed, registry-backed errors that carry their own
// HTTP status so handlers can return them directly.
package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// Type classifies an error independently of the domain that raised it
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeBusiness      Type = "BUSINESS"
	TypeExternal      Type = "EXTERNAL"
	TypeInternal      Type = "INTERNAL"
)

// Code is a registered, domain-prefixed error code such as "JOB_NOT_FOUND"
type Code string

// Error is the error type returned across service and API boundaries
type Error struct {
	Code       Code
	Type       Type
	HTTPStatus int
	Message    string
	Details    map[string]any
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on Code so that errors.Is works against registry helpers
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail attaches a key/value pair that is safe to show to clients
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithMessage replaces the client-facing message
func (e *Error) WithMessage(msg string) *Error {
	e.Message = msg
	return e
}

// ToHTTPResponse renders the error for clients. The cause is never included.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   e.Message,
		"code":    string(e.Code),
		"type":    string(e.Type),
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

type definition struct {
	typ     Type
	status  int
	message string
}

// Registry holds the error codes of one domain
type Registry struct {
	prefix string
	codes  map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]definition),
	}
}

// Register defines a new code. It is meant to be called from package-level vars.
func (r *Registry) Register(name string, typ Type, status int, message string) Code {
	code := Code(r.prefix + "_" + name)
	r.codes[code] = definition{typ: typ, status: status, message: message}
	return code
}

// New builds an error for a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.codes[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "Unknown error",
		}
	}
	return &Error{
		Code:       code,
		Type:       def.typ,
		HTTPStatus: def.status,
		Message:    def.message,
	}
}

// NewWithCause builds an error for a registered code and keeps cause for logs
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	e := r.New(code)
	e.Cause = cause
	return e
}

// Wrap turns an arbitrary error into an *Error of the given type. Existing
// *Error values are returned unchanged.
func Wrap(err error, message string, typ Type) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Code:       Code(typ),
		Type:       typ,
		HTTPStatus: statusForType(typ),
		Message:    message,
		Cause:      err,
	}
}

// IsType reports whether err is an *Error of type typ
func IsType(err error, typ Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == typ
	}
	return false
}

func statusForType(typ Type) int {
	switch typ {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeAuthorization:
		return http.StatusUnauthorized
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
