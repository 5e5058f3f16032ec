package application

import (
	"net/http"

	"github.com/Abraxas-365/jobboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeMissingFields    = ErrRegistry.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Missing fields")
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeFileSizeTooLarge = ErrRegistry.Register("FILE_SIZE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "File size exceeds maximum allowed")
	CodeInvalidFileType  = ErrRegistry.Register("INVALID_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Invalid file type")
	CodeDeliveryFailed   = ErrRegistry.Register("DELIVERY_FAILED", errx.TypeExternal, http.StatusInternalServerError, "Failed to send application")
	CodeMethodNotAllowed = ErrRegistry.Register("METHOD_NOT_ALLOWED", errx.TypeValidation, http.StatusMethodNotAllowed, "Method not allowed")
)

// Helper functions
func ErrMissingFields(fields ...string) *errx.Error {
	return ErrRegistry.New(CodeMissingFields).WithDetail("fields", fields)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrFileSizeTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileSizeTooLarge)
}

func ErrInvalidFileType() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileType)
}

// ErrDeliveryFailed keeps the provider error as cause for logs only
func ErrDeliveryFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeDeliveryFailed, cause)
}

func ErrMethodNotAllowed() *errx.Error {
	return ErrRegistry.New(CodeMethodNotAllowed)
}
