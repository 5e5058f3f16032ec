package job

import (
	"net/http"

	"github.com/Abraxas-365/jobboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeMissingTitle       = ErrRegistry.Register("MISSING_TITLE", errx.TypeValidation, http.StatusBadRequest, "Missing title")
	CodeMissingID          = ErrRegistry.Register("MISSING_ID", errx.TypeValidation, http.StatusBadRequest, "Missing id")
	CodeInvalidRequest     = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request body")
	CodeCorruptCatalog     = ErrRegistry.Register("CORRUPT_CATALOG", errx.TypeInternal, http.StatusInternalServerError, "Server error")
	CodeStorageUnavailable = ErrRegistry.Register("STORAGE_UNAVAILABLE", errx.TypeExternal, http.StatusInternalServerError, "Server error")
	CodeMethodNotAllowed   = ErrRegistry.Register("METHOD_NOT_ALLOWED", errx.TypeValidation, http.StatusMethodNotAllowed, "Method Not Allowed")
)

// Helper functions
func ErrMissingTitle() *errx.Error {
	return ErrRegistry.New(CodeMissingTitle)
}

func ErrMissingID() *errx.Error {
	return ErrRegistry.New(CodeMissingID)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrCorruptCatalog(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeCorruptCatalog, cause)
}

func ErrStorageUnavailable(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStorageUnavailable, cause)
}

func ErrMethodNotAllowed() *errx.Error {
	return ErrRegistry.New(CodeMethodNotAllowed)
}
