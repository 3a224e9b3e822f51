package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrInvalidRole         = errors.New("role not recognized")
	ErrInvalidMachineType  = errors.New("machine type must be roland or xerox")
	ErrDossierNotFound     = errors.New("dossier not found")
	ErrDevisNotFound       = errors.New("devis not found")
	ErrDevisAlreadyDecided = errors.New("devis has already been accepted or rejected")
	ErrStatusConflict      = errors.New("dossier status changed concurrently")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)

// DeniedError carries the human-readable reason produced by the workflow or
// access engines. It unwraps to ErrForbidden so handler-layer mapping stays
// uniform while the reason survives to the response body.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string { return e.Reason }

func (e *DeniedError) Unwrap() error { return ErrForbidden }

// Denied builds a DeniedError from a reason string.
func Denied(reason string) error {
	return &DeniedError{Reason: reason}
}
