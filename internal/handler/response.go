package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"printflow/internal/domain"
	"printflow/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Denials carry their engine-produced reason through to the response body.
func MapDomainError(err error) (status int, code, msg string) {
	var denied *domain.DeniedError
	if errors.As(err, &denied) {
		return http.StatusForbidden, "FORBIDDEN", denied.Reason
	}

	switch {
	case errors.Is(err, domain.ErrDossierNotFound):
		return http.StatusNotFound, "DOSSIER_NOT_FOUND", "dossier not found"
	case errors.Is(err, domain.ErrDevisNotFound):
		return http.StatusNotFound, "DEVIS_NOT_FOUND", "devis not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrStatusConflict):
		return http.StatusConflict, "STATUS_CONFLICT", "dossier status was changed by someone else; reload and retry"
	case errors.Is(err, domain.ErrDevisAlreadyDecided):
		return http.StatusConflict, "DEVIS_ALREADY_DECIDED", "devis has already been accepted or rejected"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "INVALID_ROLE", "role not recognized"
	case errors.Is(err, domain.ErrInvalidMachineType):
		return http.StatusBadRequest, "INVALID_MACHINE_TYPE", "machine type must be roland or xerox"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// currentUser extracts the authenticated user from the request context.
// Returns false if auth context is missing (error response already written).
func currentUser(c *gin.Context) (domain.User, bool) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return domain.User{}, false
	}
	return user, true
}

// boundDossier extracts the dossier resolved by the DossierAccess middleware.
func boundDossier(c *gin.Context) (domain.Dossier, bool) {
	dossier, ok := middleware.DossierFromContext(c)
	if !ok {
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "dossier not resolved")
		return domain.Dossier{}, false
	}
	return dossier, true
}

// pagination reads offset/limit query parameters with the shared defaults.
func pagination(c *gin.Context) (offset, limit int) {
	offset = atoiDefault(c.DefaultQuery("offset", "0"), 0)
	limit = atoiDefault(c.DefaultQuery("limit", "20"), 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
