package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"printflow/internal/domain"
	"printflow/internal/service"
)

// DevisHandler handles quote endpoints.
type DevisHandler struct {
	devisService service.DevisService
}

// NewDevisHandler creates a new DevisHandler.
func NewDevisHandler(devisService service.DevisService) *DevisHandler {
	return &DevisHandler{devisService: devisService}
}

// Create handles POST /api/v1/devis
func (h *DevisHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input service.CreateDevisInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	devis, err := h.devisService.Create(c.Request.Context(), user, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, devis)
}

// List handles GET /api/v1/devis
func (h *DevisHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	status := domain.DevisStatus(c.Query("status"))

	devis, total, err := h.devisService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, devis, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/devis/:id
func (h *DevisHandler) Get(c *gin.Context) {
	devisID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid devis id")
		return
	}

	devis, err := h.devisService.GetByID(c.Request.Context(), devisID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, devis)
}

// Accept handles POST /api/v1/devis/:id/accept
func (h *DevisHandler) Accept(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	devisID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid devis id")
		return
	}

	dossier, err := h.devisService.Accept(c.Request.Context(), user, devisID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, dossier)
}

// Reject handles POST /api/v1/devis/:id/reject
func (h *DevisHandler) Reject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	devisID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid devis id")
		return
	}

	if err := h.devisService.Reject(c.Request.Context(), user, devisID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"rejected": true})
}
