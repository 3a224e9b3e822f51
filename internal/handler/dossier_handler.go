package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"printflow/internal/domain"
	"printflow/internal/service"
)

// DossierHandler handles dossier endpoints. Routes carrying an :id are
// expected to sit behind the DossierAccess middleware, which resolves the
// dossier within the caller's scope.
type DossierHandler struct {
	dossierService service.DossierService
}

// NewDossierHandler creates a new DossierHandler.
func NewDossierHandler(dossierService service.DossierService) *DossierHandler {
	return &DossierHandler{dossierService: dossierService}
}

// Create handles POST /api/v1/dossiers
func (h *DossierHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input service.CreateDossierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	dossier, err := h.dossierService.Create(c.Request.Context(), user, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, dossier)
}

// List handles GET /api/v1/dossiers
func (h *DossierHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	dossiers, total, err := h.dossierService.List(c.Request.Context(), user, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, dossiers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/dossiers/:id
func (h *DossierHandler) Get(c *gin.Context) {
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}
	RespondOK(c, dossier)
}

// Update handles PUT /api/v1/dossiers/:id
func (h *DossierHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	var input service.UpdateDossierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updated, err := h.dossierService.Update(c.Request.Context(), user, dossier, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, updated)
}

// ChangeStatus handles POST /api/v1/dossiers/:id/status
func (h *DossierHandler) ChangeStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	var input service.ChangeStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updated, err := h.dossierService.ChangeStatus(c.Request.Context(), user, dossier, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, updated)
}

// Actions handles GET /api/v1/dossiers/:id/actions
func (h *DossierHandler) Actions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}
	RespondOK(c, h.dossierService.AvailableActions(user, dossier))
}

// Delete handles DELETE /api/v1/dossiers/:id
func (h *DossierHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	if err := h.dossierService.Delete(c.Request.Context(), user, dossier); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

type assignMachineRequest struct {
	MachineType domain.MachineType `json:"machine_type" binding:"required"`
}

// AssignMachine handles POST /api/v1/dossiers/:id/machine
func (h *DossierHandler) AssignMachine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	var req assignMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updated, err := h.dossierService.AssignMachine(c.Request.Context(), user, dossier, req.MachineType)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, updated)
}

type importRequest struct {
	Records []map[string]any `json:"records" binding:"required"`
}

// Import handles POST /api/v1/dossiers/import
func (h *DossierHandler) Import(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	imported, err := h.dossierService.ImportLegacy(c.Request.Context(), user, req.Records)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"imported": imported})
}
