package handler

import (
	"github.com/gin-gonic/gin"

	"printflow/internal/service"
)

// ActivityHandler exposes the append-only activity log.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListByDossier handles GET /api/v1/dossiers/:id/activity
func (h *ActivityHandler) ListByDossier(c *gin.Context) {
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	offset, limit := pagination(c)
	entries, total, err := h.activityService.ListByDossier(c.Request.Context(), dossier.ID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListRecent handles GET /api/v1/activity
func (h *ActivityHandler) ListRecent(c *gin.Context) {
	offset, limit := pagination(c)
	entries, total, err := h.activityService.ListRecent(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}
