package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"printflow/internal/export"
	"printflow/internal/service"
)

// StatsHandler handles dashboard and export endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard handles GET /api/v1/stats/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.statsService.Dashboard(c.Request.Context(), user)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// PreparerLoad handles GET /api/v1/stats/preparateurs
func (h *StatsHandler) PreparerLoad(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := h.statsService.PreparerLoad(c.Request.Context(), user)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// ExportDashboard handles GET /api/v1/stats/dashboard/export
func (h *StatsHandler) ExportDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.statsService.ExportDashboard(c.Request.Context(), user, &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.ExportFileName("tableau_de_bord", "xlsx")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ExportDossiers handles GET /api/v1/dossiers/export
func (h *StatsHandler) ExportDossiers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.statsService.ExportDossiersCSV(c.Request.Context(), user, &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.ExportFileName("dossiers", "csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
