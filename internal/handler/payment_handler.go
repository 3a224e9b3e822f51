package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"printflow/internal/service"
)

// PaymentHandler handles payment endpoints nested under a dossier.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Record handles POST /api/v1/dossiers/:id/payments
func (h *PaymentHandler) Record(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	var input service.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), user, dossier, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, payment)
}

// List handles GET /api/v1/dossiers/:id/payments
func (h *PaymentHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dossier, ok := boundDossier(c)
	if !ok {
		return
	}

	payments, total, err := h.paymentService.ListByDossier(c.Request.Context(), user, dossier)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"payments": payments, "total_paid": total})
}
