package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"printflow/internal/domain"
	"printflow/internal/port"
)

// RecordPaymentInput is the DTO for recording a payment against a dossier.
type RecordPaymentInput struct {
	Amount float64              `json:"amount" binding:"required"`
	Method domain.PaymentMethod `json:"method" binding:"required"`
	Note   string               `json:"note"`
}

// PaymentService records and summarizes payments on dossiers.
type PaymentService interface {
	Record(ctx context.Context, user domain.User, dossier domain.Dossier, input RecordPaymentInput) (*domain.Payment, error)
	ListByDossier(ctx context.Context, user domain.User, dossier domain.Dossier) ([]domain.Payment, float64, error)
}

type paymentService struct {
	paymentRepo port.PaymentRepository
	activity    ActivityService
}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService(paymentRepo port.PaymentRepository, activity ActivityService) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, activity: activity}
}

func (s *paymentService) Record(ctx context.Context, user domain.User, dossier domain.Dossier, input RecordPaymentInput) (*domain.Payment, error) {
	if user.Role != domain.RoleAdmin && user.Role != domain.RolePreparateur {
		return nil, domain.Denied(fmt.Sprintf("role %q may not record payments", user.Role))
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("paymentService.Record: amount must be positive")
	}
	switch input.Method {
	case domain.PaymentCash, domain.PaymentCard, domain.PaymentTransfer, domain.PaymentCheque:
	default:
		return nil, fmt.Errorf("paymentService.Record: unknown payment method %q", input.Method)
	}

	payment := &domain.Payment{
		ID:         uuid.New(),
		DossierID:  dossier.ID,
		Amount:     input.Amount,
		Method:     input.Method,
		Note:       input.Note,
		RecordedBy: user.ID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, &dossier.ID, user.ID, "record_payment",
		fmt.Sprintf("%.2f received by %s for dossier %s", input.Amount, input.Method, dossier.OrderNumber))
	return payment, nil
}

func (s *paymentService) ListByDossier(ctx context.Context, user domain.User, dossier domain.Dossier) ([]domain.Payment, float64, error) {
	if user.Role != domain.RoleAdmin && user.Role != domain.RolePreparateur {
		return nil, 0, domain.Denied(fmt.Sprintf("role %q may not view payments", user.Role))
	}
	payments, err := s.paymentRepo.ListByDossier(ctx, dossier.ID)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paymentRepo.TotalPaid(ctx, dossier.ID)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}
