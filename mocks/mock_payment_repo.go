package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"printflow/internal/domain"
)

// MockPaymentRepo is a mock implementation of port.PaymentRepository.
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepo) ListByDossier(ctx context.Context, dossierID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, dossierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepo) TotalPaid(ctx context.Context, dossierID uuid.UUID) (float64, error) {
	args := m.Called(ctx, dossierID)
	return args.Get(0).(float64), args.Error(1)
}
