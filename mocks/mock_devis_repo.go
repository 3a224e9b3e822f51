package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"printflow/internal/domain"
)

// MockDevisRepo is a mock implementation of port.DevisRepository.
type MockDevisRepo struct {
	mock.Mock
}

func (m *MockDevisRepo) Create(ctx context.Context, devis *domain.Devis) error {
	args := m.Called(ctx, devis)
	return args.Error(0)
}

func (m *MockDevisRepo) GetByID(ctx context.Context, devisID uuid.UUID) (*domain.Devis, error) {
	args := m.Called(ctx, devisID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Devis), args.Error(1)
}

func (m *MockDevisRepo) List(ctx context.Context, status domain.DevisStatus, offset, limit int) ([]domain.Devis, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Devis), args.Int(1), args.Error(2)
}

func (m *MockDevisRepo) Decide(ctx context.Context, devisID uuid.UUID, status domain.DevisStatus, dossierID *uuid.UUID) error {
	args := m.Called(ctx, devisID, status, dossierID)
	return args.Error(0)
}
