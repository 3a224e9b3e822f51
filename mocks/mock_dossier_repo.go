package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"printflow/internal/access"
	"printflow/internal/domain"
)

// MockDossierRepo is a mock implementation of port.DossierRepository.
type MockDossierRepo struct {
	mock.Mock
}

func (m *MockDossierRepo) Create(ctx context.Context, dossier *domain.Dossier) error {
	args := m.Called(ctx, dossier)
	return args.Error(0)
}

func (m *MockDossierRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dossier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}

func (m *MockDossierRepo) GetByIdentifier(ctx context.Context, identifier string, filter *access.Filter) (*domain.Dossier, error) {
	args := m.Called(ctx, identifier, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}

func (m *MockDossierRepo) List(ctx context.Context, filter access.Filter, offset, limit int) ([]domain.Dossier, int, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Dossier), args.Int(1), args.Error(2)
}

func (m *MockDossierRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, expected, next domain.DossierStatus, comment string) error {
	args := m.Called(ctx, id, expected, next, comment)
	return args.Error(0)
}

func (m *MockDossierRepo) UpdateMachine(ctx context.Context, id uuid.UUID, machine domain.MachineType) error {
	args := m.Called(ctx, id, machine)
	return args.Error(0)
}

func (m *MockDossierRepo) Update(ctx context.Context, dossier *domain.Dossier) error {
	args := m.Called(ctx, dossier)
	return args.Error(0)
}

func (m *MockDossierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
