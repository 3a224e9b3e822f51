package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"printflow/internal/domain"
)

// MockDossierFileRepo is a mock implementation of port.DossierFileRepository.
type MockDossierFileRepo struct {
	mock.Mock
}

func (m *MockDossierFileRepo) Create(ctx context.Context, file *domain.DossierFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockDossierFileRepo) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.DossierFile, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DossierFile), args.Error(1)
}

func (m *MockDossierFileRepo) ListByDossier(ctx context.Context, dossierID uuid.UUID, offset, limit int) ([]domain.DossierFile, int, error) {
	args := m.Called(ctx, dossierID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DossierFile), args.Int(1), args.Error(2)
}

func (m *MockDossierFileRepo) Delete(ctx context.Context, fileID uuid.UUID) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}
