package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"printflow/internal/domain"
)

// MockActivityRepo is a mock implementation of port.ActivityLogRepository.
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, entry *domain.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepo) ListByDossier(ctx context.Context, dossierID uuid.UUID, offset, limit int) ([]domain.ActivityEntry, int, error) {
	args := m.Called(ctx, dossierID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Int(1), args.Error(2)
}

func (m *MockActivityRepo) ListRecent(ctx context.Context, offset, limit int) ([]domain.ActivityEntry, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Int(1), args.Error(2)
}
