package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"printflow/internal/domain"
	"printflow/internal/service"
	"printflow/internal/workflow"
)

// MockDossierService is a mock implementation of service.DossierService.
type MockDossierService struct {
	mock.Mock
}

func (m *MockDossierService) Create(ctx context.Context, user domain.User, input service.CreateDossierInput) (*domain.Dossier, error) {
	args := m.Called(ctx, user, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}

func (m *MockDossierService) Resolve(ctx context.Context, identifier string) (*domain.Dossier, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}

func (m *MockDossierService) ResolveFor(ctx context.Context, identifier string, user domain.User) (*domain.Dossier, error) {
	args := m.Called(ctx, identifier, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}

func (m *MockDossierService) List(ctx context.Context, user domain.User, offset, limit int) ([]domain.Dossier, int, error) {
	args := m.Called(ctx, user, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Dossier), args.Int(1), args.Error(2)
}

func (m *MockDossierService) Update(ctx context.Context, user domain.User, dossier domain.Dossier, input service.UpdateDossierInput) (*domain.Dossier, error) {
	args := m.Called(ctx, user, dossier, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}

func (m *MockDossierService) ChangeStatus(ctx context.Context, user domain.User, dossier domain.Dossier, input service.ChangeStatusInput) (*domain.Dossier, error) {
	args := m.Called(ctx, user, dossier, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}

func (m *MockDossierService) AvailableActions(user domain.User, dossier domain.Dossier) []workflow.ActionOption {
	args := m.Called(user, dossier)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]workflow.ActionOption)
}

func (m *MockDossierService) Delete(ctx context.Context, user domain.User, dossier domain.Dossier) error {
	args := m.Called(ctx, user, dossier)
	return args.Error(0)
}

func (m *MockDossierService) AssignMachine(ctx context.Context, user domain.User, dossier domain.Dossier, machine domain.MachineType) (*domain.Dossier, error) {
	args := m.Called(ctx, user, dossier, machine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dossier), args.Error(1)
}

func (m *MockDossierService) ImportLegacy(ctx context.Context, user domain.User, records []map[string]any) (int, error) {
	args := m.Called(ctx, user, records)
	return args.Int(0), args.Error(1)
}
