package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"printflow/internal/access"
	"printflow/internal/domain"
	"printflow/internal/export"
	"printflow/internal/service"
	"printflow/mocks"
)

func TestStatsService_Dashboard_AdminOnly(t *testing.T) {
	statsRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(statsRepo, new(mocks.MockDossierRepo))

	statsRepo.On("Dashboard", mock.Anything).Return(&domain.DashboardStats{TotalDossiers: 9}, nil)

	stats, err := svc.Dashboard(context.Background(), admin())
	assert.NoError(t, err)
	assert.Equal(t, 9, stats.TotalDossiers)

	for _, role := range []domain.UserRole{domain.RolePreparateur, domain.RoleImprimeurRoland, domain.RoleLivreur} {
		_, err := svc.Dashboard(context.Background(), domain.User{ID: uuid.New(), Role: role})
		assert.ErrorIs(t, err, domain.ErrForbidden, "role %s", role)
	}
}

func TestStatsService_PreparerLoad(t *testing.T) {
	statsRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(statsRepo, new(mocks.MockDossierRepo))

	rows := []domain.PreparerStat{
		{OwnerID: uuid.New(), FullName: "Claire Martin", Total: 5, EnCours: 2},
	}
	statsRepo.On("PreparerLoad", mock.Anything).Return(rows, nil)

	got, err := svc.PreparerLoad(context.Background(), admin())
	assert.NoError(t, err)
	assert.Equal(t, rows, got)

	_, err = svc.PreparerLoad(context.Background(), preparer())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestStatsService_ExportDossiersCSV_UsesCallerScope(t *testing.T) {
	statsRepo := new(mocks.MockStatsRepo)
	dossierRepo := new(mocks.MockDossierRepo)
	svc := service.NewStatsService(statsRepo, dossierRepo)
	user := preparer()

	dossierRepo.On("List", mock.Anything, access.DossierFilterForUser(user), 0, mock.AnythingOfType("int")).
		Return([]domain.Dossier{ownedDossier(user, domain.StatusEnCours)}, 1, nil)

	var buf bytes.Buffer
	assert.NoError(t, svc.ExportDossiersCSV(context.Background(), user, &buf))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, export.BOM), "CSV export must be BOM-prefixed")
	assert.Contains(t, string(out), "Numéro de commande")
	assert.Contains(t, string(out), "Imprimerie Dupont")
	dossierRepo.AssertExpectations(t)
}

func TestStatsService_ExportDashboard_DeniedBeforeQuerying(t *testing.T) {
	statsRepo := new(mocks.MockStatsRepo)
	dossierRepo := new(mocks.MockDossierRepo)
	svc := service.NewStatsService(statsRepo, dossierRepo)

	var buf bytes.Buffer
	err := svc.ExportDashboard(context.Background(), preparer(), &buf)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	statsRepo.AssertNotCalled(t, "Dashboard", mock.Anything)
	dossierRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
