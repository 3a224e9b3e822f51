package service

import (
	"context"
	"fmt"
	"io"

	"printflow/internal/access"
	"printflow/internal/domain"
	"printflow/internal/export"
	"printflow/internal/port"
)

// StatsService provides the admin dashboard aggregates and their exports.
type StatsService interface {
	Dashboard(ctx context.Context, user domain.User) (*domain.DashboardStats, error)
	// PreparerLoad breaks the open workload down per preparer.
	PreparerLoad(ctx context.Context, user domain.User) ([]domain.PreparerStat, error)
	// ExportDashboard writes the dashboard and its dossier list as an
	// xlsx workbook.
	ExportDashboard(ctx context.Context, user domain.User, w io.Writer) error
	// ExportDossiersCSV writes the caller's visible dossiers as CSV,
	// BOM-prefixed for Excel.
	ExportDossiersCSV(ctx context.Context, user domain.User, w io.Writer) error
}

type statsService struct {
	statsRepo   port.StatsRepository
	dossierRepo port.DossierRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository, dossierRepo port.DossierRepository) StatsService {
	return &statsService{statsRepo: statsRepo, dossierRepo: dossierRepo}
}

func (s *statsService) Dashboard(ctx context.Context, user domain.User) (*domain.DashboardStats, error) {
	if user.Role != domain.RoleAdmin {
		return nil, domain.Denied(fmt.Sprintf("role %q may not view the dashboard", user.Role))
	}
	return s.statsRepo.Dashboard(ctx)
}

func (s *statsService) PreparerLoad(ctx context.Context, user domain.User) ([]domain.PreparerStat, error) {
	if user.Role != domain.RoleAdmin {
		return nil, domain.Denied(fmt.Sprintf("role %q may not view the dashboard", user.Role))
	}
	return s.statsRepo.PreparerLoad(ctx)
}

func (s *statsService) ExportDashboard(ctx context.Context, user domain.User, w io.Writer) error {
	stats, err := s.Dashboard(ctx, user)
	if err != nil {
		return err
	}
	dossiers, _, err := s.dossierRepo.List(ctx, access.Filter{}, 0, exportBatchLimit)
	if err != nil {
		return err
	}
	return export.WriteDashboardWorkbook(w, stats, dossiers)
}

func (s *statsService) ExportDossiersCSV(ctx context.Context, user domain.User, w io.Writer) error {
	dossiers, _, err := s.dossierRepo.List(ctx, access.DossierFilterForUser(user), 0, exportBatchLimit)
	if err != nil {
		return err
	}

	if _, err := w.Write(export.BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	cw := export.NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	if err := cw.WriteDossiers(dossiers); err != nil {
		return err
	}
	return cw.Flush()
}

// exportBatchLimit caps export size; the shop's whole history fits well
// under it.
const exportBatchLimit = 10000
