package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"printflow/internal/domain"
	"printflow/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const dashboardQuery = `SELECT
	COUNT(*) AS total_dossiers,
	COUNT(CASE WHEN status = 'en_cours' THEN 1 END) AS en_cours,
	COUNT(CASE WHEN status = 'pret_impression' THEN 1 END) AS pret_impression,
	COUNT(CASE WHEN status = 'en_impression' THEN 1 END) AS en_impression,
	COUNT(CASE WHEN status = 'pret_livraison' THEN 1 END) AS pret_livraison,
	COUNT(CASE WHEN status = 'en_livraison' THEN 1 END) AS en_livraison,
	COUNT(CASE WHEN status = 'livre' THEN 1 END) AS livre,
	COUNT(CASE WHEN status = 'termine' THEN 1 END) AS termine,
	COUNT(CASE WHEN status = 'a_revoir' THEN 1 END) AS a_revoir,
	COUNT(CASE WHEN machine_type = 'roland' THEN 1 END) AS roland_dossiers,
	COUNT(CASE WHEN machine_type = 'xerox' THEN 1 END) AS xerox_dossiers,
	(SELECT COUNT(*) FROM devis WHERE status = 'pending') AS pending_devis,
	(SELECT COALESCE(SUM(amount), 0) FROM payments) AS total_payments
FROM dossiers`

func (r *statsRepo) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := r.db.GetContext(ctx, &stats, dashboardQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.Dashboard: %w", err)
	}
	return &stats, nil
}

const preparerLoadQuery = `SELECT
	d.owner_id,
	COALESCE(u.full_name, '') AS full_name,
	COUNT(*) AS total,
	COUNT(CASE WHEN d.status = 'en_cours' THEN 1 END) AS en_cours,
	COUNT(CASE WHEN d.status = 'a_revoir' THEN 1 END) AS a_revoir,
	COUNT(CASE WHEN d.status = 'livre' THEN 1 END) AS livre
FROM dossiers d
LEFT JOIN users u ON u.id = d.owner_id
GROUP BY d.owner_id, u.full_name
ORDER BY total DESC`

func (r *statsRepo) PreparerLoad(ctx context.Context) ([]domain.PreparerStat, error) {
	var rows []domain.PreparerStat
	if err := r.db.SelectContext(ctx, &rows, preparerLoadQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.PreparerLoad: %w", err)
	}
	return rows, nil
}
