package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"printflow/internal/domain"
	"printflow/internal/port"
)

type activityRepo struct {
	db *sqlx.DB
}

// NewActivityRepo creates a new PostgreSQL-backed ActivityLogRepository.
func NewActivityRepo(db *sqlx.DB) port.ActivityLogRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, entry *domain.ActivityEntry) error {
	entry.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_log (id, dossier_id, user_id, action, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.DossierID, entry.UserID, entry.Action, entry.Details, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("activityRepo.Create: %w", err)
	}
	return nil
}

func (r *activityRepo) ListByDossier(ctx context.Context, dossierID uuid.UUID, offset, limit int) ([]domain.ActivityEntry, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM activity_log WHERE dossier_id = $1", dossierID)
	if err != nil {
		return nil, 0, fmt.Errorf("activityRepo.ListByDossier count: %w", err)
	}

	var entries []domain.ActivityEntry
	err = r.db.SelectContext(ctx, &entries,
		`SELECT * FROM activity_log WHERE dossier_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		dossierID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("activityRepo.ListByDossier: %w", err)
	}
	return entries, total, nil
}

func (r *activityRepo) ListRecent(ctx context.Context, offset, limit int) ([]domain.ActivityEntry, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM activity_log"); err != nil {
		return nil, 0, fmt.Errorf("activityRepo.ListRecent count: %w", err)
	}

	var entries []domain.ActivityEntry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM activity_log ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("activityRepo.ListRecent: %w", err)
	}
	return entries, total, nil
}
