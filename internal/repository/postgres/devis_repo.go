package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"printflow/internal/domain"
	"printflow/internal/port"
)

type devisRepo struct {
	db *sqlx.DB
}

// NewDevisRepo creates a new PostgreSQL-backed DevisRepository.
func NewDevisRepo(db *sqlx.DB) port.DevisRepository {
	return &devisRepo{db: db}
}

func (r *devisRepo) Create(ctx context.Context, devis *domain.Devis) error {
	now := time.Now().UTC()
	devis.CreatedAt = now
	devis.UpdatedAt = now

	query := `INSERT INTO devis (
		id, devis_number, client_name, description, machine_type,
		amount, status, dossier_id, created_by, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		devis.ID, devis.DevisNumber, devis.ClientName, devis.Description,
		devis.MachineType, devis.Amount, devis.Status, devis.DossierID,
		devis.CreatedBy, devis.CreatedAt, devis.UpdatedAt)
	if err != nil {
		return fmt.Errorf("devisRepo.Create: %w", err)
	}
	return nil
}

func (r *devisRepo) GetByID(ctx context.Context, devisID uuid.UUID) (*domain.Devis, error) {
	var devis domain.Devis
	err := r.db.GetContext(ctx, &devis, "SELECT * FROM devis WHERE id = $1", devisID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDevisNotFound
		}
		return nil, fmt.Errorf("devisRepo.GetByID: %w", err)
	}
	return &devis, nil
}

func (r *devisRepo) List(ctx context.Context, status domain.DevisStatus, offset, limit int) ([]domain.Devis, int, error) {
	where := ""
	var args []any
	if status != "" {
		where = " WHERE status = ?"
		args = []any{status}
	}

	var total int
	countQuery := r.db.Rebind("SELECT COUNT(*) FROM devis" + where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("devisRepo.List count: %w", err)
	}

	listArgs := append(append([]any{}, args...), limit, offset)
	listQuery := r.db.Rebind("SELECT * FROM devis" + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?")

	var list []domain.Devis
	if err := r.db.SelectContext(ctx, &list, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("devisRepo.List: %w", err)
	}
	return list, total, nil
}

func (r *devisRepo) Decide(ctx context.Context, devisID uuid.UUID, status domain.DevisStatus, dossierID *uuid.UUID) error {
	// Conditional on pending so two concurrent decisions cannot both win.
	result, err := r.db.ExecContext(ctx,
		`UPDATE devis SET status = $1, dossier_id = $2, updated_at = $3
		 WHERE id = $4 AND status = $5`,
		status, dossierID, time.Now().UTC(), devisID, domain.DevisPending)
	if err != nil {
		return fmt.Errorf("devisRepo.Decide: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("devisRepo.Decide rows: %w", err)
	}
	if affected == 0 {
		if _, getErr := r.GetByID(ctx, devisID); getErr != nil {
			return getErr
		}
		return domain.ErrDevisAlreadyDecided
	}
	return nil
}
