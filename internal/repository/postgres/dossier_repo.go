package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"printflow/internal/access"
	"printflow/internal/domain"
	"printflow/internal/port"
)

type dossierRepo struct {
	db *sqlx.DB
}

// NewDossierRepo creates a new PostgreSQL-backed DossierRepository.
func NewDossierRepo(db *sqlx.DB) port.DossierRepository {
	return &dossierRepo{db: db}
}

func (r *dossierRepo) Create(ctx context.Context, dossier *domain.Dossier) error {
	now := time.Now().UTC()
	dossier.CreatedAt = now
	dossier.UpdatedAt = now

	query := `INSERT INTO dossiers (
		id, order_number, legacy_id, client_name, description,
		status, status_comment, machine_type, owner_id, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		dossier.ID, dossier.OrderNumber, dossier.LegacyID, dossier.ClientName,
		dossier.Description, dossier.Status, dossier.StatusComment,
		dossier.MachineType, dossier.OwnerID, dossier.CreatedAt, dossier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("dossierRepo.Create: %w", err)
	}
	return nil
}

func (r *dossierRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dossier, error) {
	var d domain.Dossier
	err := r.db.GetContext(ctx, &d, "SELECT * FROM dossiers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDossierNotFound
		}
		return nil, fmt.Errorf("dossierRepo.GetByID: %w", err)
	}
	return &d, nil
}

func (r *dossierRepo) GetByIdentifier(ctx context.Context, identifier string, filter *access.Filter) (*domain.Dossier, error) {
	var where string
	var args []any

	// Resolution order: UUID id, legacy numeric id, order number.
	if id, err := uuid.Parse(identifier); err == nil {
		where = "id = ?"
		args = []any{id}
	} else if legacyID, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		where = "legacy_id = ?"
		args = []any{legacyID}
	} else {
		where = "order_number = ?"
		args = []any{identifier}
	}

	if filter != nil && !filter.Unfiltered() {
		where += " AND (" + filter.Where + ")"
		args = append(args, filter.Args...)
	}

	query := r.db.Rebind("SELECT * FROM dossiers WHERE " + where)

	var d domain.Dossier
	err := r.db.GetContext(ctx, &d, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Scoped misses look identical to genuine misses; the
			// middleware adds the 403/404 distinction one layer up.
			return nil, domain.ErrDossierNotFound
		}
		return nil, fmt.Errorf("dossierRepo.GetByIdentifier: %w", err)
	}
	return &d, nil
}

func (r *dossierRepo) List(ctx context.Context, filter access.Filter, offset, limit int) ([]domain.Dossier, int, error) {
	where := ""
	var args []any
	if !filter.Unfiltered() {
		where = " WHERE " + filter.Where
		args = filter.Args
	}

	countQuery := r.db.Rebind("SELECT COUNT(*) FROM dossiers" + where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("dossierRepo.List count: %w", err)
	}

	listArgs := append(append([]any{}, args...), limit, offset)
	listQuery := r.db.Rebind(
		"SELECT * FROM dossiers" + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?")

	var dossiers []domain.Dossier
	if err := r.db.SelectContext(ctx, &dossiers, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("dossierRepo.List: %w", err)
	}
	return dossiers, total, nil
}

func (r *dossierRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, expected, next domain.DossierStatus, comment string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE dossiers SET status = $1, status_comment = $2, updated_at = $3
		 WHERE id = $4 AND status = $5`,
		next, comment, time.Now().UTC(), id, expected)
	if err != nil {
		return fmt.Errorf("dossierRepo.UpdateStatusIf: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("dossierRepo.UpdateStatusIf rows: %w", err)
	}
	if affected == 0 {
		// Either the dossier vanished or its status moved under us.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return domain.ErrStatusConflict
	}
	return nil
}

func (r *dossierRepo) UpdateMachine(ctx context.Context, id uuid.UUID, machine domain.MachineType) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE dossiers SET machine_type = $1, updated_at = $2 WHERE id = $3",
		machine, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("dossierRepo.UpdateMachine: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("dossierRepo.UpdateMachine rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrDossierNotFound
	}
	return nil
}

func (r *dossierRepo) Update(ctx context.Context, dossier *domain.Dossier) error {
	dossier.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE dossiers SET client_name = $1, description = $2, updated_at = $3
		 WHERE id = $4`,
		dossier.ClientName, dossier.Description, dossier.UpdatedAt, dossier.ID)
	if err != nil {
		return fmt.Errorf("dossierRepo.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("dossierRepo.Update rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrDossierNotFound
	}
	return nil
}

func (r *dossierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM dossiers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("dossierRepo.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("dossierRepo.Delete rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrDossierNotFound
	}
	return nil
}
