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

type dossierFileRepo struct {
	db *sqlx.DB
}

// NewDossierFileRepo creates a new PostgreSQL-backed DossierFileRepository.
func NewDossierFileRepo(db *sqlx.DB) port.DossierFileRepository {
	return &dossierFileRepo{db: db}
}

func (r *dossierFileRepo) Create(ctx context.Context, file *domain.DossierFile) error {
	file.CreatedAt = time.Now().UTC()

	query := `INSERT INTO dossier_files (
		id, dossier_id, uploaded_by, file_name, original_name,
		file_type, file_size, s3_bucket, s3_key, content_type, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		file.ID, file.DossierID, file.UploadedBy, file.FileName, file.OriginalName,
		file.FileType, file.FileSize, file.S3Bucket, file.S3Key, file.ContentType,
		file.CreatedAt)
	if err != nil {
		return fmt.Errorf("dossierFileRepo.Create: %w", err)
	}
	return nil
}

func (r *dossierFileRepo) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.DossierFile, error) {
	var file domain.DossierFile
	err := r.db.GetContext(ctx, &file, "SELECT * FROM dossier_files WHERE id = $1", fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("dossierFileRepo.GetByID: %w", err)
	}
	return &file, nil
}

func (r *dossierFileRepo) ListByDossier(ctx context.Context, dossierID uuid.UUID, offset, limit int) ([]domain.DossierFile, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM dossier_files WHERE dossier_id = $1", dossierID)
	if err != nil {
		return nil, 0, fmt.Errorf("dossierFileRepo.ListByDossier count: %w", err)
	}

	var files []domain.DossierFile
	err = r.db.SelectContext(ctx, &files,
		`SELECT * FROM dossier_files WHERE dossier_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		dossierID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("dossierFileRepo.ListByDossier: %w", err)
	}
	return files, total, nil
}

func (r *dossierFileRepo) Delete(ctx context.Context, fileID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM dossier_files WHERE id = $1", fileID)
	if err != nil {
		return fmt.Errorf("dossierFileRepo.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("dossierFileRepo.Delete rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
