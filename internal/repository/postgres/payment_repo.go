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

type paymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates a new PostgreSQL-backed PaymentRepository.
func NewPaymentRepo(db *sqlx.DB) port.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	payment.CreatedAt = time.Now().UTC()

	query := `INSERT INTO payments (id, dossier_id, amount, method, note, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID, payment.DossierID, payment.Amount, payment.Method,
		payment.Note, payment.RecordedBy, payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}
	return nil
}

func (r *paymentRepo) ListByDossier(ctx context.Context, dossierID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.SelectContext(ctx, &payments,
		"SELECT * FROM payments WHERE dossier_id = $1 ORDER BY created_at DESC", dossierID)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByDossier: %w", err)
	}
	return payments, nil
}

func (r *paymentRepo) TotalPaid(ctx context.Context, dossierID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE dossier_id = $1", dossierID)
	if err != nil {
		return 0, fmt.Errorf("paymentRepo.TotalPaid: %w", err)
	}
	return total, nil
}
