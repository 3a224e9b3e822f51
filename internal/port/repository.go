package port

import (
	"context"

	"github.com/google/uuid"

	"printflow/internal/access"
	"printflow/internal/domain"
)

// DossierRepository defines the contract for dossier persistence.
type DossierRepository interface {
	Create(ctx context.Context, dossier *domain.Dossier) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dossier, error)
	// GetByIdentifier resolves a dossier by trying, in order: UUID id,
	// legacy numeric id, then order number. A non-nil filter applies
	// per-role scoping; a scoped miss returns domain.ErrDossierNotFound
	// just like a genuine miss.
	GetByIdentifier(ctx context.Context, identifier string, filter *access.Filter) (*domain.Dossier, error)
	List(ctx context.Context, filter access.Filter, offset, limit int) ([]domain.Dossier, int, error)
	// UpdateStatusIf performs the conditional write realizing the
	// read-decide-write contract: the UPDATE is keyed on the expected
	// current status and fails with domain.ErrStatusConflict when a
	// concurrent change got there first.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, expected, next domain.DossierStatus, comment string) error
	UpdateMachine(ctx context.Context, id uuid.UUID, machine domain.MachineType) error
	Update(ctx context.Context, dossier *domain.Dossier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	// ListByRoles returns the active users holding any of the given
	// roles; notification dispatch resolves role targets with it.
	ListByRoles(ctx context.Context, roles []domain.UserRole) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// DossierFileRepository defines the contract for dossier file metadata.
type DossierFileRepository interface {
	Create(ctx context.Context, file *domain.DossierFile) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.DossierFile, error)
	ListByDossier(ctx context.Context, dossierID uuid.UUID, offset, limit int) ([]domain.DossierFile, int, error)
	Delete(ctx context.Context, fileID uuid.UUID) error
}

// DevisRepository defines the contract for quote persistence.
type DevisRepository interface {
	Create(ctx context.Context, devis *domain.Devis) error
	GetByID(ctx context.Context, devisID uuid.UUID) (*domain.Devis, error)
	List(ctx context.Context, status domain.DevisStatus, offset, limit int) ([]domain.Devis, int, error)
	// Decide moves a pending devis to accepted/rejected, optionally
	// linking the dossier created from it. Fails with
	// domain.ErrDevisAlreadyDecided when the devis is no longer pending.
	Decide(ctx context.Context, devisID uuid.UUID, status domain.DevisStatus, dossierID *uuid.UUID) error
}

// PaymentRepository defines the contract for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByDossier(ctx context.Context, dossierID uuid.UUID) ([]domain.Payment, error)
	TotalPaid(ctx context.Context, dossierID uuid.UUID) (float64, error)
}

// ActivityLogRepository defines the contract for the append-only activity log.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *domain.ActivityEntry) error
	ListByDossier(ctx context.Context, dossierID uuid.UUID, offset, limit int) ([]domain.ActivityEntry, int, error)
	ListRecent(ctx context.Context, offset, limit int) ([]domain.ActivityEntry, int, error)
}

// StatsRepository defines the contract for dashboard aggregation queries.
type StatsRepository interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	PreparerLoad(ctx context.Context) ([]domain.PreparerStat, error)
}
