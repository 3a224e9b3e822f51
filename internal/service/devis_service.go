package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"printflow/internal/domain"
	"printflow/internal/port"
)

// CreateDevisInput is the DTO for creating a quote.
type CreateDevisInput struct {
	ClientName  string             `json:"client_name" binding:"required"`
	Description string             `json:"description"`
	MachineType domain.MachineType `json:"machine_type" binding:"required"`
	Amount      float64            `json:"amount" binding:"required"`
}

// DevisService manages quotes. Accepting a quote is the one entry point
// into the pipeline that does not go through dossier creation directly:
// it spawns a dossier owned by whoever wrote the quote.
type DevisService interface {
	Create(ctx context.Context, user domain.User, input CreateDevisInput) (*domain.Devis, error)
	GetByID(ctx context.Context, devisID uuid.UUID) (*domain.Devis, error)
	List(ctx context.Context, status domain.DevisStatus, offset, limit int) ([]domain.Devis, int, error)
	Accept(ctx context.Context, user domain.User, devisID uuid.UUID) (*domain.Dossier, error)
	Reject(ctx context.Context, user domain.User, devisID uuid.UUID) error
}

type devisService struct {
	devisRepo   port.DevisRepository
	dossierRepo port.DossierRepository
	activity    ActivityService
}

// NewDevisService creates a new DevisService implementation.
func NewDevisService(
	devisRepo port.DevisRepository,
	dossierRepo port.DossierRepository,
	activity ActivityService,
) DevisService {
	return &devisService{
		devisRepo:   devisRepo,
		dossierRepo: dossierRepo,
		activity:    activity,
	}
}

func (s *devisService) Create(ctx context.Context, user domain.User, input CreateDevisInput) (*domain.Devis, error) {
	if user.Role != domain.RoleAdmin && user.Role != domain.RolePreparateur {
		return nil, domain.Denied(fmt.Sprintf("role %q may not create quotes", user.Role))
	}

	machine, ok := domain.ParseMachineType(string(input.MachineType))
	if !ok || machine == domain.MachineNone {
		return nil, domain.ErrInvalidMachineType
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("devisService.Create: amount must be positive")
	}

	id := uuid.New()
	devis := &domain.Devis{
		ID:          id,
		DevisNumber: newDevisNumber(id),
		ClientName:  strings.TrimSpace(input.ClientName),
		Description: strings.TrimSpace(input.Description),
		MachineType: machine,
		Amount:      input.Amount,
		Status:      domain.DevisPending,
		CreatedBy:   user.ID,
	}

	if err := s.devisRepo.Create(ctx, devis); err != nil {
		return nil, err
	}
	s.activity.Log(ctx, nil, user.ID, "create_devis",
		fmt.Sprintf("devis %s created for %s", devis.DevisNumber, devis.ClientName))
	return devis, nil
}

func (s *devisService) GetByID(ctx context.Context, devisID uuid.UUID) (*domain.Devis, error) {
	return s.devisRepo.GetByID(ctx, devisID)
}

func (s *devisService) List(ctx context.Context, status domain.DevisStatus, offset, limit int) ([]domain.Devis, int, error) {
	return s.devisRepo.List(ctx, status, offset, limit)
}

// Accept turns a pending devis into a dossier. The dossier belongs to the
// quote's author, not to the acceptor, so the preparer who quoted the job
// keeps it in their scope.
func (s *devisService) Accept(ctx context.Context, user domain.User, devisID uuid.UUID) (*domain.Dossier, error) {
	if user.Role != domain.RoleAdmin && user.Role != domain.RolePreparateur {
		return nil, domain.Denied(fmt.Sprintf("role %q may not accept quotes", user.Role))
	}

	devis, err := s.devisRepo.GetByID(ctx, devisID)
	if err != nil {
		return nil, err
	}
	if devis.Status != domain.DevisPending {
		return nil, domain.ErrDevisAlreadyDecided
	}

	dossierID := uuid.New()
	dossier := &domain.Dossier{
		ID:          dossierID,
		OrderNumber: newOrderNumber(dossierID),
		ClientName:  devis.ClientName,
		Description: devis.Description,
		Status:      domain.StatusEnCours,
		MachineType: devis.MachineType,
		OwnerID:     devis.CreatedBy,
	}
	if err := s.dossierRepo.Create(ctx, dossier); err != nil {
		return nil, err
	}

	if err := s.devisRepo.Decide(ctx, devisID, domain.DevisAccepted, &dossierID); err != nil {
		// The dossier exists but the devis stayed pending; surface the
		// conflict rather than leave a silent double-accept window.
		return nil, err
	}

	s.activity.Log(ctx, &dossier.ID, user.ID, "accept_devis",
		fmt.Sprintf("devis %s accepted into dossier %s", devis.DevisNumber, dossier.OrderNumber))
	return dossier, nil
}

func (s *devisService) Reject(ctx context.Context, user domain.User, devisID uuid.UUID) error {
	if user.Role != domain.RoleAdmin && user.Role != domain.RolePreparateur {
		return domain.Denied(fmt.Sprintf("role %q may not reject quotes", user.Role))
	}
	if err := s.devisRepo.Decide(ctx, devisID, domain.DevisRejected, nil); err != nil {
		return err
	}
	s.activity.Log(ctx, nil, user.ID, "reject_devis", fmt.Sprintf("devis %s rejected", devisID))
	return nil
}

func newDevisNumber(id uuid.UUID) string {
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("DEV-%d-%s", time.Now().UTC().Year(), short)
}
