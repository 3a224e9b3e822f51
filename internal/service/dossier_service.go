package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"printflow/internal/access"
	"printflow/internal/domain"
	"printflow/internal/port"
	"printflow/internal/workflow"
)

// CreateDossierInput is the DTO for creating a dossier.
type CreateDossierInput struct {
	ClientName  string             `json:"client_name" binding:"required"`
	Description string             `json:"description"`
	MachineType domain.MachineType `json:"machine_type" binding:"required"`
	// OwnerID lets an admin create a dossier on behalf of a preparer;
	// ignored for other callers.
	OwnerID *uuid.UUID `json:"owner_id"`
}

// ChangeStatusInput is the DTO for a status-change request. Only the target
// status comes from the client; the current status is always re-read from
// the store so stale UI state cannot win a race.
type ChangeStatusInput struct {
	TargetStatus string `json:"target_status" binding:"required"`
	Comment      string `json:"comment"`
}

// UpdateDossierInput is the DTO for editing dossier metadata.
type UpdateDossierInput struct {
	ClientName  *string `json:"client_name"`
	Description *string `json:"description"`
}

// DossierService orchestrates dossier operations: access engine first,
// workflow engine for status semantics, then persistence, notification
// dispatch, and the best-effort activity log.
type DossierService interface {
	Create(ctx context.Context, user domain.User, input CreateDossierInput) (*domain.Dossier, error)
	// Resolve looks a dossier up without scoping; the middleware uses it
	// to tell 403 from 404.
	Resolve(ctx context.Context, identifier string) (*domain.Dossier, error)
	// ResolveFor applies the caller's visibility scope; a hidden dossier
	// is indistinguishable from a missing one at this layer.
	ResolveFor(ctx context.Context, identifier string, user domain.User) (*domain.Dossier, error)
	List(ctx context.Context, user domain.User, offset, limit int) ([]domain.Dossier, int, error)
	Update(ctx context.Context, user domain.User, dossier domain.Dossier, input UpdateDossierInput) (*domain.Dossier, error)
	ChangeStatus(ctx context.Context, user domain.User, dossier domain.Dossier, input ChangeStatusInput) (*domain.Dossier, error)
	AvailableActions(user domain.User, dossier domain.Dossier) []workflow.ActionOption
	Delete(ctx context.Context, user domain.User, dossier domain.Dossier) error
	AssignMachine(ctx context.Context, user domain.User, dossier domain.Dossier, machine domain.MachineType) (*domain.Dossier, error)
	ImportLegacy(ctx context.Context, user domain.User, records []map[string]any) (int, error)
}

type dossierService struct {
	dossierRepo port.DossierRepository
	dispatcher  port.NotificationDispatcher
	activity    ActivityService
}

// NewDossierService creates a new DossierService implementation.
func NewDossierService(
	dossierRepo port.DossierRepository,
	dispatcher port.NotificationDispatcher,
	activity ActivityService,
) DossierService {
	return &dossierService{
		dossierRepo: dossierRepo,
		dispatcher:  dispatcher,
		activity:    activity,
	}
}

func (s *dossierService) Create(ctx context.Context, user domain.User, input CreateDossierInput) (*domain.Dossier, error) {
	if !access.HasActionPermission(user.Role, domain.ActionCreate) {
		return nil, domain.Denied(fmt.Sprintf("role %q may not create dossiers", user.Role))
	}

	machine, ok := domain.ParseMachineType(string(input.MachineType))
	if !ok || machine == domain.MachineNone {
		return nil, domain.ErrInvalidMachineType
	}

	ownerID := user.ID
	if input.OwnerID != nil && user.Role == domain.RoleAdmin {
		ownerID = *input.OwnerID
	}

	id := uuid.New()
	dossier := &domain.Dossier{
		ID:          id,
		OrderNumber: newOrderNumber(id),
		ClientName:  strings.TrimSpace(input.ClientName),
		Description: strings.TrimSpace(input.Description),
		Status:      domain.StatusEnCours,
		MachineType: machine,
		OwnerID:     ownerID,
	}

	if err := s.dossierRepo.Create(ctx, dossier); err != nil {
		return nil, err
	}

	s.activity.Log(ctx, &dossier.ID, user.ID, "create",
		fmt.Sprintf("dossier %s created for %s", dossier.OrderNumber, dossier.ClientName))
	return dossier, nil
}

func (s *dossierService) Resolve(ctx context.Context, identifier string) (*domain.Dossier, error) {
	return s.dossierRepo.GetByIdentifier(ctx, identifier, nil)
}

func (s *dossierService) ResolveFor(ctx context.Context, identifier string, user domain.User) (*domain.Dossier, error) {
	filter := access.DossierFilterForUser(user)
	return s.dossierRepo.GetByIdentifier(ctx, identifier, &filter)
}

func (s *dossierService) List(ctx context.Context, user domain.User, offset, limit int) ([]domain.Dossier, int, error) {
	return s.dossierRepo.List(ctx, access.DossierFilterForUser(user), offset, limit)
}

func (s *dossierService) Update(ctx context.Context, user domain.User, dossier domain.Dossier, input UpdateDossierInput) (*domain.Dossier, error) {
	if decision := access.CanAccessDossier(user, dossier, domain.ActionUpdate); !decision.Allowed {
		return nil, domain.Denied(decision.Message)
	}

	if input.ClientName != nil {
		dossier.ClientName = strings.TrimSpace(*input.ClientName)
	}
	if input.Description != nil {
		dossier.Description = strings.TrimSpace(*input.Description)
	}

	if err := s.dossierRepo.Update(ctx, &dossier); err != nil {
		return nil, err
	}
	s.activity.Log(ctx, &dossier.ID, user.ID, "update", "dossier metadata updated")
	return &dossier, nil
}

func (s *dossierService) ChangeStatus(ctx context.Context, user domain.User, dossier domain.Dossier, input ChangeStatusInput) (*domain.Dossier, error) {
	if decision := access.CanAccessDossier(user, dossier, domain.ActionChangeStatus); !decision.Allowed {
		return nil, domain.Denied(decision.Message)
	}

	target := domain.NormalizeStatus(input.TargetStatus)
	if decision := workflow.ValidateTransition(user, dossier, target, input.Comment); !decision.Allowed {
		return nil, domain.Denied(decision.Reason)
	}

	// Decide against the persisted status, write conditionally on it.
	oldStatus := domain.NormalizeStatus(string(dossier.Status))
	if err := s.dossierRepo.UpdateStatusIf(ctx, dossier.ID, oldStatus, target, strings.TrimSpace(input.Comment)); err != nil {
		return nil, err
	}
	dossier.Status = target
	dossier.StatusComment = strings.TrimSpace(input.Comment)

	for _, notification := range workflow.NotificationsFor(dossier, oldStatus, target, user) {
		if err := s.dispatcher.Dispatch(ctx, notification); err != nil {
			log.Printf("dossierService.ChangeStatus: dispatch %s for dossier %s: %v",
				notification.Type, dossier.OrderNumber, err)
		}
	}

	s.activity.Log(ctx, &dossier.ID, user.ID, "change_status",
		fmt.Sprintf("%s -> %s", oldStatus, target))
	return &dossier, nil
}

func (s *dossierService) AvailableActions(user domain.User, dossier domain.Dossier) []workflow.ActionOption {
	return workflow.AvailableActions(user, dossier)
}

func (s *dossierService) Delete(ctx context.Context, user domain.User, dossier domain.Dossier) error {
	// workflow.CanDeleteDossier is the single deletion authority; the
	// static action table is deliberately not consulted here.
	if decision := workflow.CanDeleteDossier(user, dossier); !decision.Allowed {
		return domain.Denied(decision.Reason)
	}
	if err := s.dossierRepo.Delete(ctx, dossier.ID); err != nil {
		return err
	}
	s.activity.Log(ctx, nil, user.ID, "delete",
		fmt.Sprintf("dossier %s deleted", dossier.OrderNumber))
	return nil
}

func (s *dossierService) AssignMachine(ctx context.Context, user domain.User, dossier domain.Dossier, machine domain.MachineType) (*domain.Dossier, error) {
	if decision := access.CanAccessDossier(user, dossier, domain.ActionAssign); !decision.Allowed {
		return nil, domain.Denied(decision.Message)
	}
	if machine == domain.MachineNone {
		return nil, domain.ErrInvalidMachineType
	}

	if err := s.dossierRepo.UpdateMachine(ctx, dossier.ID, machine); err != nil {
		return nil, err
	}
	dossier.MachineType = machine

	s.activity.Log(ctx, &dossier.ID, user.ID, "assign",
		fmt.Sprintf("dossier %s assigned to %s", dossier.OrderNumber, machine))
	return &dossier, nil
}

// ImportLegacy loads dossier records exported from the previous system,
// resolving aliased field names at the boundary. Admin only. Returns the
// number of records imported; the first bad record aborts the run.
func (s *dossierService) ImportLegacy(ctx context.Context, user domain.User, records []map[string]any) (int, error) {
	if user.Role != domain.RoleAdmin {
		return 0, domain.Denied("only admins may import legacy dossiers")
	}

	imported := 0
	for i, record := range records {
		dossier, err := domain.DossierFromRecord(record)
		if err != nil {
			return imported, fmt.Errorf("record %d: %w", i, err)
		}
		dossier.ID = uuid.New()
		if dossier.OrderNumber == "" {
			dossier.OrderNumber = newOrderNumber(dossier.ID)
		}
		if dossier.OwnerID == uuid.Nil {
			dossier.OwnerID = user.ID
		}
		if err := s.dossierRepo.Create(ctx, dossier); err != nil {
			return imported, fmt.Errorf("record %d: %w", i, err)
		}
		imported++
	}

	s.activity.Log(ctx, nil, user.ID, "import_legacy",
		fmt.Sprintf("%d dossiers imported", imported))
	return imported, nil
}

// newOrderNumber derives a human-readable order number from the dossier id,
// e.g. CMD-2026-1A2B3C4D.
func newOrderNumber(id uuid.UUID) string {
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("CMD-%d-%s", time.Now().UTC().Year(), short)
}
