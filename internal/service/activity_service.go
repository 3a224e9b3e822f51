package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"printflow/internal/domain"
	"printflow/internal/port"
)

// ActivityService is the append-only activity log sink. Log is
// fire-and-forget by contract: a failed write must never block or fail the
// operation that triggered it, so failures are logged and swallowed, never
// retried.
type ActivityService interface {
	Log(ctx context.Context, dossierID *uuid.UUID, userID uuid.UUID, action, details string)
	ListByDossier(ctx context.Context, dossierID uuid.UUID, offset, limit int) ([]domain.ActivityEntry, int, error)
	ListRecent(ctx context.Context, offset, limit int) ([]domain.ActivityEntry, int, error)
}

type activityService struct {
	repo port.ActivityLogRepository
}

// NewActivityService creates a new ActivityService implementation.
func NewActivityService(repo port.ActivityLogRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) Log(ctx context.Context, dossierID *uuid.UUID, userID uuid.UUID, action, details string) {
	entry := &domain.ActivityEntry{
		ID:        uuid.New(),
		DossierID: dossierID,
		UserID:    userID,
		Action:    action,
		Details:   details,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("activityService.Log: dropping entry (action=%s user=%s): %v", action, userID, err)
	}
}

func (s *activityService) ListByDossier(ctx context.Context, dossierID uuid.UUID, offset, limit int) ([]domain.ActivityEntry, int, error) {
	return s.repo.ListByDossier(ctx, dossierID, offset, limit)
}

func (s *activityService) ListRecent(ctx context.Context, offset, limit int) ([]domain.ActivityEntry, int, error) {
	return s.repo.ListRecent(ctx, offset, limit)
}
