package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for interaction entries.
//
// It MUST be append-only.
// No Update/Delete methods are provided by design.
type Repository interface {
	Append(ctx context.Context, e Entry) error
	ListByChurch(ctx context.Context, churchID string, limit int) ([]Entry, error)
}

// Service records caller interactions for the dashboard activity feed.
//
// IMPORTANT:
// - Callers treat these writes as best-effort: a failed entry is logged
//   operationally and never surfaced to the person on the phone.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

var ErrInvalidEntry = errors.New("activity: invalid entry")

func (s *Service) Append(ctx context.Context, e Entry) error {
	if s.repo == nil {
		return errors.New("activity: repository not configured")
	}
	if e.ChurchID == "" {
		return ErrInvalidEntry
	}
	if e.Type == "" {
		return ErrInvalidEntry
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = StatusCompleted
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock().UTC()
	}
	e.Description = Truncate(e.Description, DescriptionLimit)
	return s.repo.Append(ctx, e)
}

// LogVoiceTurn records one assistant conversation turn.
func (s *Service) LogVoiceTurn(ctx context.Context, churchID string, md TurnMetadata) error {
	return s.Append(ctx, Entry{
		ChurchID:    churchID,
		Type:        TypeVoice,
		Status:      StatusCompleted,
		Title:       "Grace call",
		Description: fmt.Sprintf("Grace call: %q -> %q", md.SpeechResult, md.Reply),
		Metadata:    marshalMetadata(md),
	})
}

// LogCallCompleted records a terminal call status with its duration.
func (s *Service) LogCallCompleted(ctx context.Context, churchID string, md CallMetadata) error {
	return s.Append(ctx, Entry{
		ChurchID:    churchID,
		Type:        TypeCall,
		Status:      StatusCompleted,
		Title:       "Grace call ended",
		Description: fmt.Sprintf("Call %s ended (%s, %ds)", md.CallSID, md.CallStatus, md.DurationSeconds),
		Metadata:    marshalMetadata(md),
	})
}

// ListRecent returns the newest entries for a church, capped at limit.
func (s *Service) ListRecent(ctx context.Context, churchID string, limit int) ([]Entry, error) {
	if s.repo == nil {
		return nil, errors.New("activity: repository not configured")
	}
	if churchID == "" {
		return nil, ErrInvalidEntry
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListByChurch(ctx, churchID, limit)
}
