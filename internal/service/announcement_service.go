package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobconnect/internal/domain"
)

type AnnouncementInput struct {
	Title          string
	Content        string
	ExpirationDate *time.Time
}

// CleanupResult reports what an expired-announcement purge removed, for
// auditability: the deletion is irreversible.
type CleanupResult struct {
	DeletedCount int64                 `json:"deleted_count"`
	Deleted      []domain.Announcement `json:"deleted"`
}

// AnnouncementService owns the admin-only announcement lifecycle and the
// public active listing.
type AnnouncementService struct {
	announcements domain.AnnouncementRepository
}

func NewAnnouncementService(announcements domain.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

func (s *AnnouncementService) Create(ctx context.Context, in AnnouncementInput) (*domain.Announcement, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}
	if in.ExpirationDate != nil && !in.ExpirationDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: expiration date must be in the future", domain.ErrInvalidInput)
	}
	a := &domain.Announcement{
		Title:          truncate(title),
		Content:        content,
		ExpirationDate: in.ExpirationDate,
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAll is the admin view: expired announcements included.
func (s *AnnouncementService) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcements.ListAll(ctx)
}

func (s *AnnouncementService) ListActive(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcements.ListActive(ctx, time.Now())
}

func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return s.announcements.Delete(ctx, id)
}

// PreviewExpired lists what Cleanup would delete, without deleting.
func (s *AnnouncementService) PreviewExpired(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcements.ListExpired(ctx, time.Now())
}

// Cleanup permanently deletes every announcement whose expiration is at or
// before now, reporting the removed rows.
func (s *AnnouncementService) Cleanup(ctx context.Context) (*CleanupResult, error) {
	now := time.Now()
	expired, err := s.announcements.ListExpired(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(expired) == 0 {
		return &CleanupResult{DeletedCount: 0, Deleted: []domain.Announcement{}}, nil
	}
	count, err := s.announcements.DeleteExpired(ctx, now)
	if err != nil {
		return nil, err
	}
	return &CleanupResult{DeletedCount: count, Deleted: expired}, nil
}
