package domain

import (
	"context"
	"time"
)

// Announcement lifecycle is admin-only. Visibility follows the same predicate
// as Job deadlines: active when expiration is unset or in the future.
type Announcement struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"size:191;not null" json:"title"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	ExpirationDate *time.Time `json:"expiration_date"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (Announcement) TableName() string { return "announcements" }

func (a *Announcement) Active(now time.Time) bool {
	return a.ExpirationDate == nil || a.ExpirationDate.After(now)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) error
	ListAll(ctx context.Context) ([]Announcement, error)
	ListActive(ctx context.Context, now time.Time) ([]Announcement, error)
	// ListExpired returns rows with a non-null expiration at or before now.
	ListExpired(ctx context.Context, now time.Time) ([]Announcement, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	Delete(ctx context.Context, id int64) error
}
