package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"jobconnect/internal/domain"
)

const (
	activeAnnouncementCond  = "expiration_date IS NULL OR expiration_date > ?"
	expiredAnnouncementCond = "expiration_date IS NOT NULL AND expiration_date <= ?"
)

type AnnouncementRepo struct{ db *gorm.DB }

func NewAnnouncementRepo(db *gorm.DB) *AnnouncementRepo { return &AnnouncementRepo{db: db} }

var _ domain.AnnouncementRepository = (*AnnouncementRepo)(nil)

func (r *AnnouncementRepo) Create(ctx context.Context, a *domain.Announcement) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *AnnouncementRepo) ListAll(ctx context.Context) ([]domain.Announcement, error) {
	var as []domain.Announcement
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&as).Error
	return as, translate(err)
}

func (r *AnnouncementRepo) ListActive(ctx context.Context, now time.Time) ([]domain.Announcement, error) {
	var as []domain.Announcement
	err := r.db.WithContext(ctx).
		Where(activeAnnouncementCond, now).
		Order("created_at desc").
		Find(&as).Error
	return as, translate(err)
}

func (r *AnnouncementRepo) ListExpired(ctx context.Context, now time.Time) ([]domain.Announcement, error) {
	var as []domain.Announcement
	err := r.db.WithContext(ctx).
		Where(expiredAnnouncementCond, now).
		Order("expiration_date asc").
		Find(&as).Error
	return as, translate(err)
}

func (r *AnnouncementRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where(expiredAnnouncementCond, now).
		Delete(&domain.Announcement{})
	return res.RowsAffected, translate(res.Error)
}

func (r *AnnouncementRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Announcement{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
