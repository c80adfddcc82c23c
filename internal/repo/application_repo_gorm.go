package repo

import (
	"context"

	"gorm.io/gorm"

	"jobconnect/internal/domain"
)

type ApplicationRepo struct{ db *gorm.DB }

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

var _ domain.ApplicationRepository = (*ApplicationRepo)(nil)

// Create relies on the (user_id, job_id) unique index for duplicate
// rejection; a check-then-insert would race under concurrent submissions.
func (r *ApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *ApplicationRepo) FindByID(ctx context.Context, id int64) (*domain.Application, error) {
	var a domain.Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Job").
		Preload("Job.Company").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// FindOwned scopes the lookup to the employer's ownership chain. Missing and
// foreign applications both read as not found.
func (r *ApplicationRepo) FindOwned(ctx context.Context, id, employerID int64) (*domain.Application, error) {
	var a domain.Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Job").
		Preload("Job.Company").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where("applications.id = ? AND companies.owner_id = ?", id, employerID).
		First(&a).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// UpdateStatus overwrites unconditionally. Redundant writes report zero
// affected rows on mysql, so existence is the caller's lookup to establish.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	err := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
	return translate(err)
}

func (r *ApplicationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("applied_at desc").
		Find(&apps).Error
	return apps, translate(err)
}

func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("job_id = ?", jobID).
		Order("applied_at desc").
		Find(&apps).Error
	return apps, translate(err)
}

func (r *ApplicationRepo) ListAll(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Job").
		Preload("Job.Company").
		Order("applied_at desc").
		Find(&apps).Error
	return apps, translate(err)
}
