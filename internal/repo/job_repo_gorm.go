package repo

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"jobconnect/internal/domain"
)

// activeJobCond is the visibility predicate shared by all public listings.
const activeJobCond = "deadline IS NULL OR deadline > ?"

type JobRepo struct{ db *gorm.DB }

func NewJobRepo(db *gorm.DB) *JobRepo { return &JobRepo{db: db} }

var _ domain.JobRepository = (*JobRepo)(nil)

func (r *JobRepo) Create(ctx context.Context, j *domain.Job) error {
	return translate(r.db.WithContext(ctx).Create(j).Error)
}

func (r *JobRepo) Update(ctx context.Context, j *domain.Job) error {
	return translate(r.db.WithContext(ctx).Save(j).Error)
}

func (r *JobRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Job{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *JobRepo) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	var j domain.Job
	err := r.db.WithContext(ctx).Preload("Company").First(&j, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &j, nil
}

// FindOwned joins through companies so that a job owned by another employer
// resolves to ErrNotFound rather than a distinguishable denial.
func (r *JobRepo) FindOwned(ctx context.Context, id, ownerID int64) (*domain.Job, error) {
	var j domain.Job
	err := r.db.WithContext(ctx).
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where("jobs.id = ? AND companies.owner_id = ?", id, ownerID).
		First(&j).Error
	if err != nil {
		return nil, translate(err)
	}
	return &j, nil
}

func (r *JobRepo) ListActive(ctx context.Context, f domain.JobFilter, now time.Time) ([]domain.Job, error) {
	q := r.db.WithContext(ctx).Preload("Company").
		Where(activeJobCond, now)
	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if s := strings.TrimSpace(f.Location); s != "" {
		q = q.Where("location LIKE ?", "%"+s+"%")
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	var jobs []domain.Job
	err := q.Order("created_at desc").Find(&jobs).Error
	return jobs, translate(err)
}

func (r *JobRepo) ListByCompany(ctx context.Context, companyID int64) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&jobs).Error
	return jobs, translate(err)
}

func (r *JobRepo) ListAll(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).Preload("Company").
		Order("created_at desc").
		Find(&jobs).Error
	return jobs, translate(err)
}

func (r *JobRepo) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Job{}).
		Where(activeJobCond, now).
		Count(&n).Error
	return n, translate(err)
}
