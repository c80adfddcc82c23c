package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobconnect/internal/domain"
)

type CompanyRepo struct{ db *gorm.DB }

func NewCompanyRepo(db *gorm.DB) *CompanyRepo { return &CompanyRepo{db: db} }

var _ domain.CompanyRepository = (*CompanyRepo)(nil)

// Upsert keys on owner_id: one company per employer, created lazily on the
// first submission.
func (r *CompanyRepo) Upsert(ctx context.Context, c *domain.Company) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "website", "updated_at"}),
	}).Create(c).Error
	return translate(err)
}

func (r *CompanyRepo) FindByOwner(ctx context.Context, ownerID int64) (*domain.Company, error) {
	var c domain.Company
	if err := r.db.WithContext(ctx).First(&c, "owner_id = ?", ownerID).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CompanyRepo) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}
