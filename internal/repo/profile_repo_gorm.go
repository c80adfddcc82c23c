package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobconnect/internal/domain"
)

type EmployeeProfileRepo struct{ db *gorm.DB }

func NewEmployeeProfileRepo(db *gorm.DB) *EmployeeProfileRepo {
	return &EmployeeProfileRepo{db: db}
}

var _ domain.EmployeeProfileRepository = (*EmployeeProfileRepo)(nil)

func (r *EmployeeProfileRepo) Upsert(ctx context.Context, p *domain.EmployeeProfile) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone", "location", "education", "skills", "experience", "updated_at"}),
	}).Create(p).Error
	return translate(err)
}

func (r *EmployeeProfileRepo) FindByUser(ctx context.Context, userID int64) (*domain.EmployeeProfile, error) {
	var p domain.EmployeeProfile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

type EmployeeDocumentRepo struct{ db *gorm.DB }

func NewEmployeeDocumentRepo(db *gorm.DB) *EmployeeDocumentRepo {
	return &EmployeeDocumentRepo{db: db}
}

var _ domain.EmployeeDocumentRepository = (*EmployeeDocumentRepo)(nil)

func (r *EmployeeDocumentRepo) Create(ctx context.Context, d *domain.EmployeeDocument) error {
	return translate(r.db.WithContext(ctx).Create(d).Error)
}

func (r *EmployeeDocumentRepo) ListByUser(ctx context.Context, userID int64) ([]domain.EmployeeDocument, error) {
	var docs []domain.EmployeeDocument
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at desc").
		Find(&docs).Error
	return docs, translate(err)
}

func (r *EmployeeDocumentRepo) FindOwned(ctx context.Context, id, userID int64) (*domain.EmployeeDocument, error) {
	var d domain.EmployeeDocument
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *EmployeeDocumentRepo) DeleteOwned(ctx context.Context, id, userID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.EmployeeDocument{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
