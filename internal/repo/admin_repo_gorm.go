package repo

import (
	"context"

	"gorm.io/gorm"

	"jobconnect/internal/domain"
)

type AdminRepo struct{ db *gorm.DB }

func NewAdminRepo(db *gorm.DB) *AdminRepo { return &AdminRepo{db: db} }

var _ domain.AdminRepository = (*AdminRepo)(nil)

func (r *AdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *AdminRepo) FindByID(ctx context.Context, id int64) (*domain.Admin, error) {
	var a domain.Admin
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AdminRepo) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var a domain.Admin
	if err := r.db.WithContext(ctx).First(&a, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}
