package domain

import (
	"context"
	"time"
)

// Admin is a platform administrator. Admins and Users are disjoint identity
// spaces; email uniqueness across both is enforced by the services.
type Admin struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Admin) TableName() string { return "admins" }

type AdminRepository interface {
	Create(ctx context.Context, a *Admin) error
	FindByID(ctx context.Context, id int64) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}
