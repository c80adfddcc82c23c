package domain

import (
	"context"
	"time"
)

// Company is owned by exactly one EMPLOYER user. It is created lazily on the
// first company-profile submission and upserted thereafter.
type Company struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	OwnerID     int64     `gorm:"uniqueIndex;not null" json:"owner_id"`
	Name        string    `gorm:"size:191;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Website     string    `gorm:"size:191" json:"website"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Company) TableName() string { return "companies" }

type CompanyRepository interface {
	Upsert(ctx context.Context, c *Company) error
	FindByOwner(ctx context.Context, ownerID int64) (*Company, error)
	FindByID(ctx context.Context, id int64) (*Company, error)
}
