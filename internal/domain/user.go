package domain

import (
	"context"
	"time"
)

// Role is the principal role carried by sessions and users.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleEmployer Role = "EMPLOYER"
	RoleAdmin    Role = "ADMIN"
)

// ValidUserRole reports whether r is a role a User row may hold.
// ADMIN lives in its own identity space (see Admin).
func ValidUserRole(r Role) bool {
	return r == RoleEmployee || r == RoleEmployer
}

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:191;not null" json:"full_name"`
	NationalID   string    `gorm:"column:national_id;uniqueIndex;size:16;not null" json:"national_id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmailOrNationalID(ctx context.Context, email, nationalID string) (bool, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}
