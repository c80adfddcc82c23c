package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobconnect/internal/domain"
	"jobconnect/pkg/utils"
)

// AdminService owns platform moderation: the user registry and admin-account
// creation.
type AdminService struct {
	users  domain.UserRepository
	admins domain.AdminRepository
}

func NewAdminService(users domain.UserRepository, admins domain.AdminRepository) *AdminService {
	return &AdminService{users: users, admins: admins}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// CreateAdmin adds an administrator. The email must be unused in both
// identity spaces.
func (s *AdminService) CreateAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if u, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered as %s", domain.ErrConflict, strings.ToLower(string(u.Role)))
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := s.admins.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: admin already exists", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	a := &domain.Admin{
		Email:        email,
		PasswordHash: utils.HashPassword(password),
	}
	if err := s.admins.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
