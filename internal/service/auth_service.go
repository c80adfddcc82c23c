package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"jobconnect/internal/core/auth"
	"jobconnect/internal/domain"
	"jobconnect/internal/notify"
	"jobconnect/pkg/utils"
)

var (
	nationalIDPattern = regexp.MustCompile(`^\d{16}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type RegisterInput struct {
	FullName        string
	NationalID      string
	Email           string
	Role            domain.Role
	Password        string
	ConfirmPassword string
}

// LoginResult carries the issued credential plus where the client should land.
type LoginResult struct {
	Token    string
	Role     domain.Role
	Redirect string
}

// AuthService owns registration, login across both identity spaces, and the
// password-reset flow.
type AuthService struct {
	users      domain.UserRepository
	admins     domain.AdminRepository
	tokens     *auth.Tokens
	dispatcher *notify.Dispatcher
	baseURL    string
	log        *zap.Logger
}

func NewAuthService(users domain.UserRepository, admins domain.AdminRepository, tokens *auth.Tokens, dispatcher *notify.Dispatcher, baseURL string, log *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		admins:     admins,
		tokens:     tokens,
		dispatcher: dispatcher,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// Register validates and creates an EMPLOYEE or EMPLOYER user. No row is
// created when any validation fails.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)

	if len(fullName) < 3 {
		return nil, fmt.Errorf("%w: invalid full name", domain.ErrInvalidInput)
	}
	if !nationalIDPattern.MatchString(in.NationalID) {
		return nil, fmt.Errorf("%w: national ID must be 16 digits", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	if !domain.ValidUserRole(in.Role) {
		return nil, fmt.Errorf("%w: invalid role", domain.ErrInvalidInput)
	}
	if in.Password == "" || in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}

	exists, err := s.users.ExistsByEmailOrNationalID(ctx, email, in.NationalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: email or national ID already registered", domain.ErrConflict)
	}
	// The two identity spaces share one email namespace.
	if _, err := s.admins.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered as admin", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	u := &domain.User{
		FullName:     fullName,
		NationalID:   in.NationalID,
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Concurrent registration lost the race on a unique index.
			return nil, fmt.Errorf("%w: email or national ID already registered", domain.ErrConflict)
		}
		return nil, err
	}
	return u, nil
}

// Login verifies credentials against users first, then admins, and issues a
// 7-day session token. Unknown email and wrong password are reported
// identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", domain.ErrInvalidInput)
	}

	u, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !utils.CheckPassword(password, u.PasswordHash) {
			return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
		}
		token, err := s.tokens.IssueSession(u.ID, u.Role)
		if err != nil {
			return nil, err
		}
		redirect := "/employer/dashboard"
		if u.Role == domain.RoleEmployee {
			redirect = "/employee/dashboard"
		}
		return &LoginResult{Token: token, Role: u.Role, Redirect: redirect}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	a, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPassword(password, a.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}
	token, err := s.tokens.IssueSession(a.ID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Role: domain.RoleAdmin, Redirect: "/admin/dashboard"}, nil
}

// AdminLogin verifies credentials against the admin space only.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", domain.ErrInvalidInput)
	}
	a, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPassword(password, a.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	}
	token, err := s.tokens.IssueSession(a.ID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Role: domain.RoleAdmin, Redirect: "/admin/dashboard"}, nil
}

// ForgotPassword emails a 30-minute reset link when the address belongs to a
// user, and silently no-ops otherwise so the endpoint does not reveal which
// emails are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email required", domain.ErrInvalidInput)
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	token, err := s.tokens.IssueReset(u.Email)
	if err != nil {
		return err
	}
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", s.baseURL, token)
	subject, body := notify.ResetEmail(resetURL)
	s.dispatcher.Enqueue(notify.Message{To: u.Email, Subject: subject, Body: body})
	return nil
}

// ResetPassword verifies a reset token and replaces the user's password hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return fmt.Errorf("%w: missing token or password", domain.ErrInvalidInput)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password too short", domain.ErrInvalidInput)
	}
	email, err := s.tokens.VerifyReset(token)
	if err != nil {
		return fmt.Errorf("%w: invalid or expired token", domain.ErrInvalidInput)
	}
	if err := s.users.UpdatePasswordByEmail(ctx, email, utils.HashPassword(password)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: invalid or expired token", domain.ErrInvalidInput)
		}
		return err
	}
	s.log.Info("password reset", zap.String("email", email))
	return nil
}
