package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobconnect/internal/core/auth"
	"jobconnect/internal/domain"
	"jobconnect/internal/notify"
	"jobconnect/pkg/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *fakeAdminRepo, *captureMailer, *notify.Dispatcher) {
	t.Helper()
	users := newFakeUserRepo()
	admins := newFakeAdminRepo()
	mailer := &captureMailer{}
	dispatcher := notify.NewDispatcher(mailer, zap.NewNop(), 16)
	tokens := &auth.Tokens{Secret: []byte("test-secret"), Issuer: "test"}
	svc := NewAuthService(users, admins, tokens, dispatcher, "http://localhost:8080/", zap.NewNop())
	return svc, users, admins, mailer, dispatcher
}

func validRegister() RegisterInput {
	return RegisterInput{
		FullName:        "Jane Doe",
		NationalID:      "1234567890123456",
		Email:           "jane@example.com",
		Role:            domain.RoleEmployee,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, users, _, _, d := newAuthFixture(t)
	defer d.Close()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"short name", func(in *RegisterInput) { in.FullName = "ab" }},
		{"national id too short", func(in *RegisterInput) { in.NationalID = "123" }},
		{"national id non-digit", func(in *RegisterInput) { in.NationalID = "12345678901234ab" }},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"email with space", func(in *RegisterInput) { in.Email = "a b@example.com" }},
		{"admin role rejected", func(in *RegisterInput) { in.Role = domain.RoleAdmin }},
		{"unknown role", func(in *RegisterInput) { in.Role = "WIZARD" }},
		{"password mismatch", func(in *RegisterInput) { in.ConfirmPassword = "different" }},
		{"empty password", func(in *RegisterInput) { in.Password = ""; in.ConfirmPassword = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegister()
			tc.mutate(&in)
			_, err := svc.Register(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	n, _ := users.Count(ctx)
	assert.Zero(t, n, "no row may be created when validation fails")
}

func TestRegisterSuccessAndConflicts(t *testing.T) {
	svc, _, admins, _, d := newAuthFixture(t)
	defer d.Close()
	ctx := context.Background()

	u, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, domain.RoleEmployee, u.Role)
	assert.NotEqual(t, "secret123", u.PasswordHash)

	// same email
	in := validRegister()
	in.NationalID = "6543210987654321"
	_, err = svc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// same national id
	in = validRegister()
	in.Email = "other@example.com"
	_, err = svc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// email taken by an admin
	require.NoError(t, admins.Create(ctx, &domain.Admin{Email: "boss@example.com", PasswordHash: "x"}))
	in = validRegister()
	in.Email = "boss@example.com"
	in.NationalID = "1111111111111111"
	_, err = svc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLoginBothSpaces(t *testing.T) {
	svc, _, admins, _, d := newAuthFixture(t)
	defer d.Close()
	ctx := context.Background()

	in := validRegister()
	in.Role = domain.RoleEmployer
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	res, err := svc.Login(ctx, in.Email, in.Password)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployer, res.Role)
	assert.Equal(t, "/employer/dashboard", res.Redirect)
	assert.NotEmpty(t, res.Token)

	require.NoError(t, admins.Create(ctx, &domain.Admin{
		Email:        "root@example.com",
		PasswordHash: utils.HashPassword("adminpass"),
	}))
	res, err = svc.Login(ctx, "root@example.com", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, res.Role)
	assert.Equal(t, "/admin/dashboard", res.Redirect)

	// wrong password and unknown email read the same
	_, errWrong := svc.Login(ctx, in.Email, "bad")
	_, errUnknown := svc.Login(ctx, "nobody@example.com", "bad")
	assert.ErrorIs(t, errWrong, domain.ErrUnauthorized)
	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestAdminLoginIgnoresUserSpace(t *testing.T) {
	svc, _, _, _, d := newAuthFixture(t)
	defer d.Close()
	ctx := context.Background()

	in := validRegister()
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	_, err = svc.AdminLogin(ctx, in.Email, in.Password)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestForgotPasswordFlow(t *testing.T) {
	svc, users, _, mailer, d := newAuthFixture(t)
	ctx := context.Background()

	in := validRegister()
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	// unknown email: silent no-op, nothing sent
	require.NoError(t, svc.ForgotPassword(ctx, "ghost@example.com"))

	require.NoError(t, svc.ForgotPassword(ctx, in.Email))
	d.Close()

	msgs := mailer.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, in.Email, msgs[0].To)
	assert.Contains(t, msgs[0].Body, "http://localhost:8080/auth/reset-password?token=")

	u, err := users.FindByEmail(ctx, in.Email)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(in.Password, u.PasswordHash), "password unchanged until reset")
}

func TestResetPassword(t *testing.T) {
	svc, users, _, _, d := newAuthFixture(t)
	defer d.Close()
	ctx := context.Background()

	in := validRegister()
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	token, err := svc.tokens.IssueReset(in.Email)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword(ctx, token, "short"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.ResetPassword(ctx, "garbage", "longenough"), domain.ErrInvalidInput)

	require.NoError(t, svc.ResetPassword(ctx, token, "newpassword"))
	u, err := users.FindByEmail(ctx, in.Email)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword("newpassword", u.PasswordHash))

	// a session token is not a reset token
	session, err := svc.tokens.IssueSession(u.ID, u.Role)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.ResetPassword(ctx, session, "anotherpass"), domain.ErrInvalidInput)
}
