package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobconnect/internal/domain"
)

const (
	// SessionTTL matches the cookie max-age: a credential stays valid for
	// seven days, there is no revocation list.
	SessionTTL = 7 * 24 * time.Hour
	// ResetTTL bounds password-reset links.
	ResetTTL = 30 * time.Minute

	resetPurpose = "password_reset"
)

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type resetClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies the HS256 credentials used for sessions and
// password resets.
type Tokens struct {
	Secret []byte
	Issuer string
}

// IssueSession binds a principal id to a role for SessionTTL.
func (t *Tokens) IssueSession(subject int64, role domain.Role) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.Issuer,
			Subject:   strconv.FormatInt(subject, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
}

// Resolve recovers the session behind a credential. It fails closed: any
// verification problem (bad signature, malformed payload, expiry, unknown
// role, non-positive subject) yields nil, never an error. Callers treat a nil
// session as unauthenticated.
func (t *Tokens) Resolve(credential string) *Session {
	parsed, err := jwt.ParseWithClaims(credential, &sessionClaims{}, t.keyFunc,
		jwt.WithIssuer(t.Issuer), jwt.WithLeeway(60*time.Second))
	if err != nil || !parsed.Valid {
		return nil
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return nil
	}
	subject, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || subject <= 0 {
		return nil
	}
	role := domain.Role(claims.Role)
	switch role {
	case domain.RoleEmployee, domain.RoleEmployer, domain.RoleAdmin:
		return &Session{Role: role, Subject: subject}
	}
	return nil
}

// IssueReset signs a short-lived password-reset token for email.
func (t *Tokens) IssueReset(email string) (string, error) {
	now := time.Now()
	claims := resetClaims{
		Email:   email,
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ResetTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
}

// VerifyReset returns the email a reset token was issued for.
func (t *Tokens) VerifyReset(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &resetClaims{}, t.keyFunc,
		jwt.WithIssuer(t.Issuer))
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*resetClaims)
	if !ok || !parsed.Valid {
		return "", errors.New("invalid reset token")
	}
	if claims.Purpose != resetPurpose || claims.Email == "" {
		return "", errors.New("invalid reset token")
	}
	return claims.Email, nil
}

func (t *Tokens) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, fmt.Errorf("unexpected alg %q", token.Method.Alg())
	}
	return t.Secret, nil
}
