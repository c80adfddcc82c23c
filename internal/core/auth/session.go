package auth

import (
	"jobconnect/internal/domain"
)

// Session is the per-request principal reconstructed from a token. The
// subject id is interpreted against the role: a User id for EMPLOYEE and
// EMPLOYER, an Admin id for ADMIN. There is no server-side session record.
type Session struct {
	Role    domain.Role
	Subject int64
}

// UserID returns the User id behind the session, if it is a user session.
func (s *Session) UserID() (int64, bool) {
	if s == nil {
		return 0, false
	}
	if s.Role == domain.RoleEmployee || s.Role == domain.RoleEmployer {
		return s.Subject, true
	}
	return 0, false
}

// AdminID returns the Admin id behind the session, if it is an admin session.
func (s *Session) AdminID() (int64, bool) {
	if s == nil || s.Role != domain.RoleAdmin {
		return 0, false
	}
	return s.Subject, true
}

func (s *Session) Is(role domain.Role) bool { return s != nil && s.Role == role }
