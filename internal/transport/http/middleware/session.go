package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/core/auth"
	"jobconnect/internal/domain"
	resp "jobconnect/internal/transport/http/response"
)

const (
	// CookieName carries the session credential; HTTP-only, path "/",
	// max-age matching auth.SessionTTL.
	CookieName = "token"

	sessionKey = "session"
)

// SetSessionCookie installs the credential on the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(CookieName, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie expires the credential immediately.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// SessionAuth resolves the session from the token cookie (Authorization:
// Bearer accepted as a fallback for API clients) and requires one of the
// given roles when any are listed. Resolution fails closed: a missing,
// expired or tampered credential is a plain 401.
func SessionAuth(tokens *auth.Tokens, roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		credential := credentialFrom(c)
		if credential == "" {
			resp.AbortFail(c, http.StatusUnauthorized, "missing session")
			return
		}
		sess := tokens.Resolve(credential)
		if sess == nil {
			resp.AbortFail(c, http.StatusUnauthorized, "invalid or expired session")
			return
		}
		if len(roles) > 0 {
			ok := false
			for _, r := range roles {
				if sess.Role == r {
					ok = true
					break
				}
			}
			if !ok {
				resp.AbortFail(c, http.StatusUnauthorized, "unauthorized")
				return
			}
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the resolved session, or nil on unauthenticated
// routes.
func SessionFrom(c *gin.Context) *auth.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*auth.Session)
	return sess
}

func credentialFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
		return strings.TrimPrefix(ah, "Bearer ")
	}
	return ""
}
