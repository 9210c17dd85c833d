package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/skilltrack/skilltrack/internal/pkg/auth"
)

// SessionCookie is the cookie carrying the session token for browser flows
const SessionCookie = "st_session"

// Context keys set by the middleware
const (
	ctxStudentID = "studentID"
	ctxUsername  = "username"
)

// AuthMiddleware resolves the request's identity context from the session
// token (cookie or bearer header)
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// Identify parses the session token if one is present and stores the
// identity in the request context. It never rejects; routes that tolerate
// anonymous visitors (login, register) use this to spot returning users.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.sessions.ValidateToken(token)
		if err != nil {
			// Stale or tampered token; treat the visitor as anonymous
			c.Next()
			return
		}

		c.Set(ctxStudentID, claims.StudentID)
		c.Set(ctxUsername, claims.Username)
		c.Next()
	}
}

// RequireAuth redirects to the login page, preserving the intended
// destination, when no valid identity is present. Must run after Identify.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ctxStudentID); !ok {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	token, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return ""
	}
	return token
}

// CurrentStudentID returns the authenticated student's id from the identity
// context. ok is false on anonymous requests.
func CurrentStudentID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxStudentID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CurrentUsername returns the authenticated student's username, if any
func CurrentUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUsername)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

// SetIdentity stores an identity in the context directly. Used by tests to
// run handlers behind a fake login.
func SetIdentity(c *gin.Context, studentID int64, username string) {
	c.Set(ctxStudentID, studentID)
	c.Set(ctxUsername, username)
}
