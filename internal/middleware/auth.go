package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventmaster/core/internal/models"
	"github.com/eventmaster/core/internal/pkg/response"
	sessionpkg "github.com/eventmaster/core/internal/pkg/session"
)

const (
	ContextKeyUser    = "auth_user"
	ContextKeySession = "auth_session"
)

// Auth returns a middleware that enforces cookie session authentication.
// A request passes only when the cookie is present, the token has a valid
// shape, it resolves to a stored session, that session has not expired and
// the stored token matches the presented one exactly.
func Auth(store *sessionpkg.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(cookieName)
		if err != nil || tok == "" {
			response.Unauthorized(c)
			return
		}

		sess, err := store.FindByToken(c.Request.Context(), tok)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		if sess == nil || sess.Expired(time.Now()) || sess.Token != tok {
			response.Unauthorized(c)
			return
		}

		c.Set(ContextKeyUser, &sess.User)
		c.Set(ContextKeySession, sess)
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated user
// holds the given role. Must run after Auth.
func RequireRole(kind models.RoleKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			response.Unauthorized(c)
			return
		}
		if !user.HasRole(kind) {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from context.
func CurrentUser(c *gin.Context) *models.User {
	v, _ := c.Get(ContextKeyUser)
	u, _ := v.(*models.User)
	return u
}

// CurrentSession extracts the authenticated session from context.
func CurrentSession(c *gin.Context) *models.Session {
	v, _ := c.Get(ContextKeySession)
	s, _ := v.(*models.Session)
	return s
}

// IsAuthenticated returns true if the request carries a valid session.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUser(c) != nil
}
