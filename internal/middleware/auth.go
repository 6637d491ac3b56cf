package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hotel-services/internal/auth"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
)

const ContextSession = "session"

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// AuthMiddleware rejects requests without a live session.
func AuthMiddleware(sessions *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			httperr.Respond(c, httperr.ErrAuth("not_authenticated"))
			c.Abort()
			return
		}

		sess, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// OptionalAuth attaches a session when a valid token is present and
// otherwise lets the request through anonymously.
func OptionalAuth(sessions *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if sess, err := sessions.Validate(c.Request.Context(), token); err == nil {
				c.Set(ContextSession, sess)
			}
		}
		c.Next()
	}
}

// Session returns the caller's session, or nil for anonymous requests.
func Session(c *gin.Context) *auth.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*auth.Session)
	return sess
}
