package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/omer2190/portfolio-backend/internal/auth/service"
)

const (
	CtxAdminUser    = "admin_user"
	CtxSessionToken = "session_token"
)

// SessionAuthMiddleware guards admin routes with the local session backend.
// The token travels as a bearer token; an expired or unknown token gets 401.
func SessionAuthMiddleware(svc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			return
		}

		session, err := svc.CurrentSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid or expired session"})
			return
		}

		c.Set(CtxAdminUser, session.Username)
		c.Set(CtxSessionToken, token)
		c.Next()
	}
}

// ExtractToken pulls the bearer token out of the Authorization header.
func ExtractToken(c *gin.Context) string {
	bearer := c.GetHeader("Authorization")
	if len(bearer) > 7 && strings.HasPrefix(bearer, "Bearer ") {
		return bearer[7:]
	}
	return ""
}
