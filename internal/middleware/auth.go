package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
	"github.com/lotuslabs/lotus-arcana-api/pkg/response"
)

// ContextAdminKey is the gin context key storing the admin session claims.
const ContextAdminKey = "adminSession"

// SessionCookieName is the cookie carrying the admin session token for the
// dashboard UI; API clients send the same token as a bearer header.
const SessionCookieName = "admin_session"

type tokenValidator interface {
	ValidateToken(token string) (*models.AdminClaims, error)
}

// AdminSession guards administrative routes. It accepts the session token
// from either the Authorization header or the session cookie, so the
// dashboard and API callers share one gate.
func AdminSession(auth tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				token = cookie
			}
		}
		if token == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !claims.IsAdmin() {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "admin access required"))
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, claims)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
