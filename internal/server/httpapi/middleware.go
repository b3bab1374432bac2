package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/healophile/internal/common"
	"github.com/dmitrijs2005/healophile/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by accessTokenMiddleware.
const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

const patientOnly = common.RolePatient

// accessTokenMiddleware validates the Bearer access token and stores the
// caller's identity and role on the gin context.
func (s *HTTPServer) accessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// requireRole rejects callers whose role does not match.
func (s *HTTPServer) requireRole(role common.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actorRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func actorID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func actorRole(c *gin.Context) common.Role {
	if v, ok := c.Get(ctxRole); ok {
		if r, ok := v.(common.Role); ok {
			return r
		}
	}
	return ""
}
