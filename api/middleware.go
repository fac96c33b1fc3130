package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"esportshub/auth"
	"esportshub/models"
)

const identityKey = "identity"

// TokenVerifier checks a presented token and returns the identity it
// asserts.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Identity, error)
}

// Auth extracts and verifies the bearer token, storing the identity in
// the request context for handlers downstream.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := ""
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			respondError(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin rejects callers whose verified role is not administrator.
// It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := identity(c)
		if id == nil || id.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"code": models.CodeForbidden, "message": "administrator role required"}})
			return
		}
		c.Next()
	}
}

func identity(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*auth.Identity)
	return id
}
