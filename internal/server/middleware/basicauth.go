// file: internal/server/middleware/basicauth.go
// version: 1.1.0
// guid: a8c0e2f4-b6d8-4e0f-c2a4-d6e8f0a2b4c6

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdfalk/dealsearch/internal/config"
)

// BasicAuth returns a Gin middleware guarding the admin routes with HTTP
// Basic Authentication. When auth is disabled in config the middleware
// rejects everything: an unprotected reload endpoint is worse than an
// unavailable one.
func BasicAuth(realm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.AppConfig.BasicAuthEnabled {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin endpoints disabled"})
			c.Abort()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c, realm)
			return
		}

		expectedUser := config.AppConfig.BasicAuthUsername
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(expectedUser)) == 1

		if !userMatch || !passwordMatches(pass) {
			unauthorized(c, realm)
			return
		}

		c.Next()
	}
}

// passwordMatches prefers the bcrypt hash when configured and falls back
// to a constant-time plaintext compare.
func passwordMatches(pass string) bool {
	if hash := config.AppConfig.BasicAuthPasswordHash; hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)) == nil
	}
	expected := config.AppConfig.BasicAuthPassword
	return subtle.ConstantTimeCompare([]byte(pass), []byte(expected)) == 1
}

func unauthorized(c *gin.Context, realm string) {
	c.Header("WWW-Authenticate", `Basic realm="`+realm+`"`)
	c.AbortWithStatus(http.StatusUnauthorized)
}
