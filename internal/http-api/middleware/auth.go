package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"videoh/internal/http-api/auth"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "claims"

// RequireClaims is a Gin middleware that decodes the caller's claims from the
// Authorization header and stashes them in the request context. A missing or
// unreadable credential aborts with 401; duplicated Authorization headers are
// ambiguous and abort with 400.
func RequireClaims() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.ParseAuthorization(c.Request.Header.Values("Authorization"))
		if err != nil {
			status := http.StatusUnauthorized
			if errors.Is(err, auth.ErrAmbiguousCredential) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		slog.Debug("authenticated request", "role", claims.Role, "email", claims.Email)

		c.Set(claimsContextKey, *claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by RequireClaims.
func ClaimsFromContext(c *gin.Context) (auth.Claims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return auth.Claims{}, false
	}
	claims, ok := value.(auth.Claims)
	return claims, ok
}
