package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/token"
)

// AuthMiddleware rejects requests without a valid Bearer access token and
// stores the caller's identity in the gin context.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, tokens)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authorization required", nil)
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware parses a Bearer token when one is present but lets
// anonymous requests through. Listings use it to annotate per-viewer fields
// (has_applied, requester exclusion) without requiring login.
func OptionalAuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, tokens); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, tokens *token.Manager) (*token.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil, false
	}

	claims, err := tokens.ParseAccess(tokenString)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *token.Claims) {
	c.Set(string(domain.KeyUserID), claims.AccountID())
	c.Set(string(domain.KeyUsername), claims.Username)
	c.Set(string(domain.KeyUserRole), claims.Role)
}
