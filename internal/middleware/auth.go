package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/ai-cooking-suggest/backend/internal/types"
)

const (
	identityKey = "identity"
	userIDKey   = "user_id"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AuthMiddleware rejects requests without a valid bearer token: 401 when none is
// presented, 403 when it fails verification.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Access token required"})
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, types.ErrorResponse{Error: "Invalid token"})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid bearer token is presented. Missing or
// invalid tokens leave the request anonymous.
func OptionalAuth(validator TokenValidator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			log.Info("Invalid token, proceeding anonymously",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.Next()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// IdentityFromContext returns the caller set by AuthMiddleware or OptionalAuth, or nil.
func IdentityFromContext(c *gin.Context) *types.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*types.Identity)
	return identity
}

func setIdentity(c *gin.Context, claims *types.TokenClaims) {
	c.Set(identityKey, &types.Identity{UserID: claims.UserID, Username: claims.Username})
	c.Set(userIDKey, claims.UserID.String())
	c.Set("username", claims.Username)
}
