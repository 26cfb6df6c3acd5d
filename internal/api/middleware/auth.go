package middleware

import (
	"net/http"
	"strings"

	"delivery-ops-api-server/internal/auth"
	"delivery-ops-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by Authenticate.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
)

// Authenticate verifies the bearer token and puts the caller identity into
// the request context. It performs no role checks.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Bearer token"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims := &auth.JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return auth.JwtSecret, nil
		})

		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxUserEmail, claims.Email)

		c.Next()
	}
}

// RequireRole is a middleware factory gating privileged operations. The role
// is resolved from the caller's profile on every request, not from token
// claims. Every privileged route goes through here; handlers never check
// roles themselves.
func RequireRole(s store.Store, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(CtxUserID)
		if userID == "" {
			// Authenticate was not run before this middleware.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User identity not found in context"})
			return
		}

		profile, err := s.GetProfile(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Profile not found for user"})
			return
		}

		for _, role := range allowedRoles {
			if role == profile.Role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient role"})
	}
}
