package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hass-backend/internal/domain/principal"
	"hass-backend/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	jwtSvc *jwt.Service
}

const (
	ctxPrincipalIDKey = "principal_id"
	ctxRoleKey        = "principal_role"
)

func NewAuthMiddleware(jwtSvc *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtSvc.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		role, err := principal.ParseRole(claims.Role)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalIDKey, claims.PrincipalID)
		c.Set(ctxRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"principal_id": claims.PrincipalID.String(),
			"role":         string(role),
		})
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...principal.Role) gin.HandlerFunc {
	allowed := make(map[principal.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if _, ok := allowed[role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetPrincipalID(c *gin.Context) (uuid.UUID, bool) {
	principalID, exists := c.Get(ctxPrincipalIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := principalID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (principal.Role, bool) {
	roleVal, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := roleVal.(principal.Role)
	return role, ok
}
