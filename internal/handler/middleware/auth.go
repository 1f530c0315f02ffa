package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"raffle-core/internal/domain/buyer"
	"raffle-core/internal/usecase"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxBuyerIDKey   = "buyer_id"
	ctxBuyerRoleKey = "buyer_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		buyerID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxBuyerIDKey, buyerID)
		c.Set(ctxBuyerRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"buyer_id": buyerID.String(),
			"role":     string(role),
		})
		c.Next()
	}
}

// RequireAdmin gates the operator surface: raffle lifecycle, prize catalog,
// pool management. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetBuyerRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != buyer.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetBuyerID(c *gin.Context) (uuid.UUID, bool) {
	buyerID, exists := c.Get(ctxBuyerIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := buyerID.(uuid.UUID)
	return id, ok
}

func GetBuyerRole(c *gin.Context) (buyer.Role, bool) {
	buyerRole, exists := c.Get(ctxBuyerRoleKey)
	if !exists {
		return "", false
	}

	role, ok := buyerRole.(buyer.Role)
	return role, ok
}
