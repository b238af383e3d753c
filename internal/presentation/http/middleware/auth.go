package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/response"
	"github.com/Amankewlld/swift-register/pkg/utils"
)

// AuthMiddleware creates a JWT session authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		// Validate the token
		claims, err := jwtManager.ValidateSessionToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired session token")
			c.Abort()
			return
		}

		// Set cashier info in context
		c.Set("cashier_id", claims.CashierID)
		c.Set("cashier_name", claims.CashierName)

		c.Next()
	}
}
