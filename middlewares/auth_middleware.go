package middlewares

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/felipebarrososa/DeveloperStore/utils"
)

// AuthRequired verifies the bearer token and stores the caller's identity on
// the request context.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized", "missing bearer token", "")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.VerifyToken(secret, tokenString)
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized", "invalid token", "")
			c.Abort()
			return
		}

		c.Set("user_id", claims["sub"])
		c.Set("username", claims["username"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// RequireRoles gates a route on the caller's role; AuthRequired must run
// first.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Get("role")
		role, _ := raw.(string)
		if !slices.Contains(roles, role) {
			utils.Fail(c, http.StatusForbidden, "Forbidden", "insufficient role", "role="+role)
			c.Abort()
			return
		}
		c.Next()
	}
}
