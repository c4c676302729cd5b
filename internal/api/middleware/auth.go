package middleware

import (
	"ImpulseGuard/internal/pkg/response"
	"ImpulseGuard/internal/pkg/security"
	"ImpulseGuard/internal/service"
	"context"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 解析 Bearer 令牌并按令牌查找用户 将用户ID注入 Context
func AuthMiddleware(userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := security.ParseBearer(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, service.ErrTokenMissing)
			c.Abort()
			return
		}

		user, err := userSvc.GetUserByToken(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", user.ID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
