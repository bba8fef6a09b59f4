package middleware

import (
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/pkg/response"
	"Kajoogram/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	UserIDKey = "user_id"
	RolesKey  = "roles"
	TokenKey  = "token"
)

// TokenValidator 由 AuthService 实现，包含黑名单检查
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*security.UserClaims, error)
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(auth TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c)
		if !ok {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		setIdentity(c, token, claims)
		c.Next()
	}
}

func bearer(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

func setIdentity(c *gin.Context, token string, claims *security.UserClaims) {
	c.Set(UserIDKey, claims.UserID)
	c.Set(RolesKey, claims.Roles)
	c.Set(TokenKey, token)
}

// IsAdmin 当前请求是否带有 ADMIN 角色
func IsAdmin(c *gin.Context) bool {
	return lo.Contains(c.GetStringSlice(RolesKey), consts.RoleAdmin)
}
