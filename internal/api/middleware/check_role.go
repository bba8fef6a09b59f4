package middleware

import (
	"Kajoogram/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// CheckRoles 检查当前用户是否拥有至少一个指定的角色
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := c.GetStringSlice(RolesKey)
		if !lo.Some(roles, requiredRoles) {
			response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
			c.Abort()
			return
		}
		c.Next()
	}
}
