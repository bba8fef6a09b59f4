package middleware

import (
	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败或缺失则 UID 为 0
func AuthOptionalMiddleware(auth TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UserIDKey, uint64(0))
		if token, ok := bearer(c); ok {
			if claims, err := auth.ValidateToken(c.Request.Context(), token); err == nil {
				setIdentity(c, token, claims)
			}
		}
		c.Next()
	}
}
