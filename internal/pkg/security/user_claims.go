package security

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "Kajoogram"

// UserClaims 本地令牌中的业务信息，角色来自 user_roles 表
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole 是否拥有指定角色
func (c *UserClaims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}
