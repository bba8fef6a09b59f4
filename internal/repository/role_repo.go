package repository

import (
	"Kajoogram/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepo interface {
	GetRoleByIDs(ctx context.Context, id []uint64) ([]*model.Role, error)
	EnsureRoles(ctx context.Context, roles []*model.Role) error
}

type RoleRepoImpl struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepo {
	return &RoleRepoImpl{
		db: db,
	}
}

func (s *RoleRepoImpl) GetRoleByIDs(ctx context.Context, id []uint64) ([]*model.Role, error) {
	roles := make([]*model.Role, 0)
	result := s.db.WithContext(ctx).Model(&model.Role{}).Where("id IN ?", id).Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}
	return roles, nil
}

// EnsureRoles 按名称插入缺失的角色，已存在的保持不变
func (s *RoleRepoImpl) EnsureRoles(ctx context.Context, roles []*model.Role) error {
	if len(roles) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(roles).Error
}
