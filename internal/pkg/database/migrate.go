package database

import (
	"Kajoogram/internal/model"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// Models 需要建表的全部模型
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Role{},
		&model.UserRole{},
		&model.Post{},
		&model.PostMedia{},
		&model.Friendship{},
		&model.Category{},
		&model.Platform{},
		&model.Label{},
		&model.Banner{},
		&model.Product{},
		&model.Video{},
		&model.Channel{},
	}
}

// Migrate 自动建表与补齐字段
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("Database migrated", "tables", len(Models()))
	return nil
}
