package database

import (
	"Blogly/internal/model"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// Models 启动时需要建表的全部模型，顺序即外键依赖顺序
func Models() []any {
	return []any{
		&model.User{},
		&model.Post{},
		&model.Tag{},
		&model.PostTag{},
	}
}

// AutoMigrate 表不存在时建表
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	log.Info("Database schema is up to date.")
	return nil
}
