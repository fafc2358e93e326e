// Package dbtest 为测试提供临时的 SQLite 数据库
package dbtest

import (
	"path/filepath"
	"testing"

	"Blogly/internal/api/config"
	"Blogly/internal/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New 在 t.TempDir 下创建已建表的 SQLite 数据库，测试结束自动关闭
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "blogly.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := database.NewGormDB(&config.DBConfig{
		Driver:  database.DriverSQLite,
		DSN:     dsn,
		MaxIdle: 2,
		MaxOpen: 4,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
