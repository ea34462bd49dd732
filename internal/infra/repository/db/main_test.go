package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 測試資料庫連線參數, 可由環境變數覆寫
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getTestDbConn 連接測試資料庫並執行migration
func getTestDbConn(t *testing.T) *gorm.DB {
	conn, err := GetDbConn(
		envOrDefault("POSTGRES_DB", "cafe_db"),
		envOrDefault("POSTGRES_HOST", "localhost"),
		envOrDefault("POSTGRES_PORT", "5432"),
		envOrDefault("POSTGRES_USER", "postgres"),
		envOrDefault("POSTGRES_PASSWORD", "password"),
	)
	require.NoError(t, err)

	dbDao := NewDbDao(conn)
	err = dbDao.InitMigrate()
	require.NoError(t, err)

	return conn
}

// 依FK順序清空資料表
func cleanTables(db *gorm.DB) {
	db.Exec("DELETE FROM order_items")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM users")
}
