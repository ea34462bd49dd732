package service

import (
	"os"
	"testing"

	"github.com/sembarang8788-lab/cafe-backend/internal/infra/repository/db"
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

// getTestStore 連接測試資料庫, 執行migration並回傳store
func getTestStore(t *testing.T) (*gorm.DB, db.UnifiedDB) {
	conn, err := db.GetDbConn(
		envOrDefault("POSTGRES_DB", "cafe_db"),
		envOrDefault("POSTGRES_HOST", "localhost"),
		envOrDefault("POSTGRES_PORT", "5432"),
		envOrDefault("POSTGRES_USER", "postgres"),
		envOrDefault("POSTGRES_PASSWORD", "password"),
	)
	require.NoError(t, err)

	store := db.NewUnifiedDB(conn)
	err = store.InitMigrate()
	require.NoError(t, err)

	return conn, store
}

// 依FK順序清空資料表
func cleanTables(conn *gorm.DB) {
	conn.Exec("DELETE FROM order_items")
	conn.Exec("DELETE FROM orders")
	conn.Exec("DELETE FROM products")
	conn.Exec("DELETE FROM users")
}
