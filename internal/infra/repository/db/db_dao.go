package db

import (
	"context"
	"database/sql"

	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	)
}

// ExecTx 執行一個交易
// fn內任何錯誤都會rollback整筆交易, 不會留下部分狀態
func (d *DbDao) ExecTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := d.WithContext(ctx).Begin(&sql.TxOptions{
		Isolation: sql.LevelReadCommitted, // 最常用的隔離級別
	})
	if tx.Error != nil {
		return tx.Error
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit().Error
}
