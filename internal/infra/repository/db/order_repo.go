package db

import (
	"context"
	"errors"

	"github.com/sembarang8788-lab/cafe-backend/internal/model"
)

var (
	// ErrOrderNotFound 訂單不存在
	ErrOrderNotFound = errors.New("order not found")
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - 創建訂單 db
// 只在單一寫入時使用, 下單流程走 OrderService.CreateOrder 的交易
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 查詢所有訂單, 新的在前
func (s *OrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Read - 單日訂單統計
// 日期以storage engine對created_at做date truncation, 無資料回傳零值
func (s *OrderRepo) GetDailyStats(ctx context.Context, date string) (totalOrders int64, totalRevenue int64, err error) {
	err = s.db.WithContext(ctx).Model(&model.Order{}).
		Where("DATE(created_at) = ?", date).
		Select("COUNT(id) as total_orders, COALESCE(SUM(total_amount), 0) as total_revenue").
		Row().
		Scan(&totalOrders, &totalRevenue)
	return totalOrders, totalRevenue, err
}

// Delete - 硬刪除訂單, order_items由DB級聯刪除
// 不回補庫存, 訂單為歷史紀錄
func (s *OrderRepo) HardDeleteOrder(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
