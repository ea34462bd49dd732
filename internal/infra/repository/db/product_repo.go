package db

import (
	"context"
	"errors"

	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrProductStockNotEnough 商品庫存不足
	ErrProductStockNotEnough = errors.New("product stock not enough")
)

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有商品, 新的在前
func (s *ProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

// Read - 根據ID集合查詢商品
func (s *ProductRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

// Update - 更新商品
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// Update - 更新庫存, 直接設定絕對值 (管理端修正庫存用)
func (s *ProductRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	res := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock", stock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Update - 對庫存套用增減量
func (s *ProductRepo) AdjustStock(ctx context.Context, id string, delta int) error {
	return AdjustStockTx(s.db.WithContext(ctx), id, delta)
}

// AdjustStockTx 庫存增減原語
// 最終值由資料庫計算 (stock = stock + delta)，不經過應用層read-modify-write，
// 並以 stock + delta >= 0 作為條件式更新, 併發下不會超賣也不會變負數
func AdjustStockTx(tx *gorm.DB, id string, delta int) error {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 分辨是商品不存在還是庫存不足
		var count int64
		if err := tx.Model(&model.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProductNotFound
		}
		return ErrProductStockNotEnough
	}
	return nil
}

// Delete - 硬刪除商品, 歷史訂單項目不受影響
func (s *ProductRepo) HardDeleteProduct(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
