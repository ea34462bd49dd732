package service

import (
	"context"
	"errors"
	"time"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/sembarang8788-lab/cafe-backend/internal/infra/repository/db"
	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"gorm.io/gorm"
)

type IProductService interface {
	CreateProduct(ctx context.Context, arg *model.Product) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, arg *model.Product) (*model.Product, error)
	PatchStock(ctx context.Context, id string, stock int) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductService struct {
	store db.UnifiedDB
}

func NewProductService(store db.UnifiedDB) IProductService {
	return &ProductService{store: store}
}

// CreateProduct 創建商品, 補上預設分類與庫存
func (p *ProductService) CreateProduct(ctx context.Context, arg *model.Product) (*model.Product, error) {
	if arg.Stock < 0 {
		return nil, er.New(er.BadRequestCode, "stock must not be negative")
	}
	if arg.Category == "" {
		arg.Category = model.DefaultProductCategory
	}
	arg.ID = uuid.New().String()
	arg.CreatedAt = time.Now().UTC()

	if err := p.store.CreateProduct(ctx, arg); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return arg, nil
}

func (p *ProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := p.store.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "product not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return product, nil
}

func (p *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := p.store.GetAllProducts(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return products, nil
}

// UpdateProduct 全量更新商品欄位
func (p *ProductService) UpdateProduct(ctx context.Context, arg *model.Product) (*model.Product, error) {
	product, err := p.store.GetProductByID(ctx, arg.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "product not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	product.Name = arg.Name
	product.Price = arg.Price
	product.Stock = arg.Stock
	product.ImageURL = arg.ImageURL
	product.Category = arg.Category

	if err := p.store.UpdateProduct(ctx, product); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return product, nil
}

// PatchStock 管理端直接設定庫存
// 走UpdateStock原語, 最終值由資料庫計算, 與下單扣減共用同一張表的row lock
func (p *ProductService) PatchStock(ctx context.Context, id string, stock int) (*model.Product, error) {
	if stock < 0 {
		return nil, er.New(er.BadRequestCode, "stock must not be negative")
	}

	err := p.store.UpdateStock(ctx, id, stock)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, er.New(er.NotFoundCode, "product not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return p.GetProduct(ctx, id)
}

func (p *ProductService) DeleteProduct(ctx context.Context, id string) error {
	err := p.store.HardDeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return er.New(er.NotFoundCode, "product not found")
		}
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}
