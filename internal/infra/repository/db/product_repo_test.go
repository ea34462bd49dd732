package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProductRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	productRepo *ProductRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *ProductRepoTestSuite) SetupSuite() {
	db := getTestDbConn(suite.T())

	productRepo := NewProductRepo(NewDbDao(db))
	suite.db = db
	suite.productRepo = productRepo
}

// SetupTest 在每個測試前執行
func (suite *ProductRepoTestSuite) SetupTest() {
	// 清空資料表
	cleanTables(suite.db)
}

func (suite *ProductRepoTestSuite) TearDownSuite() {
	db, err := suite.db.DB()
	require.NoError(suite.T(), err)
	db.Close()
}

func newTestProduct(name string, price int, stock int) *model.Product {
	return &model.Product{
		ID:       uuid.New().String(),
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: model.DefaultProductCategory,
	}
}

func (suite *ProductRepoTestSuite) TestCreateAndGetProduct() {
	ctx := context.Background()

	// 創建商品
	newProduct := newTestProduct("拿鐵", 120, 100)
	err := suite.productRepo.CreateProduct(ctx, newProduct)
	require.NoError(suite.T(), err, "Failed to create product")

	// 根據 ID 查詢
	retrievedProduct, err := suite.productRepo.GetProductByID(ctx, newProduct.ID)
	require.NoError(suite.T(), err, "Failed to get product by ID")
	require.Equal(suite.T(), newProduct.Name, retrievedProduct.Name, "Product name mismatch")
	require.Equal(suite.T(), 100, retrievedProduct.Stock, "Product stock mismatch")
}

func (suite *ProductRepoTestSuite) TestGetProductByIDNotFound() {
	ctx := context.Background()

	_, err := suite.productRepo.GetProductByID(ctx, uuid.New().String())
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *ProductRepoTestSuite) TestGetAllProductsOrder() {
	ctx := context.Background()

	// 創建兩筆商品, 後建立的要排在前面
	first := newTestProduct("美式", 90, 10)
	err := suite.productRepo.CreateProduct(ctx, first)
	require.NoError(suite.T(), err)

	second := newTestProduct("卡布奇諾", 130, 20)
	err = suite.productRepo.CreateProduct(ctx, second)
	require.NoError(suite.T(), err)

	products, err := suite.productRepo.GetAllProducts(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 2)
	require.Equal(suite.T(), second.ID, products[0].ID, "Newest product should come first")
}

func (suite *ProductRepoTestSuite) TestGetProductsByIDs() {
	ctx := context.Background()

	p1 := newTestProduct("紅茶", 50, 30)
	p2 := newTestProduct("綠茶", 50, 30)
	require.NoError(suite.T(), suite.productRepo.CreateProduct(ctx, p1))
	require.NoError(suite.T(), suite.productRepo.CreateProduct(ctx, p2))

	products, err := suite.productRepo.GetProductsByIDs(ctx, []string{p1.ID, p2.ID, uuid.New().String()})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 2, "Only existing products should be returned")
}

func (suite *ProductRepoTestSuite) TestUpdateStock() {
	ctx := context.Background()

	newProduct := newTestProduct("摩卡", 140, 50)
	err := suite.productRepo.CreateProduct(ctx, newProduct)
	require.NoError(suite.T(), err, "Failed to create product")

	// 更新庫存為絕對值
	err = suite.productRepo.UpdateStock(ctx, newProduct.ID, 75)
	require.NoError(suite.T(), err, "Failed to update stock")

	retrievedProduct, err := suite.productRepo.GetProductByID(ctx, newProduct.ID)
	require.NoError(suite.T(), err, "Failed to get product by ID")
	require.Equal(suite.T(), 75, retrievedProduct.Stock, "Stock should be updated to 75")
}

func (suite *ProductRepoTestSuite) TestUpdateStockNotFound() {
	ctx := context.Background()

	err := suite.productRepo.UpdateStock(ctx, uuid.New().String(), 10)
	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductRepoTestSuite) TestAdjustStock() {
	ctx := context.Background()

	newProduct := newTestProduct("可頌", 60, 10)
	err := suite.productRepo.CreateProduct(ctx, newProduct)
	require.NoError(suite.T(), err)

	// 扣減庫存
	err = suite.productRepo.AdjustStock(ctx, newProduct.ID, -4)
	require.NoError(suite.T(), err)

	retrievedProduct, err := suite.productRepo.GetProductByID(ctx, newProduct.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 6, retrievedProduct.Stock)

	// 回補庫存
	err = suite.productRepo.AdjustStock(ctx, newProduct.ID, 2)
	require.NoError(suite.T(), err)

	retrievedProduct, err = suite.productRepo.GetProductByID(ctx, newProduct.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 8, retrievedProduct.Stock)
}

func (suite *ProductRepoTestSuite) TestAdjustStockNotEnough() {
	ctx := context.Background()

	newProduct := newTestProduct("貝果", 70, 3)
	err := suite.productRepo.CreateProduct(ctx, newProduct)
	require.NoError(suite.T(), err)

	// 庫存不足時不可扣成負數
	err = suite.productRepo.AdjustStock(ctx, newProduct.ID, -5)
	require.ErrorIs(suite.T(), err, ErrProductStockNotEnough)

	// 庫存維持原值
	retrievedProduct, err := suite.productRepo.GetProductByID(ctx, newProduct.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 3, retrievedProduct.Stock, "Stock should be unchanged after failed adjust")
}

func (suite *ProductRepoTestSuite) TestAdjustStockNotFound() {
	ctx := context.Background()

	err := suite.productRepo.AdjustStock(ctx, uuid.New().String(), -1)
	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductRepoTestSuite) TestHardDeleteProduct() {
	ctx := context.Background()

	newProduct := newTestProduct("司康", 65, 5)
	err := suite.productRepo.CreateProduct(ctx, newProduct)
	require.NoError(suite.T(), err)

	err = suite.productRepo.HardDeleteProduct(ctx, newProduct.ID)
	require.NoError(suite.T(), err)

	_, err = suite.productRepo.GetProductByID(ctx, newProduct.ID)
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)

	// 刪除不存在的商品
	err = suite.productRepo.HardDeleteProduct(ctx, newProduct.ID)
	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func TestProductRepoSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}
