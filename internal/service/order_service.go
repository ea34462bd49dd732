package service

import (
	"context"
	"errors"
	"time"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/sembarang8788-lab/cafe-backend/internal/constants"
	"github.com/sembarang8788-lab/cafe-backend/internal/infra/repository/db"
	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"gorm.io/gorm"
)

type IOrderService interface {
	CreateOrder(ctx context.Context, items []model.OrderItemData, totalAmount int, userID *string) (*model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.OrderData, error)
	ListOrders(ctx context.Context) ([]model.OrderData, error)
	DailyReport(ctx context.Context, date string) (*model.DailyReportData, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type OrderService struct {
	store db.UnifiedDB
}

func NewOrderService(store db.UnifiedDB) IOrderService {
	return &OrderService{store: store}
}

// CreateOrder 建立訂單與訂單項目並扣減商品庫存, 三者在同一筆交易內完成
//
// 參數:
//   - ctx: 上下文
//   - items: 訂單項目 (product_id, quantity, price快照), 不可為空
//   - totalAmount: 訂單總額, 由呼叫端提供, 不在服務端重算
//   - userID: 所屬用戶, 可為nil
//
// 錯誤:
//   - er.BadRequestCode 400: 項目為空或數量非正數
//   - er.InternalErrorCode 500: 交易內任一步驟失敗 (商品不存在、庫存不足、
//     約束違反、連線錯誤), 整筆rollback, 不留部分狀態
//
// 庫存扣減走 db.AdjustStockTx 的條件式更新, 由資料庫row lock序列化併發扣減,
// 庫存不足時整筆交易中止。失敗不重試, 錯誤原樣回傳呼叫端。
func (o *OrderService) CreateOrder(ctx context.Context, items []model.OrderItemData, totalAmount int, userID *string) (*model.Order, error) {
	if len(items) == 0 {
		return nil, er.New(er.BadRequestCode, "order items is empty")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, er.New(er.BadRequestCode, "order item quantity must be positive")
		}
	}

	order := &model.Order{
		ID:          uuid.New().String(),
		TotalAmount: totalAmount,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}

	orderItems := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, model.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	err := o.store.ExecTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := db.AdjustStockTx(tx, item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	// 不回查items, 回傳建立的訂單本體
	order.Items = nil
	return order, nil
}

// GetOrder 查詢單筆訂單含項目明細, 項目補上商品名稱
func (o *OrderService) GetOrder(ctx context.Context, orderID string) (*model.OrderData, error) {
	order, err := o.store.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "order not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	nameMap, err := o.productNameMap(ctx, []model.Order{*order})
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	data := convertOrderToData(order, nameMap)
	return &data, nil
}

// ListOrders 查詢所有訂單含項目明細, 新的在前
func (o *OrderService) ListOrders(ctx context.Context) ([]model.OrderData, error) {
	orders, err := o.store.GetAllOrders(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	nameMap, err := o.productNameMap(ctx, orders)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	datas := make([]model.OrderData, 0, len(orders))
	for i := range orders {
		datas = append(datas, convertOrderToData(&orders[i], nameMap))
	}
	return datas, nil
}

// DailyReport 單日訂單數與營收加總, 無訂單的日期回傳零值
func (o *OrderService) DailyReport(ctx context.Context, date string) (*model.DailyReportData, error) {
	if date == "" {
		date = time.Now().UTC().Format(constants.DateLayout)
	}
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, er.New(er.BadRequestCode, "invalid date format, expected YYYY-MM-DD")
	}

	totalOrders, totalRevenue, err := o.store.GetDailyStats(ctx, date)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return &model.DailyReportData{
		Date:         date,
		TotalOrders:  totalOrders,
		TotalRevenue: totalRevenue,
	}, nil
}

// DeleteOrder 刪除訂單, 項目由DB級聯刪除, 不回補庫存
func (o *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	err := o.store.HardDeleteOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, db.ErrOrderNotFound) {
			return er.New(er.NotFoundCode, "order not found")
		}
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

// 收集訂單項目引用的商品名稱, 一次IN查詢
// 已刪除的商品查不到, 名稱為null
func (o *OrderService) productNameMap(ctx context.Context, orders []model.Order) (map[string]string, error) {
	idSet := make(map[string]struct{})
	for i := range orders {
		for _, item := range orders[i].Items {
			idSet[item.ProductID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return map[string]string{}, nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	products, err := o.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	nameMap := make(map[string]string, len(products))
	for i := range products {
		nameMap[products[i].ID] = products[i].Name
	}
	return nameMap, nil
}

func convertOrderToData(order *model.Order, nameMap map[string]string) model.OrderData {
	items := make([]model.OrderItemData, 0, len(order.Items))
	for _, item := range order.Items {
		var productName *string
		if name, ok := nameMap[item.ProductID]; ok {
			productName = &name
		}
		items = append(items, model.OrderItemData{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: productName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return model.OrderData{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		UserID:      order.UserID,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}
