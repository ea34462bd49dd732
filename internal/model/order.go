package model

import "time"

type Order struct {
	ID          string      `gorm:"primaryKey;type:char(36)" json:"id"`
	TotalAmount int         `gorm:"not null" json:"total_amount"`
	UserID      *string     `gorm:"type:char(36);index:idx_orders_user_id" json:"user_id"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"` // 一對多，級聯刪除
	CreatedAt   time.Time   `gorm:"index:idx_orders_created_at" json:"created_at"`
}

// OrderItem price 為下單當下的單價快照
// product_id 不設外鍵約束，商品刪除後歷史訂單項目仍保留
type OrderItem struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   string `gorm:"not null;type:char(36);index:idx_order_items_order_id" json:"order_id"`
	ProductID string `gorm:"type:char(36)" json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
}

// OrderItemData 服務層訂單項目資料, 補上商品名稱
// 商品已刪除時名稱為null而不是空字串
type OrderItemData struct {
	ID          uint    `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName *string `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       int     `json:"price"`
}

// OrderData 帶項目明細的訂單
type OrderData struct {
	ID          string          `json:"id"`
	TotalAmount int             `json:"total_amount"`
	UserID      *string         `json:"user_id"`
	Items       []OrderItemData `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DailyReportData 單日訂單統計, 無資料時回傳零值而非空
type DailyReportData struct {
	Date         string `json:"date"`
	TotalOrders  int64  `json:"total_orders"`
	TotalRevenue int64  `json:"total_revenue"`
}
