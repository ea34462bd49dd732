package model

import "time"

const DefaultProductCategory = "makanan"

// Product 價格與庫存都是整數
// price 單位為最小貨幣單位, stock 由原子更新原語維護 (product_repo)
type Product struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name      string    `gorm:"type:varchar(100);index:idx_products_name" json:"name"`
	Price     int       `gorm:"not null" json:"price"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	ImageURL  string    `gorm:"column:image_url;type:text" json:"image_url"`
	Category  string    `gorm:"type:varchar(50);default:makanan" json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
