package model

import "time"

const DefaultUserRole = "cashier"

type User struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Username  string    `gorm:"not null;uniqueIndex:idx_users_username;type:varchar(50)" json:"username"`
	Email     string    `gorm:"not null;unique;type:varchar(100)" json:"email"`
	Password  string    `gorm:"not null;type:varchar(255);column:password" json:"-"`
	Role      string    `gorm:"not null;type:varchar(20);default:cashier" json:"role"`
	Orders    []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"` // 刪除用戶保留歷史訂單
	CreatedAt time.Time `json:"created_at"`
}
