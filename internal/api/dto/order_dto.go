package dto

type OrderItemDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"` //下單當下單價快照
}

type CreateOrderDTO struct {
	Items       []OrderItemDTO `json:"items"`
	TotalAmount int            `json:"total_amount"`
	UserID      *string        `json:"user_id"`
}
