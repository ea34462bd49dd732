package dto

type CreateProductDTO struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"image_url"`
	Category string `json:"category"`
}

type UpdateProductDTO struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"image_url"`
	Category string `json:"category"`
}

type PatchStockDTO struct {
	Stock *int `json:"stock"` //缺少stock欄位視為bad request
}
