package handler

import (
	"encoding/json"
	"net/http"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/sembarang8788-lab/cafe-backend/internal/api/dto"
	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"github.com/sembarang8788-lab/cafe-backend/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary list products
// @Tags products
// @Produce json
// @Success 200 {object} handler.Response{data=[]model.Product} "success"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/products [get]
func (p *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := p.productService.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, products)
}

// @Summary get product by id
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} handler.Response{data=model.Product} "success"
// @Failure 404 {object} handler.Response "product not found"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/products/{id} [get]
func (p *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := p.productService.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, product)
}

// @Summary create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductDTO true "product fields"
// @Success 201 {object} handler.Response{data=model.Product} "created"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/products [post]
func (p *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		ErrorJSON(w, int(er.BadRequestCode), "invalid request body")
		return
	}

	product, err := p.productService.CreateProduct(r.Context(), &model.Product{
		Name:     createDTO.Name,
		Price:    createDTO.Price,
		Stock:    createDTO.Stock,
		ImageURL: createDTO.ImageURL,
		Category: createDTO.Category,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusCreated, product)
}

// @Summary update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param product body dto.UpdateProductDTO true "full product fields"
// @Success 200 {object} handler.Response{data=model.Product} "success"
// @Failure 404 {object} handler.Response "product not found"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/products/{id} [put]
func (p *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateDTO dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		ErrorJSON(w, int(er.BadRequestCode), "invalid request body")
		return
	}

	product, err := p.productService.UpdateProduct(r.Context(), &model.Product{
		ID:       id,
		Name:     updateDTO.Name,
		Price:    updateDTO.Price,
		Stock:    updateDTO.Stock,
		ImageURL: updateDTO.ImageURL,
		Category: updateDTO.Category,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, product)
}

// @Summary patch product stock
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param stock body dto.PatchStockDTO true "new stock value"
// @Success 200 {object} handler.Response{data=model.Product} "success"
// @Failure 404 {object} handler.Response "product not found"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/products/{id}/stock [patch]
func (p *ProductHandler) PatchStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patchDTO dto.PatchStockDTO
	if err := json.NewDecoder(r.Body).Decode(&patchDTO); err != nil || patchDTO.Stock == nil {
		ErrorJSON(w, int(er.BadRequestCode), "stock is required")
		return
	}

	product, err := p.productService.PatchStock(r.Context(), id, *patchDTO.Stock)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, product)
}

// @Summary delete product
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} handler.Response "deleted"
// @Failure 404 {object} handler.Response "product not found"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/products/{id} [delete]
func (p *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := p.productService.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	MessageJSON(w, http.StatusOK, "Product deleted successfully")
}

// 服務層錯誤統一轉HTTP回應, AnaError的code即status code
func writeServiceError(w http.ResponseWriter, err error) {
	if anaErr, ok := err.(*er.AnaError); ok {
		ErrorJSON(w, int(anaErr.Code), anaErr.Error())
		return
	}
	ErrorJSON(w, int(er.InternalErrorCode), err.Error())
}
