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

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary list orders with items
// @Tags orders
// @Produce json
// @Success 200 {object} handler.Response{data=[]model.OrderData} "success"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/orders [get]
func (o *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderService.ListOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, orders)
}

// @Summary get order by id
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} handler.Response{data=model.OrderData} "success"
// @Failure 404 {object} handler.Response "order not found"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/orders/{id} [get]
func (o *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := o.orderService.GetOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, order)
}

// @Summary create order
// @Description 訂單、項目與庫存扣減在同一筆交易內完成, 任一步失敗整筆rollback
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderDTO true "order items and total amount"
// @Success 201 {object} handler.Response{data=model.Order} "created"
// @Failure 500 {object} handler.Response "transaction aborted"
// @Router /api/orders [post]
func (o *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		ErrorJSON(w, int(er.BadRequestCode), "invalid request body")
		return
	}

	items := make([]model.OrderItemData, 0, len(createDTO.Items))
	for _, item := range createDTO.Items {
		items = append(items, model.OrderItemData{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := o.orderService.CreateOrder(r.Context(), items, createDTO.TotalAmount, createDTO.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusCreated, order)
}

// @Summary daily order report
// @Tags orders
// @Produce json
// @Param date query string false "date YYYY-MM-DD, 預設今天"
// @Success 200 {object} handler.Response{data=model.DailyReportData} "success"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/orders/report/daily [get]
func (o *OrderHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	report, err := o.orderService.DailyReport(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	SuccessJSON(w, http.StatusOK, report)
}

// @Summary delete order
// @Description 項目由DB級聯刪除, 不回補庫存
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} handler.Response "deleted"
// @Failure 404 {object} handler.Response "order not found"
// @Failure 500 {object} handler.Response "internal server error"
// @Router /api/orders/{id} [delete]
func (o *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := o.orderService.DeleteOrder(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	MessageJSON(w, http.StatusOK, "Order deleted successfully")
}
