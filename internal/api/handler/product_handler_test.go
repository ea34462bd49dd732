package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/sembarang8788-lab/cafe-backend/internal/model"
	"github.com/sembarang8788-lab/cafe-backend/internal/service"
	"github.com/stretchr/testify/require"
)

// stubProductService 以函式欄位覆寫個別方法, 未覆寫的方法不會被呼叫
type stubProductService struct {
	service.IProductService
	getProduct    func(ctx context.Context, id string) (*model.Product, error)
	createProduct func(ctx context.Context, arg *model.Product) (*model.Product, error)
	patchStock    func(ctx context.Context, id string, stock int) (*model.Product, error)
}

func (s *stubProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.getProduct(ctx, id)
}

func (s *stubProductService) CreateProduct(ctx context.Context, arg *model.Product) (*model.Product, error) {
	return s.createProduct(ctx, arg)
}

func (s *stubProductService) PatchStock(ctx context.Context, id string, stock int) (*model.Product, error) {
	return s.patchStock(ctx, id, stock)
}

func newProductTestRouter(svc service.IProductService) http.Handler {
	h := NewProductHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/products/{id}", h.Get)
	r.Post("/api/products", h.Create)
	r.Patch("/api/products/{id}/stock", h.PatchStock)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	var resp Response
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

// 服務層AnaError的code要直接作為HTTP status, body包統一錯誤格式
func TestGetProductNotFoundEnvelope(t *testing.T) {
	r := newProductTestRouter(&stubProductService{
		getProduct: func(ctx context.Context, id string) (*model.Product, error) {
			return nil, er.New(er.NotFoundCode, "product not found")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeResponse(t, rec)
	require.False(t, resp.Success)
	require.Equal(t, "product not found", resp.Message)
}

// 非AnaError一律回500
func TestGetProductUnknownErrorMapsTo500(t *testing.T) {
	r := newProductTestRouter(&stubProductService{
		getProduct: func(ctx context.Context, id string) (*model.Product, error) {
			return nil, errors.New("connection refused")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeResponse(t, rec)
	require.False(t, resp.Success)
	require.Equal(t, "connection refused", resp.Message)
}

func TestCreateProductCreated(t *testing.T) {
	r := newProductTestRouter(&stubProductService{
		createProduct: func(ctx context.Context, arg *model.Product) (*model.Product, error) {
			arg.ID = "fixed-id"
			return arg, nil
		},
	})

	body := `{"name":"拿鐵","price":120,"stock":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
}

func TestCreateProductInvalidBody(t *testing.T) {
	r := newProductTestRouter(&stubProductService{})

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	require.False(t, resp.Success)
}

// 缺stock欄位視為bad request, 不可當成0處理
func TestPatchStockMissingField(t *testing.T) {
	r := newProductTestRouter(&stubProductService{
		patchStock: func(ctx context.Context, id string, stock int) (*model.Product, error) {
			t.Fatal("PatchStock should not be called when stock field is missing")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/products/abc/stock", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	require.False(t, resp.Success)
	require.Equal(t, "stock is required", resp.Message)
}

func TestPatchStockOK(t *testing.T) {
	r := newProductTestRouter(&stubProductService{
		patchStock: func(ctx context.Context, id string, stock int) (*model.Product, error) {
			return &model.Product{ID: id, Stock: stock}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/products/abc/stock", strings.NewReader(`{"stock":42}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)
}
