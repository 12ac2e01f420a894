package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliceandcode/storefront-api/internal/dto"
	"github.com/sliceandcode/storefront-api/internal/repository"
	"github.com/sliceandcode/storefront-api/internal/service"
	"github.com/sliceandcode/storefront-api/internal/storage"
)

func newCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	catalogRepo := repository.NewCatalogRepository()
	cartRepo := repository.NewCartRepository(store)
	couponRepo := repository.NewCouponRepository(store)

	cartSvc := service.NewCartService(cartRepo, couponRepo, catalogRepo)
	couponSvc := service.NewCouponService(cartRepo, couponRepo)
	h := NewCartHandler(cartSvc, couponSvc)

	router := gin.New()
	cart := router.Group("/api/v1/cart")
	cart.GET("", h.GetCart)
	cart.POST("/items", h.AddItem)
	cart.PATCH("/items/:id", h.UpdateItem)
	cart.DELETE("/items/:id", h.DeleteItem)
	cart.DELETE("", h.ClearCart)
	cart.POST("/coupon", h.ApplyCoupon)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCartHandler_AddAndGet(t *testing.T) {
	router := newCartRouter()

	rec := do(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Qty)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "28", resp.Subtotal.String())
}

func TestCartHandler_AddUnknownProduct(t *testing.T) {
	router := newCartRouter()
	rec := do(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_UpdateToZeroRemoves(t *testing.T) {
	router := newCartRouter()

	do(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":2}`)
	rec := do(t, router, http.MethodPatch, "/api/v1/cart/items/2", `{"delta":-1}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/cart", "")
	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func TestCartHandler_ApplyCoupon(t *testing.T) {
	router := newCartRouter()

	do(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)

	rec := do(t, router, http.MethodPost, "/api/v1/cart/coupon", `{"code":"save20"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var coupon dto.CouponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &coupon))
	assert.Equal(t, "SAVE20", coupon.Code)
	assert.Equal(t, "2.8", coupon.Discount.String())

	rec = do(t, router, http.MethodPost, "/api/v1/cart/coupon", `{"code":"NOPE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The earlier discount still shows on the cart.
	rec = do(t, router, http.MethodGet, "/api/v1/cart", "")
	var cart dto.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Equal(t, "SAVE20", cart.Coupon)
	assert.Equal(t, "11.2", cart.Total.String())
}
