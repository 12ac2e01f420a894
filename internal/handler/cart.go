package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sliceandcode/storefront-api/internal/dto"
	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/service"
)

type CartHandler struct {
	cartService   *service.CartService
	couponService *service.CouponService
}

func NewCartHandler(cartService *service.CartService, couponService *service.CouponService) *CartHandler {
	return &CartHandler{cartService: cartService, couponService: couponService}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	summary, err := h.cartService.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(summary))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.cartService.AddItem(c.Request.Context(), req.ProductID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "item added"})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.cartService.UpdateQty(c.Request.Context(), productID, req.Delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item updated"})
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}
	if err := h.cartService.RemoveItem(c.Request.Context(), productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req dto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	coupon, err := h.couponService.Apply(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoupon) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coupon code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.CouponResponse{Code: coupon.Code, Discount: coupon.Discount})
}

func toCartResponse(summary service.CartSummary) dto.CartResponse {
	items := make([]dto.CartLineResponse, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		items = append(items, toCartLineResponse(line))
	}
	resp := dto.CartResponse{
		Items:    items,
		Subtotal: summary.Subtotal,
		Count:    summary.Count,
		Discount: decimal.Zero,
		Total:    summary.Payable(),
	}
	if summary.Coupon != nil {
		resp.Coupon = summary.Coupon.Code
		resp.Discount = summary.Coupon.Discount
	}
	return resp
}

func toCartLineResponse(line model.CartLine) dto.CartLineResponse {
	return dto.CartLineResponse{
		ProductID: line.ProductID,
		Name:      line.Name,
		Price:     line.Price,
		ImageURL:  line.ImageURL,
		Qty:       line.Qty,
	}
}
