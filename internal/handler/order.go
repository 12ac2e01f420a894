package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sliceandcode/storefront-api/internal/dto"
	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	// An empty body is a valid checkout: the profile's first saved address
	// is used.
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.Checkout(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotLoggedIn):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required to place an order"})
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.Is(err, service.ErrNoAddress), errors.Is(err, service.ErrAddressNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery address required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		orders []model.Order
		err    error
	)
	if email := c.Query("email"); email != "" {
		orders, err = h.orderService.ListByUser(ctx, email)
	} else {
		orders, err = h.orderService.List(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Orders: items, Total: len(items)})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.CartLineResponse, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, toCartLineResponse(line))
	}
	return dto.OrderResponse{
		ID:         order.ID,
		UserEmail:  order.UserEmail,
		UserName:   order.UserName,
		UserPhone:  order.UserPhone,
		Items:      items,
		Total:      order.Total,
		Discount:   order.Discount,
		CouponCode: order.CouponCode,
		Status:     string(order.Status),
		Progress:   order.Status.Progress(),
		Address:    order.Address,
		Date:       order.Date,
		UpdatedAt:  order.UpdatedAt,
	}
}
