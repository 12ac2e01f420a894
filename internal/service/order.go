package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"github.com/sliceandcode/storefront-api/internal/dto"
	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/repository"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotFound   = errors.New("order not found")
	ErrNotLoggedIn     = errors.New("no active profile")
	ErrNoAddress       = errors.New("no delivery address")
	ErrAddressNotFound = errors.New("address not found")
	ErrUnknownStatus   = errors.New("unknown order status")
)

type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	couponRepo  repository.CouponRepository
	profileRepo repository.ProfileRepository
	amqpCh      *amqp.Channel

	// processingDelay reproduces the storefront's pause while an order is
	// "placed". The delay honours context cancellation and runs before any
	// state is written.
	processingDelay time.Duration
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	couponRepo repository.CouponRepository,
	profileRepo repository.ProfileRepository,
	amqpCh *amqp.Channel,
	processingDelay time.Duration,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		cartRepo:        cartRepo,
		couponRepo:      couponRepo,
		profileRepo:     profileRepo,
		amqpCh:          amqpCh,
		processingDelay: processingDelay,
	}
}

// Checkout turns the current cart into a Pending order on the ledger,
// then clears the cart and any applied coupon. The order snapshots the
// cart lines and the resolved delivery address as a single string.
func (s *OrderService) Checkout(ctx context.Context, req dto.CheckoutRequest) (model.Order, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return model.Order{}, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return model.Order{}, ErrNotLoggedIn
	}

	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return model.Order{}, fmt.Errorf("get cart: %w", err)
	}
	if len(lines) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	address, err := resolveAddress(req, profile)
	if err != nil {
		return model.Order{}, err
	}

	if s.processingDelay > 0 {
		select {
		case <-time.After(s.processingDelay):
		case <-ctx.Done():
			return model.Order{}, ctx.Err()
		}
	}

	coupon, err := s.couponRepo.Get(ctx)
	if err != nil {
		return model.Order{}, fmt.Errorf("get coupon: %w", err)
	}
	discount := decimal.Zero
	couponCode := ""
	if coupon != nil {
		discount = coupon.Discount
		couponCode = coupon.Code
	}

	subtotal := Subtotal(lines)
	now := time.Now().UTC()
	order := model.Order{
		ID:         model.NewID("ORD"),
		UserEmail:  profile.Email,
		UserName:   profile.Name,
		UserPhone:  profile.Phone,
		Items:      lines,
		Total:      subtotal.Sub(discount),
		Discount:   discount,
		CouponCode: couponCode,
		Status:     model.StatusPending,
		Address:    address,
		Date:       now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return model.Order{}, fmt.Errorf("create order: %w", err)
	}
	if err := s.cartRepo.Clear(ctx); err != nil {
		return model.Order{}, fmt.Errorf("clear cart: %w", err)
	}
	if err := s.couponRepo.Clear(ctx); err != nil {
		return model.Order{}, fmt.Errorf("clear coupon: %w", err)
	}

	s.publish(ctx, model.OrderEvent{OrderID: order.ID, UserEmail: order.UserEmail, Status: order.Status})
	return order, nil
}

func resolveAddress(req dto.CheckoutRequest, profile *model.UserProfile) (string, error) {
	if req.Address != "" {
		return req.Address, nil
	}
	if req.AddressID != "" {
		for _, a := range profile.Addresses {
			if a.ID == req.AddressID {
				return a.Display(), nil
			}
		}
		return "", ErrAddressNotFound
	}
	if len(profile.Addresses) > 0 {
		return profile.Addresses[0].Display(), nil
	}
	return "", ErrNoAddress
}

func (s *OrderService) GetByID(ctx context.Context, id string) (model.Order, error) {
	order, found, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}
	if !found {
		return model.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *OrderService) ListByUser(ctx context.Context, email string) ([]model.Order, error) {
	return s.orderRepo.ListByUser(ctx, email)
}

// UpdateStatus sets the order's status and stamps updatedAt. Any of the
// four statuses is accepted in any order; the operator view relies on
// being able to move an order backward to correct a mistake.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error) {
	if !status.Valid() {
		return model.Order{}, ErrUnknownStatus
	}

	found, err := s.orderRepo.UpdateStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		return model.Order{}, fmt.Errorf("update status: %w", err)
	}
	if !found {
		return model.Order{}, ErrOrderNotFound
	}

	order, _, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}

	s.publish(ctx, model.OrderEvent{OrderID: order.ID, UserEmail: order.UserEmail, Status: order.Status})
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

// publish sends an order event, fire-and-forget. A nil channel (tests,
// degraded deployments) or a publish failure never fails the operation.
func (s *OrderService) publish(ctx context.Context, event model.OrderEvent) {
	if s.amqpCh == nil {
		return
	}
	msg, _ := json.Marshal(event)
	_ = s.amqpCh.PublishWithContext(ctx, "", "order.events", false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         msg,
		DeliveryMode: amqp.Persistent,
	})
}
