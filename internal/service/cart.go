package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/repository"
)

// CartSummary is the cart with its derived figures. Total and Count are
// recomputed from the lines on every read, never cached.
type CartSummary struct {
	Lines    []model.CartLine
	Subtotal decimal.Decimal
	Count    int
	Coupon   *model.AppliedCoupon
}

// Payable is the subtotal less any applied discount.
func (c CartSummary) Payable() decimal.Decimal {
	if c.Coupon == nil {
		return c.Subtotal
	}
	return c.Subtotal.Sub(c.Coupon.Discount)
}

// Subtotal sums price x qty over the given lines.
func Subtotal(lines []model.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}
	return total
}

// Count sums the quantities over the given lines.
func Count(lines []model.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Qty
	}
	return count
}

type CartService struct {
	cartRepo    repository.CartRepository
	couponRepo  repository.CouponRepository
	catalogRepo repository.CatalogRepository
}

func NewCartService(cartRepo repository.CartRepository, couponRepo repository.CouponRepository, catalogRepo repository.CatalogRepository) *CartService {
	return &CartService{cartRepo: cartRepo, couponRepo: couponRepo, catalogRepo: catalogRepo}
}

func (s *CartService) Get(ctx context.Context) (CartSummary, error) {
	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return CartSummary{}, fmt.Errorf("get cart: %w", err)
	}
	coupon, err := s.couponRepo.Get(ctx)
	if err != nil {
		return CartSummary{}, fmt.Errorf("get coupon: %w", err)
	}
	return CartSummary{
		Lines:    lines,
		Subtotal: Subtotal(lines),
		Count:    Count(lines),
		Coupon:   coupon,
	}, nil
}

// AddItem puts one unit of the product in the cart. A repeat add bumps the
// existing line's quantity; a first add snapshots the product's name, price
// and image so later catalog changes leave the line untouched.
func (s *CartService) AddItem(ctx context.Context, productID int) error {
	product, ok := s.catalogRepo.GetByID(productID)
	if !ok {
		return ErrProductNotFound
	}

	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty++
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, model.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Qty:       1,
		})
	}
	return s.cartRepo.Save(ctx, lines)
}

// RemoveItem drops the line for the product unconditionally. Removing a
// product that is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, productID int) error {
	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}
	out := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			out = append(out, line)
		}
	}
	return s.cartRepo.Save(ctx, out)
}

// UpdateQty adds delta to the line's quantity. A result of zero or below
// removes the line silently; there is no error floor.
func (s *CartService) UpdateQty(ctx context.Context, productID, delta int) error {
	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}
	out := lines[:0]
	for _, line := range lines {
		if line.ProductID == productID {
			line.Qty += delta
			if line.Qty <= 0 {
				continue
			}
		}
		out = append(out, line)
	}
	return s.cartRepo.Save(ctx, out)
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.cartRepo.Clear(ctx)
}
