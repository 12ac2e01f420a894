package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/repository"
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// couponTable maps promo codes to their discount fraction of the cart
// subtotal. Codes are matched case-insensitively.
var couponTable = map[string]decimal.Decimal{
	"PRO20":   decimal.RequireFromString("0.20"),
	"SAVE20":  decimal.RequireFromString("0.20"),
	"FIRST10": decimal.RequireFromString("0.10"),
}

type CouponService struct {
	cartRepo   repository.CartRepository
	couponRepo repository.CouponRepository
}

func NewCouponService(cartRepo repository.CartRepository, couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{cartRepo: cartRepo, couponRepo: couponRepo}
}

// Apply evaluates the code against the current cart subtotal and stores
// the resulting discount. An unknown code returns ErrInvalidCoupon and
// leaves any previously applied discount in place; the storefront has
// always behaved that way, so the stale discount is kept deliberately.
func (s *CouponService) Apply(ctx context.Context, code string) (model.AppliedCoupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	fraction, ok := couponTable[normalized]
	if !ok {
		return model.AppliedCoupon{}, ErrInvalidCoupon
	}

	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return model.AppliedCoupon{}, fmt.Errorf("get cart: %w", err)
	}

	coupon := model.AppliedCoupon{
		Code:     normalized,
		Discount: Subtotal(lines).Mul(fraction),
	}
	if err := s.couponRepo.Save(ctx, coupon); err != nil {
		return model.AppliedCoupon{}, fmt.Errorf("save coupon: %w", err)
	}
	return coupon, nil
}
