package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponService_Apply(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	// 14.00 x2 + 16.50 = 44.50
	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 2))

	coupon, err := f.coupon.Apply(ctx, "SAVE20")
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", coupon.Code)
	assert.True(t, coupon.Discount.Equal(decimal.RequireFromString("8.90")), "got %s", coupon.Discount)

	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	assert.True(t, summary.Payable().Equal(decimal.RequireFromString("35.60")), "got %s", summary.Payable())
}

func TestCouponService_Apply_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.cart.AddItem(ctx, 2))

	coupon, err := f.coupon.Apply(ctx, "  first10 ")
	require.NoError(t, err)
	assert.Equal(t, "FIRST10", coupon.Code)
	assert.True(t, coupon.Discount.Equal(decimal.RequireFromString("1.65")))
}

// An invalid code after a valid one must leave the earlier discount in
// place. Long-standing storefront behaviour, kept as-is.
func TestCouponService_InvalidCodeKeepsPriorDiscount(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 2))

	_, err := f.coupon.Apply(ctx, "SAVE20")
	require.NoError(t, err)

	_, err = f.coupon.Apply(ctx, "NOPE50")
	assert.ErrorIs(t, err, ErrInvalidCoupon)

	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, summary.Coupon)
	assert.Equal(t, "SAVE20", summary.Coupon.Code)
	assert.True(t, summary.Coupon.Discount.Equal(decimal.RequireFromString("8.90")))
}

func TestCouponService_InvalidCodeOnCleanCart(t *testing.T) {
	f := newFixture()
	_, err := f.coupon.Apply(context.Background(), "BOGUS")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
}
