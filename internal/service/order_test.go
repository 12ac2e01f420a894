package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliceandcode/storefront-api/internal/dto"
	"github.com/sliceandcode/storefront-api/internal/model"
)

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.loginWithAddress(ctx)

	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 2))
	_, err := f.coupon.Apply(ctx, "SAVE20")
	require.NoError(t, err)

	order, err := f.order.Checkout(ctx, dto.CheckoutRequest{})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, order.Status)
	assert.Equal(t, "ada@mail.com", order.UserEmail)
	assert.Equal(t, "SAVE20", order.CouponCode)
	assert.True(t, order.Discount.Equal(decimal.RequireFromString("8.90")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("35.60")), "got %s", order.Total)
	assert.Contains(t, order.Address, "12 MG Road")
	require.Len(t, order.Items, 2)

	// The ledger returns the order exactly as created.
	got, err := f.order.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.True(t, got.Total.Equal(order.Total))

	// Cart and coupon state are consumed by checkout.
	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
	assert.Nil(t, summary.Coupon)
}

func TestOrderService_Checkout_RequiresLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.cart.AddItem(ctx, 1))

	_, err := f.order.Checkout(ctx, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.loginWithAddress(ctx)

	_, err := f.order.Checkout(ctx, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderService_Checkout_NoAddress(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.login(ctx)
	require.NoError(t, f.cart.AddItem(ctx, 1))

	_, err := f.order.Checkout(ctx, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestOrderService_Checkout_UnknownAddressID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.loginWithAddress(ctx)
	require.NoError(t, f.cart.AddItem(ctx, 1))

	_, err := f.order.Checkout(ctx, dto.CheckoutRequest{AddressID: "ADDR-MISSING"})
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestOrderService_Checkout_ExplicitAddress(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.login(ctx)
	require.NoError(t, f.cart.AddItem(ctx, 1))

	order, err := f.order.Checkout(ctx, dto.CheckoutRequest{Address: "1 Custom Lane, Pune - 411001"})
	require.NoError(t, err)
	assert.Equal(t, "1 Custom Lane, Pune - 411001", order.Address)
}

func TestOrderService_Checkout_CancelledContext(t *testing.T) {
	f := newFixture()
	f.order.processingDelay = 200 * time.Millisecond

	ctx := context.Background()
	f.loginWithAddress(ctx)
	require.NoError(t, f.cart.AddItem(ctx, 1))

	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	_, err := f.order.Checkout(cancelCtx, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, context.Canceled)

	// Nothing was written: the cart survives and the ledger stays empty.
	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, summary.Lines, 1)

	orders, err := f.order.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.loginWithAddress(ctx)
	require.NoError(t, f.cart.AddItem(ctx, 1))

	order, err := f.order.Checkout(ctx, dto.CheckoutRequest{})
	require.NoError(t, err)

	updated, err := f.order.UpdateStatus(ctx, order.ID, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)
	assert.True(t, updated.UpdatedAt.After(updated.Date), "updatedAt must move past the order date")
}

// Operators may move an order backward; the model does not police
// transition direction.
func TestOrderService_UpdateStatus_BackwardAllowed(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.loginWithAddress(ctx)
	require.NoError(t, f.cart.AddItem(ctx, 1))

	order, err := f.order.Checkout(ctx, dto.CheckoutRequest{})
	require.NoError(t, err)

	_, err = f.order.UpdateStatus(ctx, order.ID, model.StatusCompleted)
	require.NoError(t, err)

	updated, err := f.order.UpdateStatus(ctx, order.ID, model.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPreparing, updated.Status)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.order.UpdateStatus(ctx, "ORD-1", model.OrderStatus("Shipped"))
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.order.UpdateStatus(ctx, "ORD-MISSING", model.StatusPreparing)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	f := newFixture()
	_, err := f.order.GetByID(context.Background(), "ORD-MISSING")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_ListByUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.loginWithAddress(ctx)

	require.NoError(t, f.cart.AddItem(ctx, 1))
	_, err := f.order.Checkout(ctx, dto.CheckoutRequest{})
	require.NoError(t, err)

	orders, err := f.order.ListByUser(ctx, "ada@mail.com")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = f.order.ListByUser(ctx, "someone@else.com")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
