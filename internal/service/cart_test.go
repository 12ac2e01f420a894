package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem_MergesRepeatAdds(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 1))

	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1, "repeat add must not create a second line")
	assert.Equal(t, 2, summary.Lines[0].Qty)
	assert.Equal(t, "Margherita Classic", summary.Lines[0].Name)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	f := newFixture()
	err := f.cart.AddItem(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartService_TotalsTrackEveryMutation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	// Margherita 14.00 x2, Pepperoni 16.50 x1.
	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 2))

	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("44.50")), "got %s", summary.Subtotal)
	assert.Equal(t, 3, summary.Count)

	require.NoError(t, f.cart.RemoveItem(ctx, 2))
	summary, err = f.cart.Get(ctx)
	require.NoError(t, err)
	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("28.00")))
	assert.Equal(t, 2, summary.Count)

	require.NoError(t, f.cart.UpdateQty(ctx, 1, 1))
	summary, err = f.cart.Get(ctx)
	require.NoError(t, err)
	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("42.00")))
	assert.Equal(t, 3, summary.Count)
}

func TestCartService_UpdateQty_ZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.AddItem(ctx, 1))

	// Driving qty to zero removes the line, no error surfaced.
	require.NoError(t, f.cart.UpdateQty(ctx, 1, -2))

	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
	assert.True(t, summary.Subtotal.IsZero())
	assert.Zero(t, summary.Count)
}

func TestCartService_UpdateQty_BelowZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.UpdateQty(ctx, 1, -5))

	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
}

func TestCartService_RemoveMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.RemoveItem(ctx, 42))

	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, summary.Lines, 1)
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.cart.AddItem(ctx, 1))
	require.NoError(t, f.cart.Clear(ctx))

	summary, err := f.cart.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
	assert.Zero(t, summary.Count)
}
