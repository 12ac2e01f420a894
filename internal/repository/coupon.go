package repository

import (
	"context"

	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/storage"
)

// CouponRepository holds the coupon currently applied to the cart. The
// state survives failed re-applications and is cleared at checkout.
type CouponRepository interface {
	Get(ctx context.Context) (*model.AppliedCoupon, error)
	Save(ctx context.Context, coupon model.AppliedCoupon) error
	Clear(ctx context.Context) error
}

type couponRepo struct{ store storage.Store }

func NewCouponRepository(store storage.Store) CouponRepository {
	return &couponRepo{store: store}
}

func (r *couponRepo) Get(ctx context.Context) (*model.AppliedCoupon, error) {
	var coupon model.AppliedCoupon
	found, err := readJSON(ctx, r.store, storage.KeyCoupon, &coupon)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &coupon, nil
}

func (r *couponRepo) Save(ctx context.Context, coupon model.AppliedCoupon) error {
	return writeJSON(ctx, r.store, storage.KeyCoupon, coupon)
}

func (r *couponRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyCoupon)
}
