package repository

import (
	"context"

	"github.com/sliceandcode/storefront-api/internal/storage"
)

// WishlistRepository persists the wishlist as a JSON array of product ids.
// Set semantics live in the service; the stored form is an ordered list.
type WishlistRepository interface {
	Get(ctx context.Context) ([]int, error)
	Save(ctx context.Context, ids []int) error
}

type wishlistRepo struct{ store storage.Store }

func NewWishlistRepository(store storage.Store) WishlistRepository {
	return &wishlistRepo{store: store}
}

func (r *wishlistRepo) Get(ctx context.Context) ([]int, error) {
	var ids []int
	if _, err := readJSON(ctx, r.store, storage.KeyWishlist, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *wishlistRepo) Save(ctx context.Context, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	return writeJSON(ctx, r.store, storage.KeyWishlist, ids)
}
