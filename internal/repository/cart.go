package repository

import (
	"context"

	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/storage"
)

// CartRepository persists the active cart as one JSON array under a fixed
// key. Every mutation rewrites the full line list.
type CartRepository interface {
	Get(ctx context.Context) ([]model.CartLine, error)
	Save(ctx context.Context, lines []model.CartLine) error
	Clear(ctx context.Context) error
}

type cartRepo struct{ store storage.Store }

func NewCartRepository(store storage.Store) CartRepository {
	return &cartRepo{store: store}
}

func (r *cartRepo) Get(ctx context.Context) ([]model.CartLine, error) {
	var lines []model.CartLine
	if _, err := readJSON(ctx, r.store, storage.KeyCart, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *cartRepo) Save(ctx context.Context, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	return writeJSON(ctx, r.store, storage.KeyCart, lines)
}

func (r *cartRepo) Clear(ctx context.Context) error {
	return r.Save(ctx, nil)
}
