package service

import (
	"context"
	"fmt"

	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/repository"
)

type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	catalogRepo  repository.CatalogRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, catalogRepo repository.CatalogRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, catalogRepo: catalogRepo}
}

// Toggle flips the product's wishlist membership and returns the new id
// list plus whether the product is now on it.
func (s *WishlistService) Toggle(ctx context.Context, productID int) ([]int, bool, error) {
	ids, err := s.wishlistRepo.Get(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("get wishlist: %w", err)
	}

	out := ids[:0]
	removed := false
	for _, id := range ids {
		if id == productID {
			removed = true
			continue
		}
		out = append(out, id)
	}
	if !removed {
		out = append(out, productID)
	}

	if err := s.wishlistRepo.Save(ctx, out); err != nil {
		return nil, false, fmt.Errorf("save wishlist: %w", err)
	}
	return out, !removed, nil
}

func (s *WishlistService) Contains(ctx context.Context, productID int) (bool, error) {
	ids, err := s.wishlistRepo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("get wishlist: %w", err)
	}
	for _, id := range ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *WishlistService) IDs(ctx context.Context) ([]int, error) {
	return s.wishlistRepo.Get(ctx)
}

// Products resolves the wishlist ids through the catalog. Ids that no
// longer resolve are skipped rather than surfaced as errors.
func (s *WishlistService) Products(ctx context.Context) ([]model.Product, error) {
	ids, err := s.wishlistRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	var out []model.Product
	for _, id := range ids {
		if p, ok := s.catalogRepo.GetByID(id); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *WishlistService) Clear(ctx context.Context) error {
	return s.wishlistRepo.Save(ctx, nil)
}
