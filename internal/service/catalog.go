package service

import (
	"errors"

	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// List filters the catalog. An empty or "All" category matches everything;
// availableOnly and popularOnly narrow the result further.
func (s *CatalogService) List(category string, availableOnly, popularOnly bool) []model.Product {
	products := s.catalogRepo.ByCategory(category)
	if !availableOnly && !popularOnly {
		return products
	}
	var out []model.Product
	for _, p := range products {
		if availableOnly && !p.IsAvailable {
			continue
		}
		if popularOnly && !p.IsPopular {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *CatalogService) GetByID(id int) (model.Product, error) {
	p, ok := s.catalogRepo.GetByID(id)
	if !ok {
		return model.Product{}, ErrProductNotFound
	}
	return p, nil
}
