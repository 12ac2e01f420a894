package repository

import (
	"github.com/shopspring/decimal"

	"github.com/sliceandcode/storefront-api/internal/model"
)

// CatalogRepository serves the pizza catalog. The catalog is seed data
// held in memory; there is no write path.
type CatalogRepository interface {
	GetAll() []model.Product
	GetByID(id int) (model.Product, bool)
	Available() []model.Product
	Popular() []model.Product
	ByCategory(category string) []model.Product
}

// CategoryAll matches every category.
const CategoryAll = "All"

type catalogRepo struct {
	products []model.Product
}

func NewCatalogRepository() CatalogRepository {
	return &catalogRepo{products: seedCatalog()}
}

func (r *catalogRepo) GetAll() []model.Product {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *catalogRepo) GetByID(id int) (model.Product, bool) {
	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (r *catalogRepo) Available() []model.Product {
	return r.filter(func(p model.Product) bool { return p.IsAvailable })
}

func (r *catalogRepo) Popular() []model.Product {
	return r.filter(func(p model.Product) bool { return p.IsPopular })
}

func (r *catalogRepo) ByCategory(category string) []model.Product {
	if category == CategoryAll || category == "" {
		return r.GetAll()
	}
	return r.filter(func(p model.Product) bool { return p.Category == category })
}

func (r *catalogRepo) filter(keep func(model.Product) bool) []model.Product {
	var out []model.Product
	for _, p := range r.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedCatalog() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Margherita Classic",
			Description: "Fresh tomatoes, mozzarella, basil, extra virgin olive oil",
			Price:       price("14.00"),
			Category:    "Vegetarian",
			Rating:      4.8,
			ReviewCount: 234,
			ImageURL:    "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          2,
			Name:        "Pepperoni Feast",
			Description: "Double pepperoni, mozzarella, signature tomato sauce",
			Price:       price("16.50"),
			Category:    "Meat",
			Rating:      4.9,
			ReviewCount: 456,
			ImageURL:    "https://images.unsplash.com/photo-1628840042765-356cda07504e?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          3,
			Name:        "Truffle Mushroom",
			Description: "Wild mushrooms, truffle oil, parmesan, cream sauce",
			Price:       price("18.00"),
			Category:    "Gourmet",
			Rating:      4.7,
			ReviewCount: 189,
			ImageURL:    "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   false,
		},
		{
			ID:          4,
			Name:        "BBQ Chicken",
			Description: "Grilled chicken, BBQ sauce, red onions, fresh cilantro",
			Price:       price("17.00"),
			Category:    "Chicken",
			Rating:      4.5,
			ReviewCount: 312,
			ImageURL:    "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?auto=format&fit=crop&w=800&q=80",
			IsAvailable: false,
			IsPopular:   true,
		},
		{
			ID:          5,
			Name:        "Hawaiian Paradise",
			Description: "Premium ham, fresh pineapple, mozzarella blend",
			Price:       price("16.00"),
			Category:    "Meat",
			Rating:      4.2,
			ReviewCount: 156,
			ImageURL:    "https://images.unsplash.com/photo-1565299507177-b0ac66763828?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   false,
		},
		{
			ID:          6,
			Name:        "Veggie Supreme",
			Description: "Bell peppers, onions, olives, tomatoes, mushrooms",
			Price:       price("15.50"),
			Category:    "Vegetarian",
			Rating:      4.6,
			ReviewCount: 203,
			ImageURL:    "https://images.unsplash.com/photo-1571407970349-bc16f6343378?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   false,
		},
		{
			ID:          7,
			Name:        "Meat Lovers",
			Description: "Pepperoni, sausage, bacon, ham, ground beef",
			Price:       price("19.00"),
			Category:    "Meat",
			Rating:      4.8,
			ReviewCount: 387,
			ImageURL:    "https://images.unsplash.com/photo-1594007654729-407eedc4be65?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			ID:          8,
			Name:        "Quattro Formaggi",
			Description: "Mozzarella, gorgonzola, parmesan, ricotta",
			Price:       price("17.50"),
			Category:    "Gourmet",
			Rating:      4.7,
			ReviewCount: 145,
			ImageURL:    "https://images.unsplash.com/photo-1548369937-47519962c11a?auto=format&fit=crop&w=800&q=80",
			IsAvailable: true,
			IsPopular:   false,
		},
	}
}
