package service

import (
	"context"

	"github.com/sliceandcode/storefront-api/internal/dto"
	"github.com/sliceandcode/storefront-api/internal/repository"
	"github.com/sliceandcode/storefront-api/internal/storage"
)

// fixture wires every service over one shared in-memory store, the same
// way main wires them over redis.
type fixture struct {
	store    storage.Store
	cart     *CartService
	coupon   *CouponService
	order    *OrderService
	identity *IdentityService
	wishlist *WishlistService
	catalog  *CatalogService
}

func newFixture() *fixture {
	store := storage.NewMemoryStore()
	catalogRepo := repository.NewCatalogRepository()
	cartRepo := repository.NewCartRepository(store)
	couponRepo := repository.NewCouponRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	profileRepo := repository.NewProfileRepository(store)
	wishlistRepo := repository.NewWishlistRepository(store)

	return &fixture{
		store:    store,
		cart:     NewCartService(cartRepo, couponRepo, catalogRepo),
		coupon:   NewCouponService(cartRepo, couponRepo),
		order:    NewOrderService(orderRepo, cartRepo, couponRepo, profileRepo, nil, 0),
		identity: NewIdentityService(profileRepo),
		wishlist: NewWishlistService(wishlistRepo, catalogRepo),
		catalog:  NewCatalogService(catalogRepo),
	}
}

func (f *fixture) login(ctx context.Context) {
	_, _ = f.identity.Login(ctx, dto.LoginRequest{
		Name:  "Ada Leverage",
		Email: "ada@mail.com",
		Phone: "9876543210",
	})
}

func (f *fixture) loginWithAddress(ctx context.Context) {
	f.login(ctx)
	_, _ = f.identity.AddAddress(ctx, dto.AddressRequest{
		Type:   "home",
		Street: "12 MG Road",
		Area:   "Indiranagar",
		City:   "Bangalore",
		State:  "Karnataka",
		Zip:    "560001",
	})
}
