// Package storage is the persistence substrate: a synchronous string
// key-value store holding one JSON blob per fixed key. Reads and writes
// are whole-blob; concurrent writers race on read-modify-write with
// last-writer-wins. That matches the single-client model this service
// replaces and is a documented limitation, not a bug to fix here.
package storage

import "context"

// Fixed storage keys.
const (
	KeyUser     = "sc_user"
	KeyCart     = "sc_cart"
	KeyOrders   = "sc_orders"
	KeyWishlist = "sc_wishlist"
	KeyCoupon   = "sc_coupon"
)

type Store interface {
	// Get returns the stored value and whether the key exists. Absence is
	// not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
