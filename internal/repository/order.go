package repository

import (
	"context"
	"time"

	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/storage"
)

// OrderRepository persists the order ledger as one JSON array,
// most-recent-first. Lookups are linear scans; a miss returns (zero, false),
// not an error. Two near-simultaneous writers race on the whole blob with
// last-writer-wins; acceptable for the single-client deployments this
// service targets.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) error
	GetByID(ctx context.Context, id string) (model.Order, bool, error)
	ListByUser(ctx context.Context, email string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus, now time.Time) (bool, error)
	Delete(ctx context.Context, id string) error
}

type orderRepo struct{ store storage.Store }

func NewOrderRepository(store storage.Store) OrderRepository {
	return &orderRepo{store: store}
}

func (r *orderRepo) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if _, err := readJSON(ctx, r.store, storage.KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepo) Create(ctx context.Context, order model.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	// Prepend: the ledger is displayed most-recent-first.
	orders = append([]model.Order{order}, orders...)
	return writeJSON(ctx, r.store, storage.KeyOrders, orders)
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (model.Order, bool, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return model.Order{}, false, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, true, nil
		}
	}
	return model.Order{}, false, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, email string) ([]model.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Order
	for _, o := range orders {
		// Exact match, case-sensitive as stored.
		if o.UserEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, now time.Time) (bool, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			orders[i].UpdatedAt = now
			if err := writeJSON(ctx, r.store, storage.KeyOrders, orders); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	out := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return writeJSON(ctx, r.store, storage.KeyOrders, out)
}
