package repository

import (
	"context"

	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/storage"
)

// ProfileRepository persists the single active user profile. At most one
// profile exists at a time; saving replaces any prior one.
type ProfileRepository interface {
	Get(ctx context.Context) (*model.UserProfile, error)
	Save(ctx context.Context, profile model.UserProfile) error
	Delete(ctx context.Context) error
}

type profileRepo struct{ store storage.Store }

func NewProfileRepository(store storage.Store) ProfileRepository {
	return &profileRepo{store: store}
}

func (r *profileRepo) Get(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	found, err := readJSON(ctx, r.store, storage.KeyUser, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

func (r *profileRepo) Save(ctx context.Context, profile model.UserProfile) error {
	if profile.Addresses == nil {
		profile.Addresses = []model.Address{}
	}
	return writeJSON(ctx, r.store, storage.KeyUser, profile)
}

func (r *profileRepo) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyUser)
}
