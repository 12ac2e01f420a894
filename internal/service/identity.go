package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sliceandcode/storefront-api/internal/dto"
	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

type IdentityService struct {
	profileRepo repository.ProfileRepository
}

func NewIdentityService(profileRepo repository.ProfileRepository) *IdentityService {
	return &IdentityService{profileRepo: profileRepo}
}

// Login creates the active profile from defaults merged with the request
// fields. Any previously stored profile is replaced wholesale.
func (s *IdentityService) Login(ctx context.Context, req dto.LoginRequest) (model.UserProfile, error) {
	profile := model.UserProfile{
		ID:        model.NewID("USR"),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Gender:    req.Gender,
		DOB:       req.DOB,
		AvatarURL: req.AvatarURL,
		Addresses: []model.Address{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

func (s *IdentityService) Get(ctx context.Context) (model.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return model.UserProfile{}, ErrProfileNotFound
	}
	return *profile, nil
}

// Update applies the patch to the active profile, last write wins per
// field. Only the fields the patch names can change.
func (s *IdentityService) Update(ctx context.Context, patch dto.ProfilePatch) (model.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return model.UserProfile{}, ErrProfileNotFound
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Email != nil {
		profile.Email = *patch.Email
	}
	if patch.Phone != nil {
		profile.Phone = *patch.Phone
	}
	if patch.Gender != nil {
		profile.Gender = *patch.Gender
	}
	if patch.DOB != nil {
		profile.DOB = *patch.DOB
	}
	if patch.AvatarURL != nil {
		profile.AvatarURL = *patch.AvatarURL
	}

	if err := s.profileRepo.Save(ctx, *profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}
	return *profile, nil
}

// Logout deletes the profile. The cart and wishlist are left alone: an
// anonymous cart deliberately survives logout, matching the storefront.
func (s *IdentityService) Logout(ctx context.Context) error {
	return s.profileRepo.Delete(ctx)
}

func (s *IdentityService) AddAddress(ctx context.Context, req dto.AddressRequest) (model.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return model.UserProfile{}, ErrProfileNotFound
	}

	profile.Addresses = append(profile.Addresses, model.Address{
		ID:       model.NewID("ADDR"),
		Type:     req.Type,
		Street:   req.Street,
		Area:     req.Area,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		Phone:    req.Phone,
		Landmark: req.Landmark,
	})
	if err := s.profileRepo.Save(ctx, *profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}
	return *profile, nil
}

func (s *IdentityService) UpdateAddress(ctx context.Context, id string, patch dto.AddressPatch) (model.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return model.UserProfile{}, ErrProfileNotFound
	}

	idx := -1
	for i, a := range profile.Addresses {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.UserProfile{}, ErrAddressNotFound
	}

	addr := &profile.Addresses[idx]
	if patch.Type != nil {
		addr.Type = *patch.Type
	}
	if patch.Street != nil {
		addr.Street = *patch.Street
	}
	if patch.Area != nil {
		addr.Area = *patch.Area
	}
	if patch.City != nil {
		addr.City = *patch.City
	}
	if patch.State != nil {
		addr.State = *patch.State
	}
	if patch.Zip != nil {
		addr.Zip = *patch.Zip
	}
	if patch.Phone != nil {
		addr.Phone = *patch.Phone
	}
	if patch.Landmark != nil {
		addr.Landmark = *patch.Landmark
	}

	if err := s.profileRepo.Save(ctx, *profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}
	return *profile, nil
}

// DeleteAddress removes the address by id. Deleting an unknown id is a
// silent no-op, matching the filter-by-id removal it replaces.
func (s *IdentityService) DeleteAddress(ctx context.Context, id string) (model.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return model.UserProfile{}, ErrProfileNotFound
	}

	out := profile.Addresses[:0]
	for _, a := range profile.Addresses {
		if a.ID != id {
			out = append(out, a)
		}
	}
	profile.Addresses = out

	if err := s.profileRepo.Save(ctx, *profile); err != nil {
		return model.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}
	return *profile, nil
}
