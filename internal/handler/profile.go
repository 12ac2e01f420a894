package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sliceandcode/storefront-api/internal/dto"
	"github.com/sliceandcode/storefront-api/internal/model"
	"github.com/sliceandcode/storefront-api/internal/service"
)

type ProfileHandler struct {
	identityService *service.IdentityService
}

func NewProfileHandler(identityService *service.IdentityService) *ProfileHandler {
	return &ProfileHandler{identityService: identityService}
}

func (h *ProfileHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.identityService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, toProfileResponse(profile))
}

func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.identityService.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not logged in"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var patch dto.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.identityService.Update(c.Request.Context(), patch)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not logged in"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *ProfileHandler) Logout(c *gin.Context) {
	if err := h.identityService.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) AddAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.identityService.AddAddress(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not logged in"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, toProfileResponse(profile))
}

func (h *ProfileHandler) UpdateAddress(c *gin.Context) {
	var patch dto.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.identityService.UpdateAddress(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not logged in"})
		case errors.Is(err, service.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func (h *ProfileHandler) DeleteAddress(c *gin.Context) {
	profile, err := h.identityService.DeleteAddress(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not logged in"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(profile model.UserProfile) dto.ProfileResponse {
	addresses := make([]dto.AddressResponse, 0, len(profile.Addresses))
	for _, a := range profile.Addresses {
		addresses = append(addresses, dto.AddressResponse{
			ID:       a.ID,
			Type:     a.Type,
			Street:   a.Street,
			Area:     a.Area,
			City:     a.City,
			State:    a.State,
			Zip:      a.Zip,
			Phone:    a.Phone,
			Landmark: a.Landmark,
		})
	}
	return dto.ProfileResponse{
		ID:        profile.ID,
		Name:      profile.Name,
		Email:     profile.Email,
		Phone:     profile.Phone,
		Gender:    profile.Gender,
		DOB:       profile.DOB,
		AvatarURL: profile.AvatarURL,
		Addresses: addresses,
		CreatedAt: profile.CreatedAt,
	}
}
