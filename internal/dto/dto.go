package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Catalog ---

type ListProductsRequest struct {
	Category  string `form:"category"`
	Available bool   `form:"available"`
	Popular   bool   `form:"popular"`
}

type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"reviews"`
	ImageURL    string          `json:"image"`
	IsAvailable bool            `json:"is_available"`
	IsPopular   bool            `json:"is_popular"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	// Delta is added to the line's quantity; driving it to zero or below
	// removes the line.
	Delta int `json:"delta" binding:"required"`
}

type CartLineResponse struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image"`
	Qty       int             `json:"qty"`
}

type CartResponse struct {
	Items    []CartLineResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Count    int                `json:"count"`
	Coupon   string             `json:"coupon,omitempty"`
	Discount decimal.Decimal    `json:"discount"`
	Total    decimal.Decimal    `json:"total"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type CouponResponse struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
}

// --- Orders ---

type CheckoutRequest struct {
	// AddressID selects a saved profile address; Address supplies a
	// one-off address line instead. With neither set, the profile's first
	// saved address is used.
	AddressID string `json:"address_id"`
	Address   string `json:"address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderResponse struct {
	ID         string             `json:"id"`
	UserEmail  string             `json:"user_email"`
	UserName   string             `json:"user_name"`
	UserPhone  string             `json:"user_phone"`
	Items      []CartLineResponse `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	Discount   decimal.Decimal    `json:"discount"`
	CouponCode string             `json:"coupon,omitempty"`
	Status     string             `json:"status"`
	Progress   float64            `json:"progress"`
	Address    string             `json:"address"`
	Date       time.Time          `json:"date"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// --- Profile ---

type LoginRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	DOB       string `json:"dob"`
	AvatarURL string `json:"avatar"`
}

type ProfilePatch struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Gender    *string `json:"gender"`
	DOB       *string `json:"dob"`
	AvatarURL *string `json:"avatar"`
}

type AddressRequest struct {
	Type     string `json:"type" binding:"required,oneof=home work other"`
	Street   string `json:"street" binding:"required"`
	Area     string `json:"area"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	Zip      string `json:"zip" binding:"required"`
	Phone    string `json:"phone"`
	Landmark string `json:"landmark"`
}

type AddressPatch struct {
	Type     *string `json:"type" binding:"omitempty,oneof=home work other"`
	Street   *string `json:"street"`
	Area     *string `json:"area"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Zip      *string `json:"zip"`
	Phone    *string `json:"phone"`
	Landmark *string `json:"landmark"`
}

type AddressResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Street   string `json:"street"`
	Area     string `json:"area"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Phone    string `json:"phone"`
	Landmark string `json:"landmark"`
}

type ProfileResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Gender    string            `json:"gender"`
	DOB       string            `json:"dob"`
	AvatarURL string            `json:"avatar"`
	Addresses []AddressResponse `json:"addresses"`
	CreatedAt time.Time         `json:"created_at"`
}

// --- Wishlist ---

type WishlistResponse struct {
	ProductIDs []int             `json:"product_ids"`
	Products   []ProductResponse `json:"products"`
}

type WishlistToggleResponse struct {
	ProductIDs []int `json:"product_ids"`
	Added      bool  `json:"added"`
}

// --- Postal ---

type PostalResponse struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Area    string `json:"area"`
}
