package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog record. The catalog is seed data and never
// mutated at runtime.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"reviews"`
	ImageURL    string          `json:"image"`
	IsAvailable bool            `json:"isAvailable"`
	IsPopular   bool            `json:"isPopular"`
}

// CartLine is one product in the active cart. Name, price and image are
// snapshots taken when the product was first added; later catalog changes
// do not touch existing lines.
type CartLine struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image"`
	Qty       int             `json:"qty"`
}

// AppliedCoupon is the coupon state carried between applying a code and
// checking out.
type AppliedCoupon struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
}

type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Gender    string    `json:"gender"`
	DOB       string    `json:"dob"`
	AvatarURL string    `json:"avatar"`
	Addresses []Address `json:"addresses"`
	CreatedAt time.Time `json:"createdAt"`
}

type Address struct {
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

// Display renders the single-line form used on orders.
func (a Address) Display() string {
	return a.Street + ", " + a.Area + ", " + a.City + ", " + a.State + " - " + a.Zip
}

type Order struct {
	ID         string          `json:"id"`
	UserEmail  string          `json:"userEmail"`
	UserName   string          `json:"userName"`
	UserPhone  string          `json:"userPhone"`
	Items      []CartLine      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	Discount   decimal.Decimal `json:"discount"`
	CouponCode string          `json:"coupon"`
	Status     OrderStatus     `json:"status"`
	Address    string          `json:"address"`
	Date       time.Time       `json:"date"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// OrderEvent is published to the order events queue on checkout and on
// every status change.
type OrderEvent struct {
	OrderID   string      `json:"order_id"`
	UserEmail string      `json:"user_email"`
	Status    OrderStatus `json:"status"`
}
