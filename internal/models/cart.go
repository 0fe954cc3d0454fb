package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one booking line: a motorcycle, a quantity and a rental window.
// The priced fields (RentAmount, TotalTax, DiscountedRentAmount) are filled in
// by the pricing engine on every read; they are never trusted from storage.
type CartItem struct {
	MotorcycleID         uuid.UUID `json:"motorcycle_id"`
	Quantity             int       `json:"quantity"`
	PickupDate           time.Time `json:"pickup_date"`
	DropoffDate          time.Time `json:"dropoff_date"`
	PickupTime           string    `json:"pickup_time"`
	DropoffTime          string    `json:"dropoff_time"`
	PickupLocation       string    `json:"pickup_location"`
	DropoffLocation      string    `json:"dropoff_location"`
	Duration             string    `json:"duration"`
	TotalHours           float64   `json:"total_hours"`
	RentAmount           float64   `json:"rent_amount"`
	TaxPercentage        float64   `json:"tax_percentage"`
	TotalTax             float64   `json:"total_tax"`
	DiscountedRentAmount float64   `json:"discounted_rent_amount"`
}

// Cart holds one customer's booking intents. Items form an ordered sequence
// that behaves like a set keyed by motorcycle id: adding an existing id
// replaces the item in place, preserving insertion order. The coupon is a
// weak reference; the resolved PromoCode is re-fetched and re-validated on
// every read, never cached.
type Cart struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Items      []CartItem `json:"items"`
	CouponID   *uuid.UUID `json:"coupon_id,omitempty"`
	Coupon     *PromoCode `json:"coupon,omitempty"`

	// Derived totals, recomputed from Items + Coupon on every fetch.
	RentTotal            float64 `json:"rent_total"`
	TotalTax             float64 `json:"total_tax"`
	SecurityDepositTotal float64 `json:"security_deposit_total"`
	DiscountedRentTotal  float64 `json:"discounted_rent_total"`
	DiscountedTotal      float64 `json:"discounted_total"`
	CartTotal            float64 `json:"cart_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindItem returns the index of the line for the given motorcycle, -1 when absent.
func (c *Cart) FindItem(motorcycleID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].MotorcycleID == motorcycleID {
			return i
		}
	}

	return -1
}

type AddCartItemRequest struct {
	Quantity        int       `json:"quantity" validate:"required,min=1"`
	PickupDate      time.Time `json:"pickup_date" validate:"required"`
	DropoffDate     time.Time `json:"dropoff_date" validate:"required"`
	PickupTime      string    `json:"pickup_time" validate:"required,len=5"`
	DropoffTime     string    `json:"dropoff_time" validate:"required,len=5"`
	PickupLocation  string    `json:"pickup_location" validate:"required"`
	DropoffLocation string    `json:"dropoff_location" validate:"required"`
}
