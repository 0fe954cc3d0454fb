package models

import (
	"time"

	"github.com/google/uuid"
)

type PromoCodeType string

const (
	PromoCodeTypeFlat       PromoCodeType = "FLAT"
	PromoCodeTypePercentage PromoCodeType = "PERCENTAGE"
)

type PromoCode struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	Code             string        `json:"code"`
	Type             PromoCodeType `json:"type"`
	DiscountValue    float64       `json:"discount_value"`
	MinimumCartValue float64       `json:"minimum_cart_value"`
	StartDate        time.Time     `json:"start_date"`
	ExpiryDate       time.Time     `json:"expiry_date"`
	IsActive         bool          `json:"is_active"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// IsCurrentlyValid reports whether the coupon may be honoured at the given
// instant: the active flag is set and the instant falls inside the
// start/expiry window.
func (p *PromoCode) IsCurrentlyValid(now time.Time) bool {
	return p.IsActive && now.After(p.StartDate) && now.Before(p.ExpiryDate)
}

type CreatePromoCodeRequest struct {
	Name             string        `json:"name" validate:"required,min=3,max=100"`
	Code             string        `json:"code" validate:"required,min=3,max=30"`
	Type             PromoCodeType `json:"type" validate:"required,oneof=FLAT PERCENTAGE"`
	DiscountValue    float64       `json:"discount_value" validate:"required,gt=0"`
	MinimumCartValue float64       `json:"minimum_cart_value" validate:"gte=0"`
	StartDate        time.Time     `json:"start_date" validate:"required"`
	ExpiryDate       time.Time     `json:"expiry_date" validate:"required"`
}

type UpdatePromoCodeRequest struct {
	Name             *string        `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Code             *string        `json:"code,omitempty" validate:"omitempty,min=3,max=30"`
	Type             *PromoCodeType `json:"type,omitempty" validate:"omitempty,oneof=FLAT PERCENTAGE"`
	DiscountValue    *float64       `json:"discount_value,omitempty" validate:"omitempty,gt=0"`
	MinimumCartValue *float64       `json:"minimum_cart_value,omitempty" validate:"omitempty,gte=0"`
	StartDate        *time.Time     `json:"start_date,omitempty"`
	ExpiryDate       *time.Time     `json:"expiry_date,omitempty"`
}

type UpdatePromoCodeStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,min=3,max=30"`
}
