package models

import (
	"time"

	"github.com/google/uuid"
)

// BranchAvailability is the per-branch stock of a motorcycle model.
type BranchAvailability struct {
	Branch   string `json:"branch"`
	Quantity int    `json:"quantity"`
}

type Motorcycle struct {
	ID                uuid.UUID            `json:"id"`
	Make              string               `json:"make"`
	Model             string               `json:"model"`
	Description       string               `json:"description"`
	PricePerDayMonThu float64              `json:"price_per_day_mon_thu"`
	PricePerDayFriSun float64              `json:"price_per_day_fri_sun"`
	SecurityDeposit   float64              `json:"security_deposit"`
	AvailableInCities []BranchAvailability `json:"available_in_cities"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// AvailableQuantityAt returns the stock available at the given branch,
// zero when the motorcycle is not stocked there.
func (m *Motorcycle) AvailableQuantityAt(branch string) int {
	for _, city := range m.AvailableInCities {
		if city.Branch == branch {
			return city.Quantity
		}
	}

	return 0
}

type CreateMotorcycleRequest struct {
	Make              string               `json:"make" validate:"required,min=2,max=100"`
	Model             string               `json:"model" validate:"required,min=1,max=100"`
	Description       string               `json:"description,omitempty"`
	PricePerDayMonThu float64              `json:"price_per_day_mon_thu" validate:"required,gt=0"`
	PricePerDayFriSun float64              `json:"price_per_day_fri_sun" validate:"required,gt=0"`
	SecurityDeposit   float64              `json:"security_deposit" validate:"gte=0"`
	AvailableInCities []BranchAvailability `json:"available_in_cities" validate:"required,min=1,dive"`
}

type UpdateMotorcycleRequest struct {
	Make              *string              `json:"make,omitempty" validate:"omitempty,min=2,max=100"`
	Model             *string              `json:"model,omitempty" validate:"omitempty,min=1,max=100"`
	Description       *string              `json:"description,omitempty"`
	PricePerDayMonThu *float64             `json:"price_per_day_mon_thu,omitempty" validate:"omitempty,gt=0"`
	PricePerDayFriSun *float64             `json:"price_per_day_fri_sun,omitempty" validate:"omitempty,gt=0"`
	SecurityDeposit   *float64             `json:"security_deposit,omitempty" validate:"omitempty,gte=0"`
	AvailableInCities []BranchAvailability `json:"available_in_cities,omitempty" validate:"omitempty,min=1,dive"`
}
