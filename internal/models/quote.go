package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteRequest asks for a standalone price breakdown without touching a cart.
// Rates come either from a catalog motorcycle or are supplied inline; exactly
// one of the two forms is required.
type QuoteRequest struct {
	MotorcycleID *uuid.UUID `json:"motorcycle_id,omitempty"`
	WeekdayRate  *float64   `json:"weekday_rate,omitempty" validate:"omitempty,gt=0"`
	WeekendRate  *float64   `json:"weekend_rate,omitempty" validate:"omitempty,gt=0"`
	Quantity     int        `json:"quantity" validate:"required,min=1"`
	PickupDate   time.Time  `json:"pickup_date" validate:"required"`
	DropoffDate  time.Time  `json:"dropoff_date" validate:"required"`
	PickupTime   string     `json:"pickup_time" validate:"required,len=5"`
	DropoffTime  string     `json:"dropoff_time" validate:"required,len=5"`
}

type QuoteResponse struct {
	TotalHours               float64 `json:"total_hours"`
	Duration                 string  `json:"duration"`
	WeekdayCount             int     `json:"weekday_count"`
	WeekendCount             int     `json:"weekend_count"`
	ExtraHours               float64 `json:"extra_hours"`
	LastDayTypeForExtraHours string  `json:"last_day_type_for_extra_hours"`
	WeekdayRate              float64 `json:"weekday_rate"`
	WeekendRate              float64 `json:"weekend_rate"`
	ExtraHourSurcharge       float64 `json:"extra_hour_surcharge"`
	RentPerUnit              float64 `json:"rent_per_unit"`
	Quantity                 int     `json:"quantity"`
	TotalRent                float64 `json:"total_rent"`
	TaxPercentage            float64 `json:"tax_percentage"`
	TotalTax                 float64 `json:"total_tax"`
}
