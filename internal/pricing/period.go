// Package pricing implements the rental pricing core: the booking period
// calculator, the tiered rent calculation and the cart discount allocation.
// Everything in this package is a pure function over immutable inputs; it
// performs no I/O and is safe to call concurrently.
package pricing

import (
	"fmt"
	"math"
	"time"
)

// Policy constants. These are business policy, not user input; the period
// calculator, the rent calculation and the quote tooling all reference them
// from here.
const (
	// TaxRatePercent is the flat GST applied on top of (discounted) rent.
	TaxRatePercent = 18.0

	// MinBookingHours is the minimum rental duration. Enforced by callers,
	// not by the period calculator itself.
	MinBookingHours = 6.0

	// ExtraHourRateFraction prices one extra hour at this fraction of the
	// applicable daily rate.
	ExtraHourRateFraction = 0.10

	// weekendStartHour opens the long-weekend tariff window on Thursday.
	weekendStartHour = 16

	hoursPerBlock = 24.0

	// surchargeCutoffHours bounds the extra-hour tier: past this point the
	// trailing partial block is rounded up to a full day instead.
	surchargeCutoffHours = 28.0
)

type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// BookingPeriod is the calendar-aware breakdown of a rental window into
// 24-hour billing blocks. Immutable once computed.
type BookingPeriod struct {
	TotalHours               float64 `json:"total_hours"`
	Duration                 string  `json:"duration"`
	WeekdayCount             int     `json:"weekday_count"`
	WeekendCount             int     `json:"weekend_count"`
	ExtraHours               float64 `json:"extra_hours"`
	LastDayTypeForExtraHours DayType `json:"last_day_type_for_extra_hours"`
}

// CombineDateTime merges a calendar date with a "HH:MM" clock string into a
// single instant in the date's location.
func CombineDateTime(date time.Time, clock string) (time.Time, error) {
	var hours, minutes int

	if _, err := fmt.Sscanf(clock, "%d:%d", &hours, &minutes); err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM: %w", clock, err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hours, minutes, 0, 0, date.Location()), nil
}

// IsWeekendBlockStart reports whether a billing block starting at t is
// weekend-priced: Thursday at or after 16:00, or any hour of Friday, Saturday
// or Sunday. This is a long-weekend tariff window, not the calendar weekend.
func IsWeekendBlockStart(t time.Time) bool {
	switch t.Weekday() {
	case time.Thursday:
		return t.Hour() >= weekendStartHour
	case time.Friday, time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

func emptyPeriod() BookingPeriod {
	return BookingPeriod{
		Duration:                 "0 days 0 hours",
		LastDayTypeForExtraHours: DayTypeWeekday,
	}
}

// ComputeBookingPeriod turns a pickup/dropoff date-time pair into a billing
// period. Invalid clock strings and zero or negative spans yield the
// canonical empty period; rejecting such bookings is the caller's job.
func ComputeBookingPeriod(pickupDate time.Time, pickupTime string, dropoffDate time.Time, dropoffTime string) BookingPeriod {
	pickup, err := CombineDateTime(pickupDate, pickupTime)
	if err != nil {
		return emptyPeriod()
	}

	dropoff, err := CombineDateTime(dropoffDate, dropoffTime)
	if err != nil {
		return emptyPeriod()
	}

	return computePeriod(pickup, dropoff)
}

func computePeriod(pickup, dropoff time.Time) BookingPeriod {
	totalHours := dropoff.Sub(pickup).Hours()
	if totalHours <= 0 {
		return emptyPeriod()
	}

	fullDays := int(totalHours / hoursPerBlock)
	extraHoursRaw := math.Mod(totalHours, hoursPerBlock)

	// Tiered block counting: past 28 hours the trailing partial block is
	// rounded up to a full day; in (24, 28] it is billed as an hourly
	// surcharge instead; and every booking bills at least one block, so a
	// 3-hour rental still charges a full day.
	blocks := fullDays
	if totalHours > surchargeCutoffHours && extraHoursRaw > 0 {
		blocks = fullDays + 1
	}

	if blocks < 1 {
		blocks = 1
	}

	period := BookingPeriod{
		TotalHours:               totalHours,
		LastDayTypeForExtraHours: DayTypeWeekday,
	}

	cursor := pickup
	for range blocks {
		if IsWeekendBlockStart(cursor) {
			period.WeekendCount++
		} else {
			period.WeekdayCount++
		}

		cursor = cursor.Add(hoursPerBlock * time.Hour)
	}

	// In the surcharge tier the leftover hours are priced by the block that
	// would start after the full days already counted.
	if totalHours > hoursPerBlock && totalHours <= surchargeCutoffHours && extraHoursRaw > 0 {
		if IsWeekendBlockStart(cursor) {
			period.LastDayTypeForExtraHours = DayTypeWeekend
		}
	}

	// ExtraHours is display-facing: populated for every multi-block booking,
	// even past the surcharge cutoff where it no longer enters billing.
	if totalHours > hoursPerBlock {
		period.ExtraHours = extraHoursRaw
	}

	period.Duration = formatDuration(fullDays, period.ExtraHours)

	return period
}

func formatDuration(days int, extraHours float64) string {
	hours := int(math.Ceil(extraHours))
	if hours > 0 {
		return fmt.Sprintf("%d days %d hours", days, hours)
	}

	return fmt.Sprintf("%d days", days)
}
