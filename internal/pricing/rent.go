package pricing

import "math"

// CalculateRent prices a booking period against the weekday/weekend daily
// rates for a single unit. Three tiers:
//
//   - up to 24h: exactly one day, at the rate of the sole block;
//   - (24h, 28h]: full blocks plus an extra-hour surcharge;
//   - past 28h: full blocks only, the trailing partial block having already
//     been absorbed into a full day by the period calculator.
func CalculateRent(period BookingPeriod, weekdayRate, weekendRate float64) float64 {
	if period.TotalHours <= 0 {
		return 0
	}

	if period.TotalHours <= hoursPerBlock {
		if period.WeekdayCount > 0 {
			return weekdayRate
		}

		return weekendRate
	}

	rent := float64(period.WeekdayCount)*weekdayRate + float64(period.WeekendCount)*weekendRate

	return rent + ExtraHourSurcharge(period, weekdayRate, weekendRate)
}

// ExtraHourSurcharge is the hourly charge for the trailing partial block,
// billed only in the (24h, 28h] tier: each started extra hour costs
// ExtraHourRateFraction of the daily rate selected by the trailing block's
// tariff.
func ExtraHourSurcharge(period BookingPeriod, weekdayRate, weekendRate float64) float64 {
	if period.TotalHours <= hoursPerBlock || period.TotalHours > surchargeCutoffHours {
		return 0
	}

	extraInBlock := period.TotalHours - math.Floor(period.TotalHours/hoursPerBlock)*hoursPerBlock
	if extraInBlock <= 0 {
		return 0
	}

	rate := weekdayRate
	if period.LastDayTypeForExtraHours == DayTypeWeekend {
		rate = weekendRate
	}

	return math.Ceil(extraInBlock) * (rate * ExtraHourRateFraction)
}
