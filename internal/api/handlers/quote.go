package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/api/middleware"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/pricing"
	service "github.com/rideon-labs/motorcycle-rental-platform/internal/services"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils/response"
)

type QuoteHandler struct {
	motorcycleService service.MotorcycleService
	validator         *validator.Validate
}

func NewQuoteHandler(motorcycleService service.MotorcycleService) *QuoteHandler {
	return &QuoteHandler{
		motorcycleService: motorcycleService,
		validator:         validator.New(),
	}
}

// Quote prices a booking window without creating or touching a cart. Rates
// come from the catalog when a motorcycle ID is given, otherwise from the
// inline weekday/weekend rates.
func (h *QuoteHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.QuoteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quote input")

			return
		}

		var weekdayRate, weekendRate float64

		switch {
		case req.MotorcycleID != nil:
			motorcycle, err := h.motorcycleService.GetMotorcycleByID(r.Context(), *req.MotorcycleID)
			if err != nil {
				logger.Error("Failed to fetch motorcycle for quote", slog.Any("error", err.Error()))
				response.Error(w, err)

				return
			}

			weekdayRate = motorcycle.PricePerDayMonThu
			weekendRate = motorcycle.PricePerDayFriSun
		case req.WeekdayRate != nil && req.WeekendRate != nil:
			weekdayRate = *req.WeekdayRate
			weekendRate = *req.WeekendRate
		default:
			response.Error(w, errors.BadRequestError("Either motorcycle_id or both weekday_rate and weekend_rate are required"))

			return
		}

		period := pricing.ComputeBookingPeriod(req.PickupDate, req.PickupTime, req.DropoffDate, req.DropoffTime)
		if period.TotalHours < pricing.MinBookingHours {
			response.Error(w, errors.InvalidBookingWindowError("Booking must be at least 6 hours"))

			return
		}

		rentPerUnit := pricing.CalculateRent(period, weekdayRate, weekendRate)
		totalRent := rentPerUnit * float64(req.Quantity)

		quote := &models.QuoteResponse{
			TotalHours:               period.TotalHours,
			Duration:                 period.Duration,
			WeekdayCount:             period.WeekdayCount,
			WeekendCount:             period.WeekendCount,
			ExtraHours:               period.ExtraHours,
			LastDayTypeForExtraHours: string(period.LastDayTypeForExtraHours),
			WeekdayRate:              weekdayRate,
			WeekendRate:              weekendRate,
			ExtraHourSurcharge:       pricing.ExtraHourSurcharge(period, weekdayRate, weekendRate),
			RentPerUnit:              rentPerUnit,
			Quantity:                 req.Quantity,
			TotalRent:                totalRent,
			TaxPercentage:            pricing.TaxRatePercent,
			TotalTax:                 totalRent * pricing.TaxRatePercent / 100,
		}

		logger.Info("Quote computed",
			slog.Float64("totalHours", period.TotalHours),
			slog.Float64("totalRent", totalRent))
		response.Success(w, http.StatusOK, quote)
	}
}
