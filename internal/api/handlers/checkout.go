package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/api/middleware"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	service "github.com/rideon-labs/motorcycle-rental-platform/internal/services"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")

			return
		}

		logger.Info("Attempting checkout")

		result, err := h.checkoutService.Checkout(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Checkout initiated", slog.String("paymentIntentId", result.PaymentIntentID))
		response.Success(w, http.StatusOK, result)
	}
}
