package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/api/middleware"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	service "github.com/rideon-labs/motorcycle-rental-platform/internal/services"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to fetch cart", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart mutation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		motorcycleID, err := uuid.Parse(r.PathValue("motorcycleId"))
		if err != nil {
			logger.Warn("Invalid motorcycle ID in path", slog.String("motorcycleId", r.PathValue("motorcycleId")))
			response.Error(w, errors.BadRequestError("Invalid motorcycle ID"))

			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid cart item input")

			return
		}

		logger.Info("Attempting to add item to cart", slog.String("motorcycleId", motorcycleID.String()))

		cart, err := h.cartService.AddOrUpdateItem(r.Context(), claims.UserID, motorcycleID, &req)
		if err != nil {
			logger.Error("Failed to add item to cart", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart", slog.String("cartId", cart.ID.String()))
		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart mutation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		motorcycleID, err := uuid.Parse(r.PathValue("motorcycleId"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid motorcycle ID"))

			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), claims.UserID, motorcycleID)
		if err != nil {
			logger.Error("Failed to remove item from cart", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized cart mutation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) ApplyCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized coupon application attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		var req models.ApplyCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid coupon input")

			return
		}

		logger.Info("Attempting to apply coupon")

		cart, err := h.cartService.ApplyCoupon(r.Context(), claims.UserID, req.Code)
		if err != nil {
			logger.Error("Failed to apply coupon", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Coupon applied successfully")
		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized coupon removal attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		cart, err := h.cartService.RemoveCoupon(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to remove coupon", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
