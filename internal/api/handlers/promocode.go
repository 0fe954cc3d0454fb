package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/api/middleware"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	service "github.com/rideon-labs/motorcycle-rental-platform/internal/services"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils/response"
)

type PromoCodeHandler struct {
	promoCodeService service.PromoCodeService
	validator        *validator.Validate
}

func NewPromoCodeHandler(promoCodeService service.PromoCodeService) *PromoCodeHandler {
	return &PromoCodeHandler{
		promoCodeService: promoCodeService,
		validator:        validator.New(),
	}
}

func (h *PromoCodeHandler) CreatePromoCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreatePromoCodeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid promo code input")

			return
		}

		logger.Info("Attempting to create promo code", slog.String("code", req.Code))

		promoCode, err := h.promoCodeService.CreatePromoCode(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create promo code", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Promo code created successfully", slog.String("promoCodeId", promoCode.ID.String()))
		response.Success(w, http.StatusCreated, promoCode)
	}
}

func (h *PromoCodeHandler) GetPromoCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			logger.Warn("Invalid promo code ID in path", slog.String("id", r.PathValue("id")))
			response.Error(w, errors.BadRequestError("Invalid promo code ID"))

			return
		}

		promoCode, err := h.promoCodeService.GetPromoCodeByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to fetch promo code", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, promoCode)
	}
}

func (h *PromoCodeHandler) ListPromoCodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 10
		}

		logger = logger.With(slog.Int("page", page), slog.Int("pageSize", pageSize))

		promoCodes, total, err := h.promoCodeService.ListPromoCodes(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list promo codes", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Items:      promoCodes,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: int64((total + pageSize - 1) / pageSize),
		})
	}
}

func (h *PromoCodeHandler) UpdatePromoCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid promo code ID"))

			return
		}

		var req models.UpdatePromoCodeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid promo code update input")

			return
		}

		promoCode, err := h.promoCodeService.UpdatePromoCode(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update promo code", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Promo code updated successfully", slog.String("promoCodeId", id.String()))
		response.Success(w, http.StatusOK, promoCode)
	}
}

func (h *PromoCodeHandler) UpdatePromoCodeStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid promo code ID"))

			return
		}

		var req models.UpdatePromoCodeStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid promo code status input")

			return
		}

		promoCode, err := h.promoCodeService.UpdateStatus(r.Context(), id, *req.IsActive)
		if err != nil {
			logger.Error("Failed to update promo code status", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Promo code status updated",
			slog.String("promoCodeId", id.String()),
			slog.Bool("isActive", promoCode.IsActive))
		response.Success(w, http.StatusOK, promoCode)
	}
}

func (h *PromoCodeHandler) DeletePromoCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid promo code ID"))

			return
		}

		if err := h.promoCodeService.DeletePromoCode(r.Context(), id); err != nil {
			logger.Error("Failed to delete promo code", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Promo code deleted", slog.String("promoCodeId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Promo code deleted successfully"})
	}
}
