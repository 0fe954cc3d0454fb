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

type MotorcycleHandler struct {
	motorcycleService service.MotorcycleService
	validator         *validator.Validate
}

func NewMotorcycleHandler(motorcycleService service.MotorcycleService) *MotorcycleHandler {
	return &MotorcycleHandler{
		motorcycleService: motorcycleService,
		validator:         validator.New(),
	}
}

func (h *MotorcycleHandler) CreateMotorcycle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateMotorcycleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid motorcycle input")

			return
		}

		logger.Info("Attempting to create motorcycle",
			slog.String("make", req.Make),
			slog.String("model", req.Model))

		motorcycle, err := h.motorcycleService.CreateMotorcycle(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create motorcycle", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Motorcycle created successfully", slog.String("motorcycleId", motorcycle.ID.String()))
		response.Success(w, http.StatusCreated, motorcycle)
	}
}

func (h *MotorcycleHandler) GetMotorcycle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			logger.Warn("Invalid motorcycle ID in path", slog.String("id", r.PathValue("id")))
			response.Error(w, errors.BadRequestError("Invalid motorcycle ID"))

			return
		}

		motorcycle, err := h.motorcycleService.GetMotorcycleByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to fetch motorcycle", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, motorcycle)
	}
}

func (h *MotorcycleHandler) UpdateMotorcycle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid motorcycle ID"))

			return
		}

		var req models.UpdateMotorcycleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid motorcycle update input")

			return
		}

		motorcycle, err := h.motorcycleService.UpdateMotorcycle(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update motorcycle", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Motorcycle updated successfully", slog.String("motorcycleId", id.String()))
		response.Success(w, http.StatusOK, motorcycle)
	}
}

func (h *MotorcycleHandler) ListMotorcycles() http.HandlerFunc {
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

		motorcycles, total, err := h.motorcycleService.ListMotorcycles(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list motorcycles", slog.Any("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Items:      motorcycles,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: int64((total + pageSize - 1) / pageSize),
		})
	}
}
