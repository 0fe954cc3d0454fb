package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/cache"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	repository "github.com/rideon-labs/motorcycle-rental-platform/internal/repositories"
)

type MotorcycleService interface {
	CreateMotorcycle(ctx context.Context, req *models.CreateMotorcycleRequest) (*models.Motorcycle, error)
	GetMotorcycleByID(ctx context.Context, id uuid.UUID) (*models.Motorcycle, error)
	UpdateMotorcycle(ctx context.Context, id uuid.UUID, req *models.UpdateMotorcycleRequest) (*models.Motorcycle, error)
	ListMotorcycles(ctx context.Context, page, pageSize int) ([]*models.Motorcycle, int, error)
}

type motorcycleService struct {
	repo      repository.MotorcycleRepository
	cache     cache.Cache
	sanitizer *bluemonday.Policy
}

func NewMotorcycleService(repo repository.MotorcycleRepository, cache cache.Cache) MotorcycleService {
	return &motorcycleService{
		repo:      repo,
		cache:     cache,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *motorcycleService) CreateMotorcycle(ctx context.Context, req *models.CreateMotorcycleRequest) (*models.Motorcycle, error) {
	motorcycle := &models.Motorcycle{
		ID:                uuid.New(),
		Make:              req.Make,
		Model:             req.Model,
		Description:       s.sanitizer.Sanitize(req.Description),
		PricePerDayMonThu: req.PricePerDayMonThu,
		PricePerDayFriSun: req.PricePerDayFriSun,
		SecurityDeposit:   req.SecurityDeposit,
		AvailableInCities: req.AvailableInCities,
	}

	if err := s.repo.CreateMotorcycle(ctx, motorcycle); err != nil {
		return nil, errors.DatabaseError("Failed to create motorcycle").WithError(err)
	}

	// Cache writes are best effort; the catalog row is the source of truth.
	_ = s.cache.Set(ctx, cache.Key(cache.MotorcycleKeyPrefix, motorcycle.ID.String()), motorcycle, 0)

	return motorcycle, nil
}

func (s *motorcycleService) GetMotorcycleByID(ctx context.Context, id uuid.UUID) (*models.Motorcycle, error) {
	key := cache.Key(cache.MotorcycleKeyPrefix, id.String())

	var cached models.Motorcycle
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	motorcycle, err := s.repo.GetMotorcycleByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Motorcycle not found").WithError(err)
	}

	_ = s.cache.Set(ctx, key, motorcycle, 0)

	return motorcycle, nil
}

func (s *motorcycleService) UpdateMotorcycle(ctx context.Context, id uuid.UUID, req *models.UpdateMotorcycleRequest) (*models.Motorcycle, error) {
	motorcycle, err := s.repo.GetMotorcycleByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Motorcycle not found").WithError(err)
	}

	if req.Make != nil {
		motorcycle.Make = *req.Make
	}

	if req.Model != nil {
		motorcycle.Model = *req.Model
	}

	if req.Description != nil {
		motorcycle.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.PricePerDayMonThu != nil {
		motorcycle.PricePerDayMonThu = *req.PricePerDayMonThu
	}

	if req.PricePerDayFriSun != nil {
		motorcycle.PricePerDayFriSun = *req.PricePerDayFriSun
	}

	if req.SecurityDeposit != nil {
		motorcycle.SecurityDeposit = *req.SecurityDeposit
	}

	if req.AvailableInCities != nil {
		motorcycle.AvailableInCities = req.AvailableInCities
	}

	if err := s.repo.UpdateMotorcycle(ctx, motorcycle); err != nil {
		return nil, errors.DatabaseError("Failed to update motorcycle").WithError(err)
	}

	// Stale rates would silently misprice carts, so drop the entry rather
	// than re-populate it here.
	_ = s.cache.Delete(ctx, cache.Key(cache.MotorcycleKeyPrefix, id.String()))

	return motorcycle, nil
}

// page means "page number requested", pageSize the number of rows per page.
func (s *motorcycleService) ListMotorcycles(ctx context.Context, page, pageSize int) ([]*models.Motorcycle, int, error) {
	motorcycles, total, err := s.repo.ListMotorcycles(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch motorcycles").WithError(err)
	}

	return motorcycles, total, nil
}
