package service

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	repository "github.com/rideon-labs/motorcycle-rental-platform/internal/repositories"
)

const pqUniqueViolation = "23505"

type PromoCodeService interface {
	CreatePromoCode(ctx context.Context, req *models.CreatePromoCodeRequest) (*models.PromoCode, error)
	GetPromoCodeByID(ctx context.Context, id uuid.UUID) (*models.PromoCode, error)
	ListPromoCodes(ctx context.Context, page, pageSize int) ([]*models.PromoCode, int, error)
	UpdatePromoCode(ctx context.Context, id uuid.UUID, req *models.UpdatePromoCodeRequest) (*models.PromoCode, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*models.PromoCode, error)
	DeletePromoCode(ctx context.Context, id uuid.UUID) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type promoCodeService struct {
	repo repository.PromoCodeRepository
}

func NewPromoCodeService(repo repository.PromoCodeRepository) PromoCodeService {
	return &promoCodeService{repo: repo}
}

// validatePromoCodeConstraints enforces the cross-field rules that struct tags
// cannot express: the date window must be ordered, percentage discounts cannot
// exceed 100, and a flat coupon's minimum cart value must cover the discount
// so a cart can never be discounted below its eligibility floor.
func validatePromoCodeConstraints(p *models.PromoCode) error {
	if !p.ExpiryDate.After(p.StartDate) {
		return errors.BadRequestError("Expiry date must be after start date")
	}

	switch p.Type {
	case models.PromoCodeTypePercentage:
		if p.DiscountValue > 100 {
			return errors.BadRequestError("Percentage discount cannot exceed 100")
		}
	case models.PromoCodeTypeFlat:
		if p.MinimumCartValue < p.DiscountValue {
			return errors.BadRequestError("Minimum cart value must be at least the flat discount value")
		}
	}

	return nil
}

func (s *promoCodeService) CreatePromoCode(ctx context.Context, req *models.CreatePromoCodeRequest) (*models.PromoCode, error) {
	promoCode := &models.PromoCode{
		ID:               uuid.New(),
		Name:             req.Name,
		Code:             strings.ToUpper(strings.TrimSpace(req.Code)),
		Type:             req.Type,
		DiscountValue:    req.DiscountValue,
		MinimumCartValue: req.MinimumCartValue,
		StartDate:        req.StartDate,
		ExpiryDate:       req.ExpiryDate,
		IsActive:         true,
	}

	if err := validatePromoCodeConstraints(promoCode); err != nil {
		return nil, err
	}

	if err := s.repo.CreatePromoCode(ctx, promoCode); err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, errors.DuplicateEntryError("A promo code with this code already exists").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to create promo code").WithError(err)
	}

	return promoCode, nil
}

func (s *promoCodeService) GetPromoCodeByID(ctx context.Context, id uuid.UUID) (*models.PromoCode, error) {
	promoCode, err := s.repo.GetPromoCodeByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Promo code not found").WithError(err)
	}

	return promoCode, nil
}

func (s *promoCodeService) ListPromoCodes(ctx context.Context, page, pageSize int) ([]*models.PromoCode, int, error) {
	promoCodes, total, err := s.repo.ListPromoCodes(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch promo codes").WithError(err)
	}

	return promoCodes, total, nil
}

func (s *promoCodeService) UpdatePromoCode(ctx context.Context, id uuid.UUID, req *models.UpdatePromoCodeRequest) (*models.PromoCode, error) {
	promoCode, err := s.repo.GetPromoCodeByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Promo code not found").WithError(err)
	}

	if req.Name != nil {
		promoCode.Name = *req.Name
	}

	if req.Code != nil {
		promoCode.Code = strings.ToUpper(strings.TrimSpace(*req.Code))
	}

	if req.Type != nil {
		promoCode.Type = *req.Type
	}

	if req.DiscountValue != nil {
		promoCode.DiscountValue = *req.DiscountValue
	}

	if req.MinimumCartValue != nil {
		promoCode.MinimumCartValue = *req.MinimumCartValue
	}

	if req.StartDate != nil {
		promoCode.StartDate = *req.StartDate
	}

	if req.ExpiryDate != nil {
		promoCode.ExpiryDate = *req.ExpiryDate
	}

	// Constraints hold against the merged result, not the patch alone.
	if err := validatePromoCodeConstraints(promoCode); err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePromoCode(ctx, promoCode); err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, errors.DuplicateEntryError("A promo code with this code already exists").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update promo code").WithError(err)
	}

	return promoCode, nil
}

func (s *promoCodeService) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*models.PromoCode, error) {
	promoCode, err := s.repo.UpdateActiveStatus(ctx, id, isActive)
	if err != nil {
		return nil, errors.NotFoundError("Promo code not found").WithError(err)
	}

	return promoCode, nil
}

func (s *promoCodeService) DeletePromoCode(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeletePromoCode(ctx, id); err != nil {
		return errors.NotFoundError("Promo code not found").WithError(err)
	}

	return nil
}

func (s *promoCodeService) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	affected, err := s.repo.DeactivateExpired(ctx, now)
	if err != nil {
		return 0, errors.DatabaseError("Failed to deactivate expired promo codes").WithError(err)
	}

	return affected, nil
}
