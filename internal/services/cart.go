package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/pricing"
	repository "github.com/rideon-labs/motorcycle-rental-platform/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
	AddOrUpdateItem(ctx context.Context, customerID, motorcycleID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, customerID, motorcycleID uuid.UUID) (*models.Cart, error)
	ClearCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
	ApplyCoupon(ctx context.Context, customerID uuid.UUID, code string) (*models.Cart, error)
	RemoveCoupon(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
}

type cartService struct {
	repo        repository.CartRepository
	promoRepo   repository.PromoCodeRepository
	motorcycles MotorcycleService
}

func NewCartService(repo repository.CartRepository, promoRepo repository.PromoCodeRepository, motorcycles MotorcycleService) CartService {
	return &cartService{repo: repo, promoRepo: promoRepo, motorcycles: motorcycles}
}

// GetCart returns the customer's cart fully priced. A customer with no stored
// cart gets an empty one, not an error. All monetary fields are recomputed
// from the catalog on every read; nothing priced is trusted from storage, so
// a rate change between reads is reflected immediately.
func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetCartByCustomerID(ctx, customerID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return emptyCart(customerID), nil
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if err := s.priceCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *cartService) AddOrUpdateItem(ctx context.Context, customerID, motorcycleID uuid.UUID, req *models.AddCartItemRequest) (*models.Cart, error) {
	motorcycle, err := s.motorcycles.GetMotorcycleByID(ctx, motorcycleID)
	if err != nil {
		return nil, err
	}

	if motorcycle.AvailableQuantityAt(req.PickupLocation) < req.Quantity {
		return nil, errors.InsufficientInventoryError(
			fmt.Sprintf("Only %d unit(s) of this motorcycle available at %s",
				motorcycle.AvailableQuantityAt(req.PickupLocation), req.PickupLocation))
	}

	period := pricing.ComputeBookingPeriod(req.PickupDate, req.PickupTime, req.DropoffDate, req.DropoffTime)
	if period.TotalHours < pricing.MinBookingHours {
		return nil, errors.InvalidBookingWindowError(
			fmt.Sprintf("Booking must span at least %.0f hours", pricing.MinBookingHours))
	}

	item := models.CartItem{
		MotorcycleID:    motorcycleID,
		Quantity:        req.Quantity,
		PickupDate:      req.PickupDate,
		DropoffDate:     req.DropoffDate,
		PickupTime:      req.PickupTime,
		DropoffTime:     req.DropoffTime,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	}

	cart, err := s.repo.GetCartByCustomerID(ctx, customerID)
	if err != nil {
		if !stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
		}

		cart = &models.Cart{
			ID:         uuid.New(),
			CustomerID: customerID,
			Items:      []models.CartItem{item},
		}

		if err := s.repo.CreateCart(ctx, cart); err != nil {
			return nil, errors.DatabaseError("Failed to create cart").WithError(err)
		}

		if err := s.priceCart(ctx, cart); err != nil {
			return nil, err
		}

		return cart, nil
	}

	if idx := cart.FindItem(motorcycleID); idx >= 0 {
		cart.Items[idx] = item
	} else {
		cart.Items = append(cart.Items, item)
	}

	// Any item mutation detaches the coupon; the customer must re-apply it
	// against the new cart value.
	cart.CouponID = nil

	if err := s.repo.UpdateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	if err := s.priceCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, customerID, motorcycleID uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetCartByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	idx := cart.FindItem(motorcycleID)
	if idx < 0 {
		return nil, errors.BadRequestError("Item not found in the cart")
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.CouponID = nil

	if err := s.repo.UpdateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	if err := s.priceCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetCartByCustomerID(ctx, customerID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return emptyCart(customerID), nil
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	cart.Items = []models.CartItem{}
	cart.CouponID = nil

	if err := s.repo.UpdateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	if err := s.priceCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *cartService) ApplyCoupon(ctx context.Context, customerID uuid.UUID, code string) (*models.Cart, error) {
	cart, err := s.repo.GetCartByCustomerID(ctx, customerID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.CouponIneligibleError("Cannot apply a coupon to an empty cart")
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(cart.Items) == 0 {
		return nil, errors.CouponIneligibleError("Cannot apply a coupon to an empty cart")
	}

	coupon, err := s.promoRepo.GetPromoCodeByCode(ctx, code)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Promo code not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch promo code").WithError(err)
	}

	if !coupon.IsCurrentlyValid(time.Now()) {
		return nil, errors.CouponIneligibleError("This promo code is not currently active")
	}

	if cart.CouponID != nil && *cart.CouponID == coupon.ID {
		return nil, errors.CouponIneligibleError("This promo code is already applied to the cart")
	}

	// The minimum-value gate runs against the pre-discount cart total.
	preDiscountTotal, err := s.priceItems(ctx, cart)
	if err != nil {
		return nil, err
	}

	if preDiscountTotal < coupon.MinimumCartValue {
		return nil, errors.CouponIneligibleError(
			fmt.Sprintf("Cart total must be at least %.2f to use this promo code", coupon.MinimumCartValue))
	}

	cart.CouponID = &coupon.ID
	if err := s.repo.SetCoupon(ctx, cart.ID, cart.CouponID); err != nil {
		return nil, errors.DatabaseError("Failed to apply promo code").WithError(err)
	}

	cart.Coupon = coupon
	finalizeCartTotals(cart)

	return cart, nil
}

func (s *cartService) RemoveCoupon(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetCartByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	cart.CouponID = nil
	if err := s.repo.SetCoupon(ctx, cart.ID, nil); err != nil {
		return nil, errors.DatabaseError("Failed to remove promo code").WithError(err)
	}

	if err := s.priceCart(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// priceCart recomputes every derived figure on the cart: per-item periods and
// rents from the catalog, the coupon (revalidated, and detached when it no
// longer qualifies) and the aggregate totals.
func (s *cartService) priceCart(ctx context.Context, cart *models.Cart) error {
	preDiscountTotal, err := s.priceItems(ctx, cart)
	if err != nil {
		return err
	}

	if cart.CouponID != nil {
		coupon, err := s.promoRepo.GetPromoCodeByID(ctx, *cart.CouponID)
		switch {
		case err != nil && stderrors.Is(err, sql.ErrNoRows):
			// Coupon deleted since it was applied; drop the weak reference.
			coupon = nil
		case err != nil:
			return errors.DatabaseError("Failed to fetch promo code").WithError(err)
		case !coupon.IsCurrentlyValid(time.Now()) || preDiscountTotal < coupon.MinimumCartValue:
			coupon = nil
		}

		if coupon == nil {
			cart.CouponID = nil

			if err := s.repo.SetCoupon(ctx, cart.ID, nil); err != nil {
				return errors.DatabaseError("Failed to detach promo code").WithError(err)
			}
		}

		cart.Coupon = coupon
	} else {
		cart.Coupon = nil
	}

	finalizeCartTotals(cart)

	return nil
}

// priceItems fills in the period, rent and deposit figures for every line and
// returns the pre-discount cart total (rent + tax + deposits), the figure the
// coupon minimum is gated on.
func (s *cartService) priceItems(ctx context.Context, cart *models.Cart) (float64, error) {
	rentTotal := 0.0
	depositTotal := 0.0

	for i := range cart.Items {
		item := &cart.Items[i]

		motorcycle, err := s.motorcycles.GetMotorcycleByID(ctx, item.MotorcycleID)
		if err != nil {
			return 0, err
		}

		period := pricing.ComputeBookingPeriod(item.PickupDate, item.PickupTime, item.DropoffDate, item.DropoffTime)

		item.Duration = period.Duration
		item.TotalHours = period.TotalHours
		item.RentAmount = pricing.CalculateRent(period, motorcycle.PricePerDayMonThu, motorcycle.PricePerDayFriSun) * float64(item.Quantity)
		item.TaxPercentage = pricing.TaxRatePercent

		rentTotal += item.RentAmount
		depositTotal += motorcycle.SecurityDeposit * float64(item.Quantity)
	}

	cart.SecurityDepositTotal = depositTotal

	return rentTotal + pricing.PreDiscountTax(cart.Items) + depositTotal, nil
}

// finalizeCartTotals runs the discount allocation and sets CartTotal, the
// pre-discount reference figure shown alongside the discounted totals.
func finalizeCartTotals(cart *models.Cart) {
	pricing.ApplyDiscountsAndCalculateTotals(cart)
	cart.CartTotal = cart.RentTotal + pricing.PreDiscountTax(cart.Items) + cart.SecurityDepositTotal
}

func emptyCart(customerID uuid.UUID) *models.Cart {
	cart := &models.Cart{
		CustomerID: customerID,
		Items:      []models.CartItem{},
	}
	finalizeCartTotals(cart)

	return cart
}
