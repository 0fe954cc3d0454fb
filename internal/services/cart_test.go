package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	repoMocks "github.com/rideon-labs/motorcycle-rental-platform/internal/repositories/mocks"
	service "github.com/rideon-labs/motorcycle-rental-platform/internal/services"
	serviceMocks "github.com/rideon-labs/motorcycle-rental-platform/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartServiceTest() (*repoMocks.CartRepository, *repoMocks.PromoCodeRepository, *serviceMocks.MotorcycleService, service.CartService) {
	mockRepo := new(repoMocks.CartRepository)
	mockPromoRepo := new(repoMocks.PromoCodeRepository)
	mockMotorcycles := new(serviceMocks.MotorcycleService)
	cartService := service.NewCartService(mockRepo, mockPromoRepo, mockMotorcycles)

	return mockRepo, mockPromoRepo, mockMotorcycles, cartService
}

func testMotorcycle() *models.Motorcycle {
	return &models.Motorcycle{
		ID:                uuid.New(),
		Make:              "Royal Enfield",
		Model:             "Himalayan 450",
		PricePerDayMonThu: 1000,
		PricePerDayFriSun: 1500,
		SecurityDeposit:   500,
		AvailableInCities: []models.BranchAvailability{
			{Branch: "Bangalore", Quantity: 3},
		},
	}
}

// twoWeekdayItem books Mon 10:00 to Wed 10:00, exactly two weekday blocks.
func twoWeekdayItem(motorcycleID uuid.UUID, quantity int) models.CartItem {
	return models.CartItem{
		MotorcycleID:    motorcycleID,
		Quantity:        quantity,
		PickupDate:      time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		DropoffDate:     time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		PickupTime:      "10:00",
		DropoffTime:     "10:00",
		PickupLocation:  "Bangalore",
		DropoffLocation: "Bangalore",
	}
}

func activeFlatCoupon(value, minimum float64) *models.PromoCode {
	now := time.Now()

	return &models.PromoCode{
		ID:               uuid.New(),
		Name:             "Flat coupon",
		Code:             "FLAT500",
		Type:             models.PromoCodeTypeFlat,
		DiscountValue:    value,
		MinimumCartValue: minimum,
		StartDate:        now.Add(-24 * time.Hour),
		ExpiryDate:       now.Add(24 * time.Hour),
		IsActive:         true,
	}
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("Success - No Stored Cart Yields Empty Cart", func(t *testing.T) {
		// Arrange
		mockRepo, _, _, cartService := setupCartServiceTest()
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(nil, sql.ErrNoRows).Once()

		// Act
		cart, err := cartService.GetCart(ctx, customerID)

		// Assert
		require.NoError(t, err, "A missing cart is an empty cart, not an error")
		require.NotNil(t, cart)
		assert.Equal(t, customerID, cart.CustomerID)
		assert.Empty(t, cart.Items)
		assert.Zero(t, cart.CartTotal)
		assert.Zero(t, cart.DiscountedTotal)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Prices Items From Catalog", func(t *testing.T) {
		// Arrange
		mockRepo, _, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		storedCart := &models.Cart{
			ID:         uuid.New(),
			CustomerID: customerID,
			Items:      []models.CartItem{twoWeekdayItem(motorcycle.ID, 1)},
		}

		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()

		// Act
		cart, err := cartService.GetCart(ctx, customerID)

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.InDelta(t, 2000.0, cart.Items[0].RentAmount, 1e-9, "Two weekday blocks at 1000")
		assert.InDelta(t, 48.0, cart.Items[0].TotalHours, 1e-9)
		assert.Equal(t, "2 days", cart.Items[0].Duration)
		assert.InDelta(t, 18.0, cart.Items[0].TaxPercentage, 1e-9)
		assert.InDelta(t, 2000.0, cart.RentTotal, 1e-9)
		assert.InDelta(t, 360.0, cart.TotalTax, 1e-9)
		assert.InDelta(t, 500.0, cart.SecurityDepositTotal, 1e-9)
		assert.InDelta(t, 2860.0, cart.CartTotal, 1e-9)
		assert.InDelta(t, 2860.0, cart.DiscountedTotal, 1e-9, "No coupon, discounted equals pre-discount")
		mockRepo.AssertExpectations(t)
		mockMotorcycles.AssertExpectations(t)
	})

	t.Run("Success - Valid Stored Coupon Is Honoured", func(t *testing.T) {
		// Arrange
		mockRepo, mockPromoRepo, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		coupon := activeFlatCoupon(500, 1000)
		storedCart := &models.Cart{
			ID:         uuid.New(),
			CustomerID: customerID,
			Items:      []models.CartItem{twoWeekdayItem(motorcycle.ID, 1)},
			CouponID:   &coupon.ID,
		}

		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()
		mockPromoRepo.On("GetPromoCodeByID", mock.Anything, coupon.ID).Return(coupon, nil).Once()

		// Act
		cart, err := cartService.GetCart(ctx, customerID)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, cart.Coupon)
		assert.InDelta(t, 1500.0, cart.Items[0].DiscountedRentAmount, 1e-9)
		assert.InDelta(t, 270.0, cart.TotalTax, 1e-9, "Tax on the discounted amount")
		assert.InDelta(t, 1770.0, cart.DiscountedRentTotal, 1e-9)
		assert.InDelta(t, 2270.0, cart.DiscountedTotal, 1e-9)
		assert.InDelta(t, 2860.0, cart.CartTotal, 1e-9, "Pre-discount reference total is unchanged")
		mockRepo.AssertExpectations(t)
		mockPromoRepo.AssertExpectations(t)
	})

	t.Run("Success - Ineligible Stored Coupon Is Detached", func(t *testing.T) {
		// Arrange
		mockRepo, mockPromoRepo, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		coupon := activeFlatCoupon(500, 1000)
		coupon.IsActive = false
		storedCart := &models.Cart{
			ID:         uuid.New(),
			CustomerID: customerID,
			Items:      []models.CartItem{twoWeekdayItem(motorcycle.ID, 1)},
			CouponID:   &coupon.ID,
		}

		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()
		mockPromoRepo.On("GetPromoCodeByID", mock.Anything, coupon.ID).Return(coupon, nil).Once()
		mockRepo.On("SetCoupon", mock.Anything, storedCart.ID, (*uuid.UUID)(nil)).Return(nil).Once()

		// Act
		cart, err := cartService.GetCart(ctx, customerID)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, cart.Coupon, "Deactivated coupon must not be honoured")
		assert.Nil(t, cart.CouponID, "Stored reference is cleared")
		assert.InDelta(t, 2860.0, cart.DiscountedTotal, 1e-9)
		mockRepo.AssertExpectations(t)
		mockPromoRepo.AssertExpectations(t)
	})

	t.Run("Success - Deleted Coupon Reference Is Cleared", func(t *testing.T) {
		// Arrange
		mockRepo, mockPromoRepo, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		couponID := uuid.New()
		storedCart := &models.Cart{
			ID:         uuid.New(),
			CustomerID: customerID,
			Items:      []models.CartItem{twoWeekdayItem(motorcycle.ID, 1)},
			CouponID:   &couponID,
		}

		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()
		mockPromoRepo.On("GetPromoCodeByID", mock.Anything, couponID).Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("SetCoupon", mock.Anything, storedCart.ID, (*uuid.UUID)(nil)).Return(nil).Once()

		// Act
		cart, err := cartService.GetCart(ctx, customerID)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, cart.Coupon)
		assert.Nil(t, cart.CouponID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo, _, _, cartService := setupCartServiceTest()
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(nil, errors.New("connection reset")).Once()

		// Act
		cart, err := cartService.GetCart(ctx, customerID)

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestAddOrUpdateItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	req := &models.AddCartItemRequest{
		Quantity:        1,
		PickupDate:      time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		DropoffDate:     time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		PickupTime:      "10:00",
		DropoffTime:     "10:00",
		PickupLocation:  "Bangalore",
		DropoffLocation: "Bangalore",
	}

	t.Run("Failure - Motorcycle Not Found", func(t *testing.T) {
		// Arrange
		_, _, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycleID := uuid.New()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycleID).
			Return(nil, appErrors.NotFoundError("Motorcycle not found")).Once()

		// Act
		cart, err := cartService.AddOrUpdateItem(ctx, customerID, motorcycleID, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockMotorcycles.AssertExpectations(t)
	})

	t.Run("Failure - Insufficient Inventory", func(t *testing.T) {
		// Arrange
		_, _, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()

		bigReq := *req
		bigReq.Quantity = 5

		// Act
		cart, err := cartService.AddOrUpdateItem(ctx, customerID, motorcycle.ID, &bigReq)

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInsufficientInventory, appErr.Code)
		mockMotorcycles.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Branch Has Zero Stock", func(t *testing.T) {
		// Arrange
		_, _, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()

		elsewhereReq := *req
		elsewhereReq.PickupLocation = "Pune"

		// Act
		cart, err := cartService.AddOrUpdateItem(ctx, customerID, motorcycle.ID, &elsewhereReq)

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInsufficientInventory, appErr.Code)
	})

	t.Run("Failure - Booking Below Minimum Hours", func(t *testing.T) {
		// Arrange
		_, _, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()

		shortReq := *req
		shortReq.DropoffDate = shortReq.PickupDate
		shortReq.DropoffTime = "13:00" // 3 hours

		// Act
		cart, err := cartService.AddOrUpdateItem(ctx, customerID, motorcycle.ID, &shortReq)

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeInvalidBookingWindow, appErr.Code)
	})

	t.Run("Success - Creates Cart On First Item", func(t *testing.T) {
		// Arrange
		mockRepo, _, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil)
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("CreateCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return c.CustomerID == customerID && len(c.Items) == 1 && c.Items[0].MotorcycleID == motorcycle.ID
		})).Return(nil).Once()

		// Act
		cart, err := cartService.AddOrUpdateItem(ctx, customerID, motorcycle.ID, req)

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.InDelta(t, 2000.0, cart.Items[0].RentAmount, 1e-9)
		assert.InDelta(t, 2860.0, cart.CartTotal, 1e-9)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Replaces Item And Detaches Coupon", func(t *testing.T) {
		// Arrange
		mockRepo, _, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		couponID := uuid.New()
		existing := twoWeekdayItem(motorcycle.ID, 2)
		storedCart := &models.Cart{
			ID:         uuid.New(),
			CustomerID: customerID,
			Items:      []models.CartItem{existing},
			CouponID:   &couponID,
		}

		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil)
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockRepo.On("UpdateCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return c.CouponID == nil && len(c.Items) == 1 && c.Items[0].Quantity == 1
		})).Return(nil).Once()

		// Act
		cart, err := cartService.AddOrUpdateItem(ctx, customerID, motorcycle.ID, req)

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Items, 1, "Same motorcycle replaces the line instead of appending")
		assert.Equal(t, 1, cart.Items[0].Quantity)
		assert.Nil(t, cart.CouponID, "Mutation detaches the coupon")
		assert.Nil(t, cart.Coupon)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Appends A Second Motorcycle", func(t *testing.T) {
		// Arrange
		mockRepo, _, mockMotorcycles, cartService := setupCartServiceTest()
		first := testMotorcycle()
		second := testMotorcycle()
		storedCart := &models.Cart{
			ID:         uuid.New(),
			CustomerID: customerID,
			Items:      []models.CartItem{twoWeekdayItem(first.ID, 1)},
		}

		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, first.ID).Return(first, nil)
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, second.ID).Return(second, nil)
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockRepo.On("UpdateCart", mock.Anything, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

		// Act
		cart, err := cartService.AddOrUpdateItem(ctx, customerID, second.ID, req)

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Items, 2)
		assert.Equal(t, first.ID, cart.Items[0].MotorcycleID, "Insertion order is preserved")
		assert.Equal(t, second.ID, cart.Items[1].MotorcycleID)
		assert.InDelta(t, 4000.0, cart.RentTotal, 1e-9)
		mockRepo.AssertExpectations(t)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("Failure - Item Not In Cart", func(t *testing.T) {
		// Arrange
		mockRepo, _, _, cartService := setupCartServiceTest()
		storedCart := &models.Cart{ID: uuid.New(), CustomerID: customerID, Items: []models.CartItem{}}
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()

		// Act
		cart, err := cartService.RemoveItem(ctx, customerID, uuid.New())

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Removes Line And Detaches Coupon", func(t *testing.T) {
		// Arrange
		mockRepo, _, mockMotorcycles, cartService := setupCartServiceTest()
		keep := testMotorcycle()
		drop := testMotorcycle()
		couponID := uuid.New()
		storedCart := &models.Cart{
			ID:         uuid.New(),
			CustomerID: customerID,
			Items:      []models.CartItem{twoWeekdayItem(keep.ID, 1), twoWeekdayItem(drop.ID, 1)},
			CouponID:   &couponID,
		}

		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockRepo.On("UpdateCart", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return c.CouponID == nil && len(c.Items) == 1 && c.Items[0].MotorcycleID == keep.ID
		})).Return(nil).Once()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, keep.ID).Return(keep, nil).Once()

		// Act
		cart, err := cartService.RemoveItem(ctx, customerID, drop.ID)

		// Assert
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, keep.ID, cart.Items[0].MotorcycleID)
		assert.Nil(t, cart.CouponID)
		mockRepo.AssertExpectations(t)
	})
}

func TestApplyCoupon(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		mockRepo, _, _, cartService := setupCartServiceTest()
		storedCart := &models.Cart{ID: uuid.New(), CustomerID: customerID, Items: []models.CartItem{}}
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()

		// Act
		cart, err := cartService.ApplyCoupon(ctx, customerID, "FLAT500")

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeCouponIneligible, appErr.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Code", func(t *testing.T) {
		// Arrange
		mockRepo, mockPromoRepo, _, cartService := setupCartServiceTest()
		motorcycleID := uuid.New()
		storedCart := &models.Cart{
			ID: uuid.New(), CustomerID: customerID,
			Items: []models.CartItem{twoWeekdayItem(motorcycleID, 1)},
		}
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockPromoRepo.On("GetPromoCodeByCode", mock.Anything, "MISSING").Return(nil, sql.ErrNoRows).Once()

		// Act
		cart, err := cartService.ApplyCoupon(ctx, customerID, "MISSING")

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockPromoRepo.AssertExpectations(t)
	})

	t.Run("Failure - Inactive Coupon", func(t *testing.T) {
		// Arrange
		mockRepo, mockPromoRepo, _, cartService := setupCartServiceTest()
		motorcycleID := uuid.New()
		coupon := activeFlatCoupon(500, 1000)
		coupon.IsActive = false
		storedCart := &models.Cart{
			ID: uuid.New(), CustomerID: customerID,
			Items: []models.CartItem{twoWeekdayItem(motorcycleID, 1)},
		}
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockPromoRepo.On("GetPromoCodeByCode", mock.Anything, coupon.Code).Return(coupon, nil).Once()

		// Act
		cart, err := cartService.ApplyCoupon(ctx, customerID, coupon.Code)

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeCouponIneligible, appErr.Code)
	})

	t.Run("Failure - Already Applied", func(t *testing.T) {
		// Arrange
		mockRepo, mockPromoRepo, _, cartService := setupCartServiceTest()
		motorcycleID := uuid.New()
		coupon := activeFlatCoupon(500, 1000)
		storedCart := &models.Cart{
			ID: uuid.New(), CustomerID: customerID,
			Items:    []models.CartItem{twoWeekdayItem(motorcycleID, 1)},
			CouponID: &coupon.ID,
		}
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockPromoRepo.On("GetPromoCodeByCode", mock.Anything, coupon.Code).Return(coupon, nil).Once()

		// Act
		cart, err := cartService.ApplyCoupon(ctx, customerID, coupon.Code)

		// Assert
		require.Error(t, err)
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeCouponIneligible, appErr.Code)
	})

	t.Run("Failure - Below Minimum Cart Value", func(t *testing.T) {
		// Arrange
		mockRepo, mockPromoRepo, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		coupon := activeFlatCoupon(500, 10000)
		storedCart := &models.Cart{
			ID: uuid.New(), CustomerID: customerID,
			Items: []models.CartItem{twoWeekdayItem(motorcycle.ID, 1)},
		}
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockPromoRepo.On("GetPromoCodeByCode", mock.Anything, coupon.Code).Return(coupon, nil).Once()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()

		// Act
		cart, err := cartService.ApplyCoupon(ctx, customerID, coupon.Code)

		// Assert
		require.Error(t, err, "Cart total 2860 is below the 10000 minimum")
		assert.Nil(t, cart)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeCouponIneligible, appErr.Code)
	})

	t.Run("Success - Applies Coupon And Reprices", func(t *testing.T) {
		// Arrange
		mockRepo, mockPromoRepo, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		coupon := activeFlatCoupon(500, 1000)
		storedCart := &models.Cart{
			ID: uuid.New(), CustomerID: customerID,
			Items: []models.CartItem{twoWeekdayItem(motorcycle.ID, 1)},
		}
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockPromoRepo.On("GetPromoCodeByCode", mock.Anything, coupon.Code).Return(coupon, nil).Once()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()
		mockRepo.On("SetCoupon", mock.Anything, storedCart.ID, &coupon.ID).Return(nil).Once()

		// Act
		cart, err := cartService.ApplyCoupon(ctx, customerID, coupon.Code)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, cart)
		require.NotNil(t, cart.Coupon)
		assert.Equal(t, coupon.ID, *cart.CouponID)
		assert.InDelta(t, 1500.0, cart.Items[0].DiscountedRentAmount, 1e-9)
		assert.InDelta(t, 2270.0, cart.DiscountedTotal, 1e-9)
		assert.InDelta(t, 2860.0, cart.CartTotal, 1e-9)
		mockRepo.AssertExpectations(t)
		mockPromoRepo.AssertExpectations(t)
	})
}

func TestRemoveCoupon(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo, _, mockMotorcycles, cartService := setupCartServiceTest()
		motorcycle := testMotorcycle()
		couponID := uuid.New()
		storedCart := &models.Cart{
			ID: uuid.New(), CustomerID: customerID,
			Items:    []models.CartItem{twoWeekdayItem(motorcycle.ID, 1)},
			CouponID: &couponID,
		}
		mockRepo.On("GetCartByCustomerID", mock.Anything, customerID).Return(storedCart, nil).Once()
		mockRepo.On("SetCoupon", mock.Anything, storedCart.ID, (*uuid.UUID)(nil)).Return(nil).Once()
		mockMotorcycles.On("GetMotorcycleByID", mock.Anything, motorcycle.ID).Return(motorcycle, nil).Once()

		// Act
		cart, err := cartService.RemoveCoupon(ctx, customerID)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, cart.CouponID)
		assert.Nil(t, cart.Coupon)
		assert.InDelta(t, 2860.0, cart.DiscountedTotal, 1e-9)
		mockRepo.AssertExpectations(t)
	})
}
