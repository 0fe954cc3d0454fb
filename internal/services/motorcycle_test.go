package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	cacheMocks "github.com/rideon-labs/motorcycle-rental-platform/internal/cache/mocks"
	appErrors "github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	repoMocks "github.com/rideon-labs/motorcycle-rental-platform/internal/repositories/mocks"
	service "github.com/rideon-labs/motorcycle-rental-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMotorcycleServiceTest() (*repoMocks.MotorcycleRepository, *cacheMocks.Cache, service.MotorcycleService) {
	mockRepo := new(repoMocks.MotorcycleRepository)
	mockCache := new(cacheMocks.Cache)
	motorcycleService := service.NewMotorcycleService(mockRepo, mockCache)

	return mockRepo, mockCache, motorcycleService
}

func TestCreateMotorcycle(t *testing.T) {
	ctx := context.Background()

	req := &models.CreateMotorcycleRequest{
		Make:              "Royal Enfield",
		Model:             "Himalayan 450",
		Description:       `Adventure tourer <script>alert("x")</script> with luggage rack`,
		PricePerDayMonThu: 1000,
		PricePerDayFriSun: 1500,
		SecurityDeposit:   500,
		AvailableInCities: []models.BranchAvailability{{Branch: "Bangalore", Quantity: 3}},
	}

	t.Run("Success - Sanitizes Description", func(t *testing.T) {
		// Arrange
		mockRepo, mockCache, motorcycleService := setupMotorcycleServiceTest()
		mockRepo.On("CreateMotorcycle", mock.Anything, mock.MatchedBy(func(m *models.Motorcycle) bool {
			return m.Make == req.Make && m.ID != uuid.Nil
		})).Return(nil).Once()
		mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		motorcycle, err := motorcycleService.CreateMotorcycle(ctx, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, motorcycle)
		assert.NotContains(t, motorcycle.Description, "<script>", "Markup must be stripped")
		assert.Contains(t, motorcycle.Description, "Adventure tourer")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo, _, motorcycleService := setupMotorcycleServiceTest()
		mockRepo.On("CreateMotorcycle", mock.Anything, mock.AnythingOfType("*models.Motorcycle")).
			Return(errors.New("insert failed")).Once()

		// Act
		motorcycle, err := motorcycleService.CreateMotorcycle(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, motorcycle)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetMotorcycleByID(t *testing.T) {
	ctx := context.Background()
	motorcycleID := uuid.New()

	t.Run("Success - Cache Hit Skips Repository", func(t *testing.T) {
		// Arrange
		mockRepo, mockCache, motorcycleService := setupMotorcycleServiceTest()
		mockCache.On("Get", mock.Anything, "motorcycle:"+motorcycleID.String(), mock.Anything).
			Run(func(args mock.Arguments) {
				m := args.Get(2).(*models.Motorcycle)
				m.ID = motorcycleID
				m.Make = "Royal Enfield"
			}).Return(true, nil).Once()

		// Act
		motorcycle, err := motorcycleService.GetMotorcycleByID(ctx, motorcycleID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, motorcycleID, motorcycle.ID)
		assert.Equal(t, "Royal Enfield", motorcycle.Make)
		mockRepo.AssertNotCalled(t, "GetMotorcycleByID")
		mockCache.AssertExpectations(t)
	})

	t.Run("Success - Cache Miss Falls Through And Populates", func(t *testing.T) {
		// Arrange
		mockRepo, mockCache, motorcycleService := setupMotorcycleServiceTest()
		stored := &models.Motorcycle{ID: motorcycleID, Make: "Honda"}
		mockCache.On("Get", mock.Anything, "motorcycle:"+motorcycleID.String(), mock.Anything).Return(false, nil).Once()
		mockRepo.On("GetMotorcycleByID", mock.Anything, motorcycleID).Return(stored, nil).Once()
		mockCache.On("Set", mock.Anything, "motorcycle:"+motorcycleID.String(), stored, mock.Anything).Return(nil).Once()

		// Act
		motorcycle, err := motorcycleService.GetMotorcycleByID(ctx, motorcycleID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, stored, motorcycle)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo, mockCache, motorcycleService := setupMotorcycleServiceTest()
		mockCache.On("Get", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(false, nil).Once()
		mockRepo.On("GetMotorcycleByID", mock.Anything, motorcycleID).Return(nil, sql.ErrNoRows).Once()

		// Act
		motorcycle, err := motorcycleService.GetMotorcycleByID(ctx, motorcycleID)

		// Assert
		require.Error(t, err)
		assert.Nil(t, motorcycle)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestUpdateMotorcycle(t *testing.T) {
	ctx := context.Background()
	motorcycleID := uuid.New()

	t.Run("Success - Invalidates Cache", func(t *testing.T) {
		// Arrange
		mockRepo, mockCache, motorcycleService := setupMotorcycleServiceTest()
		stored := &models.Motorcycle{ID: motorcycleID, Make: "Honda", PricePerDayMonThu: 800}
		newRate := 900.0
		req := &models.UpdateMotorcycleRequest{PricePerDayMonThu: &newRate}

		mockRepo.On("GetMotorcycleByID", mock.Anything, motorcycleID).Return(stored, nil).Once()
		mockRepo.On("UpdateMotorcycle", mock.Anything, mock.MatchedBy(func(m *models.Motorcycle) bool {
			return m.PricePerDayMonThu == 900
		})).Return(nil).Once()
		mockCache.On("Delete", mock.Anything, "motorcycle:"+motorcycleID.String()).Return(nil).Once()

		// Act
		motorcycle, err := motorcycleService.UpdateMotorcycle(ctx, motorcycleID, req)

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 900.0, motorcycle.PricePerDayMonThu, 1e-9)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo, _, motorcycleService := setupMotorcycleServiceTest()
		mockRepo.On("GetMotorcycleByID", mock.Anything, motorcycleID).Return(nil, sql.ErrNoRows).Once()

		// Act
		motorcycle, err := motorcycleService.UpdateMotorcycle(ctx, motorcycleID, &models.UpdateMotorcycleRequest{})

		// Assert
		require.Error(t, err)
		assert.Nil(t, motorcycle)
	})
}

func TestListMotorcycles(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo, _, motorcycleService := setupMotorcycleServiceTest()
		expected := []*models.Motorcycle{{ID: uuid.New()}, {ID: uuid.New()}}
		mockRepo.On("ListMotorcycles", mock.Anything, 1, 10).Return(expected, 2, nil).Once()

		// Act
		motorcycles, total, err := motorcycleService.ListMotorcycles(ctx, 1, 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, expected, motorcycles)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo, _, motorcycleService := setupMotorcycleServiceTest()
		mockRepo.On("ListMotorcycles", mock.Anything, 1, 10).Return(nil, 0, errors.New("query failed")).Once()

		// Act
		motorcycles, total, err := motorcycleService.ListMotorcycles(ctx, 1, 10)

		// Assert
		require.Error(t, err)
		assert.Zero(t, total)
		assert.Nil(t, motorcycles)
	})
}
