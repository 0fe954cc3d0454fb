package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/api/handlers"
	appErrors "github.com/rideon-labs/motorcycle-rental-platform/internal/errors"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/models"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/services/mocks"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/testutils"
	"github.com/rideon-labs/motorcycle-rental-platform/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupQuoteHandlerTest() (*mocks.MotorcycleService, *handlers.QuoteHandler) {
	mockService := new(mocks.MotorcycleService)
	handler := handlers.NewQuoteHandler(mockService)

	return mockService, handler
}

// Monday 10:00 to Wednesday 10:00, two full weekday blocks.
func quoteRequestBody(t *testing.T, req models.QuoteRequest) []byte {
	t.Helper()

	req.PickupDate = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	req.DropoffDate = time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC)
	req.PickupTime = "10:00"
	req.DropoffTime = "10:00"

	body, err := json.Marshal(req)
	assert.NoError(t, err)

	return body
}

func decodeQuote(t *testing.T, recorder *httptest.ResponseRecorder) models.QuoteResponse {
	t.Helper()

	var resp *response.APIResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	payload, err := json.Marshal(resp.Data)
	assert.NoError(t, err)

	var quote models.QuoteResponse
	assert.NoError(t, json.Unmarshal(payload, &quote))

	return quote
}

func TestQuoteHandler(t *testing.T) {
	t.Run("Inline Rates", func(t *testing.T) {
		mockService, handler := setupQuoteHandlerTest()

		weekdayRate, weekendRate := 1000.0, 1500.0
		body := quoteRequestBody(t, models.QuoteRequest{
			WeekdayRate: &weekdayRate,
			WeekendRate: &weekendRate,
			Quantity:    2,
		})

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/pricing/quote",
			bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		handler.Quote()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		quote := decodeQuote(t, recorder)
		assert.InDelta(t, 48.0, quote.TotalHours, 0.001)
		assert.Equal(t, 2, quote.WeekdayCount)
		assert.Equal(t, 0, quote.WeekendCount)
		assert.InDelta(t, 2000.0, quote.RentPerUnit, 0.001)
		assert.InDelta(t, 4000.0, quote.TotalRent, 0.001)
		assert.InDelta(t, 720.0, quote.TotalTax, 0.001)
		assert.InDelta(t, 18.0, quote.TaxPercentage, 0.001)

		mockService.AssertNotCalled(t, "GetMotorcycleByID")
	})

	t.Run("Catalog Rates", func(t *testing.T) {
		mockService, handler := setupQuoteHandlerTest()
		motorcycleID := uuid.New()

		body := quoteRequestBody(t, models.QuoteRequest{
			MotorcycleID: &motorcycleID,
			Quantity:     1,
		})

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/pricing/quote",
			bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		mockService.On("GetMotorcycleByID", mock.Anything, motorcycleID).Return(&models.Motorcycle{
			ID:                motorcycleID,
			PricePerDayMonThu: 1000,
			PricePerDayFriSun: 1500,
		}, nil).Once()

		handler.Quote()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		quote := decodeQuote(t, recorder)
		assert.InDelta(t, 1000.0, quote.WeekdayRate, 0.001)
		assert.InDelta(t, 1500.0, quote.WeekendRate, 0.001)
		assert.InDelta(t, 2000.0, quote.TotalRent, 0.001)

		mockService.AssertExpectations(t)
	})

	t.Run("Missing Rates And Motorcycle", func(t *testing.T) {
		mockService, handler := setupQuoteHandlerTest()

		body := quoteRequestBody(t, models.QuoteRequest{Quantity: 1})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/pricing/quote",
			bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		handler.Quote()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "GetMotorcycleByID")
	})

	t.Run("Unknown Motorcycle", func(t *testing.T) {
		mockService, handler := setupQuoteHandlerTest()
		motorcycleID := uuid.New()

		body := quoteRequestBody(t, models.QuoteRequest{
			MotorcycleID: &motorcycleID,
			Quantity:     1,
		})

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/pricing/quote",
			bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		mockService.On("GetMotorcycleByID", mock.Anything, motorcycleID).
			Return(nil, appErrors.NotFoundError("Motorcycle not found")).Once()

		handler.Quote()(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Window Too Short", func(t *testing.T) {
		mockService, handler := setupQuoteHandlerTest()

		weekdayRate, weekendRate := 1000.0, 1500.0
		request := models.QuoteRequest{
			WeekdayRate: &weekdayRate,
			WeekendRate: &weekendRate,
			Quantity:    1,
			PickupDate:  time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
			DropoffDate: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
			PickupTime:  "10:00",
			DropoffTime: "13:00",
		}
		body, err := json.Marshal(request)
		assert.NoError(t, err)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/pricing/quote",
			bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		handler.Quote()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp *response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeInvalidBookingWindow, resp.Error.Code)

		mockService.AssertNotCalled(t, "GetMotorcycleByID")
	})
}
