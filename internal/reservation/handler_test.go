package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xkubaj03/tennis-club/internal/apperr"
)

type MockService struct{ mock.Mock }

func (m *MockService) Create(ctx context.Context, req CreateReservationRequest) (*ReservationDetail, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ReservationDetail), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int64, req CreateReservationRequest) (*ReservationDetail, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ReservationDetail), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, id int64) (*ReservationDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ReservationDetail), args.Error(1)
}

func (m *MockService) GetAll(ctx context.Context) ([]ReservationDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ReservationDetail), args.Error(1)
}

func (m *MockService) GetByCourtNumber(ctx context.Context, courtNumber int) ([]ReservationDetail, error) {
	args := m.Called(ctx, courtNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ReservationDetail), args.Error(1)
}

func (m *MockService) GetByCustomerPhone(ctx context.Context, phone string, futureOnly bool) ([]ReservationDetail, error) {
	args := m.Called(ctx, phone, futureOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ReservationDetail), args.Error(1)
}

func (m *MockService) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setupHandlerRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.POST("/api/reservations", h.Create)
	r.GET("/api/reservations", h.List)
	r.GET("/api/reservations/:id", h.Get)
	r.PUT("/api/reservations/:id", h.Update)
	r.DELETE("/api/reservations/:id", h.Delete)
	r.GET("/api/reservations/court/:number", h.ListByCourt)
	r.GET("/api/reservations/phone/:number", h.ListByPhone)
	return r
}

func sampleDetail() *ReservationDetail {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationDetail{
		Reservation: Reservation{
			ID:         1,
			CourtID:    10,
			CustomerID: 5,
			GameType:   GameTypeDoubles,
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
			Active:     true,
		},
		CourtNumber:        1,
		PhoneNumber:        "+420777123456",
		CustomerName:       "Jane Novak",
		CostPerMinuteCents: 15,
		TotalPriceCents:    1350,
		TotalPrice:         "13.50",
	}
}

func TestHandlerCreate(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	svc.On("Create", mock.Anything, mock.Anything).Return(sampleDetail(), nil)

	body, _ := json.Marshal(CreateReservationRequest{
		PhoneNumber:  "+420777123456",
		CustomerName: "Jane Novak",
		GameType:     GameTypeDoubles,
		CourtNumber:  1,
		StartTime:    "2026-09-01T10:00:00Z",
		EndTime:      "2026-09-01T11:00:00Z",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total_price":"13.50"`)
}

func TestHandlerCreateMissingFields(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandlerCreateConflict(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, apperr.Conflictf("reservation already exists for this court and time"))

	body, _ := json.Marshal(CreateReservationRequest{
		PhoneNumber:  "+420777123456",
		CustomerName: "Jane Novak",
		GameType:     GameTypeSingles,
		CourtNumber:  1,
		StartTime:    "2026-09-01T10:00:00Z",
		EndTime:      "2026-09-01T11:00:00Z",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlerGet(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	svc.On("GetByID", mock.Anything, int64(1)).Return(sampleDetail(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandlerGetMissing(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	svc.On("GetByID", mock.Anything, int64(404)).Return(nil, apperr.NotFoundf("reservation 404 not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/reservations/404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerGetBadID(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHandlerDelete(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	svc.On("DeleteByID", mock.Anything, int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandlerDeleteMissing(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	svc.On("DeleteByID", mock.Anything, int64(404)).
		Return(apperr.NotFoundf("reservations id 404"))

	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerListByCourt(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	svc.On("GetByCourtNumber", mock.Anything, 1).Return([]ReservationDetail{*sampleDetail()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations/court/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandlerListByPhone(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	svc.On("GetByCustomerPhone", mock.Anything, "+420777123456", true).
		Return([]ReservationDetail{*sampleDetail()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations/phone/%2B420777123456?futureOnly=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandlerListByPhoneDefaultsToAll(t *testing.T) {
	svc := new(MockService)
	r := setupHandlerRouter(svc)

	svc.On("GetByCustomerPhone", mock.Anything, "420777123456", false).
		Return([]ReservationDetail{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations/phone/420777123456", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
