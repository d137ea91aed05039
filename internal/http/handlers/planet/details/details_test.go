package details

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/planetary-api/internal/models"
	"github.com/magabrotheeeer/planetary-api/internal/storage"
)

// MockService реализует интерфейс details.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Details(ctx context.Context, id int) (*models.Planet, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Planet), args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestDetailsHandler(t *testing.T) {
	tests := []struct {
		name           string
		planetID       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "existing planet",
			planetID: "3",
			setupMock: func(m *MockService) {
				m.On("Details", mock.Anything, 3).Return(&models.Planet{
					PlanetID: 3, PlanetName: "Earth", PlanetType: "Class M", HomeStar: "Sol",
					Mass: 5.972e24, Radius: 3959, Distance: 92.96e6,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"planet_id":3,"planet_name":"Earth","planet_type":"Class M","home_star":"Sol","mass":5.972e24,"radius":3959,"distance":92960000}`,
		},
		{
			name:     "missing planet",
			planetID: "42",
			setupMock: func(m *MockService) {
				m.On("Details", mock.Anything, 42).Return(nil, storage.ErrPlanetNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","message":"42 doesn't exist"}`,
		},
		{
			name:           "non-numeric id",
			planetID:       "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"planet_id must be a positive integer"}`,
		},
		{
			name:     "id beyond int32",
			planetID: "3000000000",
			setupMock: func(m *MockService) {
				m.On("Details", mock.Anything, 3000000000).Return(nil, storage.ErrPlanetNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","message":"3000000000 doesn't exist"}`,
		},
		{
			name:           "id beyond int64",
			planetID:       "99999999999999999999",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","message":"99999999999999999999 doesn't exist"}`,
		},
		{
			name:     "service error",
			planetID: "7",
			setupMock: func(m *MockService) {
				m.On("Details", mock.Anything, 7).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"could not read planet"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodGet, "/planet_details/"+tt.planetID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("planet_id", tt.planetID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "reqid123")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
