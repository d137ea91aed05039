package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/planetary-api/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]models.Planet, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.Planet), args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestListHandler(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "seeded catalogue in order",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]models.Planet{
					{PlanetID: 1, PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "Sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
					{PlanetID: 2, PlanetName: "Venus", PlanetType: "Class k", HomeStar: "Sol", Mass: 4.86724, Radius: 3760, Distance: 67.24e6},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `[
				{"planet_id":1,"planet_name":"Mercury","planet_type":"Class D","home_star":"Sol","mass":3.258e23,"radius":1516,"distance":35980000},
				{"planet_id":2,"planet_name":"Venus","planet_type":"Class k","home_star":"Sol","mass":4.86724,"radius":3760,"distance":67240000}
			]`,
		},
		{
			name: "empty catalogue is an empty array",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return([]models.Planet{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "service error",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"could not list planets"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodGet, "/planets", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
