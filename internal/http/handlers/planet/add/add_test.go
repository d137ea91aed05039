package add

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/planetary-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/planetary-api/internal/models"
	"github.com/magabrotheeeer/planetary-api/internal/storage"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Add(ctx context.Context, p models.Planet) (int, error) {
	args := m.Called(ctx, p)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func pluto() url.Values {
	return url.Values{
		"planet_name": {"Pluto"},
		"planet_type": {"Class K"},
		"home_star":   {"Sol"},
		"mass":        {"1.303e22"},
		"radius":      {"738"},
		"distance":    {"3.7e9"},
	}
}

var plutoPlanet = models.Planet{
	PlanetName: "Pluto",
	PlanetType: "Class K",
	HomeStar:   "Sol",
	Mass:       1.303e22,
	Radius:     738,
	Distance:   3.7e9,
}

func TestAddHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		values         func() url.Values
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "query string via GET",
			method: http.MethodGet,
			values: pluto,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, plutoPlanet).Return(4, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","message":"You added a planet","data":{"planet_id":4}}`,
		},
		{
			name:   "urlencoded body via POST",
			method: http.MethodPost,
			values: pluto,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, plutoPlanet).Return(5, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","message":"You added a planet","data":{"planet_id":5}}`,
		},
		{
			name:   "zero mass is accepted",
			method: http.MethodGet,
			values: func() url.Values {
				v := pluto()
				v.Set("mass", "0")
				return v
			},
			setupMock: func(m *MockService) {
				p := plutoPlanet
				p.Mass = 0
				m.On("Add", mock.Anything, p).Return(6, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","message":"You added a planet","data":{"planet_id":6}}`,
		},
		{
			name:   "duplicate name",
			method: http.MethodGet,
			values: pluto,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, plutoPlanet).Return(0, storage.ErrPlanetExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","message":"Pluto already exist in the db"}`,
		},
		{
			name:   "non-numeric mass",
			method: http.MethodGet,
			values: func() url.Values {
				v := pluto()
				v.Set("mass", "heavy")
				return v
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"invalid form values"}`,
		},
		{
			name:   "infinite mass",
			method: http.MethodPost,
			values: func() url.Values {
				v := pluto()
				v.Set("mass", "Inf")
				return v
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"field Mass must be a finite number"}`,
		},
		{
			name:   "nan radius",
			method: http.MethodGet,
			values: func() url.Values {
				v := pluto()
				v.Set("radius", "NaN")
				return v
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"field Radius must be a finite number"}`,
		},
		{
			name:   "missing field",
			method: http.MethodGet,
			values: func() url.Values {
				v := pluto()
				v.Del("radius")
				return v
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","message":"field Radius is a required field"}`,
		},
		{
			name:   "service error",
			method: http.MethodPost,
			values: pluto,
			setupMock: func(m *MockService) {
				m.On("Add", mock.Anything, plutoPlanet).Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","message":"could not add planet"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)
			handler := New(newNoopLogger(), mockService)

			var req *http.Request
			if tt.method == http.MethodGet {
				req = httptest.NewRequest(http.MethodGet, "/add_planet?"+tt.values().Encode(), nil)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/add_planet", strings.NewReader(tt.values().Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}

func TestAddHandler_LogsAuthenticatedUser(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{}))

	mockService := new(MockService)
	mockService.On("Add", mock.Anything, plutoPlanet).Return(4, nil)
	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodGet, "/add_planet?"+pluto().Encode(), nil)
	ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
	ctx = context.WithValue(ctx, middlewarectx.User, "william.hershel@bofa.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req.WithContext(ctx))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, buf.String(), "user=william.hershel@bofa.com")
	mockService.AssertExpectations(t)
}
