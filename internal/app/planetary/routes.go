package planetary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/magabrotheeeer/planetary-api/docs" // swagger spec
	"github.com/magabrotheeeer/planetary-api/internal/config"
	"github.com/magabrotheeeer/planetary-api/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/planetary-api/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/planetary-api/internal/http/handlers/demo"
	"github.com/magabrotheeeer/planetary-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/planetary-api/internal/http/handlers/planet/add"
	"github.com/magabrotheeeer/planetary-api/internal/http/handlers/planet/details"
	"github.com/magabrotheeeer/planetary-api/internal/http/handlers/planet/list"
	"github.com/magabrotheeeer/planetary-api/internal/http/handlers/planet/remove"
	"github.com/magabrotheeeer/planetary-api/internal/http/handlers/planet/update"
	"github.com/magabrotheeeer/planetary-api/internal/http/middlewarectx"
)

// PlanetService операции над каталогом, нужные обработчикам.
type PlanetService interface {
	list.Service
	details.Service
	add.Service
	update.Service
	remove.Service
}

// AuthService регистрация и вход.
type AuthService interface {
	register.Service
	login.Service
}

// Deps зависимости маршрутов.
type Deps struct {
	Logger   *slog.Logger
	Planets  PlanetService
	Auth     AuthService
	Tokens   middlewarectx.TokenParser
	DB       health.Pinger
	Registry *prometheus.Registry
	Config   *config.Config
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(ctx context.Context, r chi.Router, d Deps) {
	metrics := middlewarectx.NewMetrics(d.Registry)

	// Глобальные middleware
	r.Use(middleware.RequestID)
	if d.Config.TrustProxy {
		// Иначе клиент подменяет адрес заголовком и обходит лимит.
		r.Use(middleware.RealIP)
	}
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
		newCORS(d.Config.AllowedOrigins).Handler,
	)
	if !d.Config.Disabled {
		r.Use(middlewarectx.NewRateLimiter(ctx, d.Config.RPS, d.Config.Burst, d.Logger).Middleware)
	}

	greeter := demo.New(d.Logger)
	r.Get("/", demo.Hello)
	r.Get("/simple_route", demo.SimpleRoute)
	r.Get("/not_found", demo.NotFound)
	r.Get("/parameters", greeter.Parameters)
	r.Get("/url_variables/{name}/{age:[0-9]+}", greeter.URLVariables)

	r.Get("/planets", list.New(d.Logger, d.Planets).ServeHTTP)
	r.Get("/planet_details/{planet_id:[0-9]+}", details.New(d.Logger, d.Planets).ServeHTTP)

	r.Post("/register", register.New(d.Logger, d.Auth).ServeHTTP)
	r.Post("/login", login.New(d.Logger, d.Auth).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(d.Tokens, d.Logger))
		addHandler := add.New(d.Logger, d.Planets)
		r.Get("/add_planet", addHandler.ServeHTTP)
		r.Post("/add_planet", addHandler.ServeHTTP)
		r.Put("/update_planet", update.New(d.Logger, d.Planets).ServeHTTP)
		r.Delete("/remove_planet/{planet_id:[0-9]+}", remove.New(d.Logger, d.Planets).ServeHTTP)
	})

	r.Get("/health", health.New(d.Logger, d.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

func newCORS(origins []string) *cors.Cors {
	allowCredentials := true
	for _, o := range origins {
		if o == "*" {
			allowCredentials = false
		}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: allowCredentials,
	})
}
