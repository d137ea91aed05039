// Package add реализует HTTP-обработчик добавления планеты.
//
// Поля принимаются из query string (GET) или urlencoded-тела (POST).
// Уникальность имени обеспечивает ограничение UNIQUE в хранилище.
package add

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/planetary-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/planetary-api/internal/http/response"
	"github.com/magabrotheeeer/planetary-api/internal/lib/formdecode"
	"github.com/magabrotheeeer/planetary-api/internal/lib/sl"
	"github.com/magabrotheeeer/planetary-api/internal/lib/validation"
	"github.com/magabrotheeeer/planetary-api/internal/models"
	"github.com/magabrotheeeer/planetary-api/internal/storage"
)

// Handler обрабатывает запросы на добавление планеты.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики каталога
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики добавления планеты.
type Service interface {
	Add(ctx context.Context, p models.Planet) (int, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавление планеты
// @Tags Planets
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param planet_name formData string true "Название"
// @Param planet_type formData string true "Тип"
// @Param home_star formData string true "Звезда"
// @Param mass formData number true "Масса"
// @Param radius formData number true "Радиус"
// @Param distance formData number true "Расстояние"
// @Success 201 {object} response.Response{data=response.CreatedPlanet}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /add_planet [post]
// @Router /add_planet [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.planet.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	if email, ok := middlewarectx.UserFromContext(r.Context()); ok {
		log = log.With(slog.String("user", email))
	}

	var req models.DummyPlanet
	if err := formdecode.Decode(r, &req); err != nil {
		log.Info("failed to decode form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid form values"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.service.Add(r.Context(), req.ToPlanet())
	if errors.Is(err, storage.ErrPlanetExists) {
		log.Info("planet already exists", slog.String("planet_name", req.PlanetName))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error(fmt.Sprintf("%s already exist in the db", req.PlanetName)))
		return
	}
	if err != nil {
		log.Error("failed to add planet", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add planet"))
		return
	}

	log.Info("planet added", slog.Int("planet_id", id))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData("You added a planet", response.CreatedPlanet{PlanetID: id}))
}
