// Package update реализует HTTP-обработчик полной перезаписи планеты.
package update

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

// Handler обрабатывает запросы на обновление планеты.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления планеты.
type Service interface {
	Update(ctx context.Context, p models.Planet) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление планеты
// @Description Перезаписывает все поля планеты с planet_id.
// @Tags Planets
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param planet_id formData int true "ID планеты"
// @Param planet_name formData string true "Название"
// @Param planet_type formData string true "Тип"
// @Param home_star formData string true "Звезда"
// @Param mass formData number true "Масса"
// @Param radius formData number true "Радиус"
// @Param distance formData number true "Расстояние"
// @Success 202 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /update_planet [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.planet.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	if email, ok := middlewarectx.UserFromContext(r.Context()); ok {
		log = log.With(slog.String("user", email))
	}

	var req models.DummyPlanetUpdate
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

	err := h.service.Update(r.Context(), req.ToPlanet())
	switch {
	case errors.Is(err, storage.ErrPlanetNotFound):
		log.Info("planet not found", slog.Int("planet_id", req.PlanetID))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("That planet does not exist"))
		return
	case errors.Is(err, storage.ErrPlanetExists):
		log.Info("planet name taken", slog.String("planet_name", req.PlanetName))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error(fmt.Sprintf("%s already exist in the db", req.PlanetName)))
		return
	case err != nil:
		log.Error("failed to update planet", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update planet"))
		return
	}

	log.Info("planet updated", slog.Int("planet_id", req.PlanetID))
	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, response.OK("You updated a planet"))
}
