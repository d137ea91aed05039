// Package details реализует HTTP-обработчик для получения планеты по planet_id.
//
// Отсутствующая планета даёт 404 с сообщением "<id> doesn't exist".
package details

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/planetary-api/internal/http/response"
	"github.com/magabrotheeeer/planetary-api/internal/lib/sl"
	"github.com/magabrotheeeer/planetary-api/internal/models"
	"github.com/magabrotheeeer/planetary-api/internal/storage"
)

// Handler обрабатывает запросы на получение одной планеты.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения планеты по ID
}

// Service описывает интерфейс бизнес-логики чтения планеты.
type Service interface {
	Details(ctx context.Context, id int) (*models.Planet, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Планета по ID
// @Tags Planets
// @Produce json
// @Param planet_id path int true "ID планеты"
// @Success 200 {object} models.Planet
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /planet_details/{planet_id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.planet.details"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rawID := chi.URLParam(r, "planet_id")
	id, err := strconv.Atoi(rawID)
	if errors.Is(err, strconv.ErrRange) {
		// Маршрут пропускает только цифры, такой записи быть не может.
		log.Info("planet_id out of range", slog.String("planet_id", rawID))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(fmt.Sprintf("%s doesn't exist", rawID)))
		return
	}
	if err != nil || id <= 0 {
		log.Info("invalid planet_id in url", slog.String("planet_id", rawID))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("planet_id must be a positive integer"))
		return
	}

	planet, err := h.service.Details(r.Context(), id)
	if errors.Is(err, storage.ErrPlanetNotFound) {
		log.Info("planet not found", slog.Int("planet_id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(fmt.Sprintf("%d doesn't exist", id)))
		return
	}
	if err != nil {
		log.Error("failed to read planet", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read planet"))
		return
	}

	render.JSON(w, r, planet)
}
