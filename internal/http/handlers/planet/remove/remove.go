// Package remove реализует HTTP-обработчик удаления планеты по planet_id.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/planetary-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/planetary-api/internal/http/response"
	"github.com/magabrotheeeer/planetary-api/internal/lib/sl"
	"github.com/magabrotheeeer/planetary-api/internal/storage"
)

// Handler обрабатывает запросы на удаление планеты.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления.
type Service interface {
	Remove(ctx context.Context, id int) error
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление планеты
// @Tags Planets
// @Produce json
// @Security BearerAuth
// @Param planet_id path int true "ID планеты"
// @Success 202 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /remove_planet/{planet_id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.planet.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	if email, ok := middlewarectx.UserFromContext(r.Context()); ok {
		log = log.With(slog.String("user", email))
	}

	id, err := strconv.Atoi(chi.URLParam(r, "planet_id"))
	if errors.Is(err, strconv.ErrRange) {
		log.Info("planet_id out of range", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("That planet does not exist"))
		return
	}
	if err != nil || id <= 0 {
		log.Info("invalid planet_id in url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("planet_id must be a positive integer"))
		return
	}

	err = h.service.Remove(r.Context(), id)
	if errors.Is(err, storage.ErrPlanetNotFound) {
		log.Info("planet not found", slog.Int("planet_id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("That planet does not exist"))
		return
	}
	if err != nil {
		log.Error("failed to remove planet", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove planet"))
		return
	}

	log.Info("planet removed", slog.Int("planet_id", id))
	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, response.OK("You deleted a planet"))
}
