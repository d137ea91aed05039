// Package list реализует HTTP-обработчик для получения всех планет.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/planetary-api/internal/http/response"
	"github.com/magabrotheeeer/planetary-api/internal/lib/sl"
	"github.com/magabrotheeeer/planetary-api/internal/models"
)

// Handler отдаёт полный список планет.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения каталога.
type Service interface {
	List(ctx context.Context) ([]models.Planet, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список планет
// @Description Возвращает все планеты по возрастанию planet_id. Пагинации нет.
// @Tags Planets
// @Produce json
// @Success 200 {array} models.Planet
// @Failure 500 {object} response.ErrorResponse
// @Router /planets [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.planet.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	planets, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list planets", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list planets"))
		return
	}

	log.Debug("planets listed", slog.Int("count", len(planets)))
	render.JSON(w, r, planets)
}
