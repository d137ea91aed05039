// Package demo содержит учебные обработчики: приветствие, простой маршрут,
// заведомый 404 и проверку возраста через query string и сегменты пути.
package demo

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/planetary-api/internal/http/response"
)

const adultAge = 18

type message struct {
	Message string `json:"message"`
}

// Hello отвечает plain text "Hello World!".
// @Summary Приветствие
// @Tags Demo
// @Produce plain
// @Success 200 {string} string "Hello World!"
// @Router / [get]
func Hello(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "Hello World!")
}

// SimpleRoute отвечает фиксированным JSON-сообщением.
// @Summary Простой маршрут
// @Tags Demo
// @Produce json
// @Success 200 {object} message
// @Router /simple_route [get]
func SimpleRoute(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, message{Message: "Welcome to Planetary APP!"})
}

// NotFound всегда отвечает 404.
// @Summary Всегда 404
// @Tags Demo
// @Produce json
// @Failure 404 {object} message
// @Router /not_found [get]
func NotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, message{Message: "page not found"})
}

// Handler проверяет возраст посетителя.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// Parameters читает name и age из query string.
// @Summary Проверка возраста из query string
// @Tags Demo
// @Produce json
// @Param name query string false "Имя"
// @Param age query int true "Возраст"
// @Success 200 {object} message
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} message
// @Router /parameters [get]
func (h *Handler) Parameters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.greet(w, r, q.Get("name"), q.Get("age"))
}

// URLVariables читает name и age из сегментов пути.
// @Summary Проверка возраста из пути
// @Tags Demo
// @Produce json
// @Param name path string true "Имя"
// @Param age path int true "Возраст"
// @Success 200 {object} message
// @Failure 401 {object} message
// @Router /url_variables/{name}/{age} [get]
func (h *Handler) URLVariables(w http.ResponseWriter, r *http.Request) {
	h.greet(w, r, chi.URLParam(r, "name"), chi.URLParam(r, "age"))
}

func (h *Handler) greet(w http.ResponseWriter, r *http.Request, name, rawAge string) {
	const op = "handlers.demo.greet"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	age, err := strconv.Atoi(rawAge)
	if err != nil {
		log.Debug("age is not an integer", slog.String("age", rawAge))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("age must be an integer"))
		return
	}

	if age < adultAge {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, message{Message: fmt.Sprintf("%s not old enough, Unauthorized", name)})
		return
	}
	render.JSON(w, r, message{Message: fmt.Sprintf("%s, Welcome to Planet APP!!", name)})
}
