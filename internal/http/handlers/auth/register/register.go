// Package register реализует HTTP-обработчик регистрации пользователя.
//
// Поля name, email, password принимаются формой. Занятый email даёт 409.
package register

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/planetary-api/internal/http/response"
	"github.com/magabrotheeeer/planetary-api/internal/lib/formdecode"
	"github.com/magabrotheeeer/planetary-api/internal/lib/password"
	"github.com/magabrotheeeer/planetary-api/internal/lib/sl"
	"github.com/magabrotheeeer/planetary-api/internal/lib/validation"
	"github.com/magabrotheeeer/planetary-api/internal/models"
	"github.com/magabrotheeeer/planetary-api/internal/storage"
)

// Handler обрабатывает HTTP-запросы для регистрации пользователей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис регистрации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, name, email, password string) (int, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Имя"
// @Param email formData string true "Email"
// @Param password formData string true "Пароль"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUser
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

	id, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, storage.ErrUserExists) {
		log.Info("email already registered")
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.Error("That email already exists."))
		return
	}
	if errors.Is(err, password.ErrTooLong) {
		log.Info("password too long")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(fmt.Sprintf("field Password must be at most %d bytes", password.MaxLength)))
		return
	}
	if err != nil {
		log.Error("failed to register user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register user"))
		return
	}

	log.Info("user registered", slog.Int("id", id))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OK("User created successfully."))
}
