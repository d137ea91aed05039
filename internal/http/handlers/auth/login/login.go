// Package login реализует HTTP-обработчик входа пользователя.
//
// Учётные данные принимаются как JSON (Content-Type: application/json) или как форма.
// Неизвестный email и неверный пароль дают одинаковый ответ 401.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/planetary-api/internal/http/response"
	"github.com/magabrotheeeer/planetary-api/internal/lib/formdecode"
	"github.com/magabrotheeeer/planetary-api/internal/lib/sl"
	"github.com/magabrotheeeer/planetary-api/internal/lib/validation"
	"github.com/magabrotheeeer/planetary-api/internal/models"
	services "github.com/magabrotheeeer/planetary-api/internal/services/auth"
)

const badCredentials = "Bad email/password"

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис аутентификации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Проверяет email и пароль, возвращает access_token.
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body models.Credentials true "Учетные данные пользователя"
// @Success 200 {object} response.LoginResponse
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.Credentials
	if err := decode(r, &req); err != nil {
		log.Info("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		log.Info("login rejected")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error(badCredentials))
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("login success")
	render.JSON(w, r, response.Login(token))
}

func decode(r *http.Request, dst *models.Credentials) error {
	if render.GetRequestContentType(r) == render.ContentTypeJSON {
		return render.DecodeJSON(r.Body, dst)
	}
	return formdecode.Decode(r, dst)
}
