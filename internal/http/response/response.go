// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON-ответа сервера.
// Поле Status: "OK" или "Error".
// Поле Message: текст для клиента, при ошибке содержит её описание.
// Поле Data: данные ответа (опционально).
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse структура ошибки для Swagger-документации.
type ErrorResponse struct {
	Status  string `json:"status" example:"Error"`
	Message string `json:"message" example:"That planet does not exist"`
}

// LoginResponse ответ на успешный вход.
type LoginResponse struct {
	Status      string `json:"status" example:"OK"`
	Message     string `json:"message" example:"Login Succeeded"`
	AccessToken string `json:"access_token"`
}

// CreatedPlanet данные ответа на добавление планеты.
type CreatedPlanet struct {
	PlanetID int `json:"planet_id" example:"4"`
}

const (
	// StatusOK значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// OK возвращает успешный Response с сообщением.
func OK(msg string) Response {
	return Response{
		Status:  StatusOK,
		Message: msg,
	}
}

// StatusOKWithData возвращает успешный Response с сообщением и данными.
func StatusOKWithData(msg string, data any) Response {
	return Response{
		Status:  StatusOK,
		Message: msg,
		Data:    data,
	}
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status:  StatusError,
		Message: msg,
	}
}

// Login возвращает ответ с токеном доступа.
func Login(token string) LoginResponse {
	return LoginResponse{
		Status:      StatusOK,
		Message:     "Login Succeeded",
		AccessToken: token,
	}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Нарушения объединяются через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "finite":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a finite number", err.Field()))
		case "gte", "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be %s %s", err.Field(), err.ActualTag(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{
		Status:  StatusError,
		Message: strings.Join(errsMsgs, ", "),
	}
}
