// Package docs содержит OpenAPI-описание сервиса, которое отдаёт /docs.
//
// Файл ведётся вручную и повторяет swag-аннотации обработчиков.
// При изменении маршрутов правьте аннотации и этот шаблон вместе.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Demo"],
                "summary": "Приветствие",
                "responses": {
                    "200": {"description": "Hello World!", "schema": {"type": "string"}}
                }
            }
        },
        "/simple_route": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Demo"],
                "summary": "Простой маршрут",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/demo.message"}}
                }
            }
        },
        "/not_found": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Demo"],
                "summary": "Всегда 404",
                "responses": {
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/demo.message"}}
                }
            }
        },
        "/parameters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Demo"],
                "summary": "Проверка возраста из query string",
                "parameters": [
                    {"type": "string", "description": "Имя", "name": "name", "in": "query"},
                    {"type": "integer", "description": "Возраст", "name": "age", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/demo.message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/demo.message"}}
                }
            }
        },
        "/url_variables/{name}/{age}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Demo"],
                "summary": "Проверка возраста из пути",
                "parameters": [
                    {"type": "string", "description": "Имя", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "description": "Возраст", "name": "age", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/demo.message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/demo.message"}}
                }
            }
        },
        "/planets": {
            "get": {
                "description": "Возвращает все планеты по возрастанию planet_id. Пагинации нет.",
                "produces": ["application/json"],
                "tags": ["Planets"],
                "summary": "Список планет",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/models.Planet"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/response.ErrorResponse"}
                    }
                }
            }
        },
        "/planet_details/{planet_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Planets"],
                "summary": "Планета по ID",
                "parameters": [
                    {"type": "integer", "description": "ID планеты", "name": "planet_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Planet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/add_planet": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "То же, что POST, поля передаются в query string.",
                "produces": ["application/json"],
                "tags": ["Planets"],
                "summary": "Добавление планеты",
                "parameters": [
                    {"type": "string", "description": "Название", "name": "planet_name", "in": "query", "required": true},
                    {"type": "string", "description": "Тип", "name": "planet_type", "in": "query", "required": true},
                    {"type": "string", "description": "Звезда", "name": "home_star", "in": "query", "required": true},
                    {"type": "number", "description": "Масса", "name": "mass", "in": "query", "required": true},
                    {"type": "number", "description": "Радиус", "name": "radius", "in": "query", "required": true},
                    {"type": "number", "description": "Расстояние", "name": "distance", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/response.CreatedPlanet"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Planets"],
                "summary": "Добавление планеты",
                "parameters": [
                    {"type": "string", "description": "Название", "name": "planet_name", "in": "formData", "required": true},
                    {"type": "string", "description": "Тип", "name": "planet_type", "in": "formData", "required": true},
                    {"type": "string", "description": "Звезда", "name": "home_star", "in": "formData", "required": true},
                    {"type": "number", "description": "Масса", "name": "mass", "in": "formData", "required": true},
                    {"type": "number", "description": "Радиус", "name": "radius", "in": "formData", "required": true},
                    {"type": "number", "description": "Расстояние", "name": "distance", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/response.CreatedPlanet"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/update_planet": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Перезаписывает все поля планеты с planet_id.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Planets"],
                "summary": "Обновление планеты",
                "parameters": [
                    {"type": "integer", "description": "ID планеты", "name": "planet_id", "in": "formData", "required": true},
                    {"type": "string", "description": "Название", "name": "planet_name", "in": "formData", "required": true},
                    {"type": "string", "description": "Тип", "name": "planet_type", "in": "formData", "required": true},
                    {"type": "string", "description": "Звезда", "name": "home_star", "in": "formData", "required": true},
                    {"type": "number", "description": "Масса", "name": "mass", "in": "formData", "required": true},
                    {"type": "number", "description": "Радиус", "name": "radius", "in": "formData", "required": true},
                    {"type": "number", "description": "Расстояние", "name": "distance", "in": "formData", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/remove_planet/{planet_id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Planets"],
                "summary": "Удаление планеты",
                "parameters": [
                    {"type": "integer", "description": "ID планеты", "name": "planet_id", "in": "path", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Регистрация пользователя",
                "parameters": [
                    {"type": "string", "description": "Имя", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Пароль", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Проверяет email и пароль, возвращает access_token.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Авторизация пользователя",
                "parameters": [
                    {
                        "description": "Учетные данные пользователя",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.Credentials"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.LoginResponse"}},
                    "400": {"description": "Некорректный запрос", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Неверные учетные данные", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Внутренняя ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка готовности",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Health"],
                "summary": "Метрики Prometheus",
                "responses": {
                    "200": {"description": "Prometheus text exposition", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "demo.message": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Welcome to Planetary APP!"}
            }
        },
        "models.Credentials": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.Planet": {
            "type": "object",
            "properties": {
                "planet_id": {"type": "integer"},
                "planet_name": {"type": "string"},
                "planet_type": {"type": "string"},
                "home_star": {"type": "string"},
                "mass": {"type": "number"},
                "radius": {"type": "number"},
                "distance": {"type": "number"}
            }
        },
        "response.CreatedPlanet": {
            "type": "object",
            "properties": {
                "planet_id": {"type": "integer", "example": 4}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "That planet does not exist"},
                "status": {"type": "string", "example": "Error"}
            }
        },
        "response.LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "message": {"type": "string", "example": "Login Succeeded"},
                "status": {"type": "string", "example": "OK"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Planetary API",
	Description:      "CRUD каталога планет с авторизацией по bearer-токену",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
