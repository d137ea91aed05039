package models

// User представляет зарегистрированного пользователя.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	ID           int    // Идентификатор пользователя
	Name         string // Отображаемое имя
	Email        string // Электронная почта, используется как логин (уникальная)
	PasswordHash string // Хэш пароля
}

// DummyUser данные формы регистрации.
// Формат email не проверяется: это просто уникальный логин.
type DummyUser struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Credentials данные для входа, принимаются как JSON или как форма.
type Credentials struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}
