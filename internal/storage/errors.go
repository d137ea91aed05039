// Package storage объявляет ошибки слоя хранения, общие для репозитория и бизнес-логики.
package storage

import "errors"

var (
	// ErrPlanetNotFound планета с указанным идентификатором отсутствует.
	ErrPlanetNotFound = errors.New("planet not found")
	// ErrPlanetExists планета с таким именем уже есть (нарушение UNIQUE).
	ErrPlanetExists = errors.New("planet already exists")
	// ErrUserNotFound пользователь с указанным email отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists email уже зарегистрирован (нарушение UNIQUE).
	ErrUserExists = errors.New("user already exists")
)
