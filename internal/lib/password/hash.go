// Package password реализует хеширование и проверку паролей через bcrypt.
package password

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength предел bcrypt в байтах.
const MaxLength = 72

var (
	// ErrMismatch возвращается, когда пароль не соответствует хэшу.
	ErrMismatch = errors.New("password mismatch")
	// ErrTooLong возвращается для пароля длиннее MaxLength байт.
	ErrTooLong = errors.New("password is longer than 72 bytes")
)

// Сравнение с dummyHash выравнивает время ответа для несуществующего пользователя.
var (
	dummyOnce sync.Once
	dummyHash []byte
)

// GetHash возвращает bcrypt-хэш пароля.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	if len(password) > MaxLength {
		return "", fmt.Errorf("%s: %w", op, ErrTooLong)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает хэш с введённым паролем за постоянное время.
// Возвращает nil при совпадении, ErrMismatch при несовпадении.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return fmt.Errorf("%s: %w", op, ErrMismatch)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CompareDummy выполняет ту же работу, что и CompareHash, но всегда возвращает ErrMismatch.
func CompareDummy(externalPassword string) error {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("planetary-dummy-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(externalPassword))
	return fmt.Errorf("password.CompareDummy: %w", ErrMismatch)
}
