// Package jwt реализует выпуск и проверку bearer-токенов доступа.
//
// Токен подписывается HS256 общим секретом, в subject токена лежит email пользователя.
package jwt

import (
	"time"
)

// Maker описывает выпуск и разбор токенов доступа.
type Maker interface {
	GenerateToken(email string) (string, error)
	ParseToken(tokenStr string) (*Claims, error)
}

var _ Maker = (*MakerImpl)(nil)

// MakerImpl реализует Maker на основе секретного ключа и времени жизни токена.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт MakerImpl.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
