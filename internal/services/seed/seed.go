// Package services заполняет базу начальным набором планет и тестовым пользователем.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/planetary-api/internal/lib/password"
	"github.com/magabrotheeeer/planetary-api/internal/models"
)

// SeedRepository записывает начальные данные одной транзакцией.
type SeedRepository interface {
	Seed(ctx context.Context, planets []models.Planet, users []models.User) error
}

// TestUserPassword пароль тестового пользователя до хэширования.
const TestUserPassword = "P@ssw0rd"

// Planets возвращает планеты начального набора.
func Planets() []models.Planet {
	return []models.Planet{
		{PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "Sol", Mass: 3.258e23, Radius: 1516, Distance: 35.98e6},
		{PlanetName: "Venus", PlanetType: "Class k", HomeStar: "Sol", Mass: 4.86724, Radius: 3760, Distance: 67.24e6},
		{PlanetName: "Earth", PlanetType: "Class M", HomeStar: "Sol", Mass: 5.972e24, Radius: 3959, Distance: 92.96e6},
	}
}

// SeedService готовит и сохраняет начальные данные.
type SeedService struct {
	repo SeedRepository
	log  *slog.Logger
}

// NewSeedService создает новый экземпляр SeedService.
func NewSeedService(repo SeedRepository, log *slog.Logger) *SeedService {
	return &SeedService{repo: repo, log: log}
}

// Seed записывает Mercury, Venus, Earth и пользователя William Hershel.
// Повторный вызов на заполненной базе вернёт ошибку конфликта и ничего не изменит.
func (s *SeedService) Seed(ctx context.Context) error {
	const op = "services.seed.Seed"
	hashed, err := password.GetHash(TestUserPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	users := []models.User{{
		Name:         "William Hershel",
		Email:        "william.hershel@bofa.com",
		PasswordHash: hashed,
	}}
	planets := Planets()
	if err := s.repo.Seed(ctx, planets, users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("database seeded", slog.Int("planets", len(planets)), slog.Int("users", len(users)))
	return nil
}
