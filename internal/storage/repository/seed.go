package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/planetary-api/internal/models"
	"github.com/magabrotheeeer/planetary-api/internal/storage"
)

// Seed вставляет планеты и пользователей в одной транзакции.
// При любом конфликте уникальности транзакция откатывается целиком.
func (s *Storage) Seed(ctx context.Context, planets []models.Planet, users []models.User) error {
	const op = "storage.Seed"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range planets {
		_, err := tx.ExecContext(ctx, `INSERT INTO planets
			(planet_name, planet_type, home_star, mass, radius, distance)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			p.PlanetName, p.PlanetType, p.HomeStar, p.Mass, p.Radius, p.Distance)
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %s: %w", op, p.PlanetName, storage.ErrPlanetExists)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	for _, u := range users {
		_, err := tx.ExecContext(ctx, `INSERT INTO users (name, email, password_hash)
			VALUES ($1, $2, $3)`, u.Name, u.Email, u.PasswordHash)
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %s: %w", op, u.Email, storage.ErrUserExists)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
