package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/planetary-api/internal/models"
	"github.com/magabrotheeeer/planetary-api/internal/storage"
)

// ListPlanets возвращает все планеты, упорядоченные по planet_id.
func (s *Storage) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	const op = "storage.ListPlanets"

	query := `SELECT planet_id, planet_name, planet_type, home_star, mass, radius, distance
			  FROM planets
			  ORDER BY planet_id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Planet, 0)
	for rows.Next() {
		var p models.Planet
		if err := rows.Scan(&p.PlanetID, &p.PlanetName, &p.PlanetType, &p.HomeStar,
			&p.Mass, &p.Radius, &p.Distance); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPlanet возвращает планету по идентификатору или storage.ErrPlanetNotFound.
func (s *Storage) GetPlanet(ctx context.Context, id int) (*models.Planet, error) {
	const op = "storage.GetPlanet"

	query := `SELECT planet_id, planet_name, planet_type, home_star, mass, radius, distance
			  FROM planets
			  WHERE planet_id = $1`
	var p models.Planet
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&p.PlanetID, &p.PlanetName, &p.PlanetType,
		&p.HomeStar, &p.Mass, &p.Radius, &p.Distance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPlanetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// CreatePlanet вставляет планету и возвращает её идентификатор.
// Повтор имени возвращает storage.ErrPlanetExists.
func (s *Storage) CreatePlanet(ctx context.Context, p models.Planet) (int, error) {
	const op = "storage.CreatePlanet"

	query := `INSERT INTO planets (planet_name, planet_type, home_star, mass, radius, distance)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING planet_id`
	var id int
	err := s.DB.QueryRowContext(ctx, query,
		p.PlanetName, p.PlanetType, p.HomeStar, p.Mass, p.Radius, p.Distance).Scan(&id)
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrPlanetExists)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// UpdatePlanet перезаписывает все поля планеты одним UPDATE.
func (s *Storage) UpdatePlanet(ctx context.Context, p models.Planet) error {
	const op = "storage.UpdatePlanet"

	query := `UPDATE planets
			  SET planet_name = $1, planet_type = $2, home_star = $3,
			      mass = $4, radius = $5, distance = $6
			  WHERE planet_id = $7`
	result, err := s.DB.ExecContext(ctx, query,
		p.PlanetName, p.PlanetType, p.HomeStar, p.Mass, p.Radius, p.Distance, p.PlanetID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, storage.ErrPlanetExists)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPlanetNotFound)
	}
	return nil
}

// DeletePlanet удаляет планету по идентификатору.
func (s *Storage) DeletePlanet(ctx context.Context, id int) error {
	const op = "storage.DeletePlanet"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM planets WHERE planet_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPlanetNotFound)
	}
	return nil
}
