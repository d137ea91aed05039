// Package services содержит бизнес-логику для работы с планетами.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/planetary-api/internal/models"
)

// PlanetRepository определяет методы для работы с планетами в хранилище.
type PlanetRepository interface {
	// ListPlanets возвращает все планеты по возрастанию planet_id.
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	// GetPlanet возвращает планету по ID.
	GetPlanet(ctx context.Context, id int) (*models.Planet, error)
	// CreatePlanet добавляет планету и возвращает её ID.
	CreatePlanet(ctx context.Context, p models.Planet) (int, error)
	// UpdatePlanet перезаписывает все поля планеты.
	UpdatePlanet(ctx context.Context, p models.Planet) error
	// DeletePlanet удаляет планету по ID.
	DeletePlanet(ctx context.Context, id int) error
}

// PlanetService реализует операции над каталогом планет.
type PlanetService struct {
	repo PlanetRepository
	log  *slog.Logger
}

// NewPlanetService создает новый экземпляр PlanetService.
func NewPlanetService(repo PlanetRepository, log *slog.Logger) *PlanetService {
	return &PlanetService{
		repo: repo,
		log:  log,
	}
}

// List возвращает все планеты. Пустой каталог даёт пустой срез, а не nil.
func (s *PlanetService) List(ctx context.Context) ([]models.Planet, error) {
	const op = "services.planet.List"
	planets, err := s.repo.ListPlanets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if planets == nil {
		planets = []models.Planet{}
	}
	return planets, nil
}

// Details возвращает планету по ID.
func (s *PlanetService) Details(ctx context.Context, id int) (*models.Planet, error) {
	const op = "services.planet.Details"
	p, err := s.repo.GetPlanet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Add сохраняет новую планету и возвращает её ID.
func (s *PlanetService) Add(ctx context.Context, p models.Planet) (int, error) {
	const op = "services.planet.Add"
	id, err := s.repo.CreatePlanet(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("planet added", slog.Int("planet_id", id), slog.String("planet_name", p.PlanetName))
	return id, nil
}

// Update перезаписывает планету с p.PlanetID.
func (s *PlanetService) Update(ctx context.Context, p models.Planet) error {
	const op = "services.planet.Update"
	if err := s.repo.UpdatePlanet(ctx, p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("planet updated", slog.Int("planet_id", p.PlanetID))
	return nil
}

// Remove удаляет планету по ID.
func (s *PlanetService) Remove(ctx context.Context, id int) error {
	const op = "services.planet.Remove"
	if err := s.repo.DeletePlanet(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("planet removed", slog.Int("planet_id", id))
	return nil
}
