package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/planetary-api/internal/migrations"
	"github.com/magabrotheeeer/planetary-api/internal/models"
)

// TestDataFactory создаёт тестовые данные в обход репозитория.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создаёт фабрику тестовых данных.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreatePlanet вставляет планету и возвращает её идентификатор.
func (f *TestDataFactory) CreatePlanet(t *testing.T, p models.Planet) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO planets
		(planet_name, planet_type, home_star, mass, radius, distance)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING planet_id`,
		p.PlanetName, p.PlanetType, p.HomeStar, p.Mass, p.Radius, p.Distance).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateUser вставляет пользователя и возвращает его идентификатор.
func (f *TestDataFactory) CreateUser(t *testing.T, name, email, passwordHash string) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3) RETURNING id`, name, email, passwordHash).Scan(&id)
	require.NoError(t, err)
	return id
}

// countRows возвращает число строк в таблице.
func countRows(t *testing.T, storage *Storage, table string) int {
	var count int
	err := storage.DB.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	require.NoError(t, err)
	return count
}

func mercury() models.Planet {
	return models.Planet{PlanetName: "Mercury", PlanetType: "Class D", HomeStar: "Sol",
		Mass: 3.258e23, Radius: 1516, Distance: 35.98e6}
}

func venus() models.Planet {
	return models.Planet{PlanetName: "Venus", PlanetType: "Class k", HomeStar: "Sol",
		Mass: 4.86724, Radius: 3760, Distance: 67.24e6}
}

func earth() models.Planet {
	return models.Planet{PlanetName: "Earth", PlanetType: "Class M", HomeStar: "Sol",
		Mass: 5.972e24, Radius: 3959, Distance: 92.96e6}
}

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()
	pgPort := nat.Port("5432/tcp")

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(pgPort),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(3 * time.Minute),
	}

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err, "failed to get host")
	port, err := postgresContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err, "failed to get port")

	connStr := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	require.NoError(t, migrations.Up(storage.DB), "failed to create tables")

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			_ = storage.DB.Close()
		}
		if postgresContainer != nil {
			_ = postgresContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}
