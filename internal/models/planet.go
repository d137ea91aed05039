// Package models содержит доменные структуры планет и пользователей,
// а также структуры для приёма данных из форм и JSON-запросов.
package models

// Planet представляет запись таблицы planets.
// Сериализуется в плоский JSON без вложенных полей.
type Planet struct {
	PlanetID   int     `json:"planet_id"`
	PlanetName string  `json:"planet_name"`
	PlanetType string  `json:"planet_type"`
	HomeStar   string  `json:"home_star"`
	Mass       float64 `json:"mass"`
	Radius     float64 `json:"radius"`
	Distance   float64 `json:"distance"`
}

// DummyPlanet используется для приёма полей планеты из формы
// до валидации и преобразования в Planet.
// Числовые поля хранятся указателями, чтобы отличить отсутствующее поле от нуля.
type DummyPlanet struct {
	PlanetName string   `form:"planet_name" validate:"required"`
	PlanetType string   `form:"planet_type" validate:"required"`
	HomeStar   string   `form:"home_star" validate:"required"`
	Mass       *float64 `form:"mass" validate:"required,finite,gte=0"`
	Radius     *float64 `form:"radius" validate:"required,finite,gte=0"`
	Distance   *float64 `form:"distance" validate:"required,finite,gte=0"`
}

// DummyPlanetUpdate форма обновления: идентификатор и полный набор полей.
type DummyPlanetUpdate struct {
	PlanetID   int      `form:"planet_id" validate:"required,gt=0"`
	PlanetName string   `form:"planet_name" validate:"required"`
	PlanetType string   `form:"planet_type" validate:"required"`
	HomeStar   string   `form:"home_star" validate:"required"`
	Mass       *float64 `form:"mass" validate:"required,finite,gte=0"`
	Radius     *float64 `form:"radius" validate:"required,finite,gte=0"`
	Distance   *float64 `form:"distance" validate:"required,finite,gte=0"`
}

// ToPlanet возвращает Planet с идентификатором из формы.
func (d DummyPlanetUpdate) ToPlanet() Planet {
	p := DummyPlanet{
		PlanetName: d.PlanetName,
		PlanetType: d.PlanetType,
		HomeStar:   d.HomeStar,
		Mass:       d.Mass,
		Radius:     d.Radius,
		Distance:   d.Distance,
	}.ToPlanet()
	p.PlanetID = d.PlanetID
	return p
}

// ToPlanet переносит провалидированные поля формы в Planet.
func (d DummyPlanet) ToPlanet() Planet {
	p := Planet{
		PlanetName: d.PlanetName,
		PlanetType: d.PlanetType,
		HomeStar:   d.HomeStar,
	}
	if d.Mass != nil {
		p.Mass = *d.Mass
	}
	if d.Radius != nil {
		p.Radius = *d.Radius
	}
	if d.Distance != nil {
		p.Distance = *d.Distance
	}
	return p
}
