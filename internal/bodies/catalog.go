// Package bodies serves the celestial inventory of star systems: a
// hand-authored catalog for systems with canonical contents, and seeded
// random generation for everything else.
package bodies

import "log/slog"

// Catalog resolves system details. Predefined systems always return the same
// hand-authored data; unknown systems get a detail generated from a seed
// derived from their id, so repeated lookups agree.
type Catalog struct {
	predefined map[string]*SystemDetail
	logger     *slog.Logger
}

func NewCatalog() *Catalog {
	c := &Catalog{
		predefined: make(map[string]*SystemDetail),
		logger:     slog.With("component", "bodies"),
	}
	c.predefined["sol"] = solSystemDetail()
	c.logger.Debug("Loaded predefined system details", "count", len(c.predefined))
	return c
}

// HasDetail reports whether a hand-authored detail exists for the system.
func (c *Catalog) HasDetail(systemID string) bool {
	_, ok := c.predefined[systemID]
	return ok
}

// Get returns the detail for a system, generating one when no predefined
// entry exists.
func (c *Catalog) Get(systemID, systemName string) *SystemDetail {
	if detail, ok := c.predefined[systemID]; ok {
		return detail
	}
	return GenerateRandom(systemID, systemName)
}

func solSystemDetail() *SystemDetail {
	mercury := Planet{Body: Body{
		ID: "mercury", Name: "Mercury", Type: "planet",
		DistanceFromParent: 0.39, Radius: 2439.7, Diameter: 4879.4,
		Mass: 0.055, Gravity: 38, Habitability: 0,
		Atmosphere:  "Extremely thin (oxygen, sodium, hydrogen, helium, potassium)",
		Composition: "Iron core, silicate mantle and crust",
		Resources: []ResourceDeposit{
			{ResourceMinerals, 85, 70},
			{ResourceRareMetals, 60, 45},
			{ResourceEnergyCrystals, 25, 30},
		},
	}}

	venus := Planet{Body: Body{
		ID: "venus", Name: "Venus", Type: "planet",
		DistanceFromParent: 0.72, Radius: 6051.8, Diameter: 12103.6,
		Mass: 0.815, Gravity: 91, Habitability: 0,
		Atmosphere:  "Dense carbon dioxide with sulfuric acid clouds",
		Composition: "Iron core, silicate mantle and crust",
		Resources: []ResourceDeposit{
			{ResourceMinerals, 75, 25},
			{ResourceRareMetals, 40, 20},
			{ResourceEnergyCrystals, 35, 15},
		},
	}}

	earth := Planet{
		Body: Body{
			ID: "earth", Name: "Earth", Type: "planet",
			DistanceFromParent: 1.0, Radius: 6371.0, Diameter: 12742.0,
			Mass: 1.0, Gravity: 100, Habitability: 100,
			Atmosphere:  "Nitrogen-oxygen with trace gases",
			Composition: "Iron core, silicate mantle and crust, 71% water surface",
			Resources: []ResourceDeposit{
				{ResourceMinerals, 60, 85},
				{ResourceRareMetals, 45, 80},
				{ResourceWaterIce, 95, 95},
				{ResourceDeuterium, 30, 60},
			},
		},
		Moons: []Body{{
			ID: "luna", Name: "Luna", Type: "moon",
			DistanceFromParent: 384400, Radius: 1737.4, Diameter: 3474.8,
			Mass: 0.012, Gravity: 17, Habitability: 0,
			Atmosphere:  "Extremely thin (argon, neon, hydrogen, helium)",
			Composition: "Iron core, silicate mantle and crust",
			Resources: []ResourceDeposit{
				{ResourceMinerals, 70, 75},
				{ResourceRareMetals, 35, 60},
				{ResourceHelium3, 80, 70},
				{ResourceWaterIce, 40, 50},
			},
		}},
	}

	// Mars is terraformed in this setting, hence the nonzero habitability.
	mars := Planet{
		Body: Body{
			ID: "mars", Name: "Mars", Type: "planet",
			DistanceFromParent: 1.52, Radius: 3389.5, Diameter: 6779.0,
			Mass: 0.107, Gravity: 45, Habitability: 75,
			Atmosphere:  "Thickened nitrogen-oxygen with CO2 (terraformed)",
			Composition: "Iron core, silicate mantle and crust",
			Resources: []ResourceDeposit{
				{ResourceMinerals, 80, 80},
				{ResourceRareMetals, 55, 70},
				{ResourceWaterIce, 85, 85},
				{ResourceDeuterium, 25, 65},
			},
		},
		Moons: []Body{
			{
				ID: "phobos", Name: "Phobos", Type: "moon",
				DistanceFromParent: 9376, Radius: 11.3, Diameter: 22.6,
				Mass: 0.000000018, Gravity: 0.6, Habitability: 0,
				Atmosphere:  "None",
				Composition: "Carbonaceous chondrite",
				Resources: []ResourceDeposit{
					{ResourceMinerals, 65, 85},
					{ResourceRareMetals, 30, 75},
				},
			},
			{
				ID: "deimos", Name: "Deimos", Type: "moon",
				DistanceFromParent: 23463, Radius: 6.2, Diameter: 12.4,
				Mass: 0.000000002, Gravity: 0.3, Habitability: 0,
				Atmosphere:  "None",
				Composition: "Carbonaceous chondrite",
				Resources: []ResourceDeposit{
					{ResourceMinerals, 60, 80},
					{ResourceRareMetals, 25, 70},
				},
			},
		},
	}

	jupiter := Planet{
		Body: Body{
			ID: "jupiter", Name: "Jupiter", Type: "planet",
			DistanceFromParent: 5.20, Radius: 69911, Diameter: 139822,
			Mass: 317.8, Gravity: 236, Habitability: 0,
			Atmosphere:  "Hydrogen and helium with trace compounds",
			Composition: "Hydrogen and helium gas giant",
			Resources: []ResourceDeposit{
				{ResourceHelium3, 95, 40},
				{ResourceDeuterium, 90, 45},
				{ResourceEnergyCrystals, 15, 10},
			},
		},
		Moons: []Body{
			{
				ID: "io", Name: "Io", Type: "moon",
				DistanceFromParent: 421700, Radius: 1821.6, Diameter: 3643.2,
				Mass: 0.015, Gravity: 18, Habitability: 0,
				Atmosphere:  "Extremely thin sulfur dioxide",
				Composition: "Silicate rock with iron core",
				Resources: []ResourceDeposit{
					{ResourceMinerals, 90, 60},
					{ResourceRareMetals, 70, 50},
					{ResourceEnergyCrystals, 45, 35},
				},
			},
			{
				ID: "europa", Name: "Europa", Type: "moon",
				DistanceFromParent: 671034, Radius: 1560.8, Diameter: 3121.6,
				Mass: 0.008, Gravity: 13, Habitability: 25,
				Atmosphere:  "Extremely thin oxygen",
				Composition: "Water ice over silicate interior",
				Resources: []ResourceDeposit{
					{ResourceWaterIce, 95, 80},
					{ResourceDeuterium, 60, 70},
					{ResourceMinerals, 50, 40},
					{ResourceExoticMatter, 20, 15},
				},
			},
			{
				ID: "ganymede", Name: "Ganymede", Type: "moon",
				DistanceFromParent: 1070412, Radius: 2634.1, Diameter: 5268.2,
				Mass: 0.025, Gravity: 15, Habitability: 15,
				Atmosphere:  "Extremely thin oxygen",
				Composition: "Water ice and silicate rock",
				Resources: []ResourceDeposit{
					{ResourceWaterIce, 90, 85},
					{ResourceMinerals, 65, 70},
					{ResourceRareMetals, 40, 60},
					{ResourceDeuterium, 45, 75},
				},
			},
			{
				ID: "callisto", Name: "Callisto", Type: "moon",
				DistanceFromParent: 1882709, Radius: 2410.3, Diameter: 4820.6,
				Mass: 0.018, Gravity: 13, Habitability: 10,
				Atmosphere:  "Extremely thin carbon dioxide",
				Composition: "Water ice and silicate rock",
				Resources: []ResourceDeposit{
					{ResourceWaterIce, 85, 80},
					{ResourceMinerals, 60, 65},
					{ResourceRareMetals, 35, 55},
				},
			},
		},
	}

	saturn := Planet{
		Body: Body{
			ID: "saturn", Name: "Saturn", Type: "planet",
			DistanceFromParent: 9.58, Radius: 58232, Diameter: 116464,
			Mass: 95.2, Gravity: 91, Habitability: 0,
			Atmosphere:  "Hydrogen and helium with trace compounds",
			Composition: "Hydrogen and helium gas giant",
			Resources: []ResourceDeposit{
				{ResourceHelium3, 90, 35},
				{ResourceDeuterium, 85, 40},
				{ResourceEnergyCrystals, 20, 12},
			},
		},
		Moons: []Body{
			{
				ID: "titan", Name: "Titan", Type: "moon",
				DistanceFromParent: 1221830, Radius: 2574, Diameter: 5148,
				Mass: 0.023, Gravity: 14, Habitability: 30,
				Atmosphere:  "Dense nitrogen with methane",
				Composition: "Water ice and silicate rock",
				Resources: []ResourceDeposit{
					{ResourceWaterIce, 80, 70},
					{ResourceDeuterium, 70, 80},
					{ResourceRareMetals, 45, 55},
					{ResourceExoticMatter, 25, 20},
				},
			},
			{
				ID: "enceladus", Name: "Enceladus", Type: "moon",
				DistanceFromParent: 238020, Radius: 252.1, Diameter: 504.2,
				Mass: 0.0002, Gravity: 1, Habitability: 20,
				Atmosphere:  "Extremely thin water vapor",
				Composition: "Water ice over silicate core",
				Resources: []ResourceDeposit{
					{ResourceWaterIce, 95, 85},
					{ResourceDeuterium, 55, 75},
					{ResourceExoticMatter, 30, 25},
				},
			},
		},
	}

	uranus := Planet{Body: Body{
		ID: "uranus", Name: "Uranus", Type: "planet",
		DistanceFromParent: 19.2, Radius: 25362, Diameter: 50724,
		Mass: 14.5, Gravity: 89, Habitability: 0,
		Atmosphere:  "Hydrogen, helium, and methane",
		Composition: "Water, methane, and ammonia ices over rock core",
		Resources: []ResourceDeposit{
			{ResourceHelium3, 75, 25},
			{ResourceDeuterium, 70, 30},
			{ResourceRareMetals, 40, 20},
		},
	}}

	neptune := Planet{Body: Body{
		ID: "neptune", Name: "Neptune", Type: "planet",
		DistanceFromParent: 30.1, Radius: 24622, Diameter: 49244,
		Mass: 17.1, Gravity: 113, Habitability: 0,
		Atmosphere:  "Hydrogen, helium, and methane",
		Composition: "Water, methane, and ammonia ices over rock core",
		Resources: []ResourceDeposit{
			{ResourceHelium3, 80, 20},
			{ResourceDeuterium, 75, 25},
			{ResourceRareMetals, 45, 15},
			{ResourceAntimatter, 10, 5},
		},
	}}

	asteroids := []Body{
		{
			ID: "ceres", Name: "Ceres", Type: "asteroid",
			DistanceFromParent: 2.77, Radius: 473, Diameter: 946,
			Mass: 0.00016, Gravity: 3, Habitability: 0,
			Atmosphere:  "Extremely thin water vapor",
			Composition: "Water ice and silicate rock",
			Resources: []ResourceDeposit{
				{ResourceWaterIce, 85, 90},
				{ResourceMinerals, 75, 85},
				{ResourceRareMetals, 50, 80},
			},
		},
		{
			ID: "vesta", Name: "Vesta", Type: "asteroid",
			DistanceFromParent: 2.36, Radius: 262.7, Diameter: 525.4,
			Mass: 0.000044, Gravity: 3, Habitability: 0,
			Atmosphere:  "None",
			Composition: "Basaltic crust over differentiated interior",
			Resources: []ResourceDeposit{
				{ResourceMinerals, 90, 90},
				{ResourceRareMetals, 70, 85},
				{ResourceEnergyCrystals, 35, 70},
			},
		},
		{
			ID: "pallas", Name: "Pallas", Type: "asteroid",
			DistanceFromParent: 2.77, Radius: 272, Diameter: 544,
			Mass: 0.000036, Gravity: 2, Habitability: 0,
			Atmosphere:  "None",
			Composition: "Silicate rock",
			Resources: []ResourceDeposit{
				{ResourceMinerals, 85, 85},
				{ResourceRareMetals, 60, 80},
			},
		},
	}

	return &SystemDetail{
		SystemID:        "sol",
		SystemName:      "Sol System",
		StarType:        "G-class",
		StarMass:        1.0,
		StarRadius:      1.0,
		StarTemperature: 5778,
		Planets:         []Planet{mercury, venus, earth, mars, jupiter, saturn, uranus, neptune},
		Asteroids:       asteroids,
	}
}
