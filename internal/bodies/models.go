package bodies

// ResourceType identifies a strategic resource found on a celestial body.
type ResourceType string

const (
	ResourceMinerals       ResourceType = "minerals"
	ResourceRareMetals     ResourceType = "rare_metals"
	ResourceEnergyCrystals ResourceType = "energy_crystals"
	ResourceWaterIce       ResourceType = "water_ice"
	ResourceHelium3        ResourceType = "helium_3"
	ResourceDeuterium      ResourceType = "deuterium"
	ResourceAntimatter     ResourceType = "antimatter"
	ResourceExoticMatter   ResourceType = "exotic_matter"
)

// ResourceDeposit is one extractable deposit. Abundance and accessibility
// both run on a 0-100 scale.
type ResourceDeposit struct {
	Type          ResourceType `json:"type"`
	Abundance     int          `json:"abundance"`
	Accessibility int          `json:"accessibility"`
}

// Body holds the physical properties shared by planets, moons and asteroids.
// DistanceFromParent is in AU for planets and asteroids, km for moons.
// Gravity and Habitability are percentages of Earth's.
type Body struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Type               string            `json:"type"`
	DistanceFromParent float64           `json:"distance_from_parent"`
	Radius             float64           `json:"radius"`
	Diameter           float64           `json:"diameter"`
	Mass               float64           `json:"mass"`
	Gravity            float64           `json:"gravity"`
	Habitability       int               `json:"habitability"`
	Atmosphere         string            `json:"atmosphere"`
	Composition        string            `json:"composition"`
	Resources          []ResourceDeposit `json:"resources"`
}

// Planet is a body orbiting the system's star, optionally with moons.
type Planet struct {
	Body
	Moons []Body `json:"moons"`
}

// SystemDetail is the full celestial inventory of one star system.
type SystemDetail struct {
	SystemID        string   `json:"system_id"`
	SystemName      string   `json:"system_name"`
	StarType        string   `json:"star_type"`
	StarMass        float64  `json:"star_mass"`
	StarRadius      float64  `json:"star_radius"`
	StarTemperature int      `json:"star_temperature"`
	Planets         []Planet `json:"planets"`
	Asteroids       []Body   `json:"asteroids"`
}
