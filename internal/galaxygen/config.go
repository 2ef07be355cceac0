package galaxygen

import (
	apperrors "galaxy-server/internal/shared/errors"
)

// SystemClass is a system's topological tier. It governs how generous the
// lane-distance threshold is around that system.
type SystemClass string

const (
	ClassOrigin SystemClass = "origin"
	ClassCore   SystemClass = "core"
	ClassRim    SystemClass = "rim"
)

// StarvationPolicy decides what happens when rejection sampling exhausts its
// attempt cap without finding a valid position.
type StarvationPolicy string

const (
	// StarvationDrop discards the slot; the output may hold fewer
	// sites/anomalies than requested.
	StarvationDrop StarvationPolicy = "drop"
	// StarvationAcceptLast keeps the last sampled position even though it
	// violates the separation minimum.
	StarvationAcceptLast StarvationPolicy = "accept_last"
)

// FixedSystemSpec describes a designer-specified system. It either carries
// exact coordinates or a polar constraint (TargetDistance ± DistanceTolerance
// from the galactic center at a random angle).
type FixedSystemSpec struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Class             SystemClass `json:"class"`
	HasFixedPosition  bool        `json:"has_fixed_position"`
	X                 float64     `json:"x"`
	Y                 float64     `json:"y"`
	TargetDistance    float64     `json:"target_distance"`
	DistanceTolerance float64     `json:"distance_tolerance"`
}

// ConnectivityConfig tunes the lane builder.
type ConnectivityConfig struct {
	MinConnections        int     `json:"min_connections"`
	MaxConnections        int     `json:"max_connections"`
	MaxDistance           float64 `json:"max_distance"`
	DistanceDecayFactor   float64 `json:"distance_decay_factor"`
	UseTieredConnectivity bool    `json:"use_tiered_connectivity"`
}

// NeighborConfig tunes the k-nearest neighbor graph. MaxNeighbors must stay
// in [3, 8]. A DistanceCap of zero means twice the galaxy radius, which in
// practice only excludes pathological pairs.
type NeighborConfig struct {
	MaxNeighbors int     `json:"max_neighbors"`
	DistanceCap  float64 `json:"distance_cap"`
}

// GalaxyConfig is the immutable input to a generation run.
type GalaxyConfig struct {
	Seed            int64   `json:"seed"`
	Radius          float64 `json:"radius"`
	StarSystemCount int     `json:"star_system_count"`
	AnomalyCount    int     `json:"anomaly_count"`

	// MinSiteDistance is the minimum separation between any two sites.
	MinSiteDistance float64 `json:"min_site_distance"`

	Connectivity ConnectivityConfig `json:"connectivity"`
	Neighbors    NeighborConfig     `json:"neighbors"`

	SitePlacement    StarvationPolicy `json:"site_placement"`
	AnomalyPlacement StarvationPolicy `json:"anomaly_placement"`

	// AnomalyMinDistance separates anomalies from each other;
	// AnomalySystemMinDistance separates anomalies from systems.
	AnomalyMinDistance       float64 `json:"anomaly_min_distance"`
	AnomalySystemMinDistance float64 `json:"anomaly_system_min_distance"`

	FixedSystems []FixedSystemSpec `json:"fixed_systems"`
}

// DefaultConfig returns the standard galaxy the game ships with: a 500 LY
// disk, 400 systems, 25 anomalies, and the seven canonical fixed systems
// around Sol.
func DefaultConfig() GalaxyConfig {
	return GalaxyConfig{
		Seed:            1111111111,
		Radius:          500,
		StarSystemCount: 400,
		AnomalyCount:    25,
		MinSiteDistance: 2.5,
		Connectivity: ConnectivityConfig{
			MinConnections:        1,
			MaxConnections:        8,
			MaxDistance:           10.0,
			DistanceDecayFactor:   0.8,
			UseTieredConnectivity: true,
		},
		Neighbors: NeighborConfig{
			MaxNeighbors: 6,
		},
		SitePlacement:            StarvationDrop,
		AnomalyPlacement:         StarvationAcceptLast,
		AnomalyMinDistance:       2.0,
		AnomalySystemMinDistance: 3.0,
		FixedSystems:             DefaultFixedSystems(),
	}
}

// DefaultFixedSystems returns the canonical designer-specified systems. Sol
// and its real stellar neighbors use exact coordinates; the two fictional rim
// systems use polar distance constraints.
func DefaultFixedSystems() []FixedSystemSpec {
	return []FixedSystemSpec{
		{ID: "sol", Name: "Sol System", Class: ClassOrigin, HasFixedPosition: true, X: 0.0, Y: 0.0},
		{ID: "alpha-centauri", Name: "Alpha Centauri", Class: ClassCore, HasFixedPosition: true, X: 4.37, Y: 0.0},
		{ID: "tau-ceti", Name: "Tau Ceti", Class: ClassCore, HasFixedPosition: true, X: -7.8, Y: 9.1},
		{ID: "barnards-star", Name: "Barnard's Star", Class: ClassCore, HasFixedPosition: true, X: 2.1, Y: -5.6},
		{ID: "bellatrix", Name: "Bellatrix", Class: ClassRim, HasFixedPosition: true, X: 180.0, Y: 165.0},
		{ID: "lumiere", Name: "Lumière", Class: ClassRim, TargetDistance: 250.0, DistanceTolerance: 20.0},
		{ID: "aspida", Name: "Aspida", Class: ClassRim, TargetDistance: 350.0, DistanceTolerance: 20.0},
	}
}

// Validate rejects malformed configurations before any allocation happens.
func (c GalaxyConfig) Validate() error {
	if c.Radius <= 0 {
		return apperrors.Validationf("galaxy radius must be positive, got %v", c.Radius)
	}
	if c.StarSystemCount <= 0 {
		return apperrors.Validationf("star system count must be positive, got %d", c.StarSystemCount)
	}
	if c.AnomalyCount < 0 {
		return apperrors.Validationf("anomaly count must not be negative, got %d", c.AnomalyCount)
	}
	if c.MinSiteDistance <= 0 {
		return apperrors.Validationf("minimum site distance must be positive, got %v", c.MinSiteDistance)
	}
	if len(c.FixedSystems) > c.StarSystemCount {
		return apperrors.Validationf("%d fixed systems exceed requested system count %d",
			len(c.FixedSystems), c.StarSystemCount)
	}
	if k := c.Neighbors.MaxNeighbors; k < 3 || k > 8 {
		return apperrors.Validationf("neighbor count must be in [3, 8], got %d", k)
	}
	if c.Connectivity.MaxDistance <= 0 {
		return apperrors.Validationf("connectivity max distance must be positive, got %v", c.Connectivity.MaxDistance)
	}
	if c.Connectivity.MinConnections < 0 || c.Connectivity.MaxConnections < c.Connectivity.MinConnections {
		return apperrors.Validationf("connection bounds invalid: min %d, max %d",
			c.Connectivity.MinConnections, c.Connectivity.MaxConnections)
	}
	seen := make(map[string]bool, len(c.FixedSystems))
	for _, fs := range c.FixedSystems {
		if fs.ID == "" {
			return apperrors.Validation("fixed system with empty id")
		}
		if seen[fs.ID] {
			return apperrors.Validationf("duplicate fixed system id %q", fs.ID)
		}
		seen[fs.ID] = true
	}
	switch c.SitePlacement {
	case StarvationDrop, StarvationAcceptLast:
	default:
		return apperrors.Validationf("unknown site placement policy %q", c.SitePlacement)
	}
	switch c.AnomalyPlacement {
	case StarvationDrop, StarvationAcceptLast:
	default:
		return apperrors.Validationf("unknown anomaly placement policy %q", c.AnomalyPlacement)
	}
	return nil
}

// neighborDistanceCap resolves the configured cap, defaulting to the galaxy
// diameter.
func (c GalaxyConfig) neighborDistanceCap() float64 {
	if c.Neighbors.DistanceCap > 0 {
		return c.Neighbors.DistanceCap
	}
	return c.Radius * 2.0
}
