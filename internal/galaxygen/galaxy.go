package galaxygen

import "math"

// Resources holds a system's starting stockpile rolls. They are cosmetic
// outputs: the graph algorithms never read them.
type Resources struct {
	Minerals int `json:"minerals"`
	Energy   int `json:"energy"`
	Research int `json:"research"`
}

// StarSystem is one node of the travel network.
type StarSystem struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Class      SystemClass `json:"class"`
	IsFixed    bool        `json:"is_fixed"`
	Explored   bool        `json:"explored"`
	Population int         `json:"population"`
	GDP        float64     `json:"gdp"`
	Resources  Resources   `json:"resources"`
	HasDetail  bool        `json:"has_detail"`

	// Connections lists connected system ids in lane-creation order. It is
	// kept in sync with the lane list by the graph builder.
	Connections []string `json:"connections"`
}

// WarpLane is an edge of the travel network. Exactly one lane exists per
// unordered system pair.
type WarpLane struct {
	ID         string  `json:"id"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	Distance   float64 `json:"distance"`
	TravelTime int     `json:"travel_time"`
	Discovered bool    `json:"discovered"`
}

// AnomalyCategory classifies a map anomaly.
type AnomalyCategory string

const (
	AnomalyNebula    AnomalyCategory = "nebula"
	AnomalyBlackHole AnomalyCategory = "blackhole"
	AnomalyWormhole  AnomalyCategory = "wormhole"
	AnomalyArtifact  AnomalyCategory = "artifact"
	AnomalyResource  AnomalyCategory = "resource"
)

// AnomalyEffect is determined solely by the anomaly's category.
type AnomalyEffect struct {
	Kind      string  `json:"kind"`
	Magnitude float64 `json:"magnitude"`
}

type Anomaly struct {
	ID         string          `json:"id"`
	Category   AnomalyCategory `json:"category"`
	Name       string          `json:"name"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Discovered bool            `json:"discovered"`
	Effect     AnomalyEffect   `json:"effect"`
}

type Bounds struct {
	MinX   float64 `json:"min_x"`
	MaxX   float64 `json:"max_x"`
	MinY   float64 `json:"min_y"`
	MaxY   float64 `json:"max_y"`
	Radius float64 `json:"radius"`
}

// GenerationStats records what the pipeline had to do beyond the happy path.
// Starvation counts are how tests distinguish "fewer outputs than requested"
// from a silent bug.
type GenerationStats struct {
	DroppedSites     int `json:"dropped_sites"`
	StarvedSites     int `json:"starved_sites"`
	StarvedAnomalies int `json:"starved_anomalies"`
	DroppedAnomalies int `json:"dropped_anomalies"`
	IsolatedRepairs  int `json:"isolated_repairs"`
	BridgeLanes      int `json:"bridge_lanes"`
	RedundantLanes   int `json:"redundant_lanes"`
}

// Galaxy is the sole artifact handed to external collaborators.
type Galaxy struct {
	Config    GalaxyConfig    `json:"config"`
	Systems   []StarSystem    `json:"systems"`
	Lanes     []WarpLane      `json:"warp_lanes"`
	Anomalies []Anomaly       `json:"anomalies"`
	Bounds    Bounds          `json:"bounds"`
	Stats     GenerationStats `json:"stats"`
}

func distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

func systemDistance(a, b *StarSystem) float64 {
	return distance(a.X, a.Y, b.X, b.Y)
}
