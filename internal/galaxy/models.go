package galaxy

import (
	"time"

	"galaxy-server/internal/galaxygen"

	"github.com/google/uuid"
)

// Snapshot is one persisted generation run. Config and payload are stored as
// JSON so a snapshot can be replayed or diffed without regenerating.
type Snapshot struct {
	ID           uuid.UUID              `json:"id"`
	Seed         int64                  `json:"seed"`
	Config       galaxygen.GalaxyConfig `json:"config"`
	Galaxy       *galaxygen.Galaxy      `json:"galaxy"`
	SystemCount  int                    `json:"system_count"`
	LaneCount    int                    `json:"lane_count"`
	AnomalyCount int                    `json:"anomaly_count"`
	CreatedAt    time.Time              `json:"created_at"`
}

// GenerateRequest carries optional overrides for one generation run. Nil
// fields fall back to the server's configured defaults.
type GenerateRequest struct {
	Seed      *int64   `json:"seed,omitempty"`
	Radius    *float64 `json:"radius,omitempty"`
	Systems   *int     `json:"systems,omitempty"`
	Anomalies *int     `json:"anomalies,omitempty"`
}

// HealthReport summarizes the structural state of the current galaxy.
type HealthReport struct {
	SnapshotID     uuid.UUID `json:"snapshot_id"`
	Seed           int64     `json:"seed"`
	SystemCount    int       `json:"system_count"`
	LaneCount      int       `json:"lane_count"`
	AnomalyCount   int       `json:"anomaly_count"`
	AvgConnections float64   `json:"avg_connections"`
	IsolatedCount  int       `json:"isolated_count"`
	Connected      bool      `json:"connected"`
	GeneratedAt    time.Time `json:"generated_at"`
}
