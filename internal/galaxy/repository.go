package galaxy

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"galaxy-server/internal/galaxygen"
	"galaxy-server/internal/shared/database"
	apperrors "galaxy-server/internal/shared/errors"

	"github.com/google/uuid"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing galaxy repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

// SaveSnapshot persists a generated galaxy and returns the stored snapshot.
func (r *Repository) SaveSnapshot(ctx context.Context, g *galaxygen.Galaxy) (*Snapshot, error) {
	logger := r.logger.With(
		"component", "galaxy_repository",
		"operation", "save_snapshot",
		"seed", g.Config.Seed,
	)
	logger.Debug("Saving galaxy snapshot")

	configJSON, err := json.Marshal(g.Config)
	if err != nil {
		logger.Error("Failed to marshal config", "error", err)
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	galaxyJSON, err := json.Marshal(g)
	if err != nil {
		logger.Error("Failed to marshal galaxy", "error", err)
		return nil, fmt.Errorf("failed to marshal galaxy: %w", err)
	}

	snapshot := Snapshot{
		ID:           uuid.New(),
		Seed:         g.Config.Seed,
		Config:       g.Config,
		Galaxy:       g,
		SystemCount:  len(g.Systems),
		LaneCount:    len(g.Lanes),
		AnomalyCount: len(g.Anomalies),
	}

	query := `
		INSERT INTO galaxies (id, seed, config, payload, system_count, lane_count, anomaly_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err = r.db.QueryRowContext(ctx, query,
		snapshot.ID,
		snapshot.Seed,
		configJSON,
		galaxyJSON,
		snapshot.SystemCount,
		snapshot.LaneCount,
		snapshot.AnomalyCount,
	).Scan(&snapshot.CreatedAt)
	if err != nil {
		logger.Error("Failed to insert galaxy snapshot", "error", err)
		return nil, fmt.Errorf("failed to insert galaxy snapshot: %w", err)
	}

	logger.Info("Galaxy snapshot saved", "snapshot_id", snapshot.ID)
	return &snapshot, nil
}

// GetLatestSnapshot returns the most recently generated snapshot.
func (r *Repository) GetLatestSnapshot(ctx context.Context) (*Snapshot, error) {
	logger := r.logger.With("component", "galaxy_repository", "operation", "get_latest_snapshot")
	logger.Debug("Loading latest galaxy snapshot")

	query := `
		SELECT id, seed, config, payload, system_count, lane_count, anomaly_count, created_at
		FROM galaxies
		ORDER BY created_at DESC
		LIMIT 1
	`

	return r.scanSnapshot(r.db.QueryRowContext(ctx, query), logger)
}

// GetSnapshotByID returns one snapshot by its id.
func (r *Repository) GetSnapshotByID(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	logger := r.logger.With("component", "galaxy_repository", "operation", "get_snapshot_by_id", "snapshot_id", id)
	logger.Debug("Loading galaxy snapshot")

	query := `
		SELECT id, seed, config, payload, system_count, lane_count, anomaly_count, created_at
		FROM galaxies
		WHERE id = $1
	`

	return r.scanSnapshot(r.db.QueryRowContext(ctx, query, id), logger)
}

func (r *Repository) scanSnapshot(row *sql.Row, logger *slog.Logger) (*Snapshot, error) {
	var (
		snapshot   Snapshot
		configJSON []byte
		galaxyJSON []byte
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Seed,
		&configJSON,
		&galaxyJSON,
		&snapshot.SystemCount,
		&snapshot.LaneCount,
		&snapshot.AnomalyCount,
		&snapshot.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFoundf("no galaxy snapshot exists")
	}
	if err != nil {
		logger.Error("Failed to scan galaxy snapshot", "error", err)
		return nil, fmt.Errorf("failed to scan galaxy snapshot: %w", err)
	}

	if err := json.Unmarshal(configJSON, &snapshot.Config); err != nil {
		logger.Error("Failed to unmarshal snapshot config", "error", err)
		return nil, fmt.Errorf("failed to unmarshal snapshot config: %w", err)
	}
	var g galaxygen.Galaxy
	if err := json.Unmarshal(galaxyJSON, &g); err != nil {
		logger.Error("Failed to unmarshal snapshot payload", "error", err)
		return nil, fmt.Errorf("failed to unmarshal snapshot payload: %w", err)
	}
	snapshot.Galaxy = &g

	logger.Debug("Galaxy snapshot loaded", "snapshot_id", snapshot.ID, "systems", snapshot.SystemCount)
	return &snapshot, nil
}
