package galaxy

import (
	"context"
	"encoding/json"
	"log/slog"

	"galaxy-server/internal/galaxygen"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/redis"
)

const latestSnapshotCacheKey = "galaxy:snapshot:latest"

type Service struct {
	repo    *Repository
	cache   *redis.Client
	catalog galaxygen.DetailCatalog
	logger  *slog.Logger
}

// NewService wires the generation pipeline to persistence. The cache client
// may be nil when Redis is disabled; the catalog may be nil when no detail
// tagging is wanted.
func NewService(repo *Repository, cache *redis.Client, catalog galaxygen.DetailCatalog, logger *slog.Logger) *Service {
	logger.Debug("Initializing galaxy service")

	return &Service{
		repo:    repo,
		cache:   cache,
		catalog: catalog,
		logger:  logger,
	}
}

// Generate runs the pipeline with the request's overrides applied on top of
// the configured defaults, persists the result and refreshes the cache.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Snapshot, error) {
	cfg := s.buildConfig(req)

	logger := s.logger.With(
		"component", "galaxy_service",
		"operation", "generate",
		"seed", cfg.Seed,
		"systems", cfg.StarSystemCount,
	)
	logger.Info("Generating galaxy")

	g, err := galaxygen.NewGenerator(cfg, s.catalog).Generate()
	if err != nil {
		logger.Error("Galaxy generation failed", "error", err)
		return nil, err
	}

	snapshot, err := s.repo.SaveSnapshot(ctx, g)
	if err != nil {
		return nil, err
	}

	s.cacheSnapshot(ctx, snapshot)
	return snapshot, nil
}

// Current returns the latest snapshot, preferring the cache over the
// database. A cache miss or decode failure falls through to the repository.
func (s *Service) Current(ctx context.Context) (*Snapshot, error) {
	logger := s.logger.With("component", "galaxy_service", "operation", "current")

	if cached := s.cachedSnapshot(ctx); cached != nil {
		logger.Debug("Serving galaxy snapshot from cache", "snapshot_id", cached.ID)
		return cached, nil
	}

	snapshot, err := s.repo.GetLatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSnapshot(ctx, snapshot)
	return snapshot, nil
}

// Health computes the structural health of the current galaxy.
func (s *Service) Health(ctx context.Context) (*HealthReport, error) {
	snapshot, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	g := snapshot.Galaxy
	isolated := 0
	for i := range g.Systems {
		if len(g.Systems[i].Connections) == 0 {
			isolated++
		}
	}

	avg := 0.0
	if len(g.Systems) > 0 {
		avg = float64(2*len(g.Lanes)) / float64(len(g.Systems))
	}

	return &HealthReport{
		SnapshotID:     snapshot.ID,
		Seed:           snapshot.Seed,
		SystemCount:    len(g.Systems),
		LaneCount:      len(g.Lanes),
		AnomalyCount:   len(g.Anomalies),
		AvgConnections: avg,
		IsolatedCount:  isolated,
		Connected:      isConnected(g),
		GeneratedAt:    snapshot.CreatedAt,
	}, nil
}

// FindSystem looks a system up by id in the current galaxy.
func (s *Service) FindSystem(ctx context.Context, systemID string) (*galaxygen.StarSystem, error) {
	snapshot, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	for i := range snapshot.Galaxy.Systems {
		if snapshot.Galaxy.Systems[i].ID == systemID {
			return &snapshot.Galaxy.Systems[i], nil
		}
	}
	return nil, nil
}

func (s *Service) buildConfig(req GenerateRequest) galaxygen.GalaxyConfig {
	defaults := config.GlobalConfig.Galaxy

	cfg := galaxygen.DefaultConfig()
	cfg.Seed = defaults.Seed
	cfg.Radius = defaults.Radius
	cfg.StarSystemCount = defaults.StarSystemCount
	cfg.AnomalyCount = defaults.AnomalyCount

	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}
	if req.Radius != nil {
		cfg.Radius = *req.Radius
	}
	if req.Systems != nil {
		cfg.StarSystemCount = *req.Systems
	}
	if req.Anomalies != nil {
		cfg.AnomalyCount = *req.Anomalies
	}

	return cfg
}

func (s *Service) cacheSnapshot(ctx context.Context, snapshot *Snapshot) {
	if s.cache == nil {
		return
	}
	logger := s.logger.With("component", "galaxy_service", "operation", "cache_snapshot", "snapshot_id", snapshot.ID)

	payload, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal snapshot for cache", "error", err)
		return
	}

	ttl := config.GlobalConfig.Galaxy.CacheTTL
	if err := s.cache.Set(ctx, latestSnapshotCacheKey, payload, ttl).Err(); err != nil {
		logger.Warn("Failed to cache galaxy snapshot", "error", err)
		return
	}
	logger.Debug("Galaxy snapshot cached", "ttl", ttl)
}

func (s *Service) cachedSnapshot(ctx context.Context) *Snapshot {
	if s.cache == nil {
		return nil
	}
	logger := s.logger.With("component", "galaxy_service", "operation", "cached_snapshot")

	payload, err := s.cache.Get(ctx, latestSnapshotCacheKey).Bytes()
	if err != nil {
		return nil
	}

	var snapshot Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		logger.Warn("Failed to decode cached snapshot, falling back to database", "error", err)
		return nil
	}
	return &snapshot
}

// isConnected checks single-component reachability over the lane list.
func isConnected(g *galaxygen.Galaxy) bool {
	n := len(g.Systems)
	if n == 0 {
		return true
	}

	index := make(map[string]int, n)
	for i := range g.Systems {
		index[g.Systems[i].ID] = i
	}
	adj := make([][]int, n)
	for _, lane := range g.Lanes {
		f, ok1 := index[lane.From]
		t, ok2 := index[lane.To]
		if !ok1 || !ok2 {
			continue
		}
		adj[f] = append(adj[f], t)
		adj[t] = append(adj[t], f)
	}

	seen := make([]bool, n)
	queue := []int{0}
	seen[0] = true
	reached := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		reached++
		for _, next := range adj[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return reached == n
}
