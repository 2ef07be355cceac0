// Package galaxygen builds deterministic galaxy maps: star systems scattered
// across a disk, a warp-lane network that is always fully connected, and a
// sprinkling of anomalies. The same seed and config always produce the same
// galaxy byte for byte.
package galaxygen

import (
	"log/slog"
)

// DetailCatalog answers whether a hand-authored system detail exists for a
// given system id. The generator only tags systems; it never loads details.
type DetailCatalog interface {
	HasDetail(systemID string) bool
}

// Generator runs one generation pipeline. It is single-use: the seeded RNG
// advances as stages consume it, so a second Generate call on the same
// instance would produce a different galaxy.
type Generator struct {
	cfg     GalaxyConfig
	rng     *SeededRandom
	catalog DetailCatalog
	logger  *slog.Logger
	stats   GenerationStats
}

// NewGenerator prepares a pipeline for the given config. A nil catalog is
// valid and leaves every system untagged.
func NewGenerator(cfg GalaxyConfig, catalog DetailCatalog) *Generator {
	return &Generator{
		cfg:     cfg,
		rng:     NewSeededRandom(cfg.Seed),
		catalog: catalog,
		logger:  slog.With("component", "galaxygen"),
	}
}

// Generate runs the full pipeline and returns the finished galaxy. Stage
// order is fixed because every stage draws from the shared RNG; reordering
// stages changes every galaxy ever generated.
func (g *Generator) Generate() (*Galaxy, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	g.logger.Info("Generating galaxy",
		"seed", g.cfg.Seed,
		"radius", g.cfg.Radius,
		"systems", g.cfg.StarSystemCount,
		"anomalies", g.cfg.AnomalyCount)

	sites := g.placeSites(g.cfg.StarSystemCount)
	g.computeNeighbors(sites)

	systems, err := g.assignSystems(sites)
	if err != nil {
		return nil, err
	}

	gb := newGraphBuilder(systems)
	g.buildLanes(sites, gb)
	g.ensureConnectivity(gb)
	g.addRedundantLanes(gb)

	anomalies := g.placeAnomalies(gb.systems)

	if g.catalog != nil {
		for i := range gb.systems {
			gb.systems[i].HasDetail = g.catalog.HasDetail(gb.systems[i].ID)
		}
	}

	galaxy := &Galaxy{
		Config:    g.cfg,
		Systems:   gb.systems,
		Lanes:     gb.lanes,
		Anomalies: anomalies,
		Bounds: Bounds{
			MinX:   -g.cfg.Radius,
			MaxX:   g.cfg.Radius,
			MinY:   -g.cfg.Radius,
			MaxY:   g.cfg.Radius,
			Radius: g.cfg.Radius,
		},
		Stats: g.stats,
	}

	avgConnections := 0.0
	if len(galaxy.Systems) > 0 {
		avgConnections = float64(2*len(galaxy.Lanes)) / float64(len(galaxy.Systems))
	}
	g.logger.Info("Galaxy generated",
		"systems", len(galaxy.Systems),
		"lanes", len(galaxy.Lanes),
		"anomalies", len(galaxy.Anomalies),
		"avg_connections", avgConnections,
		"bridge_lanes", g.stats.BridgeLanes,
		"redundant_lanes", g.stats.RedundantLanes)

	return galaxy, nil
}

// Generate is the package-level convenience for one-shot use without a
// detail catalog.
func Generate(cfg GalaxyConfig) (*Galaxy, error) {
	return NewGenerator(cfg, nil).Generate()
}
