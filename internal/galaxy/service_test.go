package galaxy

import (
	"log/slog"
	"testing"
	"time"

	"galaxy-server/internal/galaxygen"
	"galaxy-server/internal/shared/config"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	prev := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		Galaxy: config.GalaxyConfig{
			Seed:            1111111111,
			Radius:          500,
			StarSystemCount: 400,
			AnomalyCount:    25,
			CacheTTL:        time.Hour,
		},
	}
	t.Cleanup(func() { config.GlobalConfig = prev })
}

func testService() *Service {
	return &Service{logger: slog.Default()}
}

func TestBuildConfigUsesDefaults(t *testing.T) {
	setTestConfig(t)

	cfg := testService().buildConfig(GenerateRequest{})

	if cfg.Seed != 1111111111 {
		t.Errorf("seed = %d, want the configured default", cfg.Seed)
	}
	if cfg.Radius != 500 || cfg.StarSystemCount != 400 || cfg.AnomalyCount != 25 {
		t.Errorf("defaults not applied: radius %v, systems %d, anomalies %d",
			cfg.Radius, cfg.StarSystemCount, cfg.AnomalyCount)
	}
	if len(cfg.FixedSystems) == 0 {
		t.Error("fixed systems missing from built config")
	}
}

func TestBuildConfigAppliesOverrides(t *testing.T) {
	setTestConfig(t)

	seed := int64(42)
	radius := 120.0
	systems := 50
	anomalies := 3
	cfg := testService().buildConfig(GenerateRequest{
		Seed:      &seed,
		Radius:    &radius,
		Systems:   &systems,
		Anomalies: &anomalies,
	})

	if cfg.Seed != 42 || cfg.Radius != 120 || cfg.StarSystemCount != 50 || cfg.AnomalyCount != 3 {
		t.Errorf("overrides not applied: seed %d, radius %v, systems %d, anomalies %d",
			cfg.Seed, cfg.Radius, cfg.StarSystemCount, cfg.AnomalyCount)
	}
}

func TestIsConnected(t *testing.T) {
	connected := &galaxygen.Galaxy{
		Systems: []galaxygen.StarSystem{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Lanes: []galaxygen.WarpLane{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
		},
	}
	if !isConnected(connected) {
		t.Error("isConnected = false for a connected chain")
	}

	split := &galaxygen.Galaxy{
		Systems: []galaxygen.StarSystem{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Lanes:   []galaxygen.WarpLane{{From: "a", To: "b"}},
	}
	if isConnected(split) {
		t.Error("isConnected = true with an unreachable system")
	}

	if !isConnected(&galaxygen.Galaxy{}) {
		t.Error("isConnected = false for an empty galaxy")
	}
}
