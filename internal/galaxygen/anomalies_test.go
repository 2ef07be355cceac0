package galaxygen

import "testing"

func TestAnomalyEffectTable(t *testing.T) {
	cases := []struct {
		category  AnomalyCategory
		kind      string
		magnitude float64
	}{
		{AnomalyNebula, "sensor_interference", -0.5},
		{AnomalyBlackHole, "gravity_well", 2.0},
		{AnomalyWormhole, "fast_travel", 0.1},
		{AnomalyArtifact, "research_bonus", 1.5},
		{AnomalyResource, "mining_bonus", 2.0},
	}
	for _, tc := range cases {
		got := anomalyEffect(tc.category)
		if got.Kind != tc.kind || got.Magnitude != tc.magnitude {
			t.Errorf("anomalyEffect(%s) = %+v, want {%s %v}", tc.category, got, tc.kind, tc.magnitude)
		}
	}
}

func TestPlaceAnomaliesSeparation(t *testing.T) {
	cfg := testConfig()
	cfg.AnomalyCount = 20
	cfg.AnomalyPlacement = StarvationDrop
	g := NewGenerator(cfg, nil)

	systems := []StarSystem{
		{ID: "sol", X: 0, Y: 0},
		{ID: "system-1", X: 30, Y: 30},
	}
	anomalies := g.placeAnomalies(systems)

	for i, a := range anomalies {
		for _, sys := range systems {
			if d := distance(a.X, a.Y, sys.X, sys.Y); d < cfg.AnomalySystemMinDistance {
				t.Errorf("anomaly %q is %v from system %q, want at least %v", a.ID, d, sys.ID, cfg.AnomalySystemMinDistance)
			}
		}
		for j := i + 1; j < len(anomalies); j++ {
			if d := distance(a.X, a.Y, anomalies[j].X, anomalies[j].Y); d < cfg.AnomalyMinDistance {
				t.Errorf("anomalies %q and %q are %v apart, want at least %v", a.ID, anomalies[j].ID, d, cfg.AnomalyMinDistance)
			}
		}
	}
}

func TestPlaceAnomaliesStartUndiscovered(t *testing.T) {
	cfg := testConfig()
	cfg.AnomalyCount = 10
	g := NewGenerator(cfg, nil)

	for _, a := range g.placeAnomalies(nil) {
		if a.Discovered {
			t.Errorf("anomaly %q starts discovered", a.ID)
		}
		if a.Name == "" {
			t.Errorf("anomaly %q has empty name", a.ID)
		}
		if a.Effect.Kind == "" {
			t.Errorf("anomaly %q has empty effect", a.ID)
		}
	}
}

func TestPlaceAnomaliesAcceptLastKeepsCount(t *testing.T) {
	cfg := testConfig()
	cfg.Radius = 3
	cfg.AnomalyCount = 30
	cfg.AnomalyMinDistance = 10 // unsatisfiable past the first anomaly
	cfg.AnomalyPlacement = StarvationAcceptLast
	g := NewGenerator(cfg, nil)

	anomalies := g.placeAnomalies(nil)
	if len(anomalies) != 30 {
		t.Errorf("got %d anomalies, want 30", len(anomalies))
	}
	if g.stats.StarvedAnomalies == 0 {
		t.Error("StarvedAnomalies = 0, scenario should starve")
	}
	if g.stats.DroppedAnomalies != 0 {
		t.Errorf("DroppedAnomalies = %d, want 0 under accept_last", g.stats.DroppedAnomalies)
	}
}

func TestPlaceAnomaliesDropPolicyShrinksOutput(t *testing.T) {
	cfg := testConfig()
	cfg.Radius = 3
	cfg.AnomalyCount = 30
	cfg.AnomalyMinDistance = 10
	cfg.AnomalyPlacement = StarvationDrop
	g := NewGenerator(cfg, nil)

	anomalies := g.placeAnomalies(nil)
	if len(anomalies) >= 30 {
		t.Errorf("got %d anomalies, drop policy should shrink the output", len(anomalies))
	}
	if g.stats.DroppedAnomalies != 30-len(anomalies) {
		t.Errorf("DroppedAnomalies = %d, want %d", g.stats.DroppedAnomalies, 30-len(anomalies))
	}
}

func TestRollAnomalyCategoryCoversAllCategories(t *testing.T) {
	g := NewGenerator(testConfig(), nil)

	seen := make(map[AnomalyCategory]int)
	for i := 0; i < 5000; i++ {
		seen[g.rollAnomalyCategory()]++
	}

	for _, category := range []AnomalyCategory{
		AnomalyNebula, AnomalyBlackHole, AnomalyWormhole, AnomalyArtifact, AnomalyResource,
	} {
		if seen[category] == 0 {
			t.Errorf("category %s never rolled in 5000 draws", category)
		}
	}
	if seen[AnomalyNebula] <= seen[AnomalyBlackHole] {
		t.Errorf("nebula rolled %d times, blackhole %d; weights should favor nebula",
			seen[AnomalyNebula], seen[AnomalyBlackHole])
	}
}
