package galaxygen

import "testing"

func testConfig() GalaxyConfig {
	cfg := DefaultConfig()
	cfg.Radius = 100
	cfg.StarSystemCount = 50
	cfg.AnomalyCount = 5
	cfg.FixedSystems = []FixedSystemSpec{
		{ID: "sol", Name: "Sol System", Class: ClassOrigin, HasFixedPosition: true},
	}
	return cfg
}

func TestPlaceSitesRespectsMinimumSeparation(t *testing.T) {
	cfg := testConfig()
	cfg.MinSiteDistance = 5
	g := NewGenerator(cfg, nil)

	sites := g.placeSites(cfg.StarSystemCount)
	if g.stats.StarvedSites > 0 {
		t.Fatalf("placement starved %d slots, scenario should fit comfortably", g.stats.StarvedSites)
	}

	for i := range sites {
		for j := i + 1; j < len(sites); j++ {
			d := distance(sites[i].x, sites[i].y, sites[j].x, sites[j].y)
			if d < cfg.MinSiteDistance {
				t.Errorf("sites %d and %d are %v apart, want at least %v", i, j, d, cfg.MinSiteDistance)
			}
		}
	}
}

func TestPlaceSitesStaysInsideDisk(t *testing.T) {
	cfg := testConfig()
	g := NewGenerator(cfg, nil)

	for _, s := range g.placeSites(cfg.StarSystemCount) {
		if d := distance(s.x, s.y, 0, 0); d > cfg.Radius {
			t.Errorf("site at (%v, %v) is %v from center, radius is %v", s.x, s.y, d, cfg.Radius)
		}
	}
}

// A disk of radius 5 has diameter 10, so a separation of 11 is unsatisfiable
// for every slot after the first.
func TestPlaceSitesDropPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.Radius = 5
	cfg.MinSiteDistance = 11
	cfg.SitePlacement = StarvationDrop
	g := NewGenerator(cfg, nil)

	sites := g.placeSites(10)
	if len(sites) != 1 {
		t.Errorf("got %d sites, want 1", len(sites))
	}
	if g.stats.DroppedSites != 9 {
		t.Errorf("DroppedSites = %d, want 9", g.stats.DroppedSites)
	}
	if g.stats.StarvedSites != 9 {
		t.Errorf("StarvedSites = %d, want 9", g.stats.StarvedSites)
	}
}

func TestPlaceSitesAcceptLastPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.Radius = 5
	cfg.MinSiteDistance = 11
	cfg.SitePlacement = StarvationAcceptLast
	g := NewGenerator(cfg, nil)

	sites := g.placeSites(10)
	if len(sites) != 10 {
		t.Errorf("got %d sites, want 10", len(sites))
	}
	if g.stats.DroppedSites != 0 {
		t.Errorf("DroppedSites = %d, want 0", g.stats.DroppedSites)
	}
	if g.stats.StarvedSites != 9 {
		t.Errorf("StarvedSites = %d, want 9", g.stats.StarvedSites)
	}
}
