package galaxygen

import (
	"testing"

	apperrors "galaxy-server/internal/shared/errors"
)

func gridSites(n int, spacing float64) []site {
	sites := make([]site, 0, n)
	side := 1
	for side*side < n {
		side++
	}
	for i := 0; i < n; i++ {
		sites = append(sites, site{
			x:         float64(i%side) * spacing,
			y:         float64(i/side) * spacing,
			systemIdx: -1,
		})
	}
	return sites
}

func TestAssignSystemsBindsFixedSystems(t *testing.T) {
	cfg := testConfig()
	cfg.FixedSystems = []FixedSystemSpec{
		{ID: "sol", Name: "Sol System", Class: ClassOrigin, HasFixedPosition: true, X: 0, Y: 0},
		{ID: "alpha-centauri", Name: "Alpha Centauri", Class: ClassCore, HasFixedPosition: true, X: 4.37, Y: 0},
	}
	cfg.StarSystemCount = 10
	g := NewGenerator(cfg, nil)

	sites := gridSites(10, 10)
	systems, err := g.assignSystems(sites)
	if err != nil {
		t.Fatalf("assignSystems() error: %v", err)
	}
	if len(systems) != 10 {
		t.Fatalf("got %d systems, want 10", len(systems))
	}

	sol := systems[0]
	if sol.ID != "sol" || sol.X != 0 || sol.Y != 0 {
		t.Errorf("sol = %q at (%v, %v), want fixed position (0, 0)", sol.ID, sol.X, sol.Y)
	}
	if !sol.IsFixed || !sol.Explored {
		t.Errorf("sol IsFixed=%v Explored=%v, want both true", sol.IsFixed, sol.Explored)
	}
	if sol.Population != 1000000 {
		t.Errorf("sol population = %d, want 1000000", sol.Population)
	}
	if sol.GDP < 800000 || sol.GDP >= 1500000 {
		t.Errorf("sol GDP = %v, want within [800000, 1500000)", sol.GDP)
	}

	ac := systems[1]
	if ac.X != 4.37 || ac.Y != 0 {
		t.Errorf("alpha-centauri at (%v, %v), want (4.37, 0)", ac.X, ac.Y)
	}
	if ac.Explored || ac.Population != 0 {
		t.Errorf("alpha-centauri Explored=%v Population=%d, want unexplored and empty", ac.Explored, ac.Population)
	}
}

func TestAssignSystemsGeneratedFill(t *testing.T) {
	cfg := testConfig()
	cfg.StarSystemCount = 5
	g := NewGenerator(cfg, nil)

	sites := gridSites(5, 10)
	systems, err := g.assignSystems(sites)
	if err != nil {
		t.Fatalf("assignSystems() error: %v", err)
	}

	for _, sys := range systems[1:] {
		if sys.IsFixed {
			t.Errorf("generated system %q flagged fixed", sys.ID)
		}
		if sys.Explored {
			t.Errorf("generated system %q starts explored", sys.ID)
		}
		if sys.Resources.Minerals < 10 || sys.Resources.Minerals > 150 {
			t.Errorf("%q minerals = %d, want within [10, 150]", sys.ID, sys.Resources.Minerals)
		}
	}

	if systems[1].ID != "system-1" {
		t.Errorf("first generated id = %q, want %q", systems[1].ID, "system-1")
	}
	if systems[1].Name == "" {
		t.Error("generated system has empty name")
	}
}

func TestAssignSystemsEverySiteClaimedOnce(t *testing.T) {
	cfg := testConfig()
	cfg.StarSystemCount = 8
	g := NewGenerator(cfg, nil)

	sites := gridSites(8, 10)
	if _, err := g.assignSystems(sites); err != nil {
		t.Fatalf("assignSystems() error: %v", err)
	}

	seen := make(map[int]bool)
	for i, s := range sites {
		if !s.hasSystem {
			t.Errorf("site %d was never claimed", i)
			continue
		}
		if seen[s.systemIdx] {
			t.Errorf("system index %d claimed two sites", s.systemIdx)
		}
		seen[s.systemIdx] = true
	}
}

func TestAssignSystemsFixedOverflow(t *testing.T) {
	cfg := testConfig()
	cfg.FixedSystems = []FixedSystemSpec{
		{ID: "sol", Class: ClassOrigin, HasFixedPosition: true},
		{ID: "alpha-centauri", Class: ClassCore, HasFixedPosition: true, X: 4.37},
	}
	g := NewGenerator(cfg, nil)

	_, err := g.assignSystems(gridSites(1, 10))
	if err == nil {
		t.Fatal("assignSystems() succeeded with more fixed systems than sites")
	}
	if apperrors.GetType(err) != apperrors.ErrorTypeValidation {
		t.Errorf("error type = %v, want validation", apperrors.GetType(err))
	}
}

func TestClassForPosition(t *testing.T) {
	cfg := testConfig()
	cfg.Radius = 100
	g := NewGenerator(cfg, nil)

	if got := g.classForPosition(10, 0); got != ClassCore {
		t.Errorf("classForPosition(10, 0) = %v, want core", got)
	}
	if got := g.classForPosition(30, 0); got != ClassCore {
		t.Errorf("classForPosition(30, 0) = %v, want core at the boundary", got)
	}
	if got := g.classForPosition(31, 0); got != ClassRim {
		t.Errorf("classForPosition(31, 0) = %v, want rim", got)
	}
}

func TestFixedSystemPositionPolarConstraint(t *testing.T) {
	g := NewGenerator(testConfig(), nil)
	spec := FixedSystemSpec{ID: "aspida", Class: ClassRim, TargetDistance: 50, DistanceTolerance: 5}

	for i := 0; i < 100; i++ {
		x, y := g.fixedSystemPosition(spec)
		d := distance(x, y, 0, 0)
		if d < 45 || d >= 55 {
			t.Fatalf("polar position %d at distance %v, want within [45, 55)", i, d)
		}
	}
}
