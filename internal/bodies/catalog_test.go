package bodies

import (
	"reflect"
	"testing"
)

func TestCatalogHasDetail(t *testing.T) {
	c := NewCatalog()

	if !c.HasDetail("sol") {
		t.Error("HasDetail(sol) = false, want true")
	}
	if c.HasDetail("system-1") {
		t.Error("HasDetail(system-1) = true, want false")
	}
}

func TestCatalogSolContents(t *testing.T) {
	detail := NewCatalog().Get("sol", "Sol System")

	if detail.StarType != "G-class" || detail.StarTemperature != 5778 {
		t.Errorf("sol star = %s at %dK, want G-class at 5778K", detail.StarType, detail.StarTemperature)
	}
	if len(detail.Planets) != 8 {
		t.Fatalf("sol has %d planets, want 8", len(detail.Planets))
	}
	if len(detail.Asteroids) != 3 {
		t.Errorf("sol has %d asteroids, want 3", len(detail.Asteroids))
	}

	earth := detail.Planets[2]
	if earth.ID != "earth" || earth.Habitability != 100 {
		t.Errorf("third planet = %q with habitability %d, want earth at 100", earth.ID, earth.Habitability)
	}
	if len(earth.Moons) != 1 || earth.Moons[0].ID != "luna" {
		t.Errorf("earth moons = %v, want exactly luna", earth.Moons)
	}

	jupiter := detail.Planets[4]
	if len(jupiter.Moons) != 4 {
		t.Errorf("jupiter has %d moons, want 4", len(jupiter.Moons))
	}
}

func TestCatalogReturnsSameSolInstance(t *testing.T) {
	c := NewCatalog()
	if c.Get("sol", "Sol System") != c.Get("sol", "Sol System") {
		t.Error("predefined lookups should return the same detail")
	}
}

func TestGenerateRandomIsDeterministicPerSystem(t *testing.T) {
	a := GenerateRandom("system-42", "Gamma Draconis")
	b := GenerateRandom("system-42", "Gamma Draconis")

	if !reflect.DeepEqual(a, b) {
		t.Error("repeated generation for one system id diverged")
	}
}

func TestGenerateRandomDiffersAcrossSystems(t *testing.T) {
	a := GenerateRandom("system-1", "Alpha Centauri")
	b := GenerateRandom("system-2", "Beta Centauri")

	if reflect.DeepEqual(a.Planets, b.Planets) {
		t.Error("different system ids produced identical planets")
	}
}

func TestGenerateRandomShape(t *testing.T) {
	detail := GenerateRandom("system-7", "Eta Cygni")

	if detail.SystemID != "system-7" || detail.SystemName != "Eta Cygni" {
		t.Errorf("identity = %q/%q, want system-7/Eta Cygni", detail.SystemID, detail.SystemName)
	}
	if n := len(detail.Planets); n < 4 || n > 10 {
		t.Errorf("got %d planets, want between 4 and 10", n)
	}
	if detail.StarMass < 0.5 || detail.StarMass >= 2.0 {
		t.Errorf("star mass = %v, want within [0.5, 2.0)", detail.StarMass)
	}
	if detail.StarTemperature < 3000 || detail.StarTemperature > 7000 {
		t.Errorf("star temperature = %d, want within [3000, 7000]", detail.StarTemperature)
	}

	prev := 0.0
	for _, p := range detail.Planets {
		if p.DistanceFromParent <= prev {
			t.Errorf("planet %q orbit %v not beyond previous %v", p.ID, p.DistanceFromParent, prev)
		}
		prev = p.DistanceFromParent
		if len(p.Resources) < 2 {
			t.Errorf("planet %q has %d resource deposits, want at least 2", p.ID, len(p.Resources))
		}
	}
}
