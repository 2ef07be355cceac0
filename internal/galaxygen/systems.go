package galaxygen

import (
	"math"
	"strconv"

	apperrors "galaxy-server/internal/shared/errors"
)

// assignSystems binds fixed systems to sites and fills the remaining sites
// with generated systems. Fixed systems keep their computed position (exact
// or polar-sampled) and merely claim the nearest unbound site so later stages
// can reuse the site's precomputed neighbor list; generated systems sit
// exactly on their site.
func (g *Generator) assignSystems(sites []site) ([]StarSystem, error) {
	if len(g.cfg.FixedSystems) > len(sites) {
		return nil, apperrors.Validationf(
			"%d fixed systems but only %d sites available after placement",
			len(g.cfg.FixedSystems), len(sites))
	}

	systems := make([]StarSystem, 0, min(g.cfg.StarSystemCount, len(sites)))

	for _, spec := range g.cfg.FixedSystems {
		x, y := g.fixedSystemPosition(spec)

		siteIdx := nearestUnboundSite(sites, x, y)
		if siteIdx < 0 {
			return nil, apperrors.Validationf("no unbound site left for fixed system %q", spec.ID)
		}

		sys := StarSystem{
			ID:       spec.ID,
			Name:     spec.Name,
			X:        x,
			Y:        y,
			Class:    spec.Class,
			IsFixed:  true,
			Explored: spec.Class == ClassOrigin,
		}
		if sys.Explored {
			sys.Population = 1000000
		}
		sys.GDP = float64(sys.Population) * g.rng.Range(0.8, 1.5)
		sys.Resources = Resources{
			Minerals: g.rng.IntRange(50, 200),
			Energy:   g.rng.IntRange(50, 200),
			Research: g.rng.IntRange(50, 200),
		}

		sites[siteIdx].hasSystem = true
		sites[siteIdx].systemIdx = len(systems)
		systems = append(systems, sys)

		g.logger.Debug("Placed fixed system",
			"system_id", spec.ID,
			"x", x, "y", y,
			"class", spec.Class)
	}

	// Fill remaining sites with generated systems.
	generated := 0
	for i := range sites {
		if len(systems) >= g.cfg.StarSystemCount {
			break
		}
		if sites[i].hasSystem {
			continue
		}
		generated++

		sys := StarSystem{
			ID:    systemID(generated),
			Name:  systemName(generated),
			X:     sites[i].x,
			Y:     sites[i].y,
			Class: g.classForPosition(sites[i].x, sites[i].y),
		}
		sys.Resources = Resources{
			Minerals: g.rng.IntRange(10, 150),
			Energy:   g.rng.IntRange(10, 150),
			Research: g.rng.IntRange(10, 150),
		}

		sites[i].hasSystem = true
		sites[i].systemIdx = len(systems)
		systems = append(systems, sys)
	}

	g.logger.Debug("Assigned systems",
		"fixed", len(g.cfg.FixedSystems),
		"generated", generated,
		"total", len(systems))

	return systems, nil
}

// fixedSystemPosition resolves a spec to coordinates. Exact positions pass
// through untouched even when they exceed the nominal disk radius; polar
// constraints consume two draws (distance then angle).
func (g *Generator) fixedSystemPosition(spec FixedSystemSpec) (float64, float64) {
	if spec.HasFixedPosition {
		return spec.X, spec.Y
	}
	dist := g.rng.Range(spec.TargetDistance-spec.DistanceTolerance, spec.TargetDistance+spec.DistanceTolerance)
	angle := g.rng.Range(0, 2*math.Pi)
	return dist * math.Cos(angle), dist * math.Sin(angle)
}

// classForPosition tiers a generated system by its radial distance: the inner
// 30% of the disk is core, everything beyond is rim. Origin is only ever
// assigned explicitly by a fixed spec.
func (g *Generator) classForPosition(x, y float64) SystemClass {
	if math.Sqrt(x*x+y*y) <= g.cfg.Radius*0.3 {
		return ClassCore
	}
	return ClassRim
}

func systemID(n int) string {
	return "system-" + strconv.Itoa(n)
}

func nearestUnboundSite(sites []site, x, y float64) int {
	best := -1
	bestDist := math.MaxFloat64
	for i := range sites {
		if sites[i].hasSystem {
			continue
		}
		d := distance(x, y, sites[i].x, sites[i].y)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

