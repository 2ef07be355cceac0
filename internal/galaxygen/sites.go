package galaxygen

import "math"

// siteAttemptCap bounds rejection sampling per site slot.
const siteAttemptCap = 500

// site is an accepted spatial sample. A system may later claim it; rejected
// candidates are never represented.
type site struct {
	x, y      float64
	neighbors []int
	systemIdx int
	hasSystem bool
}

// randomPointInDisk samples a uniform point inside the galaxy disk. The
// square root on the radial draw is what makes the areal density uniform.
func (g *Generator) randomPointInDisk() (float64, float64) {
	angle := g.rng.Range(0, 2*math.Pi)
	r := math.Sqrt(g.rng.Next()) * g.cfg.Radius
	return r * math.Cos(angle), r * math.Sin(angle)
}

// placeSites rejection-samples up to count sites with pairwise separation of
// at least MinSiteDistance. Callers must not assume exact cardinality: on
// attempt-cap exhaustion a slot is either dropped or filled with the last
// (too-close) sample, per the configured starvation policy.
func (g *Generator) placeSites(count int) []site {
	sites := make([]site, 0, count)

	for slot := 0; slot < count; slot++ {
		var x, y float64
		placed := false

		for attempt := 0; attempt < siteAttemptCap; attempt++ {
			x, y = g.randomPointInDisk()
			if g.siteSeparationOK(sites, x, y) {
				placed = true
				break
			}
		}

		if !placed {
			g.stats.StarvedSites++
			if g.cfg.SitePlacement == StarvationDrop {
				g.stats.DroppedSites++
				g.logger.Warn("Site placement starved, dropping slot",
					"slot", slot, "attempts", siteAttemptCap)
				continue
			}
			g.logger.Warn("Site placement starved, accepting last sample",
				"slot", slot, "attempts", siteAttemptCap)
		}

		sites = append(sites, site{x: x, y: y, systemIdx: -1})
	}

	g.logger.Debug("Placed sites",
		"requested", count,
		"placed", len(sites),
		"min_distance", g.cfg.MinSiteDistance)

	return sites
}

func (g *Generator) siteSeparationOK(sites []site, x, y float64) bool {
	for i := range sites {
		if distance(x, y, sites[i].x, sites[i].y) < g.cfg.MinSiteDistance {
			return false
		}
	}
	return true
}
