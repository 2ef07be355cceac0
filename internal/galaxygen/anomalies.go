package galaxygen

import "strconv"

// anomalyAttemptCap bounds rejection sampling per anomaly slot.
const anomalyAttemptCap = 100

// anomalyWeights is the categorical distribution sampled by roulette wheel.
// Order matters for RNG reproducibility.
var anomalyWeights = []struct {
	category AnomalyCategory
	weight   float64
}{
	{AnomalyNebula, 0.4},
	{AnomalyBlackHole, 0.1},
	{AnomalyWormhole, 0.1},
	{AnomalyArtifact, 0.2},
	{AnomalyResource, 0.2},
}

// anomalyEffect is a pure function of category.
func anomalyEffect(category AnomalyCategory) AnomalyEffect {
	switch category {
	case AnomalyNebula:
		return AnomalyEffect{Kind: "sensor_interference", Magnitude: -0.5}
	case AnomalyBlackHole:
		return AnomalyEffect{Kind: "gravity_well", Magnitude: 2.0}
	case AnomalyWormhole:
		return AnomalyEffect{Kind: "fast_travel", Magnitude: 0.1}
	case AnomalyArtifact:
		return AnomalyEffect{Kind: "research_bonus", Magnitude: 1.5}
	case AnomalyResource:
		return AnomalyEffect{Kind: "mining_bonus", Magnitude: 2.0}
	default:
		return AnomalyEffect{Kind: "none"}
	}
}

// placeAnomalies scatters the configured number of anomalies across the disk,
// rejecting positions too close to systems or previously placed anomalies.
// Starvation follows the configured policy; accept_last keeps the original
// game behavior of taking the final (possibly crowded) sample.
func (g *Generator) placeAnomalies(systems []StarSystem) []Anomaly {
	anomalies := make([]Anomaly, 0, g.cfg.AnomalyCount)

	for slot := 0; slot < g.cfg.AnomalyCount; slot++ {
		category := g.rollAnomalyCategory()

		var x, y float64
		placed := false
		for attempt := 0; attempt < anomalyAttemptCap; attempt++ {
			x, y = g.randomPointInDisk()
			if g.anomalySeparationOK(systems, anomalies, x, y) {
				placed = true
				break
			}
		}

		if !placed {
			g.stats.StarvedAnomalies++
			if g.cfg.AnomalyPlacement == StarvationDrop {
				g.stats.DroppedAnomalies++
				g.logger.Warn("Anomaly placement starved, dropping slot",
					"slot", slot, "attempts", anomalyAttemptCap)
				continue
			}
			g.logger.Warn("Anomaly placement starved, accepting last sample",
				"slot", slot, "attempts", anomalyAttemptCap)
		}

		index := slot + 1
		anomalies = append(anomalies, Anomaly{
			ID:       "anomaly-" + strconv.Itoa(index),
			Category: category,
			Name:     anomalyName(category, index),
			X:        x,
			Y:        y,
			Effect:   anomalyEffect(category),
		})
	}

	g.logger.Debug("Placed anomalies",
		"requested", g.cfg.AnomalyCount,
		"placed", len(anomalies))

	return anomalies
}

func (g *Generator) rollAnomalyCategory() AnomalyCategory {
	roll := g.rng.Next()
	cumulative := 0.0
	for _, entry := range anomalyWeights {
		cumulative += entry.weight
		if roll < cumulative {
			return entry.category
		}
	}
	return AnomalyNebula
}

func (g *Generator) anomalySeparationOK(systems []StarSystem, anomalies []Anomaly, x, y float64) bool {
	for i := range systems {
		if distance(x, y, systems[i].X, systems[i].Y) < g.cfg.AnomalySystemMinDistance {
			return false
		}
	}
	for i := range anomalies {
		if distance(x, y, anomalies[i].X, anomalies[i].Y) < g.cfg.AnomalyMinDistance {
			return false
		}
	}
	return true
}
