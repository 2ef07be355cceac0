package galaxygen

import "math/rand"

// SeededRandom wraps a deterministic PRNG behind the small surface the
// generation pipeline needs. Every stage draws from one shared instance in a
// fixed sequential order: the same seed produces the same galaxy on every
// platform. It is not safe for concurrent use and is never reset mid-run.
type SeededRandom struct {
	rng *rand.Rand
}

func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniform value in [0, 1).
func (r *SeededRandom) Next() float64 {
	return r.rng.Float64()
}

// Range returns a uniform value in [min, max).
func (r *SeededRandom) Range(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// IntRange returns a uniform integer in [min, max], inclusive on both ends.
func (r *SeededRandom) IntRange(min, max int) int {
	return min + int(r.Next()*float64(max-min+1))
}

// Boolean returns true with the given probability.
func (r *SeededRandom) Boolean(probability float64) bool {
	return r.Next() < probability
}
