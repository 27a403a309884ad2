// Package flavor picks random "cohomology mood" one-liners.
//
// RNG policy follows the repo-wide convention: determinism first. A Picker
// owns its own *rand.Rand; seed 0 selects a fixed default seed so tests are
// reproducible, and callers wanting variety seed from the wall clock.
// math/rand.Rand is not goroutine-safe; do not share one Picker across
// goroutines.
package flavor

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// moods are the selectable one-liners, never mutated at runtime.
var moods = []string{
	"Today your cochains are all closed **and** exact. Pure harmony. ✨",
	"Your life has nontrivial cohomology in degree 1: loops of thought that never quite vanish. 🔁",
	"Yesterday's problems? They differ by a coboundary. Same class, new representative. ♻️",
	"Your room has β₀ = 1 (connected) but an infinite-dimensional H¹ of unfinished projects. 📚",
	"Sometimes, the best you can do is pass to cohomology and ignore exact noise. 🧘‍♀️",
}

// Picker selects mood lines uniformly from a private RNG stream.
type Picker struct {
	rng *rand.Rand
}

// New returns a Picker seeded deterministically.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func New(seed int64) *Picker {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns one mood line, chosen uniformly.
func (p *Picker) Pick() string {
	return moods[p.rng.Intn(len(moods))]
}

// Moods returns a copy of every selectable line, for tests and previews.
func Moods() []string {
	return append([]string(nil), moods...)
}
