package colony

import (
	"math/rand/v2"

	"github.com/paulmach/orb"
)

// scriptedRand replays fixed draws and never shuffles. Once a script runs
// out the last value repeats; an empty float script never wins a coin flip.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[min(r.fi, len(r.floats)-1)]
	r.fi++
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[min(r.ii, len(r.ints)-1)]
	r.ii++
	return v % n
}

func (r *scriptedRand) Shuffle(int, func(i, j int)) {}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func testConfig() Config {
	return DefaultConfig()
}

func pt(x, y float64) orb.Point { return orb.Point{x, y} }
