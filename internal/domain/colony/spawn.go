package colony

import (
	"math"

	"hivesim/internal/domain/world"

	"github.com/paulmach/orb"
)

type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// EdgeSpawnPoint picks an edge uniformly and a uniform integer coordinate
// along it, ends included.
func EdgeSpawnPoint(arena world.Arena, rng Rand) orb.Point {
	b := arena.Bound
	along := func(lo, hi float64) float64 {
		n := int(math.Floor(hi)) - int(math.Ceil(lo)) + 1
		if n <= 0 {
			return lo
		}
		return math.Ceil(lo) + float64(rng.IntN(n))
	}
	switch Edge(rng.IntN(4)) {
	case EdgeTop:
		return orb.Point{along(b.Min[0], b.Max[0]), b.Min[1]}
	case EdgeBottom:
		return orb.Point{along(b.Min[0], b.Max[0]), b.Max[1]}
	case EdgeLeft:
		return orb.Point{b.Min[0], along(b.Min[1], b.Max[1])}
	default:
		return orb.Point{b.Max[0], along(b.Min[1], b.Max[1])}
	}
}

// ScatterPoint returns a uniform integer point inside box, ends included.
func ScatterPoint(box orb.Bound, rng Rand) orb.Point {
	x := math.Ceil(box.Min[0]) + float64(rng.IntN(int(math.Floor(box.Max[0])-math.Ceil(box.Min[0]))+1))
	y := math.Ceil(box.Min[1]) + float64(rng.IntN(int(math.Floor(box.Max[1])-math.Ceil(box.Min[1]))+1))
	return orb.Point{x, y}
}
