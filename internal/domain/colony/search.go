package colony

import (
	"math"

	"hivesim/internal/domain/world"

	"github.com/paulmach/orb"
)

// GenerateQuadrantPoints lays a grid with the given step over quadrant,
// starting half a step in from the min corner, and drops every point
// within minDist of origin. When nothing survives it falls back to the
// quadrant center, or to the corner farthest from origin when the center
// is too close as well. The result is never empty.
func GenerateQuadrantPoints(quadrant orb.Bound, origin orb.Point, step, minDist float64) []orb.Point {
	points := []orb.Point{}
	for x := quadrant.Min[0] + step/2; x < quadrant.Max[0]; x += step {
		for y := quadrant.Min[1] + step/2; y < quadrant.Max[1]; y += step {
			p := orb.Point{x, y}
			if world.Distance(p, origin) > minDist {
				points = append(points, p)
			}
		}
	}
	if len(points) > 0 {
		return points
	}

	center := quadrant.Center()
	if world.Distance(center, origin) > minDist {
		return []orb.Point{center}
	}
	corners := world.Corners(quadrant)
	farthest := corners[0]
	for _, c := range corners[1:] {
		if world.Distance(c, origin) > world.Distance(farthest, origin) {
			farthest = c
		}
	}
	return []orb.Point{farthest}
}

// SpiralPoint converts polar (radius, angle) around origin into a point
// clamped inside box.
func SpiralPoint(origin orb.Point, radius, angle float64, box orb.Bound) orb.Point {
	p := orb.Point{
		origin[0] + radius*math.Cos(angle),
		origin[1] + radius*math.Sin(angle),
	}
	return world.ClampTo(box, p)
}
