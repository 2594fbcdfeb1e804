package world

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	DefaultSafeMargin = 50
)

// Arena is the bounded rectangle every agent moves in.
type Arena struct {
	Bound orb.Bound
}

func NewArena(width, height float64) Arena {
	return Arena{Bound: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{width, height}}}
}

func DefaultArena() Arena {
	return NewArena(DefaultWidth, DefaultHeight)
}

func (a Arena) Width() float64  { return a.Bound.Max[0] - a.Bound.Min[0] }
func (a Arena) Height() float64 { return a.Bound.Max[1] - a.Bound.Min[1] }

func (a Arena) Center() orb.Point {
	return a.Bound.Center()
}

// Clamp forces p into the arena bound.
func (a Arena) Clamp(p orb.Point) orb.Point {
	return ClampTo(a.Bound, p)
}

// Step moves p by dir scaled by speed, clamped into the arena.
func (a Arena) Step(p, dir orb.Point, speed float64) orb.Point {
	return a.Clamp(orb.Point{p[0] + dir[0]*speed, p[1] + dir[1]*speed})
}

// Inset returns the bound shrunk by margin on every side.
func (a Arena) Inset(margin float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{a.Bound.Min[0] + margin, a.Bound.Min[1] + margin},
		Max: orb.Point{a.Bound.Max[0] - margin, a.Bound.Max[1] - margin},
	}
}

// Quadrants splits the arena into top-left, top-right, bottom-left and
// bottom-right, in that order.
func (a Arena) Quadrants() [4]orb.Bound {
	lo, hi, mid := a.Bound.Min, a.Bound.Max, a.Bound.Center()
	return [4]orb.Bound{
		{Min: orb.Point{lo[0], lo[1]}, Max: orb.Point{mid[0], mid[1]}},
		{Min: orb.Point{mid[0], lo[1]}, Max: orb.Point{hi[0], mid[1]}},
		{Min: orb.Point{lo[0], mid[1]}, Max: orb.Point{mid[0], hi[1]}},
		{Min: orb.Point{mid[0], mid[1]}, Max: orb.Point{hi[0], hi[1]}},
	}
}

func ClampTo(b orb.Bound, p orb.Point) orb.Point {
	return orb.Point{
		math.Max(b.Min[0], math.Min(b.Max[0], p[0])),
		math.Max(b.Min[1], math.Min(b.Max[1], p[1])),
	}
}

func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Toward returns the unit vector from -> to and the distance between them.
// Coincident points yield a zero vector.
func Toward(from, to orb.Point) (orb.Point, float64) {
	dx, dy := to[0]-from[0], to[1]-from[1]
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return orb.Point{}, 0
	}
	return orb.Point{dx / dist, dy / dist}, dist
}

// Corners lists the four corners of b.
func Corners(b orb.Bound) [4]orb.Point {
	return [4]orb.Point{
		{b.Min[0], b.Min[1]},
		{b.Max[0], b.Min[1]},
		{b.Min[0], b.Max[1]},
		{b.Max[0], b.Max[1]},
	}
}
