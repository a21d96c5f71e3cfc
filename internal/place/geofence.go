package place

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

type Coordinate struct {
	X float64
	Y float64
}

// Ring orders points counter-clockwise by angle around their centroid.
// Points of a place are stored without order, so this is the polygon the
// set describes when it is convex or star-shaped around the centroid.
func Ring(points []Coordinate) []Coordinate {
	if len(points) == 0 {
		return nil
	}

	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(points))
	cy /= float64(len(points))

	ring := make([]Coordinate, len(points))
	copy(ring, points)
	sort.SliceStable(ring, func(i, j int) bool {
		ai := math.Atan2(ring[i].Y-cy, ring[i].X-cx)
		aj := math.Atan2(ring[j].Y-cy, ring[j].X-cx)
		if ai != aj {
			return ai < aj
		}
		if ring[i].X != ring[j].X {
			return ring[i].X < ring[j].X
		}
		return ring[i].Y < ring[j].Y
	})
	return ring
}

// Contains reports whether p lies inside or on the boundary of the polygon
// spanned by points. Fewer than 3 points never contain anything.
func Contains(points []Coordinate, p Coordinate) bool {
	if len(points) < 3 {
		return false
	}
	return planar.RingContains(toOrbRing(Ring(points)), orb.Point{p.X, p.Y})
}

// toOrbRing closes the ring the way orb expects: first point repeated last.
func toOrbRing(ring []Coordinate) orb.Ring {
	out := make(orb.Ring, 0, len(ring)+1)
	for _, c := range ring {
		out = append(out, orb.Point{c.X, c.Y})
	}
	return append(out, out[0])
}

func coordinatesOf(points []PointResponse) []Coordinate {
	out := make([]Coordinate, len(points))
	for i, p := range points {
		out[i] = Coordinate{X: p.CordX, Y: p.CordY}
	}
	return out
}
