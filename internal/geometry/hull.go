package geometry

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func distance(p1, p2 orb.Point) float64 {
	dx := p2[0] - p1[0]
	dy := p2[1] - p1[1]
	return dx*dx + dy*dy
}

// convexHull returns the closed counter-clockwise hull of points, or nil when
// fewer than three non-collinear points are given.
func convexHull(points []orb.Point) orb.Ring {
	if len(points) < 3 {
		return nil
	}

	pts := make([]orb.Point, len(points))
	copy(pts, points)

	// Lowest point first, ties broken by x
	pivot := 0
	for i := 1; i < len(pts); i++ {
		if pts[i][1] < pts[pivot][1] || (pts[i][1] == pts[pivot][1] && pts[i][0] < pts[pivot][0]) {
			pivot = i
		}
	}
	pts[0], pts[pivot] = pts[pivot], pts[0]
	origin := pts[0]

	rest := pts[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		ai := math.Atan2(rest[i][1]-origin[1], rest[i][0]-origin[0])
		aj := math.Atan2(rest[j][1]-origin[1], rest[j][0]-origin[0])
		if ai == aj {
			return distance(origin, rest[i]) < distance(origin, rest[j])
		}
		return ai < aj
	})

	// Graham scan
	hull := []orb.Point{origin}
	for _, p := range rest {
		for len(hull) > 1 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	if len(hull) < 3 {
		return nil
	}

	return append(orb.Ring(hull), hull[0])
}
