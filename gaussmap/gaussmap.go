// Package gaussmap describes sets of unit normals as rectangles of
// spherical coordinates and splits the normals of a torus patch into such
// rectangles.
//
// A unit vector with spherical coordinates (u, v) is
//
//	(sin v cos u, sin v sin u, cos v)
//
// where u is the azimuth around +Z and v in [0, π] is the polar angle from +Z.
package gaussmap

import (
	"math"

	"github.com/dadachu/MinuteTorus/angular"
	"gonum.org/v1/gonum/spatial/r3"
)

// Map is the set of unit vectors whose azimuth lies in U and whose polar
// angle lies in V. U wraps around, V does not.
type Map struct {
	U, V angular.Interval
}

// New returns the map of the rectangle u × v.
func New(u, v angular.Interval) Map {
	return Map{U: u, V: v}
}

// Has reports whether the spherical coordinates (u, v) lie in the map.
func (g Map) Has(u, v float64) bool {
	return g.U.Has(u) && g.V.Contains(v)
}

// HasDirection reports whether the direction of n lies in the map. The
// azimuth of a pole is taken to be in U.
func (g Map) HasDirection(n r3.Vec) bool {
	u, v := Coordinates(n)
	if v == 0 || v == angular.Half {
		return g.V.Contains(v)
	}
	return g.Has(u, v)
}

// Invert returns the map of the antipodal directions, U shifted half a
// turn and V mirrored to π-V.
func (g Map) Invert() Map {
	return Map{
		U: g.U.Shift(angular.Half),
		V: g.V.Mirror(angular.Half),
	}
}

// Overlaps reports whether the two maps share a direction.
func (g Map) Overlaps(b Map) bool {
	if g.V.End < b.V.Begin || b.V.End < g.V.Begin {
		return false
	}
	// Maps touching a pole share it regardless of azimuth.
	if (g.V.Begin <= 0 && b.V.Begin <= 0) || (g.V.End >= angular.Half && b.V.End >= angular.Half) {
		return true
	}
	return g.U.S1().Intersects(b.U.S1())
}

// Coordinates returns the spherical coordinates of the direction of n with
// u in (-π, π].
func Coordinates(n r3.Vec) (u, v float64) {
	n = r3.Unit(n)
	return math.Atan2(n.Y, n.X), math.Acos(math.Max(-1, math.Min(1, n.Z)))
}

// Direction returns the unit vector with spherical coordinates (u, v).
func Direction(u, v float64) r3.Vec {
	su, cu := math.Sincos(u)
	sv, cv := math.Sincos(v)
	return r3.Vec{X: sv * cu, Y: sv * su, Z: cv}
}
