// Package angular implements intervals of angle values that are interpreted
// modulo a full turn.
package angular

import (
	"math"
	"strconv"

	"github.com/golang/geo/s1"
)

const (
	// Turn is the length of a full turn in radians.
	Turn = 2 * math.Pi
	// Half is half a turn.
	Half = math.Pi
	// Quarter is a quarter turn, the first latitude boundary of a torus.
	Quarter = 0.5 * math.Pi
	// ThreeQuarter is the second latitude boundary of a torus.
	ThreeQuarter = 1.5 * math.Pi
)

// Interval is the set of angles swept counter clockwise from Begin to End.
// Begin and End are not required to lie in [0, 2π); Width is End-Begin and
// an interval whose width reaches a full turn contains every angle.
type Interval struct {
	Begin, End float64
}

// New returns the interval [begin, end].
func New(begin, end float64) Interval {
	return Interval{Begin: begin, End: end}
}

// Full returns the interval [0, 2π].
func Full() Interval { return Interval{Begin: 0, End: Turn} }

// Regularize maps an angle to its representative in [0, 2π).
func Regularize(x float64) float64 {
	x = math.Mod(x, Turn)
	if x < 0 {
		x += Turn
	}
	if x >= Turn {
		// x was a tiny negative number.
		x = 0
	}
	return x
}

// Width returns End-Begin.
func (a Interval) Width() float64 { return a.End - a.Begin }

// IsFull reports whether the interval covers a full turn.
func (a Interval) IsFull() bool { return a.Width() >= Turn }

// Has reports whether x is contained in the interval when both are taken
// modulo a full turn.
func (a Interval) Has(x float64) bool {
	if a.IsFull() {
		return true
	}
	if a.Width() < 0 {
		return false
	}
	return a.S1().Contains(math.Remainder(x, Turn))
}

// Contains reports whether Begin <= x <= End without wraparound.
func (a Interval) Contains(x float64) bool {
	return a.Begin <= x && x <= a.End
}

// Shift returns the interval rotated by d.
func (a Interval) Shift(d float64) Interval {
	return Interval{Begin: a.Begin + d, End: a.End + d}
}

// Mirror returns the interval reflected about c/2, that is [c-End, c-Begin].
func (a Interval) Mirror(c float64) Interval {
	return Interval{Begin: c - a.End, End: c - a.Begin}
}

// S1 returns the interval as an s1.Interval. Full turn intervals
// map to s1.FullInterval.
func (a Interval) S1() s1.Interval {
	if a.IsFull() {
		return s1.FullInterval()
	}
	return s1.IntervalFromEndpoints(math.Remainder(a.Begin, Turn), math.Remainder(a.End, Turn))
}

// Equals tests the equality of the interval endpoints to within a tolerance.
func (a Interval) Equals(b Interval, tol float64) bool {
	return math.Abs(a.Begin-b.Begin) <= tol && math.Abs(a.End-b.End) <= tol
}

func (a Interval) String() string {
	return "[" + strconv.FormatFloat(a.Begin, 'f', 7, 64) + ", " + strconv.FormatFloat(a.End, 'f', 7, 64) + "]"
}
