package torus

import (
	"fmt"
	"math"

	"github.com/dadachu/MinuteTorus/internal/d2"
	"github.com/dadachu/MinuteTorus/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rect is a rectangle of surface parameters. X holds the u parameter and
// Y holds the v parameter.
type Rect r2.Box

// NewRect returns the parameter rectangle [u0, u1] × [v0, v1].
func NewRect(u0, u1, v0, v1 float64) Rect {
	return Rect{Min: r2.Vec{X: u0, Y: v0}, Max: r2.Vec{X: u1, Y: v1}}
}

// CenteredRect returns the rectangle centered at (u, v) with half-widths hu and hv.
func CenteredRect(u, v, hu, hv float64) Rect {
	return NewRect(u-hu, u+hu, v-hv, v+hv)
}

// HalfWidths returns half the width of the u and v ranges.
func (r Rect) HalfWidths() (hu, hv float64) {
	size := d2.Box(r).Size()
	return 0.5 * size.X, 0.5 * size.Y
}

// Contains reports whether (u, v) lies in the rectangle, bounds included.
func (r Rect) Contains(u, v float64) bool {
	return d2.Box(r).Contains(r2.Vec{X: u, Y: v})
}

// Sample is the local differential data of a parametric surface F(u, v)
// at the parameters (U, V).
//
// The error bound takes the half-widths of Domain as the Taylor radius
// around (U, V), so it is only certified when (U, V) is the center of
// Domain. See Centered.
type Sample struct {
	// Parameters of the sampled point.
	U, V float64
	// Position and partial derivatives of F at (U, V).
	F, Fu, Fv, Fuu, Fuv, Fvv r3.Vec
	// Domain is the rectangle the approximation must cover.
	Domain Rect
	// M1..M4 bound the magnitudes of the third partial derivatives
	// Fuuu, Fuuv, Fuvv and Fvvv over Domain.
	M1, M2, M3, M4 float64
}

// Normal returns the unit normal Fu × Fv.
func (s Sample) Normal() r3.Vec {
	return r3.Unit(r3.Cross(s.Fu, s.Fv))
}

// Centered reports whether (U, V) lies within tol of the center of Domain
// in both parameters.
func (s Sample) Centered(tol float64) bool {
	c := d2.Box(s.Domain).Center()
	return math.Abs(s.U-c.X) <= tol && math.Abs(s.V-c.Y) <= tol
}

// Validate checks the sample describes a regular surface point. Fit does not
// require a valid sample but its result is meaningless for degenerate ones.
func (s Sample) Validate() error {
	for _, v := range []r3.Vec{s.F, s.Fu, s.Fv, s.Fuu, s.Fuv, s.Fvv} {
		if !d3.IsFinite(v) {
			return ErrMsg("non-finite surface derivative")
		}
	}
	n := r3.Norm(r3.Cross(s.Fu, s.Fv))
	if n <= epsilon*r3.Norm(s.Fu)*r3.Norm(s.Fv) {
		return ErrMsg("degenerate tangent plane, Fu and Fv are parallel")
	}
	if s.Domain.Min.X > s.Domain.Max.X || s.Domain.Min.Y > s.Domain.Max.Y {
		return ErrMsg("inverted parameter domain")
	}
	if !s.Domain.Contains(s.U, s.V) {
		return fmt.Errorf("sample parameters (%g, %g) outside of domain", s.U, s.V)
	}
	for i, m := range [4]float64{s.M1, s.M2, s.M3, s.M4} {
		if m < 0 || math.IsNaN(m) {
			return fmt.Errorf("third derivative bound M%d=%g must be non-negative", i+1, m)
		}
	}
	return nil
}
