// Package synth provides closed form parametric surfaces with exact
// derivatives for exercising the torus fitting code.
package synth

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Jet is the position of a surface and its partial derivatives up to
// second order at one parameter pair.
type Jet struct {
	F, Fu, Fv, Fuu, Fuv, Fvv r3.Vec
}

// Surface is a parametric surface F(u, v).
type Surface interface {
	// Differentiate returns ∂^(du+dv) F / ∂u^du ∂v^dv at (u, v).
	Differentiate(u, v float64, du, dv int) r3.Vec
	// ThirdBound returns upper bounds of |Fuuu|, |Fuuv|, |Fuvv| and |Fvvv| over dom.
	ThirdBound(dom r2.Box) [4]float64
}

// JetAt evaluates the jet of s at (u, v).
func JetAt(s Surface, u, v float64) Jet {
	return Jet{
		F:   s.Differentiate(u, v, 0, 0),
		Fu:  s.Differentiate(u, v, 1, 0),
		Fv:  s.Differentiate(u, v, 0, 1),
		Fuu: s.Differentiate(u, v, 2, 0),
		Fuv: s.Differentiate(u, v, 1, 1),
		Fvv: s.Differentiate(u, v, 0, 2),
	}
}

// Ellipsoid with semi axes A, B and C along x, y and z:
//
//	F(u, v) = (A cos u cos v, B sin u cos v, C sin v)
//
// u is the longitude and v the latitude. Fu × Fv points outward.
type Ellipsoid struct {
	A, B, C float64
}

// Sphere returns the sphere of the given radius centered at the origin.
func Sphere(radius float64) Ellipsoid {
	return Ellipsoid{A: radius, B: radius, C: radius}
}

func (e Ellipsoid) Differentiate(u, v float64, du, dv int) r3.Vec {
	cu, su := cosSinDerivative(u, du)
	cv, sv := cosSinDerivative(v, dv)
	p := r3.Vec{X: e.A * cu * cv, Y: e.B * su * cv}
	if du == 0 {
		p.Z = e.C * sv
	}
	return p
}

func (e Ellipsoid) ThirdBound(r2.Box) [4]float64 {
	b := math.Sqrt(e.A*e.A + e.B*e.B + e.C*e.C)
	return [4]float64{b, b, b, b}
}

// Torus of major radius R and minor radius Rm around the z axis:
//
//	F(u, v) = ((R + Rm cos v) cos u, (R + Rm cos v) sin u, Rm sin v)
type Torus struct {
	R, Rm float64
}

func (t Torus) Differentiate(u, v float64, du, dv int) r3.Vec {
	cu, su := cosSinDerivative(u, du)
	cv, sv := cosSinDerivative(v, dv)
	rho := t.Rm * cv
	if dv == 0 {
		rho += t.R
	}
	p := r3.Vec{X: rho * cu, Y: rho * su}
	if du == 0 {
		p.Z = t.Rm * sv
	}
	return p
}

func (t Torus) ThirdBound(r2.Box) [4]float64 {
	b := math.Hypot(math.Abs(t.R)+t.Rm, t.Rm)
	return [4]float64{b, b, b, b}
}

// Cylinder of the given radius around the z axis:
//
//	F(u, v) = (Radius cos u, Radius sin u, v)
type Cylinder struct {
	Radius float64
}

func (c Cylinder) Differentiate(u, v float64, du, dv int) r3.Vec {
	switch {
	case du == 0 && dv == 0:
		return r3.Vec{X: c.Radius * math.Cos(u), Y: c.Radius * math.Sin(u), Z: v}
	case du == 0 && dv == 1:
		return r3.Vec{Z: 1}
	case dv > 0:
		return r3.Vec{}
	}
	cu, su := cosSinDerivative(u, du)
	return r3.Vec{X: c.Radius * cu, Y: c.Radius * su}
}

func (c Cylinder) ThirdBound(r2.Box) [4]float64 {
	return [4]float64{c.Radius, 0, 0, 0}
}

// HeightField is the graph of a quadratic form:
//
//	F(u, v) = (u, v, A u² + B v² + C uv)
//
// Its third derivatives vanish.
type HeightField struct {
	A, B, C float64
}

// Plane is the z = 0 plane parametrized by x and y.
var Plane = HeightField{}

func (h HeightField) Differentiate(u, v float64, du, dv int) r3.Vec {
	switch {
	case du == 0 && dv == 0:
		return r3.Vec{X: u, Y: v, Z: h.A*u*u + h.B*v*v + h.C*u*v}
	case du == 1 && dv == 0:
		return r3.Vec{X: 1, Z: 2*h.A*u + h.C*v}
	case du == 0 && dv == 1:
		return r3.Vec{Y: 1, Z: 2*h.B*v + h.C*u}
	case du == 2 && dv == 0:
		return r3.Vec{Z: 2 * h.A}
	case du == 1 && dv == 1:
		return r3.Vec{Z: h.C}
	case du == 0 && dv == 2:
		return r3.Vec{Z: 2 * h.B}
	}
	return r3.Vec{}
}

func (h HeightField) ThirdBound(r2.Box) [4]float64 { return [4]float64{} }

// cosSinDerivative returns the k-th derivatives of cos and sin at x.
func cosSinDerivative(x float64, k int) (c, s float64) {
	sx, cx := math.Sincos(x)
	switch k & 3 {
	case 0:
		return cx, sx
	case 1:
		return -sx, cx
	case 2:
		return -cx, -sx
	default:
		return sx, -cx
	}
}
