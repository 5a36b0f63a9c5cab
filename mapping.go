package torus

import (
	"math"

	"github.com/dadachu/MinuteTorus/angular"
	"github.com/dadachu/MinuteTorus/internal/d2"
	"github.com/dadachu/MinuteTorus/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quadratic holds the coefficients [a, b, c, d, e, f] of the polynomial
//
//	q(x, y) = a x² + b y² + c xy + d x + e y + f
type Quadratic [6]float64

// Eval evaluates the polynomial at (x, y).
func (q Quadratic) Eval(x, y float64) float64 {
	return q[0]*x*x + q[1]*y*y + q[2]*x*y + q[3]*x + q[4]*y + q[5]
}

// DU returns ∂q/∂x at (x, y).
func (q Quadratic) DU(x, y float64) float64 { return 2*q[0]*x + q[2]*y + q[3] }

// DV returns ∂q/∂y at (x, y).
func (q Quadratic) DV(x, y float64) float64 { return 2*q[1]*y + q[2]*x + q[4] }

// DUU returns the constant ∂²q/∂x².
func (q Quadratic) DUU() float64 { return 2 * q[0] }

// DVV returns the constant ∂²q/∂y².
func (q Quadratic) DVV() float64 { return 2 * q[1] }

// DUV returns the constant ∂²q/∂x∂y.
func (q Quadratic) DUV() float64 { return q[2] }

// anchored returns the quadratic with the given second order coefficients
// and the first derivatives (dx, dy) and value val at (x0, y0).
func anchored(a, b, c, dx, dy, val, x0, y0 float64) Quadratic {
	q := Quadratic{a, b, c}
	q[3] = dx - 2*a*x0 - c*y0
	q[4] = dy - 2*b*y0 - c*x0
	q[5] = val - a*x0*x0 - b*y0*y0 - c*x0*y0 - q[3]*x0 - q[4]*y0
	return q
}

// Bound returns the range of q over rect. It only succeeds when q is
// monotone in both variables over the rectangle, that is when neither
// partial derivative changes sign between the four corners. Derivatives
// are linear so their corner signs hold over the whole rectangle.
// Monotone is meant weakly: corner derivatives that vanish, within a
// rounding tolerance, are accepted. Constant directions such as the m
// mapping of a sphere fit or an equator point therefore bound successfully
// where a strict sign test would reject them.
// Ranges at least a full turn wide are reported as [0, 2π].
func (q Quadratic) Bound(rect Rect) (dom angular.Interval, ok bool) {
	var du, dv [4]float64
	var scale float64
	for i, c := range d2.Box(rect).Vertices() {
		du[i], dv[i] = q.DU(c.X, c.Y), q.DV(c.X, c.Y)
		scale = math.Max(scale, math.Max(math.Abs(du[i]), math.Abs(dv[i])))
	}
	zero := epsilon * scale
	incU, okU := monotone(du, zero)
	incV, okV := monotone(dv, zero)
	if !okU || !okV {
		return dom, false
	}
	lo, hi := rect.Min, rect.Max
	if !incU {
		lo.X, hi.X = hi.X, lo.X
	}
	if !incV {
		lo.Y, hi.Y = hi.Y, lo.Y
	}
	min, max := q.Eval(lo.X, lo.Y), q.Eval(hi.X, hi.Y)
	if max-min >= tau {
		return angular.Full(), true
	}
	return angular.New(min, max), true
}

// monotone reports whether the corner values of a derivative share a sign.
// Values within zero of 0 match either sign.
func monotone(d [4]float64, zero float64) (increasing, ok bool) {
	var pos, neg bool
	for _, v := range d {
		pos = pos || v > zero
		neg = neg || v < -zero
	}
	return !neg, !(pos && neg)
}

// Mapping relates surface parameters (u, v) to torus parameters (m, n)
// near the anchor (U0, V0) ↔ (M0, N0). Both directions are second order
// Taylor polynomials derived independently. They agree exactly at the anchor
// and only to second order away from it.
type Mapping struct {
	// M and N give m(u, v) and n(u, v).
	M, N Quadratic
	// U and V give u(m, n) and v(m, n).
	U, V   Quadratic
	U0, V0 float64
	M0, N0 float64
}

// ToTorus maps surface parameters to torus parameters.
func (mp Mapping) ToTorus(u, v float64) (m, n float64) {
	return mp.M.Eval(u, v), mp.N.Eval(u, v)
}

// ToSurface maps torus parameters to surface parameters.
func (mp Mapping) ToSurface(m, n float64) (u, v float64) {
	return mp.U.Eval(m, n), mp.V.Eval(m, n)
}

// BoundTorusDomain returns torus parameter domains enclosing the image of
// rect under ToTorus. ok is false if either m(u, v) or n(u, v) is not
// monotone over rect, in which case both domains are the full turn.
func (mp Mapping) BoundTorusDomain(rect Rect) (mDom, nDom angular.Interval, ok bool) {
	mDom, okM := mp.M.Bound(rect)
	nDom, okN := mp.N.Bound(rect)
	if !okM || !okN {
		return angular.Full(), angular.Full(), false
	}
	return mDom, nDom, true
}

// torusDerivatives are the derivatives of a placed torus at a point,
// expressed in the ambient frame.
type torusDerivatives struct {
	Gm, Gn, Gmm, Gmn, Gnn r3.Vec
}

func placedDerivatives(p Patch, pl Placement, m, n float64) torusDerivatives {
	d := func(dm, dn int) r3.Vec { return pl.ApplyRotation(p.Differentiate(m, n, dm, dn)) }
	return torusDerivatives{
		Gm:  d(1, 0),
		Gn:  d(0, 1),
		Gmm: d(2, 0),
		Gmn: d(1, 1),
		Gnn: d(0, 2),
	}
}

// newMapping matches the surface and the placed torus to second order at
// the anchor with the chain rule.
func newMapping(s Sample, p Patch, pl Placement, m0, n0 float64) Mapping {
	g := placedDerivatives(p, pl, m0, n0)
	mp := Mapping{U0: s.U, V0: s.V, M0: m0, N0: n0}

	// m(u, v), n(u, v). Gm and Gn are orthogonal so the first derivatives
	// are plain projections of Fu and Fv.
	mu, nu := d3.Factorize(s.Fu, g.Gm), d3.Factorize(s.Fu, g.Gn)
	mv, nv := d3.Factorize(s.Fv, g.Gm), d3.Factorize(s.Fv, g.Gn)
	// Fuu = Gmm mu² + 2Gmn mu nu + Gnn nu² + Gm muu + Gn nuu, likewise for Fvv and Fuv.
	hUU := secondOrderResidual(s.Fuu, g.Gmm, g.Gmn, g.Gnn, mu, nu, mu, nu)
	hVV := secondOrderResidual(s.Fvv, g.Gmm, g.Gmn, g.Gnn, mv, nv, mv, nv)
	hUV := secondOrderResidual(s.Fuv, g.Gmm, g.Gmn, g.Gnn, mu, nu, mv, nv)
	mp.M = anchored(
		0.5*d3.Factorize(hUU, g.Gm), 0.5*d3.Factorize(hVV, g.Gm), d3.Factorize(hUV, g.Gm),
		mu, mv, m0, s.U, s.V)
	mp.N = anchored(
		0.5*d3.Factorize(hUU, g.Gn), 0.5*d3.Factorize(hVV, g.Gn), d3.Factorize(hUV, g.Gn),
		nu, nv, n0, s.U, s.V)

	// u(m, n), v(m, n). Fu and Fv are generally not orthogonal.
	um, vm := d3.Resolve(g.Gm, s.Fu, s.Fv)
	un, vn := d3.Resolve(g.Gn, s.Fu, s.Fv)
	umm, vmm := d3.Resolve(secondOrderResidual(g.Gmm, s.Fuu, s.Fuv, s.Fvv, um, vm, um, vm), s.Fu, s.Fv)
	unn, vnn := d3.Resolve(secondOrderResidual(g.Gnn, s.Fuu, s.Fuv, s.Fvv, un, vn, un, vn), s.Fu, s.Fv)
	umn, vmn := d3.Resolve(secondOrderResidual(g.Gmn, s.Fuu, s.Fuv, s.Fvv, um, vm, un, vn), s.Fu, s.Fv)
	mp.U = anchored(0.5*umm, 0.5*unn, umn, um, un, s.U, m0, n0)
	mp.V = anchored(0.5*vmm, 0.5*vnn, vmn, vm, vn, s.V, m0, n0)
	return mp
}

// secondOrderResidual returns the part of the mixed second derivative
// target = ∂²H/∂s∂t of a composition H(x(s, t), y(s, t)) that is carried by
// the second derivatives of x and y:
//
//	target - Hxx xs xt - Hxy (xs yt + ys xt) - Hyy ys yt
func secondOrderResidual(target, Hxx, Hxy, Hyy r3.Vec, xs, ys, xt, yt float64) r3.Vec {
	r := r3.Sub(target, r3.Scale(xs*xt, Hxx))
	r = r3.Sub(r, r3.Scale(xs*yt+ys*xt, Hxy))
	return r3.Sub(r, r3.Scale(ys*yt, Hyy))
}

// maxAbsOnCorners returns the largest magnitude of the linear function f
// on the corners of rect.
func maxAbsOnCorners(rect Rect, f func(x, y float64) float64) float64 {
	c := d2.Box(rect).Vertices()
	return max4(
		math.Abs(f(c[0].X, c[0].Y)),
		math.Abs(f(c[1].X, c[1].Y)),
		math.Abs(f(c[2].X, c[2].Y)),
		math.Abs(f(c[3].X, c[3].Y)),
	)
}
