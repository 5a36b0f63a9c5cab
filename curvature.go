package torus

import (
	"math"

	"github.com/dadachu/MinuteTorus/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// principalFrame holds the principal curvatures and directions of a
// surface at a sample point.
type principalFrame struct {
	normal r3.Vec
	k1, k2 float64
	w1, w2 r3.Vec
	// aligned is set when Fu and Fv were taken as principal directions.
	aligned bool
}

// fundamentalForms returns the coefficients of the first (E, F, G) and
// second (e, f, g) fundamental forms of the sample.
func fundamentalForms(s Sample) (E, F, G, e, f, g float64) {
	E = r3.Dot(s.Fu, s.Fu)
	F = r3.Dot(s.Fu, s.Fv)
	G = r3.Dot(s.Fv, s.Fv)
	det := math.Sqrt(E*G - F*F)
	e = d3.Triple(s.Fu, s.Fv, s.Fuu) / det
	f = d3.Triple(s.Fu, s.Fv, s.Fuv) / det
	g = d3.Triple(s.Fu, s.Fv, s.Fvv) / det
	return E, F, G, e, f, g
}

// principalCurvatures computes k1 >= k2 and their directions. The principal
// directions are left unnormalized in the degenerate case Fu or Fv is zero.
func principalCurvatures(s Sample, tol float64) principalFrame {
	pf := principalFrame{normal: s.Normal()}
	E, F, G, e, f, g := fundamentalForms(s)
	det := E*G - F*F
	// Weingarten equations: Nu = a11 Fu + a21 Fv, Nv = a12 Fu + a22 Fv.
	a11 := (f*F - e*G) / det
	a12 := (g*F - f*G) / det
	a21 := (e*F - f*E) / det
	a22 := (f*F - g*E) / det

	// H²-K written without cancellation so umbilics give k1 == k2.
	H := -0.5 * (a11 + a22)
	half := 0.5 * (a11 - a22)
	disc := math.Sqrt(math.Max(half*half+a12*a21, 0))
	pf.k1 = H + disc
	pf.k2 = H - disc

	if math.Abs(a12) < tol && math.Abs(a21) < tol {
		// Coordinate directions are principal. a11 = -k on Fu.
		pf.aligned = true
		d1 := (a11 + pf.k1) * (a11 + pf.k1)
		d2 := (a11 + pf.k2) * (a11 + pf.k2)
		if d1 < d2 {
			pf.w1, pf.w2 = s.Fu, s.Fv
		} else {
			pf.w1, pf.w2 = s.Fv, s.Fu
		}
	} else {
		pf.w1 = principalDirection(s, pf.k1, a11, a12, a21, a22)
		pf.w2 = principalDirection(s, pf.k2, a11, a12, a21, a22)
	}
	pf.w1 = r3.Unit(pf.w1)
	pf.w2 = r3.Unit(pf.w2)
	return pf
}

// principalDirection solves dN(w) = -k w for w = α Fu + β Fv using the
// better conditioned row of the shape operator.
func principalDirection(s Sample, k, a11, a12, a21, a22 float64) r3.Vec {
	if math.Abs(a12) >= math.Abs(a21) {
		// α a11 + β a12 = -k α
		return r3.Add(s.Fu, r3.Scale((-k-a11)/a12, s.Fv))
	}
	// α a21 + β a22 = -k β
	return r3.Add(r3.Scale((-k-a22)/a21, s.Fu), s.Fv)
}

// fitResult is an osculating torus with its placement and anchor parameters.
type fitResult struct {
	patch     Patch
	placement Placement
	m0, n0    float64
	frame     principalFrame
}

// fitTorus builds the osculating torus of the sample. The sample point is
// the image of (m0, n0) where m0 = 0 and n0 is 0 for elliptic points and π
// for hyperbolic points.
func fitTorus(s Sample, cfg Config) fitResult {
	pf := principalCurvatures(s, cfg.PrincipalTol)
	normal := pf.normal
	k1 := clampMagnitude(pf.k1, cfg.MinCurvature)
	k2 := clampMagnitude(pf.k2, cfg.MinCurvature)
	w1, w2 := pf.w1, pf.w2

	var m0, n0 float64
	if k1*k2 < 0 {
		n0 = pi // hyperbolic: inner equator
	}
	if math.Abs(k1) > math.Abs(k2) {
		k1, k2 = k2, k1
		w1, w2 = w2, w1
	}
	if k1 > 0 {
		// Open the torus away from the concave side.
		normal = r3.Scale(-1, normal)
		k1, k2 = -k1, -k2
	}
	patch := Patch{
		MajorRadius: -1/k1 + 1/k2,
		MinorRadius: 1 / math.Abs(k2),
	}
	center := r3.Add(s.F, r3.Scale(1/k1, normal))
	axis := w2
	placement := axisPlacement(center, axis)

	// Spin about the axis so that (m0, n0) lands on the sample point.
	got := r3.Sub(placement.Apply(patch.Evaluate(m0, n0)), center)
	want := r3.Sub(s.F, center)
	placement = placement.RotatedAbout(axis, d3.SignedAngle(got, want, axis))

	return fitResult{
		patch:     patch,
		placement: placement,
		m0:        m0,
		n0:        n0,
		frame:     principalFrame{normal: normal, k1: k1, k2: k2, w1: w1, w2: w2, aligned: pf.aligned},
	}
}
