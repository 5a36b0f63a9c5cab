package torus

import (
	"math"

	"github.com/dadachu/MinuteTorus/angular"
	"gonum.org/v1/gonum/spatial/r3"
)

// Patch is a torus patch in its local frame: centered at the origin with
// its axis along +Z. M is the domain of the angle around the axis and N
// the domain of the angle around the tube (latitude):
//
//	P(m, n) = ((R + r cos n) cos m, (R + r cos n) sin m, r sin n)
//
// with R = MajorRadius and r = MinorRadius.
type Patch struct {
	MajorRadius float64
	MinorRadius float64
	M, N        angular.Interval
}

// Evaluate returns the point of the torus at (m, n).
func (p Patch) Evaluate(m, n float64) r3.Vec {
	return p.Differentiate(m, n, 0, 0)
}

// Differentiate returns the partial derivative ∂^(dm+dn) P / ∂m^dm ∂n^dn at (m, n).
func (p Patch) Differentiate(m, n float64, dm, dn int) r3.Vec {
	cm, sm := sincosShift(m, dm)
	cn, sn := sincosShift(n, dn)
	rho := p.MinorRadius * cn
	if dn == 0 {
		rho += p.MajorRadius
	}
	v := r3.Vec{X: rho * cm, Y: rho * sm}
	if dm == 0 {
		v.Z = p.MinorRadius * sn
	}
	return v
}

// Normal returns the outward unit normal of the torus at (m, n).
func (p Patch) Normal(m, n float64) r3.Vec {
	sm, cm := math.Sincos(m)
	sn, cn := math.Sincos(n)
	return r3.Vec{X: cn * cm, Y: cn * sm, Z: sn}
}

// Distance returns the distance from q to the complete torus surface. q
// is given in the torus' local frame. Every meridian plane cuts the surface
// in two circles centered at ±R, which also covers spindle tori and R < 0.
func (p Patch) Distance(q r3.Vec) float64 {
	rho := math.Hypot(q.X, q.Y)
	near := math.Abs(math.Hypot(rho-p.MajorRadius, q.Z) - p.MinorRadius)
	far := math.Abs(math.Hypot(rho+p.MajorRadius, q.Z) - p.MinorRadius)
	return math.Min(near, far)
}

// Bounds returns the local bounding box of the complete torus.
func (p Patch) Bounds() r3.Box {
	R := math.Abs(p.MajorRadius) + p.MinorRadius
	return r3.Box{
		Min: r3.Vec{X: -R, Y: -R, Z: -p.MinorRadius},
		Max: r3.Vec{X: R, Y: R, Z: p.MinorRadius},
	}
}

// sincosShift returns cos(x + k*π/2) and sin(x + k*π/2), the k-th
// derivatives of cos and sin at x, without rounding the shift.
func sincosShift(x float64, k int) (c, s float64) {
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
