package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 vector routines shared by the fitting code. They complement
// the gonum r3 free functions.

func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

func IsFinite(a r3.Vec) bool {
	return !math.IsNaN(a.X+a.Y+a.Z) && !math.IsInf(a.X+a.Y+a.Z, 0)
}

// Triple returns the scalar triple product (a × b) · c.
func Triple(a, b, c r3.Vec) float64 {
	return r3.Dot(r3.Cross(a, b), c)
}

// Factorize returns the scalar s minimizing |a - s*b|, that is the
// coordinate of a's projection onto b. It returns 0 for a zero b.
func Factorize(a, b r3.Vec) float64 {
	b2 := r3.Norm2(b)
	if b2 == 0 {
		return 0
	}
	return r3.Dot(a, b) / b2
}

// Resolve returns the coordinates (s, t) of the projection of x onto
// the plane spanned by a and b, x ≈ s*a + t*b. a and b need not be orthogonal.
// If a and b are parallel the result reduces to Factorize against a.
func Resolve(x, a, b r3.Vec) (s, t float64) {
	// Solve the 2x2 normal equations with the Gram matrix of {a, b}.
	aa := r3.Dot(a, a)
	ab := r3.Dot(a, b)
	bb := r3.Dot(b, b)
	xa := r3.Dot(x, a)
	xb := r3.Dot(x, b)
	det := aa*bb - ab*ab
	if math.Abs(det) <= 1e-14*aa*bb {
		return Factorize(x, a), 0
	}
	s = (xa*bb - xb*ab) / det
	t = (xb*aa - xa*ab) / det
	return s, t
}

// SignedAngle returns the angle that rotates a onto b counter clockwise
// about axis, in [-π, π]. a and b are expected to be perpendicular to axis.
func SignedAngle(a, b, axis r3.Vec) float64 {
	a = r3.Unit(a)
	b = r3.Unit(b)
	sin := r3.Norm(r3.Cross(a, b))
	if Triple(a, b, axis) < 0 {
		sin = -sin
	}
	return math.Atan2(sin, r3.Dot(a, b))
}

type Set []r3.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r3.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r3.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}
