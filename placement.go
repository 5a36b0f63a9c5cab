package torus

import (
	"github.com/dadachu/MinuteTorus/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Placement is a rigid transform, a rotation followed by a translation,
// that carries torus local coordinates into the ambient frame of a surface.
// The zero value of Placement is the identity.
type Placement struct {
	t d3.Transform
}

// NewPlacement returns the placement that rotates by q and then translates by pos.
func NewPlacement(q r3.Rotation, pos r3.Vec) Placement {
	return Placement{t: d3.ComposeTransform(pos, q)}
}

// Apply transforms a point.
func (p Placement) Apply(v r3.Vec) r3.Vec { return p.t.Transform(v) }

// ApplyRotation transforms a direction or derivative vector, ignoring translation.
func (p Placement) ApplyRotation(v r3.Vec) r3.Vec { return p.t.Rotate(v) }

// Inverse returns the placement undoing p.
func (p Placement) Inverse() Placement { return Placement{t: p.t.Inv()} }

// Translation returns the image of the local origin.
func (p Placement) Translation() r3.Vec { return p.t.Translation() }

// Matrix returns the homogeneous 4x4 matrix of the placement in row major order.
func (p Placement) Matrix() [16]float64 {
	var m [16]float64
	copy(m[:], p.t.SliceCopy())
	return m
}

// Equals tests the equality of the placements to within a tolerance.
func (p Placement) Equals(b Placement, tol float64) bool {
	return p.t.Equals(b.t, tol)
}

// RotatedAbout returns p followed by a rotation of angle radians about the
// line through p's translation with direction axis.
func (p Placement) RotatedAbout(axis r3.Vec, angle float64) Placement {
	c := p.Translation()
	spin := d3.ComposeTransform(c, r3.NewRotation(angle, axis))
	spin = spin.Mul(d3.Transform{}.Translate(r3.Scale(-1, c)))
	return Placement{t: spin.Mul(p.t)}
}

// axisPlacement returns the placement translating the origin to center and
// rotating +Z onto axis along the shortest arc.
func axisPlacement(center, axis r3.Vec) Placement {
	z := r3.Vec{Z: 1}
	axis = r3.Unit(axis)
	switch {
	case d3.EqualWithin(axis, z, epsilon):
		return NewPlacement(r3.Rotation{Real: 1}, center)
	case d3.EqualWithin(axis, r3.Scale(-1, z), epsilon):
		// z × axis vanishes, any axis orthogonal to +Z works.
		return NewPlacement(r3.NewRotation(pi, r3.Vec{X: 1}), center)
	}
	helper := r3.Unit(r3.Cross(z, axis))
	angle := d3.SignedAngle(z, axis, helper)
	return NewPlacement(r3.NewRotation(angle, helper), center)
}
