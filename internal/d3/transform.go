package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform represents a rigid 3D spatial transformation: a rotation
// followed by a translation, stored as the upper 3x4 block of a 4x4
// homogeneous matrix. The zero value of Transform is the identity transform.
type Transform struct {
	// in order to make the zero value of Transform represent the identity
	// transform we store it with the identity matrix subtracted.
	// These diagonal elements are subtracted such that
	//  d00 = x00-1, d11 = x11-1, d22 = x22-1
	// where x00, x11, x22 are the matrix diagonal elements.
	// We can then check for identity in if blocks like so:
	//  if T == (Transform{})
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
}

// Transform applies the Transform to the argument vector
// and returns the result.
func (t Transform) Transform(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z + t.x03,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z + t.x13,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z + t.x23,
	}
}

// Rotate applies only the rotational part of the Transform to v. It is
// the transform used for directions and derivative vectors.
func (t Transform) Rotate(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z,
	}
}

// ComposeTransform creates a new transform for a given translation to
// position and quaternion rotation.
// The identity Transform is constructed with
//
//	ComposeTransform(Vec{}, Rotation{Real: 1})
func ComposeTransform(position r3.Vec, q r3.Rotation) Transform {
	x2 := q.Imag + q.Imag
	y2 := q.Jmag + q.Jmag
	z2 := q.Kmag + q.Kmag
	xx := q.Imag * x2
	yy := q.Jmag * y2
	zz := q.Kmag * z2
	xy := q.Imag * y2
	xz := q.Imag * z2
	yz := q.Jmag * z2
	wx := q.Real * x2
	wy := q.Real * y2
	wz := q.Real * z2

	var t Transform
	t.d00 = -(yy + zz)
	t.x10 = xy + wz
	t.x20 = xz - wy

	t.x01 = xy - wz
	t.d11 = -(xx + zz)
	t.x21 = yz + wx

	t.x02 = xz + wy
	t.x12 = yz - wx
	t.d22 = -(xx + yy)

	t.x03 = position.X
	t.x13 = position.Y
	t.x23 = position.Z
	return t
}

// Translate adds Vec to the positional Transform.
func (t Transform) Translate(v r3.Vec) Transform {
	t.x03 += v.X
	t.x13 += v.Y
	t.x23 += v.Z
	return t
}

// Translation returns the translation of the Transform.
func (t Transform) Translation() r3.Vec {
	return r3.Vec{X: t.x03, Y: t.x13, Z: t.x23}
}

// Mul multiplies the Transforms a and b and returns the result.
// The result applies b first and then t.
func (t Transform) Mul(b Transform) Transform {
	if t == (Transform{}) {
		return b
	}
	if b == (Transform{}) {
		return t
	}
	x00 := t.d00 + 1
	x11 := t.d11 + 1
	x22 := t.d22 + 1
	y00 := b.d00 + 1
	y11 := b.d11 + 1
	y22 := b.d22 + 1
	var m Transform
	m.d00 = x00*y00 + t.x01*b.x10 + t.x02*b.x20 - 1
	m.x10 = t.x10*y00 + x11*b.x10 + t.x12*b.x20
	m.x20 = t.x20*y00 + t.x21*b.x10 + x22*b.x20
	m.x01 = x00*b.x01 + t.x01*y11 + t.x02*b.x21
	m.d11 = t.x10*b.x01 + x11*y11 + t.x12*b.x21 - 1
	m.x21 = t.x20*b.x01 + t.x21*y11 + x22*b.x21
	m.x02 = x00*b.x02 + t.x01*b.x12 + t.x02*y22
	m.x12 = t.x10*b.x02 + x11*b.x12 + t.x12*y22
	m.d22 = t.x20*b.x02 + t.x21*b.x12 + x22*y22 - 1
	m.x03 = x00*b.x03 + t.x01*b.x13 + t.x02*b.x23 + t.x03
	m.x13 = t.x10*b.x03 + x11*b.x13 + t.x12*b.x23 + t.x13
	m.x23 = t.x20*b.x03 + t.x21*b.x13 + x22*b.x23 + t.x23
	return m
}

// Inv returns the inverse of the rigid transform such that
// t.Inv().Mul(t) is the identity Transform. The rotation block is
// assumed orthonormal, so its inverse is its transpose.
func (t Transform) Inv() Transform {
	if t == (Transform{}) {
		return t
	}
	m := t.transpose()
	pos := m.Rotate(t.Translation())
	m.x03 = -pos.X
	m.x13 = -pos.Y
	m.x23 = -pos.Z
	return m
}

// transpose transposes the rotation block and drops the translation.
func (t Transform) transpose() Transform {
	return Transform{
		d00: t.d00, x01: t.x10, x02: t.x20,
		x10: t.x01, d11: t.d11, x12: t.x21,
		x20: t.x02, x21: t.x12, d22: t.d22,
	}
}

// Equals tests the equality of the Transforms to within a tolerance.
func (t Transform) Equals(b Transform, tolerance float64) bool {
	return math.Abs(t.d00-b.d00) < tolerance &&
		math.Abs(t.x01-b.x01) < tolerance &&
		math.Abs(t.x02-b.x02) < tolerance &&
		math.Abs(t.x03-b.x03) < tolerance &&
		math.Abs(t.x10-b.x10) < tolerance &&
		math.Abs(t.d11-b.d11) < tolerance &&
		math.Abs(t.x12-b.x12) < tolerance &&
		math.Abs(t.x13-b.x13) < tolerance &&
		math.Abs(t.x20-b.x20) < tolerance &&
		math.Abs(t.x21-b.x21) < tolerance &&
		math.Abs(t.d22-b.d22) < tolerance &&
		math.Abs(t.x23-b.x23) < tolerance
}

// SliceCopy returns a copy of the Transform's data
// in row major storage format. It returns 16 elements,
// the last row being 0, 0, 0, 1.
func (t Transform) SliceCopy() []float64 {
	return []float64{
		t.d00 + 1, t.x01, t.x02, t.x03,
		t.x10, t.d11 + 1, t.x12, t.x13,
		t.x20, t.x21, t.d22 + 1, t.x23,
		0, 0, 0, 1,
	}
}
