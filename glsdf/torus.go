package glsdf

import (
	"math"

	torus "github.com/dadachu/MinuteTorus"
	"github.com/dadachu/MinuteTorus/glsdf/glbuild"
	"github.com/soypat/glgl/math/ms3"
)

// Torus is the complete torus of a fitted approximation in the surface's
// frame.
type Torus struct {
	major, minor float32
	// Inverse placement: local = rot*p + trans, rot row major.
	rot    [9]float32
	trans  ms3.Vec
	bounds ms3.Box
}

var _ Shape = (*Torus)(nil)

// NewTorus returns the distance field of the torus of a. A negative major
// radius describes the same surface as its absolute value.
func NewTorus(a torus.Approximation) *Torus {
	m := a.Inverse.Matrix()
	t := &Torus{
		major: float32(math.Abs(a.Patch.MajorRadius)),
		minor: float32(a.Patch.MinorRadius),
		trans: ms3.Vec{X: float32(m[3]), Y: float32(m[7]), Z: float32(m[11])},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.rot[i*3+j] = float32(m[i*4+j])
		}
	}
	box := a.Bounds()
	t.bounds = ms3.Box{
		Min: ms3.Vec{X: float32(box.Min.X), Y: float32(box.Min.Y), Z: float32(box.Min.Z)},
		Max: ms3.Vec{X: float32(box.Max.X), Y: float32(box.Max.Y), Z: float32(box.Max.Z)},
	}
	return t
}

func (t *Torus) local(p ms3.Vec) ms3.Vec {
	r := &t.rot
	return ms3.Vec{
		X: r[0]*p.X + r[1]*p.Y + r[2]*p.Z + t.trans.X,
		Y: r[3]*p.X + r[4]*p.Y + r[5]*p.Z + t.trans.Y,
		Z: r[6]*p.X + r[7]*p.Y + r[8]*p.Z + t.trans.Z,
	}
}

// Evaluate writes the signed distance to the torus of every position. userData
// must provide a glbuild.VecPool.
func (t *Torus) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	if len(pos) != len(dist) {
		return errLength
	}
	if len(pos) == 0 {
		return nil
	}
	vp, err := glbuild.GetVecPool(userData)
	if err != nil {
		return err
	}
	transformed := vp.V3.Acquire(len(pos))
	defer vp.V3.Release(transformed)
	for i, p := range pos {
		transformed[i] = t.local(p)
	}
	for i, q := range transformed {
		dist[i] = hypotf(hypotf(q.X, q.Y)-t.major, q.Z) - t.minor
	}
	return nil
}

func (t *Torus) Bounds() ms3.Box { return t.bounds }

func (t *Torus) ForEachChild(userData any, fn func(userData any, s *glbuild.Shader3D) error) error {
	return nil
}

func (t *Torus) AppendShaderName(b []byte) []byte {
	b = append(b, "torus"...)
	b = fappend(b, t.major, 'n', 'p')
	b = append(b, '_')
	b = fappend(b, t.minor, 'n', 'p')
	for _, v := range t.rot {
		b = append(b, '_')
		b = fappend(b, v, 'n', 'p')
	}
	arr := [3]float32{t.trans.X, t.trans.Y, t.trans.Z}
	for _, v := range arr {
		b = append(b, '_')
		b = fappend(b, v, 'n', 'p')
	}
	return b
}

func (t *Torus) AppendShaderBody(b []byte) []byte {
	b = glbuild.AppendMat3Decl(b, "r", t.rot)
	b = glbuild.AppendVec3Decl(b, "o", t.trans)
	b = glbuild.AppendFloatDecl(b, "t1", t.major)
	b = glbuild.AppendFloatDecl(b, "t2", t.minor)
	b = append(b, `p = r*p+o;
vec2 q = vec2(length(p.xy)-t1,p.z);
return length(q)-t2;`...)
	return b
}
