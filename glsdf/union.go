package glsdf

import (
	"errors"

	"github.com/dadachu/MinuteTorus/glsdf/glbuild"
	"github.com/soypat/glgl/math/ms3"
)

// Union is the union of several shapes, typically the tori fitted to
// neighbouring patches of one surface.
type Union struct {
	shapes []Shape
}

var _ Shape = (*Union)(nil)

// NewUnion returns the union of the shapes.
func NewUnion(shapes ...Shape) (*Union, error) {
	if len(shapes) == 0 {
		return nil, errors.New("union of no shapes")
	}
	for _, s := range shapes {
		if s == nil {
			return nil, errors.New("nil shape in union")
		}
	}
	return &Union{shapes: shapes}, nil
}

func (u *Union) Bounds() ms3.Box {
	box := u.shapes[0].Bounds()
	for _, s := range u.shapes[1:] {
		b := s.Bounds()
		box.Min = ms3.Vec{X: minf(box.Min.X, b.Min.X), Y: minf(box.Min.Y, b.Min.Y), Z: minf(box.Min.Z, b.Min.Z)}
		box.Max = ms3.Vec{X: maxf(box.Max.X, b.Max.X), Y: maxf(box.Max.Y, b.Max.Y), Z: maxf(box.Max.Z, b.Max.Z)}
	}
	return box
}

func (u *Union) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
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
	if err = u.shapes[0].Evaluate(pos, dist, userData); err != nil {
		return err
	}
	d2 := vp.Float.Acquire(len(dist))
	defer vp.Float.Release(d2)
	for _, s := range u.shapes[1:] {
		if err = s.Evaluate(pos, d2, userData); err != nil {
			return err
		}
		for i := range dist {
			dist[i] = minf(dist[i], d2[i])
		}
	}
	return nil
}

func (u *Union) ForEachChild(userData any, fn func(userData any, s *glbuild.Shader3D) error) error {
	for _, s := range u.shapes {
		var sh glbuild.Shader3D = s
		if err := fn(userData, &sh); err != nil {
			return err
		}
	}
	return nil
}

func (u *Union) AppendShaderName(b []byte) []byte {
	b = append(b, "union"...)
	for _, s := range u.shapes {
		b = append(b, '_')
		b = s.AppendShaderName(b)
	}
	return b
}

func (u *Union) AppendShaderBody(b []byte) []byte {
	b = glbuild.AppendDistanceDecl(b, u.shapes[0], "d", "p")
	for _, s := range u.shapes[1:] {
		b = append(b, "d=min(d,"...)
		b = s.AppendShaderName(b)
		b = append(b, "(p));\n"...)
	}
	b = append(b, "return d;"...)
	return b
}
