// Package glsdf renders fitted torus approximations as float32 distance
// fields. Shapes evaluate in batches on the CPU and write themselves as
// GLSL functions through glbuild.
package glsdf

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/dadachu/MinuteTorus/glsdf/glbuild"
	"github.com/soypat/glgl/math/ms3"
)

// SDF3 is a distance field evaluated in batches on the CPU.
type SDF3 interface {
	Evaluate(pos []ms3.Vec, dist []float32, userData any) error
	Bounds() ms3.Box
}

// Shape is a distance field that can also be written as GLSL.
type Shape interface {
	SDF3
	glbuild.Shader3D
}

var errLength = errors.New("position and distance buffers differ in length")

// Evaluator owns the buffer pool of CPU evaluations of a distance field.
type Evaluator struct {
	SDF SDF3
	vp  glbuild.VecPool
}

// NewEvaluator returns an evaluator of sdf.
func NewEvaluator(sdf SDF3) *Evaluator { return &Evaluator{SDF: sdf} }

// Evaluate computes the distances at pos into dist. It reports pool buffers
// left acquired by the distance field.
func (e *Evaluator) Evaluate(pos []ms3.Vec, dist []float32) error {
	err := e.SDF.Evaluate(pos, dist, &e.vp)
	err2 := e.vp.AssertAllReleased()
	if err != nil {
		if err2 != nil {
			return fmt.Errorf("VecPool leak:(%s) SDF error:(%s)", err2, err)
		}
		return err
	}
	return err2
}

func (e *Evaluator) Bounds() ms3.Box { return e.SDF.Bounds() }

// VecPool exposes the evaluator's pool for callers passing their own userData.
func (e *Evaluator) VecPool() *glbuild.VecPool { return &e.vp }

func minf(a, b float32) float32   { return math32.Min(a, b) }
func maxf(a, b float32) float32   { return math32.Max(a, b) }
func hypotf(a, b float32) float32 { return math32.Hypot(a, b) }

func fappend(b []byte, v float32, neg, decimal byte) []byte {
	return glbuild.AppendFloat(b, v, neg, decimal)
}
