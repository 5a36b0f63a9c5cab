package torus

import (
	"math"

	"github.com/dadachu/MinuteTorus/internal/synth"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

// sampleOf samples s at (u, v) with the third derivative bounds over dom.
func sampleOf(s synth.Surface, u, v float64, dom Rect) Sample {
	j := synth.JetAt(s, u, v)
	m := s.ThirdBound(r2.Box(dom))
	return Sample{
		U: u, V: v,
		F: j.F, Fu: j.Fu, Fv: j.Fv, Fuu: j.Fuu, Fuv: j.Fuv, Fvv: j.Fvv,
		Domain: dom,
		M1:     m[0], M2: m[1], M3: m[2], M4: m[3],
	}
}

// centeredSample samples s at the center of a rectangle of half-widths hu and hv.
func centeredSample(s synth.Surface, u, v, hu, hv float64) Sample {
	return sampleOf(s, u, v, CenteredRect(u, v, hu, hv))
}

type fitCase struct {
	name string
	surf synth.Surface
	u, v float64
	// hyperbolic is the expected classification of the sample point.
	hyperbolic bool
}

var fitCases = []fitCase{
	{name: "ellipsoid", surf: synth.Ellipsoid{A: 3, B: 2, C: 1.5}, u: 0.4, v: 0.3},
	{name: "sphere", surf: synth.Sphere(2), u: 0.3, v: 0.2},
	{name: "torus outer", surf: synth.Torus{R: 3, Rm: 1}, u: 0.2, v: 0},
	{name: "torus inner", surf: synth.Torus{R: 3, Rm: 1}, u: 0.2, v: pi, hyperbolic: true},
	{name: "torus generic", surf: synth.Torus{R: 3, Rm: 1}, u: -0.5, v: 0.7},
	{name: "torus saddle", surf: synth.Torus{R: 3, Rm: 1}, u: 1.1, v: 2.4, hyperbolic: true},
	{name: "bowl", surf: synth.HeightField{A: 0.4, B: 0.25, C: 0.1}, u: 0.3, v: -0.2},
	{name: "saddle", surf: synth.HeightField{A: 0.3, B: -0.2, C: 0.4}, u: 0.5, v: -0.3, hyperbolic: true},
}

func parallel(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Cross(r3.Unit(a), r3.Unit(b))) <= tol
}

func sqDist(a, b r3.Vec) float64 {
	return r3.Norm2(r3.Sub(a, b))
}

func equalWithin(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
