package torus

import (
	"math"
	"sort"
	"testing"

	"github.com/dadachu/MinuteTorus/internal/d3"
	"github.com/dadachu/MinuteTorus/internal/synth"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPrincipalCurvaturesSphere(t *testing.T) {
	const radius = 2.0
	for _, uv := range [][2]float64{{0.3, 0.2}, {-1.2, 0.9}, {2.5, -0.4}, {1.1, -1.3}, {-2.9, 0.05}} {
		s := centeredSample(synth.Sphere(radius), uv[0], uv[1], 0.1, 0.1)
		pf := principalCurvatures(s, DefaultConfig.PrincipalTol)
		if !pf.aligned {
			t.Errorf("%v: sphere principal directions should be the coordinate directions", uv)
		}
		if !equalWithin(pf.k1, -1/radius, tol) || !equalWithin(pf.k2, -1/radius, tol) {
			t.Errorf("%v: got curvatures %g, %g. want %g", uv, pf.k1, pf.k2, -1/radius)
		}
		if !equalWithin(pf.k1, pf.k2, 1e-12) {
			t.Errorf("%v: umbilic curvatures differ by %g", uv, pf.k1-pf.k2)
		}
		fit := fitTorus(s, DefaultConfig)
		if !equalWithin(fit.patch.MajorRadius, 0, 1e-10) || !equalWithin(fit.patch.MinorRadius, radius, tol) {
			t.Errorf("%v: got torus R=%g r=%g. want R=0 r=%g", uv, fit.patch.MajorRadius, fit.patch.MinorRadius, radius)
		}
	}
}

// TestPrincipalCurvaturesEigen checks the closed form principal curvatures
// against the eigenvalues of the shape operator I⁻¹ II.
func TestPrincipalCurvaturesEigen(t *testing.T) {
	for _, c := range fitCases {
		s := centeredSample(c.surf, c.u, c.v, 0.1, 0.1)
		E, F, G, e, f, g := fundamentalForms(s)
		first := mat.NewDense(2, 2, []float64{E, F, F, G})
		second := mat.NewDense(2, 2, []float64{e, f, f, g})
		var shape mat.Dense
		if err := shape.Solve(first, second); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		var eig mat.Eigen
		if !eig.Factorize(&shape, mat.EigenNone) {
			t.Fatalf("%s: eigen decomposition failed", c.name)
		}
		var want []float64
		for _, v := range eig.Values(nil) {
			if math.Abs(imag(v)) > tol {
				t.Fatalf("%s: complex principal curvature %v", c.name, v)
			}
			want = append(want, real(v))
		}
		sort.Sort(sort.Reverse(sort.Float64Slice(want)))

		pf := principalCurvatures(s, DefaultConfig.PrincipalTol)
		if !equalWithin(pf.k1, want[0], 1e-7) || !equalWithin(pf.k2, want[1], 1e-7) {
			t.Errorf("%s: got curvatures %g, %g. want %g, %g", c.name, pf.k1, pf.k2, want[0], want[1])
		}
		if got := (pf.k1*pf.k2 < 0); got != c.hyperbolic {
			t.Errorf("%s: got hyperbolic=%v. want %v", c.name, got, c.hyperbolic)
		}
	}
}

// TestPrincipalDirections checks the normal curvature along each principal
// direction equals its principal curvature.
func TestPrincipalDirections(t *testing.T) {
	for _, c := range fitCases {
		if c.name == "sphere" {
			continue // Every direction is principal.
		}
		s := centeredSample(c.surf, c.u, c.v, 0.1, 0.1)
		pf := principalCurvatures(s, DefaultConfig.PrincipalTol)
		E, F, G, e, f, g := fundamentalForms(s)
		normalCurvature := func(w r3.Vec) float64 {
			a, b := d3.Resolve(w, s.Fu, s.Fv)
			return (e*a*a + 2*f*a*b + g*b*b) / (E*a*a + 2*F*a*b + G*b*b)
		}
		if got := normalCurvature(pf.w1); !equalWithin(got, pf.k1, 1e-7) {
			t.Errorf("%s: curvature along w1 got %g. want %g", c.name, got, pf.k1)
		}
		if got := normalCurvature(pf.w2); !equalWithin(got, pf.k2, 1e-7) {
			t.Errorf("%s: curvature along w2 got %g. want %g", c.name, got, pf.k2)
		}
		if d := r3.Dot(pf.w1, pf.w2); math.Abs(d) > 1e-7 {
			t.Errorf("%s: principal directions not orthogonal, w1·w2=%g", c.name, d)
		}
		if d := r3.Dot(pf.w1, pf.normal); math.Abs(d) > tol {
			t.Errorf("%s: w1 not tangent, w1·n=%g", c.name, d)
		}
	}
}

func TestFitAnchor(t *testing.T) {
	for _, c := range fitCases {
		s := centeredSample(c.surf, c.u, c.v, 0.1, 0.1)
		a := Fit(s)
		m0, n0 := a.Anchor()
		wantN0 := 0.0
		if c.hyperbolic {
			wantN0 = pi
		}
		if m0 != 0 || n0 != wantN0 {
			t.Errorf("%s: got anchor (%g, %g). want (0, %g)", c.name, m0, n0, wantN0)
		}
		p := a.Placement.Apply(a.Patch.Evaluate(m0, n0))
		if !d3.EqualWithin(p, s.F, tol) {
			t.Errorf("%s: anchor maps to %v. want %v", c.name, p, s.F)
		}
		if !parallel(a.Normal(m0, n0), s.Normal(), tol) {
			t.Errorf("%s: torus normal %v not parallel to surface normal %v", c.name, a.Normal(m0, n0), s.Normal())
		}
		if a.Patch.MinorRadius <= 0 || a.Patch.MajorRadius < -tol {
			t.Errorf("%s: bad radii R=%g r=%g", c.name, a.Patch.MajorRadius, a.Patch.MinorRadius)
		}
	}
}

// TestFitTorusRecovers fits a torus on its equators where the osculating
// torus is the torus itself.
func TestFitTorusRecovers(t *testing.T) {
	surf := synth.Torus{R: 3, Rm: 1}
	for _, v := range []float64{0, pi} {
		s := centeredSample(surf, 0.2, v, 0.2, 0.2)
		a := Fit(s)
		if !equalWithin(a.Patch.MajorRadius, 3, tol) || !equalWithin(a.Patch.MinorRadius, 1, tol) {
			t.Errorf("v=%g: got radii %g, %g. want 3, 1", v, a.Patch.MajorRadius, a.Patch.MinorRadius)
		}
		if c := a.Placement.Translation(); !d3.EqualWithin(c, r3.Vec{}, tol) {
			t.Errorf("v=%g: got center %v. want origin", v, c)
		}
		if axis := a.Placement.ApplyRotation(r3.Vec{Z: 1}); !parallel(axis, r3.Vec{Z: 1}, tol) {
			t.Errorf("v=%g: got axis %v. want ±Z", v, axis)
		}
		for _, uv := range [][2]float64{{0.1, v - 0.2}, {1.5, v + 1}, {-2, v + 3}} {
			p := surf.Differentiate(uv[0], uv[1], 0, 0)
			if d := a.Distance(p); d > tol {
				t.Errorf("v=%g: torus point %v at distance %g from fit", v, p, d)
			}
		}
	}
}

func TestFitClampsFlatCurvature(t *testing.T) {
	for _, c := range []struct {
		name       string
		surf       synth.Surface
		hyperbolic bool
	}{
		{name: "plane", surf: synth.Plane},
		// The zero curvature is clamped to a tiny positive value.
		{name: "cylinder", surf: synth.Cylinder{Radius: 2}, hyperbolic: true},
	} {
		s := centeredSample(c.surf, 0.2, 0.1, 0.05, 0.05)
		a := Fit(s)
		_, n0 := a.Anchor()
		if (n0 == pi) != c.hyperbolic {
			t.Errorf("%s: got n0=%g", c.name, n0)
		}
		R, r := a.Patch.MajorRadius, a.Patch.MinorRadius
		if math.IsNaN(R) || math.IsInf(R, 0) || math.IsNaN(r) || math.IsInf(r, 0) {
			t.Fatalf("%s: non-finite radii %g, %g", c.name, R, r)
		}
		if math.Max(R, r) < 0.5/DefaultConfig.MinCurvature {
			t.Errorf("%s: flat direction should give a radius near %g, got %g, %g", c.name, 1/DefaultConfig.MinCurvature, R, r)
		}
		if p := a.Point(s.U, s.V); !d3.EqualWithin(p, s.F, 1e-6) {
			t.Errorf("%s: anchor maps to %v. want %v", c.name, p, s.F)
		}
		if math.IsNaN(a.Error) || a.Error < 0 {
			t.Errorf("%s: bad error bound %g", c.name, a.Error)
		}
	}
}

func TestFitWithConfig(t *testing.T) {
	s := centeredSample(synth.Sphere(1), 0.2, 0.3, 0.1, 0.1)
	if _, err := FitWithConfig(s, Config{PrincipalTol: 0, MinCurvature: 1e-7}); err == nil {
		t.Error("expected error for zero tolerance")
	}
	if _, err := FitWithConfig(s, Config{PrincipalTol: 1e-5, MinCurvature: math.Inf(1)}); err == nil {
		t.Error("expected error for infinite minimum curvature")
	}
	a, err := FitWithConfig(s, DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	if b := Fit(s); a.Error != b.Error || a.Patch != b.Patch {
		t.Error("FitWithConfig with DefaultConfig differs from Fit")
	}
}
