package torus

import (
	"math"
	"testing"

	"github.com/dadachu/MinuteTorus/angular"
	"github.com/dadachu/MinuteTorus/internal/d2"
	"github.com/dadachu/MinuteTorus/internal/synth"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestErrorBoundsDeviation(t *testing.T) {
	for _, c := range fitCases {
		for _, h := range []float64{0.02, 0.1, 0.2} {
			s := centeredSample(c.surf, c.u, c.v, h, 0.8*h)
			a := Fit(s)
			if a.Error < 0 || math.IsNaN(a.Error) {
				t.Fatalf("%s h=%g: bad bound %g", c.name, h, a.Error)
			}
			var maxDev float64
			for _, p := range d2.Box(s.Domain).Grid(16) {
				dev := math.Sqrt(sqDist(a.Point(p.X, p.Y), c.surf.Differentiate(p.X, p.Y, 0, 0)))
				maxDev = math.Max(maxDev, dev)
			}
			if maxDev > a.Error {
				t.Errorf("%s h=%g: deviation %g exceeds bound %g", c.name, h, maxDev, a.Error)
			}
		}
	}
}

func TestErrorBoundShrinks(t *testing.T) {
	surf := synth.Ellipsoid{A: 3, B: 2, C: 1.5}
	prev := math.Inf(1)
	for _, h := range []float64{0.2, 0.1, 0.05, 0.025} {
		a := Fit(centeredSample(surf, 0.4, 0.3, h, h))
		if a.Error >= prev/4 {
			t.Errorf("h=%g: bound %g does not shrink cubically from %g", h, a.Error, prev)
		}
		prev = a.Error
	}
}

// TestSphereExact fits a sphere, whose osculating torus is the sphere itself.
func TestSphereExact(t *testing.T) {
	const radius = 2.0
	surf := synth.Sphere(radius)
	ref, err := sdf.Sphere3D(radius)
	if err != nil {
		t.Fatal(err)
	}
	for _, uv := range [][2]float64{{0.3, 0.2}, {-2, 1.1}, {1.4, -0.6}} {
		s := centeredSample(surf, uv[0], uv[1], 0.1, 0.1)
		if fr := fitTorus(s, DefaultConfig); !fr.frame.aligned {
			t.Errorf("%v: sphere fit should use coordinate directions", uv)
		}
		a := Fit(s)
		if !equalWithin(a.Patch.MajorRadius, 0, tol) || !equalWithin(a.Patch.MinorRadius, radius, tol) {
			t.Errorf("%v: got radii %g, %g. want 0, %g", uv, a.Patch.MajorRadius, a.Patch.MinorRadius, radius)
		}
		for _, p := range d2.Box(s.Domain).Grid(8) {
			q := a.Point(p.X, p.Y)
			if d := ref.Evaluate(v3.Vec{X: q.X, Y: q.Y, Z: q.Z}); math.Abs(d) > tol {
				t.Errorf("%v: torus point %v is %g off the sphere", uv, q, d)
			}
			if d := a.Distance(surf.Differentiate(p.X, p.Y, 0, 0)); d > tol {
				t.Errorf("%v: sphere point at (%g, %g) is %g off the torus", uv, p.X, p.Y, d)
			}
		}
		// Only the parameter correspondence is approximate, a degenerate
		// domain has no error at all.
		a = Fit(centeredSample(surf, uv[0], uv[1], 0, 0))
		if a.Error != 0 {
			t.Errorf("%v: got bound %g on a single point. want 0", uv, a.Error)
		}
	}
}

func TestTorusThirdPartials(t *testing.T) {
	const R, r = 3.0, 1.0
	for _, c := range []struct {
		n                angular.Interval
		wantMMM, wantMMN float64
	}{
		{n: angular.New(-0.1, 0.1), wantMMM: R + r, wantMMN: r * math.Sin(0.1)},
		{n: angular.New(0.2, 0.5), wantMMM: R + r*math.Cos(0.2), wantMMN: r * math.Sin(0.5)},
		{n: angular.New(pi-0.1, pi+0.1), wantMMM: R + r*math.Cos(pi-0.1), wantMMN: r * math.Sin(0.1)},
		{n: angular.New(1, 2), wantMMM: R + r*math.Cos(1), wantMMN: r},
		{n: angular.New(4, 5), wantMMM: R + r*math.Cos(5), wantMMN: r},
		{n: angular.New(-3, 0.5), wantMMM: R + r, wantMMN: r},
		{n: angular.Full(), wantMMM: R + r, wantMMN: r},
	} {
		p := Patch{MajorRadius: R, MinorRadius: r, M: angular.Full(), N: c.n}
		mmm, mmn, mnn, nnn := torusThirdPartials(p)
		if !equalWithin(mmm, c.wantMMM, 1e-14) || !equalWithin(mmn, c.wantMMN, 1e-14) {
			t.Errorf("n=%v: got %g, %g. want %g, %g", c.n, mmm, mmn, c.wantMMM, c.wantMMN)
		}
		if mnn != r || nnn != r {
			t.Errorf("n=%v: got %g, %g. want %g", c.n, mnn, nnn, r)
		}
	}
}

// TestTorusThirdPartialsSupremum compares the analytic suprema with
// sampled third derivatives of the patch.
func TestTorusThirdPartialsSupremum(t *testing.T) {
	p := Patch{MajorRadius: 0.5, MinorRadius: 1.5, M: angular.New(0, 1), N: angular.New(2.5, 3.8)}
	mmm, mmn, mnn, nnn := torusThirdPartials(p)
	want := [4]float64{mmm, mmn, mnn, nnn}
	const steps = 200
	for i := 0; i <= steps; i++ {
		n := p.N.Begin + p.N.Width()*float64(i)/steps
		for j, d := range [4][2]int{{3, 0}, {2, 1}, {1, 2}, {0, 3}} {
			got := p.Differentiate(0.3, n, d[0], d[1])
			if l := math.Hypot(math.Hypot(got.X, got.Y), got.Z); l > want[j]+1e-12 {
				t.Errorf("n=%g: third partial %v magnitude %g exceeds %g", n, d, l, want[j])
			}
		}
	}
}
