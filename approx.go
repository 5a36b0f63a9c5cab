package torus

import (
	"github.com/dadachu/MinuteTorus/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Approximation is an osculating torus patch of a surface together with the
// correspondence between their parameters and a certified bound on their
// distance over the sampled parameter domain.
type Approximation struct {
	// Patch is the torus in its local frame. Its M and N domains enclose
	// the image of the surface domain when ValidDomain is set, otherwise
	// they are full turns.
	Patch Patch
	// Placement carries the local frame into the surface's frame. Inverse undoes it.
	Placement Placement
	Inverse   Placement
	Mapping   Mapping
	// Error bounds the distance between the surface point at (u, v) and the
	// torus point at ToTorus(u, v) for every (u, v) of the sampled domain.
	Error       float64
	ValidDomain bool
}

// Fit returns the osculating torus approximation of the surface sample
// with DefaultConfig. It never fails. Near zero principal curvatures are
// clamped and a domain that cannot be bounded is reported through ValidDomain.
func Fit(s Sample) Approximation {
	return fit(s, DefaultConfig)
}

// FitWithConfig is like Fit with custom tolerances. It returns an error only
// if cfg is invalid.
func FitWithConfig(s Sample, cfg Config) (Approximation, error) {
	if err := cfg.Validate(); err != nil {
		return Approximation{}, err
	}
	return fit(s, cfg), nil
}

func fit(s Sample, cfg Config) Approximation {
	fr := fitTorus(s, cfg)
	a := Approximation{
		Patch:     fr.patch,
		Placement: fr.placement,
		Inverse:   fr.placement.Inverse(),
		Mapping:   newMapping(s, fr.patch, fr.placement, fr.m0, fr.n0),
	}
	a.Patch.M, a.Patch.N, a.ValidDomain = a.Mapping.BoundTorusDomain(s.Domain)
	a.Error = positionError(s, a.Patch, a.Mapping)
	return a
}

// Anchor returns the torus parameters of the sample point.
func (a Approximation) Anchor() (m0, n0 float64) {
	return a.Mapping.M0, a.Mapping.N0
}

// Point returns the torus point approximating the surface point at (u, v).
func (a Approximation) Point(u, v float64) r3.Vec {
	m, n := a.Mapping.ToTorus(u, v)
	return a.Placement.Apply(a.Patch.Evaluate(m, n))
}

// Normal returns the outward torus normal at the torus parameters (m, n)
// in the surface's frame.
func (a Approximation) Normal(m, n float64) r3.Vec {
	return a.Placement.ApplyRotation(a.Patch.Normal(m, n))
}

// Distance returns the distance from p to the complete fitted torus.
func (a Approximation) Distance(p r3.Vec) float64 {
	return a.Patch.Distance(a.Inverse.Apply(p))
}

// Bounds returns a box enclosing the complete fitted torus.
func (a Approximation) Bounds() r3.Box {
	return r3.Box(d3.Box(a.Patch.Bounds()).Transform(a.Placement.t))
}
