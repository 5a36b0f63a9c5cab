package torus

import (
	"math"

	"github.com/dadachu/MinuteTorus/angular"
)

// remainderTerms bounds the third derivatives of the composition
// P(m(u, v), n(u, v)) over rect in the directions uuu, uuv, uvv and vvv.
func remainderTerms(p Patch, mp Mapping, rect Rect) (n1, n2, n3, n4 float64) {
	m, n := mp.M, mp.N
	Mu, Mv := maxAbsOnCorners(rect, m.DU), maxAbsOnCorners(rect, m.DV)
	Nu, Nv := maxAbsOnCorners(rect, n.DU), maxAbsOnCorners(rect, n.DV)
	Muu, Muv, Mvv := math.Abs(m.DUU()), math.Abs(m.DUV()), math.Abs(m.DVV())
	Nuu, Nuv, Nvv := math.Abs(n.DUU()), math.Abs(n.DUV()), math.Abs(n.DVV())

	Gmmm, Gmmn, Gmnn, Gnnn := torusThirdPartials(p)
	// Second partials share the suprema of the third ones.
	Gmm, Gmn, Gnn := Gmmm, Gmmn, Gnnn

	n1 = Gmmm*Mu*Mu*Mu + 3*Gmmn*Mu*Mu*Nu + 3*Gmnn*Mu*Nu*Nu + Gnnn*Nu*Nu*Nu +
		3*Gmm*Mu*Muu + 3*Gnn*Nu*Nuu + 3*Gmn*(Muu*Nu+Mu*Nuu)
	n2 = Gmmm*Mu*Mu*Mv + Gmmn*(Mu*Mu*Nv+2*Mu*Nu*Mv) + Gmnn*(Mv*Nu*Nu+2*Mu*Nu*Nv) +
		Gnnn*Nu*Nu*Nv + Gmm*(2*Mu*Muv+Muu*Mv) + Gnn*(2*Nu*Nuv+Nuu*Nv) +
		Gmn*(2*Muv*Nu+2*Nuv*Mu+Muu*Nv+Nuu*Mv)
	n3 = Gmmm*Mv*Mv*Mu + Gmmn*(Mv*Mv*Nu+2*Mv*Nv*Mu) + Gmnn*(Mu*Nv*Nv+2*Mv*Nv*Nu) +
		Gnnn*Nv*Nv*Nu + Gmm*(2*Mv*Muv+Mvv*Mu) + Gnn*(2*Nv*Nuv+Nvv*Nu) +
		Gmn*(2*Muv*Nv+2*Nuv*Mv+Mvv*Nu+Nvv*Mu)
	n4 = Gmmm*Mv*Mv*Mv + 3*Gmmn*Mv*Mv*Nv + 3*Gmnn*Mv*Nv*Nv + Gnnn*Nv*Nv*Nv +
		3*Gmm*Mv*Mvv + 3*Gnn*Nv*Nvv + 3*Gmn*(Mvv*Nv+Mv*Nvv)
	return n1, n2, n3, n4
}

// torusThirdPartials returns suprema of |Pmmm|, |Pmmn|, |Pmnn| and |Pnnn|
// over the n domain of the patch.
//
//	|Pmmm| = |R + r cos n|, |Pmmn| = r |sin n|, |Pmnn| = r |cos n|, |Pnnn| = r
func torusThirdPartials(p Patch) (mmm, mmn, mnn, nnn float64) {
	R, r := p.MajorRadius, p.MinorRadius
	cmin, cmax := cosRange(p.N)
	mmm = math.Max(math.Abs(R+r*cmin), math.Abs(R+r*cmax))
	mmn = r * sinSup(p.N)
	return mmm, mmn, r, r
}

// cosRange returns the extreme values of cos over the interval.
func cosRange(dom angular.Interval) (min, max float64) {
	if dom.IsFull() {
		return -1, 1
	}
	cb, ce := math.Cos(dom.Begin), math.Cos(dom.End)
	min, max = math.Min(cb, ce), math.Max(cb, ce)
	if dom.Has(0) {
		max = 1
	}
	if dom.Has(pi) {
		min = -1
	}
	return min, max
}

// sinSup returns the supremum of |sin| over the interval. It saturates
// whenever the interval reaches a latitude boundary, in particular when it
// is wider than π.
func sinSup(dom angular.Interval) float64 {
	if dom.IsFull() || dom.Width() > pi || dom.Has(angular.Quarter) || dom.Has(angular.ThreeQuarter) {
		return 1
	}
	return math.Max(math.Abs(math.Sin(dom.Begin)), math.Abs(math.Sin(dom.End)))
}

// positionError bounds the distance between the surface and the torus over
// rect with the third order Taylor remainder of their difference.
func positionError(s Sample, p Patch, mp Mapping) float64 {
	L1, L2 := s.Domain.HalfWidths()
	n1, n2, n3, n4 := remainderTerms(p, mp, s.Domain)
	return (2.0 / 3.0) * (L1*L1*L1*(s.M1+n1) +
		3*L1*L1*L2*(s.M2+n2) +
		3*L1*L2*L2*(s.M3+n3) +
		L2*L2*L2*(s.M4+n4))
}
