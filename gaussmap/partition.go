package gaussmap

import (
	"fmt"

	torus "github.com/dadachu/MinuteTorus"
	"github.com/dadachu/MinuteTorus/angular"
)

// Latitude halves of a torus. Over H1 the outward normal faces away from
// the axis, over H2 it faces the axis.
var (
	H1 = angular.New(-angular.Quarter, angular.Quarter)
	H2 = angular.New(angular.Quarter, angular.ThreeQuarter)
)

// Kind identifies one of the four Gauss map regions of a torus patch:
// outward or inward normals over either latitude half.
type Kind int

const (
	OutwardH1 Kind = iota
	OutwardH2
	InwardH1
	InwardH2
)

// Inward reports whether the region holds the reversed normals.
func (k Kind) Inward() bool { return k == InwardH1 || k == InwardH2 }

// Hemisphere returns the latitude half of the region.
func (k Kind) Hemisphere() angular.Interval {
	if k == OutwardH1 || k == InwardH1 {
		return H1
	}
	return H2
}

// shifted reports whether the azimuth of the region's normals is the
// longitude m plus a half turn. It is so when the horizontal part of the
// normal points towards the axis.
func (k Kind) shifted() bool { return k == OutwardH2 || k == InwardH1 }

func (k Kind) String() string {
	switch k {
	case OutwardH1:
		return "outward-h1"
	case OutwardH2:
		return "outward-h2"
	case InwardH1:
		return "inward-h1"
	case InwardH2:
		return "inward-h2"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Partitioned holds the Gauss map regions of a torus patch. Regions and
// Inverted are indexed by Kind and only entries marked Valid are meaningful.
// Inverted[k] is the antipodal set of Regions[k].
type Partitioned struct {
	Regions  [4]Map
	Inverted [4]Map
	Valid    [4]bool
}

// Each calls fn for every valid region in Kind order.
func (pt Partitioned) Each(fn func(k Kind, region, inverted Map)) {
	for k := OutwardH1; k <= InwardH2; k++ {
		if pt.Valid[k] {
			fn(k, pt.Regions[k], pt.Inverted[k])
		}
	}
}

// Aligned reports whether some normal of pt is parallel or antiparallel to
// a normal of b. Both orientations are part of the regions, so comparing
// regions covers either case.
func (pt Partitioned) Aligned(b Partitioned) bool {
	found := false
	pt.Each(func(_ Kind, region, _ Map) {
		b.Each(func(_ Kind, other, _ Map) {
			found = found || region.Overlaps(other)
		})
	})
	return found
}

// Partition splits the normals of a torus patch, given in the torus' local
// frame, into Gauss map regions. The polar angle of an outward normal at
// latitude n is π/2-n over H1 and n-π/2 over H2; inward normals mirror it
// to π-v. Regions whose latitude half the patch does not reach are
// invalid.
//
// The azimuth of a region is the patch longitude M shifted by π exactly
// when the horizontal part of its normals points towards the axis: for
// outward normals over H2 and inward normals over H1. It is not a property
// of the inward regions as such.
func Partition(p torus.Patch) Partitioned {
	var pt Partitioned
	var v [4]angular.Interval
	dom := p.N
	hasQ, hasTQ := dom.Has(angular.Quarter), dom.Has(angular.ThreeQuarter)
	switch {
	case dom.IsFull() || (hasQ && hasTQ):
		whole := angular.New(0, angular.Half)
		v = [4]angular.Interval{whole, whole, whole, whole}
		pt.Valid = [4]bool{true, true, true, true}

	case hasQ || hasTQ:
		// The patch crosses exactly one boundary, with one end in each half.
		h1v, h2v := angular.Regularize(dom.Begin), angular.Regularize(dom.End)
		if !H1.Has(dom.Begin) {
			h1v, h2v = h2v, h1v
		}
		if h1v >= angular.ThreeQuarter {
			h1v -= angular.Turn
		}
		if hasQ {
			// Around the top: [h1v, π/2] ∪ [π/2, h2v].
			v[OutwardH1] = angular.New(0, angular.Quarter-h1v)
			v[OutwardH2] = angular.New(0, h2v-angular.Quarter)
		} else {
			// Around the bottom: [h2v, 3π/2] ∪ [-π/2, h1v].
			v[OutwardH1] = angular.New(angular.Quarter-h1v, angular.Half)
			v[OutwardH2] = angular.New(h2v-angular.Quarter, angular.Half)
		}
		v[InwardH1] = v[OutwardH1].Mirror(angular.Half)
		v[InwardH2] = v[OutwardH2].Mirror(angular.Half)
		pt.Valid = [4]bool{true, true, true, true}

	case H1.Has(dom.Begin):
		vb, ve := polarH1(dom.Begin), polarH1(dom.End)
		if vb > ve {
			vb, ve = ve, vb
		}
		v[OutwardH1] = angular.New(vb, ve)
		v[InwardH1] = v[OutwardH1].Mirror(angular.Half)
		pt.Valid[OutwardH1], pt.Valid[InwardH1] = true, true

	default:
		v[OutwardH2] = angular.New(angular.Regularize(dom.Begin)-angular.Quarter, angular.Regularize(dom.End)-angular.Quarter)
		v[InwardH2] = v[OutwardH2].Mirror(angular.Half)
		pt.Valid[OutwardH2], pt.Valid[InwardH2] = true, true
	}

	for k := OutwardH1; k <= InwardH2; k++ {
		if !pt.Valid[k] {
			continue
		}
		u := p.M
		if k.shifted() {
			u = u.Shift(angular.Half)
		}
		pt.Regions[k] = New(u, v[k])
		pt.Inverted[k] = pt.Regions[k].Invert()
	}
	return pt
}

// polarH1 returns the polar angle of the outward normal at a latitude in H1.
func polarH1(n float64) float64 {
	n = angular.Regularize(n)
	if n >= angular.ThreeQuarter {
		return angular.Half - (n - angular.ThreeQuarter)
	}
	return angular.Quarter - n
}
