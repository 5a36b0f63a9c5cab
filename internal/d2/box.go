package d2

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box. Parameter rectangles use X for the
// first parameter and Y for the second.
type Box r2.Box

// NewBox2 creates a 2d box with a given center and size.
func NewBox2(center, size r2.Vec) Box {
	half := r2.Scale(0.5, size)
	return Box{r2.Sub(center, half), r2.Add(center, half)}
}

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// Center returns the center of a 2d box.
func (a Box) Center() r2.Vec {
	return r2.Scale(0.5, r2.Add(a.Min, a.Max))
}

// Contains checks if the 2d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r2.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y &&
		v.X <= a.Max.X && v.Y <= a.Max.Y
}

// Vertices returns the four corners of the box in the order
// (Min.X,Min.Y), (Min.X,Max.Y), (Max.X,Min.Y), (Max.X,Max.Y).
func (a Box) Vertices() [4]r2.Vec {
	return [4]r2.Vec{
		a.Min,
		{X: a.Min.X, Y: a.Max.Y},
		{X: a.Max.X, Y: a.Min.Y},
		a.Max,
	}
}

// Grid returns (n+1)*(n+1) points evenly spaced over the box, corners included.
func (a Box) Grid(n int) Set {
	if n < 1 {
		n = 1
	}
	size := a.Size()
	s := make([]r2.Vec, 0, (n+1)*(n+1))
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			s = append(s, r2.Vec{
				X: a.Min.X + size.X*float64(i)/float64(n),
				Y: a.Min.Y + size.Y*float64(j)/float64(n),
			})
		}
	}
	return s
}

// RandomSet returns a set of random points from within a bounding box
// drawn from rng.
func (a Box) RandomSet(rng *rand.Rand, n int) Set {
	s := make([]r2.Vec, n)
	for i := range s {
		s[i] = r2.Vec{
			X: randomRange(rng, a.Min.X, a.Max.X),
			Y: randomRange(rng, a.Min.Y, a.Max.Y),
		}
	}
	return s
}

// randomRange returns a random float64 [a,b)
func randomRange(rng *rand.Rand, a, b float64) float64 {
	return a + (b-a)*rng.Float64()
}
