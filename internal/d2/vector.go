package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Set is a list of parameter points.
type Set []r2.Vec
