package torus

import (
	"fmt"
	"math"
	"runtime"
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// epsilon is the relative size below which quantities are considered zero.
	epsilon = 1e-12
)

// ErrMsg returns an error with a message function name and line number.
func ErrMsg(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s", msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s", fn.Name(), line, msg)
}

// clampMagnitude returns x with its magnitude raised to at least min,
// keeping the sign. Zero is treated as positive.
func clampMagnitude(x, min float64) float64 {
	if math.Abs(x) >= min {
		return x
	}
	if x < 0 {
		return -min
	}
	return min
}

func max4(a, b, c, d float64) float64 {
	return math.Max(math.Max(a, b), math.Max(c, d))
}
