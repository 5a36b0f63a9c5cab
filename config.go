package torus

import (
	"math"
)

// Config holds the numerical tolerances used when fitting an osculating torus.
type Config struct {
	// PrincipalTol is the magnitude below which both off-diagonal shape
	// operator entries are treated as zero, making Fu and Fv principal directions.
	PrincipalTol float64
	// MinCurvature is the smallest principal curvature magnitude. Smaller
	// curvatures are clamped to it, keeping the sign, which bounds the torus radii.
	MinCurvature float64
}

// DefaultConfig is the configuration used by Fit.
var DefaultConfig = Config{
	PrincipalTol: 1e-5,
	MinCurvature: 1e-7,
}

// Validate returns an error if a tolerance is not a positive finite number.
func (c Config) Validate() error {
	if !(c.PrincipalTol > 0) || math.IsInf(c.PrincipalTol, 1) {
		return ErrMsg("principal direction tolerance must be positive and finite")
	}
	if !(c.MinCurvature > 0) || math.IsInf(c.MinCurvature, 1) {
		return ErrMsg("minimum curvature must be positive and finite")
	}
	return nil
}
