package tsp

import "math"

// validateOptions checks the numeric bounds and the heuristic selector.
func validateOptions(opts Options) error {
	if opts.MaxIterations < 0 {
		return ErrBadMaxIterations
	}
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return ErrBadEps
	}
	switch opts.Heuristic {
	case ThreeOpt, RelocateTwoOpt:
	default:
		return ErrUnsupportedHeuristic
	}

	return nil
}
