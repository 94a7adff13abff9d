package points

import (
	"errors"
	"math"
)

// Errors returned by period resolution.
var (
	ErrPeriodShape = errors.New("points: period must be empty, scalar, or length k")
	ErrPeriodValue = errors.New("points: period entries must be positive")
	ErrMixedPeriod = errors.New("points: period entries must be all finite or all infinite")
)

// ResolvePeriod normalizes a periodic-boundary specification for
// dim-dimensional data.
//
// An empty period means no periodicity and resolves to +Inf along every
// dimension. A single entry broadcasts to all dimensions. A length-dim
// vector is used as given. Mixing finite and infinite entries is
// rejected; an explicit all-infinite vector resolves as non-periodic.
func ResolvePeriod(period []float64, dim int) (resolved []float64, periodic bool, err error) {
	resolved = make([]float64, dim)

	if len(period) == 0 {
		for d := range resolved {
			resolved[d] = math.Inf(1)
		}

		return resolved, false, nil
	}

	switch len(period) {
	case 1:
		for d := range resolved {
			resolved[d] = period[0]
		}
	case dim:
		copy(resolved, period)
	default:
		return nil, false, ErrPeriodShape
	}

	finite := 0

	for _, p := range resolved {
		if math.IsInf(p, 1) {
			continue
		}

		if p <= 0 || math.IsNaN(p) {
			return nil, false, ErrPeriodValue
		}

		finite++
	}

	if finite == 0 {
		return resolved, false, nil
	}

	if finite != dim {
		return nil, false, ErrMixedPeriod
	}

	return resolved, true, nil
}
