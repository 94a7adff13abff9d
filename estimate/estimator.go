package estimate

import "errors"

// ErrUnknownEstimator is returned for estimator values outside the
// supported set.
var ErrUnknownEstimator = errors.New("estimate: unknown estimator")

// Estimator identifies a two-point correlation estimator formula.
type Estimator int

const (
	Natural Estimator = iota
	DavisPeebles
	Hewett
	Hamilton
	LandySzalay
)

var estimatorNames = map[Estimator]string{
	Natural:      "Natural",
	DavisPeebles: "Davis-Peebles",
	Hewett:       "Hewett",
	Hamilton:     "Hamilton",
	LandySzalay:  "Landy-Szalay",
}

// Parse returns the Estimator named by s, using the canonical names
// Natural, Davis-Peebles, Hewett, Hamilton, and Landy-Szalay.
func Parse(s string) (Estimator, error) {
	for e, name := range estimatorNames {
		if name == s {
			return e, nil
		}
	}

	return 0, ErrUnknownEstimator
}

func (e Estimator) String() string {
	if name, ok := estimatorNames[e]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether e is a supported estimator.
func (e Estimator) Valid() bool {
	_, ok := estimatorNames[e]
	return ok
}

// Requirements reports which pair counts the estimator consumes beyond
// DD. Skipping unneeded DR or RR counting saves the dominant cost.
func (e Estimator) Requirements() (needDR, needRR bool) {
	switch e {
	case Natural:
		return false, true
	case DavisPeebles:
		return true, false
	default:
		return true, true
	}
}

// Xi evaluates the estimator per bin from differential pair counts and
// sample sizes. Slices not required by the estimator may be nil. A
// zero-valued denominator bin yields a non-finite result in that bin.
func Xi(e Estimator, dd, dr, rr []float64, nd1, nd2, nr1, nr2 float64) ([]float64, error) {
	if !e.Valid() {
		return nil, ErrUnknownEstimator
	}

	out := make([]float64, len(dd))

	switch e {
	case Natural:
		f := (nr1 * nr2) / (nd1 * nd2)
		for m := range out {
			out[m] = f*dd[m]/rr[m] - 1
		}
	case DavisPeebles:
		f := nr2 / nd2
		for m := range out {
			out[m] = f*dd[m]/dr[m] - 1
		}
	case Hewett:
		f1 := (nr1 * nr2) / (nd1 * nd2)
		f2 := (nr1 * nr2) / (nd1 * nr2)

		for m := range out {
			out[m] = f1*dd[m]/rr[m] - f2*dr[m]/rr[m]
		}
	case Hamilton:
		for m := range out {
			out[m] = dd[m]*rr[m]/(dr[m]*dr[m]) - 1
		}
	case LandySzalay:
		f1 := (nr1 * nr2) / (nd1 * nd2)
		f2 := (nr1 * nr2) / (nd1 * nr2)

		for m := range out {
			out[m] = f1*dd[m]/rr[m] - 2*f2*dr[m]/rr[m] + 1
		}
	}

	return out, nil
}

// XiGrid evaluates the estimator cell by cell on 2-D count grids.
func XiGrid(e Estimator, dd, dr, rr [][]float64, nd1, nd2, nr1, nr2 float64) ([][]float64, error) {
	if !e.Valid() {
		return nil, ErrUnknownEstimator
	}

	out := make([][]float64, len(dd))

	for m := range dd {
		row, err := Xi(e, dd[m], rowOrNil(dr, m), rowOrNil(rr, m), nd1, nd2, nr1, nr2)
		if err != nil {
			return nil, err
		}

		out[m] = row
	}

	return out, nil
}

func rowOrNil(grid [][]float64, m int) []float64 {
	if grid == nil {
		return nil
	}

	return grid[m]
}
