package pairs

import (
	"errors"

	"github.com/cwbudde/algo-clustering/points"
)

// Errors returned by pair counters.
var (
	ErrDimensionMismatch = errors.New("pairs: samples must share dimensionality")
	ErrLabelLength       = errors.New("pairs: one label per point is required")
	ErrNoBins            = errors.New("pairs: at least one bin edge is required")
)

// Counter counts point pairs per separation bin. Implementations must
// be invariant to point ordering and must exclude self-pairs when both
// samples hold the same points.
//
// The period vector follows points.ResolvePeriod conventions: one
// entry per dimension, +Inf meaning no wrap along that axis.
type Counter interface {
	// Count returns cumulative radial pair counts: entry m counts
	// pairs with separation <= edges[m].
	Count(a, b points.Sample, edges, period []float64) ([]float64, error)

	// CountRpPi returns cumulative counts on the projected/line-of-sight
	// grid: entry [m][n] counts pairs with perpendicular separation
	// <= rpEdges[m] and parallel separation <= piEdges[n]. The last
	// dimension is the line of sight.
	CountRpPi(a, b points.Sample, rpEdges, piEdges, period []float64) ([][]float64, error)

	// CountJackknife returns an (nSubvol+1) x len(edges) cumulative
	// count array. Row 0 counts the full sample; row r (r >= 1)
	// counts pairs with at least one endpoint labeled r. The
	// delete-one count for subvolume r is row 0 minus row r.
	CountJackknife(a, b points.Sample, edges, period []float64, labelsA, labelsB []int, nSubvol int) ([][]float64, error)
}

// Diff converts cumulative counts to differential per-shell counts:
// out[m] = cum[m+1] - cum[m], the pairs falling between consecutive
// edges. Pairs below the first edge are discarded with it, so the
// result has one entry per shell, len(edges)-1 in total.
func Diff(cum []float64) []float64 {
	if len(cum) < 2 {
		return nil
	}

	out := make([]float64, len(cum)-1)
	for m := range out {
		out[m] = cum[m+1] - cum[m]
	}

	return out
}

// DiffRows applies Diff to every row of a jackknife count array.
func DiffRows(cum [][]float64) [][]float64 {
	out := make([][]float64, len(cum))
	for r := range cum {
		out[r] = Diff(cum[r])
	}

	return out
}

// DiffRpPi differences a cumulative rp x pi grid along both axes,
// producing (len-1) x (len-1) per-cell counts.
func DiffRpPi(cum [][]float64) [][]float64 {
	if len(cum) < 2 {
		return nil
	}

	out := make([][]float64, len(cum)-1)

	for m := range out {
		row := make([]float64, len(cum[m])-1)
		for n := range row {
			row[n] = cum[m+1][n+1] - cum[m+1][n] - cum[m][n+1] + cum[m][n]
		}

		out[m] = row
	}

	return out
}
