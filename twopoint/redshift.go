package twopoint

import (
	"github.com/cwbudde/algo-clustering/points"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// RedshiftSpace computes the two-dimensional correlation function
// xi(rp, pi), binning pair separations perpendicular to and along the
// line of sight. The last coordinate is the line of sight; the
// remaining coordinates span the perpendicular plane.
func RedshiftSpace(sample1 points.Sample, rpBins, piBins []float64, opts ...Option) (GridResult, error) {
	e, err := newEngine(sample1, rpPiKernel(rpBins, piBins), ApplyOptions(opts...))
	if err != nil {
		return GridResult{}, err
	}

	flat, err := e.correlate()
	if err != nil {
		return GridResult{}, err
	}

	out := GridResult{}
	if flat.Auto1 != nil {
		out.Auto1 = e.kern.reshape(flat.Auto1)
	}

	if flat.Cross != nil {
		out.Cross = e.kern.reshape(flat.Cross)
	}

	if flat.Auto2 != nil {
		out.Auto2 = e.kern.reshape(flat.Auto2)
	}

	return out, nil
}

// Projected computes the projected correlation function wp(rp): the
// xi(rp, pi) surface summed along the line of sight weighted by the
// pi bin widths. The sum is a Riemann sum over the supplied bins, not
// a continuum integral, so coarse pi bins coarsen wp accordingly.
func Projected(sample1 points.Sample, rpBins, piBins []float64, opts ...Option) (Result, error) {
	grid, err := RedshiftSpace(sample1, rpBins, piBins, opts...)
	if err != nil {
		return Result{}, err
	}

	widths := make([]float64, len(piBins)-1)
	for n := range widths {
		widths[n] = piBins[n+1] - piBins[n]
	}

	out := Result{}
	if grid.Auto1 != nil {
		out.Auto1 = integrateLOS(grid.Auto1, widths)
	}

	if grid.Cross != nil {
		out.Cross = integrateLOS(grid.Cross, widths)
	}

	if grid.Auto2 != nil {
		out.Auto2 = integrateLOS(grid.Auto2, widths)
	}

	return out, nil
}

// integrateLOS collapses a xi(rp, pi) surface along pi.
func integrateLOS(grid [][]float64, widths []float64) []float64 {
	out := make([]float64, len(grid))
	tmp := make([]float64, len(widths))

	for m, row := range grid {
		vecmath.MulBlock(tmp, row, widths)
		out[m] = floats.Sum(tmp)
	}

	return out
}
