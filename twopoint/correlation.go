package twopoint

import "github.com/cwbudde/algo-clustering/points"

// Correlation computes the radial two-point correlation function
// xi(r) of sample1 over the bins bounded by rbins (length Nbins+1,
// strictly increasing), returning one value per bin.
//
// With a single sample only Result.Auto1 is set. With WithSample2 the
// fan-out follows the DoAuto/DoCross flags. Bins whose random-pair
// denominator is zero carry non-finite values.
func Correlation(sample1 points.Sample, rbins []float64, opts ...Option) (Result, error) {
	e, err := newEngine(sample1, radialKernel(rbins), ApplyOptions(opts...))
	if err != nil {
		return Result{}, err
	}

	return e.correlate()
}
