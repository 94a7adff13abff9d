package twopoint

import "gonum.org/v1/gonum/mat"

// Result holds per-bin correlation functions. For a single sample only
// Auto1 is set. For two samples the requested functions are set and
// the rest are nil: Auto1 and Auto2 when autos are requested, Cross
// when the cross-correlation is.
type Result struct {
	Auto1 []float64
	Cross []float64
	Auto2 []float64
}

// GridResult holds xi(rp, pi) surfaces, indexed [rp bin][pi bin], with
// the same fan-out rules as Result.
type GridResult struct {
	Auto1 [][]float64
	Cross [][]float64
	Auto2 [][]float64
}

// JackknifeResult pairs each requested correlation function with its
// delete-one jackknife standard errors and covariance matrix. The
// covariance diagonal equals the squared errors.
type JackknifeResult struct {
	Auto1    []float64
	Auto1Err []float64
	Auto1Cov *mat.SymDense

	Cross    []float64
	CrossErr []float64
	CrossCov *mat.SymDense

	Auto2    []float64
	Auto2Err []float64
	Auto2Cov *mat.SymDense
}
