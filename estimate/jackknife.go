package estimate

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// resampleMean returns the per-bin mean over the delete-one estimates.
func resampleMean(sub [][]float64) []float64 {
	mean := make([]float64, len(sub[0]))
	for _, row := range sub {
		vecmath.AddBlockInPlace(mean, row)
	}

	vecmath.ScaleBlock(mean, mean, 1/float64(len(sub)))

	return mean
}

// JackknifeErrors returns the per-bin delete-one jackknife standard
// error over the Nsub x Nbins resample estimates:
// sqrt((Nsub-1)/Nsub * sum_r (xi_r - mean)^2).
func JackknifeErrors(sub [][]float64) []float64 {
	nsub := len(sub)
	if nsub == 0 {
		return nil
	}

	mean := resampleMean(sub)
	factor := float64(nsub-1) / float64(nsub)
	out := make([]float64, len(mean))

	for i := range out {
		var sum float64

		for r := 0; r < nsub; r++ {
			d := sub[r][i] - mean[i]
			sum += d * d
		}

		out[i] = math.Sqrt(factor * sum)
	}

	return out
}

// JackknifeCovariance returns the full delete-one jackknife covariance
// matrix over the Nsub x Nbins resample estimates:
// cov[i][j] = (Nsub-1)/Nsub * sum_r (xi_r[i]-mean[i])*(xi_r[j]-mean[j]).
//
// Its diagonal equals the squared JackknifeErrors values.
func JackknifeCovariance(sub [][]float64) *mat.SymDense {
	nsub := len(sub)
	if nsub == 0 {
		return nil
	}

	mean := resampleMean(sub)
	factor := float64(nsub-1) / float64(nsub)
	nbins := len(mean)
	cov := mat.NewSymDense(nbins, nil)

	for i := 0; i < nbins; i++ {
		for j := i; j < nbins; j++ {
			var sum float64

			for r := 0; r < nsub; r++ {
				sum += (sub[r][i] - mean[i]) * (sub[r][j] - mean[j])
			}

			cov.SetSym(i, j, factor*sum)
		}
	}

	return cov
}
