package twopoint

import (
	"fmt"

	"github.com/cwbudde/algo-clustering/estimate"
	"github.com/cwbudde/algo-clustering/pairs"
	"github.com/cwbudde/algo-clustering/points"
	"gonum.org/v1/gonum/mat"
)

// jackCounts holds one channel of jackknife pair counts: the
// full-sample differential counts and the delete-one counts for each
// subvolume (full minus pairs touching that subvolume).
type jackCounts struct {
	full []float64
	sub  [][]float64
}

// Jackknife computes the radial two-point correlation function with
// delete-one jackknife errors and covariance. The box of side lengths
// lbox is partitioned into a regular grid of nsub subdivisions per
// dimension (both broadcast from a single value); each subvolume is
// deleted in turn and the estimator re-evaluated on the remainder.
//
// A random catalog is mandatory. The fan-out of JackknifeResult
// follows the same rules as Correlation.
func Jackknife(sample1, randoms points.Sample, rbins []float64, nsub []int, lbox []float64, opts ...Option) (JackknifeResult, error) {
	cfg := ApplyOptions(opts...)

	if randoms.Len() == 0 {
		return JackknifeResult{}, ErrRandomsRequired
	}

	cfg.Randoms = points.Downsample(randoms, cfg.MaxSampleSize, cfg.Rand)

	e, err := newEngine(sample1, radialKernel(rbins), cfg)
	if err != nil {
		return JackknifeResult{}, err
	}

	labels1, nsubvol, err := points.SubvolumeLabels(e.s1, lbox, nsub)
	if err != nil {
		return JackknifeResult{}, fmt.Errorf("twopoint: %w", err)
	}

	labelsR, _, err := points.SubvolumeLabels(e.randoms, lbox, nsub)
	if err != nil {
		return JackknifeResult{}, fmt.Errorf("twopoint: %w", err)
	}

	labels2 := labels1

	if !e.same {
		labels2, _, err = points.SubvolumeLabels(e.s2, lbox, nsub)
		if err != nil {
			return JackknifeResult{}, fmt.Errorf("twopoint: %w", err)
		}
	}

	// Delete-one sample sizes: full size minus the deleted subvolume's
	// population, for every subvolume including empty ones.
	n1del := deleteOneSizes(e.s1.Len(), labels1, nsubvol)
	nrdel := deleteOneSizes(e.randoms.Len(), labelsR, nsubvol)

	n2del := n1del
	if !e.same {
		n2del = deleteOneSizes(e.s2.Len(), labels2, nsubvol)
	}

	count := func(a, b points.Sample, la, lb []int) (jackCounts, error) {
		cum, err := e.cfg.Counter.CountJackknife(a, b, rbins, e.period, la, lb, nsubvol)
		if err != nil {
			return jackCounts{}, fmt.Errorf("twopoint: counting pairs: %w", err)
		}

		return splitJack(cum), nil
	}

	var d11, d12, d22, d1r, d2r, rr jackCounts

	if e.same || e.cfg.DoAuto {
		if d11, err = count(e.s1, e.s1, labels1, labels1); err != nil {
			return JackknifeResult{}, err
		}
	}

	if e.same {
		d12, d22 = d11, d11
	} else {
		if e.cfg.DoCross {
			if d12, err = count(e.s1, e.s2, labels1, labels2); err != nil {
				return JackknifeResult{}, err
			}
		}

		if e.cfg.DoAuto {
			if d22, err = count(e.s2, e.s2, labels2, labels2); err != nil {
				return JackknifeResult{}, err
			}
		}
	}

	if e.needRR {
		if rr, err = count(e.randoms, e.randoms, labelsR, labelsR); err != nil {
			return JackknifeResult{}, err
		}
	}

	if e.needDR {
		if d1r, err = count(e.s1, e.randoms, labels1, labelsR); err != nil {
			return JackknifeResult{}, err
		}

		if e.same {
			d2r = d1r
		} else {
			if d2r, err = count(e.s2, e.randoms, labels2, labelsR); err != nil {
				return JackknifeResult{}, err
			}
		}
	}

	nd1, nd2, nr := e.sizes()

	// mode evaluates one correlation mode: the full-sample estimate,
	// the delete-one resample estimates, and their errors/covariance.
	mode := func(dd, dr jackCounts, m1, m2 float64, m1del, m2del []float64) (xi, sig []float64, cov *mat.SymDense, err error) {
		xi, err = estimate.Xi(e.cfg.Estimator, dd.full, dr.full, rr.full, m1, m2, nr, nr)
		if err != nil {
			return nil, nil, nil, err
		}

		resamples := make([][]float64, nsubvol)

		for r := 0; r < nsubvol; r++ {
			resamples[r], err = estimate.Xi(e.cfg.Estimator,
				dd.sub[r], rowOf(dr.sub, r), rowOf(rr.sub, r),
				m1del[r], m2del[r], nrdel[r], nrdel[r])
			if err != nil {
				return nil, nil, nil, err
			}
		}

		return xi, estimate.JackknifeErrors(resamples), estimate.JackknifeCovariance(resamples), nil
	}

	var out JackknifeResult

	if e.same {
		out.Auto1, out.Auto1Err, out.Auto1Cov, err = mode(d11, d1r, nd1, nd1, n1del, n1del)
		return out, err
	}

	if e.cfg.DoAuto {
		out.Auto1, out.Auto1Err, out.Auto1Cov, err = mode(d11, d1r, nd1, nd1, n1del, n1del)
		if err != nil {
			return JackknifeResult{}, err
		}

		out.Auto2, out.Auto2Err, out.Auto2Cov, err = mode(d22, d2r, nd2, nd2, n2del, n2del)
		if err != nil {
			return JackknifeResult{}, err
		}
	}

	if e.cfg.DoCross {
		out.Cross, out.CrossErr, out.CrossCov, err = mode(d12, d1r, nd1, nd2, n1del, n2del)
		if err != nil {
			return JackknifeResult{}, err
		}
	}

	return out, nil
}

// splitJack differences the cumulative jackknife rows and converts the
// touching-subvolume rows into delete-one counts.
func splitJack(cum [][]float64) jackCounts {
	rows := pairs.DiffRows(cum)
	jc := jackCounts{
		full: rows[0],
		sub:  make([][]float64, len(rows)-1),
	}

	for r, touching := range rows[1:] {
		del := make([]float64, len(jc.full))
		for m := range del {
			del[m] = jc.full[m] - touching[m]
		}

		jc.sub[r] = del
	}

	return jc
}

// deleteOneSizes returns, per subvolume, the point count remaining
// after that subvolume is removed.
func deleteOneSizes(total int, labels []int, nsubvol int) []float64 {
	counts := points.SubvolumeCounts(labels, nsubvol)

	out := make([]float64, nsubvol)
	for r := range out {
		out[r] = float64(total - counts[r])
	}

	return out
}

func rowOf(rows [][]float64, r int) []float64 {
	if rows == nil {
		return nil
	}

	return rows[r]
}
