package twopoint

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-clustering/estimate"
	"github.com/cwbudde/algo-clustering/pairs"
	"github.com/cwbudde/algo-clustering/points"
)

// Errors returned by the entry points. Validation runs eagerly, before
// any pair counting.
var (
	ErrEmptySample       = errors.New("twopoint: sample1 must contain at least one point")
	ErrDimensionMismatch = errors.New("twopoint: samples must share dimensionality")
	ErrTooFewEdges       = errors.New("twopoint: at least two bin edges are required")
	ErrBinsNotIncreasing = errors.New("twopoint: bin edges must be nonnegative and strictly increasing")
	ErrBinsTooWide       = errors.New("twopoint: bin edges must not exceed half the periodic length")
	ErrRandomsRequired   = errors.New("twopoint: randoms are required without periodic boundaries")
	ErrNothingToDo       = errors.New("twopoint: at least one of auto or cross correlation must be requested")
)

// kernel is the separation-binning strategy: radial distance bins, or
// the perpendicular/line-of-sight grid when pi is non-nil.
type kernel struct {
	rp []float64
	pi []float64
}

func radialKernel(edges []float64) kernel {
	return kernel{rp: edges}
}

func rpPiKernel(rpEdges, piEdges []float64) kernel {
	return kernel{rp: rpEdges, pi: piEdges}
}

func (k kernel) twoD() bool {
	return k.pi != nil
}

// validate checks edge monotonicity and, under periodicity, that no
// edge exceeds half the relevant box length.
func (k kernel) validate(period []float64, periodic bool) error {
	if err := checkEdges(k.rp); err != nil {
		return err
	}

	if k.twoD() {
		if err := checkEdges(k.pi); err != nil {
			return err
		}
	}

	if !periodic {
		return nil
	}

	if k.twoD() {
		last := len(period) - 1
		if k.rp[len(k.rp)-1] > minOf(period[:last])/2 {
			return ErrBinsTooWide
		}

		if k.pi[len(k.pi)-1] > period[last]/2 {
			return ErrBinsTooWide
		}

		return nil
	}

	if k.rp[len(k.rp)-1] > minOf(period)/2 {
		return ErrBinsTooWide
	}

	return nil
}

// count returns differential pair counts, flattened row-major for the
// two-dimensional kernel.
func (k kernel) count(c pairs.Counter, a, b points.Sample, period []float64) ([]float64, error) {
	if k.twoD() {
		cum, err := c.CountRpPi(a, b, k.rp, k.pi, period)
		if err != nil {
			return nil, fmt.Errorf("twopoint: counting pairs: %w", err)
		}

		return flatten(pairs.DiffRpPi(cum)), nil
	}

	cum, err := c.Count(a, b, k.rp, period)
	if err != nil {
		return nil, fmt.Errorf("twopoint: counting pairs: %w", err)
	}

	return pairs.Diff(cum), nil
}

// analytic returns the expected differential random pair counts for a
// uniform population filling the periodic box, flattened like count.
func (k kernel) analytic(nA, nB, dim int, period []float64) []float64 {
	if k.twoD() {
		return flatten(pairs.AnalyticRpPi(nA, nB, k.rp, k.pi, period))
	}

	return pairs.AnalyticRadial(nA, nB, k.rp, dim, period)
}

// reshape splits a flattened result back into rp-major rows.
func (k kernel) reshape(flat []float64) [][]float64 {
	npi := len(k.pi) - 1
	out := make([][]float64, len(k.rp)-1)

	for m := range out {
		out[m] = flat[m*npi : (m+1)*npi]
	}

	return out
}

// engine holds the per-call state shared by every entry point: the
// prepared samples, resolved period, and estimator requirements.
type engine struct {
	cfg      Config
	kern     kernel
	s1, s2   points.Sample
	randoms  points.Sample
	period   []float64
	periodic bool
	same     bool
	needDR   bool
	needRR   bool
}

// newEngine validates all inputs eagerly and prepares the samples:
// equality detection, downsampling, and period resolution.
func newEngine(sample1 points.Sample, kern kernel, cfg Config) (*engine, error) {
	if !cfg.Estimator.Valid() {
		return nil, estimate.ErrUnknownEstimator
	}

	if sample1.Len() == 0 {
		return nil, ErrEmptySample
	}

	dim := sample1.Dim()
	if kern.twoD() && dim < 2 {
		return nil, ErrDimensionMismatch
	}

	same := cfg.Sample2 == nil || sample1.Equal(cfg.Sample2)

	if !same && cfg.Sample2.Dim() != dim {
		return nil, ErrDimensionMismatch
	}

	if cfg.Randoms != nil && cfg.Randoms.Dim() != dim {
		return nil, ErrDimensionMismatch
	}

	if !same && !cfg.DoAuto && !cfg.DoCross {
		return nil, ErrNothingToDo
	}

	period, periodic, err := points.ResolvePeriod(cfg.Period, dim)
	if err != nil {
		return nil, fmt.Errorf("twopoint: %w", err)
	}

	if err := kern.validate(period, periodic); err != nil {
		return nil, err
	}

	if !periodic && cfg.Randoms == nil {
		return nil, ErrRandomsRequired
	}

	e := &engine{
		cfg:      cfg,
		kern:     kern,
		randoms:  cfg.Randoms,
		period:   period,
		periodic: periodic,
		same:     same,
	}
	e.needDR, e.needRR = cfg.Estimator.Requirements()

	// Equal samples are downsampled once and shared; distinct samples
	// are downsampled independently.
	e.s1 = points.Downsample(sample1, cfg.MaxSampleSize, cfg.Rand)
	if same {
		e.s2 = e.s1
	} else {
		e.s2 = points.Downsample(cfg.Sample2, cfg.MaxSampleSize, cfg.Rand)
	}

	return e, nil
}

// sizes returns the sample-size factors for the estimator formulas.
// With analytic randoms the counts are already absolute expectations,
// so every factor collapses to one.
func (e *engine) sizes() (nd1, nd2, nr float64) {
	if e.randoms == nil {
		return 1, 1, 1
	}

	return float64(e.s1.Len()), float64(e.s2.Len()), float64(e.randoms.Len())
}

// dataCounts returns the differential DD counts for the combinations
// the dispatch will consume.
func (e *engine) dataCounts() (d11, d12, d22 []float64, err error) {
	if e.same || e.cfg.DoAuto {
		d11, err = e.kern.count(e.cfg.Counter, e.s1, e.s1, e.period)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if e.same {
		return d11, d11, d11, nil
	}

	if e.cfg.DoCross {
		d12, err = e.kern.count(e.cfg.Counter, e.s1, e.s2, e.period)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if e.cfg.DoAuto {
		d22, err = e.kern.count(e.cfg.Counter, e.s2, e.s2, e.period)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return d11, d12, d22, nil
}

// randomCounts returns the differential DR and RR counts required by
// the estimator. With periodic boundaries and no random catalog the
// counts are analytic; the auto-correlation then reuses D1R as RR,
// both being the same uniform-density expectation.
func (e *engine) randomCounts() (d1r, d2r, rr []float64, err error) {
	if e.randoms == nil {
		d1r = e.kern.analytic(e.s1.Len(), e.s1.Len(), e.s1.Dim(), e.period)
		if e.same {
			return d1r, nil, d1r, nil
		}

		d2r = e.kern.analytic(e.s2.Len(), e.s2.Len(), e.s2.Dim(), e.period)
		rr = e.kern.analytic(e.s1.Len(), e.s2.Len(), e.s1.Dim(), e.period)

		return d1r, d2r, rr, nil
	}

	if e.needRR {
		rr, err = e.kern.count(e.cfg.Counter, e.randoms, e.randoms, e.period)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if e.needDR {
		d1r, err = e.kern.count(e.cfg.Counter, e.s1, e.randoms, e.period)
		if err != nil {
			return nil, nil, nil, err
		}

		if !e.same {
			d2r, err = e.kern.count(e.cfg.Counter, e.s2, e.randoms, e.period)
			if err != nil {
				return nil, nil, nil, err
			}
		}
	}

	return d1r, d2r, rr, nil
}

// correlate runs the full pipeline and dispatches the auto/cross
// fan-out, returning flattened per-bin estimates.
func (e *engine) correlate() (Result, error) {
	d11, d12, d22, err := e.dataCounts()
	if err != nil {
		return Result{}, err
	}

	d1r, d2r, rr, err := e.randomCounts()
	if err != nil {
		return Result{}, err
	}

	nd1, nd2, nr := e.sizes()

	var out Result

	if e.same {
		out.Auto1, err = estimate.Xi(e.cfg.Estimator, d11, d1r, rr, nd1, nd1, nr, nr)
		return out, err
	}

	if e.cfg.DoAuto {
		out.Auto1, err = estimate.Xi(e.cfg.Estimator, d11, d1r, rr, nd1, nd1, nr, nr)
		if err != nil {
			return Result{}, err
		}

		out.Auto2, err = estimate.Xi(e.cfg.Estimator, d22, d2r, rr, nd2, nd2, nr, nr)
		if err != nil {
			return Result{}, err
		}
	}

	if e.cfg.DoCross {
		out.Cross, err = estimate.Xi(e.cfg.Estimator, d12, d1r, rr, nd1, nd2, nr, nr)
		if err != nil {
			return Result{}, err
		}
	}

	return out, nil
}

func checkEdges(edges []float64) error {
	if len(edges) < 2 {
		return ErrTooFewEdges
	}

	if edges[0] < 0 {
		return ErrBinsNotIncreasing
	}

	for m := 1; m < len(edges); m++ {
		if edges[m] <= edges[m-1] {
			return ErrBinsNotIncreasing
		}
	}

	return nil
}

func minOf(v []float64) float64 {
	min := math.Inf(1)
	for _, x := range v {
		if x < min {
			min = x
		}
	}

	return min
}

func flatten(grid [][]float64) []float64 {
	if len(grid) == 0 {
		return nil
	}

	out := make([]float64, 0, len(grid)*len(grid[0]))
	for _, row := range grid {
		out = append(out, row...)
	}

	return out
}
