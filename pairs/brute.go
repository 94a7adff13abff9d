package pairs

import (
	"math"
	"sort"
	"sync"

	"github.com/cwbudde/algo-clustering/points"
)

// BruteForce is the reference pair counter: it examines every pair
// directly, applying minimum-image separations along periodic
// dimensions. It is exact for bin edges up to half the box length.
//
// Workers > 1 splits the outer point loop across that many goroutines,
// each accumulating a private histogram merged at the end. The zero
// value counts serially.
type BruteForce struct {
	Workers int
}

// Count implements Counter.
func (bf BruteForce) Count(a, b points.Sample, edges, period []float64) ([]float64, error) {
	if err := checkCountArgs(a, b, edges, period); err != nil {
		return nil, err
	}

	same := a.Equal(b)
	hist := make([]float64, len(edges)+1)

	bf.scan(len(a), func(hist []float64, i int) {
		for j := range b {
			if same && i == j {
				continue
			}

			d := radialDistance(a[i], b[j], period)

			idx := sort.SearchFloat64s(edges, d)
			if idx < len(edges) {
				hist[idx]++
			}
		}
	}, hist)

	return cumulate(hist[:len(edges)]), nil
}

// CountRpPi implements Counter. The last dimension is treated as the
// line of sight; all remaining dimensions contribute to rp.
func (bf BruteForce) CountRpPi(a, b points.Sample, rpEdges, piEdges, period []float64) ([][]float64, error) {
	if err := checkCountArgs(a, b, rpEdges, period); err != nil {
		return nil, err
	}

	if len(piEdges) == 0 {
		return nil, ErrNoBins
	}

	same := a.Equal(b)
	nrp := len(rpEdges)
	npi := len(piEdges)
	hist := make([]float64, (nrp+1)*(npi+1))

	bf.scan(len(a), func(hist []float64, i int) {
		for j := range b {
			if same && i == j {
				continue
			}

			rp, pi := rpPiDistance(a[i], b[j], period)

			m := sort.SearchFloat64s(rpEdges, rp)
			n := sort.SearchFloat64s(piEdges, pi)
			hist[m*(npi+1)+n]++
		}
	}, hist)

	// Prefix sums along pi, then along rp, give the cumulative grid.
	cum := make([][]float64, nrp)

	for m := range cum {
		cum[m] = make([]float64, npi)

		var run float64

		for n := 0; n < npi; n++ {
			run += hist[m*(npi+1)+n]
			cum[m][n] = run

			if m > 0 {
				cum[m][n] += cum[m-1][n]
			}
		}
	}

	return cum, nil
}

// CountJackknife implements Counter. Row 0 counts every pair; row r
// counts pairs with at least one endpoint labeled r.
func (bf BruteForce) CountJackknife(a, b points.Sample, edges, period []float64, labelsA, labelsB []int, nSubvol int) ([][]float64, error) {
	if err := checkCountArgs(a, b, edges, period); err != nil {
		return nil, err
	}

	if len(labelsA) != len(a) || len(labelsB) != len(b) {
		return nil, ErrLabelLength
	}

	same := a.Equal(b)
	nb := len(edges)
	hist := make([]float64, (nSubvol+1)*(nb+1))

	bf.scan(len(a), func(hist []float64, i int) {
		for j := range b {
			if same && i == j {
				continue
			}

			d := radialDistance(a[i], b[j], period)

			idx := sort.SearchFloat64s(edges, d)
			if idx >= nb {
				continue
			}

			hist[idx]++

			la, lb := labelsA[i], labelsB[j]
			if la >= 1 && la <= nSubvol {
				hist[la*(nb+1)+idx]++
			}

			if lb >= 1 && lb <= nSubvol && lb != la {
				hist[lb*(nb+1)+idx]++
			}
		}
	}, hist)

	out := make([][]float64, nSubvol+1)
	for r := range out {
		out[r] = cumulate(hist[r*(nb+1) : r*(nb+1)+nb])
	}

	return out, nil
}

// scan runs body over the outer index range, serially or across
// Workers goroutines with per-worker histograms merged into hist.
func (bf BruteForce) scan(n int, body func(hist []float64, i int), hist []float64) {
	workers := bf.Workers
	if workers <= 1 || n < workers {
		for i := 0; i < n; i++ {
			body(hist, i)
		}

		return
	}

	var wg sync.WaitGroup

	partials := make([][]float64, workers)
	chunk := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * chunk

		hi := lo + chunk
		if hi > n {
			hi = n
		}

		partials[w] = make([]float64, len(hist))

		wg.Add(1)

		go func(part []float64, lo, hi int) {
			defer wg.Done()

			for i := lo; i < hi; i++ {
				body(part, i)
			}
		}(partials[w], lo, hi)
	}

	wg.Wait()

	for _, part := range partials {
		for k, v := range part {
			hist[k] += v
		}
	}
}

func checkCountArgs(a, b points.Sample, edges, period []float64) error {
	if len(edges) == 0 {
		return ErrNoBins
	}

	if a.Dim() != b.Dim() || len(period) != a.Dim() {
		return ErrDimensionMismatch
	}

	return nil
}

// axisDistance returns the minimum-image separation along one axis.
func axisDistance(x, y, period float64) float64 {
	d := math.Abs(x - y)
	if !math.IsInf(period, 1) && d > period/2 {
		d = period - d
	}

	return d
}

func radialDistance(p, q, period []float64) float64 {
	var sum float64

	for d := range p {
		dd := axisDistance(p[d], q[d], period[d])
		sum += dd * dd
	}

	return math.Sqrt(sum)
}

func rpPiDistance(p, q, period []float64) (rp, pi float64) {
	last := len(p) - 1

	var sum float64

	for d := 0; d < last; d++ {
		dd := axisDistance(p[d], q[d], period[d])
		sum += dd * dd
	}

	return math.Sqrt(sum), axisDistance(p[last], q[last], period[last])
}

func cumulate(hist []float64) []float64 {
	out := make([]float64, len(hist))

	var run float64

	for m, v := range hist {
		run += v
		out[m] = run
	}

	return out
}
