package pairs

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// NBallVolume returns the volume of a k-dimensional ball of radius r:
// pi^(k/2) / Gamma(k/2+1) * r^k.
func NBallVolume(r float64, k int) float64 {
	kf := float64(k)

	return math.Pow(math.Pi, kf/2) / math.Gamma(kf/2+1) * math.Pow(r, kf)
}

// BoxVolume returns the product of the period lengths.
func BoxVolume(period []float64) float64 {
	v := 1.0
	for _, p := range period {
		v *= p
	}

	return v
}

// AnalyticRadial returns the expected differential pair counts between
// a sample of nA points and a uniform population of nB points filling a
// periodic box: nA * nB * Vshell / Vbox per shell. Valid only when
// every period entry is finite.
func AnalyticRadial(nA, nB int, edges []float64, k int, period []float64) []float64 {
	shells := make([]float64, len(edges)-1)
	for m := range shells {
		shells[m] = NBallVolume(edges[m+1], k) - NBallVolume(edges[m], k)
	}

	out := make([]float64, len(shells))
	vecmath.ScaleBlock(out, shells, float64(nA)*float64(nB)/BoxVolume(period))

	return out
}

// AnalyticRpPi returns the expected differential pair counts on the
// rp x pi grid, using cylindrical annular shell volumes pi*rp^2*h
// differenced along both axes.
func AnalyticRpPi(nA, nB int, rpEdges, piEdges, period []float64) [][]float64 {
	density := float64(nA) * float64(nB) / BoxVolume(period)

	out := make([][]float64, len(rpEdges)-1)

	for m := range out {
		ring := math.Pi * (rpEdges[m+1]*rpEdges[m+1] - rpEdges[m]*rpEdges[m])

		row := make([]float64, len(piEdges)-1)
		for n := range row {
			row[n] = ring * (piEdges[n+1] - piEdges[n]) * density
		}

		out[m] = row
	}

	return out
}
