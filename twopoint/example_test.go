package twopoint_test

import (
	"fmt"

	"github.com/cwbudde/algo-clustering/twopoint"
)

func ExampleCorrelation() {
	// Four points clustered at unit separation in a periodic box of
	// side 4. Without a random catalog the random pair counts are the
	// analytic uniform-density expectation.
	sample := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	res, err := twopoint.Correlation(sample, []float64{0.5, 1.2, 2.0}, twopoint.WithPeriod(4))
	if err != nil {
		panic(err)
	}

	fmt.Printf("xi = [%.1f %.1f]\n", res.Auto1[0], res.Auto1[1])
	// Output:
	// xi = [2.6 -0.1]
}
