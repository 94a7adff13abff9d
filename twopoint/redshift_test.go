package twopoint

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-clustering/points"
)

func TestRedshiftSpace_Shape(t *testing.T) {
	sample := uniformBox(100, 40, 20)

	got, err := RedshiftSpace(sample, []float64{1, 4, 8, 16}, []float64{0, 5, 10}, WithPeriod(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Auto1) != 3 {
		t.Fatalf("rp bins: got %d, want 3", len(got.Auto1))
	}

	for m := range got.Auto1 {
		if len(got.Auto1[m]) != 2 {
			t.Fatalf("pi bins in row %d: got %d, want 2", m, len(got.Auto1[m]))
		}
	}

	if got.Cross != nil || got.Auto2 != nil {
		t.Error("single-sample call set cross-correlation fields")
	}
}

func TestRedshiftSpace_NeedsTwoDimensions(t *testing.T) {
	flat := points.Sample{{1}, {2}, {3}}

	_, err := RedshiftSpace(flat, []float64{1, 2}, []float64{0, 1}, WithPeriod(10))
	if err != ErrDimensionMismatch {
		t.Errorf("got %v, want %v", err, ErrDimensionMismatch)
	}
}

func TestRedshiftSpace_BinsAgainstAnisotropicPeriod(t *testing.T) {
	sample := uniformBox(20, 10, 21)

	// rp edges are checked against the perpendicular box lengths, pi
	// edges against the line-of-sight length.
	_, err := RedshiftSpace(sample, []float64{1, 6}, []float64{0, 2}, WithPeriod(10, 10, 40))
	if err != ErrBinsTooWide {
		t.Errorf("wide rp: got %v, want %v", err, ErrBinsTooWide)
	}

	_, err = RedshiftSpace(sample, []float64{1, 4}, []float64{0, 19}, WithPeriod(40, 40, 10))
	if err != ErrBinsTooWide {
		t.Errorf("wide pi: got %v, want %v", err, ErrBinsTooWide)
	}
}

func TestProjected_SinglePiBinIsScaledXi(t *testing.T) {
	sample := uniformBox(120, 40, 22)
	rpBins := []float64{1, 4, 8, 16}
	piBins := []float64{0, 12}

	grid, err := RedshiftSpace(sample, rpBins, piBins, WithPeriod(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wp, err := Projected(sample, rpBins, piBins, WithPeriod(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With one pi bin the Riemann sum degenerates to xi times the bin
	// width.
	for m := range wp.Auto1 {
		want := grid.Auto1[m][0] * 12
		if !almostEqual(wp.Auto1[m], want, tolerance) {
			t.Errorf("rp bin %d: got %g, want %g", m, wp.Auto1[m], want)
		}
	}
}

func TestProjected_NonUniformPiWidths(t *testing.T) {
	sample := uniformBox(120, 40, 23)
	rpBins := []float64{1, 4, 8}
	piBins := []float64{0, 2, 6, 14}

	grid, err := RedshiftSpace(sample, rpBins, piBins, WithPeriod(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wp, err := Projected(sample, rpBins, piBins, WithPeriod(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	widths := []float64{2, 4, 8}

	for m := range wp.Auto1 {
		var want float64
		for n, w := range widths {
			want += grid.Auto1[m][n] * w
		}

		if !almostEqual(wp.Auto1[m], want, 1e-9) {
			t.Errorf("rp bin %d: got %g, want %g", m, wp.Auto1[m], want)
		}
	}
}

func TestProjected_CrossFanOut(t *testing.T) {
	s1 := uniformBox(60, 40, 24)
	s2 := uniformBox(80, 40, 25)

	got, err := Projected(s1, []float64{1, 4, 8}, []float64{0, 10},
		WithPeriod(40), WithSample2(s2), WithDoAuto(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Auto1 != nil || got.Cross == nil || got.Auto2 != nil {
		t.Errorf("cross only: got %+v, want only Cross", got)
	}

	for m, v := range got.Cross {
		if math.IsNaN(v) {
			t.Errorf("rp bin %d: NaN wp", m)
		}
	}
}
