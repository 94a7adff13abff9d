package estimate

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestParse(t *testing.T) {
	names := []string{"Natural", "Davis-Peebles", "Hewett", "Hamilton", "Landy-Szalay"}

	for _, name := range names {
		e, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}

		if e.String() != name {
			t.Errorf("round trip: got %q, want %q", e.String(), name)
		}
	}

	if _, err := Parse("Peebles-Hauser"); err != ErrUnknownEstimator {
		t.Errorf("unknown name: got %v, want %v", err, ErrUnknownEstimator)
	}
}

func TestRequirements(t *testing.T) {
	tests := []struct {
		e      Estimator
		needDR bool
		needRR bool
	}{
		{Natural, false, true},
		{DavisPeebles, true, false},
		{Hewett, true, true},
		{Hamilton, true, true},
		{LandySzalay, true, true},
	}

	for _, tt := range tests {
		dr, rr := tt.e.Requirements()
		if dr != tt.needDR || rr != tt.needRR {
			t.Errorf("%v: got (%v, %v), want (%v, %v)", tt.e, dr, rr, tt.needDR, tt.needRR)
		}
	}
}

func TestXi_Formulas(t *testing.T) {
	dd := []float64{8}
	dr := []float64{4}
	rr := []float64{2}

	// ND1=10, ND2=20, NR1=30, NR2=40.
	tests := []struct {
		e    Estimator
		want float64
	}{
		// (30*40)/(10*20) * 8/2 - 1 = 6*4 - 1
		{Natural, 23},
		// (40/20) * 8/4 - 1 = 2*2 - 1
		{DavisPeebles, 3},
		// 6*8/2 - (30*40/(10*40))*4/2 = 24 - 3*2
		{Hewett, 18},
		// 8*2/(4*4) - 1
		{Hamilton, 0},
		// 6*8/2 - 2*3*4/2 + 1 = 24 - 12 + 1
		{LandySzalay, 13},
	}

	for _, tt := range tests {
		got, err := Xi(tt.e, dd, dr, rr, 10, 20, 30, 40)
		if err != nil {
			t.Fatalf("%v: %v", tt.e, err)
		}

		if !almostEqual(got[0], tt.want, tolerance) {
			t.Errorf("%v: got %g, want %g", tt.e, got[0], tt.want)
		}
	}
}

func TestXi_BalancedCountsYieldZero(t *testing.T) {
	dd := []float64{5, 10, 20}
	rr := []float64{5, 10, 20}

	got, err := Xi(Natural, dd, nil, rr, 100, 100, 100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for m := range got {
		if !almostEqual(got[m], 0, tolerance) {
			t.Errorf("bin %d: got %g, want 0", m, got[m])
		}
	}
}

func TestXi_ZeroDenominatorPropagates(t *testing.T) {
	got, err := Xi(Natural, []float64{3}, nil, []float64{0}, 1, 1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !math.IsInf(got[0], 1) {
		t.Errorf("got %g, want +Inf", got[0])
	}

	got, err = Xi(Hamilton, []float64{0}, []float64{0}, []float64{0}, 1, 1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !math.IsNaN(got[0]) {
		t.Errorf("got %g, want NaN", got[0])
	}
}

func TestXi_UnknownEstimator(t *testing.T) {
	if _, err := Xi(Estimator(99), []float64{1}, nil, nil, 1, 1, 1, 1); err != ErrUnknownEstimator {
		t.Errorf("got %v, want %v", err, ErrUnknownEstimator)
	}
}

func TestXiGrid(t *testing.T) {
	dd := [][]float64{{8}, {4}}
	rr := [][]float64{{2}, {2}}

	got, err := XiGrid(Natural, dd, nil, rr, 1, 1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(got[0][0], 3, tolerance) || !almostEqual(got[1][0], 1, tolerance) {
		t.Errorf("got %v, want [[3] [1]]", got)
	}
}
