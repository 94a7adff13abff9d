package estimate

import (
	"math"
	"testing"
)

func TestJackknifeErrors_HandComputed(t *testing.T) {
	sub := [][]float64{
		{1, 3},
		{3, 5},
	}

	// Mean (2, 4), deviations +/-1, factor (2-1)/2.
	got := JackknifeErrors(sub)

	for i := range got {
		if !almostEqual(got[i], 1, tolerance) {
			t.Errorf("bin %d: got %g, want 1", i, got[i])
		}
	}
}

func TestJackknifeCovariance_HandComputed(t *testing.T) {
	sub := [][]float64{
		{1, 3},
		{3, 5},
	}

	cov := JackknifeCovariance(sub)
	if cov.SymmetricDim() != 2 {
		t.Fatalf("dimension: got %d, want 2", cov.SymmetricDim())
	}

	// Deviations are fully correlated, so every entry is 1.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !almostEqual(cov.At(i, j), 1, tolerance) {
				t.Errorf("cov[%d][%d]: got %g, want 1", i, j, cov.At(i, j))
			}
		}
	}
}

func TestJackknifeCovariance_DiagonalMatchesErrors(t *testing.T) {
	sub := [][]float64{
		{0.1, -0.3, 2.5},
		{-1.2, 0.7, 1.1},
		{0.4, 0.2, -0.6},
		{2.0, -1.5, 0.3},
	}

	errs := JackknifeErrors(sub)
	cov := JackknifeCovariance(sub)

	for i := range errs {
		if !almostEqual(cov.At(i, i), errs[i]*errs[i], tolerance) {
			t.Errorf("bin %d: diagonal %g, squared error %g", i, cov.At(i, i), errs[i]*errs[i])
		}
	}
}

func TestJackknifeCovariance_Symmetric(t *testing.T) {
	sub := [][]float64{
		{1, 2, 4},
		{2, 1, 3},
		{0, 3, 5},
	}

	cov := JackknifeCovariance(sub)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if cov.At(i, j) != cov.At(j, i) {
				t.Errorf("asymmetry at (%d,%d): %g vs %g", i, j, cov.At(i, j), cov.At(j, i))
			}
		}
	}
}

func TestJackknife_EmptyResamples(t *testing.T) {
	if got := JackknifeErrors(nil); got != nil {
		t.Errorf("errors: got %v, want nil", got)
	}

	if got := JackknifeCovariance(nil); got != nil {
		t.Errorf("covariance: got %v, want nil", got)
	}
}

func TestJackknifeErrors_ConstantResamples(t *testing.T) {
	sub := [][]float64{
		{2, 2},
		{2, 2},
		{2, 2},
	}

	got := JackknifeErrors(sub)

	for i := range got {
		if got[i] != 0 {
			t.Errorf("bin %d: got %g, want 0", i, got[i])
		}
	}

	if math.Signbit(got[0]) {
		t.Error("negative zero error")
	}
}
