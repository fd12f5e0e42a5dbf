package deltat

import (
	"math"
	"testing"
)

func TestEstimateDUT1Anchors(t *testing.T) {
	// Values near a January anchor should stay close to it.
	tests := []struct {
		year, month int
		want        float64
		tol         float64
	}{
		{2016, 1, 0.270, 0.05},
		{2020, 1, -0.177, 0.05},
		{2005, 1, -0.503, 0.05},
	}
	for _, tt := range tests {
		got := EstimateDUT1(tt.year, tt.month)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("EstimateDUT1(%d, %d) = %.3f, want %.3f +- %.2f",
				tt.year, tt.month, got, tt.want, tt.tol)
		}
	}
}

func TestEstimateDUT1Bounded(t *testing.T) {
	// UT1-UTC is kept within +/-0.9 s by leap seconds; the interpolated
	// value must respect the same bound everywhere.
	for year := 2000; year <= 2025; year++ {
		for month := 1; month <= 12; month++ {
			if v := EstimateDUT1(year, month); math.Abs(v) > 0.9 {
				t.Fatalf("EstimateDUT1(%d, %d) = %.3f outside +-0.9 s", year, month, v)
			}
		}
	}
}

func TestEstimateDUT1OutsideRange(t *testing.T) {
	for _, year := range []int{1980, 2080} {
		if v := EstimateDUT1(year, 6); v != 0 {
			t.Errorf("EstimateDUT1(%d, 6) = %.3f, want 0", year, v)
		}
	}
}
