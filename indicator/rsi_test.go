package indicator

import (
	"math"
	"testing"
)

func TestRSI_InsufficientHistory(t *testing.T) {
	for n := 0; n <= 14; n++ {
		closes := make([]float64, n)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		if got := RSI(closes, 14); got.Available() {
			t.Errorf("RSI over %d closes: expected N/A, got %s", n, got)
		}
	}
}

func TestRSI_FlatSeries(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 250.0
	}
	got := RSI(closes, 14)
	if got.Available() {
		t.Errorf("flat series: expected N/A, got %s", got)
	}
}

func TestRSI_AllGains(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	got := RSI(closes, 14)
	v, ok := got.Float()
	if !ok {
		t.Fatal("expected a value for a rising series")
	}
	if v != 100.0 {
		t.Errorf("rising-only series: expected RSI 100, got %g", v)
	}
}

func TestRSI_AllLosses(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	got := RSI(closes, 14)
	v, ok := got.Float()
	if !ok {
		t.Fatal("expected a value for a falling series")
	}
	if v != 0.0 {
		t.Errorf("falling-only series: expected RSI 0, got %g", v)
	}
}

func TestRSI_BoundedAndRounded(t *testing.T) {
	closes := []float64{
		44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42,
		45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00,
		46.03, 46.41, 46.22, 45.64,
	}
	got := RSI(closes, 14)
	v, ok := got.Float()
	if !ok {
		t.Fatal("expected a value")
	}
	if v < 0 || v > 100 {
		t.Errorf("RSI out of bounds: %g", v)
	}
	if math.Round(v*100)/100 != v {
		t.Errorf("RSI not rounded to 2 decimals: %g", v)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Errorf("RSI not finite: %g", v)
	}
}
