package indicator

import "testing"

func TestMACD_InsufficientHistory(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	line, signal, histogram := MACD(closes, 12, 26, 9)
	if line.Available() || signal.Available() || histogram.Available() {
		t.Errorf("25 closes: expected all N/A, got %s / %s / %s", line, signal, histogram)
	}
}

func TestMACD_LineWithoutSignal(t *testing.T) {
	// Enough history for the line, not for its 9-period signal.
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	line, signal, histogram := MACD(closes, 12, 26, 9)
	if !line.Available() {
		t.Error("30 closes: expected a MACD line value")
	}
	if signal.Available() || histogram.Available() {
		t.Errorf("30 closes: expected N/A signal and histogram, got %s / %s", signal, histogram)
	}
}

func TestMACD_UptrendHistogramNonNegative(t *testing.T) {
	// Monotonically increasing by a constant step: the line leads its
	// signal, so the histogram at the latest index must not be negative.
	closes := make([]float64, 250)
	for i := range closes {
		closes[i] = 1000 + 2.5*float64(i)
	}
	_, _, histogram := MACD(closes, 12, 26, 9)
	v, ok := histogram.Float()
	if !ok {
		t.Fatal("250 closes: expected a histogram value")
	}
	if v < 0 {
		t.Errorf("uptrend histogram negative: %g", v)
	}
}

func TestMACD_FlatSeries(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 77.0
	}
	line, signal, histogram := MACD(closes, 12, 26, 9)
	for name, m := range map[string]interface{ Float() (float64, bool) }{
		"line": line, "signal": signal, "histogram": histogram,
	} {
		v, ok := m.Float()
		if !ok {
			t.Fatalf("flat series: expected a %s value", name)
		}
		if v != 0.0 {
			t.Errorf("flat series %s: expected 0, got %g", name, v)
		}
	}
}
