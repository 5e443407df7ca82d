package indicator

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
)

func seriesForSnapshot(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 30000 + 500*math.Sin(float64(i)/7) + 3*float64(i)
	}
	return closes
}

func TestSnapshot_Deterministic(t *testing.T) {
	closes := seriesForSnapshot(220)

	first, err := json.Marshal(Snapshot(closes, 1.5e9))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Snapshot(closes, 1.5e9))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("recomputed snapshot differs:\n%s\n%s", first, second)
	}
}

func TestSnapshot_ShortSeries(t *testing.T) {
	snap := Snapshot(seriesForSnapshot(10), 42)
	if snap.RSI.Available() || snap.MACD.Available() || snap.SMA50.Available() || snap.SMA200.Available() {
		t.Error("10 closes: expected every series-derived figure N/A")
	}
	v, ok := snap.Volume24h.Float()
	if !ok || v != 42 {
		t.Errorf("volume should pass through, got %s", snap.Volume24h)
	}
}

func TestSnapshot_FullSeries(t *testing.T) {
	snap := Snapshot(seriesForSnapshot(220), 42)
	for name, m := range map[string]interface{ Available() bool }{
		"rsi":           snap.RSI,
		"macd":          snap.MACD,
		"macdSignal":    snap.MACDSignal,
		"macdHistogram": snap.MACDHistogram,
		"sma50":         snap.SMA50,
		"sma200":        snap.SMA200,
	} {
		if !m.Available() {
			t.Errorf("220 closes: expected %s to be available", name)
		}
	}
}
