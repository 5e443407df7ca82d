package model

import (
	"encoding/json"
	"testing"
)

func TestTwelveDataSeries_ToPriceSeriesSorts(t *testing.T) {
	raw := `{"status":"ok","values":[
		{"datetime":"2025-03-03","open":"3","high":"3","low":"3","close":"3","volume":"30"},
		{"datetime":"2025-03-01","open":"1","high":"1","low":"1","close":"1","volume":"10"},
		{"datetime":"2025-03-02","open":"2","high":"2","low":"2","close":"2","volume":"20"}
	]}`
	var series TwelveDataSeries
	if err := json.Unmarshal([]byte(raw), &series); err != nil {
		t.Fatal(err)
	}

	points := series.ToPriceSeries()
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i, want := range []float64{1, 2, 3} {
		if points[i].Close != want {
			t.Errorf("point %d: expected close %g, got %g", i, want, points[i].Close)
		}
	}
	if got := points.Labels()[0]; got != "2025-03-01" {
		t.Errorf("first label: got %s", got)
	}
}

func TestTwelveDataSeries_SkipsUnparsableBars(t *testing.T) {
	series := TwelveDataSeries{Values: []TwelveDataBar{
		{Datetime: "not-a-date", Close: "1"},
		{Datetime: "2025-03-01", Close: "not-a-number"},
		{Datetime: "2025-03-02 00:00:00", Close: "2.5"},
	}}
	points := series.ToPriceSeries()
	if len(points) != 1 {
		t.Fatalf("expected 1 parsable point, got %d", len(points))
	}
	if points[0].Close != 2.5 {
		t.Errorf("close: got %g", points[0].Close)
	}
}
