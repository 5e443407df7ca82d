package model

import (
	"sort"
	"time"
)

// PricePoint is one bar of a daily price history.
type PricePoint struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries is the ordered output of one history fetch. Upstreams may
// return bars unsorted; SortAscending must run before any indicator math.
type PriceSeries []PricePoint

// SortAscending orders the series by timestamp, oldest first. Duplicate
// timestamps are not deduplicated.
func (s PriceSeries) SortAscending() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Time.Before(s[j].Time)
	})
}

// Closes extracts the closing prices in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// Labels formats the bar dates for chart axes.
func (s PriceSeries) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = p.Time.Format("2006-01-02")
	}
	return labels
}
