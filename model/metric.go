package model

import (
	"encoding/json"
	"strconv"
)

// NotAvailable is the wire representation of a metric that could not be
// computed (insufficient history, flat series, failed fetch).
const NotAvailable = "N/A"

// Metric is a single indicator figure: either a finite number or "N/A".
// It replaces the loosely typed indicator bag of the original dashboard
// with explicit unavailable semantics.
type Metric struct {
	value     float64
	available bool
}

// Number returns an available metric holding v.
func Number(v float64) Metric {
	return Metric{value: v, available: true}
}

// Unavailable returns the "N/A" metric.
func Unavailable() Metric {
	return Metric{}
}

// Float returns the numeric value and whether it is available.
func (m Metric) Float() (float64, bool) {
	return m.value, m.available
}

// Available reports whether the metric holds a number.
func (m Metric) Available() bool {
	return m.available
}

// String formats the metric the way the dashboard prints it: the shortest
// decimal representation of the number, or "N/A".
func (m Metric) String() string {
	if !m.available {
		return NotAvailable
	}
	return strconv.FormatFloat(m.value, 'f', -1, 64)
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.available {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(m.value)
}

func (m *Metric) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*m = Number(v)
		return nil
	}
	// Anything non-numeric ("N/A", null, a stray string) is unavailable.
	*m = Unavailable()
	return nil
}
