package model

import (
	"fmt"
	"strconv"
	"time"
)

// TwelveDataSeries mirrors the time_series payload the gateway relays
// unchanged from Twelve Data.
type TwelveDataSeries struct {
	Values []TwelveDataBar `json:"values"`
	Status string          `json:"status"`
}

// TwelveDataBar carries one bar; Twelve Data encodes every figure as a string.
type TwelveDataBar struct {
	Datetime string `json:"datetime"`
	Open     string `json:"open"`
	High     string `json:"high"`
	Low      string `json:"low"`
	Close    string `json:"close"`
	Volume   string `json:"volume"`
}

var twelveDataLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

// ToPricePoint parses the bar into a PricePoint. Fails if the datetime or
// the closing price cannot be parsed; other figures default to 0.
func (b TwelveDataBar) ToPricePoint() (PricePoint, error) {
	var ts time.Time
	var err error
	for _, layout := range twelveDataLayouts {
		if ts, err = time.Parse(layout, b.Datetime); err == nil {
			break
		}
	}
	if err != nil {
		return PricePoint{}, fmt.Errorf("unparsable bar datetime %q: %w", b.Datetime, err)
	}

	closePrice, err := strconv.ParseFloat(b.Close, 64)
	if err != nil {
		return PricePoint{}, fmt.Errorf("unparsable close %q: %w", b.Close, err)
	}

	open, _ := strconv.ParseFloat(b.Open, 64)
	high, _ := strconv.ParseFloat(b.High, 64)
	low, _ := strconv.ParseFloat(b.Low, 64)
	volume, _ := strconv.ParseFloat(b.Volume, 64)

	return PricePoint{
		Time:   ts,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePrice,
		Volume: volume,
	}, nil
}

// ToPriceSeries converts every parsable bar and sorts the result ascending.
func (s TwelveDataSeries) ToPriceSeries() PriceSeries {
	series := make(PriceSeries, 0, len(s.Values))
	for _, bar := range s.Values {
		point, err := bar.ToPricePoint()
		if err != nil {
			continue
		}
		series = append(series, point)
	}
	series.SortAscending()
	return series
}
