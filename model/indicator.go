package model

// IndicatorSnapshot is the fixed-shape bundle of technical figures derived
// from one price series. Every field is either a finite rounded number or
// "N/A"; the snapshot has no identity and is recomputed on every refresh.
type IndicatorSnapshot struct {
	RSI           Metric `json:"rsi"`
	MACD          Metric `json:"macd"`
	MACDSignal    Metric `json:"macdSignal"`
	MACDHistogram Metric `json:"macdHistogram"`
	SMA50         Metric `json:"sma50"`
	SMA200        Metric `json:"sma200"`
	Volume24h     Metric `json:"volume"`
}

// EmptySnapshot returns a snapshot with every figure unavailable except the
// 24h volume, which comes from the listings payload rather than the series.
func EmptySnapshot(volume24h float64) IndicatorSnapshot {
	return IndicatorSnapshot{
		RSI:           Unavailable(),
		MACD:          Unavailable(),
		MACDSignal:    Unavailable(),
		MACDHistogram: Unavailable(),
		SMA50:         Unavailable(),
		SMA200:        Unavailable(),
		Volume24h:     Number(volume24h),
	}
}
