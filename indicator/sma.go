package indicator

import (
	"math"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
)

// SMA computes the simple moving average of the trailing `period` closes,
// rounded to 4 decimal places. Requires at least `period` closes.
func SMA(closes []float64, period int) model.Metric {
	if period <= 0 || len(closes) < period {
		return model.Unavailable()
	}
	sum := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		sum += closes[i]
	}
	return model.Number(roundTo(sum/float64(period), 4))
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(v*pow) / pow
}
