package indicator

import (
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
)

// RSI computes the Wilder-smoothed relative strength index over the given
// period and returns the latest value, rounded to 2 decimal places.
// Requires at least period+1 closes. A flat series has no strength to
// measure and reports "N/A" instead of dividing by zero.
func RSI(closes []float64, period int) model.Metric {
	if period <= 0 || len(closes) < period+1 {
		return model.Unavailable()
	}

	// Initial average gain/loss over the first `period` changes
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Wilder smoothing for the remaining closes
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgGain == 0 && avgLoss == 0 {
		return model.Unavailable()
	}
	if avgLoss == 0 {
		return model.Number(100.0)
	}
	rs := avgGain / avgLoss
	return model.Number(roundTo(100.0-100.0/(1.0+rs), 2))
}
