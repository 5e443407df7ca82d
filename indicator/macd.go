package indicator

import (
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
)

// MACD computes the moving average convergence divergence at the latest
// close: line = EMA(fast) - EMA(slow), signal = EMA(signalPeriod) of the
// line, histogram = line - signal. Each value is rounded to 4 decimal
// places and reported independently: the line needs at least slowPeriod
// closes, signal and histogram need slowPeriod+signalPeriod.
func MACD(closes []float64, fastPeriod, slowPeriod, signalPeriod int) (line, signal, histogram model.Metric) {
	line, signal, histogram = model.Unavailable(), model.Unavailable(), model.Unavailable()
	if fastPeriod <= 0 || slowPeriod <= fastPeriod || signalPeriod <= 0 {
		return
	}
	if len(closes) < slowPeriod {
		return
	}

	fast := emaSeries(closes, fastPeriod)
	slow := emaSeries(closes, slowPeriod)

	// The line series starts where the slow EMA is first defined.
	macdLine := make([]float64, 0, len(closes)-slowPeriod+1)
	for i := slowPeriod - 1; i < len(closes); i++ {
		macdLine = append(macdLine, fast[i]-slow[i])
	}

	latest := macdLine[len(macdLine)-1]
	line = model.Number(roundTo(latest, 4))

	if len(closes) < slowPeriod+signalPeriod {
		return
	}

	signalSeries := emaSeries(macdLine, signalPeriod)
	latestSignal := signalSeries[len(signalSeries)-1]
	signal = model.Number(roundTo(latestSignal, 4))
	histogram = model.Number(roundTo(latest-latestSignal, 4))
	return
}

// emaSeries returns the exponential moving average of values, seeded with
// the simple average of the first `period` values. Indices before
// period-1 are undefined and left at zero.
func emaSeries(values []float64, period int) []float64 {
	ema := make([]float64, len(values))
	if len(values) < period {
		return ema
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	ema[period-1] = seed / float64(period)

	k := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		ema[i] = values[i]*k + ema[i-1]*(1.0-k)
	}
	return ema
}
