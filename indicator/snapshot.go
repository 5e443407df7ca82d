package indicator

import (
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
)

// Standard dashboard periods.
const (
	RSIPeriod        = 14
	MACDFastPeriod   = 12
	MACDSlowPeriod   = 26
	MACDSignalPeriod = 9
	SMAShortPeriod   = 50
	SMALongPeriod    = 200
)

// Snapshot derives the full indicator bundle from an ascending close
// series. Deterministic: the same series always yields the same rounded
// figures. The 24h volume comes from the listings payload and is carried
// through unchanged.
func Snapshot(closes []float64, volume24h float64) model.IndicatorSnapshot {
	snap := model.EmptySnapshot(volume24h)
	snap.RSI = RSI(closes, RSIPeriod)
	snap.MACD, snap.MACDSignal, snap.MACDHistogram = MACD(closes, MACDFastPeriod, MACDSlowPeriod, MACDSignalPeriod)
	snap.SMA50 = SMA(closes, SMAShortPeriod)
	snap.SMA200 = SMA(closes, SMALongPeriod)
	return snap
}
