package dashboard

import (
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
)

// Phase tracks one refresh cycle through its state machine.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// AnalysisLoadingText is shown until the first commentary arrives.
const AnalysisLoadingText = "AI analysis loading..."

// RefreshState is the per-selection bundle the view renders. It always
// belongs to exactly one symbol and is replaced wholesale on every commit,
// never mutated in place: consumers hold read-only snapshots.
type RefreshState struct {
	Symbol string
	Phase  Phase

	ChartLabels []string
	ChartPrices []float64
	Indicators  model.IndicatorSnapshot

	Analysis string
	News     []model.NewsItem

	ChartError string
	NewsError  string
}

func idleState() *RefreshState {
	return &RefreshState{
		Phase:      PhaseIdle,
		Indicators: model.EmptySnapshot(0),
	}
}
