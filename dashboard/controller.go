package dashboard

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/indicator"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/rs/zerolog/log"
)

// NoHistoryMessage is the chart error when a fetch succeeds but carries no bars.
const NoHistoryMessage = "No OHLCV data found for this coin from Twelve Data."

// Controller owns the selection and the single RefreshState slot. Every
// cycle is tagged with a monotonic token at launch; a commit is dropped
// when its token is no longer the latest, so results from a superseded
// selection can never overwrite the newer one. In-flight requests are not
// cancelled, their commits just miss. (The original dashboard lacked this
// guard; it is a deliberate correction, see controller tests.)
type Controller struct {
	gateway *GatewayClient
	catalog *Catalog

	token uint64
	mu    sync.Mutex
	state atomic.Value // *RefreshState
	wg    sync.WaitGroup
}

func NewController(gateway *GatewayClient, catalog *Catalog) *Controller {
	c := &Controller{
		gateway: gateway,
		catalog: catalog,
	}
	c.state.Store(idleState())
	return c
}

// State returns the current snapshot. Callers must treat it as read-only.
func (c *Controller) State() *RefreshState {
	return c.state.Load().(*RefreshState)
}

// Start loads the catalog once and auto-selects the top-ranked asset.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.catalog.Load(ctx); err != nil {
		return err
	}
	if first, ok := c.catalog.First(); ok {
		c.Select(ctx, first.Symbol)
	}
	return nil
}

// Select launches a refresh cycle for the given symbol, superseding any
// cycle still in flight.
func (c *Controller) Select(ctx context.Context, symbol string) {
	token := atomic.AddUint64(&c.token, 1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.runCycle(ctx, token, symbol)
	}()
}

// Wait blocks until every launched cycle has finished, committed or not.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// runCycle executes one refresh: history, indicators, commentary, news.
// Each step fails independently; a failed step records its message and
// the remaining steps still run.
func (c *Controller) runCycle(ctx context.Context, token uint64, symbol string) {
	prev := c.State()

	coin, known := c.catalog.Get(symbol)
	if !known {
		c.commit(token, &RefreshState{
			Symbol:     symbol,
			Phase:      PhaseFailed,
			Indicators: model.EmptySnapshot(0),
			ChartError: "Symbol not found in catalog: " + symbol,
		})
		return
	}

	c.commit(token, &RefreshState{
		Symbol:     symbol,
		Phase:      PhaseLoading,
		Indicators: model.EmptySnapshot(coin.Volume24h),
		Analysis:   AnalysisLoadingText,
	})

	next := &RefreshState{Symbol: symbol}

	// Step 1+2: history, chart series, indicators. A failure here forces
	// the indicators to "N/A" but the later steps still run.
	snapshot := model.EmptySnapshot(coin.Volume24h)
	series, err := c.gateway.DailyHistory(ctx, symbol)
	if err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("history fetch failed")
		next.ChartError = err.Error()
	} else {
		points := series.ToPriceSeries()
		if len(points) == 0 {
			next.ChartError = NoHistoryMessage
		} else {
			closes := points.Closes()
			next.ChartLabels = points.Labels()
			next.ChartPrices = closes
			snapshot = indicator.Snapshot(closes, coin.Volume24h)
		}
	}
	next.Indicators = snapshot

	// Steps 3+4: commentary and news are independent and run concurrently.
	// The commentary prompt takes the news known so far; a list from the
	// previous cycle is acceptable input.
	var stepWG sync.WaitGroup
	var analysis string
	var analysisErr error
	var news []model.NewsItem
	var newsErr error

	stepWG.Add(2)
	go func() {
		defer stepWG.Done()
		analysis, analysisErr = c.gateway.Analyze(ctx, model.AnalyzeRequest{
			Symbol:           symbol,
			CurrentPrice:     coin.CurrentPrice,
			PercentChange24h: coin.PercentChange24h,
			MarketCap:        coin.MarketCap,
			RSI:              snapshot.RSI,
			MACD:             snapshot.MACD,
			SMA50:            snapshot.SMA50,
			SMA200:           snapshot.SMA200,
			Volume:           snapshot.Volume24h,
			News:             prev.News,
		})
	}()
	go func() {
		defer stepWG.Done()
		news, newsErr = c.gateway.News(ctx, symbol)
	}()
	stepWG.Wait()

	if analysisErr != nil {
		log.Error().Err(analysisErr).Str("symbol", symbol).Msg("analysis fetch failed")
		next.Analysis = "AI analysis error: " + analysisErr.Error()
	} else {
		next.Analysis = analysis
	}
	if newsErr != nil {
		log.Error().Err(newsErr).Str("symbol", symbol).Msg("news fetch failed")
		next.NewsError = "News error: " + newsErr.Error()
		next.News = nil
	} else {
		next.News = news
	}

	if next.ChartError != "" {
		next.Phase = PhaseFailed
	} else {
		next.Phase = PhaseReady
	}
	c.commit(token, next)
}

// commit swaps the state slot if and only if the cycle token is still the
// latest one issued. Returns whether the write landed.
func (c *Controller) commit(token uint64, st *RefreshState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != atomic.LoadUint64(&c.token) {
		return false
	}
	c.state.Store(st)
	return true
}
