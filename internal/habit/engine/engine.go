package engine

import (
	"math"
	"time"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	initialHabitScore = 100.0
	maxHabitScore     = 100.0
	minHabitScore     = 0.0
	habitRecovery     = 1.0
	habitPenaltyRate  = 0.05
)

// Config holds the engine policy constants.
type Config struct {
	Thresholds             Thresholds
	CooldownEmotionalIndex float64
	RecentTradeWindow      int
	EmotionalIndexWindow   int
	// MaxAlertHistory bounds the in-memory alert history. Zero keeps every alert.
	MaxAlertHistory int
}

// DefaultConfig returns the stock engine policy.
func DefaultConfig() Config {
	return Config{
		Thresholds:             DefaultThresholds(),
		CooldownEmotionalIndex: 75.0,
		RecentTradeWindow:      200,
		EmotionalIndexWindow:   10,
	}
}

// Stats is a point-in-time snapshot of the engine metrics.
type Stats struct {
	HabitScore          float64 `json:"habit_score"`
	EmotionalIndex      float64 `json:"emotional_index"`
	CooldownRecommended bool    `json:"cooldown_recommended"`
	TotalTradesAnalysed int     `json:"total_trades_analysed"`
	TotalAlerts         int     `json:"total_alerts"`
	PortfolioPositions  int     `json:"portfolio_positions"`
}

// Engine runs the behavioural detectors over a stream of trades and keeps the
// session's habit score. It has no internal locking: one Analyze call must
// finish before the next begins, so owners sharing an Engine across goroutines
// must serialize every call.
type Engine struct {
	cfg          Config
	portfolio    *Portfolio
	recentTrades *tradeWindow
	alertHistory []*entity.Alert
	recentScores []int
	totalAlerts  int
	habitScore   float64
	logger       *logger.Logger
	now          func() time.Time
	newID        func() string
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to stamp ingested trades.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an engine with an empty portfolio and a habit score of 100.
func New(cfg Config, log *logger.Logger, opts ...Option) *Engine {
	if cfg.EmotionalIndexWindow <= 0 {
		cfg.EmotionalIndexWindow = 10
	}
	e := &Engine{
		cfg:          cfg,
		portfolio:    NewPortfolio(log),
		recentTrades: newTradeWindow(cfg.RecentTradeWindow),
		habitScore:   initialHabitScore,
		logger:       log,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTrade builds a Trade stamped with the engine clock so history stays in ingestion order.
func (e *Engine) NewTrade(tradeID, symbol string, action entity.TradeAction, quantity, price float64, pnl *float64) *entity.Trade {
	return &entity.Trade{
		TradeID:   tradeID,
		Symbol:    entity.NormalizeSymbol(symbol),
		Action:    action,
		Quantity:  quantity,
		Price:     price,
		Timestamp: e.now(),
		PnL:       pnl,
	}
}

// Analyze runs every detector against trade, updates the portfolio and the
// habit score, and returns the alerts raised by this trade only.
func (e *Engine) Analyze(trade *entity.Trade, priceBefore float64) []*entity.Alert {
	e.recentTrades.push(trade)

	var triggered []*entity.Alert

	// Price-move detectors see the pre-trade reference price.
	if a := DetectPanicSell(trade, priceBefore, e.cfg.Thresholds.PanicSellDropPct); a != nil {
		triggered = append(triggered, a)
	}
	if a := DetectFomoBuy(trade, priceBefore, e.cfg.Thresholds.FomoBuyRisePct); a != nil {
		triggered = append(triggered, a)
	}

	e.portfolio.ApplyTrade(trade)

	if a := DetectConcentrationRisk(trade, e.portfolio, e.cfg.Thresholds.ConcentrationThreshold); a != nil {
		triggered = append(triggered, a)
	}

	e.record(triggered)
	e.updateHabitScore(triggered)

	e.logger.Info("Trade analysed",
		logger.StringField("trade_id", trade.TradeID),
		logger.StringField("symbol", trade.Symbol),
		logger.IntField("alerts", len(triggered)),
		logger.FloatField("habit_score", e.habitScore),
		logger.FloatField("emotional_index", e.EmotionalIndex()))

	return triggered
}

func (e *Engine) record(alerts []*entity.Alert) {
	for _, a := range alerts {
		a.ID = e.newID()
	}
	e.alertHistory = append(e.alertHistory, alerts...)
	e.totalAlerts += len(alerts)

	// Independent of alertHistory, which MaxAlertHistory may trim below the window.
	for _, a := range alerts {
		e.recentScores = append(e.recentScores, a.EmotionalRiskScore)
	}
	if n := e.cfg.EmotionalIndexWindow; len(e.recentScores) > n {
		e.recentScores = append(e.recentScores[:0], e.recentScores[len(e.recentScores)-n:]...)
	}

	if limit := e.cfg.MaxAlertHistory; limit > 0 && len(e.alertHistory) > limit {
		kept := make([]*entity.Alert, limit)
		copy(kept, e.alertHistory[len(e.alertHistory)-limit:])
		e.alertHistory = kept
	}
}

func (e *Engine) updateHabitScore(alerts []*entity.Alert) {
	if len(alerts) == 0 {
		e.habitScore = min(maxHabitScore, e.habitScore+habitRecovery)
		return
	}
	sum := 0
	for _, a := range alerts {
		sum += a.EmotionalRiskScore
	}
	avg := float64(sum) / float64(len(alerts))
	e.habitScore = max(minHabitScore, e.habitScore-avg*habitPenaltyRate)
}

// HabitScore is the long-memory discipline score in [0, 100].
func (e *Engine) HabitScore() float64 {
	return e.habitScore
}

// EmotionalIndex is the mean risk score of the most recent alerts, 0 when there are none.
func (e *Engine) EmotionalIndex() float64 {
	if len(e.recentScores) == 0 {
		return 0.0
	}
	sum := 0
	for _, score := range e.recentScores {
		sum += score
	}
	return float64(sum) / float64(len(e.recentScores))
}

// CooldownRecommended reports whether the emotional index is above the cooldown threshold.
func (e *Engine) CooldownRecommended() bool {
	return e.EmotionalIndex() > e.cfg.CooldownEmotionalIndex
}

// AlertHistory returns the recorded alerts oldest first. The slice is a copy;
// the alerts themselves are shared with the engine and must not be modified.
func (e *Engine) AlertHistory() []*entity.Alert {
	out := make([]*entity.Alert, len(e.alertHistory))
	copy(out, e.alertHistory)
	return out
}

// RecentTrades returns the rolling trade window oldest first.
func (e *Engine) RecentTrades() []*entity.Trade {
	return e.recentTrades.snapshot()
}

// Holdings returns a copy of the open positions.
func (e *Engine) Holdings() map[string]Holding {
	return e.portfolio.Holdings()
}

// Stats returns a snapshot of the engine metrics. It does not modify the engine.
func (e *Engine) Stats() Stats {
	return Stats{
		HabitScore:          round1(e.habitScore),
		EmotionalIndex:      round1(e.EmotionalIndex()),
		CooldownRecommended: e.CooldownRecommended(),
		TotalTradesAnalysed: e.recentTrades.len(),
		TotalAlerts:         e.totalAlerts,
		PortfolioPositions:  e.portfolio.Positions(),
	}
}

func round1(v float64) float64 {
	return roundFinite(v, 1)
}

// roundFinite rounds v to places decimals. Non-finite values are returned as is.
func roundFinite(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
