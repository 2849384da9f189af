package engine

import (
	"fmt"
	"math"

	"trading-habit-engine/internal/entity"
)

// Thresholds are the externally configured trigger levels for the detectors.
type Thresholds struct {
	PanicSellDropPct       float64
	FomoBuyRisePct         float64
	ConcentrationThreshold float64
}

// DefaultThresholds returns the stock trigger levels.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PanicSellDropPct:       3.0,
		FomoBuyRisePct:         4.0,
		ConcentrationThreshold: 0.40,
	}
}

// riskScore is floor(base+scaled) clamped to [0, 100]. A NaN sum scores 100.
func riskScore(base, scaled float64) int {
	v := math.Floor(base + scaled)
	if math.IsNaN(v) {
		return 100
	}
	return int(math.Max(0, math.Min(100, v)))
}

func newAlert(alertType entity.AlertType, severity entity.Severity, message string, score int, trade *entity.Trade) *entity.Alert {
	return &entity.Alert{
		Type:               alertType,
		Severity:           severity,
		Message:            message,
		EmotionalRiskScore: score,
		Trade:              trade,
		Timestamp:          trade.Timestamp,
	}
}

// DetectPanicSell flags a SELL executed after the price dropped by at least dropPct percent.
func DetectPanicSell(trade *entity.Trade, priceBefore, dropPct float64) *entity.Alert {
	if trade.Action != entity.ActionSell || priceBefore <= 0 {
		return nil
	}
	drop := (priceBefore - trade.Price) / priceBefore * 100
	if !(drop >= dropPct) {
		return nil
	}
	return newAlert(
		entity.AlertTypePanicSelling,
		entity.SeverityHigh,
		fmt.Sprintf("Sold %s after a %.1f%% price drop.", trade.Symbol, drop),
		riskScore(60, drop*3),
		trade,
	)
}

// DetectFomoBuy flags a BUY executed after the price rose by at least risePct percent.
func DetectFomoBuy(trade *entity.Trade, priceBefore, risePct float64) *entity.Alert {
	if trade.Action != entity.ActionBuy || priceBefore <= 0 {
		return nil
	}
	rise := (trade.Price - priceBefore) / priceBefore * 100
	if !(rise >= risePct) {
		return nil
	}
	return newAlert(
		entity.AlertTypeFomoBuying,
		entity.SeverityHigh,
		fmt.Sprintf("Bought %s after a %.1f%% price surge.", trade.Symbol, rise),
		riskScore(55, rise*3),
		trade,
	)
}

// DetectConcentrationRisk flags a position holding at least threshold of the portfolio.
// The portfolio must already include trade.
func DetectConcentrationRisk(trade *entity.Trade, portfolio *Portfolio, threshold float64) *entity.Alert {
	conc := portfolio.Concentration(trade.Symbol)
	if !(conc >= threshold) {
		return nil
	}
	return newAlert(
		entity.AlertTypeConcentrationRisk,
		entity.SeverityMedium,
		fmt.Sprintf("%s now represents %.0f%% of your portfolio.", trade.Symbol, conc*100),
		riskScore(50, conc*100*0.5),
		trade,
	)
}
