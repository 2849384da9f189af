package entity

import (
	"strings"
	"time"
)

// TradeAction is the side of an executed order.
type TradeAction string

const (
	ActionBuy  TradeAction = "BUY"
	ActionSell TradeAction = "SELL"
)

// ParseTradeAction normalizes s and reports whether it names a known action.
func ParseTradeAction(s string) (TradeAction, bool) {
	switch TradeAction(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionBuy:
		return ActionBuy, true
	case ActionSell:
		return ActionSell, true
	}
	return "", false
}

// NormalizeSymbol uppercases and trims a ticker.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Trade is one executed order. It is never modified after construction.
// Quantity and Price are positive; callers validate before handing a Trade to the engine.
type Trade struct {
	TradeID   string      `json:"trade_id"`
	Symbol    string      `json:"symbol"`
	Action    TradeAction `json:"action"`
	Quantity  float64     `json:"quantity"`
	Price     float64     `json:"price"`
	Timestamp time.Time   `json:"timestamp"`
	PnL       *float64    `json:"pnl,omitempty"`
}
