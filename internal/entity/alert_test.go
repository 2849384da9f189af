package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestAlert(alertType AlertType, symbol string, score int) *Alert {
	return &Alert{
		Type:               alertType,
		Severity:           SeverityHigh,
		EmotionalRiskScore: score,
		Trade: &Trade{
			TradeID:   "T1",
			Symbol:    symbol,
			Action:    ActionSell,
			Quantity:  10,
			Price:     100,
			Timestamp: time.Now(),
		},
	}
}

func TestAlertCacheKey(t *testing.T) {
	a71 := newTestAlert(AlertTypePanicSelling, "INFY", 71)
	a79 := newTestAlert(AlertTypePanicSelling, "INFY", 79)
	a69 := newTestAlert(AlertTypePanicSelling, "INFY", 69)

	assert.Equal(t, a71.CacheKey(), a79.CacheKey(), "same decile shares a key")
	assert.NotEqual(t, a69.CacheKey(), a71.CacheKey(), "different decile changes the key")

	assert.NotEqual(t, a71.CacheKey(), newTestAlert(AlertTypeFomoBuying, "INFY", 71).CacheKey())
	assert.NotEqual(t, a71.CacheKey(), newTestAlert(AlertTypePanicSelling, "TCS", 71).CacheKey())
	assert.Len(t, a71.CacheKey(), 32)
}

func TestParseTradeAction(t *testing.T) {
	action, ok := ParseTradeAction(" buy ")
	assert.True(t, ok)
	assert.Equal(t, ActionBuy, action)

	action, ok = ParseTradeAction("Sell")
	assert.True(t, ok)
	assert.Equal(t, ActionSell, action)

	_, ok = ParseTradeAction("HOLD")
	assert.False(t, ok)
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "RELIANCE", NormalizeSymbol("  reliance "))
}

func TestNewAlertRecord(t *testing.T) {
	alert := newTestAlert(AlertTypePanicSelling, "INFY", 87)
	alert.ID = "a-1"

	rec, err := NewAlertRecord(alert)
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, "a-1", rec.ID)
	assert.Equal(t, "PANIC SELLING", rec.AlertType)
	assert.Equal(t, "HIGH", rec.Severity)
	assert.Equal(t, "T1", rec.TradeID)
	assert.Equal(t, "INFY", rec.Symbol)
	assert.Contains(t, string(rec.Trade), `"symbol":"INFY"`)
}
