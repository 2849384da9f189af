package engine

import (
	"testing"
	"time"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trade(id, symbol string, action entity.TradeAction, qty, price float64) *entity.Trade {
	return &entity.Trade{
		TradeID:   id,
		Symbol:    symbol,
		Action:    action,
		Quantity:  qty,
		Price:     price,
		Timestamp: time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC),
	}
}

func TestPortfolio_WeightedAverageCost(t *testing.T) {
	p := NewPortfolio(logger.NewNop())

	p.ApplyTrade(trade("T1", "TCS", entity.ActionBuy, 10, 100))
	p.ApplyTrade(trade("T2", "TCS", entity.ActionBuy, 10, 200))

	h, ok := p.Holding("TCS")
	require.True(t, ok)
	assert.Equal(t, 20.0, h.Quantity)
	assert.Equal(t, 150.0, h.AvgPrice)
}

func TestPortfolio_AverageRoundedToFourPlaces(t *testing.T) {
	p := NewPortfolio(logger.NewNop())
	p.ApplyTrade(trade("T1", "SBIN", entity.ActionBuy, 3, 10))
	p.ApplyTrade(trade("T2", "SBIN", entity.ActionBuy, 0.5, 11))

	h, _ := p.Holding("SBIN")
	assert.Equal(t, 3.5, h.Quantity)
	assert.Equal(t, 10.1429, h.AvgPrice)
}

func TestPortfolio_SellClosesPosition(t *testing.T) {
	p := NewPortfolio(logger.NewNop())

	p.ApplyTrade(trade("T1", "TCS", entity.ActionBuy, 10, 100))
	p.ApplyTrade(trade("T2", "TCS", entity.ActionSell, 10, 120))

	_, ok := p.Holding("TCS")
	assert.False(t, ok)
	assert.Equal(t, 0, p.Positions())
	assert.Equal(t, 0.0, p.TotalValueProxy())
}

func TestPortfolio_PartialSellKeepsCostBasis(t *testing.T) {
	p := NewPortfolio(logger.NewNop())

	p.ApplyTrade(trade("T1", "TCS", entity.ActionBuy, 10, 100))
	p.ApplyTrade(trade("T2", "TCS", entity.ActionSell, 4, 90))

	h, ok := p.Holding("TCS")
	require.True(t, ok)
	assert.Equal(t, 6.0, h.Quantity)
	assert.Equal(t, 100.0, h.AvgPrice)
}

func TestPortfolio_OversellClampsToClosed(t *testing.T) {
	p := NewPortfolio(logger.NewNop())

	p.ApplyTrade(trade("T1", "TCS", entity.ActionBuy, 5, 100))
	p.ApplyTrade(trade("T2", "TCS", entity.ActionSell, 8, 100))

	_, ok := p.Holding("TCS")
	assert.False(t, ok)

	// re-entry starts a fresh cost basis
	p.ApplyTrade(trade("T3", "TCS", entity.ActionBuy, 2, 300))
	h, _ := p.Holding("TCS")
	assert.Equal(t, 2.0, h.Quantity)
	assert.Equal(t, 300.0, h.AvgPrice)
}

func TestPortfolio_SellUnknownIsNoop(t *testing.T) {
	p := NewPortfolio(logger.NewNop())
	p.ApplyTrade(trade("T1", "TCS", entity.ActionBuy, 5, 100))

	p.ApplyTrade(trade("T2", "WIPRO", entity.ActionSell, 5, 100))

	assert.Equal(t, 1, p.Positions())
	assert.Equal(t, 500.0, p.TotalValueProxy())
}

func TestPortfolio_Concentration(t *testing.T) {
	p := NewPortfolio(logger.NewNop())
	assert.Equal(t, 0.0, p.Concentration("TCS"), "empty portfolio never divides by zero")

	p.ApplyTrade(trade("T1", "TCS", entity.ActionBuy, 10, 100))
	p.ApplyTrade(trade("T2", "INFY", entity.ActionBuy, 30, 100))

	assert.InDelta(t, 0.25, p.Concentration("TCS"), 1e-9)
	assert.InDelta(t, 0.75, p.Concentration("INFY"), 1e-9)
	assert.Equal(t, 0.0, p.Concentration("WIPRO"))
}

func TestPortfolio_InvariantsHoldOverSequence(t *testing.T) {
	p := NewPortfolio(logger.NewNop())
	seq := []*entity.Trade{
		trade("1", "A", entity.ActionBuy, 10, 50),
		trade("2", "B", entity.ActionBuy, 5, 20),
		trade("3", "A", entity.ActionSell, 3, 40),
		trade("4", "C", entity.ActionSell, 1, 10),
		trade("5", "B", entity.ActionSell, 9, 25),
		trade("6", "A", entity.ActionSell, 7, 60),
		trade("7", "D", entity.ActionBuy, 1, 1),
	}
	for _, tr := range seq {
		p.ApplyTrade(tr)
		assert.GreaterOrEqual(t, p.TotalValueProxy(), 0.0)
		for sym, h := range p.Holdings() {
			assert.Greater(t, h.Quantity, 0.0, "holding %s must be positive", sym)
		}
	}
	assert.Equal(t, 1, p.Positions())
}
