package engine

import (
	"trading-habit-engine/internal/entity"
	"trading-habit-engine/pkg/logger"
)

const avgPricePlaces = 4

// Holding is the open position in one symbol.
type Holding struct {
	Quantity float64 `json:"quantity"`
	AvgPrice float64 `json:"avg_price"`
}

// Portfolio tracks holdings with a weighted average cost basis.
// It is not safe for concurrent use; the engine's owner serializes access.
type Portfolio struct {
	holdings map[string]Holding
	logger   *logger.Logger
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio(log *logger.Logger) *Portfolio {
	return &Portfolio{
		holdings: make(map[string]Holding),
		logger:   log,
	}
}

// ApplyTrade updates the position for trade.Symbol.
// A SELL on a symbol that is not held is logged and ignored.
func (p *Portfolio) ApplyTrade(trade *entity.Trade) {
	switch trade.Action {
	case entity.ActionBuy:
		h := p.holdings[trade.Symbol]
		newQty := h.Quantity + trade.Quantity
		newAvg := (h.Quantity*h.AvgPrice + trade.Quantity*trade.Price) / newQty
		p.holdings[trade.Symbol] = Holding{
			Quantity: newQty,
			AvgPrice: roundFinite(newAvg, avgPricePlaces),
		}

	case entity.ActionSell:
		h, ok := p.holdings[trade.Symbol]
		if !ok {
			p.logger.Warn("SELL on unknown position",
				logger.StringField("symbol", trade.Symbol),
				logger.StringField("trade_id", trade.TradeID))
			return
		}
		h.Quantity -= trade.Quantity
		if h.Quantity <= 0 {
			delete(p.holdings, trade.Symbol)
			return
		}
		p.holdings[trade.Symbol] = h
	}
}

// TotalValueProxy is the sum of quantity * avg price. It is a cost-basis figure, not market value.
func (p *Portfolio) TotalValueProxy() float64 {
	total := 0.0
	for _, h := range p.holdings {
		total += h.Quantity * h.AvgPrice
	}
	return total
}

// Concentration returns the fraction (0..1) of the cost-basis value held in symbol.
func (p *Portfolio) Concentration(symbol string) float64 {
	total := p.TotalValueProxy()
	h, ok := p.holdings[symbol]
	if total <= 0 || !ok {
		return 0.0
	}
	return (h.Quantity * h.AvgPrice) / total
}

// Holding returns the position for symbol, if any.
func (p *Portfolio) Holding(symbol string) (Holding, bool) {
	h, ok := p.holdings[symbol]
	return h, ok
}

// Positions is the number of open positions.
func (p *Portfolio) Positions() int {
	return len(p.holdings)
}

// Holdings returns a copy of all open positions.
func (p *Portfolio) Holdings() map[string]Holding {
	out := make(map[string]Holding, len(p.holdings))
	for sym, h := range p.holdings {
		out[sym] = h
	}
	return out
}
