package dto

import (
	"fmt"
	"strings"

	"trading-habit-engine/internal/entity"
)

const maxSymbolLength = 20

// TradeRequest is the body of POST /trades/analyze.
type TradeRequest struct {
	TradeID     string   `json:"trade_id" example:"T-1001"`
	Symbol      string   `json:"symbol" example:"RELIANCE"`
	Action      string   `json:"action" example:"SELL"`
	Quantity    float64  `json:"quantity" example:"10"`
	Price       float64  `json:"price" example:"2400"`
	PriceBefore float64  `json:"price_before" example:"2500"`
	PnL         *float64 `json:"pnl,omitempty"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every rejected field of a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Validate checks the request and normalizes symbol and action in place.
func (r *TradeRequest) Validate() error {
	verr := &ValidationError{}

	if strings.TrimSpace(r.TradeID) == "" {
		verr.add("trade_id", "must not be empty")
	}

	symbol := entity.NormalizeSymbol(r.Symbol)
	switch {
	case symbol == "":
		verr.add("symbol", "must not be empty")
	case len(symbol) > maxSymbolLength:
		verr.add("symbol", fmt.Sprintf("must be at most %d characters", maxSymbolLength))
	default:
		r.Symbol = symbol
	}

	if action, ok := entity.ParseTradeAction(r.Action); ok {
		r.Action = string(action)
	} else {
		verr.add("action", "action must be 'BUY' or 'SELL'")
	}

	if r.Quantity <= 0 {
		verr.add("quantity", "must be greater than 0")
	}
	if r.Price <= 0 {
		verr.add("price", "must be greater than 0")
	}
	if r.PriceBefore <= 0 {
		verr.add("price_before", "must be greater than 0")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
