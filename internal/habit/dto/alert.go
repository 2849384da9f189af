package dto

import (
	"time"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/internal/habit/engine"
)

// AlertResponse is the wire form of an alert.
type AlertResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Severity      string  `json:"severity"`
	RiskScore     int     `json:"risk_score"`
	Message       string  `json:"message"`
	AIExplanation string  `json:"ai_explanation"`
	Symbol        string  `json:"symbol"`
	Action        string  `json:"action"`
	Quantity      float64 `json:"quantity"`
	Price         float64 `json:"price"`
	Time          string  `json:"time"`
}

// NewAlertResponse maps an alert to its wire form.
func NewAlertResponse(alert *entity.Alert) AlertResponse {
	resp := AlertResponse{
		ID:            alert.ID,
		Type:          string(alert.Type),
		Severity:      string(alert.Severity),
		RiskScore:     alert.EmotionalRiskScore,
		Message:       alert.Message,
		AIExplanation: alert.AIExplanation,
		Time:          alert.Timestamp.Format(time.RFC3339Nano),
	}
	if alert.Trade != nil {
		resp.Symbol = alert.Trade.Symbol
		resp.Action = string(alert.Trade.Action)
		resp.Quantity = alert.Trade.Quantity
		resp.Price = alert.Trade.Price
	}
	return resp
}

// NewAlertResponses maps alerts preserving order.
func NewAlertResponses(alerts []*entity.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, NewAlertResponse(a))
	}
	return out
}

// TradeAnalysisResponse is returned by POST /trades/analyze.
type TradeAnalysisResponse struct {
	Alerts              []AlertResponse `json:"alerts"`
	HabitScore          float64         `json:"habit_score"`
	EmotionalIndex      float64         `json:"emotional_index"`
	CooldownRecommended bool            `json:"cooldown_recommended"`
	Stats               engine.Stats    `json:"stats"`
}

// AlertHistoryResponse is returned by GET /trades/history.
type AlertHistoryResponse struct {
	Count  int             `json:"count"`
	Alerts []AlertResponse `json:"alerts"`
}
