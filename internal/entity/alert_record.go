package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// AlertRecord is the archived form of an Alert. The archive is write-only; the engine never reads it back.
type AlertRecord struct {
	ID                 string         `gorm:"primaryKey;type:uuid" json:"id"`
	AlertType          string         `gorm:"not null" json:"alert_type"`
	Severity           string         `gorm:"not null" json:"severity"`
	Message            string         `gorm:"not null" json:"message"`
	EmotionalRiskScore int            `gorm:"not null" json:"emotional_risk_score"`
	TradeID            string         `gorm:"not null" json:"trade_id"`
	Symbol             string         `gorm:"not null;index" json:"symbol"`
	AIExplanation      string         `json:"ai_explanation"`
	Trade              datatypes.JSON `gorm:"type:jsonb" json:"trade"`
	TriggeredAt        time.Time      `gorm:"not null" json:"triggered_at"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (AlertRecord) TableName() string {
	return "behavioral_alerts"
}

// NewAlertRecord builds the archived form of an alert.
func NewAlertRecord(alert *Alert) (AlertRecord, error) {
	tradeJSON, err := json.Marshal(alert.Trade)
	if err != nil {
		return AlertRecord{}, fmt.Errorf("failed to marshal trade: %w", err)
	}
	return AlertRecord{
		ID:                 alert.ID,
		AlertType:          string(alert.Type),
		Severity:           string(alert.Severity),
		Message:            alert.Message,
		EmotionalRiskScore: alert.EmotionalRiskScore,
		TradeID:            alert.Trade.TradeID,
		Symbol:             alert.Trade.Symbol,
		AIExplanation:      alert.AIExplanation,
		Trade:              datatypes.JSON(tradeJSON),
		TriggeredAt:        alert.Timestamp,
	}, nil
}
