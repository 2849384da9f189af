package entity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// AlertType names the behavioural pattern an alert flags.
type AlertType string

const (
	AlertTypePanicSelling      AlertType = "PANIC SELLING"
	AlertTypeFomoBuying        AlertType = "FOMO BUYING"
	AlertTypeConcentrationRisk AlertType = "CONCENTRATION RISK"
)

// Severity is an ordinal label attached to an alert.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Alert is produced by a detector. Only AIExplanation changes after construction,
// and only through the explanation service.
type Alert struct {
	ID                 string
	Type               AlertType
	Severity           Severity
	Message            string
	EmotionalRiskScore int
	Trade              *Trade
	Timestamp          time.Time
	AIExplanation      string
}

// RiskBucket is the risk score decile used to share cached explanations between similar alerts.
func (a *Alert) RiskBucket() int {
	return a.EmotionalRiskScore / 10
}

// CacheKey fingerprints (type, symbol, risk decile).
func (a *Alert) CacheKey() string {
	raw := fmt.Sprintf("%s:%s:%d", a.Type, a.Trade.Symbol, a.RiskBucket())
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
