package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/pkg/common"

	goRedis "github.com/redis/go-redis/v9"
)

// AlertEvent is the payload published for every triggered alert.
type AlertEvent struct {
	AlertID            string        `json:"alert_id"`
	AlertType          string        `json:"alert_type"`
	Severity           string        `json:"severity"`
	EmotionalRiskScore int           `json:"emotional_risk_score"`
	Message            string        `json:"message"`
	AIExplanation      string        `json:"ai_explanation"`
	Trade              *entity.Trade `json:"trade"`
	TriggeredAt        string        `json:"triggered_at"`
}

// AlertStreamRepository publishes alerts for downstream consumers.
type AlertStreamRepository interface {
	Publish(ctx context.Context, alert *entity.Alert) error
}

type alertStreamRepository struct {
	redisClient *goRedis.Client
	maxLen      int64
}

func NewAlertStreamRepository(redisClient *goRedis.Client, maxLen int64) AlertStreamRepository {
	return &alertStreamRepository{redisClient: redisClient, maxLen: maxLen}
}

func (r *alertStreamRepository) Publish(ctx context.Context, alert *entity.Alert) error {
	payload, err := json.Marshal(AlertEvent{
		AlertID:            alert.ID,
		AlertType:          string(alert.Type),
		Severity:           string(alert.Severity),
		EmotionalRiskScore: alert.EmotionalRiskScore,
		Message:            alert.Message,
		AIExplanation:      alert.AIExplanation,
		Trade:              alert.Trade,
		TriggeredAt:        alert.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	args := &goRedis.XAddArgs{
		Stream: common.RedisStreamBehavioralAlert,
		Values: map[string]interface{}{"payload": payload},
	}
	if r.maxLen > 0 {
		args.MaxLen = r.maxLen
		args.Approx = true
	}

	if err := r.redisClient.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to publish alert %s: %w", alert.ID, err)
	}
	return nil
}
