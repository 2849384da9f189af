package repository

import (
	"context"

	"trading-habit-engine/internal/entity"
)

// AIRepository produces coaching text for a behavioural alert.
type AIRepository interface {
	ExplainAlert(ctx context.Context, alert *entity.Alert) (string, error)
}
