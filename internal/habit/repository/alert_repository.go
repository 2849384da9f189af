package repository

import (
	"context"

	"trading-habit-engine/internal/entity"

	"gorm.io/gorm"
)

// AlertRepository archives triggered alerts.
type AlertRepository interface {
	CreateBatch(ctx context.Context, records []entity.AlertRecord) error
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) CreateBatch(ctx context.Context, records []entity.AlertRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}
