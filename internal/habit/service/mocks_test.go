package service

import (
	"context"

	"trading-habit-engine/internal/entity"

	"github.com/stretchr/testify/mock"
)

type mockAIRepository struct {
	mock.Mock
}

func (m *mockAIRepository) ExplainAlert(ctx context.Context, alert *entity.Alert) (string, error) {
	args := m.Called(ctx, alert)
	return args.String(0), args.Error(1)
}

// aiRepositoryFunc adapts a function to repository.AIRepository.
type aiRepositoryFunc func(ctx context.Context, alert *entity.Alert) (string, error)

func (f aiRepositoryFunc) ExplainAlert(ctx context.Context, alert *entity.Alert) (string, error) {
	return f(ctx, alert)
}

type mockAlertRepository struct {
	mock.Mock
}

func (m *mockAlertRepository) CreateBatch(ctx context.Context, records []entity.AlertRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

type mockAlertStream struct {
	mock.Mock
}

func (m *mockAlertStream) Publish(ctx context.Context, alert *entity.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendMessage(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
