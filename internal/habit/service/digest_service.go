package service

import (
	"context"
	"fmt"

	"trading-habit-engine/pkg/logger"
	"trading-habit-engine/pkg/telegram"
	"trading-habit-engine/pkg/utils"

	"github.com/robfig/cron/v3"
)

// DigestService periodically posts the engine stats to Telegram.
type DigestService interface {
	Start() error
	Stop(ctx context.Context)
	SendDigest(ctx context.Context) error
}

type digestService struct {
	cron         *cron.Cron
	schedule     string
	tradeService TradeService
	notifier     telegram.Notifier
	logger       *logger.Logger
}

// NewDigestService creates a digest posting on schedule, a five-field cron expression evaluated in IST.
func NewDigestService(schedule string, tradeService TradeService, notifier telegram.Notifier, log *logger.Logger) DigestService {
	return &digestService{
		cron: cron.New(
			cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor)),
			cron.WithLocation(utils.LocationIST()),
		),
		schedule:     schedule,
		tradeService: tradeService,
		notifier:     notifier,
		logger:       log,
	}
}

func (s *digestService) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.SendDigest(context.Background()); err != nil {
			s.logger.Error("Failed to send habit digest", logger.ErrorField(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.logger.Info("Habit digest scheduled", logger.StringField("schedule", s.schedule))
	return nil
}

// Stop waits for a running digest to finish or ctx to expire.
func (s *digestService) Stop(ctx context.Context) {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
}

func (s *digestService) SendDigest(ctx context.Context) error {
	stats := s.tradeService.Stats(ctx)
	msg := telegram.FormatHabitDigestForTelegram(stats, utils.TimeNowIST())
	if err := s.notifier.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	return nil
}
