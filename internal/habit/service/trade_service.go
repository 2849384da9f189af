package service

import (
	"context"
	"sync"
	"time"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/internal/habit/dto"
	"trading-habit-engine/internal/habit/engine"
	"trading-habit-engine/internal/habit/repository"
	"trading-habit-engine/pkg/logger"
	"trading-habit-engine/pkg/telegram"
	"trading-habit-engine/pkg/utils"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200

	sinkTimeout = 10 * time.Second
)

// TradeService feeds trades to the shared engine and fans triggered alerts out to the configured sinks.
type TradeService interface {
	AnalyzeTrade(ctx context.Context, req *dto.TradeRequest) (*dto.TradeAnalysisResponse, error)
	Stats(ctx context.Context) engine.Stats
	History(ctx context.Context, limit int) *dto.AlertHistoryResponse
	AlertTypeCounts(ctx context.Context) ([]entity.AlertType, map[entity.AlertType]int)
	Close()
}

type tradeService struct {
	mu          sync.Mutex
	engine      *engine.Engine
	explainer   ExplanationService
	alertRepo   repository.AlertRepository
	alertStream repository.AlertStreamRepository
	notifier    telegram.Notifier
	logger      *logger.Logger
	sinks       sync.WaitGroup
}

// TradeServiceOption wires an optional alert sink.
type TradeServiceOption func(*tradeService)

// WithAlertRepository archives every alert.
func WithAlertRepository(repo repository.AlertRepository) TradeServiceOption {
	return func(s *tradeService) { s.alertRepo = repo }
}

// WithAlertStream publishes every alert to the event stream.
func WithAlertStream(repo repository.AlertStreamRepository) TradeServiceOption {
	return func(s *tradeService) { s.alertStream = repo }
}

// WithNotifier pushes every alert to Telegram.
func WithNotifier(notifier telegram.Notifier) TradeServiceOption {
	return func(s *tradeService) { s.notifier = notifier }
}

// NewTradeService creates a new TradeService around eng. The service owns eng from here on.
func NewTradeService(eng *engine.Engine, explainer ExplanationService, log *logger.Logger, opts ...TradeServiceOption) TradeService {
	s := &tradeService{
		engine:    eng,
		explainer: explainer,
		logger:    log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AnalyzeTrade expects a request that already passed Validate.
func (s *tradeService) AnalyzeTrade(ctx context.Context, req *dto.TradeRequest) (*dto.TradeAnalysisResponse, error) {
	action, _ := entity.ParseTradeAction(req.Action)

	s.mu.Lock()
	trade := s.engine.NewTrade(req.TradeID, req.Symbol, action, req.Quantity, req.Price, req.PnL)
	alerts := s.engine.Analyze(trade, req.PriceBefore)
	stats := s.engine.Stats()
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "Trade request processed",
		logger.StringField("trade_id", trade.TradeID),
		logger.StringField("symbol", trade.Symbol),
		logger.StringField("action", string(trade.Action)),
		logger.IntField("alerts", len(alerts)),
	)

	explanations := s.explainer.ExplainAll(ctx, alerts)

	s.mu.Lock()
	for i, alert := range alerts {
		alert.AIExplanation = explanations[i]
	}
	resp := &dto.TradeAnalysisResponse{
		Alerts:              dto.NewAlertResponses(alerts),
		HabitScore:          stats.HabitScore,
		EmotionalIndex:      stats.EmotionalIndex,
		CooldownRecommended: stats.CooldownRecommended,
		Stats:               stats,
	}
	snapshot := copyAlerts(alerts)
	s.mu.Unlock()

	if len(snapshot) > 0 {
		s.dispatch(ctx, snapshot)
	}

	return resp, nil
}

func copyAlerts(alerts []*entity.Alert) []*entity.Alert {
	out := make([]*entity.Alert, 0, len(alerts))
	for _, a := range alerts {
		cp := *a
		out = append(out, &cp)
	}
	return out
}

// dispatch delivers alerts to the sinks in the background. Sink failures are logged only.
func (s *tradeService) dispatch(ctx context.Context, alerts []*entity.Alert) {
	if s.alertRepo == nil && s.alertStream == nil && s.notifier == nil {
		return
	}

	s.sinks.Add(1)
	utils.GoSafe(s.logger, func() {
		defer s.sinks.Done()

		sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
		defer cancel()

		s.archive(sinkCtx, alerts)
		s.publish(sinkCtx, alerts)
		s.notify(alerts)
	})
}

func (s *tradeService) archive(ctx context.Context, alerts []*entity.Alert) {
	if s.alertRepo == nil {
		return
	}

	records := make([]entity.AlertRecord, 0, len(alerts))
	for _, alert := range alerts {
		rec, err := entity.NewAlertRecord(alert)
		if err != nil {
			s.logger.Error("Failed to build alert record", logger.StringField("alert_id", alert.ID), logger.ErrorField(err))
			continue
		}
		records = append(records, rec)
	}

	if err := s.alertRepo.CreateBatch(ctx, records); err != nil {
		s.logger.Error("Failed to archive alerts", logger.IntField("count", len(records)), logger.ErrorField(err))
	}
}

func (s *tradeService) publish(ctx context.Context, alerts []*entity.Alert) {
	if s.alertStream == nil {
		return
	}
	for _, alert := range alerts {
		if err := s.alertStream.Publish(ctx, alert); err != nil {
			s.logger.Error("Failed to publish alert", logger.StringField("alert_id", alert.ID), logger.ErrorField(err))
		}
	}
}

func (s *tradeService) notify(alerts []*entity.Alert) {
	if s.notifier == nil {
		return
	}
	for _, alert := range alerts {
		if err := s.notifier.SendMessage(telegram.FormatBehavioralAlertForTelegram(alert)); err != nil {
			s.logger.Error("Failed to send telegram alert", logger.StringField("alert_id", alert.ID), logger.ErrorField(err))
		}
	}
}

func (s *tradeService) Stats(ctx context.Context) engine.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Stats()
}

// History returns up to limit alerts, newest first. limit is clamped to [1, MaxHistoryLimit].
func (s *tradeService) History(ctx context.Context, limit int) *dto.AlertHistoryResponse {
	limit = max(1, min(limit, MaxHistoryLimit))

	s.mu.Lock()
	history := s.engine.AlertHistory()
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	recent := make([]*entity.Alert, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		recent = append(recent, history[i])
	}
	alerts := dto.NewAlertResponses(recent)
	s.mu.Unlock()

	return &dto.AlertHistoryResponse{
		Count:  len(alerts),
		Alerts: alerts,
	}
}

// AlertTypeCounts returns the alert types in first-seen order with their counts.
func (s *tradeService) AlertTypeCounts(ctx context.Context) ([]entity.AlertType, map[entity.AlertType]int) {
	s.mu.Lock()
	history := s.engine.AlertHistory()
	s.mu.Unlock()

	var order []entity.AlertType
	counts := make(map[entity.AlertType]int)
	for _, alert := range history {
		if _, seen := counts[alert.Type]; !seen {
			order = append(order, alert.Type)
		}
		counts[alert.Type]++
	}
	return order, counts
}

// Close waits for in-flight sink deliveries.
func (s *tradeService) Close() {
	s.sinks.Wait()
}
