package service

import (
	"context"
	"fmt"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/internal/habit/config"
	"trading-habit-engine/internal/habit/repository"
	"trading-habit-engine/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const noExplanation = "No explanation available."

var fallbackExplanations = map[entity.AlertType]string{
	entity.AlertTypePanicSelling:      "This trade followed a sharp price drop, suggesting an emotional reaction to loss. Consider setting a pre-defined stop-loss to avoid manual panic selling.",
	entity.AlertTypeFomoBuying:        "This trade followed a price surge, suggesting a fear of missing out. Avoid chasing green candles; wait for a pullback or consolidation.",
	entity.AlertTypeConcentrationRisk: "A large portion of your capital is now in one asset. This increases vulnerability to specific news. Consider diversifying to manage risk.",
}

// FallbackExplanation returns the static coaching text for an alert type.
func FallbackExplanation(alertType entity.AlertType) string {
	if text, ok := fallbackExplanations[alertType]; ok {
		return text
	}
	return noExplanation
}

// ExplanationService attaches coaching text to alerts.
type ExplanationService interface {
	Explain(ctx context.Context, alert *entity.Alert) string
	ExplainAll(ctx context.Context, alerts []*entity.Alert) []string
	Enabled() bool
}

type explanationService struct {
	aiRepo repository.AIRepository
	cache  *cache.Cache
	logger *logger.Logger
}

// NewExplanationService creates a new ExplanationService. A nil aiRepo makes every
// explanation the static fallback text.
func NewExplanationService(cfg *config.Config, log *logger.Logger, aiRepo repository.AIRepository) ExplanationService {
	return &explanationService{
		aiRepo: aiRepo,
		cache:  cache.New(cfg.Explanation.CacheTTL, cfg.Explanation.CacheCleanupInterval),
		logger: log,
	}
}

func (s *explanationService) Enabled() bool {
	return s.aiRepo != nil
}

// Explain never fails. Only AI answers are cached; fallback text is not.
func (s *explanationService) Explain(ctx context.Context, alert *entity.Alert) string {
	key := alert.CacheKey()
	if cached, found := s.cache.Get(key); found {
		return cached.(string)
	}

	if s.aiRepo == nil {
		return FallbackExplanation(alert.Type)
	}

	text, err := s.aiRepo.ExplainAlert(ctx, alert)
	if err != nil {
		s.logger.Warn("AI explanation unavailable, using fallback",
			logger.StringField("alert_type", string(alert.Type)),
			logger.StringField("symbol", alert.Trade.Symbol),
			logger.ErrorField(err),
		)
		return FallbackExplanation(alert.Type)
	}

	s.cache.Set(key, text, cache.DefaultExpiration)
	return text
}

// ExplainAll explains every alert concurrently. The result is indexed like alerts.
func (s *explanationService) ExplainAll(ctx context.Context, alerts []*entity.Alert) []string {
	results := make([]string, len(alerts))
	if len(alerts) == 0 {
		return results
	}

	var eg errgroup.Group
	for i, alert := range alerts {
		i, alert := i, alert
		eg.Go(func() error {
			results[i] = s.explainSafe(ctx, alert)
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

func (s *explanationService) explainSafe(ctx context.Context, alert *entity.Alert) (text string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("AI enrichment panicked",
				logger.StringField("alert_type", string(alert.Type)),
				logger.ErrorField(fmt.Errorf("panic: %v", r)),
			)
			text = FallbackExplanation(alert.Type)
		}
	}()
	return s.Explain(ctx, alert)
}
