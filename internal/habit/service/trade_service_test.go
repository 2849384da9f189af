package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/internal/habit/dto"
	"trading-habit-engine/internal/habit/engine"
	"trading-habit-engine/internal/habit/repository"
	"trading-habit-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTradeService(opts ...TradeServiceOption) TradeService {
	log := logger.NewNop()
	eng := engine.New(engine.DefaultConfig(), log)
	explainer := NewExplanationService(testConfig(), log, nil)
	return NewTradeService(eng, explainer, log, opts...)
}

func tradeRequest(id, symbol, action string, qty, price, before float64) *dto.TradeRequest {
	return &dto.TradeRequest{
		TradeID:     id,
		Symbol:      symbol,
		Action:      action,
		Quantity:    qty,
		Price:       price,
		PriceBefore: before,
	}
}

func TestAnalyzeTrade_ConcentrationOnFirstBuy(t *testing.T) {
	svc := newTestTradeService()

	resp, err := svc.AnalyzeTrade(context.Background(), tradeRequest("T1", "TCS", "BUY", 10, 100, 100))
	require.NoError(t, err)

	require.Len(t, resp.Alerts, 1)
	alert := resp.Alerts[0]
	assert.Equal(t, "CONCENTRATION RISK", alert.Type)
	assert.Equal(t, 100, alert.RiskScore)
	assert.Equal(t, "TCS", alert.Symbol)
	assert.NotEmpty(t, alert.ID)
	assert.Equal(t, FallbackExplanation(entity.AlertTypeConcentrationRisk), alert.AIExplanation)

	assert.Equal(t, 95.0, resp.HabitScore)
	assert.Equal(t, 100.0, resp.EmotionalIndex)
	assert.True(t, resp.CooldownRecommended)
	assert.Equal(t, 1, resp.Stats.TotalTradesAnalysed)
	assert.Equal(t, 1, resp.Stats.TotalAlerts)
	assert.Equal(t, 1, resp.Stats.PortfolioPositions)
}

func TestAnalyzeTrade_CleanTradeSkipsSinks(t *testing.T) {
	repo := new(mockAlertRepository)
	stream := new(mockAlertStream)
	notifier := new(mockNotifier)
	svc := newTestTradeService(WithAlertRepository(repo), WithAlertStream(stream), WithNotifier(notifier))

	resp, err := svc.AnalyzeTrade(context.Background(), tradeRequest("T1", "XYZ", "SELL", 1, 100, 100))
	require.NoError(t, err)
	svc.Close()

	assert.Empty(t, resp.Alerts)
	assert.Equal(t, 100.0, resp.HabitScore)
	assert.False(t, resp.CooldownRecommended)
	repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	stream.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendMessage", mock.Anything)
}

func TestAnalyzeTrade_SinkFailuresDoNotFailRequest(t *testing.T) {
	repo := new(mockAlertRepository)
	repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(records []entity.AlertRecord) bool {
		return len(records) == 1 && records[0].Symbol == "TCS" && records[0].AIExplanation != ""
	})).Return(errors.New("db down")).Once()

	stream := new(mockAlertStream)
	stream.On("Publish", mock.Anything, mock.MatchedBy(func(a *entity.Alert) bool {
		return a.Type == entity.AlertTypeConcentrationRisk
	})).Return(errors.New("redis down")).Once()

	notifier := new(mockNotifier)
	notifier.On("SendMessage", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "CONCENTRATION RISK")
	})).Return(errors.New("telegram down")).Once()

	svc := newTestTradeService(WithAlertRepository(repo), WithAlertStream(stream), WithNotifier(notifier))

	resp, err := svc.AnalyzeTrade(context.Background(), tradeRequest("T1", "TCS", "BUY", 10, 100, 100))
	require.NoError(t, err)
	assert.Len(t, resp.Alerts, 1)

	svc.Close()
	repo.AssertExpectations(t)
	stream.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func seedHistory(t *testing.T, svc TradeService) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.AnalyzeTrade(ctx, tradeRequest("T1", "TCS", "BUY", 10, 100, 100))
	require.NoError(t, err)

	resp, err := svc.AnalyzeTrade(ctx, tradeRequest("T2", "TCS", "SELL", 5, 90, 100))
	require.NoError(t, err)
	require.Len(t, resp.Alerts, 2)
	require.Equal(t, "PANIC SELLING", resp.Alerts[0].Type)
	require.Equal(t, "CONCENTRATION RISK", resp.Alerts[1].Type)
}

func TestHistory_NewestFirstAndClamped(t *testing.T) {
	svc := newTestTradeService()
	seedHistory(t, svc)
	ctx := context.Background()

	two := svc.History(ctx, 2)
	require.Equal(t, 2, two.Count)
	assert.Equal(t, "CONCENTRATION RISK", two.Alerts[0].Type)
	assert.Equal(t, "PANIC SELLING", two.Alerts[1].Type)

	one := svc.History(ctx, 0)
	assert.Equal(t, 1, one.Count)

	all := svc.History(ctx, 500)
	require.Equal(t, 3, all.Count)
	assert.Equal(t, "CONCENTRATION RISK", all.Alerts[2].Type)
	assert.Equal(t, 100, all.Alerts[2].RiskScore)
}

func TestAlertTypeCounts_FirstSeenOrder(t *testing.T) {
	svc := newTestTradeService()

	order, counts := svc.AlertTypeCounts(context.Background())
	assert.Empty(t, order)
	assert.Empty(t, counts)

	seedHistory(t, svc)

	order, counts = svc.AlertTypeCounts(context.Background())
	assert.Equal(t, []entity.AlertType{entity.AlertTypeConcentrationRisk, entity.AlertTypePanicSelling}, order)
	assert.Equal(t, 2, counts[entity.AlertTypeConcentrationRisk])
	assert.Equal(t, 1, counts[entity.AlertTypePanicSelling])
}

func TestStats_ReflectsEngine(t *testing.T) {
	svc := newTestTradeService()
	seedHistory(t, svc)

	stats := svc.Stats(context.Background())
	assert.Equal(t, 2, stats.TotalTradesAnalysed)
	assert.Equal(t, 3, stats.TotalAlerts)
	assert.Equal(t, 1, stats.PortfolioPositions)
	assert.True(t, stats.CooldownRecommended)
}

func TestAnalyzeTrade_StatsTakenWithTheTrade(t *testing.T) {
	log := logger.NewNop()
	eng := engine.New(engine.DefaultConfig(), log)

	var svc TradeService
	var nested *dto.TradeAnalysisResponse
	var repo repository.AIRepository = aiRepositoryFunc(func(ctx context.Context, alert *entity.Alert) (string, error) {
		// another trade lands while the first one is being explained
		if alert.Trade.TradeID == "T1" {
			resp, err := svc.AnalyzeTrade(ctx, tradeRequest("T2", "INFY", "SELL", 1, 80, 100))
			if err != nil {
				return "", err
			}
			nested = resp
		}
		return "coach:" + alert.Trade.TradeID, nil
	})
	svc = NewTradeService(eng, NewExplanationService(testConfig(), log, repo), log)

	resp, err := svc.AnalyzeTrade(context.Background(), tradeRequest("T1", "TCS", "BUY", 10, 100, 100))
	require.NoError(t, err)
	require.NotNil(t, nested)

	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "coach:T1", resp.Alerts[0].AIExplanation)
	assert.Equal(t, 95.0, resp.HabitScore)
	assert.Equal(t, 1, resp.Stats.TotalTradesAnalysed)
	assert.Equal(t, 1, resp.Stats.TotalAlerts)

	assert.Equal(t, 2, nested.Stats.TotalTradesAnalysed)
	assert.Equal(t, 2, svc.Stats(context.Background()).TotalAlerts)
}

func TestTradeService_ConcurrentCalls(t *testing.T) {
	svc := newTestTradeService()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			// every SELL of an unheld symbol after a 10% drop raises exactly one alert
			_, err := svc.AnalyzeTrade(ctx, tradeRequest(fmt.Sprintf("T%d", i), fmt.Sprintf("SYM%d", i), "SELL", 1, 90, 100))
			assert.NoError(t, err)
			svc.History(ctx, 10)
			svc.AlertTypeCounts(ctx)
			svc.Stats(ctx)
		}(i)
	}
	wg.Wait()

	stats := svc.Stats(ctx)
	assert.Equal(t, workers, stats.TotalTradesAnalysed)
	assert.Equal(t, workers, stats.TotalAlerts)

	_, counts := svc.AlertTypeCounts(ctx)
	assert.Equal(t, workers, counts[entity.AlertTypePanicSelling])
	assert.Equal(t, workers, svc.History(ctx, MaxHistoryLimit).Count)
	svc.Close()
}
