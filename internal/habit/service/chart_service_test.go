package service

import (
	"context"
	"testing"

	"trading-habit-engine/internal/habit/predictor"
	"trading-habit-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChartService() (ChartService, TradeService) {
	trades := newTestTradeService()
	return NewChartService(trades, predictor.New(logger.NewNop())), trades
}

func TestBehavioralBreakdown_Empty(t *testing.T) {
	charts, _ := newTestChartService()

	chart := charts.BehavioralBreakdown(context.Background())

	assert.Equal(t, "bar", chart.ChartType)
	assert.Equal(t, []string{"No Alerts"}, chart.Labels)
	assert.Equal(t, []int{0}, chart.Values)
	assert.Equal(t, "#EF4444", chart.Colors["PANIC SELLING"])
	assert.Equal(t, "#8B5CF6", chart.Colors["OVERTRADING"])
	assert.Len(t, chart.Colors, 5)
}

func TestBehavioralBreakdown_Counts(t *testing.T) {
	charts, trades := newTestChartService()
	seedHistory(t, trades)

	chart := charts.BehavioralBreakdown(context.Background())

	assert.Equal(t, []string{"CONCENTRATION RISK", "PANIC SELLING"}, chart.Labels)
	assert.Equal(t, []int{2, 1}, chart.Values)
}

func TestRiskProfile_Defaults(t *testing.T) {
	charts, _ := newTestChartService()

	resp := charts.RiskProfile(context.Background(), nil)

	require.NotNil(t, resp.Prediction)
	assert.Equal(t, "Disciplined", resp.Prediction.Behavior)
	assert.True(t, resp.Prediction.FallbackUsed)
	assert.Equal(t, 50000.0, resp.Prediction.InputFeatures["avg_position_size"])
	assert.Equal(t, "radial", resp.Chart.ChartType)
	assert.Equal(t, []float64{80}, resp.Chart.Values)
	assert.Equal(t, 100.0, resp.Chart.Max)
}

func TestRiskProfile_Overrides(t *testing.T) {
	charts, _ := newTestChartService()

	resp := charts.RiskProfile(context.Background(), map[string]float64{"max_drawdown_percent": 30})

	assert.Equal(t, "High Risk Trader", resp.Prediction.Behavior)
	assert.Equal(t, []float64{25}, resp.Chart.Values)
	assert.Equal(t, 10.0, RiskProfileDefaults["max_drawdown_percent"])
}

func TestStatsSummary(t *testing.T) {
	charts, trades := newTestChartService()
	seedHistory(t, trades)

	summary := charts.StatsSummary(context.Background())

	require.Len(t, summary.Cards, 5)
	assert.Equal(t, "Habit Score", summary.Cards[0].Label)
	assert.Equal(t, "/100", summary.Cards[0].Unit)
	assert.Equal(t, "green", summary.Cards[0].Color)
	assert.Equal(t, "Total Alerts", summary.Cards[2].Label)
	assert.Equal(t, 3.0, summary.Cards[2].Value)
	assert.Equal(t, "purple", summary.Cards[4].Color)
	assert.True(t, summary.CooldownBanner)
}
