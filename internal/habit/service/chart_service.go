package service

import (
	"context"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/internal/habit/dto"
	"trading-habit-engine/internal/habit/predictor"

	"github.com/shopspring/decimal"
)

var alertColors = map[string]string{
	string(entity.AlertTypePanicSelling):      "#EF4444",
	string(entity.AlertTypeFomoBuying):        "#F59E0B",
	"OVERTRADING":                             "#8B5CF6",
	"REVENGE TRADING":                         "#EC4899",
	string(entity.AlertTypeConcentrationRisk): "#3B82F6",
}

// RiskProfileDefaults are the feature values used when a risk-profile query omits them.
var RiskProfileDefaults = map[string]float64{
	"avg_trades_per_day":      5.0,
	"win_rate":                0.5,
	"max_loss_streak":         2.0,
	"max_drawdown_percent":    10.0,
	"avg_position_size":       50000.0,
	"risk_per_trade_percent":  2.0,
	"trades_after_loss_ratio": 0.3,
	"holding_time_minutes":    120.0,
	"behavior_type_encoded":   0.0,
}

// ChartService shapes engine and predictor output for dashboard charts.
type ChartService interface {
	BehavioralBreakdown(ctx context.Context) *dto.BreakdownChart
	RiskProfile(ctx context.Context, features map[string]float64) *dto.RiskProfileResponse
	StatsSummary(ctx context.Context) *dto.StatsSummaryResponse
}

type chartService struct {
	tradeService TradeService
	predictor    *predictor.Predictor
}

func NewChartService(tradeService TradeService, p *predictor.Predictor) ChartService {
	return &chartService{
		tradeService: tradeService,
		predictor:    p,
	}
}

func (s *chartService) BehavioralBreakdown(ctx context.Context) *dto.BreakdownChart {
	order, counts := s.tradeService.AlertTypeCounts(ctx)

	labels := make([]string, 0, len(order))
	values := make([]int, 0, len(order))
	for _, alertType := range order {
		labels = append(labels, string(alertType))
		values = append(values, counts[alertType])
	}
	if len(labels) == 0 {
		labels = []string{"No Alerts"}
		values = []int{0}
	}

	colors := make(map[string]string, len(alertColors))
	for k, v := range alertColors {
		colors[k] = v
	}

	return &dto.BreakdownChart{
		ChartType: "bar",
		Title:     "Behavioural Alert Breakdown",
		Labels:    labels,
		Values:    values,
		Colors:    colors,
	}
}

// RiskProfile fills missing features from RiskProfileDefaults before predicting.
func (s *chartService) RiskProfile(ctx context.Context, features map[string]float64) *dto.RiskProfileResponse {
	merged := make(map[string]float64, len(RiskProfileDefaults))
	for k, v := range RiskProfileDefaults {
		merged[k] = v
	}
	for k, v := range features {
		merged[k] = v
	}

	prediction := s.predictor.PredictNamed(merged)

	return &dto.RiskProfileResponse{
		Prediction: prediction,
		Chart: dto.RadialChart{
			ChartType: "radial",
			Title:     "Risk Profile",
			Labels:    []string{"Habit Score"},
			Values:    []float64{decimal.NewFromFloat(prediction.HabitScore).Round(1).InexactFloat64()},
			Max:       100,
		},
	}
}

func (s *chartService) StatsSummary(ctx context.Context) *dto.StatsSummaryResponse {
	stats := s.tradeService.Stats(ctx)

	return &dto.StatsSummaryResponse{
		Cards: []dto.StatCard{
			{Label: "Habit Score", Value: stats.HabitScore, Unit: "/100", Color: "green"},
			{Label: "Emotional Index", Value: stats.EmotionalIndex, Unit: "/100", Color: "orange"},
			{Label: "Total Alerts", Value: float64(stats.TotalAlerts), Unit: "", Color: "red"},
			{Label: "Trades Analysed", Value: float64(stats.TotalTradesAnalysed), Unit: "", Color: "blue"},
			{Label: "Open Positions", Value: float64(stats.PortfolioPositions), Unit: "", Color: "purple"},
		},
		CooldownBanner: stats.CooldownRecommended,
	}
}
