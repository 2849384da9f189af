package http

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"trading-habit-engine/internal/habit/dto"
	"trading-habit-engine/internal/habit/predictor"
	"trading-habit-engine/internal/habit/service"
	"trading-habit-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartHandler handles HTTP requests for dashboard chart data.
type ChartHandler struct {
	chartService service.ChartService
	logger       *logger.Logger
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(chartService service.ChartService, logger *logger.Logger) *ChartHandler {
	return &ChartHandler{chartService: chartService, logger: logger}
}

// RegisterRoutes registers the chart routes to the Echo group.
func (h *ChartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/behavioral-breakdown", h.GetBehavioralBreakdown)
	g.GET("/risk-profile", h.GetRiskProfile)
	g.GET("/stats-summary", h.GetStatsSummary)
}

// GetBehavioralBreakdown godoc
// @Summary Alert type distribution for charting
// @Tags charts
// @Produce  json
// @Success 200 {object} dto.BreakdownChart
// @Router /api/v1/charts/behavioral-breakdown [get]
func (h *ChartHandler) GetBehavioralBreakdown(c echo.Context) error {
	return c.JSON(http.StatusOK, h.chartService.BehavioralBreakdown(c.Request().Context()))
}

// GetRiskProfile godoc
// @Summary Build chart data from a prediction result
// @Description Every feature column may be passed as a query parameter; omitted ones take the documented defaults
// @Tags charts
// @Produce  json
// @Param   avg_trades_per_day       query number false "Average trades per day" default(5)
// @Param   win_rate                 query number false "Win rate (0-1)" default(0.5)
// @Param   max_loss_streak          query number false "Longest losing streak" default(2)
// @Param   max_drawdown_percent     query number false "Maximum drawdown percent" default(10)
// @Param   avg_position_size        query number false "Average position size" default(50000)
// @Param   risk_per_trade_percent   query number false "Risk per trade percent" default(2)
// @Param   trades_after_loss_ratio  query number false "Share of trades placed right after a loss" default(0.3)
// @Param   holding_time_minutes     query number false "Average holding time in minutes" default(120)
// @Param   behavior_type_encoded    query number false "Encoded behaviour type" default(0)
// @Success 200 {object} dto.RiskProfileResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/charts/risk-profile [get]
func (h *ChartHandler) GetRiskProfile(c echo.Context) error {
	features := make(map[string]float64)
	verr := &dto.ValidationError{}
	for _, col := range predictor.DefaultFeatureColumns {
		raw := c.QueryParam(col)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			verr.Fields = append(verr.Fields, dto.FieldError{Field: col, Message: fmt.Sprintf("invalid number %q", raw)})
			continue
		}
		features[col] = v
	}
	if len(verr.Fields) > 0 {
		return validationFailed(c, verr)
	}

	return c.JSON(http.StatusOK, h.chartService.RiskProfile(c.Request().Context(), features))
}

// GetStatsSummary godoc
// @Summary Engine metrics formatted for dashboard cards
// @Tags charts
// @Produce  json
// @Success 200 {object} dto.StatsSummaryResponse
// @Router /api/v1/charts/stats-summary [get]
func (h *ChartHandler) GetStatsSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.chartService.StatsSummary(c.Request().Context()))
}
