package http

import (
	"net/http"
	"strconv"

	"trading-habit-engine/internal/habit/dto"
	"trading-habit-engine/internal/habit/service"
	"trading-habit-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TradeHandler handles HTTP requests for trade analysis.
type TradeHandler struct {
	tradeService service.TradeService
	logger       *logger.Logger
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService service.TradeService, logger *logger.Logger) *TradeHandler {
	return &TradeHandler{tradeService: tradeService, logger: logger}
}

// RegisterRoutes registers the trade routes to the Echo group.
func (h *TradeHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/analyze", h.AnalyzeTrade)
	g.GET("/stats", h.GetStats)
	g.GET("/history", h.GetHistory)
}

// AnalyzeTrade godoc
// @Summary Analyse a trade for behavioural biases
// @Description Runs the panic-sell, FOMO-buy and concentration detectors against one executed trade
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   trade  body    dto.TradeRequest   true    "Executed trade"
// @Success 200 {object} dto.TradeAnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/trades/analyze [post]
func (h *TradeHandler) AnalyzeTrade(c echo.Context) error {
	var req dto.TradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	if err := req.Validate(); err != nil {
		return validationFailed(c, err)
	}

	resp, err := h.tradeService.AnalyzeTrade(c.Request().Context(), &req)
	if err != nil {
		h.logger.Error("Failed to analyse trade", logger.ErrorField(err), logger.StringField("trade_id", req.TradeID))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to analyse trade"})
	}

	return c.JSON(http.StatusOK, resp)
}

// GetStats godoc
// @Summary Current engine metrics
// @Tags trades
// @Produce  json
// @Success 200 {object} engine.Stats
// @Router /api/v1/trades/stats [get]
func (h *TradeHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.tradeService.Stats(c.Request().Context()))
}

// GetHistory godoc
// @Summary Recent alert history
// @Description Returns the most recent alerts, newest first
// @Tags trades
// @Produce  json
// @Param   limit  query    int false    "Number of alerts (1-200)" default(20)
// @Success 200 {object} dto.AlertHistoryResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/trades/history [get]
func (h *TradeHandler) GetHistory(c echo.Context) error {
	limit := service.DefaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > service.MaxHistoryLimit {
			return validationFailed(c, &dto.ValidationError{Fields: []dto.FieldError{{
				Field:   "limit",
				Message: "must be an integer between 1 and 200",
			}}})
		}
		limit = parsed
	}

	return c.JSON(http.StatusOK, h.tradeService.History(c.Request().Context(), limit))
}
