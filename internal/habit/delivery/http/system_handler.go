package http

import (
	"net/http"

	"trading-habit-engine/internal/habit/dto"
	"trading-habit-engine/internal/habit/predictor"
	"trading-habit-engine/internal/habit/service"
	"trading-habit-engine/pkg/common"

	"github.com/labstack/echo/v4"
)

const (
	statusRunning  = "running"
	statusDegraded = "degraded (rule-based fallback active)"
)

// SystemHandler serves liveness and service metadata.
type SystemHandler struct {
	appName      string
	predictor    *predictor.Predictor
	explainer    service.ExplanationService
	tradeService service.TradeService
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(appName string, p *predictor.Predictor, explainer service.ExplanationService, tradeService service.TradeService) *SystemHandler {
	return &SystemHandler{
		appName:      appName,
		predictor:    p,
		explainer:    explainer,
		tradeService: tradeService,
	}
}

// RegisterRoutes registers the system routes at the server root.
func (h *SystemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
}

// Health godoc
// @Summary Health check for models, AI provider and engine
// @Tags system
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c echo.Context) error {
	status := statusDegraded
	if h.predictor.AllModelsLoaded() {
		status = statusRunning
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:        status,
		Version:       common.AppVersion,
		GeminiEnabled: h.explainer.Enabled(),
		ModelsLoaded:  h.predictor.ModelsLoaded(),
		EngineActive:  h.tradeService != nil,
	})
}

// Root godoc
// @Summary Service metadata
// @Tags system
// @Produce  json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.RootResponse{
		Name:    h.appName,
		Version: common.AppVersion,
		Docs:    "/swagger/index.html",
		Health:  "/health",
	})
}
