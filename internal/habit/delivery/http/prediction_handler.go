package http

import (
	"errors"
	"net/http"

	"trading-habit-engine/internal/habit/dto"
	"trading-habit-engine/internal/habit/predictor"
	"trading-habit-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

const schemaNote = "Pass features as an ordered list (same length as feature_columns) " +
	"or as a dict {column_name: value}.  Missing dict keys default to 0."

// PredictionHandler handles HTTP requests for trader profile prediction.
type PredictionHandler struct {
	predictor *predictor.Predictor
	logger    *logger.Logger
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(p *predictor.Predictor, logger *logger.Logger) *PredictionHandler {
	return &PredictionHandler{predictor: p, logger: logger}
}

// RegisterRoutes registers the prediction routes to the Echo group.
func (h *PredictionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Predict)
	g.POST("/", h.Predict)
	g.GET("/test", h.TestPrediction)
	g.GET("/schema", h.GetSchema)
}

// Predict godoc
// @Summary Predict trader profile from feature vector
// @Description Features may be an ordered list matching feature_columns or an object keyed by column name
// @Tags prediction
// @Accept  json
// @Produce  json
// @Param   request  body    dto.PredictRequest   true    "Feature vector"
// @Success 200 {object} predictor.Prediction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/predict [post]
func (h *PredictionHandler) Predict(c echo.Context) error {
	var req dto.PredictRequest
	if err := c.Bind(&req); err != nil {
		if errors.Is(err, dto.ErrInvalidFeatures) {
			return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: dto.ErrInvalidFeatures.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.Features == nil {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "features is required"})
	}

	if !req.Features.IsVector() {
		return c.JSON(http.StatusOK, h.predictor.PredictNamed(req.Features.Named))
	}

	prediction, err := h.predictor.PredictVector(req.Features.Vector)
	if err != nil {
		if errors.Is(err, predictor.ErrFeatureCount) {
			return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		}
		h.logger.Error("Prediction failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Prediction failed"})
	}

	return c.JSON(http.StatusOK, prediction)
}

// TestPrediction godoc
// @Summary Smoke-test prediction with zero vector
// @Tags prediction
// @Produce  json
// @Success 200 {object} predictor.Prediction
// @Router /api/v1/predict/test [get]
func (h *PredictionHandler) TestPrediction(c echo.Context) error {
	zeros := make([]float64, len(h.predictor.FeatureColumns()))
	prediction, err := h.predictor.PredictVector(zeros)
	if err != nil {
		h.logger.Error("Smoke-test prediction failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, prediction)
}

// GetSchema godoc
// @Summary Return expected feature columns in canonical order
// @Tags prediction
// @Produce  json
// @Success 200 {object} dto.SchemaResponse
// @Router /api/v1/predict/schema [get]
func (h *PredictionHandler) GetSchema(c echo.Context) error {
	columns := h.predictor.FeatureColumns()
	return c.JSON(http.StatusOK, dto.SchemaResponse{
		FeatureColumns: columns,
		Count:          len(columns),
		Note:           schemaNote,
	})
}
