package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trading-habit-engine/internal/entity"
	"trading-habit-engine/internal/habit/config"
	"trading-habit-engine/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when Gemini answers without any text.
var ErrEmptyResponse = errors.New("no content found in Gemini response")

// geminiAIRepository is an implementation of AIRepository that uses the Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (AIRepository, error) {
	if genAiClient == nil {
		return nil, errors.New("gemini client is required")
	}
	if cfg.Gemini.MaxRequestPerMinute <= 0 {
		return nil, fmt.Errorf("invalid gemini max_request_per_minute: %d", cfg.Gemini.MaxRequestPerMinute)
	}

	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		genAiClient:    genAiClient,
	}, nil
}

// ExplainAlert asks Gemini to coach the trader about the alert.
func (r *geminiAIRepository) ExplainAlert(ctx context.Context, alert *entity.Alert) (string, error) {
	if r.cfg.Gemini.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Gemini.Timeout)
		defer cancel()
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	prompt := BuildBehavioralExplanationPrompt(alert)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	r.logger.Debug("Request Gemini API",
		logger.StringField("alert_type", string(alert.Type)),
		logger.IntField("risk_score", alert.EmotionalRiskScore),
	)

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		r.logger.Error("Failed to send request to Gemini API", logger.ErrorField(err), logger.StringField("alert_type", string(alert.Type)))
		return "", fmt.Errorf("failed to send request to Gemini API: %w", err)
	}

	return parseExplanationResponse(resp)
}

func parseExplanationResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
