package config

import (
	"time"

	"trading-habit-engine/internal/habit/engine"
	"trading-habit-engine/pkg/config"
)

// Engine holds the behavioural detection policy.
type Engine struct {
	PanicSellDropPct       float64 `mapstructure:"panic_sell_drop_pct"`
	FomoBuyRisePct         float64 `mapstructure:"fomo_buy_rise_pct"`
	ConcentrationThreshold float64 `mapstructure:"concentration_threshold"`
	CooldownEmotionalIndex float64 `mapstructure:"cooldown_emotional_index"`
	RecentTradeWindow      int     `mapstructure:"recent_trade_window"`
	EmotionalIndexWindow   int     `mapstructure:"emotional_index_window"`
	MaxAlertHistory        int     `mapstructure:"max_alert_history"`
}

// EngineConfig converts the loaded values into the engine policy.
func (e Engine) EngineConfig() engine.Config {
	return engine.Config{
		Thresholds: engine.Thresholds{
			PanicSellDropPct:       e.PanicSellDropPct,
			FomoBuyRisePct:         e.FomoBuyRisePct,
			ConcentrationThreshold: e.ConcentrationThreshold,
		},
		CooldownEmotionalIndex: e.CooldownEmotionalIndex,
		RecentTradeWindow:      e.RecentTradeWindow,
		EmotionalIndexWindow:   e.EmotionalIndexWindow,
		MaxAlertHistory:        e.MaxAlertHistory,
	}
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string        `mapstructure:"api_key"`
	Model               string        `mapstructure:"model"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// Explanation holds the explanation cache settings.
type Explanation struct {
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
	CacheCleanupInterval time.Duration `mapstructure:"cache_cleanup_interval"`
}

// Predictor holds the location of the trained model artifacts.
type Predictor struct {
	ModelDir string `mapstructure:"model_dir"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Digest holds the schedule of the periodic discipline digest.
type Digest struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// Config holds the full configuration for the habit service.
type Config struct {
	App         config.App      `mapstructure:"app"`
	Logger      config.Logger   `mapstructure:"logger"`
	API         config.API      `mapstructure:"api"`
	Database    config.Database `mapstructure:"database"`
	Redis       config.Redis    `mapstructure:"redis"`
	Engine      Engine          `mapstructure:"engine"`
	Gemini      Gemini          `mapstructure:"gemini"`
	Explanation Explanation     `mapstructure:"explanation"`
	Predictor   Predictor       `mapstructure:"predictor"`
	Telegram    Telegram        `mapstructure:"telegram"`
	Digest      Digest          `mapstructure:"digest"`
}

// GeminiEnabled reports whether an API key is configured.
func (c *Config) GeminiEnabled() bool {
	return c.Gemini.APIKey != ""
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.name":                           "AI Financial Habit Engine",
		"app.env":                            "development",
		"app.version":                        "3.0.0",
		"logger.level":                       "info",
		"logger.encoding":                    "json",
		"api.host":                           "0.0.0.0",
		"api.port":                           8000,
		"api.cors_origins":                   []string{"*"},
		"database.enabled":                   false,
		"database.ssl_mode":                  "disable",
		"redis.enabled":                      false,
		"redis.stream_max_len":               10000,
		"engine.panic_sell_drop_pct":         3.0,
		"engine.fomo_buy_rise_pct":           4.0,
		"engine.concentration_threshold":     0.40,
		"engine.cooldown_emotional_index":    75.0,
		"engine.recent_trade_window":         200,
		"engine.emotional_index_window":      10,
		"engine.max_alert_history":           0,
		"gemini.api_key":                     "",
		"gemini.model":                       "gemini-1.5-flash",
		"gemini.timeout":                     "10s",
		"gemini.max_request_per_minute":      60,
		"explanation.cache_ttl":              "24h",
		"explanation.cache_cleanup_interval": "1h",
		"predictor.model_dir":                "models",
		"telegram.enabled":                   false,
		"digest.enabled":                     false,
		"digest.schedule":                    "0 16 * * 1-5",
	}
}

// Load loads the habit service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, config.WithDefaults(defaults())); err != nil {
		return nil, err
	}
	return &cfg, nil
}
