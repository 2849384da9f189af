package dto

import "trading-habit-engine/internal/habit/predictor"

// BreakdownChart is alert counts per type, ready for a bar chart.
type BreakdownChart struct {
	ChartType string            `json:"chart_type"`
	Title     string            `json:"title"`
	Labels    []string          `json:"labels"`
	Values    []int             `json:"values"`
	Colors    map[string]string `json:"colors"`
}

// RadialChart is a single-gauge chart.
type RadialChart struct {
	ChartType string    `json:"chart_type"`
	Title     string    `json:"title"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
	Max       float64   `json:"max"`
}

// RiskProfileResponse is returned by GET /charts/risk-profile.
type RiskProfileResponse struct {
	Prediction *predictor.Prediction `json:"prediction"`
	Chart      RadialChart           `json:"chart"`
}

// StatCard is one dashboard tile.
type StatCard struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Color string  `json:"color"`
}

// StatsSummaryResponse is returned by GET /charts/stats-summary.
type StatsSummaryResponse struct {
	Cards          []StatCard `json:"cards"`
	CooldownBanner bool       `json:"cooldown_banner"`
}
