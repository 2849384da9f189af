package predictor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"trading-habit-engine/pkg/logger"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"
)

// DefaultFeatureColumns is the canonical feature order.
var DefaultFeatureColumns = []string{
	"avg_trades_per_day",
	"win_rate",
	"max_loss_streak",
	"max_drawdown_percent",
	"avg_position_size",
	"risk_per_trade_percent",
	"trades_after_loss_ratio",
	"holding_time_minutes",
	"behavior_type_encoded",
}

// BehaviorClasses are the archetypes the behaviour model distinguishes.
var BehaviorClasses = []string{
	"Disciplined",
	"High Risk Trader",
	"Overtrader",
	"Revenge Trader",
}

// ErrFeatureCount is returned when a feature vector has the wrong length.
var ErrFeatureCount = errors.New("feature count mismatch")

const (
	artifactBehavior       = "behavior"
	artifactDiscipline     = "discipline"
	artifactHabit          = "habit"
	artifactLabelEncoder   = "label_encoder"
	artifactFeatureColumns = "feature_columns"
)

// Bytes of U+FFFD, left behind when a binary artifact was round-tripped through a text editor.
var corruptionMarker = []byte("\xef\xbf\xbd")

// Prediction is the trader profile inferred from aggregate features.
type Prediction struct {
	Behavior             string             `json:"behavior"`
	Discipline           string             `json:"discipline"`
	HabitScore           float64            `json:"habit_score"`
	BehaviorConfidence   *float64           `json:"behavior_confidence"`
	DisciplineConfidence *float64           `json:"discipline_confidence"`
	HabitConfidence      *float64           `json:"habit_confidence"`
	FallbackUsed         bool               `json:"fallback_used"`
	InputFeatures        map[string]float64 `json:"input_features"`
}

// Predictor classifies a trader from aggregate features, using trained
// models when available and a deterministic rule set otherwise.
// It is read-only after LoadModels and safe for concurrent use.
type Predictor struct {
	featureColumns []string
	behavior       *classifier
	discipline     *classifier
	habit          *regressor
	labels         []string
	modelsLoaded   map[string]bool
	logger         *logger.Logger
}

// New creates a predictor with no models loaded.
func New(log *logger.Logger) *Predictor {
	return &Predictor{
		featureColumns: append([]string(nil), DefaultFeatureColumns...),
		modelsLoaded: map[string]bool{
			artifactBehavior:       false,
			artifactDiscipline:     false,
			artifactHabit:          false,
			artifactLabelEncoder:   false,
			artifactFeatureColumns: false,
		},
		logger: log,
	}
}

// LoadModels reads every artifact found in dir. Missing or broken artifacts
// are logged and leave the rule-based fallback in charge of that output.
func (p *Predictor) LoadModels(dir string) {
	var columns []string
	if p.loadArtifact(dir, artifactFeatureColumns, &columns) && len(columns) > 0 {
		p.featureColumns = columns
		p.modelsLoaded[artifactFeatureColumns] = true
	}

	var labels []string
	if p.loadArtifact(dir, artifactLabelEncoder, &labels) {
		p.labels = labels
		p.modelsLoaded[artifactLabelEncoder] = true
	}

	n := len(p.featureColumns)

	var behavior classifierArtifact
	if p.loadArtifact(dir, artifactBehavior, &behavior) {
		p.behavior = p.buildClassifier(artifactBehavior, behavior, n)
	}

	var discipline classifierArtifact
	if p.loadArtifact(dir, artifactDiscipline, &discipline) {
		p.discipline = p.buildClassifier(artifactDiscipline, discipline, n)
	}

	var habit regressorArtifact
	if p.loadArtifact(dir, artifactHabit, &habit) {
		r, err := newRegressor(habit, n)
		if err != nil {
			p.logger.Error("Invalid model artifact", logger.StringField("artifact", artifactHabit), logger.ErrorField(err))
		} else {
			p.habit = r
			p.modelsLoaded[artifactHabit] = true
		}
	}

	p.logger.Info("Predictor initialization", logger.Field("models_loaded", p.modelsLoaded))
}

func (p *Predictor) buildClassifier(name string, a classifierArtifact, n int) *classifier {
	c, err := newClassifier(a, n)
	if err != nil {
		p.logger.Error("Invalid model artifact", logger.StringField("artifact", name), logger.ErrorField(err))
		return nil
	}
	p.modelsLoaded[name] = true
	return c
}

func artifactFile(name string) string {
	switch name {
	case artifactLabelEncoder, artifactFeatureColumns:
		return name + ".json"
	default:
		return name + "_model.json"
	}
}

func (p *Predictor) loadArtifact(dir, name string, dst interface{}) bool {
	path := filepath.Join(dir, artifactFile(name))
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			p.logger.Warn("Artifact not found, using fallback", logger.StringField("path", path))
		} else {
			p.logger.Error("Failed to read artifact", logger.StringField("path", path), logger.ErrorField(err))
		}
		return false
	}
	if bytes.Contains(raw, corruptionMarker) {
		p.logger.Error("Artifact is corrupted (UTF-8 replacement characters found)", logger.StringField("path", path))
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		p.logger.Error("Failed to decode artifact", logger.StringField("path", path), logger.ErrorField(err))
		return false
	}
	return true
}

// FeatureColumns returns the expected feature order.
func (p *Predictor) FeatureColumns() []string {
	return append([]string(nil), p.featureColumns...)
}

// ModelsLoaded reports which artifacts were loaded.
func (p *Predictor) ModelsLoaded() map[string]bool {
	out := make(map[string]bool, len(p.modelsLoaded))
	for k, v := range p.modelsLoaded {
		out[k] = v
	}
	return out
}

// AllModelsLoaded reports whether every artifact was loaded.
func (p *Predictor) AllModelsLoaded() bool {
	for _, ok := range p.modelsLoaded {
		if !ok {
			return false
		}
	}
	return true
}

// PredictVector predicts from values ordered like FeatureColumns.
func (p *Predictor) PredictVector(values []float64) (*Prediction, error) {
	if len(values) != len(p.featureColumns) {
		return nil, fmt.Errorf("expected %d features, got %d: %w", len(p.featureColumns), len(values), ErrFeatureCount)
	}
	named := make(map[string]float64, len(values))
	for i, col := range p.featureColumns {
		named[col] = values[i]
	}
	return p.predict(named), nil
}

// PredictNamed predicts from features keyed by column name. Missing columns default to 0
// and unknown names are ignored.
func (p *Predictor) PredictNamed(features map[string]float64) *Prediction {
	named := make(map[string]float64, len(p.featureColumns))
	for _, col := range p.featureColumns {
		named[col] = features[col]
	}
	return p.predict(named)
}

func (p *Predictor) predict(features map[string]float64) *Prediction {
	if p.behavior == nil && p.discipline == nil && p.habit == nil {
		return ruleBasedPredict(features)
	}

	x := mat.NewVecDense(len(p.featureColumns), nil)
	for i, col := range p.featureColumns {
		x.SetVec(i, features[col])
	}

	rules := ruleBasedPredict(features)
	result := &Prediction{
		Behavior:      rules.Behavior,
		Discipline:    rules.Discipline,
		HabitScore:    rules.HabitScore,
		InputFeatures: features,
	}

	if p.behavior != nil {
		idx, prob := p.behavior.predict(x)
		result.Behavior = p.decodeLabel(p.behavior, idx)
		result.BehaviorConfidence = roundPtr(prob, 4)
	}
	if p.discipline != nil {
		idx, prob := p.discipline.predict(x)
		result.Discipline = p.decodeLabel(p.discipline, idx)
		result.DisciplineConfidence = roundPtr(prob, 4)
	}
	if p.habit != nil {
		// overflowing inputs keep the rule-based score
		if v := p.habit.predict(x); !math.IsNaN(v) && !math.IsInf(v, 0) {
			result.HabitScore = round(v, 2)
		}
	}

	return result
}

func (p *Predictor) decodeLabel(c *classifier, idx int) string {
	if idx < len(c.classes) {
		return c.classes[idx]
	}
	if idx < len(p.labels) {
		return p.labels[idx]
	}
	return strconv.Itoa(idx)
}

func ruleBasedPredict(features map[string]float64) *Prediction {
	lossStreak := features["max_loss_streak"]
	afterLossRatio := features["trades_after_loss_ratio"]
	avgTrades := features["avg_trades_per_day"]
	riskPct := features["risk_per_trade_percent"]
	drawdown := features["max_drawdown_percent"]
	winRate, ok := features["win_rate"]
	if !ok {
		winRate = 0.5
	}

	var behavior, discipline string
	var score float64
	switch {
	case lossStreak >= 3 && afterLossRatio >= 0.6:
		behavior, discipline, score = "Revenge Trader", "Impulsive", 40.0-lossStreak*5
	case avgTrades >= 10 || riskPct >= 5:
		behavior, discipline, score = "Overtrader", "Undisciplined", 50.0-avgTrades*2
	case drawdown >= 20:
		behavior, discipline, score = "High Risk Trader", "Reckless", 55.0-drawdown
	default:
		behavior, discipline, score = "Disciplined", "Consistent", 60.0+winRate*40
	}

	return &Prediction{
		Behavior:      behavior,
		Discipline:    discipline,
		HabitScore:    round(max(0.0, min(100.0, score)), 2),
		FallbackUsed:  true,
		InputFeatures: features,
	}
}

// round reports non-finite values as 0.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func roundPtr(v float64, places int32) *float64 {
	r := round(v, places)
	return &r
}
