package predictor

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"trading-habit-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestPredictVector_WrongLength(t *testing.T) {
	p := New(logger.NewNop())

	_, err := p.PredictVector([]float64{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeatureCount)
	assert.Contains(t, err.Error(), "expected 9 features, got 3")
}

func TestRuleBased_Branches(t *testing.T) {
	p := New(logger.NewNop())

	tests := []struct {
		name       string
		features   map[string]float64
		behavior   string
		discipline string
		score      float64
	}{
		{
			name:       "revenge trader",
			features:   map[string]float64{"max_loss_streak": 4, "trades_after_loss_ratio": 0.7, "avg_trades_per_day": 20},
			behavior:   "Revenge Trader",
			discipline: "Impulsive",
			score:      20,
		},
		{
			name:       "overtrader by volume",
			features:   map[string]float64{"avg_trades_per_day": 12},
			behavior:   "Overtrader",
			discipline: "Undisciplined",
			score:      26,
		},
		{
			name:       "overtrader by risk clamps to zero",
			features:   map[string]float64{"avg_trades_per_day": 30, "risk_per_trade_percent": 6},
			behavior:   "Overtrader",
			discipline: "Undisciplined",
			score:      0,
		},
		{
			name:       "high risk",
			features:   map[string]float64{"max_drawdown_percent": 25},
			behavior:   "High Risk Trader",
			discipline: "Reckless",
			score:      30,
		},
		{
			name:       "disciplined",
			features:   map[string]float64{"win_rate": 0.55, "avg_trades_per_day": 3},
			behavior:   "Disciplined",
			discipline: "Consistent",
			score:      82,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.PredictNamed(tt.features)
			assert.Equal(t, tt.behavior, got.Behavior)
			assert.Equal(t, tt.discipline, got.Discipline)
			assert.InDelta(t, tt.score, got.HabitScore, 1e-9)
			assert.True(t, got.FallbackUsed)
			assert.Nil(t, got.BehaviorConfidence)
			assert.Nil(t, got.DisciplineConfidence)
			assert.Nil(t, got.HabitConfidence)
		})
	}
}

func TestPredictNamed_MissingKeysDefaultToZero(t *testing.T) {
	p := New(logger.NewNop())

	got := p.PredictNamed(map[string]float64{"unknown": 99})

	assert.Len(t, got.InputFeatures, len(DefaultFeatureColumns))
	assert.Equal(t, 0.0, got.InputFeatures["win_rate"])
	assert.NotContains(t, got.InputFeatures, "unknown")
	assert.Equal(t, "Disciplined", got.Behavior)
	assert.InDelta(t, 60.0, got.HabitScore, 1e-9)
}

func TestLoadModels_MissingDirKeepsFallback(t *testing.T) {
	p := New(logger.NewNop())
	p.LoadModels(filepath.Join(t.TempDir(), "absent"))

	assert.False(t, p.AllModelsLoaded())
	for name, loaded := range p.ModelsLoaded() {
		assert.False(t, loaded, name)
	}
	assert.Equal(t, DefaultFeatureColumns, p.FeatureColumns())
}

func TestLoadModels_CorruptedArtifactIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "label_encoder.json", "[\"A\",\"B\xef\xbf\xbd\"]")

	p := New(logger.NewNop())
	p.LoadModels(dir)

	assert.False(t, p.ModelsLoaded()["label_encoder"])
}

func TestLoadModels_PartialModels(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "feature_columns.json", `["a","b"]`)
	writeArtifact(t, dir, "label_encoder.json", `["Calm","Anxious"]`)
	writeArtifact(t, dir, "behavior_model.json", `{"weights":[[1,0],[0,1]],"intercept":[0,0]}`)
	writeArtifact(t, dir, "habit_model.json", `{"coefficients":[10,5],"intercept":1.234}`)

	p := New(logger.NewNop())
	p.LoadModels(dir)

	loaded := p.ModelsLoaded()
	assert.True(t, loaded["feature_columns"])
	assert.True(t, loaded["label_encoder"])
	assert.True(t, loaded["behavior"])
	assert.True(t, loaded["habit"])
	assert.False(t, loaded["discipline"])
	assert.False(t, p.AllModelsLoaded())
	assert.Equal(t, []string{"a", "b"}, p.FeatureColumns())

	got, err := p.PredictVector([]float64{0, 3})
	require.NoError(t, err)

	assert.False(t, got.FallbackUsed)
	assert.Equal(t, "Anxious", got.Behavior)
	require.NotNil(t, got.BehaviorConfidence)
	assert.InDelta(t, 0.9526, *got.BehaviorConfidence, 1e-9)
	assert.InDelta(t, 16.23, got.HabitScore, 1e-9)
	assert.Nil(t, got.HabitConfidence)

	// discipline head falls back to the rule set
	assert.Equal(t, "Consistent", got.Discipline)
	assert.Nil(t, got.DisciplineConfidence)
}

func TestLoadModels_ShapeMismatchRejected(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "discipline_model.json", `{"classes":["x","y"],"weights":[[1,2],[3,4]],"intercept":[0,0]}`)

	p := New(logger.NewNop())
	p.LoadModels(dir)

	assert.False(t, p.ModelsLoaded()["discipline"])
	got := p.PredictNamed(nil)
	assert.True(t, got.FallbackUsed)
}

func TestClassifierClassesTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "feature_columns.json", `["a"]`)
	writeArtifact(t, dir, "label_encoder.json", `["Wrong","Labels"]`)
	writeArtifact(t, dir, "discipline_model.json", `{"classes":["Steady","Erratic"],"weights":[[-1],[1]],"intercept":[0,0]}`)

	p := New(logger.NewNop())
	p.LoadModels(dir)

	got, err := p.PredictVector([]float64{2})
	require.NoError(t, err)
	assert.Equal(t, "Erratic", got.Discipline)
	require.NotNil(t, got.DisciplineConfidence)
	assert.InDelta(t, 0.982, *got.DisciplineConfidence, 1e-9)
}

func TestPredict_NonFiniteValuesDoNotPanic(t *testing.T) {
	p := New(logger.NewNop())

	got := p.PredictNamed(map[string]float64{"win_rate": math.NaN()})
	assert.True(t, got.FallbackUsed)
	assert.Equal(t, 0.0, got.HabitScore)

	got = p.PredictNamed(map[string]float64{"win_rate": math.Inf(1)})
	assert.Equal(t, 100.0, got.HabitScore)
}

func TestLoadModels_OverflowingHabitKeepsRuleScore(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "feature_columns.json", `["a","b"]`)
	writeArtifact(t, dir, "habit_model.json", `{"coefficients":[1e308,1e308],"intercept":0}`)

	p := New(logger.NewNop())
	p.LoadModels(dir)
	require.True(t, p.ModelsLoaded()["habit"])

	got, err := p.PredictVector([]float64{10, 10})
	require.NoError(t, err)
	assert.Equal(t, 80.0, got.HabitScore)
}
