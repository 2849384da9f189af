package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrInvalidFeatures is returned when features is neither a list nor an object of numbers.
var ErrInvalidFeatures = errors.New("features must be a list of numbers or an object of {column_name: value}")

// FeatureInput accepts either an ordered list or a name-keyed object.
type FeatureInput struct {
	Vector []float64
	Named  map[string]float64
}

// IsVector reports whether the input was an ordered list.
func (f FeatureInput) IsVector() bool {
	return f.Vector != nil
}

func (f *FeatureInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ErrInvalidFeatures
	}

	switch data[0] {
	case '[':
		var vector []float64
		if err := json.Unmarshal(data, &vector); err != nil {
			return ErrInvalidFeatures
		}
		f.Vector = vector
		f.Named = nil
	case '{':
		var named map[string]float64
		if err := json.Unmarshal(data, &named); err != nil {
			return ErrInvalidFeatures
		}
		f.Named = named
		f.Vector = nil
	default:
		return ErrInvalidFeatures
	}
	return nil
}

func (f FeatureInput) MarshalJSON() ([]byte, error) {
	if f.Vector != nil {
		return json.Marshal(f.Vector)
	}
	return json.Marshal(f.Named)
}

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	Features *FeatureInput `json:"features" swaggertype:"object"`
}

// SchemaResponse is returned by GET /predict/schema.
type SchemaResponse struct {
	FeatureColumns []string `json:"feature_columns"`
	Count          int      `json:"count"`
	Note           string   `json:"note"`
}
