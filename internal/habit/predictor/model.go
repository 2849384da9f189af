package predictor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// classifierArtifact is the on-disk form of a multinomial logistic model.
type classifierArtifact struct {
	Classes   []string    `json:"classes"`
	Weights   [][]float64 `json:"weights"`
	Intercept []float64   `json:"intercept"`
}

// regressorArtifact is the on-disk form of a linear regression model.
type regressorArtifact struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

type classifier struct {
	classes   []string
	weights   *mat.Dense
	intercept *mat.VecDense
}

func newClassifier(a classifierArtifact, nFeatures int) (*classifier, error) {
	k := len(a.Weights)
	if k == 0 {
		return nil, fmt.Errorf("classifier has no weight rows")
	}
	if len(a.Intercept) != k {
		return nil, fmt.Errorf("classifier has %d weight rows but %d intercepts", k, len(a.Intercept))
	}
	if len(a.Classes) > 0 && len(a.Classes) != k {
		return nil, fmt.Errorf("classifier has %d weight rows but %d classes", k, len(a.Classes))
	}

	data := make([]float64, 0, k*nFeatures)
	for i, row := range a.Weights {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("weight row %d has %d values, expected %d", i, len(row), nFeatures)
		}
		data = append(data, row...)
	}

	return &classifier{
		classes:   a.Classes,
		weights:   mat.NewDense(k, nFeatures, data),
		intercept: mat.NewVecDense(k, append([]float64(nil), a.Intercept...)),
	}, nil
}

// predict returns the winning class index and its softmax probability.
func (c *classifier) predict(x *mat.VecDense) (int, float64) {
	k, _ := c.weights.Dims()
	z := mat.NewVecDense(k, nil)
	z.MulVec(c.weights, x)
	z.AddVec(z, c.intercept)

	best := 0
	maxZ := z.AtVec(0)
	for i := 1; i < k; i++ {
		if z.AtVec(i) > maxZ {
			maxZ = z.AtVec(i)
			best = i
		}
	}

	sum := 0.0
	for i := 0; i < k; i++ {
		sum += math.Exp(z.AtVec(i) - maxZ)
	}
	return best, 1 / sum
}

type regressor struct {
	coefficients *mat.VecDense
	intercept    float64
}

func newRegressor(a regressorArtifact, nFeatures int) (*regressor, error) {
	if len(a.Coefficients) != nFeatures {
		return nil, fmt.Errorf("regressor has %d coefficients, expected %d", len(a.Coefficients), nFeatures)
	}
	return &regressor{
		coefficients: mat.NewVecDense(nFeatures, append([]float64(nil), a.Coefficients...)),
		intercept:    a.Intercept,
	}, nil
}

func (r *regressor) predict(x *mat.VecDense) float64 {
	return mat.Dot(r.coefficients, x) + r.intercept
}
