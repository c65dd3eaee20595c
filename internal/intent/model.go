package intent

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// modelArtifact is the on-disk export of a fitted linear classifier.
type modelArtifact struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// LinearModel predicts the class with the highest decision score.
// A model with two classes and a single coefficient row is binary:
// a positive score selects the second class.
type LinearModel struct {
	classes   []string
	coef      [][]float64
	intercept []float64
}

// LoadLinearModel reads a classifier artifact from path.
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	return parseLinearModel(path, data)
}

func parseLinearModel(path string, data []byte) (*LinearModel, error) {
	var a modelArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}

	return newLinearModel(a)
}

func newLinearModel(a modelArtifact) (*LinearModel, error) {
	if len(a.Classes) < 2 {
		return nil, fmt.Errorf("model needs at least two classes, got %d", len(a.Classes))
	}

	rows := len(a.Classes)
	if rows == 2 && len(a.Coef) == 1 {
		rows = 1
	}
	if len(a.Coef) != rows {
		return nil, fmt.Errorf("model has %d coefficient rows for %d classes", len(a.Coef), len(a.Classes))
	}
	if len(a.Intercept) != rows {
		return nil, fmt.Errorf("model has %d intercepts for %d coefficient rows", len(a.Intercept), rows)
	}

	width := len(a.Coef[0])
	for i, row := range a.Coef {
		if len(row) != width {
			return nil, fmt.Errorf("model coefficient row %d has %d features, want %d", i, len(row), width)
		}
	}

	return &LinearModel{
		classes:   a.Classes,
		coef:      a.Coef,
		intercept: a.Intercept,
	}, nil
}

// Features returns the vector width the model expects.
func (m *LinearModel) Features() int {
	return len(m.coef[0])
}

// Predict returns the label for vec.
func (m *LinearModel) Predict(vec Vector) (string, error) {
	scores := make([]float64, len(m.coef))
	for i, row := range m.coef {
		score := m.intercept[i]
		for idx, x := range vec {
			if idx < 0 || idx >= len(row) {
				return "", fmt.Errorf("feature index %d out of range", idx)
			}
			score += row[idx] * x
		}
		if math.IsNaN(score) {
			return "", fmt.Errorf("decision score for row %d is NaN", i)
		}
		scores[i] = score
	}

	if len(scores) == 1 {
		if scores[0] > 0 {
			return m.classes[1], nil
		}
		return m.classes[0], nil
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return m.classes[best], nil
}
