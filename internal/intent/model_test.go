package intent

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearModel_Predict(t *testing.T) {
	multi, err := newLinearModel(modelArtifact{
		Classes:   []string{"about_freaksearch", "goodbye", "greeting"},
		Coef:      [][]float64{{0, 0, 0}, {-1, 2, 0}, {2, -1, 0}},
		Intercept: []float64{0.1, 0, 0},
	})
	require.NoError(t, err)

	binary, err := newLinearModel(modelArtifact{
		Classes:   []string{"goodbye", "greeting"},
		Coef:      [][]float64{{1, -1, 0}},
		Intercept: []float64{0},
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		model *LinearModel
		vec   Vector
		want  string
	}{
		{name: "multiclass greeting", model: multi, vec: Vector{0: 1}, want: "greeting"},
		{name: "multiclass goodbye", model: multi, vec: Vector{1: 1}, want: "goodbye"},
		{name: "multiclass intercept only", model: multi, vec: Vector{}, want: "about_freaksearch"},
		{name: "binary positive", model: binary, vec: Vector{0: 1}, want: "greeting"},
		{name: "binary negative", model: binary, vec: Vector{1: 1}, want: "goodbye"},
		{name: "binary zero", model: binary, vec: Vector{}, want: "goodbye"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.model.Predict(tt.vec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinearModel_PredictErrors(t *testing.T) {
	m, err := newLinearModel(modelArtifact{
		Classes:   []string{"a", "b", "c"},
		Coef:      [][]float64{{1}, {1}, {1}},
		Intercept: []float64{0, 0, 0},
	})
	require.NoError(t, err)

	_, err = m.Predict(Vector{5: 1})
	assert.Error(t, err)

	_, err = m.Predict(Vector{0: math.NaN()})
	assert.Error(t, err)
}

func TestNewLinearModel_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		artifact modelArtifact
	}{
		{name: "one class", artifact: modelArtifact{Classes: []string{"a"}, Coef: [][]float64{{1}}, Intercept: []float64{0}}},
		{name: "row count mismatch", artifact: modelArtifact{Classes: []string{"a", "b", "c"}, Coef: [][]float64{{1}}, Intercept: []float64{0}}},
		{name: "intercept mismatch", artifact: modelArtifact{Classes: []string{"a", "b"}, Coef: [][]float64{{1}}, Intercept: []float64{0, 1}}},
		{name: "ragged rows", artifact: modelArtifact{Classes: []string{"a", "b", "c"}, Coef: [][]float64{{1}, {1, 2}, {1}}, Intercept: []float64{0, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := newLinearModel(tt.artifact)
			assert.Error(t, err)
			assert.Nil(t, m)
		})
	}
}

func TestLoadLinearModel(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"classes":["goodbye","greeting"],"coef":[[1,-1]],"intercept":[0]}`), 0o644))

	m, err := LoadLinearModel(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Features())

	_, err = LoadLinearModel(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
