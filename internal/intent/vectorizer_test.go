package intent

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestTfidfVectorizer_Transform(t *testing.T) {
	tests := []struct {
		name     string
		artifact vectorizerArtifact
		text     string
		want     Vector
	}{
		{
			name: "l2 normalized unigrams",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"hello": 0, "there": 1, "bye": 2},
				IDF:        []float64{1, 2, 1},
			},
			text: "Hello hello there",
			want: Vector{0: 1 / math.Sqrt2, 1: 1 / math.Sqrt2},
		},
		{
			name: "bigrams without norm",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"good": 0, "bye": 1, "good bye": 2},
				IDF:        []float64{1, 1, 1},
				NgramRange: []int{1, 2},
				Norm:       strPtr(""),
			},
			text: "good bye",
			want: Vector{0: 1, 1: 1, 2: 1},
		},
		{
			name: "sublinear tf",
			artifact: vectorizerArtifact{
				Vocabulary:  map[string]int{"hi": 0},
				IDF:         []float64{1},
				SublinearTF: true,
				Norm:        strPtr(""),
			},
			text: "hi hi hi",
			want: Vector{0: 1 + math.Log(3)},
		},
		{
			name: "l1 norm",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"fact": 0, "check": 1},
				IDF:        []float64{1, 3},
				Norm:       strPtr("l1"),
			},
			text: "fact check",
			want: Vector{0: 0.25, 1: 0.75},
		},
		{
			name: "case sensitive",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"hello": 0},
				IDF:        []float64{1},
				Lowercase:  boolPtr(false),
			},
			text: "Hello",
			want: Vector{},
		},
		{
			name: "single characters are not tokens",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"a": 0},
				IDF:        []float64{1},
			},
			text: "a a a",
			want: Vector{},
		},
		{
			name: "unicode tokens",
			artifact: vectorizerArtifact{
				Vocabulary:   map[string]int{"नमस्ते": 0, "привет": 1},
				IDF:          []float64{1, 1},
				TokenPattern: `(?u)\b\w\w+\b`,
			},
			text: "Привет!",
			want: Vector{1: 1},
		},
		{
			name: "combining marks split devanagari words",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"नमस": 0, "नमस्ते": 1},
				IDF:        []float64{1, 1},
			},
			text: "नमस्ते",
			want: Vector{0: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := newTfidfVectorizer(tt.artifact)
			require.NoError(t, err)

			got, err := v.Transform(tt.text)
			require.NoError(t, err)

			require.Len(t, got, len(tt.want))
			for idx, want := range tt.want {
				assert.InDelta(t, want, got[idx], 1e-9, "feature %d", idx)
			}
		})
	}
}

func TestTfidfVectorizer_Tokens(t *testing.T) {
	v, err := newTfidfVectorizer(vectorizerArtifact{
		Vocabulary: map[string]int{"hi": 0},
		IDF:        []float64{1},
	})
	require.NoError(t, err)

	// Expected tokens come from re.findall(r'(?u)\b\w\w+\b', text) in Python.
	tests := []struct {
		text string
		want []string
	}{
		{text: "Hello, world_1 a", want: []string{"Hello", "world_1"}},
		{text: "नमस्ते", want: []string{"नमस"}},
		{text: "नमस्ते दोस्त", want: []string{"नमस"}},
		{text: "kya haal hai भाई", want: []string{"kya", "haal", "hai"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, v.pattern.FindAllString(tt.text, -1))
		})
	}
}

func TestNewTfidfVectorizer_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		artifact vectorizerArtifact
	}{
		{name: "empty vocabulary", artifact: vectorizerArtifact{}},
		{
			name: "idf size mismatch",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"hi": 0, "bye": 1},
				IDF:        []float64{1},
			},
		},
		{
			name: "index out of range",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"hi": 3},
				IDF:        []float64{1},
			},
		},
		{
			name: "bad ngram range",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"hi": 0},
				IDF:        []float64{1},
				NgramRange: []int{2, 1},
			},
		},
		{
			name: "unsupported norm",
			artifact: vectorizerArtifact{
				Vocabulary: map[string]int{"hi": 0},
				IDF:        []float64{1},
				Norm:       strPtr("max"),
			},
		},
		{
			name: "bad token pattern",
			artifact: vectorizerArtifact{
				Vocabulary:   map[string]int{"hi": 0},
				IDF:          []float64{1},
				TokenPattern: "(",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := newTfidfVectorizer(tt.artifact)
			assert.Error(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestLoadVectorizer(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "vectorizer.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"vocabulary":{"hello":0,"bye":1},"idf":[1.5,1.2]}`), 0o644))

		v, err := LoadVectorizer(path)
		require.NoError(t, err)
		assert.Equal(t, 2, v.Features())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadVectorizer(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"vocabulary":`), 0o644))

		_, err := LoadVectorizer(path)
		assert.Error(t, err)
	})
}
