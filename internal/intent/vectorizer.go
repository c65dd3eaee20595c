package intent

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
)

// Vector is a sparse feature vector keyed by feature index.
type Vector map[int]float64

const (
	sklearnTokenPattern = `\b\w\w+\b`
	defaultTokenPattern = `[\p{L}\p{N}_]{2,}`
)

// vectorizerArtifact is the on-disk export of a fitted TF-IDF vectorizer.
type vectorizerArtifact struct {
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Lowercase    *bool          `json:"lowercase"`
	NgramRange   []int          `json:"ngram_range"`
	SublinearTF  bool           `json:"sublinear_tf"`
	Norm         *string        `json:"norm"`
	TokenPattern string         `json:"token_pattern"`
}

// TfidfVectorizer turns free text into a TF-IDF weighted sparse vector
// over a frozen vocabulary.
type TfidfVectorizer struct {
	vocabulary  map[string]int
	idf         []float64
	lowercase   bool
	minN, maxN  int
	sublinearTF bool
	norm        string
	pattern     *regexp.Regexp
}

// LoadVectorizer reads a vectorizer artifact from path.
func LoadVectorizer(path string) (*TfidfVectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vectorizer %s: %w", path, err)
	}

	return parseVectorizer(path, data)
}

func parseVectorizer(path string, data []byte) (*TfidfVectorizer, error) {
	var a vectorizerArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode vectorizer %s: %w", path, err)
	}

	return newTfidfVectorizer(a)
}

func newTfidfVectorizer(a vectorizerArtifact) (*TfidfVectorizer, error) {
	if len(a.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer vocabulary is empty")
	}
	if len(a.IDF) != len(a.Vocabulary) {
		return nil, fmt.Errorf("vectorizer idf has %d weights for %d terms", len(a.IDF), len(a.Vocabulary))
	}
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= len(a.IDF) {
			return nil, fmt.Errorf("vectorizer term %q has index %d out of range", term, idx)
		}
	}

	v := &TfidfVectorizer{
		vocabulary:  a.Vocabulary,
		idf:         a.IDF,
		lowercase:   true,
		minN:        1,
		maxN:        1,
		sublinearTF: a.SublinearTF,
		norm:        "l2",
	}
	if a.Lowercase != nil {
		v.lowercase = *a.Lowercase
	}
	if a.Norm != nil {
		v.norm = *a.Norm
	}
	switch v.norm {
	case "l1", "l2", "":
	default:
		return nil, fmt.Errorf("unsupported vectorizer norm %q", v.norm)
	}

	if len(a.NgramRange) == 2 {
		v.minN, v.maxN = a.NgramRange[0], a.NgramRange[1]
	}
	if v.minN < 1 || v.maxN < v.minN {
		return nil, fmt.Errorf("invalid ngram range %v", a.NgramRange)
	}

	pattern := strings.TrimPrefix(a.TokenPattern, "(?u)")
	if pattern == "" || pattern == sklearnTokenPattern {
		pattern = defaultTokenPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile token pattern: %w", err)
	}
	v.pattern = re

	return v, nil
}

// Features returns the width of the vectors produced by Transform.
func (v *TfidfVectorizer) Features() int {
	return len(v.idf)
}

// Transform vectorizes text. Terms outside the vocabulary are ignored.
func (v *TfidfVectorizer) Transform(text string) (Vector, error) {
	if v.lowercase {
		text = strings.ToLower(text)
	}
	tokens := v.pattern.FindAllString(text, -1)

	counts := make(map[int]float64)
	for n := v.minN; n <= v.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			term := strings.Join(tokens[i:i+n], " ")
			if idx, ok := v.vocabulary[term]; ok {
				counts[idx]++
			}
		}
	}

	vec := make(Vector, len(counts))
	for idx, tf := range counts {
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		vec[idx] = tf * v.idf[idx]
	}

	normalize(vec, v.norm)
	return vec, nil
}

func normalize(vec Vector, norm string) {
	var total float64
	switch norm {
	case "l2":
		for _, x := range vec {
			total += x * x
		}
		total = math.Sqrt(total)
	case "l1":
		for _, x := range vec {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for idx := range vec {
		vec[idx] /= total
	}
}
