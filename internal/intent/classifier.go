// Package intent maps free chat text to an intent label with a frozen,
// pre-trained model and maps intent labels to canned replies.
package intent

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
)

// Unknown is the label returned when no intent could be predicted.
const Unknown = "unknown"

// Vectorizer converts text into a feature vector.
type Vectorizer interface {
	Transform(text string) (Vector, error)
}

// Predictor predicts a single label for a feature vector.
type Predictor interface {
	Predict(vec Vector) (string, error)
}

// Classifier is an immutable vectorizer + predictor pair. A Classifier missing
// either part is disabled and classifies everything as Unknown.
// It is safe for concurrent use.
type Classifier struct {
	vectorizer Vectorizer
	predictor  Predictor
	version    string
}

// New creates a Classifier. Passing a nil vectorizer or predictor yields a
// disabled classifier.
func New(vectorizer Vectorizer, predictor Predictor) *Classifier {
	if vectorizer == nil || predictor == nil {
		return Disabled()
	}
	return &Classifier{vectorizer: vectorizer, predictor: predictor}
}

// Disabled returns a classifier that always answers Unknown.
func Disabled() *Classifier {
	return &Classifier{}
}

// Load reads the vectorizer and model artifacts. On any failure it returns a
// disabled classifier together with the error.
func Load(vectorizerPath, modelPath string) (*Classifier, error) {
	vData, err := os.ReadFile(vectorizerPath)
	if err != nil {
		return Disabled(), fmt.Errorf("read vectorizer %s: %w", vectorizerPath, err)
	}
	mData, err := os.ReadFile(modelPath)
	if err != nil {
		return Disabled(), fmt.Errorf("read model %s: %w", modelPath, err)
	}

	vectorizer, err := parseVectorizer(vectorizerPath, vData)
	if err != nil {
		return Disabled(), err
	}
	model, err := parseLinearModel(modelPath, mData)
	if err != nil {
		return Disabled(), err
	}
	if vectorizer.Features() != model.Features() {
		return Disabled(), fmt.Errorf("vectorizer produces %d features, model expects %d",
			vectorizer.Features(), model.Features())
	}

	c := New(vectorizer, model)
	c.version = artifactVersion(vData, mData)
	return c, nil
}

// artifactVersion identifies a vectorizer/model pair by content.
func artifactVersion(vectorizer, model []byte) string {
	h := sha256.New()
	h.Write(vectorizer)
	h.Write([]byte{0})
	h.Write(model)
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Version identifies the loaded artifacts. It is empty for classifiers not
// built by Load.
func (c *Classifier) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

// Enabled reports whether the classifier has both artifacts.
func (c *Classifier) Enabled() bool {
	return c != nil && c.vectorizer != nil && c.predictor != nil
}

// Classify returns the predicted intent label for text. Errors and panics
// raised by the model are logged and reported as Unknown.
func (c *Classifier) Classify(text string) (label string) {
	if !c.Enabled() {
		return Unknown
	}

	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Errorw("intent prediction panicked", "panic", rec)
			label = Unknown
		}
	}()

	vec, err := c.vectorizer.Transform(text)
	if err != nil {
		logger.Log.Errorw("failed to vectorize message", "error", err)
		return Unknown
	}

	label, err = c.predictor.Predict(vec)
	if err != nil {
		logger.Log.Errorw("failed to predict intent", "error", err)
		return Unknown
	}
	if label == "" {
		return Unknown
	}
	return label
}
