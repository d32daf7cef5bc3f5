package inference

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// FeatureCountErr signals that a feature vector does not match the model
// schema. Prediction never pads or truncates input silently.
type FeatureCountErr struct {
	Want int
	Got  int
}

func (e *FeatureCountErr) Error() string {
	return fmt.Sprintf("model expects %d features, got %d", e.Want, e.Got)
}

// Model is a pre-trained binary fraud classifier. Training happens elsewhere,
// this adapter only consumes the fitted parameters persisted as msgpack.
type Model struct {
	FeatureNames []string  `msgpack:"features"`
	Weights      []float64 `msgpack:"weights"`
	Intercept    float64   `msgpack:"intercept"`
	Threshold    float64   `msgpack:"threshold"`
}

// Load reads and decodes the model file
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s - %w", path, err)
	}

	var m Model
	if err := msgpack.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode model file %s - %w", path, err)
	}

	if len(m.FeatureNames) != len(m.Weights) {
		return nil, fmt.Errorf("model file %s is inconsistent: %d feature names but %d weights",
			path, len(m.FeatureNames), len(m.Weights))
	}
	return &m, nil
}

// Save encodes the model to the file, mostly useful for tooling and tests
func Save(path string, m *Model) error {
	raw, err := msgpack.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// Features returns feature names in training column order. Input vectors for
// Predict must follow the same order.
func (m *Model) Features() []string {
	return m.FeatureNames
}

// Predict classifies the feature vector, returning 1 for fraud and 0
// otherwise. Feature values are taken as-is, out-of-distribution input is
// accepted silently.
func (m *Model) Predict(features []float64) (int, error) {
	if len(features) != len(m.Weights) {
		return 0, &FeatureCountErr{Want: len(m.Weights), Got: len(features)}
	}

	score := m.Intercept
	for i, w := range m.Weights {
		score += w * features[i]
	}

	if score > m.Threshold {
		return 1, nil
	}
	return 0, nil
}
