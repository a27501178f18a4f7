package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fixedEncoder struct {
	tokens []int
}

func (f *fixedEncoder) Encode(text string, allowedSpecial []string, disallowedSpecial []string) []int {
	return f.tokens
}

func failingEncoding(model string) (Encoder, error) {
	return nil, errors.New("no encoding for model")
}

func TestCountTokens_FallbackApproximation(t *testing.T) {
	estimator := NewEstimatorWithEncoding("unknown-model", zap.NewNop(), failingEncoding)

	assert.Equal(t, 100, estimator.CountTokens(strings.Repeat("abcd", 100)))
	assert.Equal(t, 0, estimator.CountTokens("abc")) // integer division rounds down
	assert.Equal(t, 0, estimator.CountTokens(""))
}

func TestCountTokens_UsesEncoderWhenAvailable(t *testing.T) {
	enc := &fixedEncoder{tokens: []int{1, 2, 3, 4, 5}}
	estimator := NewEstimatorWithEncoding("some-model", zap.NewNop(), func(model string) (Encoder, error) {
		return enc, nil
	})

	assert.Equal(t, 5, estimator.CountTokens("whatever text"))
}

func TestCountTokens_NeverFails(t *testing.T) {
	// The tiktoken-backed default has no encoding for the pinned vision
	// model; it must still answer via the approximation path.
	estimator := NewEstimator("o4-mini-2025-04-16", zap.NewNop())

	assert.NotPanics(t, func() {
		count := estimator.CountTokens(strings.Repeat("word ", 40))
		assert.GreaterOrEqual(t, count, 0)
	})
}

func TestEstimateImageTokens(t *testing.T) {
	tests := []struct {
		name      string
		sizeBytes int
		expected  int
	}{
		{"zero bytes", 0, 85},
		{"exactly 100KB maps to factor 1.0", 102400, 170},
		{"half of 100KB", 51200, 127},
		{"two times 100KB", 204800, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateImageTokens(tt.sizeBytes))
		})
	}
}
