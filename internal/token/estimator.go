package token

import (
	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// approxCharsPerToken backs the estimation path taken whenever the tokenizer
// cannot serve the pinned model.
const approxCharsPerToken = 4

// imageBaseTokens is the fixed per-image overhead; the size factor is
// normalized by 100KB. The formula is a heuristic, not an exact count, and
// must stay byte-for-byte stable so cost estimates stay comparable across runs.
const imageBaseTokens = 85

// Encoder is the tokenizer surface the estimator depends on.
type Encoder interface {
	Encode(text string, allowedSpecial []string, disallowedSpecial []string) []int
}

// EncodingFunc resolves an Encoder for a model name.
type EncodingFunc func(model string) (Encoder, error)

func tiktokenEncoding(model string) (Encoder, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, err
	}
	return enc, nil
}

// Estimator counts text tokens for a pinned model, approximating when the
// tokenizer has no encoding for it.
type Estimator struct {
	model       string
	encodingFor EncodingFunc
	logger      *zap.Logger
}

// NewEstimator creates an estimator backed by tiktoken.
func NewEstimator(model string, logger *zap.Logger) *Estimator {
	return NewEstimatorWithEncoding(model, logger, tiktokenEncoding)
}

// NewEstimatorWithEncoding creates an estimator with a custom encoder lookup.
func NewEstimatorWithEncoding(model string, logger *zap.Logger, encodingFor EncodingFunc) *Estimator {
	return &Estimator{
		model:       model,
		encodingFor: encodingFor,
		logger:      logger,
	}
}

// CountTokens returns the token count for text. It never fails the caller:
// when no encoding is available it logs a warning and approximates at
// len(text)/4, rounded down.
func (e *Estimator) CountTokens(text string) int {
	enc, err := e.encodingFor(e.model)
	if err != nil {
		e.logger.Warn("Tokenizer unavailable, using approximation",
			zap.String("model", e.model),
			zap.Error(err))
		return len(text) / approxCharsPerToken
	}
	return len(enc.Encode(text, nil, nil))
}

// EstimateImageTokens estimates the token cost of an inline image from its
// byte size: floor(85 * sizeBytes/100KB) + 85.
func EstimateImageTokens(sizeBytes int) int {
	sizeFactor := float64(sizeBytes) / (100 * 1024)
	return int(imageBaseTokens*sizeFactor) + imageBaseTokens
}
