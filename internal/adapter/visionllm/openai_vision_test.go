package visionllm

import (
	"testing"

	"essay-grader/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewOpenAIVisionClient_MissingAPIKey(t *testing.T) {
	client, err := NewOpenAIVisionClient("", zap.NewNop())

	assert.Nil(t, client)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrMissingAPIKey, domainErr.Code)
}

func TestNewOpenAIVisionClient_WithKey(t *testing.T) {
	// Construction performs no network I/O; only the key is checked here.
	client, err := NewOpenAIVisionClient("sk-test-key", zap.NewNop())

	assert.NoError(t, err)
	assert.NotNil(t, client)
}
