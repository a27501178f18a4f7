package visionllm

import (
	"context"
	"fmt"

	"essay-grader/internal/domain"
	"essay-grader/internal/port"

	"github.com/tmc/langchaingo/llms"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Model is the single pinned model identifier used for every grading call.
const Model = "o4-mini-2025-04-16"

// All essays are submitted as image/jpeg regardless of the source file
// extension; the encoding contract only cares about the byte payload.
const imageDataURIPrefix = "data:image/jpeg;base64,"

// openAIVisionClient implements port.EssayVisionClient on top of the
// LangchainGo OpenAI client.
type openAIVisionClient struct {
	llm    *openaiLLM.LLM
	logger *zap.Logger
}

// NewOpenAIVisionClient creates the vision client. A missing API key fails
// here, at construction time, never silently at call time.
func NewOpenAIVisionClient(apiKey string, logger *zap.Logger) (port.EssayVisionClient, error) {
	if apiKey == "" {
		return nil, domain.NewMissingAPIKeyError()
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(apiKey),
		openaiLLM.WithModel(Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI client: %w", err)
	}

	logger.Info("Initialized OpenAI vision client", zap.String("model", Model))
	return &openAIVisionClient{
		llm:    llm,
		logger: logger,
	}, nil
}

// GradeImage submits one prompt plus one inline base64 image and returns the
// model's text completion. A single synchronous call, no retry: transport and
// API errors propagate to the caller.
func (c *openAIVisionClient) GradeImage(ctx context.Context, prompt string, imageBase64 string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
				llms.ImageURLPart(imageDataURIPrefix + imageBase64),
			},
		},
	}

	resp, err := c.llm.GenerateContent(ctx, content, llms.WithTemperature(0.1))
	if err != nil {
		c.logger.Error("Vision model call failed", zap.Error(err))
		return "", domain.NewLLMServiceError(fmt.Errorf("vision model call failed: %w", err))
	}
	if len(resp.Choices) == 0 {
		c.logger.Error("Vision model returned no choices")
		return "", domain.NewLLMServiceError(fmt.Errorf("vision model returned no choices"))
	}

	return resp.Choices[0].Content, nil
}

var _ port.EssayVisionClient = (*openAIVisionClient)(nil)
