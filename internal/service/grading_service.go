package service

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"time"

	"essay-grader/internal/domain"
	"essay-grader/internal/port"
	"essay-grader/internal/prompt"
	"essay-grader/internal/sanitize"
	"essay-grader/internal/token"
	"essay-grader/internal/usage"
	"essay-grader/internal/util"

	"go.uber.org/zap"
)

// essayGradingService implements domain.EssayGrader.
type essayGradingService struct {
	vision    port.EssayVisionClient
	estimator *token.Estimator
	recorder  *usage.Recorder
	model     string
	logger    *zap.Logger
}

// NewEssayGradingService creates a new instance of essayGradingService.
// model is the pinned identifier recorded in usage logs.
func NewEssayGradingService(
	vision port.EssayVisionClient,
	estimator *token.Estimator,
	recorder *usage.Recorder,
	model string,
	logger *zap.Logger,
) domain.EssayGrader {
	return &essayGradingService{
		vision:    vision,
		estimator: estimator,
		recorder:  recorder,
		model:     model,
		logger:    logger,
	}
}

// GradeEssay grades one handwritten essay image. Failures are not caught
// here: image I/O and model errors propagate so the caller (the batch
// orchestrator, or a single-essay CLI) decides how to present them. Only the
// tokenizer is allowed to fail quietly, inside the estimator.
func (s *essayGradingService) GradeEssay(ctx context.Context, req *domain.GradingRequest) (*domain.GradingResult, error) {
	start := time.Now()

	imageData, err := os.ReadFile(req.ImagePath)
	if err != nil {
		return nil, domain.NewImageReadError(req.ImagePath, err)
	}
	imageSize := len(imageData)
	encodedImage := base64.StdEncoding.EncodeToString(imageData)
	s.logger.Info("Encoded essay image",
		zap.String("image", req.ImagePath),
		zap.Float64("size_kb", float64(imageSize)/1024))

	promptText := prompt.Build(req.Rubric, req.Instructions, req.GradeLevel, req.Leniency)

	textTokens := s.estimator.CountTokens(promptText)
	imageTokens := token.EstimateImageTokens(imageSize)
	inputTokens := textTokens + imageTokens
	s.logger.Info("Submitting essay to vision model",
		zap.String("model", s.model),
		zap.Int("text_tokens", textTokens),
		zap.Int("estimated_image_tokens", imageTokens))

	rawText, err := s.vision.GradeImage(ctx, promptText, encodedImage)
	if err != nil {
		return nil, err
	}

	// Sanitize before counting output tokens: stripping leaked leniency
	// phrases changes the text length the count is based on.
	gradingText := sanitize.CleanLeniencyMentions(rawText)
	outputTokens := s.estimator.CountTokens(gradingText)

	inputCost := util.RoundTo(float64(inputTokens)/1e6*domain.InputTokenPricePerMillion, 6)
	outputCost := util.RoundTo(float64(outputTokens)/1e6*domain.OutputTokenPricePerMillion, 6)
	totalCost := util.RoundTo(inputCost+outputCost, 6)

	s.recorder.RecordAPIUsage("GradeEssay", s.model, inputTokens, outputTokens, inputCost, outputCost, totalCost)

	cost := domain.CostSummary{
		InputTokens:    inputTokens,
		OutputTokens:   outputTokens,
		InputCost:      inputCost,
		OutputCost:     outputCost,
		TotalCost:      totalCost,
		ElapsedSeconds: time.Since(start).Seconds(),
	}

	return &domain.GradingResult{
		ID:          util.NewULID(),
		FileName:    filepath.Base(req.ImagePath),
		Status:      domain.StatusSuccess,
		GradingText: gradingText,
		Cost:        cost,
		CostText:    cost.Format(),
	}, nil
}

var _ domain.EssayGrader = (*essayGradingService)(nil)
