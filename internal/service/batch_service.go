package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"essay-grader/internal/domain"
	"essay-grader/internal/util"

	"go.uber.org/zap"
)

// batchGradingService implements domain.BatchGrader.
type batchGradingService struct {
	grader domain.EssayGrader
	logger *zap.Logger
}

// NewBatchGradingService creates a new instance of batchGradingService.
func NewBatchGradingService(grader domain.EssayGrader, logger *zap.Logger) domain.BatchGrader {
	return &batchGradingService{
		grader: grader,
		logger: logger,
	}
}

// GradeBatch grades items strictly in input order, one synchronous model call
// at a time. Each item runs inside its own failure boundary: an error becomes
// a status=error result and the batch moves on.
func (s *batchGradingService) GradeBatch(
	ctx context.Context,
	items []domain.BatchItem,
	rubric *domain.Rubric,
	instructions, gradeLevel string,
	leniency int,
) ([]*domain.GradingResult, *domain.BatchSummary) {
	start := time.Now()
	s.logger.Info("Starting batch essay grading", zap.Int("essays", len(items)))

	results := make([]*domain.GradingResult, 0, len(items))
	var totalCost float64
	successes := 0
	failures := 0

	for _, item := range items {
		studentName := strings.TrimSpace(item.StudentName)
		if studentName == "" {
			studentName = domain.UnnamedStudent
		}

		req := &domain.GradingRequest{
			ImagePath:    item.ImagePath,
			Rubric:       rubric,
			Instructions: instructions,
			GradeLevel:   gradeLevel,
			Leniency:     leniency,
		}

		result, err := s.grader.GradeEssay(ctx, req)
		if err != nil {
			s.logger.Error("Essay grading failed",
				zap.String("student", studentName),
				zap.String("image", item.ImagePath),
				zap.Error(err))
			results = append(results, &domain.GradingResult{
				ID:           util.NewULID(),
				StudentName:  studentName,
				FileName:     filepath.Base(item.ImagePath),
				Status:       domain.StatusError,
				GradingText:  domain.FailedGradingText,
				ErrorMessage: err.Error(),
			})
			failures++
			continue
		}

		result.StudentName = studentName
		results = append(results, result)
		totalCost += result.Cost.TotalCost
		successes++
	}

	elapsed := time.Since(start)
	averageTime := "0 seconds"
	if len(items) > 0 {
		averageTime = fmt.Sprintf("%.2f seconds", elapsed.Seconds()/float64(len(items)))
	}

	summary := &domain.BatchSummary{
		TotalEssays:         len(items),
		SuccessfulEssays:    successes,
		FailedEssays:        failures,
		TotalCost:           util.RoundTo(totalCost, 6),
		TotalCostText:       fmt.Sprintf("$%.6f", totalCost),
		TotalTime:           fmt.Sprintf("%.2f seconds", elapsed.Seconds()),
		AverageTimePerEssay: averageTime,
	}

	s.logger.Info("Batch essay grading completed",
		zap.Int("successful", successes),
		zap.Int("failed", failures),
		zap.String("total_cost", summary.TotalCostText),
		zap.String("total_time", summary.TotalTime))

	return results, summary
}

var _ domain.BatchGrader = (*batchGradingService)(nil)
