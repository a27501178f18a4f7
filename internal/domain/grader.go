package domain

import "context"

// EssayGrader grades a single handwritten essay image. Any failure (image
// I/O, transport, API) propagates to the caller; only the batch boundary
// converts failures into error-status results.
type EssayGrader interface {
	GradeEssay(ctx context.Context, req *GradingRequest) (*GradingResult, error)
}

// BatchGrader grades a list of essays sequentially with per-item failure
// isolation. One failing essay never aborts the batch.
type BatchGrader interface {
	GradeBatch(ctx context.Context, items []BatchItem, rubric *Rubric, instructions, gradeLevel string, leniency int) ([]*GradingResult, *BatchSummary)
}
