package validation

import (
	"fmt"
	"strings"

	"essay-grader/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGradingRequest validates a single-essay grading request. The grade
// level is deliberately unconstrained: unrecognized values fall back to
// generic expectations in the prompt instead of failing.
func (v *Validator) ValidateGradingRequest(req *domain.GradingRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.ImagePath) == "" {
		errors = append(errors, domain.NewMissingFieldError("image_path"))
	}

	if req.Rubric == nil || req.Rubric.Len() == 0 {
		errors = append(errors, domain.NewMissingFieldError("rubric"))
	}

	if req.Leniency < domain.MinLeniency || req.Leniency > domain.MaxLeniency {
		errors = append(errors, domain.NewOutOfRangeError("leniency", req.Leniency, domain.MinLeniency, domain.MaxLeniency))
	}

	return errors
}

// ValidateBatchItems validates the image paths of a batch. Student names may
// be empty (a placeholder is substituted downstream).
func (v *Validator) ValidateBatchItems(items []domain.BatchItem) domain.ValidationErrors {
	var errors domain.ValidationErrors

	for i, item := range items {
		if strings.TrimSpace(item.ImagePath) == "" {
			errors = append(errors, domain.NewMissingFieldError(fmt.Sprintf("items[%d].image_path", i)))
		}
	}

	return errors
}
