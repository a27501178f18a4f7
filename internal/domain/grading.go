package domain

import (
	"fmt"
	"strings"
)

// Result statuses for a single graded essay.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// UnnamedStudent is the placeholder used when no student name was supplied.
const UnnamedStudent = "Unnamed Student"

// FailedGradingText is the fixed grading text attached to error-status results.
const FailedGradingText = "Grading could not be completed for this essay."

// Grade level bands. The prompt builder carries a fixed expectation block for
// each of these; any other value falls back to a generic expectations line.
const (
	GradeElementaryK2   = "Elementary School (K-2)"
	GradeElementary35   = "Elementary School (3-5)"
	GradeMiddleSchool   = "Middle School (6-8)"
	GradeHighSchool910  = "High School (9-10)"
	GradeHighSchool1112 = "High School (11-12)"
	GradeCollegeLower   = "College Freshman/Sophomore"
	GradeCollegeUpper   = "College Junior/Senior"
	GradeGraduate       = "Graduate Level"
)

// GradeLevels returns the supported grade level bands in display order.
func GradeLevels() []string {
	return []string{
		GradeElementaryK2,
		GradeElementary35,
		GradeMiddleSchool,
		GradeHighSchool910,
		GradeHighSchool1112,
		GradeCollegeLower,
		GradeCollegeUpper,
		GradeGraduate,
	}
}

// Leniency dial bounds.
const (
	MinLeniency = 1
	MaxLeniency = 10
)

// RubricCriterion is a single grading criterion. The name doubles as the
// score-range label shown to the model, e.g. "Content (0-30)".
type RubricCriterion struct {
	Name        string
	Description string
}

// Rubric is an insertion-ordered collection of criteria with unique names.
// Iteration order is meaningful: it drives prompt rendering order.
type Rubric struct {
	criteria []RubricCriterion
	index    map[string]int
}

// NewRubric creates an empty rubric.
func NewRubric() *Rubric {
	return &Rubric{index: make(map[string]int)}
}

// Add appends a criterion, or updates the description in place when a
// criterion with the same name already exists (its position is kept).
func (r *Rubric) Add(name, description string) {
	if i, ok := r.index[name]; ok {
		r.criteria[i].Description = description
		return
	}
	r.index[name] = len(r.criteria)
	r.criteria = append(r.criteria, RubricCriterion{Name: name, Description: description})
}

// Remove deletes a criterion by name. Positions of the remaining criteria
// are preserved.
func (r *Rubric) Remove(name string) {
	i, ok := r.index[name]
	if !ok {
		return
	}
	r.criteria = append(r.criteria[:i], r.criteria[i+1:]...)
	delete(r.index, name)
	for j := i; j < len(r.criteria); j++ {
		r.index[r.criteria[j].Name] = j
	}
}

// Criteria returns the criteria in insertion order.
func (r *Rubric) Criteria() []RubricCriterion {
	return r.criteria
}

// Len returns the number of criteria.
func (r *Rubric) Len() int {
	return len(r.criteria)
}

// DefaultRubric returns the seed rubric used when the caller supplies none.
func DefaultRubric() *Rubric {
	r := NewRubric()
	r.Add("Content (0-30)", "Evaluate the depth, relevance, and accuracy of the essay content.")
	r.Add("Organization (0-20)", "Assess structure, flow, and logical progression of ideas.")
	r.Add("Language & Style (0-20)", "Assess clarity, vocabulary, sentence variety, and tone.")
	r.Add("Grammar & Mechanics (0-20)", "Evaluate grammar, spelling, punctuation, and adherence to writing conventions.")
	r.Add("Critical Thinking (0-10)", "Assess analytical depth, originality, and insights.")
	return r
}

// GradingRequest carries everything needed to grade one essay image. It is
// constructed per call and not retained.
type GradingRequest struct {
	ImagePath    string
	Rubric       *Rubric
	Instructions string
	GradeLevel   string
	Leniency     int
}

// Validate checks the request invariants.
func (r *GradingRequest) Validate() error {
	if strings.TrimSpace(r.ImagePath) == "" {
		return NewValidationError("image path is required")
	}
	if r.Rubric == nil || r.Rubric.Len() == 0 {
		return NewValidationError("rubric must contain at least one criterion")
	}
	if r.Leniency < MinLeniency || r.Leniency > MaxLeniency {
		return NewValidationError(fmt.Sprintf("leniency must be between %d and %d, got %d", MinLeniency, MaxLeniency, r.Leniency))
	}
	return nil
}

// GradingResult is the outcome of grading one essay.
type GradingResult struct {
	ID           string
	StudentName  string
	FileName     string
	Status       string
	GradingText  string
	ErrorMessage string
	Cost         CostSummary
	CostText     string
}

// BatchItem pairs an essay image with the student it belongs to.
type BatchItem struct {
	ImagePath   string
	StudentName string
}

// BatchSummary aggregates one batch run. It is derived, recomputed per run,
// and never persisted.
type BatchSummary struct {
	TotalEssays         int
	SuccessfulEssays    int
	FailedEssays        int
	TotalCost           float64
	TotalCostText       string
	TotalTime           string
	AverageTimePerEssay string
}
