package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRubric_InsertionOrderPreserved(t *testing.T) {
	rubric := NewRubric()
	rubric.Add("B (0-10)", "second letter first")
	rubric.Add("A (0-10)", "first letter second")
	rubric.Add("C (0-10)", "third")

	criteria := rubric.Criteria()
	assert.Len(t, criteria, 3)
	assert.Equal(t, "B (0-10)", criteria[0].Name)
	assert.Equal(t, "A (0-10)", criteria[1].Name)
	assert.Equal(t, "C (0-10)", criteria[2].Name)
}

func TestRubric_AddExistingNameUpdatesInPlace(t *testing.T) {
	rubric := NewRubric()
	rubric.Add("Content (0-30)", "old description")
	rubric.Add("Organization (0-20)", "structure")
	rubric.Add("Content (0-30)", "new description")

	criteria := rubric.Criteria()
	assert.Len(t, criteria, 2)
	assert.Equal(t, "Content (0-30)", criteria[0].Name)
	assert.Equal(t, "new description", criteria[0].Description)
}

func TestRubric_Remove(t *testing.T) {
	rubric := NewRubric()
	rubric.Add("A", "a")
	rubric.Add("B", "b")
	rubric.Add("C", "c")

	rubric.Remove("B")

	criteria := rubric.Criteria()
	assert.Len(t, criteria, 2)
	assert.Equal(t, "A", criteria[0].Name)
	assert.Equal(t, "C", criteria[1].Name)

	// Removing an absent name is a no-op.
	rubric.Remove("missing")
	assert.Equal(t, 2, rubric.Len())

	// Index stays consistent after removal.
	rubric.Add("C", "updated")
	assert.Equal(t, "updated", rubric.Criteria()[1].Description)
}

func TestDefaultRubric_SeedSet(t *testing.T) {
	criteria := DefaultRubric().Criteria()

	names := make([]string, 0, len(criteria))
	for _, c := range criteria {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"Content (0-30)",
		"Organization (0-20)",
		"Language & Style (0-20)",
		"Grammar & Mechanics (0-20)",
		"Critical Thinking (0-10)",
	}, names)
}

func TestGradeLevels_EightBands(t *testing.T) {
	assert.Len(t, GradeLevels(), 8)
}

func TestGradingRequest_Validate(t *testing.T) {
	valid := func() *GradingRequest {
		return &GradingRequest{
			ImagePath: "essay.jpg",
			Rubric:    DefaultRubric(),
			Leniency:  5,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*GradingRequest)
		wantErr bool
	}{
		{"valid request", func(r *GradingRequest) {}, false},
		{"leniency at lower bound", func(r *GradingRequest) { r.Leniency = 1 }, false},
		{"leniency at upper bound", func(r *GradingRequest) { r.Leniency = 10 }, false},
		{"missing image path", func(r *GradingRequest) { r.ImagePath = "  " }, true},
		{"nil rubric", func(r *GradingRequest) { r.Rubric = nil }, true},
		{"empty rubric", func(r *GradingRequest) { r.Rubric = NewRubric() }, true},
		{"leniency below range", func(r *GradingRequest) { r.Leniency = 0 }, true},
		{"leniency above range", func(r *GradingRequest) { r.Leniency = 11 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
