package export

import (
	"testing"

	"essay-grader/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePDF_ProducesValidDocument(t *testing.T) {
	results := []*domain.GradingResult{
		{StudentName: "Ada", GradingText: "Overall grade: A.\nStrong thesis and evidence."},
		{StudentName: "", GradingText: ""},
	}
	info := AssignmentInfo{
		Title:        "Midterm Essay Report",
		Instructions: "Argue for or against school uniforms.",
		GradeLevel:   domain.GradeMiddleSchool,
	}

	data, err := GeneratePDF(results, info)

	assert.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestGeneratePDF_EmptyMetadataAndResults(t *testing.T) {
	data, err := GeneratePDF(nil, AssignmentInfo{})

	assert.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}
