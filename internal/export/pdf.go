package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"essay-grader/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// AssignmentInfo is the report metadata printed in the PDF header.
type AssignmentInfo struct {
	Title        string
	Instructions string
	GradeLevel   string
}

const defaultReportTitle = "Essay Assessment Report"

// GeneratePDF renders grading results into a printable PDF: title, generation
// timestamp, assignment metadata, then one feedback block per student.
func GeneratePDF(results []*domain.GradingResult, info AssignmentInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	title := info.Title
	if title == "" {
		title = defaultReportTitle
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Generated on: %s", time.Now().Format("2006-01-02 15:04:05"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Assignment Details:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	gradeLevel := info.GradeLevel
	if gradeLevel == "" {
		gradeLevel = "Not specified"
	}
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("Grade Level: %s", gradeLevel)), "", "L", false)

	instructions := info.Instructions
	if instructions == "" {
		instructions = "No instructions provided"
	}
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("Instructions: %s", instructions)), "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Grading Results:", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for i, result := range results {
		name := result.StudentName
		if name == "" {
			name = fmt.Sprintf("Student %d", i+1)
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("Student: %s", name)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, "Feedback:", "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		feedback := result.GradingText
		if feedback == "" {
			feedback = "No feedback provided"
		}
		for _, line := range strings.Split(feedback, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
