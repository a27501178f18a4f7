// Package export renders ordered grading results into the report formats the
// caller hands out: CSV for spreadsheets and PDF for printable reports.
package export

import (
	"encoding/csv"
	"io"
	"strings"

	"essay-grader/internal/domain"
)

var csvHeader = []string{"Student Name", "Total Score", "Feedback"}

// scorePlaceholder fills the Total Score column; numeric score extraction
// from free-text feedback is not implemented.
const scorePlaceholder = "N/A"

// WriteCSV writes grading results to w in input order.
func WriteCSV(w io.Writer, results []*domain.GradingResult) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, result := range results {
		name := result.StudentName
		if name == "" {
			name = domain.UnnamedStudent
		}
		if err := writer.Write([]string{name, scorePlaceholder, result.GradingText}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVString renders grading results as a CSV document.
func CSVString(results []*domain.GradingResult) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, results); err != nil {
		return "", err
	}
	return b.String(), nil
}
