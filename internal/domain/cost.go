package domain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Token pricing for the pinned model, dollars per million tokens. These are
// part of the cost-accounting contract and must match across runs.
const (
	InputTokenPricePerMillion  = 1.10
	OutputTokenPricePerMillion = 4.40
)

// costPrinter renders token counts with thousands separators.
var costPrinter = message.NewPrinter(language.English)

// CostSummary is the structured token-usage and cost accounting for one
// grading call. Costs are rounded to 6 decimal places for display.
type CostSummary struct {
	InputTokens    int
	OutputTokens   int
	InputCost      float64
	OutputCost     float64
	TotalCost      float64
	ElapsedSeconds float64
}

// Format renders the human-readable cost summary attached to grading results.
func (c CostSummary) Format() string {
	var b strings.Builder
	b.WriteString("Token Usage Summary:\n")
	costPrinter.Fprintf(&b, "- Input tokens: %d (includes text and image) - Cost: $%.6f\n", c.InputTokens, c.InputCost)
	costPrinter.Fprintf(&b, "- Output tokens: %d - Cost: $%.6f\n", c.OutputTokens, c.OutputCost)
	fmt.Fprintf(&b, "- Total estimated cost: $%.6f\n", c.TotalCost)
	fmt.Fprintf(&b, "- Execution time: %.2f seconds", c.ElapsedSeconds)
	return b.String()
}

// ParseTotalCost recovers the numeric total from a formatted cost summary.
// It returns 0 when the summary has no parseable "Total estimated cost" line,
// so failed essays contribute nothing to a batch total.
func ParseTotalCost(summary string) float64 {
	for _, line := range strings.Split(summary, "\n") {
		_, after, found := strings.Cut(line, "Total estimated cost:")
		if !found {
			continue
		}
		value := strings.TrimSpace(after)
		value = strings.TrimPrefix(value, "$")
		value = strings.ReplaceAll(value, ",", "")
		cost, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return cost
	}
	return 0
}
