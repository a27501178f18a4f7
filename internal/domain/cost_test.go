package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostSummary_Format(t *testing.T) {
	cost := CostSummary{
		InputTokens:    1234,
		OutputTokens:   567,
		InputCost:      0.001357,
		OutputCost:     0.002495,
		TotalCost:      0.003852,
		ElapsedSeconds: 12.345,
	}

	formatted := cost.Format()

	assert.Contains(t, formatted, "Token Usage Summary:")
	assert.Contains(t, formatted, "Input tokens: 1,234 (includes text and image) - Cost: $0.001357")
	assert.Contains(t, formatted, "Output tokens: 567 - Cost: $0.002495")
	assert.Contains(t, formatted, "Total estimated cost: $0.003852")
	assert.Contains(t, formatted, "Execution time: 12.35 seconds")
}

func TestParseTotalCost_RoundTrip(t *testing.T) {
	cost := CostSummary{
		InputTokens:  2000,
		OutputTokens: 500,
		InputCost:    0.0022,
		OutputCost:   0.0022,
		TotalCost:    0.0044,
	}

	assert.InDelta(t, cost.TotalCost, ParseTotalCost(cost.Format()), 1e-9)
}

func TestParseTotalCost_ToleratesMissingOrBrokenLine(t *testing.T) {
	assert.Equal(t, 0.0, ParseTotalCost(""))
	assert.Equal(t, 0.0, ParseTotalCost("no cost line here at all"))
	assert.Equal(t, 0.0, ParseTotalCost("- Total estimated cost: $not-a-number"))
}
