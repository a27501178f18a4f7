package sanitize

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var plusPercent = regexp.MustCompile(`\+\s*\d+(?:\.\d+)?\s*%`)

func TestCleanLeniencyMentions_RemovesScoreAdjustments(t *testing.T) {
	cleaned := CleanLeniencyMentions("Score: 85 (+15%)")

	assert.False(t, plusPercent.MatchString(cleaned), "cleaned text still contains a +N%% adjustment: %q", cleaned)
	assert.Contains(t, cleaned, "Score: 85")
}

func TestCleanLeniencyMentions_RemovesPhrases(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"adjusted for leniency", "Your grade was adjusted for leniency before finalizing."},
		{"leniency boost", "A Leniency Boost was applied to the final score."},
		{"leniency adjustment", "The leniency adjustment raised the total."},
		{"boosted", "I boosted the organization score."},
		{"boosting", "Boosting your grade as instructed."},
		{"bumped", "The final grade was bumped accordingly."},
		{"plus percent", "Final score plus 10% for effort."},
		{"bare leniency", "Grading used high leniency settings."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned := CleanLeniencyMentions(tt.input)
			assert.NotContains(t, cleaned, "leniency")
			assert.NotContains(t, cleaned, "Leniency")
			assert.NotContains(t, cleaned, "boost")
			assert.NotContains(t, cleaned, "bump")
			assert.False(t, plusPercent.MatchString(cleaned))
		})
	}
}

func TestCleanLeniencyMentions_NoOpOnCleanInput(t *testing.T) {
	input := "The essay demonstrates strong organization. Score: 85/100. Grade: B+."

	assert.Equal(t, input, CleanLeniencyMentions(input))
}

func TestCleanLeniencyMentions_Idempotent(t *testing.T) {
	inputs := []string{
		"Score: 85 (+15%)",
		"Great thesis. +10% applied, grade boosted and bumped up.",
		// Removing "boosted" here assembles a fresh "+ 15%" span; a second
		// pass has to pick it up for clean(clean(x)) == clean(x) to hold.
		"+boosted 15% overall",
		"plain feedback with no adjustments at all",
		"",
	}

	for _, input := range inputs {
		once := CleanLeniencyMentions(input)
		twice := CleanLeniencyMentions(once)
		assert.Equal(t, once, twice, "sanitizer not idempotent for %q", input)
	}
}
