// Package sanitize strips leniency-leakage phrases from model output. The
// prompt already instructs the model not to reveal the leniency adjustment;
// this pass is the second layer of that defense and remains best-effort.
package sanitize

import "regexp"

// leniencyPatterns are applied in order; matched spans are removed entirely.
var leniencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\(\s*\+\s*\d+(?:\.\d+)?\s*%\s*\)`),
	regexp.MustCompile(`(?i)\+\s*\d+(?:\.\d+)?\s*%`),
	regexp.MustCompile(`(?i)adjusted\s+for\s+leniency`),
	regexp.MustCompile(`(?i)leniency\s+(?:boost|adjustment|bonus)`),
	regexp.MustCompile(`(?i)\bboost(?:ed|ing)?\b`),
	regexp.MustCompile(`(?i)\bbump(?:ed)?\b`),
	regexp.MustCompile(`(?i)\bplus\s+\d+(?:\.\d+)?\s*%`),
	regexp.MustCompile(`(?i)\bleniency\b`),
}

// CleanLeniencyMentions removes leniency-leakage phrases from text. The
// substitution pass repeats until nothing changes, so the function is
// idempotent: removing a span can never assemble a fresh match that survives.
func CleanLeniencyMentions(text string) string {
	cleaned := text
	for {
		next := cleaned
		for _, re := range leniencyPatterns {
			next = re.ReplaceAllString(next, "")
		}
		if next == cleaned {
			return cleaned
		}
		cleaned = next
	}
}
