// Package prompt renders the grading prompt sent to the vision model. Build
// is a pure function of its inputs: same rubric, instructions, grade level
// and leniency always produce the same prompt text.
package prompt

import (
	"fmt"
	"strings"

	"essay-grader/internal/domain"
)

const preamble = "You are an experienced essay grader with expertise in teaching across all educational levels. Grade the handwritten essay in the image based on the following information:\n\n"

// Expectation blocks per grade level band. Each block sets a baseline and an
// explicit ceiling so the model does not hold young students to adult
// standards.
var gradeLevelExpectations = map[string]string{
	domain.GradeElementaryK2: `GRADE LEVEL EXPECTATIONS:
- Simple sentence structure with basic vocabulary
- Basic understanding of beginning, middle, and end
- Emerging spelling and grammar skills
- Simple ideas expressed clearly
- Basic handwriting development
DO NOT expect complex vocabulary, perfect spelling, advanced grammar, or sophisticated reasoning

`,
	domain.GradeElementary35: `GRADE LEVEL EXPECTATIONS:
- Complete sentences and developing paragraphs
- Basic organizational structure
- Growing vocabulary with some descriptive language
- Developing understanding of punctuation and grammar
- Simple but logical supporting details
DO NOT expect sophisticated arguments, complex sentence structures, perfect grammar, or advanced analysis

`,
	domain.GradeMiddleSchool: `GRADE LEVEL EXPECTATIONS:
- Clear paragraph structure with topic sentences
- Developing thesis statements
- Introduction to argumentative writing
- More varied vocabulary and sentence structures
- Basic citations or evidence
DO NOT expect college-level reasoning, sophisticated syntax, perfect consistency, or advanced rhetorical strategies

`,
	domain.GradeHighSchool910: `GRADE LEVEL EXPECTATIONS:
- Clear thesis statements
- Structured essays with introduction, body, conclusion
- Developing analytical thinking
- Use of textual evidence and basic citations
- More varied rhetorical strategies
DO NOT expect undergraduate-level analysis, perfect grammar, or highly sophisticated arguments

`,
	domain.GradeHighSchool1112: `GRADE LEVEL EXPECTATIONS:
- Well-developed thesis statements
- Logical organization with effective transitions
- More sophisticated analysis and arguments
- Understanding of rhetorical strategies
- Stronger evidence and citations
DO NOT expect college-level writing proficiency, perfect mechanics, or graduate-level critical thinking

`,
	domain.GradeCollegeLower: `GRADE LEVEL EXPECTATIONS:
- Clear, analytical thesis statements
- Well-organized essays with effective transitions
- Critical thinking and analysis
- Integration of sources and proper citations
- Command of academic writing conventions
DO NOT expect graduate-level sophistication, perfect mechanics, or professional-level insights

`,
	domain.GradeCollegeUpper: `GRADE LEVEL EXPECTATIONS:
- Sophisticated thesis statements
- Advanced critical thinking and analysis
- Strong command of academic writing conventions
- Well-integrated research and citations
- Awareness of disciplinary conventions
DO NOT expect graduate-level mastery or professional publication quality

`,
	domain.GradeGraduate: `GRADE LEVEL EXPECTATIONS:
- Sophisticated and original thesis statements
- Advanced research integration
- Mastery of academic writing conventions
- Advanced critical analysis and synthesis
- Disciplinary expertise and awareness
Hold to high academic standards while recognizing this is still student work

`,
}

const genericGradeLevelLine = "Consider age-appropriate expectations for this educational level.\n\n"

const veryStrictBlock = `GRADING APPROACH: VERY STRICT
- Be extremely critical in your assessment and deduct points for even minor issues
- For each criterion, score in the lower 30-40% of the possible range when there are any flaws
- For letter grades, consider an A to be nearly unattainable and reserve B grades only for exceptional work
- Apply the highest possible standards and focus primarily on weaknesses
- Deduct 15-25% from what you would normally score the essay

`

const strictBlock = `GRADING APPROACH: STRICT
- Be quite critical in your assessment and emphasize areas for improvement
- For each criterion, score in the lower 40-50% of the possible range when there are flaws
- Hold the student to high standards and be sparing with top scores
- Deduct 5-15% from what you would normally score the essay

`

const balancedBlock = `GRADING APPROACH: BALANCED
- Use a balanced approach that considers both strengths and weaknesses equally
- For each criterion, use the full scoring range appropriately, scoring in the middle 50-70% of the possible range when there are some strengths
- Evaluate the essay objectively against the rubric criteria without bias towards strictness or leniency

`

const lenientBlock = `GRADING APPROACH: LENIENT
- Be generous in your assessment and focus more on strengths than weaknesses
- For each criterion, score in the upper 70-100% of the possible range when there are some strengths
- Give the student the benefit of the doubt in ambiguous cases
- Add 5-15% to what you would normally score the essay

`

const veryLenientBlock = `GRADING APPROACH: VERY LENIENT
- Be extremely generous and primarily focus on the positive aspects of the work
- For each criterion, score in the upper 70-80% of the possible range as long as basic requirements are met
- For letter grades, avoid grades below a C unless requirements are completely missed
- Highlight even small successes and minimize criticism of weaknesses
- Add 15-25% to what you would normally score the essay

`

const closingInstructions = "\nFor each criterion, provide a score and brief explanation. Also provide an overall grade and summary feedback. " +
	"Ground every piece of feedback in evidence from the essay itself, using direct quotes or specific references; mark unreadable handwriting as [illegible]. " +
	"IMPORTANT: Both the grade level AND leniency level should significantly influence your grading. " +
	"First, adjust your baseline expectations according to the student's educational level (do not expect college-level work from elementary students), " +
	"then apply the leniency adjustment to that grade-appropriate baseline. " +
	"Do NOT mention, quantify, or otherwise reveal the leniency adjustment anywhere in your feedback. " +
	"Your feedback should be appropriate for the student's educational level in both content and tone."

// leniencyBlock selects the grading-approach block for a leniency dial value.
// Buckets: [1,2] very strict, [3,4] strict, [5,6] balanced, [7,8] lenient,
// [9,10] very lenient.
func leniencyBlock(leniency int) string {
	switch {
	case leniency <= 2:
		return veryStrictBlock
	case leniency <= 4:
		return strictBlock
	case leniency <= 6:
		return balancedBlock
	case leniency <= 8:
		return lenientBlock
	default:
		return veryLenientBlock
	}
}

// Build renders the grading prompt. No external calls, no randomness.
func Build(rubric *domain.Rubric, instructions, gradeLevel string, leniency int) string {
	var b strings.Builder
	b.WriteString(preamble)

	if gradeLevel != "" {
		fmt.Fprintf(&b, "GRADE LEVEL: %s\n", gradeLevel)
	}
	if block, ok := gradeLevelExpectations[gradeLevel]; ok {
		b.WriteString(block)
	} else {
		b.WriteString(genericGradeLevelLine)
	}

	b.WriteString(leniencyBlock(leniency))

	if instructions != "" {
		fmt.Fprintf(&b, "ASSIGNMENT INSTRUCTIONS:\n%s\n\n", instructions)
	}

	b.WriteString("RUBRIC CRITERIA:\n")
	if rubric != nil {
		for _, criterion := range rubric.Criteria() {
			fmt.Fprintf(&b, "- %s: %s\n", criterion.Name, criterion.Description)
		}
	}

	b.WriteString(closingInstructions)
	return b.String()
}
