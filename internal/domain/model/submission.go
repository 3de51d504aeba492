package model

// SubmissionRequest is one POST of problem + solution text from the
// client. Both fields must be non-empty after trimming; the HTTP layer
// rejects the request before the pipeline is ever started otherwise.
type SubmissionRequest struct {
	// Message is the free-form solution write-up.
	Message string `json:"message" validate:"required"`
	// Description is the raw problem statement.
	Description string `json:"description" validate:"required"`
}

// StructuredSolution is the schema-constrained output of the solution
// extraction call: a prose explanation plus the final code, nothing else.
type StructuredSolution struct {
	Explanation string `json:"solutionExplanation"`
	Code        string `json:"code"`
}

// CardContent composes the flashcard document from the reformatted
// problem, the extracted explanation and the code. The layout is fixed:
// problem, a horizontal rule, explanation, then a fenced code block.
// Mochi treats the first "---" as the card side separator, so the
// problem ends up on the front and the solution on the back.
func CardContent(problem, explanation, code string) string {
	return problem + "\n---\n" + explanation + "\n\n```\n" + code + "\n```"
}
