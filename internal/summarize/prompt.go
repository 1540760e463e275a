package summarize

import (
	"fmt"
	"strings"
)

const summaryInstructions = `Summarize the following document excerpt in plain prose.

Rules:
- Write complete sentences that end with a period
- Keep medical terms (diseases, therapies, drugs, findings) exactly as written
- Do not add facts that are not in the excerpt
- Do not use headings, bullet points or markdown
- Respond with ONLY the summary text`

// BuildPrompt creates the instruction prompt used by chat-style backends.
// maxWords bounds the summary length.
func BuildPrompt(chunk string, maxWords int) string {
	var sb strings.Builder
	sb.WriteString(summaryInstructions)
	if maxWords > 0 {
		sb.WriteString(fmt.Sprintf("\n- Use at most %d words", maxWords))
	}
	sb.WriteString("\n\n---\n")
	sb.WriteString(chunk)
	return sb.String()
}

// wordsForTokens approximates a word budget for a token budget.
func wordsForTokens(tokens int) int {
	return int(float64(tokens) / 1.33)
}
