package quiz

import (
	"fmt"
	"strings"
)

// promptExample is the worked example included in every prompt. Local
// models follow the output shape far more reliably when they see one.
const promptExample = `[
  {
    "question": "What is X?",
    "answer": "X is ...",
    "text": "The sentence or passage from notes about X."
  }
]`

// BuildPrompt renders the instruction prompt for a notes payload and a
// target question count. Pure; the exact wording is a tuning parameter,
// but the output shape (a JSON list of objects with keys "question",
// "answer" and "text") is what Parse expects back.
func BuildPrompt(notes string, numQuestions int) string {
	var b strings.Builder

	b.WriteString("You are a concise study assistant.\n")
	fmt.Fprintf(&b, "Given the notes below, generate %d question-and-answer pairs.\n", numQuestions)
	b.WriteString("Each answer should be short (1-2 sentences) and accurate based on the notes.\n")
	b.WriteString("Include the specific source text from the notes the Q&A is based on.\n")
	b.WriteString(`Return ONLY valid JSON: a list of objects with keys "question", "answer", and "text".`)
	b.WriteString("\n\nExample:\n")
	b.WriteString(promptExample)
	b.WriteString("\n\nNotes:\n")
	b.WriteString(notes)
	b.WriteString("\n")

	return b.String()
}
