package quiz

import (
	"fmt"
	"strings"
)

const (
	questionPrefixRunes = 40
	answerPrefixRunes   = 80
)

// Padding record used when the notes yield fewer units than asked for.
const (
	paddingQuestion = "Summarize a key idea from the notes."
	paddingAnswer   = "This section explains one of the main concepts."
)

// HeuristicGenerate produces QA records without any model. Deterministic,
// never fails, always returns exactly numQuestions records. Each
// sentence-like unit of the notes becomes one record, in original order;
// the remainder is padded with a canned record whose text is the first
// unit (or empty when the notes produced no units at all).
func HeuristicGenerate(notes string, numQuestions int) []QARecord {
	units := splitUnits(notes)

	recs := make([]QARecord, 0, numQuestions)
	for i := 0; i < len(units) && i < numQuestions; i++ {
		u := units[i]
		recs = append(recs, QARecord{
			Question: fmt.Sprintf("What is the main idea of: '%s...'", truncateRunes(u, questionPrefixRunes)),
			Answer:   fmt.Sprintf("The main idea is that %s.", truncateRunes(u, answerPrefixRunes)),
			Text:     u,
		})
	}

	padText := ""
	if len(units) > 0 {
		padText = units[0]
	}
	for len(recs) < numQuestions {
		recs = append(recs, QARecord{
			Question: paddingQuestion,
			Answer:   paddingAnswer,
			Text:     padText,
		})
	}
	return recs
}

// splitUnits breaks notes into sentence-like units on line breaks and
// periods, trimming whitespace and dropping empty pieces. Original order
// is preserved.
func splitUnits(notes string) []string {
	parts := strings.FieldsFunc(notes, func(r rune) bool {
		return r == '\n' || r == '.'
	})

	units := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			units = append(units, p)
		}
	}
	return units
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
