package quiz

// QARecord is one generated question/answer pair grounded in the notes.
type QARecord struct {
	// Question is the short question shown to the learner.
	Question string `json:"question"`

	// Answer is the answer text. Short, one or two sentences by convention.
	Answer string `json:"answer"`

	// Text is the excerpt from the notes the pair is based on. Empty only
	// when the notes themselves contained no usable text.
	Text string `json:"text"`
}

// Request describes a single generation request. Requests are independent
// of each other; nothing in a Request is shared across calls.
type Request struct {
	// Notes is the raw study notes text.
	Notes string

	// NumQuestions is the target number of records. Zero or negative
	// values fall back to Config.DefaultNumQuestions.
	NumQuestions int
}
