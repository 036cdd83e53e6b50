package quiz

// Config controls generation behavior.
type Config struct {
	// MaxTokens is the token budget for a single backend response.
	MaxTokens int

	// Temperature controls backend output randomness (0.0-1.0).
	Temperature float64

	// DefaultNumQuestions is used when a request does not specify a count.
	DefaultNumQuestions int
}

// DefaultConfig returns a Config with the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           512,
		Temperature:         0.2,
		DefaultNumQuestions: 6,
	}
}
