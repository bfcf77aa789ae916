package ports

// RandomSource supplies uniform choices to the story assembler.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n is always positive.
	IntN(n int) int
}
