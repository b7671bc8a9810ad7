package driven

// TermSource supplies random search terms.
type TermSource interface {
	// Next returns a uniformly chosen term.
	Next() string

	// Len returns the number of available terms.
	Len() int
}
