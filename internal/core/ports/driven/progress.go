package driven

import "time"

// ProgressReporter receives user-facing progress from the collection loop.
type ProgressReporter interface {
	// RoundStarted is called before each search with the titles collected so far.
	RoundStarted(round, collected, quota int, term string)

	// RateLimited is called before the loop pauses.
	RateLimited(pause time.Duration)

	// Finished is called once the quota is reached.
	Finished(collected, rounds int)
}
