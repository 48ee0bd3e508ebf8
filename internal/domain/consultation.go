package domain

import "time"

// Consultation is the persisted record of one completed quiz run. Only
// finished sessions are stored; in-progress session state lives in memory
// inside the engine and is discarded on restart.
type Consultation struct {
	ID            string
	StartedAt     time.Time
	CompletedAt   time.Time
	AnsweredCount int
	Facts         []string
	Suggested     []string
	Fallback      []string
}
