package domain

type SessionState string

const (
	SessionNotStarted     SessionState = "not_started"
	SessionAwaitingAnswer SessionState = "awaiting_answer"
	SessionFinished       SessionState = "finished"
)

// MatchKind classifies the strength of a final recommendation.
type MatchKind string

const (
	MatchSuggested MatchKind = "suggested"
	MatchFallback  MatchKind = "fallback"
	MatchNone      MatchKind = "none"
)
