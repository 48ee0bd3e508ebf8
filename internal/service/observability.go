package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/pathfinderhq/pathfinder/internal/contract"
)

// AnswerObserver receives an event after every recorded answer, for logging
// or metrics. Observers must not mutate session state.
type AnswerObserver interface {
	OnAnswer(ctx context.Context, event contract.AnswerEvent)
}

// NoopAnswerObserver ignores all events.
type NoopAnswerObserver struct{}

func (NoopAnswerObserver) OnAnswer(context.Context, contract.AnswerEvent) {}

type logAnswerObserver struct {
	logger *slog.Logger
}

// NewLogAnswerObserver writes answer events to the provided writer.
func NewLogAnswerObserver(w io.Writer) AnswerObserver {
	if w == nil {
		return NoopAnswerObserver{}
	}
	return &logAnswerObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logAnswerObserver) OnAnswer(ctx context.Context, event contract.AnswerEvent) {
	o.logger.InfoContext(ctx, "answer_recorded",
		"question", event.QuestionID,
		"attribute", event.AttributeID,
		"viable", event.Viable,
		"suggested", event.Suggested,
		"state", string(event.SessionState),
	)
}
