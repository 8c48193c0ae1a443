package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog/log"
)

// AnswerScorer is the slice of the scoring service the worker needs.
type AnswerScorer interface {
	ScoreSummarizeSpokenTextAnswer(ctx context.Context, answerID uint) error
}

// ScoringWorker consumes SST scoring jobs and runs the grader. A job that
// fails is acknowledged after logging: the answer keeps its zero scores and
// stays marked pending, which is what the history endpoint reports.
type ScoringWorker struct {
	bus    *Bus
	scorer AnswerScorer
}

func NewScoringWorker(bus *Bus, scorer AnswerScorer) *ScoringWorker {
	return &ScoringWorker{bus: bus, scorer: scorer}
}

// Run subscribes to the scoring topic and processes jobs until ctx is
// cancelled. It must be started before the first submission is accepted,
// since the in-process channel does not persist messages.
func (w *ScoringWorker) Run(ctx context.Context) error {
	messages, err := w.bus.channel.Subscribe(ctx, TopicSSTScoring)
	if err != nil {
		return err
	}

	log.Info().Str("topic", TopicSSTScoring).Msg("Scoring worker started")
	for msg := range messages {
		w.handle(ctx, msg)
	}
	log.Info().Str("topic", TopicSSTScoring).Msg("Scoring worker stopped")
	return nil
}

func (w *ScoringWorker) handle(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var job ScoringJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		log.Error().Err(err).Str("messageID", msg.UUID).Msg("Scoring worker: malformed job payload")
		return
	}

	if err := w.scorer.ScoreSummarizeSpokenTextAnswer(ctx, job.AnswerID); err != nil {
		log.Error().Err(err).Uint("answerID", job.AnswerID).Msg("Scoring worker: grading failed, answer stays pending")
		return
	}
}
