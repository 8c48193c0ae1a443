package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog/log"
)

// TopicSSTScoring carries deferred Summarize Spoken Text grading jobs. The
// job is only a delivery mechanism: the scoring algorithm itself lives in the
// scoring service the worker calls.
const TopicSSTScoring = "sst.answer.scoring"

// ScoringJob asks the worker to grade one stored SST answer.
type ScoringJob struct {
	AnswerID uint `json:"answer_id"`
}

// Bus is the in-process Pub/Sub used for async scoring delivery. The job
// never leaves the process, so Watermill's GoChannel transport is enough; a
// broker-backed transport could be swapped in behind the same interfaces.
type Bus struct {
	channel *gochannel.GoChannel
}

func NewBus() *Bus {
	logger := NewZerologAdapter(log.Logger)
	return &Bus{
		channel: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger),
	}
}

func (b *Bus) Close() error {
	return b.channel.Close()
}

// ScoringDispatcher hands an SST answer off for asynchronous grading.
type ScoringDispatcher interface {
	DispatchSSTScoring(ctx context.Context, answerID uint) error
}

type busDispatcher struct {
	bus *Bus
}

func NewScoringDispatcher(bus *Bus) ScoringDispatcher {
	return &busDispatcher{bus: bus}
}

func (d *busDispatcher) DispatchSSTScoring(ctx context.Context, answerID uint) error {
	payload, err := json.Marshal(ScoringJob{AnswerID: answerID})
	if err != nil {
		return fmt.Errorf("marshalling scoring job for answer %d: %w", answerID, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("topic", TopicSSTScoring)

	if err := d.bus.channel.Publish(TopicSSTScoring, msg); err != nil {
		return fmt.Errorf("publishing scoring job for answer %d: %w", answerID, err)
	}

	log.Info().Uint("answerID", answerID).Str("messageID", msg.UUID).Msg("Dispatched SST scoring job")
	return nil
}
