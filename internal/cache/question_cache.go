package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const questionDetailTTL = 10 * time.Minute

// QuestionCache caches question detail projections. The catalog is read-only
// from the submission path's perspective, so entries only need invalidation
// when an admin authors or changes a question.
type QuestionCache interface {
	GetQuestionDetail(ctx context.Context, questionID uint) (*dto.QuestionDetailDTO, error)
	SetQuestionDetail(ctx context.Context, detail *dto.QuestionDetailDTO) error
	InvalidateQuestionDetail(ctx context.Context, questionID uint) error
}

type redisQuestionCache struct {
	client *redis.Client
}

func NewQuestionCache(client *redis.Client) QuestionCache {
	return &redisQuestionCache{client: client}
}

func questionDetailKey(questionID uint) string {
	return fmt.Sprintf("onepte:question:detail:%d", questionID)
}

// GetQuestionDetail returns (nil, nil) on a cache miss.
func (c *redisQuestionCache) GetQuestionDetail(ctx context.Context, questionID uint) (*dto.QuestionDetailDTO, error) {
	raw, err := c.client.Get(ctx, questionDetailKey(questionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading question %d from cache: %w", questionID, err)
	}

	var detail dto.QuestionDetailDTO
	if err := json.Unmarshal(raw, &detail); err != nil {
		// A corrupt entry is dropped so the next read repopulates it.
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Dropping corrupt question cache entry")
		_ = c.client.Del(ctx, questionDetailKey(questionID)).Err()
		return nil, nil
	}
	return &detail, nil
}

func (c *redisQuestionCache) SetQuestionDetail(ctx context.Context, detail *dto.QuestionDetailDTO) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("marshalling question %d for cache: %w", detail.ID, err)
	}
	return c.client.Set(ctx, questionDetailKey(detail.ID), raw, questionDetailTTL).Err()
}

func (c *redisQuestionCache) InvalidateQuestionDetail(ctx context.Context, questionID uint) error {
	return c.client.Del(ctx, questionDetailKey(questionID)).Err()
}
