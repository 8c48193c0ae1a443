package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/cache"
	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/onepte/onepte-backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionService is the read-only question catalog exposed to students.
type QuestionService interface {
	GetAllQuestions(typeFilter *model.QuestionType) ([]dto.QuestionSummaryDTO, error)
	GetQuestionDetails(ctx context.Context, questionID uint) (*dto.QuestionDetailDTO, error)
}

type questionService struct {
	questionRepo  repository.QuestionRepository
	questionCache cache.QuestionCache
}

func NewQuestionService(questionRepo repository.QuestionRepository, questionCache cache.QuestionCache) QuestionService {
	return &questionService{questionRepo: questionRepo, questionCache: questionCache}
}

func (s *questionService) GetAllQuestions(typeFilter *model.QuestionType) ([]dto.QuestionSummaryDTO, error) {
	questions, err := s.questionRepo.FindAll(typeFilter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions from repository")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	summaries := make([]dto.QuestionSummaryDTO, 0, len(questions))
	for _, q := range questions {
		summaries = append(summaries, dto.QuestionSummaryDTO{
			ID:        q.ID,
			Title:     q.Title,
			Type:      string(q.Type),
			CreatedAt: q.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *questionService) GetQuestionDetails(ctx context.Context, questionID uint) (*dto.QuestionDetailDTO, error) {
	if cached, err := s.questionCache.GetQuestionDetail(ctx, questionID); err != nil {
		// Cache trouble must not fail a catalog read.
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Question cache read failed, falling back to database")
	} else if cached != nil {
		return cached, nil
	}

	question, err := s.questionRepo.FindByIDWithDetails(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrQuestionNotFound, questionID)
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to load question details from repository")
		return nil, fmt.Errorf("error fetching question %d: %w", questionID, err)
	}

	detail := ProjectQuestionDetail(question)
	if err := s.questionCache.SetQuestionDetail(ctx, detail); err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Failed to cache question details")
	}
	return detail, nil
}

// ProjectQuestionDetail maps a question with its eager-loaded detail into the
// public detail shape: only the fields of the question's own type are set,
// and answer keys (correct successors, option correctness) are stripped.
func ProjectQuestionDetail(question *model.Question) *dto.QuestionDetailDTO {
	detail := &dto.QuestionDetailDTO{
		ID:        question.ID,
		Title:     question.Title,
		Type:      string(question.Type),
		CreatedAt: question.CreatedAt,
	}

	switch question.Type {
	case model.QuestionTypeSST:
		if question.SSTDetail == nil {
			break
		}
		limit := question.SSTDetail.AnswerTimeLimit
		detail.AnswerTimeLimit = &limit
		copier.Copy(&detail.Audios, &question.SSTDetail.AudioClips)
	case model.QuestionTypeRO:
		if question.ReorderDetail == nil {
			break
		}
		paragraphs := make([]dto.ParagraphDTO, 0, len(question.ReorderDetail.Paragraphs))
		for i, p := range question.ReorderDetail.Paragraphs {
			paragraphs = append(paragraphs, dto.ParagraphDTO{Order: i + 1, Content: p.Content})
		}
		detail.Paragraphs = paragraphs
	case model.QuestionTypeRMMCQ:
		if question.ReadingDetail == nil {
			break
		}
		passage := question.ReadingDetail.Passage
		detail.Passage = &passage
		options := make([]dto.OptionDTO, 0, len(question.ReadingDetail.Options))
		for _, opt := range question.ReadingDetail.Options {
			options = append(options, dto.OptionDTO{ID: opt.ID, Content: opt.Content})
		}
		detail.Options = options
	}
	return detail
}
