package service

import (
	"fmt"

	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/onepte/onepte-backend/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	DefaultHistoryPageSize = 10
	MaxHistoryPageSize     = 50
)

// HistoryService projects stored answers back into the uniform score-summary
// shape. Read-only: it never recomputes a score.
type HistoryService interface {
	ListHistory(userID uint, typeFilter *model.QuestionType, page, pageSize int) (*dto.PagedHistoryDTO, error)
}

type historyService struct {
	answerRepo repository.AnswerRepository
}

func NewHistoryService(answerRepo repository.AnswerRepository) HistoryService {
	return &historyService{answerRepo: answerRepo}
}

func (s *historyService) ListHistory(userID uint, typeFilter *model.QuestionType, page, pageSize int) (*dto.PagedHistoryDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultHistoryPageSize
	}
	if pageSize > MaxHistoryPageSize {
		pageSize = MaxHistoryPageSize
	}

	total, err := s.answerRepo.CountByUser(userID, typeFilter)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListHistory: failed to count answers")
		return nil, fmt.Errorf("error counting answer history: %w", err)
	}

	answers, err := s.answerRepo.FindPageByUser(userID, typeFilter, (page-1)*pageSize, pageSize)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListHistory: failed to fetch answer page")
		return nil, fmt.Errorf("error fetching answer history: %w", err)
	}

	items := make([]dto.HistoryItemDTO, 0, len(answers))
	for i := range answers {
		items = append(items, projectHistoryItem(&answers[i]))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &dto.PagedHistoryDTO{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// projectHistoryItem dispatches on the answer's question type to build the
// uniform breakdown from the stored type-specific record. An answer whose
// child record is missing is reported as pending rather than dropped.
func projectHistoryItem(answer *model.Answer) dto.HistoryItemDTO {
	item := dto.HistoryItemDTO{
		AnswerID:      answer.ID,
		QuestionID:    answer.QuestionID,
		QuestionTitle: answer.Question.Title,
		QuestionType:  string(answer.Question.Type),
		SubmittedAt:   answer.CreatedAt,
	}

	switch answer.Question.Type {
	case model.QuestionTypeSST:
		if answer.SSTAnswer == nil {
			log.Warn().Uint("answerID", answer.ID).Msg("History: SST answer record missing")
			item.ScoringPending = true
			break
		}
		if !answer.SSTAnswer.Scored {
			item.ScoringPending = true
			break
		}
		item.Breakdown = sstBreakdown(answer.SSTAnswer)

	case model.QuestionTypeRO:
		if answer.ReorderAnswer == nil {
			log.Warn().Uint("answerID", answer.ID).Msg("History: re-order answer record missing")
			item.ScoringPending = true
			break
		}
		var maxScore uint
		if detail := answer.Question.ReorderDetail; detail != nil && len(detail.Paragraphs) > 0 {
			maxScore = uint(len(detail.Paragraphs) - 1)
		}
		item.Breakdown = &dto.ScoreBreakdownDTO{
			Components: []dto.ScoreComponentDTO{{Name: DimensionPairs, Score: answer.ReorderAnswer.TotalScore, MaxScore: maxScore}},
			TotalScore: answer.ReorderAnswer.TotalScore,
			MaxScore:   maxScore,
		}

	case model.QuestionTypeRMMCQ:
		if answer.ReadingAnswer == nil {
			log.Warn().Uint("answerID", answer.ID).Msg("History: reading answer record missing")
			item.ScoringPending = true
			break
		}
		var maxScore uint
		if detail := answer.Question.ReadingDetail; detail != nil {
			for _, opt := range detail.Options {
				if opt.IsCorrect {
					maxScore++
				}
			}
		}
		item.Breakdown = &dto.ScoreBreakdownDTO{
			Components: []dto.ScoreComponentDTO{{Name: DimensionChoices, Score: answer.ReadingAnswer.TotalScore, MaxScore: maxScore}},
			TotalScore: answer.ReadingAnswer.TotalScore,
			MaxScore:   maxScore,
		}
	}
	return item
}

func sstBreakdown(answer *model.SummarizeSpokenTextAnswer) *dto.ScoreBreakdownDTO {
	components := []dto.ScoreComponentDTO{
		{Name: DimensionContent, Score: answer.ContentScore, MaxScore: SSTSubScoreMax},
		{Name: DimensionForm, Score: answer.FormScore, MaxScore: SSTSubScoreMax},
		{Name: DimensionGrammar, Score: answer.GrammarScore, MaxScore: SSTSubScoreMax},
		{Name: DimensionVocabulary, Score: answer.VocabularyScore, MaxScore: SSTSubScoreMax},
		{Name: DimensionSpelling, Score: answer.SpellingScore, MaxScore: SSTSubScoreMax},
	}
	return &dto.ScoreBreakdownDTO{
		Components: components,
		TotalScore: answer.TotalScore,
		MaxScore:   uint(len(components)) * SSTSubScoreMax,
	}
}
