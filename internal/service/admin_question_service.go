package service

import (
	"fmt"

	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/onepte/onepte-backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// AdminQuestionService is the content-authoring surface: it creates a
// question together with its type-specific detail in one transaction.
type AdminQuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionDetailDTO, error)
}

type adminQuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewAdminQuestionService(questionRepo repository.QuestionRepository) AdminQuestionService {
	return &adminQuestionService{questionRepo: questionRepo}
}

func (s *adminQuestionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionDetailDTO, error) {
	questionType := model.QuestionType(req.Type)
	if !questionType.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidType, req.Type)
	}

	question := model.Question{
		Title: req.Title,
		Type:  questionType,
	}

	switch questionType {
	case model.QuestionTypeSST:
		if req.SST == nil {
			return nil, apperrors.NewValidationError("sst", apperrors.ReasonMissingPayload,
				"an SST question requires the sst detail payload")
		}
		clips := make([]model.AudioClip, 0, len(req.SST.AudioClips))
		for _, c := range req.SST.AudioClips {
			clips = append(clips, model.AudioClip{SpeakerName: c.SpeakerName, FileURL: c.FileURL})
		}
		question.SSTDetail = &model.SummarizeSpokenTextDetail{
			AnswerTimeLimit: req.SST.AnswerTimeLimit,
			AudioClips:      clips,
		}

	case model.QuestionTypeRO:
		if req.Reorder == nil {
			return nil, apperrors.NewValidationError("reorder", apperrors.ReasonMissingPayload,
				"a re-order question requires the reorder detail payload")
		}
		count := len(req.Reorder.Paragraphs)
		sawLast := false
		paragraphs := make([]model.Paragraph, 0, count)
		for i, p := range req.Reorder.Paragraphs {
			if p.CorrectNextOrder == nil {
				sawLast = true
			} else if *p.CorrectNextOrder < 1 || *p.CorrectNextOrder > uint(count) {
				return nil, apperrors.NewValidationError("reorder.paragraphs", apperrors.ReasonOutOfRange,
					fmt.Sprintf("paragraph %d points to successor %d, outside [1, %d]", i+1, *p.CorrectNextOrder, count))
			}
			paragraphs = append(paragraphs, model.Paragraph{Content: p.Content, CorrectNextOrder: p.CorrectNextOrder})
		}
		if !sawLast {
			return nil, apperrors.NewValidationError("reorder.paragraphs", apperrors.ReasonOutOfRange,
				"exactly one paragraph must have no successor (the final one)")
		}
		question.ReorderDetail = &model.ReorderParagraphDetail{Paragraphs: paragraphs}

	case model.QuestionTypeRMMCQ:
		if req.Reading == nil {
			return nil, apperrors.NewValidationError("reading", apperrors.ReasonMissingPayload,
				"a reading question requires the reading detail payload")
		}
		hasCorrect := false
		options := make([]model.Option, 0, len(req.Reading.Options))
		for _, o := range req.Reading.Options {
			if o.IsCorrect {
				hasCorrect = true
			}
			options = append(options, model.Option{Content: o.Content, IsCorrect: o.IsCorrect})
		}
		if !hasCorrect {
			return nil, apperrors.NewValidationError("reading.options", apperrors.ReasonEmptySelection,
				"at least one option must be marked correct")
		}
		question.ReadingDetail = &model.ReadingChoiceDetail{Passage: req.Reading.Passage, Options: options}
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("Failed to create question")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}

	created, err := s.questionRepo.FindByIDWithDetails(question.ID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Failed to reload created question, projecting from in-memory model")
		return ProjectQuestionDetail(&question), nil
	}
	return ProjectQuestionDetail(created), nil
}
