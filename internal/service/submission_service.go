package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/events"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/onepte/onepte-backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService orchestrates an answer submission: resolve the question,
// validate the payload, persist the answer envelope with its type-specific
// record, and score it. Re-order and reading-choice answers are scored
// synchronously before anything is written, so creating and scoring them is
// one transaction. SST answers are persisted unscored and handed to the
// async grader; the caller polls history for the final score.
type SubmissionService interface {
	Submit(ctx context.Context, questionID uint, req dto.SubmitAnswerRequest) (*dto.SubmissionResultDTO, error)
}

type submissionService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	scoringSvc   ScoringService
	dispatcher   events.ScoringDispatcher
}

func NewSubmissionService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	scoringSvc ScoringService,
	dispatcher events.ScoringDispatcher,
) SubmissionService {
	return &submissionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		scoringSvc:   scoringSvc,
		dispatcher:   dispatcher,
	}
}

func (s *submissionService) Submit(ctx context.Context, questionID uint, req dto.SubmitAnswerRequest) (*dto.SubmissionResultDTO, error) {
	question, err := s.questionRepo.FindByIDWithDetails(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrQuestionNotFound, questionID)
		}
		log.Error().Err(err).Uint("questionID", questionID).Msg("Submit: failed to resolve question")
		return nil, fmt.Errorf("error resolving question %d: %w", questionID, err)
	}

	validated, err := ValidateSubmission(question, req)
	if err != nil {
		// Validation failures create no records; the controller surfaces them
		// as rejected input.
		return nil, err
	}

	answer := model.Answer{
		UserID:     req.UserID,
		QuestionID: question.ID,
	}

	pending := false
	var breakdown *ScoreBreakdown

	switch v := validated.(type) {
	case ValidatedSummarizeSpokenText:
		answer.SSTAnswer = &model.SummarizeSpokenTextAnswer{
			SubmittedText: v.Text,
		}
		pending = true

	case ValidatedReorderParagraph:
		scored, err := s.scoringSvc.Score(v)
		if err != nil {
			log.Error().Err(err).Uint("questionID", question.ID).Msg("Submit: re-order scoring failed")
			return nil, err
		}
		answer.ReorderAnswer = &model.ReorderParagraphAnswer{
			SubmittedOrder: model.IntsToJSON(v.Order),
			TotalScore:     scored.TotalScore,
		}
		breakdown = &scored

	case ValidatedReadingChoice:
		scored, err := s.scoringSvc.Score(v)
		if err != nil {
			log.Error().Err(err).Uint("questionID", question.ID).Msg("Submit: reading-choice scoring failed")
			return nil, err
		}
		answer.ReadingAnswer = &model.ReadingChoiceAnswer{
			SelectedOptionIDs: model.IntsToJSON(v.SelectedIDs),
			TotalScore:        scored.TotalScore,
		}
		breakdown = &scored
	}

	if err := s.answerRepo.Create(&answer); err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Uint("userID", req.UserID).Msg("Submit: failed to persist answer")
		return nil, fmt.Errorf("error persisting answer: %w", err)
	}

	if pending {
		if err := s.dispatcher.DispatchSSTScoring(ctx, answer.ID); err != nil {
			// The answer is stored and stays pending; the grader can be
			// re-triggered later. Do not fail the submission.
			log.Error().Err(err).Uint("answerID", answer.ID).Msg("Submit: failed to dispatch SST scoring job")
		}
	}

	result := &dto.SubmissionResultDTO{
		AnswerID:       answer.ID,
		QuestionID:     question.ID,
		QuestionType:   string(question.Type),
		ScoringPending: pending,
		SubmittedAt:    answer.CreatedAt,
	}
	if breakdown != nil {
		result.Breakdown = breakdownToDTO(*breakdown)
	}

	log.Info().
		Uint("answerID", answer.ID).
		Uint("questionID", question.ID).
		Uint("userID", req.UserID).
		Bool("scoringPending", pending).
		Msg("Answer submitted")
	return result, nil
}

func breakdownToDTO(breakdown ScoreBreakdown) *dto.ScoreBreakdownDTO {
	var out dto.ScoreBreakdownDTO
	if err := copier.Copy(&out, &breakdown); err != nil {
		log.Error().Err(err).Msg("Failed to copy score breakdown to DTO")
	}
	return &out
}
