package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Score breakdown dimension names, shared with history projection.
const (
	DimensionContent    = "content"
	DimensionForm       = "form"
	DimensionGrammar    = "grammar"
	DimensionVocabulary = "vocabulary"
	DimensionSpelling   = "spelling"
	DimensionPairs      = "adjacent_pairs"
	DimensionChoices    = "choices"
)

// SSTSubScoreMax is the ceiling of each SST sub-score dimension.
const SSTSubScoreMax uint = 2

// ScoreComponent is one dimension of a computed score.
type ScoreComponent struct {
	Name     string
	Score    uint
	MaxScore uint
}

// ScoreBreakdown maps scoring dimensions to {score, max_score}, in a fixed
// display order. TotalScore is always the sum of the component scores.
type ScoreBreakdown struct {
	Components []ScoreComponent
	TotalScore uint
	MaxScore   uint
}

// ScoringService converts a validated submission into a score breakdown. It
// assumes validation has already run; out-of-contract input surfaces as a
// StateError rather than being coerced to a zero score.
type ScoringService interface {
	// Score dispatches on the validated answer's variant. Deterministic for
	// re-order and reading-choice answers; the SST variant is a random
	// placeholder grader and is not reproducible from the submitted text.
	Score(validated ValidatedAnswer) (ScoreBreakdown, error)

	// ScoreSummarizeSpokenTextAnswer is the deferred grading entry point: it
	// loads the stored SST answer, grades it and persists the sub-scores.
	// Re-invocation recomputes and overwrites. A failed attempt leaves the
	// score fields at zero with the answer still marked unscored.
	ScoreSummarizeSpokenTextAnswer(ctx context.Context, answerID uint) error
}

type scoringService struct {
	answerRepo repository.AnswerRepository
}

func NewScoringService(answerRepo repository.AnswerRepository) ScoringService {
	return &scoringService{answerRepo: answerRepo}
}

func (s *scoringService) Score(validated ValidatedAnswer) (ScoreBreakdown, error) {
	switch v := validated.(type) {
	case ValidatedSummarizeSpokenText:
		return scoreSummarizeSpokenText(), nil
	case ValidatedReorderParagraph:
		return scoreReorderParagraph(v)
	case ValidatedReadingChoice:
		return scoreReadingChoice(v), nil
	default:
		return ScoreBreakdown{}, apperrors.NewStateError("score", fmt.Sprintf("unknown validated answer variant %T", validated))
	}
}

// scoreSummarizeSpokenText draws five independent uniform sub-scores in
// [0,2]. This is a stand-in for a real NLP grader kept behind the same
// interface as the deterministic variants, so it can be replaced without
// touching validation or history projection.
func scoreSummarizeSpokenText() ScoreBreakdown {
	names := []string{DimensionContent, DimensionForm, DimensionGrammar, DimensionVocabulary, DimensionSpelling}
	components := make([]ScoreComponent, 0, len(names))
	var total uint
	for _, name := range names {
		score := uint(rand.IntN(int(SSTSubScoreMax) + 1))
		components = append(components, ScoreComponent{Name: name, Score: score, MaxScore: SSTSubScoreMax})
		total += score
	}
	return ScoreBreakdown{
		Components: components,
		TotalScore: total,
		MaxScore:   uint(len(names)) * SSTSubScoreMax,
	}
}

// scoreReorderParagraph counts adjacent pairs of the submitted order whose
// successor matches the authoritative table. The table is indexed by the
// paragraphs' creation order, exactly as stored; re-sorting them by any other
// key would silently change scores.
func scoreReorderParagraph(v ValidatedReorderParagraph) (ScoreBreakdown, error) {
	count := len(v.Paragraphs)
	if count == 0 {
		return ScoreBreakdown{}, apperrors.NewStateError("score", "re-order answer has no paragraphs")
	}
	// Validation guarantees the order is a permutation of 1..count, but the
	// bounds are re-checked here so broken input can never read out of range.
	for _, pos := range v.Order {
		if pos < 1 || pos > count {
			return ScoreBreakdown{}, apperrors.NewStateError("score",
				fmt.Sprintf("paragraph position %d outside [1, %d]; submission was not validated", pos, count))
		}
	}

	var correct uint
	for i := 0; i+1 < len(v.Order); i++ {
		next := v.Paragraphs[v.Order[i]-1].CorrectNextOrder
		if next != nil && int(*next) == v.Order[i+1] {
			correct++
		}
	}
	return ScoreBreakdown{
		Components: []ScoreComponent{{Name: DimensionPairs, Score: correct, MaxScore: uint(count - 1)}},
		TotalScore: correct,
		MaxScore:   uint(count - 1),
	}, nil
}

// scoreReadingChoice awards +1 per correct selection and -1 per incorrect
// one, clamped at zero. The natural maximum is the question's correct-option
// count; exceeding it is structurally impossible once duplicates and foreign
// IDs are rejected.
func scoreReadingChoice(v ValidatedReadingChoice) ScoreBreakdown {
	correctByID := make(map[int]bool, len(v.Options))
	var maxScore uint
	for _, opt := range v.Options {
		correctByID[int(opt.ID)] = opt.IsCorrect
		if opt.IsCorrect {
			maxScore++
		}
	}

	score := 0
	for _, id := range v.SelectedIDs {
		if correctByID[id] {
			score++
		} else {
			score--
		}
	}
	if score < 0 {
		score = 0
	}
	return ScoreBreakdown{
		Components: []ScoreComponent{{Name: DimensionChoices, Score: uint(score), MaxScore: maxScore}},
		TotalScore: uint(score),
		MaxScore:   maxScore,
	}
}

func (s *scoringService) ScoreSummarizeSpokenTextAnswer(ctx context.Context, answerID uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sstAnswer, err := s.answerRepo.FindSSTAnswerByAnswerID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no SST answer for answer %d", apperrors.ErrAnswerNotFound, answerID)
		}
		return fmt.Errorf("loading SST answer for answer %d: %w", answerID, err)
	}

	breakdown := scoreSummarizeSpokenText()
	for _, c := range breakdown.Components {
		switch c.Name {
		case DimensionContent:
			sstAnswer.ContentScore = c.Score
		case DimensionForm:
			sstAnswer.FormScore = c.Score
		case DimensionGrammar:
			sstAnswer.GrammarScore = c.Score
		case DimensionVocabulary:
			sstAnswer.VocabularyScore = c.Score
		case DimensionSpelling:
			sstAnswer.SpellingScore = c.Score
		}
	}
	sstAnswer.TotalScore = breakdown.TotalScore
	sstAnswer.Scored = true

	if err := s.answerRepo.UpdateSSTAnswer(sstAnswer); err != nil {
		return fmt.Errorf("persisting SST scores for answer %d: %w", answerID, err)
	}

	log.Info().
		Uint("answerID", answerID).
		Uint("totalScore", sstAnswer.TotalScore).
		Msg("SST answer scored")
	return nil
}
