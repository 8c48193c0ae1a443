package service

import (
	"fmt"

	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/model"
)

// ValidatedAnswer is the sealed variant set produced by submission
// validation. Each question type has exactly one variant, carrying the
// payload plus the question metadata scoring needs, so the scoring engine can
// dispatch statically and never re-checks the catalog.
type ValidatedAnswer interface {
	validatedAnswer()
}

// ValidatedSummarizeSpokenText is a well-formed SST submission.
type ValidatedSummarizeSpokenText struct {
	Text string
}

// ValidatedReorderParagraph is a well-formed RO submission: Order is a
// permutation of 1..len(Paragraphs), and Paragraphs is the authoritative
// creation-order slice the successor table is built from.
type ValidatedReorderParagraph struct {
	Order      []int
	Paragraphs []model.Paragraph
}

// ValidatedReadingChoice is a well-formed RMMCQ submission: SelectedIDs are
// distinct option IDs all belonging to Options.
type ValidatedReadingChoice struct {
	SelectedIDs []int
	Options     []model.Option
}

func (ValidatedSummarizeSpokenText) validatedAnswer() {}
func (ValidatedReorderParagraph) validatedAnswer()    {}
func (ValidatedReadingChoice) validatedAnswer()       {}

// ValidateSubmission checks a raw answer payload against the rules of the
// question's type. It is a pure check: no state is created on either outcome.
// Failures are *apperrors.ValidationError with a machine-readable sub-reason;
// a question whose detail rows are missing is a *apperrors.StateError since
// that can only happen through broken catalog data, not through client input.
func ValidateSubmission(question *model.Question, req dto.SubmitAnswerRequest) (ValidatedAnswer, error) {
	switch question.Type {
	case model.QuestionTypeSST:
		return validateSummarizeSpokenText(question, req)
	case model.QuestionTypeRO:
		return validateReorderParagraph(question, req)
	case model.QuestionTypeRMMCQ:
		return validateReadingChoice(question, req)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidType, question.Type)
	}
}

func validateSummarizeSpokenText(question *model.Question, req dto.SubmitAnswerRequest) (ValidatedAnswer, error) {
	if question.SSTDetail == nil {
		return nil, apperrors.NewStateError("validate", fmt.Sprintf("question %d has no SST detail", question.ID))
	}
	if req.SubmittedText == nil {
		return nil, apperrors.NewValidationError("submitted_text", apperrors.ReasonMissingPayload,
			"an SST answer must carry submitted_text")
	}
	// Any length is acceptable at this layer; form is judged by the grader.
	return ValidatedSummarizeSpokenText{Text: *req.SubmittedText}, nil
}

func validateReorderParagraph(question *model.Question, req dto.SubmitAnswerRequest) (ValidatedAnswer, error) {
	if question.ReorderDetail == nil || len(question.ReorderDetail.Paragraphs) == 0 {
		return nil, apperrors.NewStateError("validate", fmt.Sprintf("question %d has no paragraphs", question.ID))
	}
	paragraphs := question.ReorderDetail.Paragraphs
	count := len(paragraphs)

	order := req.ParagraphOrder
	if order == nil {
		return nil, apperrors.NewValidationError("paragraph_order", apperrors.ReasonMissingPayload,
			"a re-order answer must carry paragraph_order as a list of integers")
	}
	if len(order) != count {
		return nil, apperrors.NewValidationError("paragraph_order", apperrors.ReasonWrongLength,
			fmt.Sprintf("expected %d paragraph positions, got %d", count, len(order)))
	}
	seen := make(map[int]bool, count)
	for _, pos := range order {
		if pos < 1 || pos > count {
			return nil, apperrors.NewValidationError("paragraph_order", apperrors.ReasonOutOfRange,
				fmt.Sprintf("paragraph position %d is outside [1, %d]", pos, count))
		}
		if seen[pos] {
			return nil, apperrors.NewValidationError("paragraph_order", apperrors.ReasonDuplicate,
				fmt.Sprintf("paragraph position %d appears more than once", pos))
		}
		seen[pos] = true
	}
	return ValidatedReorderParagraph{Order: order, Paragraphs: paragraphs}, nil
}

func validateReadingChoice(question *model.Question, req dto.SubmitAnswerRequest) (ValidatedAnswer, error) {
	if question.ReadingDetail == nil || len(question.ReadingDetail.Options) == 0 {
		return nil, apperrors.NewStateError("validate", fmt.Sprintf("question %d has no options", question.ID))
	}
	options := question.ReadingDetail.Options

	selected := req.SelectedOptionIDs
	if selected == nil {
		return nil, apperrors.NewValidationError("selected_option_ids", apperrors.ReasonMissingPayload,
			"a reading answer must carry selected_option_ids as a list of integers")
	}
	if len(selected) == 0 {
		return nil, apperrors.NewValidationError("selected_option_ids", apperrors.ReasonEmptySelection,
			"at least one option must be selected")
	}

	valid := make(map[int]bool, len(options))
	for _, opt := range options {
		valid[int(opt.ID)] = true
	}
	seen := make(map[int]bool, len(selected))
	for _, id := range selected {
		if !valid[id] {
			return nil, apperrors.NewValidationError("selected_option_ids", apperrors.ReasonUnknownOption,
				fmt.Sprintf("option %d does not belong to question %d", id, question.ID))
		}
		if seen[id] {
			return nil, apperrors.NewValidationError("selected_option_ids", apperrors.ReasonDuplicate,
				fmt.Sprintf("option %d is selected more than once", id))
		}
		seen[id] = true
	}
	return ValidatedReadingChoice{SelectedIDs: selected, Options: options}, nil
}
