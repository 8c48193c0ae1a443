package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubmissionFixture() (*MockQuestionRepository, *MockAnswerRepository, *MockScoringDispatcher, SubmissionService) {
	questionRepo := new(MockQuestionRepository)
	answerRepo := new(MockAnswerRepository)
	dispatcher := new(MockScoringDispatcher)
	svc := NewSubmissionService(questionRepo, answerRepo, NewScoringService(answerRepo), dispatcher)
	return questionRepo, answerRepo, dispatcher, svc
}

func TestSubmit_ReorderScoredSynchronously(t *testing.T) {
	questionRepo, answerRepo, dispatcher, svc := newSubmissionFixture()
	question := reorderQuestion(5, []*uint{uintPtr(2), uintPtr(3), nil})
	questionRepo.On("FindByIDWithDetails", uint(5)).Return(question, nil)

	var created *model.Answer
	answerRepo.On("Create", mock.AnythingOfType("*model.Answer")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.Answer)
			created.ID = 101
		}).
		Return(nil)

	result, err := svc.Submit(context.Background(), 5, dto.SubmitAnswerRequest{UserID: 7, ParagraphOrder: []int{1, 2, 3}})
	require.NoError(t, err)

	assert.Equal(t, uint(101), result.AnswerID)
	assert.Equal(t, "RO", result.QuestionType)
	assert.False(t, result.ScoringPending)
	require.NotNil(t, result.Breakdown)
	assert.Equal(t, uint(2), result.Breakdown.TotalScore)
	assert.Equal(t, uint(2), result.Breakdown.MaxScore)

	// The answer row already carries the score when it is written.
	require.NotNil(t, created)
	require.NotNil(t, created.ReorderAnswer)
	assert.Equal(t, uint(2), created.ReorderAnswer.TotalScore)
	order, err := created.ReorderAnswer.Order()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)

	dispatcher.AssertNotCalled(t, "DispatchSSTScoring", mock.Anything, mock.Anything)
}

func TestSubmit_ReadingChoiceScoredSynchronously(t *testing.T) {
	questionRepo, answerRepo, dispatcher, svc := newSubmissionFixture()
	question := readingQuestion(6, 1, []bool{true, false, true})
	questionRepo.On("FindByIDWithDetails", uint(6)).Return(question, nil)

	var created *model.Answer
	answerRepo.On("Create", mock.AnythingOfType("*model.Answer")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.Answer)
			created.ID = 102
		}).
		Return(nil)

	result, err := svc.Submit(context.Background(), 6, dto.SubmitAnswerRequest{UserID: 7, SelectedOptionIDs: []int{1, 2}})
	require.NoError(t, err)

	assert.False(t, result.ScoringPending)
	require.NotNil(t, result.Breakdown)
	assert.Equal(t, uint(0), result.Breakdown.TotalScore, "one correct minus one incorrect")

	require.NotNil(t, created.ReadingAnswer)
	var selected []int
	require.NoError(t, json.Unmarshal(created.ReadingAnswer.SelectedOptionIDs, &selected))
	assert.Equal(t, []int{1, 2}, selected)
	dispatcher.AssertNotCalled(t, "DispatchSSTScoring", mock.Anything, mock.Anything)
}

func TestSubmit_SSTDeferredToWorker(t *testing.T) {
	questionRepo, answerRepo, dispatcher, svc := newSubmissionFixture()
	question := sstQuestion(9)
	questionRepo.On("FindByIDWithDetails", uint(9)).Return(question, nil)

	var created *model.Answer
	answerRepo.On("Create", mock.AnythingOfType("*model.Answer")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.Answer)
			created.ID = 103
		}).
		Return(nil)
	dispatcher.On("DispatchSSTScoring", mock.Anything, uint(103)).Return(nil)

	text := "the lecture argued that reefs recover faster than assumed"
	result, err := svc.Submit(context.Background(), 9, dto.SubmitAnswerRequest{UserID: 7, SubmittedText: &text})
	require.NoError(t, err)

	assert.True(t, result.ScoringPending)
	assert.Nil(t, result.Breakdown)

	require.NotNil(t, created.SSTAnswer)
	assert.Equal(t, text, created.SSTAnswer.SubmittedText)
	assert.False(t, created.SSTAnswer.Scored)
	assert.Zero(t, created.SSTAnswer.TotalScore)
	dispatcher.AssertExpectations(t)
}

func TestSubmit_DispatchFailureDoesNotFailSubmission(t *testing.T) {
	questionRepo, answerRepo, dispatcher, svc := newSubmissionFixture()
	questionRepo.On("FindByIDWithDetails", uint(9)).Return(sstQuestion(9), nil)
	answerRepo.On("Create", mock.AnythingOfType("*model.Answer")).
		Run(func(args mock.Arguments) { args.Get(0).(*model.Answer).ID = 104 }).
		Return(nil)
	dispatcher.On("DispatchSSTScoring", mock.Anything, uint(104)).Return(assert.AnError)

	text := "summary"
	result, err := svc.Submit(context.Background(), 9, dto.SubmitAnswerRequest{UserID: 7, SubmittedText: &text})
	require.NoError(t, err)
	assert.True(t, result.ScoringPending, "the answer stays pending and can be re-graded later")
}

func TestSubmit_ValidationFailureCreatesNothing(t *testing.T) {
	questionRepo, answerRepo, dispatcher, svc := newSubmissionFixture()
	question := reorderQuestion(5, []*uint{uintPtr(2), uintPtr(3), nil})
	questionRepo.On("FindByIDWithDetails", uint(5)).Return(question, nil)

	_, err := svc.Submit(context.Background(), 5, dto.SubmitAnswerRequest{UserID: 7, ParagraphOrder: []int{1, 1, 2}})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	answerRepo.AssertNotCalled(t, "Create", mock.Anything)
	dispatcher.AssertNotCalled(t, "DispatchSSTScoring", mock.Anything, mock.Anything)
}

func TestSubmit_UnknownQuestion(t *testing.T) {
	questionRepo, answerRepo, _, svc := newSubmissionFixture()
	questionRepo.On("FindByIDWithDetails", uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Submit(context.Background(), 404, dto.SubmitAnswerRequest{UserID: 7})
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
	answerRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSubmit_PersistFailureSurfaces(t *testing.T) {
	questionRepo, answerRepo, _, svc := newSubmissionFixture()
	questionRepo.On("FindByIDWithDetails", uint(5)).Return(reorderQuestion(5, []*uint{uintPtr(2), nil}), nil)
	answerRepo.On("Create", mock.Anything).Return(assert.AnError)

	_, err := svc.Submit(context.Background(), 5, dto.SubmitAnswerRequest{UserID: 7, ParagraphOrder: []int{2, 1}})
	assert.Error(t, err)
}
