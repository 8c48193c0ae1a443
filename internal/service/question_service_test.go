package service

import (
	"context"
	"testing"

	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetAllQuestions(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("FindAll", (*model.QuestionType)(nil)).Return([]model.Question{
		{ID: 1, Title: "A", Type: model.QuestionTypeSST},
		{ID: 2, Title: "B", Type: model.QuestionTypeRO},
	}, nil)

	svc := NewQuestionService(questionRepo, newFakeQuestionCache())
	summaries, err := svc.GetAllQuestions(nil)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "SST", summaries[0].Type)
	assert.Equal(t, "B", summaries[1].Title)
}

func TestGetAllQuestions_TypeFilterIsForwarded(t *testing.T) {
	filter := model.QuestionTypeRMMCQ
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("FindAll", &filter).Return([]model.Question{}, nil)

	svc := NewQuestionService(questionRepo, newFakeQuestionCache())
	summaries, err := svc.GetAllQuestions(&filter)
	require.NoError(t, err)
	assert.Empty(t, summaries)
	questionRepo.AssertExpectations(t)
}

func TestGetQuestionDetails_StripsAnswerKeys(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("FindByIDWithDetails", uint(1)).
		Return(reorderQuestion(1, []*uint{uintPtr(2), uintPtr(3), nil}), nil).Once()
	questionRepo.On("FindByIDWithDetails", uint(2)).
		Return(readingQuestion(2, 10, []bool{true, false}), nil).Once()

	svc := NewQuestionService(questionRepo, newFakeQuestionCache())

	reorder, err := svc.GetQuestionDetails(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reorder.Paragraphs, 3)
	assert.Equal(t, 1, reorder.Paragraphs[0].Order)
	assert.Nil(t, reorder.Passage)
	assert.Nil(t, reorder.AnswerTimeLimit)

	reading, err := svc.GetQuestionDetails(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, reading.Passage)
	require.Len(t, reading.Options, 2)
	assert.Equal(t, uint(10), reading.Options[0].ID)
	assert.Empty(t, reading.Paragraphs)
}

func TestGetQuestionDetails_ServedFromCacheOnSecondRead(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("FindByIDWithDetails", uint(3)).Return(sstQuestion(3), nil).Once()

	svc := NewQuestionService(questionRepo, newFakeQuestionCache())
	first, err := svc.GetQuestionDetails(context.Background(), 3)
	require.NoError(t, err)
	second, err := svc.GetQuestionDetails(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	questionRepo.AssertNumberOfCalls(t, "FindByIDWithDetails", 1)
}

func TestGetQuestionDetails_CacheFailureFallsBackToDatabase(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("FindByIDWithDetails", uint(3)).Return(sstQuestion(3), nil)

	brokenCache := newFakeQuestionCache()
	brokenCache.getErr = assert.AnError

	svc := NewQuestionService(questionRepo, brokenCache)
	detail, err := svc.GetQuestionDetails(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), detail.ID)
}

func TestGetQuestionDetails_NotFound(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("FindByIDWithDetails", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewQuestionService(questionRepo, newFakeQuestionCache())
	_, err := svc.GetQuestionDetails(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
}
