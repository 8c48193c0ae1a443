package service

import (
	"testing"

	"github.com/onepte/onepte-backend/internal/apperrors"
	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestion_Reorder(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	var created *model.Question
	questionRepo.On("Create", mock.AnythingOfType("*model.Question")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.Question)
			created.ID = 11
		}).
		Return(nil)
	questionRepo.On("FindByIDWithDetails", uint(11)).
		Return(reorderQuestion(11, []*uint{uintPtr(2), uintPtr(3), nil}), nil)

	svc := NewAdminQuestionService(questionRepo)
	detail, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Title: "Ordering a story",
		Type:  "RO",
		Reorder: &dto.ReorderDetailCreateDTO{
			Paragraphs: []dto.ParagraphCreateDTO{
				{Content: "first", CorrectNextOrder: uintPtr(2)},
				{Content: "second", CorrectNextOrder: uintPtr(3)},
				{Content: "last"},
			},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, created.ReorderDetail)
	require.Len(t, created.ReorderDetail.Paragraphs, 3)
	assert.Nil(t, created.ReorderDetail.Paragraphs[2].CorrectNextOrder)

	// The projection exposes 1-based positions, never the successor table.
	require.Len(t, detail.Paragraphs, 3)
	assert.Equal(t, 1, detail.Paragraphs[0].Order)
	assert.Equal(t, 3, detail.Paragraphs[2].Order)
}

func TestCreateQuestion_ReorderRejectsBadSuccessors(t *testing.T) {
	tests := []struct {
		name       string
		paragraphs []dto.ParagraphCreateDTO
	}{
		{
			name: "successor out of range",
			paragraphs: []dto.ParagraphCreateDTO{
				{Content: "a", CorrectNextOrder: uintPtr(5)},
				{Content: "b"},
			},
		},
		{
			name: "no final paragraph",
			paragraphs: []dto.ParagraphCreateDTO{
				{Content: "a", CorrectNextOrder: uintPtr(2)},
				{Content: "b", CorrectNextOrder: uintPtr(1)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionRepo := new(MockQuestionRepository)
			svc := NewAdminQuestionService(questionRepo)
			_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
				Title:   "bad",
				Type:    "RO",
				Reorder: &dto.ReorderDetailCreateDTO{Paragraphs: tt.paragraphs},
			})
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			questionRepo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestCreateQuestion_ReadingRequiresACorrectOption(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewAdminQuestionService(questionRepo)
	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Title: "no key",
		Type:  "RMMCQ",
		Reading: &dto.ReadingDetailCreateDTO{
			Passage: "passage",
			Options: []dto.OptionCreateDTO{{Content: "a"}, {Content: "b"}},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	questionRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateQuestion_DetailMustMatchType(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	svc := NewAdminQuestionService(questionRepo)
	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Title: "mismatched",
		Type:  "SST",
		Reorder: &dto.ReorderDetailCreateDTO{
			Paragraphs: []dto.ParagraphCreateDTO{{Content: "a", CorrectNextOrder: uintPtr(2)}, {Content: "b"}},
		},
	})
	requireValidationReason(t, err, apperrors.ReasonMissingPayload)
}

func TestCreateQuestion_UnknownType(t *testing.T) {
	svc := NewAdminQuestionService(new(MockQuestionRepository))
	_, err := svc.CreateQuestion(dto.CreateQuestionRequest{Title: "x", Type: "ESSAY"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidType)
}

func TestCreateQuestion_SST(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	var created *model.Question
	questionRepo.On("Create", mock.AnythingOfType("*model.Question")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*model.Question)
			created.ID = 12
		}).
		Return(nil)
	questionRepo.On("FindByIDWithDetails", uint(12)).Return(sstQuestion(12), nil)

	svc := NewAdminQuestionService(questionRepo)
	detail, err := svc.CreateQuestion(dto.CreateQuestionRequest{
		Title: "Lecture on reefs",
		Type:  "SST",
		SST: &dto.SSTDetailCreateDTO{
			AnswerTimeLimit: 600,
			AudioClips:      []dto.AudioClipCreateDTO{{SpeakerName: "Narrator", FileURL: "https://cdn.example.com/a.mp3"}},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, created.SSTDetail)
	assert.Equal(t, uint(600), created.SSTDetail.AnswerTimeLimit)
	require.NotNil(t, detail.AnswerTimeLimit)
	assert.Equal(t, uint(600), *detail.AnswerTimeLimit)
	require.Len(t, detail.Audios, 1)
}
