package service

import (
	"context"

	"github.com/onepte/onepte-backend/internal/dto"
	"github.com/onepte/onepte-backend/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *model.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) FindByID(id uint) (*model.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByIDWithDetails(id uint) (*model.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindAll(typeFilter *model.QuestionType) ([]model.Question, error) {
	args := m.Called(typeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(answer *model.Answer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) FindByIDWithDetails(id uint) (*model.Answer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerRepository) FindSSTAnswerByAnswerID(answerID uint) (*model.SummarizeSpokenTextAnswer, error) {
	args := m.Called(answerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SummarizeSpokenTextAnswer), args.Error(1)
}

func (m *MockAnswerRepository) UpdateSSTAnswer(answer *model.SummarizeSpokenTextAnswer) error {
	args := m.Called(answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) FindPageByUser(userID uint, typeFilter *model.QuestionType, offset, limit int) ([]model.Answer, error) {
	args := m.Called(userID, typeFilter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Answer), args.Error(1)
}

func (m *MockAnswerRepository) CountByUser(userID uint, typeFilter *model.QuestionType) (int64, error) {
	args := m.Called(userID, typeFilter)
	return args.Get(0).(int64), args.Error(1)
}

type MockScoringDispatcher struct {
	mock.Mock
}

func (m *MockScoringDispatcher) DispatchSSTScoring(ctx context.Context, answerID uint) error {
	args := m.Called(ctx, answerID)
	return args.Error(0)
}

// fakeQuestionCache is an in-memory stand-in for the Redis-backed cache.
type fakeQuestionCache struct {
	entries map[uint]*dto.QuestionDetailDTO
	getErr  error
}

func newFakeQuestionCache() *fakeQuestionCache {
	return &fakeQuestionCache{entries: make(map[uint]*dto.QuestionDetailDTO)}
}

func (c *fakeQuestionCache) GetQuestionDetail(_ context.Context, questionID uint) (*dto.QuestionDetailDTO, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[questionID], nil
}

func (c *fakeQuestionCache) SetQuestionDetail(_ context.Context, detail *dto.QuestionDetailDTO) error {
	c.entries[detail.ID] = detail
	return nil
}

func (c *fakeQuestionCache) InvalidateQuestionDetail(_ context.Context, questionID uint) error {
	delete(c.entries, questionID)
	return nil
}

func uintPtr(v uint) *uint { return &v }

// reorderQuestion builds an RO question whose paragraphs, in creation order,
// point at the given successors (nil marks the final paragraph).
func reorderQuestion(id uint, successors []*uint) *model.Question {
	paragraphs := make([]model.Paragraph, 0, len(successors))
	for i, next := range successors {
		paragraphs = append(paragraphs, model.Paragraph{
			ID:               uint(i + 1),
			Content:          "paragraph",
			CorrectNextOrder: next,
		})
	}
	return &model.Question{
		ID:            id,
		Title:         "Re-order question",
		Type:          model.QuestionTypeRO,
		ReorderDetail: &model.ReorderParagraphDetail{QuestionID: id, Paragraphs: paragraphs},
	}
}

// readingQuestion builds an RMMCQ question with options carrying the given
// correctness flags; option IDs start at firstOptionID.
func readingQuestion(id, firstOptionID uint, correct []bool) *model.Question {
	options := make([]model.Option, 0, len(correct))
	for i, isCorrect := range correct {
		options = append(options, model.Option{
			ID:        firstOptionID + uint(i),
			Content:   "option",
			IsCorrect: isCorrect,
		})
	}
	return &model.Question{
		ID:            id,
		Title:         "Reading question",
		Type:          model.QuestionTypeRMMCQ,
		ReadingDetail: &model.ReadingChoiceDetail{QuestionID: id, Passage: "passage", Options: options},
	}
}

func sstQuestion(id uint) *model.Question {
	return &model.Question{
		ID:    id,
		Title: "SST question",
		Type:  model.QuestionTypeSST,
		SSTDetail: &model.SummarizeSpokenTextDetail{
			QuestionID:      id,
			AnswerTimeLimit: 600,
			AudioClips:      []model.AudioClip{{ID: 1, SpeakerName: "Narrator", FileURL: "https://cdn.example.com/a.mp3"}},
		},
	}
}
