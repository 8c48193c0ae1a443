package repository

import (
	"github.com/onepte/onepte-backend/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindByIDWithDetails(id uint) (*model.Answer, error)
	FindSSTAnswerByAnswerID(answerID uint) (*model.SummarizeSpokenTextAnswer, error)
	UpdateSSTAnswer(answer *model.SummarizeSpokenTextAnswer) error
	FindPageByUser(userID uint, typeFilter *model.QuestionType, offset, limit int) ([]model.Answer, error)
	CountByUser(userID uint, typeFilter *model.QuestionType) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	// The envelope and its single type-specific child are created in one
	// GORM transaction, so a failed submission leaves no partial records.
	return r.db.Create(answer).Error
}

func (r *answerRepository) FindByIDWithDetails(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.
		Preload("Question").
		Preload("SSTAnswer").
		Preload("ReorderAnswer").
		Preload("ReadingAnswer").
		First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindSSTAnswerByAnswerID(answerID uint) (*model.SummarizeSpokenTextAnswer, error) {
	var sstAnswer model.SummarizeSpokenTextAnswer
	if err := r.db.Where("answer_id = ?", answerID).First(&sstAnswer).Error; err != nil {
		return nil, err
	}
	return &sstAnswer, nil
}

func (r *answerRepository) UpdateSSTAnswer(answer *model.SummarizeSpokenTextAnswer) error {
	return r.db.Save(answer).Error
}

func (r *answerRepository) FindPageByUser(userID uint, typeFilter *model.QuestionType, offset, limit int) ([]model.Answer, error) {
	var answers []model.Answer
	query := r.db.
		Preload("Question").
		Preload("Question.ReorderDetail.Paragraphs", func(db *gorm.DB) *gorm.DB {
			return db.Order("paragraphs.id ASC")
		}).
		Preload("Question.ReorderDetail").
		Preload("Question.ReadingDetail.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id ASC")
		}).
		Preload("Question.ReadingDetail").
		Preload("SSTAnswer").
		Preload("ReorderAnswer").
		Preload("ReadingAnswer").
		Where("answers.user_id = ?", userID)
	if typeFilter != nil {
		query = query.
			Joins("JOIN questions ON questions.id = answers.question_id").
			Where("questions.type = ?", *typeFilter)
	}
	err := query.
		Order("answers.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) CountByUser(userID uint, typeFilter *model.QuestionType) (int64, error) {
	var count int64
	query := r.db.Model(&model.Answer{}).Where("answers.user_id = ?", userID)
	if typeFilter != nil {
		query = query.
			Joins("JOIN questions ON questions.id = answers.question_id").
			Where("questions.type = ?", *typeFilter)
	}
	err := query.Count(&count).Error
	return count, err
}
