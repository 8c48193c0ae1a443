package repository

import (
	"github.com/onepte/onepte-backend/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithDetails(id uint) (*model.Question, error)
	FindAll(typeFilter *model.QuestionType) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// GORM creates the associated detail rows (and their clips, paragraphs or
	// options) together with the question in one transaction.
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithDetails(id uint) (*model.Question, error) {
	var question model.Question
	// Children are preloaded in id (creation) order. For paragraphs that
	// ordering is authoritative: the scoring successor table is indexed by it.
	err := r.db.
		Preload("SSTDetail.AudioClips", func(db *gorm.DB) *gorm.DB {
			return db.Order("audio_clips.id ASC")
		}).
		Preload("SSTDetail").
		Preload("ReorderDetail.Paragraphs", func(db *gorm.DB) *gorm.DB {
			return db.Order("paragraphs.id ASC")
		}).
		Preload("ReorderDetail").
		Preload("ReadingDetail.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id ASC")
		}).
		Preload("ReadingDetail").
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll(typeFilter *model.QuestionType) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.Order("created_at DESC")
	if typeFilter != nil {
		query = query.Where("type = ?", *typeFilter)
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
