package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answer is the generic envelope created once per submission. Exactly one
// type-specific answer record owns a back-reference to it, matching the
// question's type.
type Answer struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	UserID     uint     `json:"user_id" gorm:"not null;index"`
	QuestionID uint     `json:"question_id" gorm:"not null;index"`
	Question   Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`

	SSTAnswer     *SummarizeSpokenTextAnswer `json:"sst_answer,omitempty" gorm:"foreignKey:AnswerID"`
	ReorderAnswer *ReorderParagraphAnswer    `json:"reorder_answer,omitempty" gorm:"foreignKey:AnswerID"`
	ReadingAnswer *ReadingChoiceAnswer       `json:"reading_answer,omitempty" gorm:"foreignKey:AnswerID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SummarizeSpokenTextAnswer stores the submitted summary and its five
// sub-scores, each in [0,2]. Scores stay at zero with Scored=false until the
// (possibly deferred) grader has run.
type SummarizeSpokenTextAnswer struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	AnswerID      uint   `json:"answer_id" gorm:"not null;uniqueIndex"`
	SubmittedText string `json:"submitted_text" gorm:"type:text;not null"`

	ContentScore    uint `json:"content_score"`
	FormScore       uint `json:"form_score"`
	GrammarScore    uint `json:"grammar_score"`
	VocabularyScore uint `json:"vocabulary_score"`
	SpellingScore   uint `json:"spelling_score"`
	TotalScore      uint `json:"total_score"` // sum of sub-scores, [0,10]

	Scored    bool      `json:"scored" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReorderParagraphAnswer stores the submitted paragraph order (a permutation
// of 1..N in creation-order positions) and the adjacent-pair score, [0,N-1].
type ReorderParagraphAnswer struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	AnswerID       uint           `json:"answer_id" gorm:"not null;uniqueIndex"`
	SubmittedOrder datatypes.JSON `json:"submitted_order" gorm:"not null"` // []int
	TotalScore     uint           `json:"total_score"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Order decodes the stored paragraph order.
func (a *ReorderParagraphAnswer) Order() ([]int, error) {
	var order []int
	if err := json.Unmarshal(a.SubmittedOrder, &order); err != nil {
		return nil, err
	}
	return order, nil
}

// ReadingChoiceAnswer stores the selected option IDs and the clamped
// correct-minus-incorrect score, always >= 0.
type ReadingChoiceAnswer struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	AnswerID          uint           `json:"answer_id" gorm:"not null;uniqueIndex"`
	SelectedOptionIDs datatypes.JSON `json:"selected_option_ids" gorm:"not null"` // []int
	TotalScore        uint           `json:"total_score"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// Selected decodes the stored option IDs.
func (a *ReadingChoiceAnswer) Selected() ([]int, error) {
	var ids []int
	if err := json.Unmarshal(a.SelectedOptionIDs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IntsToJSON encodes an int slice for storage in a JSON column.
func IntsToJSON(values []int) datatypes.JSON {
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}
