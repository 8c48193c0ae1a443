package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionType enumerates the supported PTE question types.
type QuestionType string

const (
	QuestionTypeSST   QuestionType = "SST"   // Summarize Spoken Text
	QuestionTypeRO    QuestionType = "RO"    // Re-Order Paragraph
	QuestionTypeRMMCQ QuestionType = "RMMCQ" // Reading Multiple Choice (Multiple)
)

// IsValid reports whether t is one of the known question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeSST, QuestionTypeRO, QuestionTypeRMMCQ:
		return true
	}
	return false
}

type Question struct {
	ID    uint         `gorm:"primarykey" json:"id"`
	Title string       `json:"title" gorm:"not null"`
	Type  QuestionType `json:"question_type" gorm:"not null;index"`

	// Exactly one detail is non-nil, matching Type.
	SSTDetail     *SummarizeSpokenTextDetail `json:"sst_detail,omitempty" gorm:"foreignKey:QuestionID"`
	ReorderDetail *ReorderParagraphDetail    `json:"reorder_detail,omitempty" gorm:"foreignKey:QuestionID"`
	ReadingDetail *ReadingChoiceDetail       `json:"reading_detail,omitempty" gorm:"foreignKey:QuestionID"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SummarizeSpokenTextDetail holds the SST-specific payload of a Question.
type SummarizeSpokenTextDetail struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	QuestionID      uint        `json:"question_id" gorm:"not null;uniqueIndex"`
	AnswerTimeLimit uint        `json:"answer_time_limit" gorm:"not null"` // seconds
	AudioClips      []AudioClip `json:"audio_clips,omitempty" gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type AudioClip struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	DetailID    uint      `json:"-" gorm:"not null;index"`
	SpeakerName string    `json:"speaker_name" gorm:"not null"`
	FileURL     string    `json:"file_url" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReorderParagraphDetail holds the RO-specific payload of a Question.
type ReorderParagraphDetail struct {
	ID         uint        `gorm:"primarykey" json:"id"`
	QuestionID uint        `json:"question_id" gorm:"not null;uniqueIndex"`
	Paragraphs []Paragraph `json:"paragraphs,omitempty" gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Paragraph is one shuffled paragraph of a re-order question.
// CorrectNextOrder is the 1-based creation-order position of the paragraph
// that correctly follows this one; nil for the final paragraph. Scoring
// indexes paragraphs by creation (id) order, so queries must never re-sort
// them by any other key.
type Paragraph struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	DetailID         uint      `json:"-" gorm:"not null;index"`
	Content          string    `json:"content" gorm:"type:text;not null"`
	CorrectNextOrder *uint     `json:"correct_next_order,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ReadingChoiceDetail holds the RMMCQ-specific payload of a Question.
type ReadingChoiceDetail struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex"`
	Passage    string    `json:"passage" gorm:"type:text;not null"`
	Options    []Option  `json:"options,omitempty" gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Option struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	DetailID  uint      `json:"-" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	IsCorrect bool      `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}
