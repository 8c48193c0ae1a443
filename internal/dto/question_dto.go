package dto

import "time"

// QuestionSummaryDTO is the list-view shape: identity only, no detail payload.
type QuestionSummaryDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"question_type"`
	CreatedAt time.Time `json:"created_at"`
}

// AudioClipDTO is one recording of an SST question.
type AudioClipDTO struct {
	ID          uint   `json:"id"`
	SpeakerName string `json:"speaker_name"`
	FileURL     string `json:"file_url"`
}

// ParagraphDTO is one shuffled paragraph shown to the student. Order is the
// paragraph's 1-based creation position, which is also the identifier used in
// submitted orders. The correct successor is deliberately not exposed.
type ParagraphDTO struct {
	Order   int    `json:"order"`
	Content string `json:"content"`
}

// OptionDTO is one answer option of an RMMCQ question. Correctness is
// deliberately not exposed.
type OptionDTO struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

// QuestionDetailDTO carries the full question payload for one type; the
// fields of the other types stay null, mirroring the public question API.
type QuestionDetailDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Type  string `json:"question_type"`

	// SST
	AnswerTimeLimit *uint          `json:"answer_time_limit,omitempty"`
	Audios          []AudioClipDTO `json:"audios,omitempty"`

	// RO
	Paragraphs []ParagraphDTO `json:"paragraphs,omitempty"`

	// RMMCQ
	Passage *string     `json:"passage,omitempty"`
	Options []OptionDTO `json:"options,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse is the uniform error body returned by all controllers.
type ErrorResponse struct {
	Message string   `json:"message"`
	Reason  string   `json:"reason,omitempty"`
	Details []string `json:"details,omitempty"`
}
