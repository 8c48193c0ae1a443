package dto

import "time"

// SubmitAnswerRequest is the payload for answering a question. Exactly one of
// the answer fields must be set, matching the question's type:
// SubmittedText for SST, ParagraphOrder for RO, SelectedOptionIDs for RMMCQ.
type SubmitAnswerRequest struct {
	UserID            uint    `json:"user_id" binding:"required"`
	SubmittedText     *string `json:"submitted_text,omitempty"`
	ParagraphOrder    []int   `json:"paragraph_order,omitempty"`
	SelectedOptionIDs []int   `json:"selected_option_ids,omitempty"`
}

// ScoreComponentDTO is one dimension of a score breakdown.
type ScoreComponentDTO struct {
	Name     string `json:"name"`
	Score    uint   `json:"score"`
	MaxScore uint   `json:"max_score"`
}

// ScoreBreakdownDTO is the uniform per-dimension score map used by both the
// submission response and the history listing.
type ScoreBreakdownDTO struct {
	Components []ScoreComponentDTO `json:"components"`
	TotalScore uint                `json:"total_score"`
	MaxScore   uint                `json:"max_score"`
}

// SubmissionResultDTO is returned from a successful submission. For SST
// answers scoring is deferred: ScoringPending is true and Breakdown is null
// until the background grader has run; clients poll the history endpoint.
type SubmissionResultDTO struct {
	AnswerID       uint               `json:"answer_id"`
	QuestionID     uint               `json:"question_id"`
	QuestionType   string             `json:"question_type"`
	ScoringPending bool               `json:"scoring_pending"`
	Breakdown      *ScoreBreakdownDTO `json:"breakdown,omitempty"`
	SubmittedAt    time.Time          `json:"submitted_at"`
}

// HistoryItemDTO is one scored (or still pending) answer in a user's history.
type HistoryItemDTO struct {
	AnswerID       uint               `json:"answer_id"`
	QuestionID     uint               `json:"question_id"`
	QuestionTitle  string             `json:"question_title"`
	QuestionType   string             `json:"question_type"`
	ScoringPending bool               `json:"scoring_pending"`
	Breakdown      *ScoreBreakdownDTO `json:"breakdown,omitempty"`
	SubmittedAt    time.Time          `json:"submitted_at"`
}

// PagedHistoryDTO is a newest-first page of a user's answer history.
type PagedHistoryDTO struct {
	Items      []HistoryItemDTO `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalItems int64            `json:"total_items"`
	TotalPages int              `json:"total_pages"`
}
