package dto

// AudioClipCreateDTO is one recording attached to a new SST question.
type AudioClipCreateDTO struct {
	SpeakerName string `json:"speaker_name" binding:"required"`
	FileURL     string `json:"file_url" binding:"required"`
}

// SSTDetailCreateDTO is the SST payload of a new question.
type SSTDetailCreateDTO struct {
	AnswerTimeLimit uint                 `json:"answer_time_limit" binding:"required,gt=0"`
	AudioClips      []AudioClipCreateDTO `json:"audio_clips" binding:"required,min=1,dive"`
}

// ParagraphCreateDTO is one paragraph of a new RO question, listed in the
// authoritative creation order. CorrectNextOrder is the 1-based position of
// the correct successor, omitted for the final paragraph.
type ParagraphCreateDTO struct {
	Content          string `json:"content" binding:"required"`
	CorrectNextOrder *uint  `json:"correct_next_order,omitempty"`
}

// ReorderDetailCreateDTO is the RO payload of a new question.
type ReorderDetailCreateDTO struct {
	Paragraphs []ParagraphCreateDTO `json:"paragraphs" binding:"required,min=2,dive"`
}

// OptionCreateDTO is one option of a new RMMCQ question.
type OptionCreateDTO struct {
	Content   string `json:"content" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// ReadingDetailCreateDTO is the RMMCQ payload of a new question.
type ReadingDetailCreateDTO struct {
	Passage string            `json:"passage" binding:"required"`
	Options []OptionCreateDTO `json:"options" binding:"required,min=2,dive"`
}

// CreateQuestionRequest is the admin payload for authoring a question with
// its type-specific detail in one call. Exactly one detail must be set,
// matching Type.
type CreateQuestionRequest struct {
	Title string `json:"title" binding:"required"`
	Type  string `json:"question_type" binding:"required,oneof=SST RO RMMCQ"`

	SST     *SSTDetailCreateDTO     `json:"sst,omitempty"`
	Reorder *ReorderDetailCreateDTO `json:"reorder,omitempty"`
	Reading *ReadingDetailCreateDTO `json:"reading,omitempty"`
}
