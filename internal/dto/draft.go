package dto

// QuizQuestionPayload is one submitted quiz question. Bounds on CorrectAnswer
// are checked against the options list by the intake service.
type QuizQuestionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// SubmitDraftRequest is the public submission payload.
type SubmitDraftRequest struct {
	Title         string                `json:"title" validate:"required"`
	Description   string                `json:"description" validate:"required"`
	VideoURL      string                `json:"video_url" validate:"required,url"`
	ThumbnailURL  *string               `json:"thumbnail_url"`
	Category      string                `json:"category" validate:"required,oneof=easy medium hard"`
	Duration      string                `json:"duration" validate:"required"`
	QuizQuestions []QuizQuestionPayload `json:"quiz_questions"`
}
