package models

import "time"

// Category is the difficulty bucket a submission belongs to.
type Category string

const (
	CategoryEasy   Category = "easy"
	CategoryMedium Category = "medium"
	CategoryHard   Category = "hard"
)

// ValidCategory reports whether the value is one of the fixed categories.
func ValidCategory(value string) bool {
	switch Category(value) {
	case CategoryEasy, CategoryMedium, CategoryHard:
		return true
	}
	return false
}

// DraftStatus tracks a draft through the moderation workflow. A draft is
// pending from intake until a reviewer decision; approve marks it published
// instead of deleting it so a published item can never re-surface as pending.
type DraftStatus string

const (
	DraftStatusPending   DraftStatus = "pending"
	DraftStatusPublished DraftStatus = "published"
)

// Draft is a video submission awaiting review. It is never served by public
// read paths.
type Draft struct {
	ID            string        `db:"id" json:"id"`
	Title         string        `db:"title" json:"title"`
	Description   string        `db:"description" json:"description"`
	VideoURL      string        `db:"video_url" json:"video_url"`
	ThumbnailURL  *string       `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	Category      Category      `db:"category" json:"category"`
	Duration      string        `db:"duration" json:"duration"`
	QuizQuestions QuizQuestions `db:"quiz_questions" json:"quiz_questions"`
	InstructorID  *string       `db:"instructor_id" json:"instructor_id,omitempty"`
	Status        DraftStatus   `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}
