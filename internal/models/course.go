package models

import "time"

// CourseStatus is the publication state of a catalog entry. Rows reaching the
// courses table through moderation are always approved; the other values exist
// for schema compatibility with externally seeded rows.
type CourseStatus string

const (
	CourseStatusApproved CourseStatus = "approved"
	CourseStatusRejected CourseStatus = "rejected"
	CourseStatusPending  CourseStatus = "pending"
)

// Course is the public-facing published record. It gets a fresh identity on
// publish; no link back to the originating draft is retained.
type Course struct {
	ID            string        `db:"id" json:"id"`
	Title         string        `db:"title" json:"title"`
	Description   string        `db:"description" json:"description"`
	VideoURL      string        `db:"video_url" json:"video_url"`
	ThumbnailURL  *string       `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	Category      Category      `db:"category" json:"category"`
	Duration      string        `db:"duration" json:"duration"`
	QuizQuestions QuizQuestions `db:"quiz_questions" json:"quiz_questions"`
	Status        CourseStatus  `db:"status" json:"status"`
	Views         int64         `db:"views" json:"views"`
	InstructorID  *string       `db:"instructor_id" json:"instructor_id,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

// CourseFilter narrows the public catalog listing. Matching happens in memory
// over the fetched approved set, which is fine at current catalog sizes.
type CourseFilter struct {
	Category string
	Search   string
}
