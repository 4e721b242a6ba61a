package models

import (
	"time"
)

// Submission is immutable once created. UserID scopes the attempt count and
// is not part of the response shape.
type Submission struct {
	ID                string    `json:"id" db:"id"`
	AssignmentID      string    `json:"assignment_id" db:"assignment_id"`
	UserID            string    `json:"-" db:"user_id"`
	SubmissionURL     string    `json:"submission_url" db:"submission_url"`
	SubmissionDate    time.Time `json:"submission_date" db:"submission_date"`
	SubmissionUpdated time.Time `json:"submission_updated" db:"submission_updated"`
}
