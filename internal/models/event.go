package models

type SubmissionCreatedEvent struct {
	AssignmentID  string `json:"assignment_id"`
	SubmissionURL string `json:"submission_url"`
	UserEmail     string `json:"user_email"`
	Timestamp     int64  `json:"timestamp"`
}
