package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// ValidationError names the request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

func invalidField(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// CreateUserRequest carries the only fields the registration endpoint
// accepts. Unknown fields in the body are dropped by the decoder.
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return missingField("email")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return invalidField("email", "email must be a valid address")
	}
	if r.Password == "" {
		return missingField("password")
	}
	return nil
}

// AssignmentPayload is the allow-listed body for assignment create and
// update. Pointer fields distinguish absent from zero-valued input.
type AssignmentPayload struct {
	Name          *string `json:"name"`
	Points        *int    `json:"points"`
	NumOfAttempts *int    `json:"num_of_attempts"`
	Deadline      *string `json:"deadline"`
}

// ValidateCreate requires every field and range-checks each one, first
// failure wins.
func (p *AssignmentPayload) ValidateCreate() error {
	if p.Name == nil {
		return missingField("name")
	}
	if p.Points == nil {
		return missingField("points")
	}
	if p.NumOfAttempts == nil {
		return missingField("num_of_attempts")
	}
	if p.Deadline == nil {
		return missingField("deadline")
	}
	return p.validateFields()
}

// ValidateUpdate checks only the fields present in the body.
func (p *AssignmentPayload) ValidateUpdate() error {
	return p.validateFields()
}

func (p *AssignmentPayload) validateFields() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return invalidField("name", "name must be a non-empty string")
	}
	if p.Points != nil && (*p.Points < MinPoints || *p.Points > MaxPoints) {
		return invalidField("points", "points must be between %d and %d", MinPoints, MaxPoints)
	}
	if p.NumOfAttempts != nil && *p.NumOfAttempts < 1 {
		return invalidField("num_of_attempts", "num_of_attempts must be at least 1")
	}
	if p.Deadline != nil {
		if _, err := time.Parse(time.RFC3339, *p.Deadline); err != nil {
			return invalidField("deadline", "deadline must be a valid RFC3339 timestamp")
		}
	}
	return nil
}

// DeadlineTime returns the parsed deadline. Valid only after validation
// has passed and the field is present.
func (p *AssignmentPayload) DeadlineTime() (time.Time, bool) {
	if p.Deadline == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, *p.Deadline)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type SubmissionPayload struct {
	SubmissionURL *string `json:"submission_url"`
}

func (p *SubmissionPayload) Validate() error {
	if p.SubmissionURL == nil {
		return missingField("submission_url")
	}
	if strings.TrimSpace(*p.SubmissionURL) == "" {
		return invalidField("submission_url", "submission_url must be a non-empty string")
	}
	return nil
}
