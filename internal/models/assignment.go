package models

import (
	"time"
)

const (
	MinPoints = 1
	MaxPoints = 10
)

type Assignment struct {
	ID                string    `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Points            int       `json:"points" db:"points"`
	NumOfAttempts     int       `json:"num_of_attempts" db:"num_of_attempts"`
	Deadline          time.Time `json:"deadline" db:"deadline"`
	UserID            string    `json:"user_id" db:"user_id"`
	AssignmentCreated time.Time `json:"assignment_created" db:"assignment_created"`
	AssignmentUpdated time.Time `json:"assignment_updated" db:"assignment_updated"`
}
