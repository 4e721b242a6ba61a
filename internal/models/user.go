package models

import (
	"time"
)

// User is an account holder. Password holds the bcrypt hash and is never
// serialized into responses.
type User struct {
	ID             string    `json:"id" db:"id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Password       string    `json:"-" db:"password"`
	AccountCreated time.Time `json:"account_created" db:"account_created"`
	AccountUpdated time.Time `json:"account_updated" db:"account_updated"`
}
