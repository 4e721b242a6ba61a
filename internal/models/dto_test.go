package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validAssignmentPayload() *AssignmentPayload {
	return &AssignmentPayload{
		Name:          strPtr("HW1"),
		Points:        intPtr(5),
		NumOfAttempts: intPtr(2),
		Deadline:      strPtr("2099-01-01T00:00:00Z"),
	}
}

func TestAssignmentPayloadValidateCreate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validAssignmentPayload().ValidateCreate())
	})

	t.Run("missing fields", func(t *testing.T) {
		tests := []struct {
			field  string
			mutate func(*AssignmentPayload)
		}{
			{"name", func(p *AssignmentPayload) { p.Name = nil }},
			{"points", func(p *AssignmentPayload) { p.Points = nil }},
			{"num_of_attempts", func(p *AssignmentPayload) { p.NumOfAttempts = nil }},
			{"deadline", func(p *AssignmentPayload) { p.Deadline = nil }},
		}

		for _, tt := range tests {
			t.Run(tt.field, func(t *testing.T) {
				payload := validAssignmentPayload()
				tt.mutate(payload)

				err := payload.ValidateCreate()
				require.Error(t, err)

				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.field, validationErr.Field)
			})
		}
	})

	t.Run("points bounds", func(t *testing.T) {
		for _, points := range []int{1, 10} {
			payload := validAssignmentPayload()
			payload.Points = intPtr(points)
			assert.NoError(t, payload.ValidateCreate(), "points=%d", points)
		}

		for _, points := range []int{0, -3, 11, 100} {
			payload := validAssignmentPayload()
			payload.Points = intPtr(points)
			assert.Error(t, payload.ValidateCreate(), "points=%d", points)
		}
	})

	t.Run("num_of_attempts below one", func(t *testing.T) {
		for _, attempts := range []int{0, -1} {
			payload := validAssignmentPayload()
			payload.NumOfAttempts = intPtr(attempts)

			err := payload.ValidateCreate()
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "num_of_attempts", validationErr.Field)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		payload := validAssignmentPayload()
		payload.Name = strPtr("   ")
		assert.Error(t, payload.ValidateCreate())
	})

	t.Run("unparseable deadline", func(t *testing.T) {
		payload := validAssignmentPayload()
		payload.Deadline = strPtr("next tuesday")

		err := payload.ValidateCreate()
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "deadline", validationErr.Field)
	})
}

func TestAssignmentPayloadValidateUpdate(t *testing.T) {
	t.Run("partial body is allowed", func(t *testing.T) {
		payload := &AssignmentPayload{Points: intPtr(7)}
		assert.NoError(t, payload.ValidateUpdate())
	})

	t.Run("supplied fields are still range checked", func(t *testing.T) {
		payload := &AssignmentPayload{Points: intPtr(11)}
		assert.Error(t, payload.ValidateUpdate())
	})

	t.Run("empty body is allowed", func(t *testing.T) {
		assert.NoError(t, (&AssignmentPayload{}).ValidateUpdate())
	})
}

func TestAssignmentPayloadDeadlineTime(t *testing.T) {
	payload := validAssignmentPayload()

	deadline, ok := payload.DeadlineTime()
	require.True(t, ok)
	assert.Equal(t, time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), deadline.UTC())

	payload.Deadline = nil
	_, ok = payload.DeadlineTime()
	assert.False(t, ok)
}

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{
		Email:     "jane@example.com",
		Password:  "s3cret",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	require.NoError(t, valid.Validate())

	t.Run("missing email", func(t *testing.T) {
		req := valid
		req.Email = ""
		assert.Error(t, req.Validate())
	})

	t.Run("bad email format", func(t *testing.T) {
		req := valid
		req.Email = "not-an-address"
		assert.Error(t, req.Validate())
	})

	t.Run("missing password", func(t *testing.T) {
		req := valid
		req.Password = ""
		assert.Error(t, req.Validate())
	})
}

func TestSubmissionPayloadValidate(t *testing.T) {
	require.NoError(t, (&SubmissionPayload{SubmissionURL: strPtr("https://example.com/repo.zip")}).Validate())

	err := (&SubmissionPayload{}).Validate()
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "submission_url", validationErr.Field)

	assert.Error(t, (&SubmissionPayload{SubmissionURL: strPtr("")}).Validate())
}
