package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/coursehub/assignment-service/internal/models"
)

type SubmissionRepository interface {
	// CreateWithinLimit inserts the submission only while the caller's
	// prior submission count for the assignment is below limit. Returns
	// false when the limit is already reached. The count and insert run
	// in one transaction holding a row lock on the assignment, so
	// concurrent submissions serialize on the check and cannot race
	// past the cap.
	CreateWithinLimit(ctx context.Context, submission *models.Submission, limit int) (bool, error)
}

type submissionRepository struct {
	*PostgresRepository
}

func NewSubmissionRepository(db *sql.DB, logger zerolog.Logger) SubmissionRepository {
	return &submissionRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *submissionRepository) CreateWithinLimit(ctx context.Context, submission *models.Submission, limit int) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	// Under READ COMMITTED two statements can both count before either
	// insert becomes visible. Locking the assignment row serializes
	// submissions for the same assignment for the rest of the
	// transaction.
	var lockedID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM assignments WHERE id = $1 FOR UPDATE`,
		submission.AssignmentID,
	).Scan(&lockedID)
	if err != nil {
		return false, err
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM submissions WHERE assignment_id = $1 AND user_id = $2`,
		submission.AssignmentID,
		submission.UserID,
	).Scan(&count)
	if err != nil {
		return false, err
	}

	if count >= limit {
		return false, nil
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO submissions (id, assignment_id, user_id, submission_url, submission_date, submission_updated)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		submission.ID,
		submission.AssignmentID,
		submission.UserID,
		submission.SubmissionURL,
		submission.SubmissionDate,
		submission.SubmissionUpdated,
	)
	if err != nil {
		return false, err
	}

	return true, tx.Commit()
}
