package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/coursehub/assignment-service/internal/models"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	GetAllByUser(ctx context.Context, userID string) ([]models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id string) error
}

type assignmentRepository struct {
	*PostgresRepository
}

func NewAssignmentRepository(db *sql.DB, logger zerolog.Logger) AssignmentRepository {
	return &assignmentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (id, name, points, num_of_attempts, deadline, user_id, assignment_created, assignment_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		assignment.ID,
		assignment.Name,
		assignment.Points,
		assignment.NumOfAttempts,
		assignment.Deadline,
		assignment.UserID,
		assignment.AssignmentCreated,
		assignment.AssignmentUpdated,
	)

	return err
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	query := `
		SELECT id, name, points, num_of_attempts, deadline, user_id, assignment_created, assignment_updated
		FROM assignments
		WHERE id = $1
	`

	assignment := &models.Assignment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.Name,
		&assignment.Points,
		&assignment.NumOfAttempts,
		&assignment.Deadline,
		&assignment.UserID,
		&assignment.AssignmentCreated,
		&assignment.AssignmentUpdated,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return assignment, err
}

func (r *assignmentRepository) GetAllByUser(ctx context.Context, userID string) ([]models.Assignment, error) {
	query := `
		SELECT id, name, points, num_of_attempts, deadline, user_id, assignment_created, assignment_updated
		FROM assignments
		WHERE user_id = $1
		ORDER BY assignment_created DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []models.Assignment{}
	for rows.Next() {
		var assignment models.Assignment
		err := rows.Scan(
			&assignment.ID,
			&assignment.Name,
			&assignment.Points,
			&assignment.NumOfAttempts,
			&assignment.Deadline,
			&assignment.UserID,
			&assignment.AssignmentCreated,
			&assignment.AssignmentUpdated,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET name = $1, points = $2, num_of_attempts = $3, deadline = $4, assignment_updated = $5
		WHERE id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		assignment.Name,
		assignment.Points,
		assignment.NumOfAttempts,
		assignment.Deadline,
		assignment.AssignmentUpdated,
		assignment.ID,
	)

	return err
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM assignments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
