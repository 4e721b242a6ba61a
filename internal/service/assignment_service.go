package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/coursehub/assignment-service/internal/models"
	"github.com/coursehub/assignment-service/internal/repository"
)

type AssignmentService interface {
	CreateAssignment(ctx context.Context, userID string, payload *models.AssignmentPayload) (*models.Assignment, error)
	GetAssignmentByID(ctx context.Context, userID, id string) (*models.Assignment, error)
	GetAssignments(ctx context.Context, userID string) ([]models.Assignment, error)
	UpdateAssignment(ctx context.Context, userID, id string, payload *models.AssignmentPayload) error
	DeleteAssignment(ctx context.Context, userID, id string) error
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	logger         zerolog.Logger
}

func NewAssignmentService(assignmentRepo repository.AssignmentRepository, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (s *assignmentService) CreateAssignment(ctx context.Context, userID string, payload *models.AssignmentPayload) (*models.Assignment, error) {
	if err := payload.ValidateCreate(); err != nil {
		return nil, err
	}

	deadline, _ := payload.DeadlineTime()

	now := time.Now().UTC()
	assignment := &models.Assignment{
		ID:                uuid.New().String(),
		Name:              *payload.Name,
		Points:            *payload.Points,
		NumOfAttempts:     *payload.NumOfAttempts,
		Deadline:          deadline,
		UserID:            userID,
		AssignmentCreated: now,
		AssignmentUpdated: now,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info().
		Str("assignment_id", assignment.ID).
		Str("user_id", userID).
		Msg("Assignment created")

	return assignment, nil
}

// getOwned resolves the assignment and enforces ownership. Existence is
// checked before ownership so an absent id is a 404 regardless of caller.
func (s *assignmentService) getOwned(ctx context.Context, userID, id string) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}
	if assignment.UserID != userID {
		return nil, ErrNotOwner
	}
	return assignment, nil
}

func (s *assignmentService) GetAssignmentByID(ctx context.Context, userID, id string) (*models.Assignment, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *assignmentService) GetAssignments(ctx context.Context, userID string) ([]models.Assignment, error) {
	assignments, err := s.assignmentRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	return assignments, nil
}

func (s *assignmentService) UpdateAssignment(ctx context.Context, userID, id string, payload *models.AssignmentPayload) error {
	if err := payload.ValidateUpdate(); err != nil {
		return err
	}

	assignment, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	// Only supplied fields are overwritten, the update timestamp always
	// refreshes.
	if payload.Name != nil {
		assignment.Name = *payload.Name
	}
	if payload.Points != nil {
		assignment.Points = *payload.Points
	}
	if payload.NumOfAttempts != nil {
		assignment.NumOfAttempts = *payload.NumOfAttempts
	}
	if deadline, ok := payload.DeadlineTime(); ok {
		assignment.Deadline = deadline
	}
	assignment.AssignmentUpdated = time.Now().UTC()

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	return nil
}

func (s *assignmentService) DeleteAssignment(ctx context.Context, userID, id string) error {
	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	s.logger.Info().
		Str("assignment_id", id).
		Str("user_id", userID).
		Msg("Assignment deleted")

	return nil
}
