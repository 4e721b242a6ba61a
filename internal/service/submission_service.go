package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/coursehub/assignment-service/internal/models"
	"github.com/coursehub/assignment-service/internal/repository"
	"github.com/coursehub/assignment-service/internal/service/integration"
)

type SubmissionService interface {
	CreateSubmission(ctx context.Context, user *models.User, assignmentID string, payload *models.SubmissionPayload) (*models.Submission, error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	assignmentRepo repository.AssignmentRepository
	brokerClient   integration.BrokerClient
	logger         zerolog.Logger
}

func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	assignmentRepo repository.AssignmentRepository,
	brokerClient integration.BrokerClient,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		assignmentRepo: assignmentRepo,
		brokerClient:   brokerClient,
		logger:         logger,
	}
}

// CreateSubmission accepts a submission from any authenticated user, not
// just the assignment owner. The deadline is checked first; the attempt
// limit is enforced by an atomic conditional insert.
func (s *submissionService) CreateSubmission(ctx context.Context, user *models.User, assignmentID string, payload *models.SubmissionPayload) (*models.Submission, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}

	now := time.Now().UTC()
	if now.After(assignment.Deadline) {
		return nil, ErrDeadlinePassed
	}

	submission := &models.Submission{
		ID:                uuid.New().String(),
		AssignmentID:      assignment.ID,
		UserID:            user.ID,
		SubmissionURL:     *payload.SubmissionURL,
		SubmissionDate:    now,
		SubmissionUpdated: now,
	}

	inserted, err := s.submissionRepo.CreateWithinLimit(ctx, submission, assignment.NumOfAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}
	if !inserted {
		return nil, ErrAttemptLimitExceeded
	}

	s.logger.Info().
		Str("submission_id", submission.ID).
		Str("assignment_id", assignment.ID).
		Str("user_id", user.ID).
		Msg("Submission created")

	s.publishCreated(ctx, submission, user)

	return submission, nil
}

// publishCreated is best effort. The row is already committed, so a broker
// failure is logged instead of failing the request.
func (s *submissionService) publishCreated(ctx context.Context, submission *models.Submission, user *models.User) {
	if s.brokerClient == nil {
		return
	}

	event := &models.SubmissionCreatedEvent{
		AssignmentID:  submission.AssignmentID,
		SubmissionURL: submission.SubmissionURL,
		UserEmail:     user.Email,
		Timestamp:     submission.SubmissionDate.Unix(),
	}

	if err := s.brokerClient.PublishSubmissionCreated(ctx, event); err != nil {
		s.logger.Error().Err(err).
			Str("submission_id", submission.ID).
			Msg("Failed to publish submission created event")
	}
}
