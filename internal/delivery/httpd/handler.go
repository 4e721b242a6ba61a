package httpd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	mw "github.com/coursehub/assignment-service/internal/middleware"
	"github.com/coursehub/assignment-service/internal/models"
	"github.com/coursehub/assignment-service/internal/service"
	"github.com/coursehub/assignment-service/pkg/utils"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	userService       service.UserService
	assignmentService service.AssignmentService
	submissionService service.SubmissionService
	db                Pinger
	logger            zerolog.Logger
}

func NewHandler(
	userService service.UserService,
	assignmentService service.AssignmentService,
	submissionService service.SubmissionService,
	db Pinger,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		userService:       userService,
		assignmentService: assignmentService,
		submissionService: submissionService,
		db:                db,
		logger:            logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.MethodNotAllowed(h.MethodNotAllowed)

	router.Get("/healthz", h.HealthCheck)
	router.Post("/users", h.CreateUser)

	router.Route("/assignments", func(r chi.Router) {
		// PATCH is rejected before authentication ever runs.
		r.Patch("/{id}", h.MethodNotAllowed)

		r.Group(func(r chi.Router) {
			r.Use(mw.BasicAuth(h.userService, h.logger))

			r.Post("/", h.CreateAssignment)
			r.Get("/", h.GetAssignments)
			r.Get("/{id}", h.GetAssignmentByID)
			r.Put("/{id}", h.UpdateAssignment)
			r.Delete("/{id}", h.DeleteAssignment)
			r.Post("/{id}/submission", h.CreateSubmission)
		})
	})
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// decodeBody reads the allow-listed fields of dst from the request body.
// A type mismatch surfaces as a validation error naming the field.
func decodeBody(r *http.Request, dst interface{}) error {
	err := utils.ReadJSON(r, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &models.ValidationError{
			Field:   typeErr.Field,
			Message: typeErr.Field + " has an invalid value",
		}
	}

	return errors.New("Invalid request body")
}

func (h *Handler) handleUserError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		utils.ErrorResponse(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrEmailTaken):
		utils.ErrorResponse(w, http.StatusConflict, "User with the same email already exists")
	default:
		h.logger.Error().Err(err).Msg("User service error")
		utils.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (h *Handler) handleAssignmentError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		utils.ErrorResponse(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrAssignmentNotFound):
		utils.ErrorResponse(w, http.StatusNotFound, "Assignment not found")
	case errors.Is(err, service.ErrNotOwner):
		utils.ErrorResponse(w, http.StatusForbidden, "Permission denied")
	default:
		h.logger.Error().Err(err).Msg("Assignment service error")
		utils.ErrorResponse(w, http.StatusServiceUnavailable, "Service Unavailable")
	}
}

func (h *Handler) handleSubmissionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDeadlinePassed):
		utils.ErrorResponse(w, http.StatusBadRequest, "Assignment deadline has passed")
	case errors.Is(err, service.ErrAttemptLimitExceeded):
		utils.ErrorResponse(w, http.StatusBadRequest, "Retry limit exceeded")
	default:
		h.handleAssignmentError(w, err)
	}
}
