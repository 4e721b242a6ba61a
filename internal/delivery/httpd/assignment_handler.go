package httpd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/coursehub/assignment-service/internal/middleware"
	"github.com/coursehub/assignment-service/internal/models"
	"github.com/coursehub/assignment-service/pkg/utils"
)

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload models.AssignmentPayload
	if err := decodeBody(r, &payload); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(r.Context(), user.ID, &payload)
	if err != nil {
		h.handleAssignmentError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, assignment)
}

func (h *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	assignments, err := h.assignmentService.GetAssignments(r.Context(), user.ID)
	if err != nil {
		h.handleAssignmentError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, assignments)
}

func (h *Handler) GetAssignmentByID(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	assignment, err := h.assignmentService.GetAssignmentByID(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		h.handleAssignmentError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, assignment)
}

func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload models.AssignmentPayload
	if err := decodeBody(r, &payload); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.assignmentService.UpdateAssignment(r.Context(), user.ID, chi.URLParam(r, "id"), &payload); err != nil {
		h.handleAssignmentError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.assignmentService.DeleteAssignment(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		h.handleAssignmentError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
