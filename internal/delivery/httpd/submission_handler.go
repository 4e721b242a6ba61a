package httpd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/coursehub/assignment-service/internal/middleware"
	"github.com/coursehub/assignment-service/internal/models"
	"github.com/coursehub/assignment-service/pkg/utils"
)

func (h *Handler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload models.SubmissionPayload
	if err := decodeBody(r, &payload); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	submission, err := h.submissionService.CreateSubmission(r.Context(), user, chi.URLParam(r, "id"), &payload)
	if err != nil {
		h.handleSubmissionError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, submission)
}
