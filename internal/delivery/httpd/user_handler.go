package httpd

import (
	"net/http"

	"github.com/coursehub/assignment-service/internal/models"
	"github.com/coursehub/assignment-service/pkg/utils"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		h.handleUserError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, user)
}
