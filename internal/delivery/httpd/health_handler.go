package httpd

import (
	"net/http"

	"github.com/coursehub/assignment-service/pkg/utils"
)

// HealthCheck answers with an empty 200 when the database is reachable.
// Request bodies and query parameters are rejected outright.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	// ContentLength is -1 for chunked bodies, so only 0 means no body.
	if r.ContentLength != 0 {
		utils.ErrorResponse(w, http.StatusBadRequest, "Request body is not allowed for this endpoint")
		return
	}

	if len(r.URL.Query()) > 0 {
		utils.ErrorResponse(w, http.StatusBadRequest, "Query parameters are not allowed for this endpoint")
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("Health check failed")
		utils.ErrorResponse(w, http.StatusServiceUnavailable, "Service Unavailable")
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
}
