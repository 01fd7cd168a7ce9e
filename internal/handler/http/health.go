package http

import (
	"net/http"

	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// health reports liveness for deploy probes. Degraded means the process is
// up but the database does not answer.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.storages.DB.PingContext(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check: database ping failed")
		_, _ = utils.WriteJSON(w, healthResponse{Status: "degraded", Version: h.app.Version}, http.StatusServiceUnavailable)
		return
	}

	_, _ = utils.WriteJSON(w, healthResponse{Status: "ok", Version: h.app.Version}, http.StatusOK)
}
