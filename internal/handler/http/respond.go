package http

import (
	"errors"
	"net/http"

	"github.com/carlosbrath/lives-stolen-sub000/internal/service"
	"github.com/carlosbrath/lives-stolen-sub000/internal/utils"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

func writeError(w http.ResponseWriter, status int, code, message string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Error:   message,
		Code:    code,
		Success: false,
	}, status)
}

// writeServiceError maps a service-layer error to the failure envelope.
// Internal causes are not echoed to the client.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	code := codeFromError(err)

	message := err.Error()
	if code == codeInternalError {
		message = "internal server error"
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		message = validationErr.Error()
	}

	writeError(w, status, code, message)
}
