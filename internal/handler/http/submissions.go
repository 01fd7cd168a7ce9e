package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/utils"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

func (h *Handler) createSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var submission models.Submission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid JSON was passed")
		return
	}

	if !h.enforceRateLimits(w, r, submission.AuthorEmail) {
		return
	}

	created, err := h.services.SubmissionService.Create(ctx, submission)
	if err != nil {
		log.Err(err).Str("shop", submission.Shop).Msg("submission creation failed")
		h.writeServiceError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	shop := r.URL.Query().Get("shop")
	status := models.SubmissionStatus(r.URL.Query().Get("status"))

	submissions, err := h.services.SubmissionService.List(ctx, shop, status)
	if err != nil {
		log.Err(err).Str("shop", shop).Msg("submission listing failed")
		h.writeServiceError(w, err)
		return
	}

	if actor, ok := utils.GetActorFromContext(ctx); ok {
		log.Debug().Str("actor", actor).Int("count", len(submissions)).Msg("submissions listed")
	}

	_, _ = utils.WriteJSON(w, models.SubmissionListResponse{
		Submissions: submissions,
		Length:      len(submissions),
	}, http.StatusOK)
}

func (h *Handler) approveSubmission(w http.ResponseWriter, r *http.Request) {
	h.transitionSubmission(w, r, h.services.SubmissionService.Approve)
}

func (h *Handler) publishSubmission(w http.ResponseWriter, r *http.Request) {
	h.transitionSubmission(w, r, h.services.SubmissionService.Publish)
}

func (h *Handler) transitionSubmission(w http.ResponseWriter, r *http.Request, transition func(ctx context.Context, id string) (models.Submission, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "submission id is required")
		return
	}

	updated, err := transition(ctx, id)
	if err != nil {
		log.Err(err).Str("submission_id", id).Msg("submission transition failed")
		h.writeServiceError(w, err)
		return
	}

	log.Info().Str("submission_id", id).Str("status", string(updated.Status)).Msg("submission transitioned")
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}
