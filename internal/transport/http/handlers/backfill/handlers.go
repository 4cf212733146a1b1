package backfillhandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"obra/internal/domain/backfill"
	"obra/internal/transport/http/api"
	"obra/internal/transport/http/middleware"
)

type Handler struct {
	Job *backfill.Job
}

func NewHandler(job *backfill.Job) *Handler {
	return &Handler{Job: job}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin/rates", func(r chi.Router) {
		r.Post("/backfill", h.handleBackfill)
	})
}

func (h *Handler) handleBackfill(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	result, err := h.Job.Run(r.Context())
	switch {
	case errors.Is(err, backfill.ErrAlreadyRunning):
		api.Fail(w, http.StatusConflict, "backfill_running", "rate backfill already running", requestID)
		return
	case err != nil:
		// Partial progress is kept; report how far the run got.
		api.WriteJSON(w, http.StatusInternalServerError, api.Envelope{
			Success:   false,
			Data:      result,
			Error:     &api.Error{Code: "backfill_failed", Message: "rate backfill aborted"},
			RequestID: requestID,
		})
		return
	}
	api.Success(w, result, requestID)
}
