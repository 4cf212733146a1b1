package payrollhandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"obra/internal/domain/payroll"
	"obra/internal/transport/http/api"
	"obra/internal/transport/http/middleware"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/weeks/{weekID}/summary", h.handleWeeklySummary)
	})
}

func (h *Handler) handleWeeklySummary(w http.ResponseWriter, r *http.Request) {
	weekID := chi.URLParam(r, "weekID")
	requestID := middleware.GetRequestID(r.Context())

	summary, err := h.Service.WeeklySummary(r.Context(), weekID)
	switch {
	case errors.Is(err, payroll.ErrWeekInvalid):
		api.Fail(w, http.StatusBadRequest, "week_invalid", err.Error(), requestID)
		return
	case errors.Is(err, payroll.ErrWeekNotFound):
		api.Fail(w, http.StatusNotFound, "week_not_found", "payroll week not found", requestID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "payroll_summary_failed", "failed to compute weekly summary", requestID)
		return
	}
	api.Success(w, summary, requestID)
}
