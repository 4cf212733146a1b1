package financialshandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"obra/internal/domain/financials"
	"obra/internal/transport/http/api"
	"obra/internal/transport/http/middleware"
)

type Handler struct {
	Service *financials.Service
}

func NewHandler(service *financials.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/{projectID}/financials/{year}", h.handleProjectFinancials)
	})
}

func (h *Handler) handleProjectFinancials(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	requestID := middleware.GetRequestID(r.Context())

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "year_invalid", "year must be a number", requestID)
		return
	}

	report, err := h.Service.ProjectYear(r.Context(), projectID, year)
	switch {
	case errors.Is(err, financials.ErrProjectInvalid), errors.Is(err, financials.ErrYearInvalid):
		api.Fail(w, http.StatusBadRequest, "financials_invalid", err.Error(), requestID)
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "financials_failed", "failed to compute project financials", requestID)
		return
	}
	api.Success(w, report, requestID)
}
