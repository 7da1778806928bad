package v1handler

import (
	"net/http"
	"recruit/pkg/domain"

	"github.com/go-chi/chi/v5"
)

// Apply submits an application. The request body is the applicant profile
// snapshot stored verbatim on the application.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}
	postingID, err := postingIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	var profile domain.ApplicantProfile
	if err := decodeJSON(r, &profile); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	app, err := h.deps.Recruit.Apply(r.Context(),
		GetAccountIDFromContext(r.Context()),
		companyID,
		postingID,
		profile)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, app)
}

// ListApplications returns a posting's applications to the company owner.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}
	postingID, err := postingIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	apps, err := h.deps.Recruit.PostingApplications(r.Context(),
		GetAccountIDFromContext(r.Context()),
		companyID,
		postingID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, apps)
}

// GetApplication returns one application to its applicant or the company owner.
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}
	postingID, err := postingIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}
	applicationID, err := applicationIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	app, err := h.deps.Recruit.Application(r.Context(),
		GetAccountIDFromContext(r.Context()),
		companyID,
		postingID,
		applicationID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, app)
}

// SetApplicationStatus transitions an application's status on behalf of the
// company owner. The target status is part of the path, mirroring the rest of
// the addressing chain.
func (h *Handler) SetApplicationStatus(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}
	postingID, err := postingIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}
	applicationID, err := applicationIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	app, err := h.deps.Recruit.SetApplicationStatus(r.Context(),
		GetAccountIDFromContext(r.Context()),
		companyID,
		postingID,
		applicationID,
		chi.URLParam(r, "status"))
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, app)
}
