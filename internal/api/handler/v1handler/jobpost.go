package v1handler

import (
	"net/http"
	"recruit/internal/recruit"
	"recruit/pkg/domain"
	"recruit/pkg/storage"
)

type createPostingRequest struct {
	Title       string             `json:"title"`
	Type        string             `json:"type"`
	Location    domain.JobLocation `json:"location"`
	Description string             `json:"description"`
	SalaryRange string             `json:"salaryRange"`
}

type updatePostingRequest struct {
	Title       *string `json:"title"`
	Type        *string `json:"type"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	Description *string `json:"description"`
	SalaryRange *string `json:"salaryRange"`
}

// CreatePosting adds a posting under a company owned by the caller.
func (h *Handler) CreatePosting(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	var req createPostingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	post, err := h.deps.Recruit.CreatePosting(r.Context(),
		GetAccountIDFromContext(r.Context()),
		companyID,
		recruit.CreatePostingParams{
			Title:       req.Title,
			Type:        domain.JobType(req.Type),
			Location:    req.Location,
			Description: req.Description,
			SalaryRange: req.SalaryRange,
		})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// ListPostings returns all postings across all companies.
func (h *Handler) ListPostings(w http.ResponseWriter, r *http.Request) {
	posts, err := h.deps.Recruit.Postings(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// ListCompanyPostings returns the postings of one company.
func (h *Handler) ListCompanyPostings(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	posts, err := h.deps.Recruit.CompanyPostings(r.Context(), companyID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, posts)
}

// GetPosting resolves a posting through its company path.
func (h *Handler) GetPosting(w http.ResponseWriter, r *http.Request) {
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

	post, err := h.deps.Recruit.Posting(r.Context(), companyID, postingID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, post)
}

// UpdatePosting applies edits to a posting under a company owned by the caller.
func (h *Handler) UpdatePosting(w http.ResponseWriter, r *http.Request) {
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

	var req updatePostingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	var jobType *domain.JobType
	if req.Type != nil {
		t := domain.JobType(*req.Type)
		jobType = &t
	}

	post, err := h.deps.Recruit.UpdatePosting(r.Context(),
		GetAccountIDFromContext(r.Context()),
		companyID,
		postingID,
		storage.JobPostUpdates{
			Title:       req.Title,
			Type:        jobType,
			State:       req.State,
			Country:     req.Country,
			Description: req.Description,
			SalaryRange: req.SalaryRange,
		})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, post)
}

// DeletePosting removes a posting under a company owned by the caller.
func (h *Handler) DeletePosting(w http.ResponseWriter, r *http.Request) {
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

	if err := h.deps.Recruit.DeletePosting(r.Context(),
		GetAccountIDFromContext(r.Context()),
		companyID,
		postingID); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
