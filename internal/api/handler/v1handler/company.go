package v1handler

import (
	"io"
	"net/http"
	"recruit/internal/recruit"
	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	"recruit/pkg/storage"
)

type createCompanyRequest struct {
	Name         string         `json:"name"`
	Website      string         `json:"website"`
	Address      domain.Address `json:"address"`
	SupportEmail string         `json:"supportEmail"`
}

type updateCompanyRequest struct {
	Name         *string `json:"name"`
	Website      *string `json:"website"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	Pincode      *string `json:"pincode"`
	SupportEmail *string `json:"supportEmail"`
}

// CreateCompany registers a new company owned by the caller.
func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	company, err := h.deps.Recruit.CreateCompany(r.Context(),
		GetAccountIDFromContext(r.Context()),
		recruit.CreateCompanyParams{
			Name:         req.Name,
			Website:      req.Website,
			Address:      req.Address,
			SupportEmail: req.SupportEmail,
		})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, company)
}

// ListCompanies returns all companies.
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.deps.Recruit.Companies(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, companies)
}

// GetCompany returns one company by ID.
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	company, err := h.deps.Recruit.Company(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, company)
}

// UpdateCompany applies edits to a company owned by the caller.
func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	var req updateCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	company, err := h.deps.Recruit.UpdateCompany(r.Context(),
		GetAccountIDFromContext(r.Context()),
		id,
		storage.CompanyUpdates{
			Name:         req.Name,
			Website:      req.Website,
			Street:       req.Street,
			City:         req.City,
			Pincode:      req.Pincode,
			SupportEmail: req.SupportEmail,
		})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, company)
}

// DeleteCompany removes a company owned by the caller.
func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	if err := h.deps.Recruit.DeleteCompany(r.Context(), GetAccountIDFromContext(r.Context()), id); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadLogo stores the raw request body as the company logo. The body is
// capped one byte above the limit so oversized uploads fail fast with
// VALIDATION instead of streaming the whole payload.
func (h *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	id, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, domain.MaxLogoSize+1))
	if err != nil {
		writeError(r.Context(), w,
			serrors.Wrap(serrors.ErrValidation, err, "could not read logo payload"))

		return
	}

	if err := h.deps.Recruit.UploadLogo(r.Context(), GetAccountIDFromContext(r.Context()), id, data); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetLogo streams the stored logo bytes.
func (h *Handler) GetLogo(w http.ResponseWriter, r *http.Request) {
	id, err := companyIDParam(r)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	data, err := h.deps.Recruit.Logo(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	_, _ = w.Write(data)
}
