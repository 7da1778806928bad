package v1handler

import (
	"net/http"
	"recruit/pkg/storage"
	"time"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is returned by sign-in.
type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type updateProfileRequest struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	Linkedin *string `json:"linkedin"`
}

// SignUp registers a new account.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	account, err := h.deps.Recruit.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusCreated, account)
}

// SignIn verifies the credential and returns a bearer token.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	account, err := h.deps.Recruit.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	token, expiresAt, err := h.deps.Issuer.Issue(account.ID)
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token, ExpiresAt: expiresAt})
}

// Me returns the authenticated account.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	account, err := h.deps.Recruit.Account(r.Context(), GetAccountIDFromContext(r.Context()))
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, account)
}

// UpdateMe applies profile edits to the authenticated account.
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	account, err := h.deps.Recruit.UpdateProfile(r.Context(),
		GetAccountIDFromContext(r.Context()),
		storage.AccountUpdates{
			FullName: req.FullName,
			Phone:    req.Phone,
			Location: req.Location,
			Linkedin: req.Linkedin,
		})
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, account)
}

// DeleteMe removes the authenticated account and everything it owns.
func (h *Handler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Recruit.DeleteAccount(r.Context(), GetAccountIDFromContext(r.Context())); err != nil {
		writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MyCompanies lists the companies owned by the authenticated account.
func (h *Handler) MyCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.deps.Recruit.OwnedCompanies(r.Context(), GetAccountIDFromContext(r.Context()))
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, companies)
}

// MyApplications lists the applications submitted by the authenticated account.
func (h *Handler) MyApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.deps.Recruit.OwnApplications(r.Context(), GetAccountIDFromContext(r.Context()))
	if err != nil {
		writeError(r.Context(), w, err)

		return
	}

	writeJSON(w, http.StatusOK, apps)
}
