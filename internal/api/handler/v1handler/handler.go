// Package v1handler implements the v1 HTTP handlers on top of the recruitment
// core. Handlers only translate between HTTP and the core: every
// authorization and lifecycle decision lives in internal/recruit, and error
// kinds map onto status codes in respond.go.
package v1handler

import (
	"net/http"
	"recruit/internal/recruit"
	"recruit/pkg/domain"
	"recruit/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Deps holds the dependencies the v1 handlers need.
type Deps struct {
	// Recruit is the recruitment core service.
	Recruit recruit.Service
	// Issuer mints bearer tokens at sign-in.
	Issuer *TokenIssuer
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes builds the v1 router. Sign-up and sign-in are the only public
// endpoints; everything else runs behind the bearer auth middleware.
func (h *Handler) Routes(authn func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Post("/sign-up", h.SignUp)
	r.Post("/sign-in", h.SignIn)

	r.Group(func(r chi.Router) {
		r.Use(authn)

		r.Route("/me", func(r chi.Router) {
			r.Get("/", h.Me)
			r.Patch("/", h.UpdateMe)
			r.Delete("/", h.DeleteMe)
			r.Get("/companies", h.MyCompanies)
			r.Get("/applications", h.MyApplications)
		})

		r.Get("/companies", h.ListCompanies)
		r.Post("/companies", h.CreateCompany)
		r.Get("/job-posts", h.ListPostings)

		r.Route("/company/{companyID}", func(r chi.Router) {
			r.Get("/", h.GetCompany)
			r.Patch("/", h.UpdateCompany)
			r.Delete("/", h.DeleteCompany)
			r.Put("/logo", h.UploadLogo)
			r.Get("/logo", h.GetLogo)

			r.Get("/job-posts", h.ListCompanyPostings)
			r.Post("/job-posts", h.CreatePosting)

			r.Route("/job-post/{postingID}", func(r chi.Router) {
				r.Get("/", h.GetPosting)
				r.Patch("/", h.UpdatePosting)
				r.Delete("/", h.DeletePosting)

				r.Get("/applications", h.ListApplications)
				r.Post("/applications", h.Apply)

				r.Route("/application/{applicationID}", func(r chi.Router) {
					r.Get("/", h.GetApplication)
					r.Post("/status/{status}", h.SetApplicationStatus)
				})
			})
		})
	})

	return r
}

// pathID parses a UUID path parameter. Malformed IDs are reported as
// VALIDATION before any lookup happens.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrValidation, err, "invalid %s %q", name, raw)
	}

	return id, nil
}

func companyIDParam(r *http.Request) (domain.CompanyID, error) {
	id, err := pathID(r, "companyID")

	return domain.CompanyID(id), err
}

func postingIDParam(r *http.Request) (domain.PostingID, error) {
	id, err := pathID(r, "postingID")

	return domain.PostingID(id), err
}

func applicationIDParam(r *http.Request) (domain.ApplicationID, error) {
	id, err := pathID(r, "applicationID")

	return domain.ApplicationID(id), err
}
