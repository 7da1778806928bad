package recruit

import (
	"context"
	"fmt"
	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	"recruit/pkg/storage"
	"strings"
)

// Apply submits an application against a posting addressed through its
// company. The chain is resolved inside a transaction together with the
// insert, so the posting cannot disappear between validation and submission.
func (s service) Apply(ctx context.Context,
	applicant domain.AccountID,
	companyID domain.CompanyID,
	postingID domain.PostingID,
	profile domain.ApplicantProfile) (*domain.JobApplication, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Name == "" || profile.Email == "" {
		return nil, serrors.With(serrors.ErrValidation, "applicant name and email are required")
	}

	var app *domain.JobApplication
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		company, err := resolveCompany(ctx, tx, companyID)
		if err != nil {
			return err
		}
		post, err := resolvePosting(ctx, tx, company, postingID)
		if err != nil {
			return err
		}

		// the company owner can never be an applicant to their own posting
		if company.CreatedBy == applicant {
			return serrors.With(serrors.ErrSelfApplication,
				"account %s owns company %s and cannot apply to its postings", applicant, company.ID)
		}

		// friendly pre-check; the unique (applicant, posting) constraint
		// remains the authoritative guard under concurrency
		exists, err := tx.ApplicationExists(ctx, applicant, post.ID)
		if err != nil {
			return fmt.Errorf("could not check for an existing application: %w", err)
		}
		if exists {
			return serrors.With(serrors.ErrConflict,
				"account %s has already applied to job post %s", applicant, post.ID)
		}

		stored, err := tx.StoreApplication(ctx, domain.JobApplication{
			ApplicantID: applicant,
			JobPostID:   post.ID,
			// snapshot of the posting's company at submission time
			CompanyID: company.ID,
			Profile:   profile,
			Status:    domain.ApplicationStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store application: %w", err)
		}
		app = stored

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not apply to job post %s: %w", postingID, err)
	}

	return app, nil
}

// Application returns one application, readable only by the original
// applicant or the company owner.
func (s service) Application(ctx context.Context,
	actor domain.AccountID,
	companyID domain.CompanyID,
	postingID domain.PostingID,
	applicationID domain.ApplicationID) (*domain.JobApplication, error) {
	company, err := resolveCompany(ctx, s.storage, companyID)
	if err != nil {
		return nil, err
	}
	post, err := resolvePosting(ctx, s.storage, company, postingID)
	if err != nil {
		return nil, err
	}
	app, err := resolveApplication(ctx, s.storage, company, post, applicationID)
	if err != nil {
		return nil, err
	}

	if app.ApplicantID != actor && company.CreatedBy != actor {
		return nil, serrors.With(serrors.ErrForbidden,
			"account %s may not read application %s", actor, applicationID)
	}

	return app, nil
}

// PostingApplications lists a posting's applications for the company owner.
func (s service) PostingApplications(ctx context.Context,
	actor domain.AccountID,
	companyID domain.CompanyID,
	postingID domain.PostingID) ([]domain.JobApplication, error) {
	company, err := resolveCompany(ctx, s.storage, companyID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(company, actor); err != nil {
		return nil, err
	}
	post, err := resolvePosting(ctx, s.storage, company, postingID)
	if err != nil {
		return nil, err
	}

	apps, err := s.storage.ApplicationsByPosting(ctx, company.ID, post.ID)
	if err != nil {
		return nil, fmt.Errorf("could not list applications: %w", err)
	}

	return apps, nil
}

// SetApplicationStatus transitions an application's status on behalf of the
// company owner. The read and the update run in one transaction so two
// concurrent transitions cannot both pass the terminal-status check.
func (s service) SetApplicationStatus(ctx context.Context,
	actor domain.AccountID,
	companyID domain.CompanyID,
	postingID domain.PostingID,
	applicationID domain.ApplicationID,
	status string) (*domain.JobApplication, error) {
	next, ok := domain.ParseApplicationStatus(status)
	if !ok {
		return nil, serrors.With(serrors.ErrValidation, "unknown application status %q", status)
	}

	var app *domain.JobApplication
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		company, err := resolveCompany(ctx, tx, companyID)
		if err != nil {
			return err
		}
		if err := requireOwner(company, actor); err != nil {
			return err
		}
		post, err := resolvePosting(ctx, tx, company, postingID)
		if err != nil {
			return err
		}
		current, err := resolveApplication(ctx, tx, company, post, applicationID)
		if err != nil {
			return err
		}

		// re-setting the current status is an idempotent no-op
		if current.Status == next {
			app = current

			return nil
		}
		if !current.Status.CanTransition(next) {
			return serrors.With(serrors.ErrConflict,
				"application %s is already %s", applicationID, current.Status)
		}

		updated, err := tx.UpdateApplicationStatus(ctx, applicationID, next)
		if err != nil {
			return fmt.Errorf("could not update application status: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "application %s does not exist", applicationID)
		}
		app = updated

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not set status of application %s: %w", applicationID, err)
	}

	return app, nil
}
