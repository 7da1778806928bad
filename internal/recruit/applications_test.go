package recruit_test

import (
	"context"
	"errors"
	"testing"

	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	mockstorage "recruit/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func testProfile() domain.ApplicantProfile {
	return domain.ApplicantProfile{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}
}

func newApplication(post *domain.JobPost, applicant domain.AccountID) *domain.JobApplication {
	return &domain.JobApplication{
		ID:          domain.ApplicationID(uuid.New()),
		ApplicantID: applicant,
		JobPostID:   post.ID,
		CompanyID:   post.CompanyID,
		Profile:     testProfile(),
		Status:      domain.ApplicationStatusPending,
	}
}

func TestApply_StoresPendingSnapshot(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	owner := newAccountID()
	applicant := newAccountID()
	company := newCompany(owner)
	post := newJobPost(company)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
		tx.EXPECT().JobPostByID(gomock.Any(), post.ID).Return(post, nil)
		tx.EXPECT().ApplicationExists(gomock.Any(), applicant, post.ID).Return(false, nil)
		tx.EXPECT().StoreApplication(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, app domain.JobApplication) (*domain.JobApplication, error) {
				if app.Status != domain.ApplicationStatusPending {
					t.Fatalf("expected PENDING, got %s", app.Status)
				}
				if app.CompanyID != company.ID {
					t.Fatalf("company snapshot not taken from the posting")
				}
				app.ID = domain.ApplicationID(uuid.New())

				return &app, nil
			},
		)
	})

	app, err := svc.Apply(context.Background(), applicant, company.ID, post.ID, testProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.ApplicantID != applicant {
		t.Fatalf("unexpected applicant")
	}
}

func TestApply_SelfApplication(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	owner := newAccountID()
	company := newCompany(owner)
	post := newJobPost(company)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
		tx.EXPECT().JobPostByID(gomock.Any(), post.ID).Return(post, nil)
	})

	_, err := svc.Apply(context.Background(), owner, company.ID, post.ID, testProfile())
	if !errors.Is(err, serrors.ErrSelfApplication) {
		t.Fatalf("expected SELF_APPLICATION, got %v", err)
	}
}

func TestApply_Duplicate(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	applicant := newAccountID()
	company := newCompany(newAccountID())
	post := newJobPost(company)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
		tx.EXPECT().JobPostByID(gomock.Any(), post.ID).Return(post, nil)
		tx.EXPECT().ApplicationExists(gomock.Any(), applicant, post.ID).Return(true, nil)
	})

	_, err := svc.Apply(context.Background(), applicant, company.ID, post.ID, testProfile())
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestApply_PostingUnderWrongCompany(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	applicant := newAccountID()
	company := newCompany(newAccountID())
	other := newCompany(newAccountID())
	post := newJobPost(other)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
		tx.EXPECT().JobPostByID(gomock.Any(), post.ID).Return(post, nil)
	})

	_, err := svc.Apply(context.Background(), applicant, company.ID, post.ID, testProfile())
	if !errors.Is(err, serrors.ErrChainMismatch) {
		t.Fatalf("expected CHAIN_MISMATCH, got %v", err)
	}
}

func TestApply_MissingProfileFields(t *testing.T) {
	_, _, _, svc := newTestService(t)

	company := newCompany(newAccountID())
	post := newJobPost(company)

	_, err := svc.Apply(context.Background(), newAccountID(), company.ID, post.ID, domain.ApplicantProfile{})
	if !errors.Is(err, serrors.ErrValidation) {
		t.Fatalf("expected VALIDATION, got %v", err)
	}
}

func TestApplication_ReadableByApplicantAndOwnerOnly(t *testing.T) {
	_, st, _, svc := newTestService(t)

	owner := newAccountID()
	applicant := newAccountID()
	stranger := newAccountID()
	company := newCompany(owner)
	post := newJobPost(company)
	app := newApplication(post, applicant)

	st.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil).Times(3)
	st.EXPECT().JobPostByID(gomock.Any(), post.ID).Return(post, nil).Times(3)
	st.EXPECT().ApplicationByID(gomock.Any(), app.ID).Return(app, nil).Times(3)

	if _, err := svc.Application(context.Background(), applicant, company.ID, post.ID, app.ID); err != nil {
		t.Fatalf("applicant read failed: %v", err)
	}
	if _, err := svc.Application(context.Background(), owner, company.ID, post.ID, app.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := svc.Application(context.Background(), stranger, company.ID, post.ID, app.ID); !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected FORBIDDEN for stranger, got %v", err)
	}
}

func TestPostingApplications_OwnerOnly(t *testing.T) {
	_, st, _, svc := newTestService(t)

	owner := newAccountID()
	applicant := newAccountID()
	company := newCompany(owner)
	post := newJobPost(company)

	st.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil).Times(2)
	st.EXPECT().JobPostByID(gomock.Any(), post.ID).Return(post, nil)
	st.EXPECT().ApplicationsByPosting(gomock.Any(), company.ID, post.ID).
		Return([]domain.JobApplication{*newApplication(post, applicant)}, nil)

	apps, err := svc.PostingApplications(context.Background(), owner, company.ID, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected one application, got %d", len(apps))
	}

	if _, err := svc.PostingApplications(context.Background(), applicant, company.ID, post.ID); !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected FORBIDDEN for the applicant, got %v", err)
	}
}

func TestSetApplicationStatus_Transition(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	owner := newAccountID()
	company := newCompany(owner)
	post := newJobPost(company)
	app := newApplication(post, newAccountID())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
		tx.EXPECT().JobPostByID(gomock.Any(), post.ID).Return(post, nil)
		tx.EXPECT().ApplicationByID(gomock.Any(), app.ID).Return(app, nil)
		tx.EXPECT().UpdateApplicationStatus(gomock.Any(), app.ID, domain.ApplicationStatusApproved).DoAndReturn(
			func(_ context.Context, _ domain.ApplicationID, status domain.ApplicationStatus) (*domain.JobApplication, error) {
				updated := *app
				updated.Status = status

				return &updated, nil
			},
		)
	})

	got, err := svc.SetApplicationStatus(context.Background(), owner, company.ID, post.ID, app.ID, "APPROVED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.ApplicationStatusApproved {
		t.Fatalf("expected APPROVED, got %s", got.Status)
	}
}

func TestSetApplicationStatus_TerminalImmutable(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	owner := newAccountID()
	company := newCompany(owner)
	post := newJobPost(company)
	app := newApplication(post, newAccountID())
	app.Status = domain.ApplicationStatusRejected

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
		tx.EXPECT().JobPostByID(gomock.Any(), post.ID).Return(post, nil)
		tx.EXPECT().ApplicationByID(gomock.Any(), app.ID).Return(app, nil)
	})

	_, err := svc.SetApplicationStatus(context.Background(), owner, company.ID, post.ID, app.ID, "APPROVED")
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestSetApplicationStatus_SameStatusNoOp(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	owner := newAccountID()
	company := newCompany(owner)
	post := newJobPost(company)
	app := newApplication(post, newAccountID())
	app.Status = domain.ApplicationStatusApproved

	// no UpdateApplicationStatus expected
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
		tx.EXPECT().JobPostByID(gomock.Any(), post.ID).Return(post, nil)
		tx.EXPECT().ApplicationByID(gomock.Any(), app.ID).Return(app, nil)
	})

	got, err := svc.SetApplicationStatus(context.Background(), owner, company.ID, post.ID, app.ID, "APPROVED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.ApplicationStatusApproved {
		t.Fatalf("expected APPROVED, got %s", got.Status)
	}
}

func TestSetApplicationStatus_UnknownStatus(t *testing.T) {
	_, _, _, svc := newTestService(t)

	company := newCompany(newAccountID())
	post := newJobPost(company)
	app := newApplication(post, newAccountID())

	_, err := svc.SetApplicationStatus(context.Background(),
		company.CreatedBy, company.ID, post.ID, app.ID, "ARCHIVED")
	if !errors.Is(err, serrors.ErrValidation) {
		t.Fatalf("expected VALIDATION, got %v", err)
	}
}

func TestSetApplicationStatus_NonOwnerForbidden(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	company := newCompany(newAccountID())
	post := newJobPost(company)
	app := newApplication(post, newAccountID())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
	})

	_, err := svc.SetApplicationStatus(context.Background(),
		app.ApplicantID, company.ID, post.ID, app.ID, "APPROVED")
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}
}
