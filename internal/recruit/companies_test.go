package recruit_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"recruit/internal/recruit"
	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	"recruit/pkg/storage"
	mockstorage "recruit/pkg/storage/mock"

	"github.com/riverqueue/river"
	"go.uber.org/mock/gomock"
)

func TestCreateCompany_DuplicateName(t *testing.T) {
	_, st, _, svc := newTestService(t)

	owner := newAccountID()
	st.EXPECT().CompanyByName(gomock.Any(), "Acme").Return(newCompany(newAccountID()), nil)

	_, err := svc.CreateCompany(context.Background(), owner, recruit.CreateCompanyParams{Name: "Acme"})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestCreateCompany_SetsOwner(t *testing.T) {
	_, st, _, svc := newTestService(t)

	owner := newAccountID()
	st.EXPECT().CompanyByName(gomock.Any(), "Acme").Return(nil, nil)
	st.EXPECT().StoreCompany(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, company domain.Company) (*domain.Company, error) {
			if company.CreatedBy != owner {
				t.Fatalf("company owner not set to the actor")
			}

			return &company, nil
		},
	)

	company, err := svc.CreateCompany(context.Background(), owner, recruit.CreateCompanyParams{Name: "Acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if company.Name != "Acme" {
		t.Fatalf("unexpected name %q", company.Name)
	}
}

func TestUpdateCompany_NonOwnerForbidden(t *testing.T) {
	_, st, _, svc := newTestService(t)

	company := newCompany(newAccountID())
	stranger := newAccountID()
	name := "Globex"

	st.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)

	_, err := svc.UpdateCompany(context.Background(), stranger, company.ID, storage.CompanyUpdates{Name: &name})
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}
}

func TestDeleteCompany_EnqueuesLogoCleanup(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	owner := newAccountID()
	company := newCompany(owner)
	company.LogoKey = "logo-" + company.ID.String()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
		tx.EXPECT().DeleteCompany(gomock.Any(), company.ID).Return(company, nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				cleanup, ok := args.(recruit.BlobCleanupArgs)
				if !ok {
					t.Fatalf("unexpected job args type %T", args)
				}
				if len(cleanup.Keys) != 1 || cleanup.Keys[0] != company.LogoKey {
					t.Fatalf("unexpected cleanup keys %v", cleanup.Keys)
				}

				return true, nil
			},
		)
	})

	if err := svc.DeleteCompany(context.Background(), owner, company.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteCompany_NonOwnerForbidden(t *testing.T) {
	ctrl, st, _, svc := newTestService(t)

	company := newCompany(newAccountID())
	stranger := newAccountID()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)
	})

	if err := svc.DeleteCompany(context.Background(), stranger, company.ID); !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}
}

func TestUploadLogo_RoundTrip(t *testing.T) {
	_, st, blobs, svc := newTestService(t)

	owner := newAccountID()
	company := newCompany(owner)
	payload := []byte("png-bytes")

	st.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil).Times(2)
	st.EXPECT().UpdateCompany(gomock.Any(), company.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.CompanyID, updates storage.CompanyUpdates) (*domain.Company, error) {
			if updates.LogoKey == nil {
				t.Fatalf("logo key not recorded")
			}
			updated := *company
			updated.LogoKey = *updates.LogoKey
			*company = updated

			return &updated, nil
		},
	)

	if err := svc.UploadLogo(context.Background(), owner, company.ID, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Logo(context.Background(), company.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("logo bytes do not round trip")
	}
	if _, ok := blobs.data[company.LogoKey]; !ok {
		t.Fatalf("blob not stored under recorded key")
	}
}

func TestUploadLogo_Oversized(t *testing.T) {
	_, st, _, svc := newTestService(t)

	owner := newAccountID()
	company := newCompany(owner)

	st.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)

	oversized := make([]byte, domain.MaxLogoSize+1)
	if err := svc.UploadLogo(context.Background(), owner, company.ID, oversized); !errors.Is(err, serrors.ErrValidation) {
		t.Fatalf("expected VALIDATION, got %v", err)
	}
}

func TestLogo_NoneUploaded(t *testing.T) {
	_, st, _, svc := newTestService(t)

	company := newCompany(newAccountID())
	st.EXPECT().CompanyByID(gomock.Any(), company.ID).Return(company, nil)

	if _, err := svc.Logo(context.Background(), company.ID); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
