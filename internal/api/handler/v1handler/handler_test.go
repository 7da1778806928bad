package v1handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"recruit/internal/api/handler/v1handler"
	mockrecruit "recruit/internal/recruit/mock"
	"recruit/pkg/domain"
	"recruit/pkg/logger"
	"recruit/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// newTestRouter builds the v1 router around a mocked core with a stub authn
// middleware that injects actor as the authenticated account.
func newTestRouter(t *testing.T, actor domain.AccountID) (*mockrecruit.MockService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mockrecruit.NewMockService(ctrl)

	authn := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), v1handler.AccountIDKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	return svc, v1handler.New(v1handler.Deps{Recruit: svc}).Routes(authn)
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) (kind, msg string) {
	t.Helper()

	var body struct {
		Kind  string `json:"kind"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Kind, body.Error
}

func TestSignUp_Created(t *testing.T) {
	svc, router := newTestRouter(t, domain.AccountID(uuid.New()))

	account := &domain.Account{ID: domain.AccountID(uuid.New()), Email: "user@example.com"}
	svc.EXPECT().SignUp(gomock.Any(), "user@example.com", "secret123").Return(account, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sign-up",
		bytes.NewBufferString(`{"email":"user@example.com","password":"secret123"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, account.Email, got.Email)
}

func TestSignUp_RejectsUnknownFields(t *testing.T) {
	_, router := newTestRouter(t, domain.AccountID(uuid.New()))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sign-up",
		bytes.NewBufferString(`{"email":"user@example.com","password":"secret123","admin":true}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	kind, _ := decodeErrorBody(t, rec)
	require.Equal(t, serrors.ErrValidation.Error(), kind)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		kind       serrors.Kind
		wantStatus int
	}{
		{serrors.ErrValidation, http.StatusBadRequest},
		{serrors.ErrConflict, http.StatusBadRequest},
		{serrors.ErrUnauthenticated, http.StatusUnauthorized},
		{serrors.ErrSelfApplication, http.StatusPaymentRequired},
		{serrors.ErrForbidden, http.StatusForbidden},
		{serrors.ErrNotFound, http.StatusNotFound},
		{serrors.ErrChainMismatch, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			svc, router := newTestRouter(t, domain.AccountID(uuid.New()))

			companyID := uuid.New()
			svc.EXPECT().Company(gomock.Any(), domain.CompanyID(companyID)).
				Return(nil, serrors.KindOnly(tt.kind))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/company/"+companyID.String(), nil)
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			kind, _ := decodeErrorBody(t, rec)
			require.Equal(t, tt.kind.Error(), kind, "body kind must name the exact failure")
		})
	}
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	svc, router := newTestRouter(t, domain.AccountID(uuid.New()))

	companyID := uuid.New()
	svc.EXPECT().Company(gomock.Any(), domain.CompanyID(companyID)).
		Return(nil, errors.New("pq: connection reset"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/company/"+companyID.String(), nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	kind, msg := decodeErrorBody(t, rec)
	require.Equal(t, serrors.ErrInternal.Error(), kind)
	require.Equal(t, "internal error", msg, "internal detail must not leak")
}

func TestGetCompany_MalformedID(t *testing.T) {
	_, router := newTestRouter(t, domain.AccountID(uuid.New()))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/company/not-a-uuid", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	kind, _ := decodeErrorBody(t, rec)
	require.Equal(t, serrors.ErrValidation.Error(), kind)
}

func TestSetApplicationStatus_PassesRawStatus(t *testing.T) {
	actor := domain.AccountID(uuid.New())
	svc, router := newTestRouter(t, actor)

	companyID := domain.CompanyID(uuid.New())
	postingID := domain.PostingID(uuid.New())
	applicationID := domain.ApplicationID(uuid.New())

	app := &domain.JobApplication{ID: applicationID, Status: domain.ApplicationStatusApproved}
	svc.EXPECT().SetApplicationStatus(gomock.Any(), actor, companyID, postingID, applicationID, "APPROVED").
		Return(app, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/company/"+companyID.String()+
			"/job-post/"+postingID.String()+
			"/application/"+applicationID.String()+
			"/status/APPROVED", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.JobApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, domain.ApplicationStatusApproved, got.Status)
}

func TestApply_Created(t *testing.T) {
	actor := domain.AccountID(uuid.New())
	svc, router := newTestRouter(t, actor)

	companyID := domain.CompanyID(uuid.New())
	postingID := domain.PostingID(uuid.New())

	svc.EXPECT().Apply(gomock.Any(), actor, companyID, postingID, gomock.Any()).DoAndReturn(
		func(_ context.Context, applicant domain.AccountID, _ domain.CompanyID, _ domain.PostingID,
			profile domain.ApplicantProfile) (*domain.JobApplication, error) {
			require.Equal(t, "Jane Doe", profile.Name)

			return &domain.JobApplication{
				ID:          domain.ApplicationID(uuid.New()),
				ApplicantID: applicant,
				Profile:     profile,
				Status:      domain.ApplicationStatusPending,
			}, nil
		},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/company/"+companyID.String()+"/job-post/"+postingID.String()+"/applications",
		bytes.NewBufferString(`{"name":"Jane Doe","email":"jane@example.com"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.JobApplication
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, domain.ApplicationStatusPending, got.Status)
}
