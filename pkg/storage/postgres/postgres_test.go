package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	"recruit/pkg/storage"
	"recruit/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// run migrations
	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	err = runMigrations(pgSQL.DB.(*sql.DB), migrationsDir)
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func createAccount(t *testing.T, pg *postgres.PgSQL, email string) *domain.Account {
	t.Helper()

	account, err := pg.StoreAccount(context.Background(), domain.Account{
		Email:        email,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	require.False(t, account.ID.IsZero())

	return account
}

func createCompany(t *testing.T, pg *postgres.PgSQL, owner domain.AccountID, name string) *domain.Company {
	t.Helper()

	company, err := pg.StoreCompany(context.Background(), domain.Company{
		Name:      name,
		CreatedBy: owner,
	})
	require.NoError(t, err)

	return company
}

func createJobPost(t *testing.T, pg *postgres.PgSQL, company *domain.Company) *domain.JobPost {
	t.Helper()

	post, err := pg.StoreJobPost(context.Background(), domain.JobPost{
		Title:     "Backend Engineer",
		Type:      domain.JobTypeRemote,
		CompanyID: company.ID,
		CreatedBy: company.CreatedBy,
	})
	require.NoError(t, err)

	return post
}

func createApplication(t *testing.T,
	pg *postgres.PgSQL,
	applicant domain.AccountID,
	post *domain.JobPost) *domain.JobApplication {
	t.Helper()

	app, err := pg.StoreApplication(context.Background(), domain.JobApplication{
		ApplicantID: applicant,
		JobPostID:   post.ID,
		CompanyID:   post.CompanyID,
		Profile:     domain.ApplicantProfile{Name: "Jane Doe", Email: "jane@example.com"},
		Status:      domain.ApplicationStatusPending,
	})
	require.NoError(t, err)

	return app
}

func TestStoreAccount_DuplicateEmail(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	createAccount(t, pg, "user@example.com")

	// the unique index matches case-insensitively
	_, err := pg.StoreAccount(context.Background(), domain.Account{
		Email:        "User@Example.com",
		PasswordHash: "x",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestAccountByEmail_CaseInsensitive(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	created := createAccount(t, pg, "user@example.com")

	got, err := pg.AccountByEmail(context.Background(), "USER@example.COM")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.ID, got.ID)

	missing, err := pg.AccountByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUpdateAccount_PartialFields(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	account := createAccount(t, pg, "user@example.com")

	name := "Jane Doe"
	phone := "+1-555-0100"
	updated, err := pg.UpdateAccount(context.Background(), account.ID,
		storage.AccountUpdates{FullName: &name, Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, name, updated.FullName)
	require.Equal(t, phone, updated.Phone)
	require.Equal(t, account.Email, updated.Email, "untouched fields must survive")
	require.False(t, updated.UpdatedAt.IsZero())
}

func TestStoreCompany_DuplicateName(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createAccount(t, pg, "owner@example.com")
	createCompany(t, pg, owner.ID, "Acme")

	// the unique index matches case-insensitively
	_, err := pg.StoreCompany(context.Background(), domain.Company{
		Name:      "ACME",
		CreatedBy: owner.ID,
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestStoreCompany_MissingOwner(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ghost := createAccount(t, pg, "ghost@example.com")
	deleted, err := pg.DeleteAccount(context.Background(), ghost.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = pg.StoreCompany(context.Background(), domain.Company{
		Name:      "Orphan Inc",
		CreatedBy: ghost.ID,
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestStoreApplication_DuplicatePair(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createAccount(t, pg, "owner@example.com")
	applicant := createAccount(t, pg, "applicant@example.com")
	company := createCompany(t, pg, owner.ID, "Acme")
	post := createJobPost(t, pg, company)

	createApplication(t, pg, applicant.ID, post)

	// the (applicant, posting) constraint is authoritative even when the
	// friendly pre-check is skipped
	_, err := pg.StoreApplication(context.Background(), domain.JobApplication{
		ApplicantID: applicant.ID,
		JobPostID:   post.ID,
		CompanyID:   post.CompanyID,
		Profile:     domain.ApplicantProfile{Name: "Jane Doe", Email: "jane@example.com"},
		Status:      domain.ApplicationStatusPending,
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConflict)

	exists, err := pg.ApplicationExists(context.Background(), applicant.ID, post.ID)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestApplicationProfile_RoundTrip(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createAccount(t, pg, "owner@example.com")
	applicant := createAccount(t, pg, "applicant@example.com")
	company := createCompany(t, pg, owner.ID, "Acme")
	post := createJobPost(t, pg, company)

	profile := domain.ApplicantProfile{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Phone:  "+1-555-0100",
		Skills: []string{"go", "sql"},
		Education: []domain.Education{{
			Degree:         "BSc",
			Institution:    "MIT",
			GraduationDate: 2020,
			CGPA:           3.9,
		}},
		Location: domain.ApplicantLocation{City: "Boston", State: "MA", Country: "US"},
		Relocate: true,
		Answers:  map[string]string{"why": "because"},
	}

	stored, err := pg.StoreApplication(context.Background(), domain.JobApplication{
		ApplicantID: applicant.ID,
		JobPostID:   post.ID,
		CompanyID:   post.CompanyID,
		Profile:     profile,
		Status:      domain.ApplicationStatusPending,
	})
	require.NoError(t, err)

	got, err := pg.ApplicationByID(context.Background(), stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, profile.Name, got.Profile.Name)
	require.Equal(t, profile.Skills, got.Profile.Skills)
	require.Equal(t, profile.Education, got.Profile.Education)
	require.Equal(t, profile.Answers, got.Profile.Answers)
	require.Equal(t, domain.ApplicationStatusPending, got.Status)
}

func TestUpdateApplicationStatus(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createAccount(t, pg, "owner@example.com")
	applicant := createAccount(t, pg, "applicant@example.com")
	company := createCompany(t, pg, owner.ID, "Acme")
	post := createJobPost(t, pg, company)
	app := createApplication(t, pg, applicant.ID, post)

	updated, err := pg.UpdateApplicationStatus(context.Background(), app.ID, domain.ApplicationStatusApproved)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.ApplicationStatusApproved, updated.Status)
	require.False(t, updated.UpdatedAt.IsZero())

	// unknown application yields nil, not an error
	missing, err := pg.UpdateApplicationStatus(context.Background(),
		domain.ApplicationID(uuid.New()), domain.ApplicationStatusRejected)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestDeleteAccount_CascadesToEverything(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	owner := createAccount(t, pg, "owner@example.com")
	applicant := createAccount(t, pg, "applicant@example.com")
	company := createCompany(t, pg, owner.ID, "Acme")
	post := createJobPost(t, pg, company)
	app := createApplication(t, pg, applicant.ID, post)

	deleted, err := pg.DeleteAccount(ctx, owner.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	gotCompany, err := pg.CompanyByID(ctx, company.ID)
	require.NoError(t, err)
	require.Nil(t, gotCompany, "company must be removed with its owner")

	gotPost, err := pg.JobPostByID(ctx, post.ID)
	require.NoError(t, err)
	require.Nil(t, gotPost, "posting must be removed with its company")

	gotApp, err := pg.ApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	require.Nil(t, gotApp, "application must be removed with its posting")

	// the applicant's account itself is untouched
	gotApplicant, err := pg.AccountByID(ctx, applicant.ID)
	require.NoError(t, err)
	require.NotNil(t, gotApplicant)
}

func TestDeleteCompany_CascadesAndReturnsRow(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	owner := createAccount(t, pg, "owner@example.com")
	applicant := createAccount(t, pg, "applicant@example.com")
	company := createCompany(t, pg, owner.ID, "Acme")
	post := createJobPost(t, pg, company)
	app := createApplication(t, pg, applicant.ID, post)

	// record a logo key so the returned row carries it for blob cleanup
	logoKey := "logo-" + company.ID.String()
	_, err := pg.UpdateCompany(ctx, company.ID, storage.CompanyUpdates{LogoKey: &logoKey})
	require.NoError(t, err)

	deleted, err := pg.DeleteCompany(ctx, company.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, logoKey, deleted.LogoKey)

	gotPost, err := pg.JobPostByID(ctx, post.ID)
	require.NoError(t, err)
	require.Nil(t, gotPost)

	gotApp, err := pg.ApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	require.Nil(t, gotApp)

	// deleting again reports not found via nil
	again, err := pg.DeleteCompany(ctx, company.ID)
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestDeleteJobPost_CascadesToApplications(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	owner := createAccount(t, pg, "owner@example.com")
	applicant := createAccount(t, pg, "applicant@example.com")
	company := createCompany(t, pg, owner.ID, "Acme")
	post := createJobPost(t, pg, company)
	app := createApplication(t, pg, applicant.ID, post)

	deleted, err := pg.DeleteJobPost(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	gotApp, err := pg.ApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	require.Nil(t, gotApp)

	// the company survives
	gotCompany, err := pg.CompanyByID(ctx, company.ID)
	require.NoError(t, err)
	require.NotNil(t, gotCompany)
}

func TestQueries_ScopedListings(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	owner := createAccount(t, pg, "owner@example.com")
	other := createAccount(t, pg, "other@example.com")
	applicant := createAccount(t, pg, "applicant@example.com")

	acme := createCompany(t, pg, owner.ID, "Acme")
	globex := createCompany(t, pg, other.ID, "Globex")
	acmePost := createJobPost(t, pg, acme)
	globexPost := createJobPost(t, pg, globex)
	createApplication(t, pg, applicant.ID, acmePost)
	createApplication(t, pg, applicant.ID, globexPost)

	owned, err := pg.CompaniesByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, acme.ID, owned[0].ID)

	posts, err := pg.JobPostsByCompany(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, acmePost.ID, posts[0].ID)

	apps, err := pg.ApplicationsByPosting(ctx, acme.ID, acmePost.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	mine, err := pg.ApplicationsByApplicant(ctx, applicant.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	all, err := pg.Companies(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	allPosts, err := pg.JobPosts(ctx)
	require.NoError(t, err)
	require.Len(t, allPosts, 2)
}

func TestCompanyByName_CaseInsensitive(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createAccount(t, pg, "owner@example.com")
	company := createCompany(t, pg, owner.ID, "Acme")

	got, err := pg.CompanyByName(context.Background(), "aCmE")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, company.ID, got.ID)

	missing, err := pg.CompanyByName(context.Background(), "Globex")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createAccount(t, pg, "owner@example.com")

	sentinel := errors.New("abort")
	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := tx.StoreCompany(ctx, domain.Company{Name: "Acme", CreatedBy: owner.ID})
		require.NoError(t, err)

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	got, err := pg.CompanyByName(ctx, "Acme")
	require.NoError(t, err)
	require.Nil(t, got, "rolled back insert must not be visible")
}
