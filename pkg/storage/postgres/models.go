package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"recruit/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgAccount struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	FullName     sql.NullString `db:"full_name"`
	Phone        sql.NullString `db:"phone"`
	Location     sql.NullString `db:"location"`
	Linkedin     sql.NullString `db:"linkedin"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		ID:           domain.AccountID(p.ID),
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		FullName:     p.FullName.String,
		Phone:        p.Phone.String,
		Location:     p.Location.String,
		Linkedin:     p.Linkedin.String,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgAccount) FromDomain(account domain.Account) {
	*p = PgAccount{
		ID:           uuid.UUID(account.ID),
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		FullName:     nullString(account.FullName),
		Phone:        nullString(account.Phone),
		Location:     nullString(account.Location),
		Linkedin:     nullString(account.Linkedin),
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    nullTime(account.UpdatedAt),
	}
}

type PgCompany struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name         string         `db:"name"`
	Website      sql.NullString `db:"website"`
	Street       sql.NullString `db:"street"`
	City         sql.NullString `db:"city"`
	Pincode      sql.NullString `db:"pincode"`
	SupportEmail sql.NullString `db:"support_email"`
	LogoKey      sql.NullString `db:"logo_key"`
	CreatedBy    uuid.UUID      `db:"created_by"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCompany) ToDomain() *domain.Company {
	return &domain.Company{
		ID:      domain.CompanyID(p.ID),
		Name:    p.Name,
		Website: p.Website.String,
		Address: domain.Address{
			Street:  p.Street.String,
			City:    p.City.String,
			Pincode: p.Pincode.String,
		},
		SupportEmail: p.SupportEmail.String,
		LogoKey:      p.LogoKey.String,
		CreatedBy:    domain.AccountID(p.CreatedBy),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgCompany) FromDomain(company domain.Company) {
	*p = PgCompany{
		ID:           uuid.UUID(company.ID),
		Name:         company.Name,
		Website:      nullString(company.Website),
		Street:       nullString(company.Address.Street),
		City:         nullString(company.Address.City),
		Pincode:      nullString(company.Address.Pincode),
		SupportEmail: nullString(company.SupportEmail),
		LogoKey:      nullString(company.LogoKey),
		CreatedBy:    uuid.UUID(company.CreatedBy),
		CreatedAt:    company.CreatedAt,
		UpdatedAt:    nullTime(company.UpdatedAt),
	}
}

type PgJobPost struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Title       string         `db:"title"`
	JobType     string         `db:"job_type"`
	State       sql.NullString `db:"state"`
	Country     sql.NullString `db:"country"`
	Description string         `db:"description"`
	SalaryRange string         `db:"salary_range"`
	CompanyID   uuid.UUID      `db:"company_id"`
	CreatedBy   uuid.UUID      `db:"created_by"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgJobPost) ToDomain() *domain.JobPost {
	return &domain.JobPost{
		ID:    domain.PostingID(p.ID),
		Title: p.Title,
		Location: domain.JobLocation{
			State:   p.State.String,
			Country: p.Country.String,
		},
		Type:        domain.JobType(p.JobType),
		Description: p.Description,
		SalaryRange: p.SalaryRange,
		CompanyID:   domain.CompanyID(p.CompanyID),
		CreatedBy:   domain.AccountID(p.CreatedBy),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgJobPost) FromDomain(post domain.JobPost) {
	*p = PgJobPost{
		ID:          uuid.UUID(post.ID),
		Title:       post.Title,
		JobType:     string(post.Type),
		State:       nullString(post.Location.State),
		Country:     nullString(post.Location.Country),
		Description: post.Description,
		SalaryRange: post.SalaryRange,
		CompanyID:   uuid.UUID(post.CompanyID),
		CreatedBy:   uuid.UUID(post.CreatedBy),
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   nullTime(post.UpdatedAt),
	}
}

type PgApplication struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	ApplicantID uuid.UUID       `db:"applicant_id"`
	JobPostID   uuid.UUID       `db:"job_post_id"`
	CompanyID   uuid.UUID       `db:"company_id"`
	Profile     json.RawMessage `db:"profile"`
	Status      string          `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() (*domain.JobApplication, error) {
	var profile domain.ApplicantProfile
	if err := json.Unmarshal(p.Profile, &profile); err != nil {
		return nil, fmt.Errorf("could not unmarshal applicant profile: %w", err)
	}

	return &domain.JobApplication{
		ID:          domain.ApplicationID(p.ID),
		ApplicantID: domain.AccountID(p.ApplicantID),
		JobPostID:   domain.PostingID(p.JobPostID),
		CompanyID:   domain.CompanyID(p.CompanyID),
		Profile:     profile,
		Status:      domain.ApplicationStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}, nil
}

func (p *PgApplication) FromDomain(app domain.JobApplication) error {
	profile, err := json.Marshal(app.Profile)
	if err != nil {
		return fmt.Errorf("could not marshal applicant profile: %w", err)
	}

	*p = PgApplication{
		ID:          uuid.UUID(app.ID),
		ApplicantID: uuid.UUID(app.ApplicantID),
		JobPostID:   uuid.UUID(app.JobPostID),
		CompanyID:   uuid.UUID(app.CompanyID),
		Profile:     profile,
		Status:      string(app.Status),
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   nullTime(app.UpdatedAt),
	}

	return nil
}

func pgCompaniesToDomain(rows []PgCompany) []domain.Company {
	out := make([]domain.Company, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgJobPostsToDomain(rows []PgJobPost) []domain.JobPost {
	out := make([]domain.JobPost, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgApplicationsToDomain(rows []PgApplication) ([]domain.JobApplication, error) {
	out := make([]domain.JobApplication, 0, len(rows))
	for i := range rows {
		d, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
