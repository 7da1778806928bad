package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ApplicationID uniquely identifies a job application.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ApplicationID uuid.UUID

// String returns the canonical string form of the application ID.
func (id ApplicationID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is the zero UUID.
func (id ApplicationID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the ID in canonical UUID form for JSON and text output.
func (id ApplicationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses the canonical UUID form.
func (id *ApplicationID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return fmt.Errorf("could not parse ID: %w", err)
	}
	*id = ApplicationID(parsed)

	return nil
}

// ApplicationStatus represents the lifecycle state of a job application.
type ApplicationStatus string

const (
	// ApplicationStatusPending is the implicit initial status of every application.
	ApplicationStatusPending ApplicationStatus = "PENDING"
	// ApplicationStatusApproved is a terminal status set by the company owner.
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	// ApplicationStatusRejected is a terminal status set by the company owner.
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
	// ApplicationStatusClosed is a terminal status set by the company owner.
	ApplicationStatusClosed ApplicationStatus = "CLOSED"
)

// ParseApplicationStatus validates a raw status string. It returns the typed
// status and whether the input names one of the four known statuses.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	switch s := ApplicationStatus(raw); s {
	case ApplicationStatusPending, ApplicationStatusApproved,
		ApplicationStatusRejected, ApplicationStatusClosed:
		return s, true
	default:
		return "", false
	}
}

// Terminal reports whether the status is one from which no further transition
// is defined. APPROVED, REJECTED and CLOSED are terminal; PENDING is not.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected || s == ApplicationStatusClosed
}

// CanTransition reports whether an application may move from status s to the
// given next status. Re-setting the current status is always allowed and
// treated as an idempotent no-op by the service layer; terminal statuses are
// otherwise immutable.
func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	if s == next {
		return true
	}

	return !s.Terminal()
}

// Education is one entry of an applicant's education history.
type Education struct {
	Degree         string  `json:"degree"`
	Institution    string  `json:"institution"`
	GraduationDate int     `json:"graduationDate"`
	CGPA           float64 `json:"cgpa"`
}

// WorkExperience is one entry of an applicant's employment history.
type WorkExperience struct {
	Company          string    `json:"company"`
	Position         string    `json:"position"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	YearsOfExp       float64   `json:"yearsOfExp"`
	Responsibilities string    `json:"responsibilities"`
}

// Reference is a professional reference supplied by the applicant.
type Reference struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Contact      string `json:"contact"`
}

// ApplicantLocation is the applicant's current location.
type ApplicantLocation struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// ApplicantProfile is the applicant-supplied snapshot stored on the
// application at creation time. It is never backfilled from the account, so a
// later profile edit cannot change what a company reviewed.
type ApplicantProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Education      []Education      `json:"education,omitempty"`
	WorkExperience []WorkExperience `json:"workExperience,omitempty"`

	Resume      string   `json:"resume,omitempty"`
	CoverLetter string   `json:"coverLetter,omitempty"`
	Linkedin    string   `json:"linkedin,omitempty"`
	Github      string   `json:"github,omitempty"`
	Portfolio   string   `json:"portfolio,omitempty"`
	Skills      []string `json:"skills,omitempty"`

	Location   ApplicantLocation `json:"location"`
	Relocate   bool              `json:"relocate"`
	Slot       time.Time         `json:"slot"`
	References []Reference       `json:"references,omitempty"`
	// Answers holds responses to the posting's custom questions.
	Answers map[string]string `json:"answers,omitempty"`
}

// JobApplication is an applicant's submission against one posting/company
// pair. CompanyID is denormalized from the posting at creation time so
// ownership checks do not require an extra join; it is re-validated, never
// trusted blindly, on every access.
type JobApplication struct {
	ID ApplicationID `json:"id"`

	// ApplicantID is the account that submitted the application. It is never
	// the owner of the referenced company.
	ApplicantID AccountID `json:"applicantId"`
	// JobPostID is the single source of truth for the ownership chain.
	JobPostID PostingID `json:"jobPostId"`
	// CompanyID is the creation-time snapshot of the posting's company.
	CompanyID CompanyID `json:"companyId"`

	Profile ApplicantProfile  `json:"profile"`
	Status  ApplicationStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
