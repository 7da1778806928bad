package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PostingID uniquely identifies a job posting.
// It wraps uuid.UUID to provide type safety at the domain layer.
type PostingID uuid.UUID

// String returns the canonical string form of the posting ID.
func (id PostingID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is the zero UUID.
func (id PostingID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the ID in canonical UUID form for JSON and text output.
func (id PostingID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses the canonical UUID form.
func (id *PostingID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return fmt.Errorf("could not parse ID: %w", err)
	}
	*id = PostingID(parsed)

	return nil
}

// JobType describes where the work happens.
type JobType string

const (
	JobTypeRemote JobType = "REMOTE"
	JobTypeOnsite JobType = "ONSITE"
	JobTypeHybrid JobType = "HYBRID"
)

// ParseJobType validates a raw job type string. It returns the typed value and
// whether the input names a known job type.
func ParseJobType(raw string) (JobType, bool) {
	switch t := JobType(raw); t {
	case JobTypeRemote, JobTypeOnsite, JobTypeHybrid:
		return t, true
	default:
		return "", false
	}
}

// JobLocation is the geographic location of a posting.
type JobLocation struct {
	State   string `json:"state"`
	Country string `json:"country"`
}

// JobPost is a hiring listing owned by a company. CompanyID never changes
// after creation and is always dereferenced jointly with its parent company
// for authorization.
type JobPost struct {
	ID PostingID `json:"id"`

	Title       string      `json:"title"`
	Location    JobLocation `json:"location"`
	Type        JobType     `json:"type"`
	Description string      `json:"description"`
	SalaryRange string      `json:"salaryRange"`

	// CompanyID is the owning company. Immutable after creation.
	CompanyID CompanyID `json:"companyId"`
	// CreatedBy is the account that created the posting. It matches the
	// company's owner at creation time.
	CreatedBy AccountID `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
