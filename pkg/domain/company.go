package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CompanyID uniquely identifies a company.
// It wraps uuid.UUID to provide type safety at the domain layer.
type CompanyID uuid.UUID

// String returns the canonical string form of the company ID.
func (id CompanyID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the ID is the zero UUID.
func (id CompanyID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the ID in canonical UUID form for JSON and text output.
func (id CompanyID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText parses the canonical UUID form.
func (id *CompanyID) UnmarshalText(data []byte) error {
	parsed, err := uuid.Parse(string(data))
	if err != nil {
		return fmt.Errorf("could not parse ID: %w", err)
	}
	*id = CompanyID(parsed)

	return nil
}

// MaxLogoSize is the upper bound, in bytes, for a company logo accepted by the
// blob store contract. Larger uploads are rejected before reaching the core.
const MaxLogoSize = 1 << 20 // 1 MiB

// Address is the postal address of a company.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// Company is an organization entity owned by exactly one account, the unit of
// hiring authority. Company names are unique across the system; the
// authoritative guard is the store-level unique constraint.
type Company struct {
	ID CompanyID `json:"id"`

	// Name must be unique (case-insensitive) across all companies.
	Name    string  `json:"name"`
	Website string  `json:"website,omitempty"`
	Address Address `json:"address"`
	// SupportEmail is the public contact address of the company.
	SupportEmail string `json:"supportEmail,omitempty"`
	// LogoKey is the blob store handle of the company logo. Empty when no logo
	// has been uploaded.
	LogoKey string `json:"-"`

	// CreatedBy is the owning account. Every mutation of the company or of
	// entities under it requires this ownership relation.
	CreatedBy AccountID `json:"createdBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
