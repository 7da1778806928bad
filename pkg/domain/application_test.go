package domain_test

import (
	"testing"

	"recruit/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestParseApplicationStatus(t *testing.T) {
	for _, raw := range []string{"PENDING", "APPROVED", "REJECTED", "CLOSED"} {
		status, ok := domain.ParseApplicationStatus(raw)
		require.True(t, ok, "%q should parse", raw)
		require.Equal(t, domain.ApplicationStatus(raw), status)
	}

	for _, raw := range []string{"", "pending", "ARCHIVED", "OPEN"} {
		_, ok := domain.ParseApplicationStatus(raw)
		require.False(t, ok, "%q should not parse", raw)
	}
}

func TestApplicationStatusTerminal(t *testing.T) {
	require.False(t, domain.ApplicationStatusPending.Terminal())
	require.True(t, domain.ApplicationStatusApproved.Terminal())
	require.True(t, domain.ApplicationStatusRejected.Terminal())
	require.True(t, domain.ApplicationStatusClosed.Terminal())
}

func TestApplicationStatusCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.ApplicationStatus
		to   domain.ApplicationStatus
		want bool
	}{
		{"pending to approved", domain.ApplicationStatusPending, domain.ApplicationStatusApproved, true},
		{"pending to rejected", domain.ApplicationStatusPending, domain.ApplicationStatusRejected, true},
		{"pending to closed", domain.ApplicationStatusPending, domain.ApplicationStatusClosed, true},
		{"approved to rejected", domain.ApplicationStatusApproved, domain.ApplicationStatusRejected, false},
		{"rejected to approved", domain.ApplicationStatusRejected, domain.ApplicationStatusApproved, false},
		{"closed to pending", domain.ApplicationStatusClosed, domain.ApplicationStatusPending, false},
		{"same pending", domain.ApplicationStatusPending, domain.ApplicationStatusPending, true},
		{"same approved", domain.ApplicationStatusApproved, domain.ApplicationStatusApproved, true},
		{"same closed", domain.ApplicationStatusClosed, domain.ApplicationStatusClosed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestParseJobType(t *testing.T) {
	for _, raw := range []string{"REMOTE", "ONSITE", "HYBRID"} {
		jt, ok := domain.ParseJobType(raw)
		require.True(t, ok, "%q should parse", raw)
		require.Equal(t, domain.JobType(raw), jt)
	}

	for _, raw := range []string{"", "remote", "FREELANCE"} {
		_, ok := domain.ParseJobType(raw)
		require.False(t, ok, "%q should not parse", raw)
	}
}
