package recruit

import (
	"recruit/internal/config"
	"recruit/pkg/blob"
	"recruit/pkg/domain"
	"recruit/pkg/storage"
)

// Options configure validation limits and background cleanup behavior.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxLogoSize is the upper bound, in bytes, for an uploaded company logo.
	MaxLogoSize int
	// CleanupMaxAttempts is the maximum number of attempts the background
	// worker should make when deleting orphaned logo blobs.
	CleanupMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxLogoSize:        domain.MaxLogoSize,
		CleanupMaxAttempts: cfg.Cleanup.MaxAttempts,
	}
}

// service is the concrete implementation of the Service interface. It
// coordinates authorization, persistence and blob handling.
type service struct {
	// options holds runtime configuration that affects validation and cleanup.
	options Options
	// storage is the persistence layer used for all entities and job enqueueing.
	storage storage.Storage
	// blobs stores company logos outside the relational store.
	blobs blob.Store
}

// New returns a Service backed by the given storage and blob store.
func New(st storage.Storage, blobs blob.Store, options Options) Service {
	if options.MaxLogoSize <= 0 {
		options.MaxLogoSize = domain.MaxLogoSize
	}

	return service{
		options: options,
		storage: st,
		blobs:   blobs,
	}
}
