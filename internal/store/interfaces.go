package store

import (
	"context"

	"github.com/carlosbrath/lives-stolen-sub000/models"
)

// SessionRepository reads the credential store: the sessions table written by
// the embedded app framework during OAuth. This application never writes to
// it; the resolver only needs deterministic lookups.
type SessionRepository interface {
	// GetByID fetches the record stored under the exact session key.
	// Returns ErrSessionNotFound when no such key exists.
	GetByID(ctx context.Context, sessionID string) (models.SessionRecord, error)

	// FindMatching returns every record whose session key matches the shop
	// by exact value, by prefix, or by the derived offline prefix, ordered
	// newest-first. An empty slice with a nil error means the shop has no
	// records at all.
	FindMatching(ctx context.Context, shop string) ([]models.SessionRecord, error)
}

// SubmissionRepository persists memorial stories and their moderation state.
type SubmissionRepository interface {
	Create(ctx context.Context, submission models.Submission) (models.Submission, error)
	GetByID(ctx context.Context, id string) (models.Submission, error)

	// List returns stories for a shop, optionally filtered by status,
	// newest-first.
	List(ctx context.Context, shop string, status models.SubmissionStatus) ([]models.Submission, error)

	// UpdateStatus transitions a story to the given moderation state.
	// Returns ErrSubmissionNotFound when the id does not exist.
	UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) (models.Submission, error)
}
