package service

import (
	"context"

	"github.com/carlosbrath/lives-stolen-sub000/models"
)

// CredentialService resolves a shop domain to the Admin API credential held
// in the session store.
type CredentialService interface {
	// Resolve normalizes the shop domain and tries each lookup strategy in
	// order. Returns ErrShopNotInstalled when the store holds no records for
	// the shop at all, and ErrNoValidToken when records exist but none
	// carries a usable access token.
	Resolve(ctx context.Context, shop string) (models.Credential, error)
}

// UploadService validates a batch of files and pushes each one through the
// staged-upload flow against the shop's Admin API.
type UploadService interface {
	// UploadBatch processes every file regardless of individual failures.
	// It returns a result holding the URLs of the files that made it,
	// a *ValidationError when the batch is rejected up front, and
	// ErrAllUploadsFailed when no file succeeded.
	UploadBatch(ctx context.Context, shop string, files []models.InputFile) (models.UploadResult, error)
}

// SubmissionService manages memorial stories and their moderation lifecycle.
type SubmissionService interface {
	Create(ctx context.Context, submission models.Submission) (models.Submission, error)
	List(ctx context.Context, shop string, status models.SubmissionStatus) ([]models.Submission, error)
	Approve(ctx context.Context, id string) (models.Submission, error)
	Publish(ctx context.Context, id string) (models.Submission, error)
}
