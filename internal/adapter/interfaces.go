// Package adapter implements outbound integrations with external services.
//
// Its single implementation today is the Shopify Admin GraphQL API client
// used by the upload pipeline: creating staged upload targets, transferring
// raw bytes to them, registering permanent file records, and polling for
// asynchronously processed asset URLs.
package adapter

import (
	"context"

	"github.com/carlosbrath/lives-stolen-sub000/models"
)

// FileCreateResult is the outcome of registering a staged resource as a
// permanent file. The asset API answers in one of two shapes: a ready URL,
// or only an opaque id because the asset is still processing — in which case
// the caller polls [AssetAPI.FileStatus] with that id.
type FileCreateResult struct {
	// FileID is the opaque asset identifier (a GraphQL global id).
	FileID string

	// URL is the resolved CDN URL. Empty while the asset is processing.
	URL string
}

// AssetAPI is the contract of the external asset service consumed by the
// upload coordinator. Every call authenticates with the tenant credential.
type AssetAPI interface {
	// StagedUploadCreate requests a short-lived upload destination for one
	// file. The returned target is valid for a few minutes only.
	StagedUploadCreate(ctx context.Context, credential models.Credential, file models.InputFile) (models.StagedTarget, error)

	// TransferToTarget POSTs the raw file bytes plus the target's required
	// parameters directly to the staged URL. Any non-2xx status is an error.
	TransferToTarget(ctx context.Context, target models.StagedTarget, file models.InputFile) error

	// FileCreate registers a permanent file record pointing at the staged
	// resource, with alt text derived from the filename.
	FileCreate(ctx context.Context, credential models.Credential, target models.StagedTarget, altText string) (FileCreateResult, error)

	// FileStatus re-queries the asset by id. It returns an empty URL with a
	// nil error while the asset is not ready yet.
	FileStatus(ctx context.Context, credential models.Credential, fileID string) (string, error)
}
