package adapter

import "errors"

var (
	// ErrAssetAPIRequest is returned when an Admin API call fails at the
	// transport level or answers with a non-success HTTP status.
	ErrAssetAPIRequest = errors.New("asset api request failed")

	// ErrAssetAPIUserError is returned when the Admin API accepts the
	// request but reports validation errors in the mutation payload.
	ErrAssetAPIUserError = errors.New("asset api rejected the request")

	// ErrTransferFailed is returned when the direct multipart POST to a
	// staged target answers with a non-success HTTP status.
	ErrTransferFailed = errors.New("staged target transfer failed")

	// ErrEmptyStagedTarget is returned when a stagedUploadsCreate mutation
	// succeeds but carries no staged target.
	ErrEmptyStagedTarget = errors.New("asset api returned no staged target")

	// ErrEmptyFileRecord is returned when a fileCreate mutation succeeds but
	// carries no file record.
	ErrEmptyFileRecord = errors.New("asset api returned no file record")
)
