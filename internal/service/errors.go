package service

import (
	"errors"
	"strings"
)

var (
	ErrShopNotInstalled = errors.New("shop has no session records")
	ErrNoValidToken     = errors.New("no session record carries a usable access token")

	ErrAllUploadsFailed = errors.New("every file in the batch failed to upload")
	ErrAssetNotReady    = errors.New("asset still processing after the final poll attempt")

	ErrInvalidSubmission       = errors.New("invalid submission data provided")
	ErrInvalidStatusTransition = errors.New("submission status transition not allowed")
)

// Validation failure codes surfaced to API clients.
const (
	CodeNoFiles         = "NO_FILES"
	CodeTooManyFiles    = "TOO_MANY_FILES"
	CodeInvalidFileType = "INVALID_FILE_TYPE"
	CodeFileTooLarge    = "FILE_TOO_LARGE"
	CodeInvalidFileName = "INVALID_FILE_NAME"
)

// ValidationError rejects an upload batch before any network I/O. Every
// violated rule contributes a reason; Code is taken from the first violation
// found.
type ValidationError struct {
	Code    string
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "invalid upload batch: " + strings.Join(e.Reasons, "; ")
}
