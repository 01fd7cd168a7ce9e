package service

import (
	"fmt"

	"github.com/carlosbrath/lives-stolen-sub000/models"
)

const maxFilenameLength = 255

// allowedMimeTypes is the image allow-list for storefront uploads.
var allowedMimeTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
	"image/heic": {},
}

// fileValidator checks an upload batch against the configured limits.
// Every rule is evaluated so a client gets the full list of problems in one
// round trip.
type fileValidator struct {
	maxFiles    int
	maxFileSize int64
}

// validateBatch returns nil when the batch is acceptable, otherwise a
// *ValidationError holding one reason per violated rule.
func (v fileValidator) validateBatch(files []models.InputFile) error {
	var code string
	var reasons []string

	addReason := func(ruleCode, reason string) {
		if code == "" {
			code = ruleCode
		}
		reasons = append(reasons, reason)
	}

	if len(files) == 0 {
		addReason(CodeNoFiles, "at least one file is required")
	}
	if len(files) > v.maxFiles {
		addReason(CodeTooManyFiles, fmt.Sprintf("batch of %d files exceeds the maximum of %d", len(files), v.maxFiles))
	}

	for _, file := range files {
		if _, ok := allowedMimeTypes[file.MimeType]; !ok {
			addReason(CodeInvalidFileType, fmt.Sprintf("%q: type %q is not an accepted image type", file.Filename, file.MimeType))
		}
		if file.Size > v.maxFileSize {
			addReason(CodeFileTooLarge, fmt.Sprintf("%q: size %d exceeds the limit of %d bytes", file.Filename, file.Size, v.maxFileSize))
		}
		if file.Filename == "" {
			addReason(CodeInvalidFileName, "a file is missing its name")
		} else if len(file.Filename) > maxFilenameLength {
			addReason(CodeInvalidFileName, fmt.Sprintf("%q: name longer than %d characters", file.Filename[:maxFilenameLength], maxFilenameLength))
		}
	}

	if len(reasons) == 0 {
		return nil
	}
	return &ValidationError{Code: code, Reasons: reasons}
}
