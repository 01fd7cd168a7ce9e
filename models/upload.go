package models

// InputFile is a single uploaded file as received from the storefront form.
// It is immutable once validation starts.
type InputFile struct {
	// Filename is the client-supplied name, used for alt text and tracing.
	Filename string `json:"filename"`

	// MimeType is the declared content type (e.g. "image/jpeg").
	MimeType string `json:"mime_type"`

	// Size is the declared byte size of Content.
	Size int64 `json:"size"`

	// Content holds the raw file bytes.
	Content []byte `json:"-"`
}

// StagedTarget is the short-lived upload destination handed out by the asset
// API. It lives for a few minutes and is never persisted.
type StagedTarget struct {
	// URL is the destination the raw bytes are POSTed to.
	URL string `json:"url"`

	// ResourceURL is the handle used later to register the uploaded object.
	ResourceURL string `json:"resourceUrl"`

	// Parameters are the form fields the destination requires alongside the
	// file part.
	Parameters []StagedParameter `json:"parameters"`
}

// StagedParameter is one required form field of a staged target.
type StagedParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UploadOutcome is the terminal result for one input file: either a resolved
// CDN URL or a human-readable failure reason. Exactly one outcome exists per
// validated input file.
type UploadOutcome struct {
	// Filename ties the outcome back to its input file for logging.
	Filename string `json:"filename"`

	// URL is the resolved asset URL. Empty when the file failed.
	URL string `json:"url,omitempty"`

	// Err is the terminal error for this file, nil on success.
	Err error `json:"-"`
}

// Succeeded reports whether this file produced a usable URL.
func (o UploadOutcome) Succeeded() bool {
	return o.Err == nil && o.URL != ""
}

// UploadResult is the aggregate of a batch: the URLs of every file that made
// it through all phases. The batch as a whole fails only when URLs is empty.
type UploadResult struct {
	// URLs lists the resolved asset URLs of the successful files.
	URLs []string `json:"urls"`

	// Outcomes keeps every per-file result, including failures, for logging.
	Outcomes []UploadOutcome `json:"-"`
}
