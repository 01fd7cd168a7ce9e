package models

// UploadResponse is the success envelope of the storefront upload endpoint.
type UploadResponse struct {
	// Success is always true in this envelope.
	Success bool `json:"success"`

	// URLs are the resolved asset URLs of every file that uploaded.
	URLs []string `json:"urls"`

	// UploadedCount is len(URLs), provided so the storefront can report
	// partial success without counting.
	UploadedCount int `json:"uploadedCount"`
}

// ErrorResponse is the failure envelope shared by every API endpoint.
type ErrorResponse struct {
	// Error is the human-readable message. For batch failures it
	// concatenates one reason per file.
	Error string `json:"error"`

	// Code is the machine-readable cause (e.g. "TOO_MANY_FILES",
	// "RATE_LIMITED", "NOT_INSTALLED").
	Code string `json:"code"`

	// Success is always false in this envelope.
	Success bool `json:"success"`
}

// SubmissionListResponse wraps the admin listing of memorial stories.
type SubmissionListResponse struct {
	// Submissions is the page of stories matching the requested filter.
	Submissions []Submission `json:"submissions"`

	// Length is the number of entries in Submissions.
	Length int `json:"length"`
}
