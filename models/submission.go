package models

import "time"

// SubmissionStatus is the moderation state of a memorial story.
type SubmissionStatus string

const (
	// SubmissionNew is the state of a freshly submitted story awaiting review.
	SubmissionNew SubmissionStatus = "new"

	// SubmissionApproved marks a story an admin has accepted for publication.
	SubmissionApproved SubmissionStatus = "approved"

	// SubmissionPublished marks a story that has been mirrored into the
	// merchant's store content.
	SubmissionPublished SubmissionStatus = "published"
)

// Submission is one memorial story submitted through the storefront form.
type Submission struct {
	// ID is the server-assigned identifier (UUID v7).
	ID string `json:"id"`

	// Shop is the normalized tenant domain the story was submitted to.
	Shop string `json:"shop"`

	// AuthorName is the submitter's display name.
	AuthorName string `json:"author_name"`

	// AuthorEmail is the submitter's contact address, normalized lowercase.
	// Also the identity key for rate limiting.
	AuthorEmail string `json:"author_email"`

	// Title is the story headline.
	Title string `json:"title"`

	// Body is the story text.
	Body string `json:"body"`

	// PhotoURLs are the CDN URLs of the photos attached to the story,
	// produced by the upload pipeline.
	PhotoURLs []string `json:"photo_urls"`

	// Status is the current moderation state.
	Status SubmissionStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
