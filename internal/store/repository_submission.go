package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/models"
	"github.com/jackc/pgerrcode"
)

// submissionRepository is the PostgreSQL-backed implementation of
// [SubmissionRepository]. Photo URL lists are stored as JSONB.
type submissionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSubmissionRepository constructs a [SubmissionRepository] backed by the
// provided database connection and logger.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new memorial story and returns the fully populated
// [models.Submission] with server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → wrapped [ErrSubmissionNotSaved].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *submissionRepository) Create(ctx context.Context, submission models.Submission) (models.Submission, error) {
	log := logger.FromContext(ctx)

	photoURLs, err := json.Marshal(submission.PhotoURLs)
	if err != nil {
		return models.Submission{}, fmt.Errorf("error encoding photo urls: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createSubmission,
		submission.ID, submission.Shop, submission.AuthorName, submission.AuthorEmail,
		submission.Title, submission.Body, photoURLs, submission.Status)

	saved, err := scanSubmission(row)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.Create").Str("id", submission.ID).Msg("error saving submission")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Submission{}, fmt.Errorf("%w: duplicate id", ErrSubmissionNotSaved)
		default:
			return models.Submission{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// GetByID retrieves one memorial story.
//
// Returns [ErrSubmissionNotFound] when the id does not exist.
func (r *submissionRepository) GetByID(ctx context.Context, id string) (models.Submission, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getSubmissionByID, id)

	found, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Submission{}, ErrSubmissionNotFound
		}
		log.Err(err).Str("func", "*submissionRepository.GetByID").Str("id", id).Msg("error scanning submission row")
		return models.Submission{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// List returns stories for a shop, newest-first, optionally filtered by
// moderation status when status is non-empty.
func (r *submissionRepository) List(ctx context.Context, shop string, status models.SubmissionStatus) ([]models.Submission, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("id", "shop", "author_name", "author_email", "title", "body", "photo_urls", "status", "created_at", "updated_at").
		From("submissions").
		Where(sq.Eq{"shop": shop}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("shop", shop).Msg("error building submission list query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("shop", shop).Msg("error executing submission list query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var submissions []models.Submission
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			log.Err(err).Str("shop", shop).Msg("error scanning submission rows")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return submissions, nil
}

// UpdateStatus transitions a story to the given moderation state and returns
// the updated record.
//
// Returns [ErrSubmissionNotFound] when the id does not exist.
func (r *submissionRepository) UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) (models.Submission, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateSubmissionStatus, id, status)

	updated, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Submission{}, ErrSubmissionNotFound
		}
		log.Err(err).Str("func", "*submissionRepository.UpdateStatus").Str("id", id).Msg("error updating submission status")
		return models.Submission{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (models.Submission, error) {
	var submission models.Submission
	var photoURLs []byte

	err := row.Scan(&submission.ID, &submission.Shop, &submission.AuthorName, &submission.AuthorEmail,
		&submission.Title, &submission.Body, &photoURLs, &submission.Status,
		&submission.CreatedAt, &submission.UpdatedAt)
	if err != nil {
		return models.Submission{}, err
	}

	if len(photoURLs) > 0 {
		if err := json.Unmarshal(photoURLs, &submission.PhotoURLs); err != nil {
			return models.Submission{}, fmt.Errorf("error decoding photo urls: %w", err)
		}
	}

	return submission, nil
}
