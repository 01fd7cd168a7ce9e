package store

import (
	"database/sql"
	"errors"
	"fmt"

	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. It reads the sessions table the OAuth layer maintains.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves the session record stored under the exact key.
//
// Error handling:
//   - sql.ErrNoRows → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) GetByID(ctx context.Context, sessionID string) (models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	var record models.SessionRecord
	row := r.db.QueryRowContext(ctx, getSessionByID, sessionID)

	if err := row.Scan(&record.SessionID, &record.Shop, &record.Payload, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SessionRecord{}, ErrSessionNotFound
		}
		log.Err(err).Str("session_id", sessionID).Msg("error scanning session row")
		return models.SessionRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// FindMatching returns every session record whose key matches the shop by
// one of three OR'd rules: exact value, shop prefix, or the derived
// "offline_<shop>" prefix. Results are ordered newest-first so the resolver
// can accept the most recent usable record.
func (r *sessionRepository) FindMatching(ctx context.Context, shop string) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("session_id", "shop", "payload", "created_at").
		From("sessions").
		Where(sq.Or{
			sq.Eq{"session_id": shop},
			sq.Like{"session_id": shop + "%"},
			sq.Like{"session_id": "offline_" + shop + "%"},
		}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("shop", shop).Msg("error building session match query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("shop", shop).Msg("error executing session match query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.SessionRecord
	for rows.Next() {
		var record models.SessionRecord
		if err := rows.Scan(&record.SessionID, &record.Shop, &record.Payload, &record.CreatedAt); err != nil {
			log.Err(err).Str("shop", shop).Msg("error scanning session rows")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return records, nil
}
