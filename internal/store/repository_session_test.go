package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSessionGetByID_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	payload := []byte(`{"shop":"shop-x.myshopify.com","accessToken":"shpat_abc"}`)

	rows := sqlmock.
		NewRows([]string{"session_id", "shop", "payload", "created_at"}).
		AddRow("offline_shop-x.myshopify.com", "shop-x.myshopify.com", payload, now)

	mock.ExpectQuery("SELECT session_id, shop, payload, created_at").
		WithArgs("offline_shop-x.myshopify.com").
		WillReturnRows(rows)

	record, err := repo.GetByID(ctx, "offline_shop-x.myshopify.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.SessionID != "offline_shop-x.myshopify.com" {
		t.Errorf("unexpected session id %q", record.SessionID)
	}
	if string(record.Payload) != string(payload) {
		t.Errorf("unexpected payload %q", record.Payload)
	}
}

func TestSessionGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT session_id, shop, payload, created_at").
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "offline_missing.myshopify.com")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionFindMatching_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"session_id", "shop", "payload", "created_at"}).
		AddRow("offline_shop-x.myshopify.com_2", "shop-x.myshopify.com", []byte(`{}`), now).
		AddRow("offline_shop-x.myshopify.com_1", "shop-x.myshopify.com", []byte(`{}`), now.Add(-time.Hour))

	// squirrel renders the three OR'd match rules into a single WHERE.
	mock.ExpectQuery("SELECT session_id, shop, payload, created_at FROM sessions WHERE").
		WithArgs("shop-x.myshopify.com", "shop-x.myshopify.com%", "offline_shop-x.myshopify.com%").
		WillReturnRows(rows)

	records, err := repo.FindMatching(context.Background(), "shop-x.myshopify.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].SessionID != "offline_shop-x.myshopify.com_2" {
		t.Errorf("expected newest record first, got %q", records[0].SessionID)
	}
}

func TestSessionFindMatching_NoRecords(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"session_id", "shop", "payload", "created_at"})

	mock.ExpectQuery("SELECT session_id, shop, payload, created_at FROM sessions WHERE").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	records, err := repo.FindMatching(context.Background(), "nobody.myshopify.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestSessionFindMatching_QueryError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT session_id, shop, payload, created_at FROM sessions WHERE").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.FindMatching(context.Background(), "shop-x.myshopify.com")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
