package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

func newTestSubmissionRepo(t *testing.T) (*submissionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &submissionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func submissionColumns() []string {
	return []string{"id", "shop", "author_name", "author_email", "title", "body", "photo_urls", "status", "created_at", "updated_at"}
}

func TestSubmissionCreate_Success(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	submission := models.Submission{
		ID:          "0192f0c1-0000-7000-8000-000000000001",
		Shop:        "shop-x.myshopify.com",
		AuthorName:  "Jane",
		AuthorEmail: "jane@example.com",
		Title:       "In memory",
		Body:        "A story.",
		PhotoURLs:   []string{"https://cdn.example.com/1.jpg"},
		Status:      models.SubmissionNew,
	}

	rows := sqlmock.NewRows(submissionColumns()).
		AddRow(submission.ID, submission.Shop, submission.AuthorName, submission.AuthorEmail,
			submission.Title, submission.Body, []byte(`["https://cdn.example.com/1.jpg"]`),
			string(models.SubmissionNew), now, now)

	mock.ExpectQuery("INSERT INTO submissions").
		WithArgs(submission.ID, submission.Shop, submission.AuthorName, submission.AuthorEmail,
			submission.Title, submission.Body, sqlmock.AnyArg(), string(models.SubmissionNew)).
		WillReturnRows(rows)

	created, err := repo.Create(ctx, submission)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != submission.ID {
		t.Errorf("expected id %q, got %q", submission.ID, created.ID)
	}
	if len(created.PhotoURLs) != 1 || created.PhotoURLs[0] != "https://cdn.example.com/1.jpg" {
		t.Errorf("unexpected photo urls: %v", created.PhotoURLs)
	}
}

func TestSubmissionCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO submissions").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), models.Submission{ID: "x", Status: models.SubmissionNew})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestSubmissionGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, shop, author_name").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestSubmissionList_StatusFilter(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(submissionColumns()).
		AddRow("id-1", "shop-x.myshopify.com", "Jane", "jane@example.com", "t", "b",
			[]byte(`[]`), string(models.SubmissionApproved), now, now)

	mock.ExpectQuery("SELECT id, shop, author_name, author_email, title, body, photo_urls, status, created_at, updated_at FROM submissions WHERE").
		WithArgs("shop-x.myshopify.com", string(models.SubmissionApproved)).
		WillReturnRows(rows)

	submissions, err := repo.List(context.Background(), "shop-x.myshopify.com", models.SubmissionApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(submissions) != 1 || submissions[0].Status != models.SubmissionApproved {
		t.Fatalf("unexpected listing: %+v", submissions)
	}
}

func TestSubmissionUpdateStatus_Success(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(submissionColumns()).
		AddRow("id-1", "shop-x.myshopify.com", "Jane", "jane@example.com", "t", "b",
			[]byte(`[]`), string(models.SubmissionPublished), now, now)

	mock.ExpectQuery("UPDATE submissions").
		WithArgs("id-1", string(models.SubmissionPublished)).
		WillReturnRows(rows)

	updated, err := repo.UpdateStatus(context.Background(), "id-1", models.SubmissionPublished)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.SubmissionPublished {
		t.Errorf("expected published status, got %q", updated.Status)
	}
}

func TestSubmissionUpdateStatus_NotFound(t *testing.T) {
	repo, mock, db := newTestSubmissionRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE submissions").
		WithArgs("missing", sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), "missing", models.SubmissionApproved)
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}
