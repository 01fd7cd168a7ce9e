package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosbrath/lives-stolen-sub000/internal/config"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/ratelimit"
	"github.com/carlosbrath/lives-stolen-sub000/internal/service"
	"github.com/carlosbrath/lives-stolen-sub000/internal/store"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

// stubUploadService records calls and plays back a canned answer.
type stubUploadService struct {
	result models.UploadResult
	err    error

	calls    int
	gotShop  string
	gotFiles []models.InputFile
}

func (s *stubUploadService) UploadBatch(_ context.Context, shop string, files []models.InputFile) (models.UploadResult, error) {
	s.calls++
	s.gotShop = shop
	s.gotFiles = files
	return s.result, s.err
}

func testHandlerConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "lives-stolen",
			TokenDuration: time.Hour,
			Version:       "test",
		},
		Uploads: config.Uploads{
			MaxFiles:    10,
			MaxFileSize: 20 << 20,
		},
		RateLimits: config.RateLimits{
			OriginMax:      300,
			OriginWindow:   time.Hour,
			IdentityMax:    3,
			IdentityWindow: 24 * time.Hour,
		},
	}
}

func newTestHandler(uploadSvc service.UploadService) *Handler {
	services := &service.Services{UploadService: uploadSvc}
	return NewHandler(services, &store.Storages{}, ratelimit.NewLimiter(logger.Nop()), testHandlerConfig(), logger.Nop())
}

// multipartUpload builds a storefront upload request body.
func multipartUpload(t *testing.T, shop, email string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if shop != "" {
		require.NoError(t, writer.WriteField("shop", shop))
	}
	if email != "" {
		require.NoError(t, writer.WriteField("email", email))
	}
	for _, filename := range filenames {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="photos"; filename="`+filename+`"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = io.WriteString(part, "fake-jpeg-bytes")
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func doUpload(h *Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/storefront/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestUpload_Success(t *testing.T) {
	uploadSvc := &stubUploadService{
		result: models.UploadResult{
			URLs: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		},
	}
	h := newTestHandler(uploadSvc)

	body, contentType := multipartUpload(t, "shop-x.myshopify.com", "a@b.com", "a.jpg", "b.jpg")
	rec := doUpload(h, body, contentType)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.URLs, 2)
	assert.Equal(t, 2, resp.UploadedCount)

	assert.Equal(t, 1, uploadSvc.calls)
	assert.Equal(t, "shop-x.myshopify.com", uploadSvc.gotShop)
	require.Len(t, uploadSvc.gotFiles, 2)
	assert.Equal(t, "a.jpg", uploadSvc.gotFiles[0].Filename)
	assert.Equal(t, "image/jpeg", uploadSvc.gotFiles[0].MimeType)
}

func TestUpload_MissingShop(t *testing.T) {
	uploadSvc := &stubUploadService{}
	h := newTestHandler(uploadSvc)

	body, contentType := multipartUpload(t, "", "a@b.com", "a.jpg")
	rec := doUpload(h, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, codeMissingShop, resp.Code)
	assert.False(t, resp.Success)
	assert.Zero(t, uploadSvc.calls)
}

func TestUpload_ValidationFailureSurfacesCode(t *testing.T) {
	uploadSvc := &stubUploadService{
		err: &service.ValidationError{
			Code:    service.CodeTooManyFiles,
			Reasons: []string{"batch of 11 files exceeds the maximum of 10"},
		},
	}
	h := newTestHandler(uploadSvc)

	body, contentType := multipartUpload(t, "shop-x.myshopify.com", "a@b.com", "a.jpg")
	rec := doUpload(h, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.CodeTooManyFiles, resp.Code)
}

func TestUpload_CredentialFailuresAreDistinct(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "not installed", err: service.ErrShopNotInstalled, wantCode: codeNotInstalled},
		{name: "no valid token", err: service.ErrNoValidToken, wantCode: codeNoValidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&stubUploadService{err: tt.err})

			body, contentType := multipartUpload(t, "ghost.myshopify.com", "a@b.com", "a.jpg")
			rec := doUpload(h, body, contentType)

			assert.Equal(t, http.StatusForbidden, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestUpload_IdentityRateLimit(t *testing.T) {
	uploadSvc := &stubUploadService{
		result: models.UploadResult{URLs: []string{"https://cdn.example.com/a.jpg"}},
	}
	h := newTestHandler(uploadSvc)

	// Identity quota is 3 per day; the 4th request from the same email must
	// be cut off before any upload work happens.
	for i := 0; i < 3; i++ {
		body, contentType := multipartUpload(t, "shop-x.myshopify.com", "A@B.com", "a.jpg")
		rec := doUpload(h, body, contentType)
		require.Equal(t, http.StatusCreated, rec.Code, "request %d", i+1)
	}

	body, contentType := multipartUpload(t, "shop-x.myshopify.com", "a@b.com", "a.jpg")
	rec := doUpload(h, body, contentType)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, codeRateLimited, resp.Code)

	assert.Equal(t, 3, uploadSvc.calls)
}

func TestUpload_AllFailed(t *testing.T) {
	h := newTestHandler(&stubUploadService{err: service.ErrAllUploadsFailed})

	body, contentType := multipartUpload(t, "shop-x.myshopify.com", "a@b.com", "a.jpg")
	rec := doUpload(h, body, contentType)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, codeUploadFailed, resp.Code)
}

func TestUpload_PreflightReturnsNoContent(t *testing.T) {
	h := newTestHandler(&stubUploadService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/storefront/upload", nil)
	req.Header.Set("Origin", "https://some-storefront.example.com")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestClientOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.Equal(t, "unknown", clientOrigin(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", clientOrigin(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientOrigin(req))
}
