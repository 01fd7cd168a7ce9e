package http

import (
	"errors"
	"net/http"

	"github.com/carlosbrath/lives-stolen-sub000/internal/service"
	"github.com/carlosbrath/lives-stolen-sub000/internal/store"
)

// API error codes surfaced in failure envelopes next to the HTTP status.
const (
	codeMissingShop      = "MISSING_SHOP"
	codeRateLimited      = "RATE_LIMITED"
	codeNotInstalled     = "NOT_INSTALLED"
	codeNoValidToken     = "NO_VALID_TOKEN"
	codeUploadFailed     = "UPLOAD_FAILED"
	codeBadRequest       = "BAD_REQUEST"
	codeNotFound         = "NOT_FOUND"
	codeStatusTransition = "INVALID_STATUS_TRANSITION"
	codeInternalError    = "INTERNAL_ERROR"
)

var errorStatusMap = map[error]int{
	service.ErrShopNotInstalled:        http.StatusForbidden,
	service.ErrNoValidToken:            http.StatusForbidden,
	service.ErrAllUploadsFailed:        http.StatusInternalServerError,
	service.ErrInvalidSubmission:       http.StatusBadRequest,
	service.ErrInvalidStatusTransition: http.StatusConflict,

	store.ErrSessionNotFound:    http.StatusForbidden,
	store.ErrSubmissionNotFound: http.StatusNotFound,
	store.ErrSubmissionNotSaved: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorCodeMap = map[error]string{
	service.ErrShopNotInstalled:        codeNotInstalled,
	service.ErrNoValidToken:            codeNoValidToken,
	service.ErrAllUploadsFailed:        codeUploadFailed,
	service.ErrInvalidSubmission:       codeBadRequest,
	service.ErrInvalidStatusTransition: codeStatusTransition,

	store.ErrSessionNotFound:    codeNotInstalled,
	store.ErrSubmissionNotFound: codeNotFound,
}

func statusFromError(err error) int {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func codeFromError(err error) string {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Code
	}
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codeInternalError
}
