// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Carlos Brath

package http

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/utils"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

// multipartMemory is how much of a parsed form stays in memory before
// spilling to temp files.
const multipartMemory = 32 << 20

const photosField = "photos"

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBody)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	shop := r.FormValue("shop")
	if shop == "" {
		writeError(w, http.StatusBadRequest, codeMissingShop, "shop field is required")
		return
	}
	email := r.FormValue("email")

	if !h.enforceRateLimits(w, r, email) {
		return
	}

	files, err := readUploadedFiles(r.MultipartForm.File[photosField])
	if err != nil {
		log.Err(err).Str("shop", shop).Msg("reading uploaded files failed")
		writeError(w, http.StatusBadRequest, codeBadRequest, "could not read uploaded files")
		return
	}

	result, err := h.services.UploadService.UploadBatch(ctx, shop, files)
	if err != nil {
		log.Err(err).Str("shop", shop).Int("files", len(files)).Msg("upload batch failed")
		h.writeServiceError(w, err)
		return
	}

	log.Info().Str("shop", shop).Int("uploaded", len(result.URLs)).Int("files", len(files)).Msg("upload batch finished")
	_, _ = utils.WriteJSON(w, models.UploadResponse{
		Success:       true,
		URLs:          result.URLs,
		UploadedCount: len(result.URLs),
	}, http.StatusCreated)
}

// readUploadedFiles drains every file part into memory. Batch size and
// per-file limits are enforced by the service layer, which sees the full
// batch and can report every violation at once.
func readUploadedFiles(headers []*multipart.FileHeader) ([]models.InputFile, error) {
	files := make([]models.InputFile, 0, len(headers))
	for _, header := range headers {
		file, err := readUploadedFile(header)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

func readUploadedFile(header *multipart.FileHeader) (models.InputFile, error) {
	part, err := header.Open()
	if err != nil {
		return models.InputFile{}, err
	}
	defer func() { _ = part.Close() }()

	content, err := io.ReadAll(part)
	if err != nil {
		return models.InputFile{}, err
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}

	return models.InputFile{
		Filename: header.Filename,
		MimeType: mimeType,
		Size:     header.Size,
		Content:  content,
	}, nil
}

// preflight answers CORS preflight checks; headers are attached by the CORS
// middleware.
func (h *Handler) preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
