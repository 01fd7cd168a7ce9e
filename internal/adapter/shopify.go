package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/carlosbrath/lives-stolen-sub000/internal/config"
	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/utils"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

const accessTokenHeader = "X-Shopify-Access-Token"

const stagedUploadsCreateMutation = `mutation stagedUploadsCreate($input: [StagedUploadInput!]!) {
  stagedUploadsCreate(input: $input) {
    stagedTargets {
      url
      resourceUrl
      parameters { name value }
    }
    userErrors { field message }
  }
}`

const fileCreateMutation = `mutation fileCreate($files: [FileCreateInput!]!) {
  fileCreate(files: $files) {
    files {
      id
      ... on MediaImage { image { url } }
    }
    userErrors { field message }
  }
}`

const fileStatusQuery = `query fileStatus($id: ID!) {
  node(id: $id) {
    ... on MediaImage {
      fileStatus
      image { url }
    }
  }
}`

// shopifyAssetAPI is the resty-backed implementation of [AssetAPI] speaking
// the Admin GraphQL protocol. Staged transfers go straight to the object
// store URL the API hands out, not through the Admin endpoint.
type shopifyAssetAPI struct {
	client     *utils.HTTPClient
	apiVersion string

	// baseURL overrides the per-shop "https://<shop>" endpoint root.
	// Used by tests to point the adapter at a local server.
	baseURL string

	logger *logger.Logger
}

// NewShopifyAssetAPI constructs an [AssetAPI] that talks to the Shopify
// Admin GraphQL API for whichever shop each credential names.
func NewShopifyAssetAPI(cfg config.Shopify, logger *logger.Logger) AssetAPI {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	logger.Debug().Str("api_version", cfg.APIVersion).Msg("shopify asset api adapter created")

	return &shopifyAssetAPI{
		client:     client,
		apiVersion: cfg.APIVersion,
		logger:     logger,
	}
}

func (a *shopifyAssetAPI) endpoint(shop string) string {
	root := "https://" + shop
	if a.baseURL != "" {
		root = strings.TrimRight(a.baseURL, "/")
	}
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", root, a.apiVersion)
}

// graphQLResponse is the outer envelope of every Admin API answer.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

func joinUserErrors(userErrors []userError) string {
	messages := make([]string, 0, len(userErrors))
	for _, ue := range userErrors {
		messages = append(messages, ue.Message)
	}
	return strings.Join(messages, "; ")
}

// execute POSTs one GraphQL document and unwraps the response envelope.
func (a *shopifyAssetAPI) execute(ctx context.Context, credential models.Credential, query string, variables map[string]any) (json.RawMessage, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(accessTokenHeader, credential.AccessToken).
		SetBody(map[string]any{
			"query":     query,
			"variables": variables,
		}).
		Post(a.endpoint(credential.Shop))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetAPIRequest, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrAssetAPIRequest, resp.StatusCode())
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrAssetAPIRequest, err)
	}
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrAssetAPIRequest, envelope.Errors[0].Message)
	}

	return envelope.Data, nil
}

// StagedUploadCreate implements [AssetAPI]. It asks the Admin API for a
// short-lived upload destination matching the file's name, type, and size.
func (a *shopifyAssetAPI) StagedUploadCreate(ctx context.Context, credential models.Credential, file models.InputFile) (models.StagedTarget, error) {
	log := logger.FromContext(ctx)

	data, err := a.execute(ctx, credential, stagedUploadsCreateMutation, map[string]any{
		"input": []map[string]any{{
			"filename":   file.Filename,
			"mimeType":   file.MimeType,
			"resource":   "FILE",
			"fileSize":   strconv.FormatInt(file.Size, 10),
			"httpMethod": "POST",
		}},
	})
	if err != nil {
		log.Err(err).Str("filename", file.Filename).Msg("staged upload create request failed")
		return models.StagedTarget{}, err
	}

	var payload struct {
		StagedUploadsCreate struct {
			StagedTargets []models.StagedTarget `json:"stagedTargets"`
			UserErrors    []userError           `json:"userErrors"`
		} `json:"stagedUploadsCreate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return models.StagedTarget{}, fmt.Errorf("%w: decoding staged targets: %v", ErrAssetAPIRequest, err)
	}
	if len(payload.StagedUploadsCreate.UserErrors) > 0 {
		return models.StagedTarget{}, fmt.Errorf("%w: %s", ErrAssetAPIUserError, joinUserErrors(payload.StagedUploadsCreate.UserErrors))
	}
	if len(payload.StagedUploadsCreate.StagedTargets) == 0 {
		return models.StagedTarget{}, ErrEmptyStagedTarget
	}

	return payload.StagedUploadsCreate.StagedTargets[0], nil
}

// TransferToTarget implements [AssetAPI]. The target's parameters are sent
// as ordinary form fields and the file bytes as the trailing "file" part,
// the order object stores require.
func (a *shopifyAssetAPI) TransferToTarget(ctx context.Context, target models.StagedTarget, file models.InputFile) error {
	log := logger.FromContext(ctx)

	formData := make(map[string]string, len(target.Parameters))
	for _, parameter := range target.Parameters {
		formData[parameter.Name] = parameter.Value
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetMultipartFormData(formData).
		SetMultipartField("file", file.Filename, file.MimeType, bytes.NewReader(file.Content)).
		Post(target.URL)
	if err != nil {
		log.Err(err).Str("filename", file.Filename).Msg("staged target transfer failed")
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	if !resp.IsSuccess() {
		log.Error().Str("filename", file.Filename).Int("status", resp.StatusCode()).Msg("staged target rejected transfer")
		return fmt.Errorf("%w: unexpected status %d", ErrTransferFailed, resp.StatusCode())
	}

	return nil
}

// FileCreate implements [AssetAPI]. It registers the staged resource as a
// permanent file and returns either a ready URL or only the asset id when
// the image is still processing.
func (a *shopifyAssetAPI) FileCreate(ctx context.Context, credential models.Credential, target models.StagedTarget, altText string) (FileCreateResult, error) {
	log := logger.FromContext(ctx)

	data, err := a.execute(ctx, credential, fileCreateMutation, map[string]any{
		"files": []map[string]any{{
			"originalSource": target.ResourceURL,
			"alt":            altText,
			"contentType":    "IMAGE",
		}},
	})
	if err != nil {
		log.Err(err).Msg("file create request failed")
		return FileCreateResult{}, err
	}

	var payload struct {
		FileCreate struct {
			Files []struct {
				ID    string `json:"id"`
				Image struct {
					URL string `json:"url"`
				} `json:"image"`
			} `json:"files"`
			UserErrors []userError `json:"userErrors"`
		} `json:"fileCreate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return FileCreateResult{}, fmt.Errorf("%w: decoding file record: %v", ErrAssetAPIRequest, err)
	}
	if len(payload.FileCreate.UserErrors) > 0 {
		return FileCreateResult{}, fmt.Errorf("%w: %s", ErrAssetAPIUserError, joinUserErrors(payload.FileCreate.UserErrors))
	}
	if len(payload.FileCreate.Files) == 0 {
		return FileCreateResult{}, ErrEmptyFileRecord
	}

	record := payload.FileCreate.Files[0]
	return FileCreateResult{FileID: record.ID, URL: record.Image.URL}, nil
}

// FileStatus implements [AssetAPI]. An empty URL with a nil error means the
// asset is not ready yet and the caller should poll again.
func (a *shopifyAssetAPI) FileStatus(ctx context.Context, credential models.Credential, fileID string) (string, error) {
	data, err := a.execute(ctx, credential, fileStatusQuery, map[string]any{
		"id": fileID,
	})
	if err != nil {
		return "", err
	}

	var payload struct {
		Node struct {
			FileStatus string `json:"fileStatus"`
			Image      struct {
				URL string `json:"url"`
			} `json:"image"`
		} `json:"node"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("%w: decoding file status: %v", ErrAssetAPIRequest, err)
	}

	return payload.Node.Image.URL, nil
}
