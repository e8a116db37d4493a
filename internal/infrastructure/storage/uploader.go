package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"healthlink/config"

	"github.com/sirupsen/logrus"
)

// Uploader pushes an image to external object storage and returns its
// public URL.
type Uploader interface {
	Upload(ctx context.Context, fileName string, content io.Reader) (string, error)
}

// CloudinaryUploader uploads through Cloudinary's unsigned upload API.
type CloudinaryUploader struct {
	cfg        config.StorageConfig
	httpClient *http.Client
	log        *logrus.Logger
}

func NewCloudinaryUploader(cfg config.StorageConfig, log *logrus.Logger) *CloudinaryUploader {
	return &CloudinaryUploader{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

type uploadResult struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *CloudinaryUploader) Upload(ctx context.Context, fileName string, content io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.WriteField("upload_preset", u.cfg.UploadPreset); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if u.cfg.Folder != "" {
		if err := writer.WriteField("folder", u.cfg.Folder); err != nil {
			return "", fmt.Errorf("failed to build upload request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	var result uploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		u.log.Warnf("Upload rejected with status %d: %s", resp.StatusCode, result.Error.Message)
		return "", fmt.Errorf("upload rejected with status %d", resp.StatusCode)
	}

	return result.SecureURL, nil
}
