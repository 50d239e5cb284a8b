package remote

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vetcare-portal/internal/platform/httpclient"
	"vetcare-portal/internal/ports/media"
)

// Config del object storage del backend gestionado.
type Config struct {
	BaseURL string
	Bucket  string
	APIKey  string
	Timeout time.Duration
}

// Uploader sube blobs al bucket y devuelve la URL pública del objeto.
type Uploader struct {
	http   *httpclient.Client
	bucket string
	apiKey string
}

func NewUploader(cfg Config) (*Uploader, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("remote uploader: base url and bucket required")
	}
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Uploader{
		http:   hc,
		bucket: strings.Trim(strings.TrimSpace(cfg.Bucket), "/"),
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

func (u *Uploader) Upload(ctx context.Context, in media.Upload) (string, error) {
	if len(in.Data) == 0 {
		return "", media.ErrEmptyUpload
	}

	name, contentType, err := media.ObjectName(in)
	if err != nil {
		return "", err
	}
	objectPath := "/storage/v1/object/" + url.PathEscape(u.bucket) + "/" + url.PathEscape(name)

	headers := map[string]string{}
	if u.apiKey != "" {
		headers["Authorization"] = "Bearer " + u.apiKey
		headers["apikey"] = u.apiKey
	}

	if err := u.http.DoRaw(ctx, http.MethodPost, objectPath, headers, contentType, bytes.NewReader(in.Data), nil); err != nil {
		return "", fmt.Errorf("remote uploader: %w", err)
	}

	return u.http.BaseURL + "/storage/v1/object/public/" + url.PathEscape(u.bucket) + "/" + url.PathEscape(name), nil
}
