package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vetcare-portal/internal/ports/media"
)

// Uploader guarda las fotos en disco; el router las sirve bajo PublicBaseURL.
type Uploader struct {
	dir     string
	baseURL string
}

func NewUploader(dir, publicBaseURL string) (*Uploader, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("local uploader: dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local uploader: mkdir %s: %w", dir, err)
	}
	return &Uploader{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (u *Uploader) Dir() string { return u.dir }

func (u *Uploader) Upload(ctx context.Context, in media.Upload) (string, error) {
	if len(in.Data) == 0 {
		return "", media.ErrEmptyUpload
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, _, err := media.ObjectName(in)
	if err != nil {
		return "", err
	}
	path := filepath.Join(u.dir, name)

	// O_EXCL: el nombre es único, nunca pisamos un archivo existente
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("local uploader: create: %w", err)
	}
	if _, err := f.Write(in.Data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("local uploader: write: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("local uploader: close: %w", err)
	}

	return u.baseURL + "/" + name, nil
}
