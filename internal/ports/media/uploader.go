package media

import (
	"context"
	"errors"
)

var ErrEmptyUpload = errors.New("empty upload")

// Upload es un archivo recibido del cliente (foto de mascota).
type Upload struct {
	Filename string
	Data     []byte
}

// Uploader sube un blob con nombre único generado y devuelve la URL pública.
type Uploader interface {
	Upload(ctx context.Context, in Upload) (string, error)
}
