package media

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrNotImage = errors.New("upload is not a supported image")

// Formatos de foto aceptados. SVG queda afuera: puede llevar scripts.
var allowedImages = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// DetectImage detecta el tipo por contenido; el nombre del archivo no cuenta.
func DetectImage(data []byte) (*mimetype.MIME, error) {
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}
	mt := mimetype.Detect(data)
	for _, allowed := range allowedImages {
		if mt.Is(allowed) {
			return mt, nil
		}
	}
	return nil, fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
}

// ObjectName genera un nombre único (uuid sin guiones + extensión del tipo detectado)
// y el content-type del blob.
func ObjectName(in Upload) (name string, contentType string, err error) {
	mt, err := DetectImage(in.Data)
	if err != nil {
		return "", "", err
	}
	name = strings.ReplaceAll(uuid.NewString(), "-", "") + mt.Extension()
	return name, mt.String(), nil
}
