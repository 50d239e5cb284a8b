package media

import (
	"errors"
	"strings"
	"testing"
)

var (
	pngHeader  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 0x49, 0x48, 0x44, 0x52}
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
)

func TestObjectName_ExtensionFromContent(t *testing.T) {
	name, ct, err := ObjectName(Upload{Filename: "milo.JPG", Data: pngHeader})
	if err != nil {
		t.Fatalf("ObjectName: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("expected .png suffix from content, got %q", name)
	}
	if strings.Contains(name, "-") {
		t.Fatalf("expected uuid without dashes, got %q", name)
	}
	if ct != "image/png" {
		t.Fatalf("expected content type image/png, got %q", ct)
	}

	name, ct, err = ObjectName(Upload{Filename: "photo", Data: jpegHeader})
	if err != nil {
		t.Fatalf("ObjectName: %v", err)
	}
	if !strings.HasSuffix(name, ".jpg") || ct != "image/jpeg" {
		t.Fatalf("expected jpeg, got %q %q", name, ct)
	}
}

func TestObjectName_RejectsNonImages(t *testing.T) {
	cases := map[string]Upload{
		"html":        {Filename: "evil.html", Data: []byte("<html><script>alert(document.cookie)</script></html>")},
		"html as png": {Filename: "evil.png", Data: []byte("<html><body>hi</body></html>")},
		"svg":         {Filename: "logo.svg", Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)},
		"text":        {Filename: "notes.txt", Data: []byte("just text")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := ObjectName(in); !errors.Is(err, ErrNotImage) {
				t.Fatalf("expected ErrNotImage, got %v", err)
			}
		})
	}

	if _, _, err := ObjectName(Upload{Filename: "a.png"}); !errors.Is(err, ErrEmptyUpload) {
		t.Fatalf("expected ErrEmptyUpload, got %v", err)
	}
}

func TestObjectName_IsUnique(t *testing.T) {
	a, _, _ := ObjectName(Upload{Filename: "a.png", Data: pngHeader})
	b, _, _ := ObjectName(Upload{Filename: "a.png", Data: pngHeader})
	if a == "" || a == b {
		t.Fatalf("expected different names, got %q and %q", a, b)
	}
}
