package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jpdeguzman/alkansave/internal/apperror"
)

// Policy parameterizes one avatar-ingestion entry point: which sniffed MIME
// types pass, how large the file may be, and how the stored file is named.
type Policy struct {
	AllowedTypes    map[string]string // sniffed MIME -> extension
	MaxSize         int64
	Filename        func(userID uint, ext string) string
	InvalidTypeMsg  string
	SizeExceededMsg string
}

// EditProfilePolicy matches the edit-profile flow: JPG/PNG/GIF up to
// 2,000,000 bytes, named with a random suffix.
func EditProfilePolicy() Policy {
	return Policy{
		AllowedTypes: map[string]string{
			"image/jpeg": "jpg",
			"image/png":  "png",
			"image/gif":  "gif",
		},
		MaxSize: 2_000_000,
		Filename: func(userID uint, ext string) string {
			suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
			return fmt.Sprintf("user_%d_%s.%s", userID, suffix, ext)
		},
		InvalidTypeMsg:  "Only JPG, PNG, and GIF images are allowed",
		SizeExceededMsg: "Maximum file size exceeded (2MB limit)",
	}
}

// AvatarPolicy matches the standalone upload endpoint: JPEG/PNG only, 2MiB
// cap, timestamp-named.
func AvatarPolicy() Policy {
	return Policy{
		AllowedTypes: map[string]string{
			"image/jpeg": "jpg",
			"image/png":  "png",
		},
		MaxSize: 2 << 20,
		Filename: func(userID uint, ext string) string {
			return fmt.Sprintf("user_%d_%d.%s", userID, time.Now().Unix(), ext)
		},
		InvalidTypeMsg:  "Only JPEG/PNG allowed",
		SizeExceededMsg: "File too large (max 2MB)",
	}
}

// Ingestor stores avatar bytes under a fixed directory and returns the
// public path they are served from.
type Ingestor struct {
	dir     string
	baseURL string
}

func NewIngestor(dir, baseURL string) *Ingestor {
	return &Ingestor{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (i *Ingestor) Save(userID uint, r io.Reader, policy Policy) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, policy.MaxSize+1))
	if err != nil {
		return "", apperror.Persistence("Failed to read uploaded file", err)
	}
	if len(data) == 0 {
		return "", apperror.Validation("Uploaded file is empty")
	}
	if int64(len(data)) > policy.MaxSize {
		return "", apperror.Validation(policy.SizeExceededMsg)
	}

	mime := http.DetectContentType(data)
	ext, ok := policy.AllowedTypes[mime]
	if !ok {
		return "", apperror.Validation(policy.InvalidTypeMsg)
	}

	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return "", apperror.Persistence("Failed to create upload directory", err)
	}

	filename := policy.Filename(userID, ext)
	if err := os.WriteFile(filepath.Join(i.dir, filename), data, 0o644); err != nil {
		return "", apperror.Persistence("Failed to save uploaded file", err)
	}

	return i.baseURL + "/" + filename, nil
}
