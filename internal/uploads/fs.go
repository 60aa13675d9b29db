package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FSUploader writes blobs under a served directory. It backs the local
// deployment, where "object storage" is just the web root.
type FSUploader struct {
	dir     string
	baseURL string
}

func NewFSUploader(dir, baseURL string) *FSUploader {
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &FSUploader{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (u *FSUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	path := filepath.Join(u.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return u.baseURL + "/" + key, nil
}
