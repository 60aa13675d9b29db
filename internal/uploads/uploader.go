// Package uploads stores project image blobs and returns publicly resolvable
// URLs. Backends: S3 object storage, or a local directory for the
// file-backed deployment.
package uploads

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"
)

// Uploader stores a blob at key and returns its public URL. Writing to an
// existing key silently overwrites it.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectKey builds the storage path for an uploaded project image:
// projects/<timestamp>_<sanitized filename>.
func ObjectKey(filename string) string {
	name := unsafeChars.ReplaceAllString(filename, "_")
	if name == "" {
		name = "image"
	}
	return fmt.Sprintf("projects/%d_%s", time.Now().UnixMilli(), name)
}

// File is one pending upload.
type File struct {
	Key         string
	ContentType string
	Body        io.Reader
}

// UploadAll pushes the files concurrently and joins before returning. The
// batch is all-or-nothing: the first failure cancels the remaining uploads
// and no URLs are returned, so a partial gallery never reaches the caller.
func UploadAll(ctx context.Context, u Uploader, files []File) ([]string, error) {
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			url, err := u.Upload(gctx, f.Key, f.ContentType, f.Body)
			if err != nil {
				return fmt.Errorf("upload %s: %w", f.Key, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
