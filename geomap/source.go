package geomap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Source locates daily maps. The zero value downloads from DefaultURLTemplate
// with http.DefaultClient.
type Source struct {
	Dir      string       // local map tree; empty disables local lookup
	Template string       // URL template; empty means DefaultURLTemplate
	Client   *http.Client // nil means http.DefaultClient
}

// Load returns the map for date from the local tree when present, otherwise
// from the remote URL. A downloaded map is saved into the local tree when Dir
// is set; a failed save does not fail the load.
func (s Source) Load(ctx context.Context, date time.Time) (*Document, error) {
	if s.Dir != "" {
		path := LocalPath(s.Dir, date)
		doc, err := ReadFile(path)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return doc, err
		}
	}
	template := s.Template
	if template == "" {
		template = DefaultURLTemplate
	}

	doc, err := s.Fetch(ctx, URL(template, date))
	if err != nil {
		return nil, err
	}
	if s.Dir != "" {
		_ = s.Save(doc, date)
	}

	return doc, nil
}

// Fetch downloads and decodes the map at url.
func (s Source) Fetch(ctx context.Context, url string) (*Document, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrFetch, url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	return Parse(data)
}

// Save writes doc into the local tree for date, creating directories as needed.
func (s Source) Save(doc *Document, date time.Time) error {
	path := LocalPath(s.Dir, date)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("geomap: mkdir: %w", err)
	}

	return doc.WriteFile(path)
}
