// Package release tracks the newest published release of the tool itself.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

// releasePayload is the subset of a GitHub latest-release response the
// checker reads.
type releasePayload struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Checker implements ports.ReleaseChecker against a JSON release endpoint,
// keeping the last successful response on disk. An empty endpoint URL
// disables checking entirely.
type Checker struct {
	log        ports.Logger
	url        string
	cachePath  string
	httpClient *http.Client
}

var _ ports.ReleaseChecker = (*Checker)(nil)

// NewChecker creates a release checker caching under dir. url may be empty
// to disable release checks.
func NewChecker(url, dir string, log ports.Logger) *Checker {
	return &Checker{
		log:       log,
		url:       url,
		cachePath: filepath.Join(dir, domain.ReleaseFileName),
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
}

// Latest returns the cached release information without any network I/O.
func (c *Checker) Latest() (*domain.Release, error) {
	if c.url == "" {
		return nil, domain.ErrReleaseUnavailable
	}

	data, err := os.ReadFile(c.cachePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrReleaseUnavailable
		}
		return nil, zerr.Wrap(err, domain.ErrReleaseUnavailable.Error())
	}

	var rel domain.Release
	if err := json.Unmarshal(data, &rel); err != nil {
		return nil, zerr.Wrap(err, domain.ErrReleaseDecodeFailed.Error())
	}

	return &rel, nil
}

// Refresh fetches the release endpoint and overwrites the cached result.
// A failed refresh leaves the previous cache untouched. With no endpoint
// configured it does nothing.
func (c *Checker) Refresh(ctx context.Context) error {
	if c.url == "" {
		return nil
	}

	payload, err := c.fetch(ctx)
	if err != nil {
		return err
	}

	version := strings.TrimSpace(payload.TagName)
	if version == "" {
		version = strings.TrimSpace(payload.Name)
	}
	if version == "" {
		return zerr.With(domain.ErrReleaseDecodeFailed, "url", c.url)
	}

	rel := domain.Release{
		Version:   version,
		URL:       payload.HTMLURL,
		CheckedAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(rel, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReleaseWriteFailed.Error())
	}

	if err := c.atomicWriteFile(c.cachePath, data); err != nil {
		return zerr.Wrap(err, domain.ErrReleaseWriteFailed.Error())
	}

	c.log.Debug("cached release information", "version", rel.Version)

	return nil
}

func (c *Checker) fetch(ctx context.Context) (*releasePayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrReleaseFetchFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrReleaseFetchFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(domain.ErrReleaseFetchFailed, "status_code", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrReleaseFetchFailed.Error())
	}

	var payload releasePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, zerr.Wrap(err, domain.ErrReleaseDecodeFailed.Error())
	}

	return &payload, nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func (c *Checker) atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "release-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
