// Package assets fetches the client-side viewer's third-party runtime files
// into a local library directory. This is a one-time install step, separate
// from the panorama-processing core.
package assets

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultBaseURL is the cdnjs release directory the viewer runtime is
// pinned to.
const DefaultBaseURL = "https://cdnjs.cloudflare.com/ajax/libs/three.js/0.172.0"

// RuntimeFiles are the script files the viewer loads, fetched relative to
// the base URL.
var RuntimeFiles = []string{
	"three.core.min.js",
	"three.module.min.js",
}

// Fetcher downloads the viewer runtime files into LibDir, creating the
// directory when absent. Existing files are overwritten so re-running the
// install refreshes the pinned release.
type Fetcher struct {
	// BaseURL is the release directory to fetch from. Empty means
	// DefaultBaseURL.
	BaseURL string
	// LibDir is the destination directory, e.g. js/lib under the plugin
	// install path.
	LibDir string
	// Client is the HTTP client to use. Nil means http.DefaultClient.
	Client *http.Client
	// Logger receives per-file progress. Nil disables logging.
	Logger *slog.Logger
}

// Fetch downloads every runtime file. It stops at the first failure.
//
// Arguments:
//   - ctx: Cancels in-flight downloads.
//
// Returns:
//   - error: An error if the directory cannot be created or a download or
//     write fails.
func (f *Fetcher) Fetch(ctx context.Context) error {
	if f.LibDir == "" {
		return errors.New("library directory is not set")
	}
	if err := os.MkdirAll(f.LibDir, 0o755); err != nil {
		return errors.Wrap(err, "creating library directory failed")
	}

	base := f.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	for _, name := range RuntimeFiles {
		if err := f.fetchFile(ctx, base+"/"+name, name); err != nil {
			return errors.Wrapf(err, "fetching %s failed", name)
		}
		if f.Logger != nil {
			f.Logger.Info("fetched viewer runtime file", "file", name, "dir", f.LibDir)
		}
	}
	return nil
}

// fetchFile downloads one file to a temp path in LibDir and renames it into
// place, so a failed download never leaves a truncated runtime file.
func (f *Fetcher) fetchFile(ctx context.Context, url, name string) error {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	tmp, err := os.CreateTemp(f.LibDir, name+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(f.LibDir, name))
}
