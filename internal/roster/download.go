package roster

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// FetchCSV ensures a fresh copy of the legislators CSV at path. The feed is
// downloaded when the file is absent or its mtime is older than ttl; a fresh
// download gets its mtime touched to now so the window restarts. Returns
// whether a download happened.
func FetchCSV(ctx context.Context, client *http.Client, url, path string, ttl time.Duration) (bool, error) {
	log := zap.L().With(
		zap.String("component", "roster.fetch"),
		zap.String("url", url),
	)

	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if time.Since(info.ModTime()) <= ttl {
			log.Info("using cached legislators CSV",
				zap.String("path", path),
				zap.Time("updated", info.ModTime()),
			)
			return false, nil
		}
	case !os.IsNotExist(err):
		return false, eris.Wrapf(err, "roster: stat cached CSV %s", path)
	}

	log.Info("downloading legislators CSV", zap.String("path", path))
	if err := downloadFile(ctx, client, url, path); err != nil {
		return false, eris.Wrap(err, "roster: download legislators CSV")
	}

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return false, eris.Wrap(err, "roster: touch legislators CSV")
	}
	return true, nil
}

// downloadFile downloads a URL to a local file. The body lands in a temp
// file next to dest and is renamed into place only after a complete read,
// so a failed transfer leaves any existing copy untouched.
func downloadFile(ctx context.Context, client *http.Client, url, dest string) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrap(err, "create cache dir")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return eris.Wrap(err, "build request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return eris.Wrap(err, "download")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("download returned status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".tmp-*")
	if err != nil {
		return eris.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return eris.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "close temp file")
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return eris.Wrap(err, "replace file")
	}
	return nil
}
