// Package imagecache downloads remote images once and reuses the local copy.
package imagecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	httputil "github.com/jmylchreest/iconkit/internal/util/http"
)

// CacheOptions configures image caching behavior.
type CacheOptions struct {
	// CacheDir is the directory where images will be cached.
	// If empty, defaults to the user cache directory plus iconkit/images.
	CacheDir string

	// AllowOverwrite re-downloads images that are already cached.
	AllowOverwrite bool

	// Fetch configures the download.
	Fetch httputil.FetchOptions
}

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "iconkit", "images"), nil
	}
	return filepath.Join(cacheDir, "iconkit", "images"), nil
}

// Filename returns the deterministic cache filename for a URL:
// a hash of the URL plus the extension of its path, if it has a short one.
func Filename(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	name := fmt.Sprintf("%x", hash[:16])

	u, err := url.Parse(rawURL)
	if err != nil {
		return name
	}
	ext := path.Ext(u.Path)
	if len(ext) < 2 || len(ext) > 5 {
		return name
	}
	return name + strings.ToLower(ext)
}

// DownloadAndCache downloads a remote image into the cache directory and
// returns its local path. An existing cached copy is returned without a
// download unless AllowOverwrite is set.
func DownloadAndCache(ctx context.Context, rawURL string, opts CacheOptions) (string, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "", fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		defaultDir, err := DefaultCacheDir()
		if err != nil {
			return "", err
		}
		cacheDir = defaultDir
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	cachedPath := filepath.Join(cacheDir, Filename(rawURL))

	if !opts.AllowOverwrite {
		if _, err := os.Stat(cachedPath); err == nil {
			return cachedPath, nil
		}
	}

	data, err := httputil.Fetch(ctx, rawURL, opts.Fetch)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	if err := os.WriteFile(cachedPath, data, 0o644); err != nil { // #nosec G306 - Cache files need standard read permissions
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}

	return cachedPath, nil
}
