// Package image provides utilities for loading images.
package image

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"
	"strings"

	_ "github.com/sergeymakinen/go-ico" // Register ICO format
	"github.com/ulikunitz/xz"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/iconkit/internal/security"
	httputil "github.com/jmylchreest/iconkit/internal/util/http"
	"github.com/jmylchreest/iconkit/internal/util/imagecache"
)

// Magic numbers of the compression wrappers accepted around image data.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// Loaded describes a decoded image and where it came from.
type Loaded struct {
	Image image.Image
	// Format is the name the decoder registered under (png, ico, webp, ...).
	Format string
	// Compression is "gzip" or "xz" when the data was wrapped, empty otherwise.
	Compression string
}

// DetailedLoader is a Loader that can also report how an image was stored.
type DetailedLoader interface {
	Loader
	LoadDetailed(path string) (*Loaded, error)
}

// LoadWithDetails loads path with l, reporting format and compression when
// l supports it. For other loaders only Image is set.
func LoadWithDetails(l Loader, path string) (*Loaded, error) {
	if dl, ok := l.(DetailedLoader); ok {
		return dl.LoadDetailed(path)
	}
	img, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	return &Loaded{Image: img}, nil
}

// FileLoader loads images from the local filesystem.
type FileLoader struct {
	maxDecompressed int64
}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{
		maxDecompressed: security.MaxDecompressedImageSize,
	}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, ICO, optionally wrapped in gzip or xz.
func (l *FileLoader) Load(path string) (image.Image, error) {
	loaded, err := l.LoadDetailed(path)
	if err != nil {
		return nil, err
	}
	return loaded.Image, nil
}

// LoadDetailed loads an image from a file path and reports its format.
func (l *FileLoader) LoadDetailed(path string) (*Loaded, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	return decode(data, l.maxDecompressed)
}

// decode unwraps any gzip or xz layer and decodes the image data.
func decode(data []byte, maxDecompressed int64) (*Loaded, error) {
	compression := ""

	var r io.Reader
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r, compression = gzr, "gzip"
	case bytes.HasPrefix(data, xzMagic):
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r, compression = xzr, "xz"
	}

	if r != nil {
		unwrapped, err := io.ReadAll(security.NewLimitedReader(r, maxDecompressed))
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s image: %w", compression, err)
		}
		data = unwrapped
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return &Loaded{Image: img, Format: format, Compression: compression}, nil
}

// ValidateImagePath checks that path names an existing regular file or is a
// well-formed HTTP(S) URL. URLs are only checked for shape; they are fetched later.
func ValidateImagePath(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}

	if isURL(path) {
		return security.ValidateHTTPURL(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to access image path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	return nil
}

// SmartLoader loads images from both local files and HTTP(S) URLs.
type SmartLoader struct {
	fileLoader *FileLoader
	fetchOpts  httputil.FetchOptions
	cache      *imagecache.CacheOptions
}

// NewSmartLoader creates a new SmartLoader instance.
func NewSmartLoader() *SmartLoader {
	return &SmartLoader{
		fileLoader: NewFileLoader(),
	}
}

// NewCachingSmartLoader creates a SmartLoader that keeps downloaded images
// in a local cache and loads them from there on later runs.
func NewCachingSmartLoader(opts imagecache.CacheOptions) *SmartLoader {
	l := NewSmartLoader()
	l.fetchOpts = opts.Fetch
	l.cache = &opts
	return l
}

// Load loads an image from either a local file path or HTTP(S) URL.
func (l *SmartLoader) Load(path string) (image.Image, error) {
	loaded, err := l.LoadDetailed(path)
	if err != nil {
		return nil, err
	}
	return loaded.Image, nil
}

// LoadDetailed loads an image from a local file or URL and reports its format.
func (l *SmartLoader) LoadDetailed(path string) (*Loaded, error) {
	if isURL(path) {
		return l.loadFromURL(path)
	}
	return l.fileLoader.LoadDetailed(path)
}

// loadFromURL fetches and decodes an image from an HTTP(S) URL.
func (l *SmartLoader) loadFromURL(url string) (*Loaded, error) {
	if l.cache != nil {
		cachedPath, err := imagecache.DownloadAndCache(context.Background(), url, *l.cache)
		if err != nil {
			return nil, fmt.Errorf("failed to cache image from URL: %w", err)
		}
		return l.fileLoader.LoadDetailed(cachedPath)
	}

	data, err := httputil.Fetch(context.Background(), url, l.fetchOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}

	return decode(data, l.fileLoader.maxDecompressed)
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
