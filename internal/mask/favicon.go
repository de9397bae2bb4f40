package mask

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	ico "github.com/sergeymakinen/go-ico"

	imgloader "github.com/jmylchreest/iconkit/internal/image"
)

// Options configures MakeCircleFavicon.
type Options struct {
	// ICOPath, when set, also writes the masked image as a single-entry ICO file.
	ICOPath string
}

// Result describes a completed masking run.
type Result struct {
	InputPath  string
	OutputPath string
	ICOPath    string
	Width      int
	Height     int

	// Format and Compression describe the input as stored, when the
	// loader reports them.
	Format      string
	Compression string
}

// EncodePNG writes img to w as PNG using default compression.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}

// MakeCircleFavicon loads inputPath, masks it to its inscribed ellipse and
// writes the result as a PNG to outputPath. The output has the input's
// dimensions. A failed write may leave a partial output file behind.
func MakeCircleFavicon(loader imgloader.Loader, inputPath, outputPath string, opts Options) (*Result, error) {
	loaded, err := imgloader.LoadWithDetails(loader, inputPath)
	if err != nil {
		return nil, err
	}

	masked := Circle(loaded.Image)

	if err := writeImage(outputPath, masked, EncodePNG); err != nil {
		return nil, err
	}

	if opts.ICOPath != "" {
		if err := writeImage(opts.ICOPath, masked, ico.Encode); err != nil {
			return nil, err
		}
	}

	b := masked.Bounds()
	return &Result{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		ICOPath:     opts.ICOPath,
		Width:       b.Dx(),
		Height:      b.Dy(),
		Format:      loaded.Format,
		Compression: loaded.Compression,
	}, nil
}

// writeImage encodes img into a newly created file at path.
func writeImage(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path) // #nosec G304 - User-specified output path, intended to be written
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := bufio.NewWriter(f)
	encErr := encode(w, img)
	if encErr == nil {
		encErr = w.Flush()
	}
	closeErr := f.Close()

	if encErr != nil {
		return fmt.Errorf("failed to encode %s: %w", path, encErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return nil
}
