package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/iconkit/internal/colour"
	imgloader "github.com/jmylchreest/iconkit/internal/image"
)

// DefaultColourSource is the image read when dominantcolours is given no argument.
const DefaultColourSource = "/Users/user1/Desktop/MAYCODIESEL/ERM AND POS/Diseno-sin-titulo-31.png"

// Output formats supported by dominantcolours.
const (
	FormatText  = "text"
	FormatHex   = "hex"
	FormatJSON  = "json"
	FormatTable = "table"
)

// ValidFormats returns the supported output formats.
func ValidFormats() []string {
	return []string{FormatText, FormatHex, FormatJSON, FormatTable}
}

// ReportOptions configures ReportDominantColours.
type ReportOptions struct {
	Format    string
	Resampler colour.Resampler
	Preview   bool
	Logger    hclog.Logger
}

type dominantColoursFlags struct {
	commonFlags
	colours   int
	format    string
	resampler string
	preview   bool
}

// NewDominantColoursCmd creates the dominantcolours command.
func NewDominantColoursCmd() *cobra.Command {
	flags := &dominantColoursFlags{}

	cmd := newRootCmd("dominantcolours",
		"Report the most frequent colours of an image",
		`dominantcolours resizes an image to 150x150 pixels, counts every exact
RGB value and prints the most frequent ones with their hex code, RGB
components and pixel count. Transparency is ignored.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, ICO (optionally gzip or xz compressed)

Every flag can also be set through the environment, for example
DOMINANTCOLOURS_COLOURS=8.

Examples:
  # Five most frequent colours of an image
  dominantcolours logo.png

  # Ten colours as JSON
  dominantcolours -c 10 -f json logo.png

  # Count on a nearest-neighbour resize so no blended colours appear
  dominantcolours --resample nearest logo.png`,
		&flags.commonFlags)
	cmd.Use = "dominantcolours [image]"
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runDominantColours(cmd, args, flags)
	}

	cmd.Flags().IntVarP(&flags.colours, "colours", "c", 5, "number of colours to report")
	cmd.Flags().StringVarP(&flags.format, "format", "f", FormatText, fmt.Sprintf("output format %v", ValidFormats()))
	cmd.Flags().StringVar(&flags.resampler, "resample", string(colour.ResampleCatmullRom), fmt.Sprintf("resampling kernel %v", colour.ValidResamplers()))
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "show colour swatches when writing to a terminal")

	return cmd
}

// runDominantColours executes the dominantcolours command.
func runDominantColours(cmd *cobra.Command, args []string, flags *dominantColoursFlags) error {
	path := DefaultColourSource
	if len(args) == 1 {
		path = args[0]
	}

	out := cmd.OutOrStdout()
	preview := false
	if flags.preview {
		f, ok := out.(*os.File)
		preview = ok && colour.SupportsANSIColours(f)
	}

	_, err := ReportDominantColours(out, flags.loader(), path, flags.colours, ReportOptions{
		Format:    flags.format,
		Resampler: colour.Resampler(flags.resampler),
		Preview:   preview,
		Logger:    flags.logger(cmd, "dominantcolours"),
	})
	if err != nil && flags.strict {
		return reportedError{err: err}
	}
	return nil
}

// ReportDominantColours loads the image at path, writes its n most frequent
// colours to w and returns their hex codes. On failure it writes a single
// "Error: <cause>" line and returns an empty slice along with the error.
func ReportDominantColours(w io.Writer, loader imgloader.Loader, path string, n int, opts ReportOptions) ([]string, error) {
	colours, err := dominantColours(loader, path, n, opts)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return []string{}, err
	}

	output, err := formatColours(path, colours, opts)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return []string{}, err
	}

	fmt.Fprint(w, output)
	return colour.HexCodes(colours), nil
}

// dominantColours loads and analyses the image.
func dominantColours(loader imgloader.Loader, path string, n int, opts ReportOptions) ([]colour.DominantColour, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if opts.Format != "" && !slices.Contains(ValidFormats(), opts.Format) {
		return nil, fmt.Errorf("unsupported format: %s (supported: %v)", opts.Format, ValidFormats())
	}

	config := colour.DefaultExtractorConfig()
	config.ColorCount = n
	if opts.Resampler != "" {
		config.Resampler = opts.Resampler
	}

	extractor, err := colour.NewExtractor(config)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("loading image", "path", path)
	if err := imgloader.ValidateImagePath(path); err != nil {
		return nil, err
	}
	loaded, err := imgloader.LoadWithDetails(loader, path)
	if err != nil {
		return nil, err
	}
	img := loaded.Image

	b := img.Bounds()
	logger.Debug("image loaded", "width", b.Dx(), "height", b.Dy(),
		"format", loaded.Format, "compression", loaded.Compression)
	logger.Debug("counting colours", "sample", fmt.Sprintf("%dx%d", colour.SampleSize, colour.SampleSize), "resampler", config.Resampler, "count", n)

	colours, err := extractor.Extract(img, config.ColorCount)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}

	logger.Debug("extraction complete", "colours", len(colours))
	return colours, nil
}
