package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	imgloader "github.com/jmylchreest/iconkit/internal/image"
	"github.com/jmylchreest/iconkit/internal/mask"
)

// Default paths used when circlefavicon is run without flags.
const (
	DefaultFaviconInput  = "public/favicon.ico"
	DefaultFaviconOutput = "public/favicon.png"
)

type circleFaviconFlags struct {
	commonFlags
	input  string
	output string
	ico    string
}

// NewCircleFaviconCmd creates the circlefavicon command.
func NewCircleFaviconCmd() *cobra.Command {
	flags := &circleFaviconFlags{}

	cmd := newRootCmd("circlefavicon",
		"Mask an icon into a circular PNG",
		`circlefavicon loads an image (by default public/favicon.ico) and writes a
PNG (by default public/favicon.png) in which everything outside the ellipse
inscribed in the image bounds is fully transparent. Square inputs produce a
circle; other inputs produce an ellipse of the same aspect ratio.

Multi-size ICO files are read using their largest stored icon.

Every flag can also be set through the environment, for example
CIRCLEFAVICON_OUTPUT=out.png.

Examples:
  # Mask public/favicon.ico into public/favicon.png
  circlefavicon

  # Mask a specific image
  circlefavicon -i logo.png -o logo-round.png

  # Also write a round ICO
  circlefavicon --ico public/favicon-round.ico`,
		&flags.commonFlags)
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCircleFavicon(cmd, flags)
	}

	cmd.Flags().StringVarP(&flags.input, "input", "i", DefaultFaviconInput, "image to mask (file path or http(s) URL)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", DefaultFaviconOutput, "PNG file to write")
	cmd.Flags().StringVar(&flags.ico, "ico", "", "also write the masked image as an ICO file")

	return cmd
}

// runCircleFavicon executes the circlefavicon command.
func runCircleFavicon(cmd *cobra.Command, flags *circleFaviconFlags) error {
	logger := flags.logger(cmd, "circlefavicon")
	out := cmd.OutOrStdout()

	logger.Debug("masking image", "input", flags.input, "output", flags.output)

	if err := imgloader.ValidateImagePath(flags.input); err != nil {
		return flags.fail(out, err)
	}

	result, err := mask.MakeCircleFavicon(flags.loader(), flags.input, flags.output, mask.Options{
		ICOPath: flags.ico,
	})
	if err != nil {
		logger.Debug("masking failed", "error", err)
		return flags.fail(out, err)
	}

	logger.Debug("image loaded", "format", result.Format, "compression", result.Compression)
	logger.Debug("wrote masked image", "width", result.Width, "height", result.Height)
	if result.ICOPath != "" {
		logger.Info("wrote ICO", "path", result.ICOPath)
	}

	fmt.Fprintf(out, "Successfully created circular favicon at %s\n", result.OutputPath)
	return nil
}
