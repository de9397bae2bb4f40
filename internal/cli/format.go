package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/iconkit/internal/colour"
)

// formatColours renders an extraction result in the requested format.
func formatColours(path string, colours []colour.DominantColour, opts ReportOptions) (string, error) {
	switch opts.Format {
	case FormatText, "":
		return formatText(path, colours, opts.Preview), nil
	case FormatHex:
		return formatHex(colours, opts.Preview), nil
	case FormatJSON:
		data, err := colour.ToJSON(path, colours)
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case FormatTable:
		return formatTable(colours), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: %v)", opts.Format, ValidFormats())
	}
}

// formatText writes a header line and one numbered line per colour.
func formatText(path string, colours []colour.DominantColour, preview bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dominant colours for %s:\n", path)
	for i, c := range colours {
		if preview {
			sb.WriteString(colour.Swatch(c.RGB, 0) + " ")
		}
		fmt.Fprintf(&sb, "%d. %s (RGB: %d,%d,%d) - Count: %d\n",
			i+1, c.Hex(), c.RGB.R, c.RGB.G, c.RGB.B, c.Count)
	}
	return sb.String()
}

// formatHex writes one hex code per line.
func formatHex(colours []colour.DominantColour, preview bool) string {
	var sb strings.Builder
	for _, c := range colours {
		if preview {
			sb.WriteString(colour.Swatch(c.RGB, 0) + " ")
		}
		sb.WriteString(c.Hex() + "\n")
	}
	return sb.String()
}

// formatTable renders the colours with their share of the sampled pixels.
func formatTable(colours []colour.DominantColour) string {
	const samples = colour.SampleSize * colour.SampleSize

	table := NewTable([]string{"RANK", "HEX", "RGB", "COUNT", "SHARE"})
	table.AlignRight(0)
	table.AlignRight(3)
	table.AlignRight(4)
	for i, c := range colours {
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			c.Hex(),
			fmt.Sprintf("%d,%d,%d", c.RGB.R, c.RGB.G, c.RGB.B),
			strconv.Itoa(c.Count),
			fmt.Sprintf("%.1f%%", float64(c.Count)*100/samples),
		})
	}
	return table.Render()
}
