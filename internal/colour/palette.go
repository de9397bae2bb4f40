// Package colour provides dominant colour extraction and colour formatting.
package colour

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image/color"
	"strings"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB, discarding alpha.
// Non-premultiplied channels are used so translucent pixels keep their hue.
func ToRGB(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ParseHex parses a "#rrggbb" or "rrggbb" string into an RGB value.
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 6 hex digits", s)
	}

	b, err := hex.DecodeString(raw)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

// DominantColour is a colour together with the number of sampled pixels
// that had exactly that value.
type DominantColour struct {
	RGB   RGB
	Count int
}

// Hex returns the colour's hex string.
func (d DominantColour) Hex() string {
	return d.RGB.Hex()
}

// ColourJSON represents a dominant colour in JSON output format.
type ColourJSON struct {
	Rank  int    `json:"rank"`
	Hex   string `json:"hex"`
	RGB   RGB    `json:"rgb"`
	Count int    `json:"count"`
}

// ReportJSON represents an extraction result in JSON format.
type ReportJSON struct {
	Source  string       `json:"source"`
	Samples int          `json:"samples"`
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts an extraction result to indented JSON.
func ToJSON(source string, colours []DominantColour) ([]byte, error) {
	out := ReportJSON{
		Source:  source,
		Samples: SampleSize * SampleSize,
		Count:   len(colours),
		Colours: make([]ColourJSON, len(colours)),
	}
	for i, c := range colours {
		out.Colours[i] = ColourJSON{
			Rank:  i + 1,
			Hex:   c.Hex(),
			RGB:   c.RGB,
			Count: c.Count,
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

// HexCodes returns the hex strings of the given colours, in order.
func HexCodes(colours []DominantColour) []string {
	codes := make([]string, len(colours))
	for i, c := range colours {
		codes[i] = c.Hex()
	}
	return codes
}
