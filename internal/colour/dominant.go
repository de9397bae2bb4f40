package colour

import (
	"fmt"
	"image"
)

// DominantExtractor reports the most frequent exact colours of an image.
// The image is flattened to RGB and resized to SampleSize x SampleSize
// before counting, trading accuracy for a fixed amount of work.
type DominantExtractor struct {
	resampler Resampler
}

// NewDominantExtractor creates a DominantExtractor using the given resampler.
// An empty resampler selects Catmull-Rom.
func NewDominantExtractor(r Resampler) *DominantExtractor {
	if r == "" {
		r = ResampleCatmullRom
	}
	return &DominantExtractor{resampler: r}
}

// Table builds the frequency table for img.
func (e *DominantExtractor) Table(img image.Image) (*FrequencyTable, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("no pixels found in image")
	}

	sample, err := Resize(FlattenRGB(img), SampleSize, e.resampler)
	if err != nil {
		return nil, fmt.Errorf("failed to resize image: %w", err)
	}

	table := NewFrequencyTable()
	table.AddImage(sample)
	return table, nil
}

// Extract returns the count most frequent colours of img.
func (e *DominantExtractor) Extract(img image.Image, count int) ([]DominantColour, error) {
	table, err := e.Table(img)
	if err != nil {
		return nil, err
	}
	return table.Top(count), nil
}
