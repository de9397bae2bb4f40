package colour

import (
	"fmt"
	"image"
	"slices"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract returns up to count colours found in img, most significant first.
	Extract(img image.Image, count int) ([]DominantColour, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmDominant extracts the most frequent exact colours.
	AlgorithmDominant Algorithm = "dominant"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmDominant,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	return slices.Contains(ValidAlgorithms(), alg)
}

// NewExtractor creates a new Extractor based on the specified configuration.
func NewExtractor(config ExtractorConfig) (Extractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Algorithm {
	case AlgorithmDominant:
		return NewDominantExtractor(config.Resampler), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", config.Algorithm, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm  Algorithm
	Resampler  Resampler
	ColorCount int
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:  AlgorithmDominant,
		Resampler:  ResampleCatmullRom,
		ColorCount: 5,
	}
}

// Validate validates the extractor configuration.
// ColorCount is not checked; a non-positive count yields no colours.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if _, err := c.Resampler.scaler(); err != nil {
		return err
	}
	return nil
}
