package colour

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// SampleSize is the edge length of the square image that colours are
// counted on. Every input is resized to SampleSize x SampleSize.
const SampleSize = 150

// Resampler names an interpolation kernel used when resizing.
type Resampler string

const (
	// ResampleCatmullRom is a bicubic kernel. It is the default.
	ResampleCatmullRom Resampler = "catmullrom"

	// ResampleBilinear is a bilinear kernel.
	ResampleBilinear Resampler = "bilinear"

	// ResampleApproxBilinear is a fast approximation of bilinear.
	ResampleApproxBilinear Resampler = "approxbilinear"

	// ResampleNearest picks the nearest source pixel. Unlike the other
	// kernels it never introduces blended colours.
	ResampleNearest Resampler = "nearest"
)

// ValidResamplers returns the list of supported resamplers.
func ValidResamplers() []Resampler {
	return []Resampler{
		ResampleCatmullRom,
		ResampleBilinear,
		ResampleApproxBilinear,
		ResampleNearest,
	}
}

// scaler returns the x/image scaler for the resampler.
func (r Resampler) scaler() (xdraw.Scaler, error) {
	switch r {
	case ResampleCatmullRom, "":
		return xdraw.CatmullRom, nil
	case ResampleBilinear:
		return xdraw.BiLinear, nil
	case ResampleApproxBilinear:
		return xdraw.ApproxBiLinear, nil
	case ResampleNearest:
		return xdraw.NearestNeighbor, nil
	default:
		return nil, fmt.Errorf("unknown resampler: %s (valid resamplers: %v)", r, ValidResamplers())
	}
}

// FlattenRGB returns a copy of img with every pixel made fully opaque.
// Each pixel keeps its non-premultiplied RGB value; transparency is dropped.
func FlattenRGB(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 255
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return dst
}

// Resize scales img to exactly size x size, ignoring aspect ratio.
func Resize(img image.Image, size int, r Resampler) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("resize target must be at least 1, got %d", size)
	}

	s, err := r.scaler()
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	s.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}
