// Package mask cuts images into circles (ellipses for non-square inputs)
// with transparent corners.
package mask

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Opacity values used in masks.
const (
	Transparent uint8 = 0
	Opaque      uint8 = 255
)

// InEllipse reports whether pixel (x, y) lies inside the ellipse inscribed
// in a w x h box anchored at the origin. A pixel is inside when its centre
// is on or within the ellipse.
func InEllipse(x, y, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}

	rx := float64(w) / 2
	ry := float64(h) / 2
	dx := (float64(x) + 0.5 - rx) / rx
	dy := (float64(y) + 0.5 - ry) / ry
	return dx*dx+dy*dy <= 1
}

// NewEllipseMask returns an alpha mask the size of r, fully transparent
// except for the ellipse inscribed in r, which is fully opaque.
// The mask shares r's origin so it can be used directly with images bounded by r.
func NewEllipseMask(r image.Rectangle) *image.Alpha {
	m := image.NewAlpha(r)
	w, h := r.Dx(), r.Dy()

	for y := 0; y < h; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		for x := range row {
			if InEllipse(x, y, w, h) {
				row[x] = Opaque
			}
		}
	}
	return m
}

// Apply copies src onto a fully transparent canvas of the same size,
// restricted by m. Where m is opaque the source pixel is copied unchanged;
// elsewhere the canvas stays transparent. The result is anchored at the origin.
func Apply(src image.Image, m *image.Alpha) *image.NRGBA {
	b := src.Bounds()
	// A new NRGBA is zeroed, i.e. fully transparent.
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.DrawMask(canvas, canvas.Bounds(), toNRGBA(src), image.Point{}, m, m.Bounds().Min, xdraw.Src)
	return canvas
}

// Circle masks src to the ellipse inscribed in its bounds.
func Circle(src image.Image) *image.NRGBA {
	return Apply(src, NewEllipseMask(src.Bounds()))
}

// toNRGBA converts src to an origin-anchored *image.NRGBA so compositing
// works on straight (non-premultiplied) colour and source RGB survives unchanged.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}
