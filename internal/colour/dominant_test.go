package colour

import (
	"image"
	"image/color"
	"testing"
)

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// stripedImage returns an image made of equal-width vertical stripes, one per colour.
func stripedImage(stripeWidth, h int, colours ...color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, stripeWidth*len(colours), h))
	for i, c := range colours {
		for y := 0; y < h; y++ {
			for x := i * stripeWidth; x < (i+1)*stripeWidth; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func sumCounts(colours []DominantColour) int {
	total := 0
	for _, c := range colours {
		total += c.Count
	}
	return total
}

func TestDominantExtractorSolidRed(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{R: 255, A: 255})

	for _, r := range ValidResamplers() {
		t.Run(string(r), func(t *testing.T) {
			colours, err := NewDominantExtractor(r).Extract(img, 5)
			if err != nil {
				t.Fatalf("Extract() error: %v", err)
			}
			if len(colours) != 1 {
				t.Fatalf("Extract() returned %d colours, want 1: %+v", len(colours), colours)
			}
			if colours[0].Hex() != "#ff0000" {
				t.Errorf("Hex() = %s, want #ff0000", colours[0].Hex())
			}
			if colours[0].Count != SampleSize*SampleSize {
				t.Errorf("Count = %d, want %d", colours[0].Count, SampleSize*SampleSize)
			}
		})
	}
}

func TestDominantExtractorHalves(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	img := stripedImage(5, 10, red, blue)

	colours, err := NewDominantExtractor(ResampleNearest).Extract(img, 5)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(colours) != 2 {
		t.Fatalf("Extract() returned %d colours, want 2", len(colours))
	}
	// Equal counts: the colour seen first in raster order comes first.
	if colours[0].Hex() != "#ff0000" || colours[1].Hex() != "#0000ff" {
		t.Errorf("unexpected order: %s, %s", colours[0].Hex(), colours[1].Hex())
	}
	for _, c := range colours {
		if c.Count != SampleSize*SampleSize/2 {
			t.Errorf("%s Count = %d, want %d", c.Hex(), c.Count, SampleSize*SampleSize/2)
		}
	}
}

func TestDominantExtractorFewerColoursThanRequested(t *testing.T) {
	img := stripedImage(1, 1,
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{G: 255, A: 255},
		color.NRGBA{B: 255, A: 255},
	)

	colours, err := NewDominantExtractor(ResampleNearest).Extract(img, 5)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(colours) != 3 {
		t.Fatalf("Extract() returned %d colours, want 3", len(colours))
	}
	if got := sumCounts(colours); got != SampleSize*SampleSize {
		t.Errorf("sum of counts = %d, want %d", got, SampleSize*SampleSize)
	}
}

func TestDominantExtractorCountsBounded(t *testing.T) {
	// A gradient resized with a smoothing kernel has many distinct colours.
	img := image.NewNRGBA(image.Rect(0, 0, 97, 61))
	for y := 0; y < 61; y++ {
		for x := 0; x < 97; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 2), G: uint8(y * 4), B: 77, A: 255})
		}
	}

	e := NewDominantExtractor(ResampleCatmullRom)
	table, err := e.Table(img)
	if err != nil {
		t.Fatalf("Table() error: %v", err)
	}
	if table.Total() != SampleSize*SampleSize {
		t.Errorf("Total() = %d, want %d", table.Total(), SampleSize*SampleSize)
	}

	top, err := e.Extract(img, 5)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("Extract() returned %d colours, want 5", len(top))
	}
	if got := sumCounts(top); got > SampleSize*SampleSize {
		t.Errorf("sum of counts = %d, exceeds %d", got, SampleSize*SampleSize)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Count > top[i-1].Count {
			t.Errorf("colours not in descending order at %d: %d > %d", i, top[i].Count, top[i-1].Count)
		}
	}

	all, err := e.Extract(img, table.Len())
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if got := sumCounts(all); got != SampleSize*SampleSize {
		t.Errorf("sum of all counts = %d, want %d", got, SampleSize*SampleSize)
	}
}

func TestDominantExtractorDropsAlpha(t *testing.T) {
	img := solidImage(4, 4, color.NRGBA{G: 255, A: 0})

	colours, err := NewDominantExtractor(ResampleNearest).Extract(img, 5)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(colours) != 1 || colours[0].Hex() != "#00ff00" {
		t.Errorf("Extract() = %+v, want single #00ff00", colours)
	}
}

func TestDominantExtractorNonPositiveCount(t *testing.T) {
	img := solidImage(3, 3, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	for _, n := range []int{0, -1} {
		colours, err := NewDominantExtractor("").Extract(img, n)
		if err != nil {
			t.Fatalf("Extract(%d) error: %v", n, err)
		}
		if len(colours) != 0 {
			t.Errorf("Extract(%d) returned %d colours, want 0", n, len(colours))
		}
	}
}

func TestDominantExtractorErrors(t *testing.T) {
	e := NewDominantExtractor(ResampleNearest)

	if _, err := e.Extract(nil, 5); err == nil {
		t.Error("expected error for nil image")
	}
	if _, err := e.Extract(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 5); err == nil {
		t.Error("expected error for empty image")
	}
	if _, err := NewDominantExtractor("sinc").Extract(solidImage(1, 1, color.Black), 1); err == nil {
		t.Error("expected error for unknown resampler")
	}
}

func TestResize(t *testing.T) {
	img := solidImage(300, 40, color.White)

	got, err := Resize(img, SampleSize, ResampleBilinear)
	if err != nil {
		t.Fatalf("Resize() error: %v", err)
	}
	if got.Bounds().Dx() != SampleSize || got.Bounds().Dy() != SampleSize {
		t.Errorf("Resize() size = %v, want %dx%d", got.Bounds(), SampleSize, SampleSize)
	}

	if _, err := Resize(img, 0, ResampleBilinear); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestFlattenRGB(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	src.SetNRGBA(6, 5, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	got := FlattenRGB(src)

	if got.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("FlattenRGB() bounds = %v, want (0,0)-(2,1)", got.Bounds())
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("pixel 0 = %+v", c)
	}
	if c := got.NRGBAAt(1, 0); c != (color.NRGBA{R: 40, G: 50, B: 60, A: 255}) {
		t.Errorf("pixel 1 = %+v", c)
	}
}

func TestNewExtractor(t *testing.T) {
	tests := []struct {
		name    string
		config  ExtractorConfig
		wantErr bool
	}{
		{name: "default", config: DefaultExtractorConfig()},
		{name: "nearest", config: ExtractorConfig{Algorithm: AlgorithmDominant, Resampler: ResampleNearest}},
		{name: "negative count allowed", config: ExtractorConfig{Algorithm: AlgorithmDominant, ColorCount: -1}},
		{name: "unknown algorithm", config: ExtractorConfig{Algorithm: "kmeans"}, wantErr: true},
		{name: "unknown resampler", config: ExtractorConfig{Algorithm: AlgorithmDominant, Resampler: "lanczos"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewExtractor(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e == nil {
				t.Fatal("NewExtractor returned nil")
			}
		})
	}
}
