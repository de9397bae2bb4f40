// Fixture generator for trying the tools by hand:
//
//	go run ./testdata/generate_test_image.go
//	circlefavicon -i testdata/favicon.ico -o testdata/favicon-round.png
//	dominantcolours testdata/blocks.png
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// blockColours fill blocks.png. Each block covers a different share of the
// image so dominantcolours has a well defined ranking.
var blockColours = []struct {
	c    color.NRGBA
	rows int
}{
	{color.NRGBA{R: 255, A: 255}, 40},
	{color.NRGBA{G: 255, A: 255}, 30},
	{color.NRGBA{B: 255, A: 255}, 20},
	{color.NRGBA{R: 255, G: 128, A: 255}, 6},
	{color.NRGBA{R: 128, G: 128, B: 128, A: 255}, 4},
}

func main() {
	if err := writePNG("testdata/blocks.png", blocks(200)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := writeICO("testdata/favicon.ico", badge(64)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Fixtures written to testdata/")
}

// blocks returns a size x size image of horizontal bands whose heights are
// proportional to blockColours rows.
func blocks(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	y := 0
	for _, b := range blockColours {
		end := y + b.rows*size/100
		for ; y < end && y < size; y++ {
			for x := 0; x < size; x++ {
				img.SetNRGBA(x, y, b.c)
			}
		}
	}
	return img
}

// badge returns a square icon with a dark frame and a light centre, so
// masking it visibly removes the corners.
func badge(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	frame := color.NRGBA{R: 32, G: 48, B: 96, A: 255}
	fill := color.NRGBA{R: 240, G: 200, B: 64, A: 255}
	border := size / 8
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := fill
			if x < border || y < border || x >= size-border || y >= size-border {
				c = frame
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

func writeICO(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return ico.Encode(f, img)
}
