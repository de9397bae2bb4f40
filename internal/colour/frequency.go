package colour

import (
	"image"
	"sort"
)

// FrequencyTable counts exact RGB occurrences.
// Entries remember the order in which each colour was first seen, which is
// used to order colours with equal counts.
type FrequencyTable struct {
	index   map[RGB]int
	entries []DominantColour
	total   int
}

// NewFrequencyTable creates an empty FrequencyTable.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		index: make(map[RGB]int),
	}
}

// Add records one occurrence of c.
func (t *FrequencyTable) Add(c RGB) {
	t.total++
	if i, ok := t.index[c]; ok {
		t.entries[i].Count++
		return
	}
	t.index[c] = len(t.entries)
	t.entries = append(t.entries, DominantColour{RGB: c, Count: 1})
}

// AddImage records every pixel of img in raster order.
// Alpha is ignored; callers flatten the image first.
func (t *FrequencyTable) AddImage(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i+3 < len(row); i += 4 {
			t.Add(RGB{R: row[i], G: row[i+1], B: row[i+2]})
		}
	}
}

// Len returns the number of distinct colours.
func (t *FrequencyTable) Len() int {
	return len(t.entries)
}

// Total returns the number of recorded pixels.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Count returns the number of occurrences of c.
func (t *FrequencyTable) Count(c RGB) int {
	if i, ok := t.index[c]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Top returns the n most frequent colours, highest count first.
// Colours with equal counts keep first-seen order. A non-positive n yields
// an empty slice; an n larger than Len yields every colour.
func (t *FrequencyTable) Top(n int) []DominantColour {
	if n <= 0 {
		return []DominantColour{}
	}

	sorted := make([]DominantColour, len(t.entries))
	copy(sorted, t.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
