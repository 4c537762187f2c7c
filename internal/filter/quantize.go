package filter

import (
	"github.com/anthonynsimon/bild/clone"

	"github.com/ironvale/retropix/internal/palette"
)

// Quantize returns a FullColor raster where every pixel has been replaced by
// the nearest entry of the store's active palette. A Tone input is promoted
// to FullColor first.
//
// Applying Quantize twice with the same palette is idempotent: after the
// first pass every pixel already equals a palette entry, so the nearest
// entry to each pixel is itself.
func Quantize(r *Raster, store *palette.Store) *Raster {
	out := clone.AsRGBA(r.Promote().rgb)
	b := out.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := out.RGBAAt(x, y)
			n := store.Nearest(palette.Color{R: px.R, G: px.G, B: px.B})
			px.R, px.G, px.B = n.R, n.G, n.B
			out.SetRGBA(x, y, px)
		}
	}
	return fullColor(out)
}
