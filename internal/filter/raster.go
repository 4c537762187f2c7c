package filter

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// Kind identifies the pixel representation of a Raster.
type Kind int

const (
	// FullColor is the three-channel RGB representation.
	FullColor Kind = iota
	// Tone is the single-channel representation produced by dithering.
	Tone
)

// String returns the representation name for logging.
func (k Kind) String() string {
	if k == Tone {
		return "tone"
	}
	return "full-color"
}

// Raster is an image in exactly one of two representations: FullColor
// (backed by *image.RGBA) or Tone (backed by *image.Gray). The zero-origin
// buffer for the current representation is always non-nil; the other is nil.
type Raster struct {
	kind Kind
	rgb  *image.RGBA
	gray *image.Gray
}

// NewRaster wraps a decoded image as a FullColor raster, converting it to a
// zero-origin RGBA buffer.
func NewRaster(img image.Image) *Raster {
	return &Raster{kind: FullColor, rgb: clone.AsRGBA(img)}
}

func fullColor(img *image.RGBA) *Raster {
	return &Raster{kind: FullColor, rgb: img}
}

func tone(img *image.Gray) *Raster {
	return &Raster{kind: Tone, gray: img}
}

// Kind returns the current representation.
func (r *Raster) Kind() Kind {
	return r.kind
}

// Bounds returns the raster dimensions.
func (r *Raster) Bounds() image.Rectangle {
	return r.Image().Bounds()
}

// Image returns the underlying buffer for the current representation, for
// encoding or inspection.
func (r *Raster) Image() image.Image {
	if r.kind == Tone {
		return r.gray
	}
	return r.rgb
}

// RGB returns the FullColor buffer, or nil if the raster is Tone.
func (r *Raster) RGB() *image.RGBA {
	return r.rgb
}

// Gray returns the Tone buffer, or nil if the raster is FullColor.
func (r *Raster) Gray() *image.Gray {
	return r.gray
}

// Promote converts a Tone raster to FullColor by replicating the single
// channel into all three color channels (r = g = b = value). A FullColor
// raster is returned unchanged.
func (r *Raster) Promote() *Raster {
	if r.kind == FullColor {
		return r
	}

	b := r.gray.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := r.gray.GrayAt(x, y).Y
			out.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return fullColor(out)
}
