package filter

import (
	"fmt"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
)

// Pixelate applies block pixelation: the image is downsampled by
// nearest-neighbor sampling to (width/blockSize, height/blockSize) and then
// upsampled, again nearest-neighbor, back to the original dimensions. The
// result has the same dimensions as the input with blockSize-sized uniform
// blocks. A Tone input is promoted to FullColor first.
//
// blockSize must be positive and strictly smaller than both image
// dimensions; otherwise the intermediate raster would degenerate and an
// error is returned without touching the image.
func Pixelate(r *Raster, blockSize int) (*Raster, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", blockSize)
	}

	src := r.Promote().rgb
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if blockSize >= w || blockSize >= h {
		return nil, fmt.Errorf("block size %d is too large for a %dx%d image", blockSize, w, h)
	}

	small := imaging.Resize(src, w/blockSize, h/blockSize, imaging.NearestNeighbor)
	big := imaging.Resize(small, w, h, imaging.NearestNeighbor)
	return fullColor(clone.AsRGBA(big)), nil
}
