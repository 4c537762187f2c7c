// Package imageio decodes input images into pipeline rasters and encodes
// results back to disk. The container formats themselves are handled by the
// imaging library; supported formats include PNG, JPEG, GIF, TIFF, and BMP,
// selected by file extension on save.
package imageio

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironvale/retropix/internal/filter"
)

// Decode reads an image file and returns it as a FullColor raster.
func Decode(path string) (*filter.Raster, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return filter.NewRaster(img), nil
}

// Encode writes a raster to a file, with the format chosen by the path's
// extension. A Tone raster is written as an 8-bit grayscale image, a
// FullColor raster with three channels. Failures (unwritable path,
// unsupported extension) are returned as errors, never panics.
func Encode(r *filter.Raster, path string) error {
	if err := imaging.Save(r.Image(), path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
