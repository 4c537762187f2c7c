package filter

import (
	"image"
	"image/color"
)

// Dither converts a raster to Tone via Floyd-Steinberg error diffusion.
//
// A FullColor input is first reduced to a luma plane; a Tone input is
// diffused directly. Every output pixel is exactly 0 or 255.
//
// # Luma Extraction
//
// luma = floor(0.299*r + 0.587*g + 0.114*b), computed in scaled integer
// arithmetic ((299r + 587g + 114b) / 1000) so the floor is exact: a flat
// gray pixel (v,v,v) always maps to luma v.
//
// # Error Diffusion
//
// A single raster-order pass (row-major, left-to-right, top-to-bottom) over
// a mutable copy of the luma plane. Each pixel is thresholded at 128 to 0 or
// 255 and its error (old - new) is distributed to the not-yet-visited
// neighbors with the classic weights:
//
//	          x    7/16
//	3/16    5/16   1/16
//
// Each share uses truncating integer division (err*k/16), is added to the
// neighbor's current, possibly already-adjusted value, and clamped to
// [0, 255]. Neighbors outside the image are skipped; their share of the
// error is dropped, not renormalized.
func Dither(r *Raster) *Raster {
	var plane *image.Gray
	if r.kind == FullColor {
		plane = lumaPlane(r.rgb)
	} else {
		plane = cloneGray(r.gray)
	}
	diffuse(plane)
	return tone(plane)
}

// lumaPlane extracts the single-channel brightness plane of an RGBA image.
func lumaPlane(img *image.RGBA) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			luma := (299*int(px.R) + 587*int(px.G) + 114*int(px.B)) / 1000
			out.SetGray(x, y, color.Gray{Y: uint8(luma)})
		}
	}
	return out
}

func cloneGray(img *image.Gray) *image.Gray {
	out := image.NewGray(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}

// diffuse runs Floyd-Steinberg error diffusion in place.
func diffuse(img *image.Gray) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := int(img.GrayAt(x, y).Y)
			var quantized int
			if old >= 128 {
				quantized = 255
			}
			err := old - quantized
			img.SetGray(x, y, color.Gray{Y: uint8(quantized)})

			if x+1 < w {
				spread(img, x+1, y, err*7/16)
			}
			if y+1 < h {
				if x > 0 {
					spread(img, x-1, y+1, err*3/16)
				}
				spread(img, x, y+1, err*5/16)
				if x+1 < w {
					spread(img, x+1, y+1, err*1/16)
				}
			}
		}
	}
}

// spread adds an error share to a pixel, clamping to [0, 255].
func spread(img *image.Gray, x, y, delta int) {
	v := int(img.GrayAt(x, y).Y) + delta
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	img.SetGray(x, y, color.Gray{Y: uint8(v)})
}
