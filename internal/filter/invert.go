package filter

import "github.com/anthonynsimon/bild/effect"

// Invert replaces every color channel with its complement (255 - value).
// Applying Invert twice restores the original image. A Tone input is
// promoted to FullColor first.
func Invert(r *Raster) *Raster {
	return fullColor(effect.Invert(r.Promote().rgb))
}
