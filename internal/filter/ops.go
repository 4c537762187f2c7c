package filter

import "fmt"

// OpKind identifies a pipeline operation.
type OpKind int

const (
	// OpPalette quantizes every pixel to the nearest active-palette color,
	// optionally loading a new palette from a JSON file first.
	OpPalette OpKind = iota
	// OpPixelate applies block pixelation with a positive block size.
	OpPixelate
	// OpDither applies Floyd-Steinberg dithering, producing a Tone raster.
	OpDither
	// OpInvert inverts every color channel (255 - value).
	OpInvert
)

// Operation is one step of the pipeline. Kind selects the operation;
// BlockSize applies only to OpPixelate and PaletteSource only to OpPalette.
type Operation struct {
	Kind          OpKind
	BlockSize     int
	PaletteSource string
}

// String returns a short description for logging.
func (op Operation) String() string {
	switch op.Kind {
	case OpPalette:
		if op.PaletteSource != "" {
			return fmt.Sprintf("palette(%s)", op.PaletteSource)
		}
		return "palette"
	case OpPixelate:
		return fmt.Sprintf("pixelate(%d)", op.BlockSize)
	case OpDither:
		return "floyd-steinberg"
	case OpInvert:
		return "invert"
	}
	return fmt.Sprintf("unknown(%d)", int(op.Kind))
}
