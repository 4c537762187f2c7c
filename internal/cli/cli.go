// Package cli parses command-line arguments into a pipeline invocation.
//
// The argument grammar is a sequence of operation tokens followed by two
// positional paths:
//
//	retropix [operations...] input-path output-path
//
// Operation tokens are order-significant and may repeat, so parsing is done
// by hand rather than with the flag package (which deduplicates flags and
// loses ordering).
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironvale/retropix/internal/filter"
)

// DefaultBlockSize is the pixelation block size used by the bare -pix and
// -pixpal tokens.
const DefaultBlockSize = 8

// Invocation is the parsed result of a command line: the ordered operation
// list plus the input and output image paths.
type Invocation struct {
	Ops        []filter.Operation
	InputPath  string
	OutputPath string
}

// Parse converts arguments (without the program name) into an Invocation.
//
// Recognized tokens, applied to the pipeline in the order given:
//
//	-pal        quantize to the active palette
//	-pal=FILE   load a JSON palette, then quantize
//	-pixpal     pixelate with block size 8, then quantize
//	-pix        pixelate with block size 8
//	-pix=N      pixelate with block size N (N > 0)
//	-floyd      Floyd-Steinberg dithering
//	-rev        invert colors
//
// The last two arguments are the input and output paths. Unknown tokens,
// missing paths, an empty operation list, or an invalid N are usage errors
// returned before any image is touched.
func Parse(args []string) (*Invocation, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("missing input and output paths")
	}

	inv := &Invocation{
		InputPath:  args[len(args)-2],
		OutputPath: args[len(args)-1],
	}

	for _, arg := range args[:len(args)-2] {
		switch {
		case arg == "-pal":
			inv.Ops = append(inv.Ops, filter.Operation{Kind: filter.OpPalette})
		case strings.HasPrefix(arg, "-pal="):
			inv.Ops = append(inv.Ops, filter.Operation{
				Kind:          filter.OpPalette,
				PaletteSource: strings.TrimPrefix(arg, "-pal="),
			})
		case arg == "-pixpal":
			inv.Ops = append(inv.Ops,
				filter.Operation{Kind: filter.OpPixelate, BlockSize: DefaultBlockSize},
				filter.Operation{Kind: filter.OpPalette},
			)
		case arg == "-pix":
			inv.Ops = append(inv.Ops, filter.Operation{Kind: filter.OpPixelate, BlockSize: DefaultBlockSize})
		case strings.HasPrefix(arg, "-pix="):
			sizeStr := strings.TrimPrefix(arg, "-pix=")
			size, err := strconv.Atoi(sizeStr)
			if err != nil || size <= 0 {
				return nil, fmt.Errorf("invalid pixel size %q: must be a positive integer", sizeStr)
			}
			inv.Ops = append(inv.Ops, filter.Operation{Kind: filter.OpPixelate, BlockSize: size})
		case arg == "-floyd":
			inv.Ops = append(inv.Ops, filter.Operation{Kind: filter.OpDither})
		case arg == "-rev":
			inv.Ops = append(inv.Ops, filter.Operation{Kind: filter.OpInvert})
		default:
			return nil, fmt.Errorf("unknown operation: %s", arg)
		}
	}

	if len(inv.Ops) == 0 {
		return nil, fmt.Errorf("no filter operations specified")
	}

	return inv, nil
}

// Usage returns the help text for the command line.
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage: retropix [operations...] input-path output-path\n")
	b.WriteString("\n")
	b.WriteString("Operations (applied in order, may repeat):\n")
	b.WriteString("  -pal        Quantize to the active palette\n")
	b.WriteString("  -pal=FILE   Load a JSON palette from FILE, then quantize\n")
	b.WriteString("  -pixpal     Pixelate (block size 8), then quantize\n")
	b.WriteString("  -pix        Pixelate with block size 8\n")
	b.WriteString("  -pix=N      Pixelate with block size N (N > 0)\n")
	b.WriteString("  -floyd      Floyd-Steinberg dithering\n")
	b.WriteString("  -rev        Invert colors\n")
	b.WriteString("\n")
	b.WriteString("Example: retropix -pix=4 -pal -floyd input.png output.png\n")
	return b.String()
}
