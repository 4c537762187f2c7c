package filter

import (
	"fmt"
	"log/slog"

	"github.com/ironvale/retropix/internal/palette"
)

// Pipeline interprets an ordered list of Operations over a single image.
//
// The pipeline is a small state machine over the two representations:
//
//	state      operation                  action                        next state
//	Tone       Palette/Pixelate/Invert    promote, then apply           FullColor
//	FullColor  Palette/Pixelate/Invert    apply                         FullColor
//	FullColor  Dither                     luma extraction + diffusion   Tone
//	Tone       Dither                     diffusion                     Tone
//
// Operations run strictly in the given order, each exactly once per
// occurrence. The palette Store is an explicit collaborator so separate
// pipelines can share one active palette.
type Pipeline struct {
	store *palette.Store
	ops   []Operation
}

// NewPipeline creates a pipeline over the given operations. store must not
// be nil; it supplies the active palette for every OpPalette step.
func NewPipeline(store *palette.Store, ops []Operation) *Pipeline {
	return &Pipeline{store: store, ops: ops}
}

// Run applies the pipeline to a raster and returns the transformed result.
//
// A degenerate pixelation block size aborts the pipeline with an error. A
// palette that fails to load only logs a warning and the step proceeds with
// the currently active palette.
func (p *Pipeline) Run(r *Raster) (*Raster, error) {
	for _, op := range p.ops {
		slog.Info("applying operation", "op", op.String(), "state", r.Kind().String())

		switch op.Kind {
		case OpPalette:
			if op.PaletteSource != "" {
				p.loadPalette(op.PaletteSource)
			}
			r = Quantize(r, p.store)
		case OpPixelate:
			pixelated, err := Pixelate(r, op.BlockSize)
			if err != nil {
				return nil, fmt.Errorf("pixelate: %w", err)
			}
			r = pixelated
		case OpDither:
			r = Dither(r)
		case OpInvert:
			r = Invert(r)
		default:
			return nil, fmt.Errorf("unknown operation %q", op.String())
		}
	}
	return r, nil
}

// loadPalette activates a palette from a JSON file. Load failures are
// recoverable: the currently active palette stays in effect.
func (p *Pipeline) loadPalette(source string) {
	pal, err := palette.Load(source)
	if err != nil {
		slog.Warn("palette load failed, keeping active palette", "source", source, "error", err)
		return
	}
	slog.Debug("palette loaded", "name", pal.Name, "colors", len(pal.Colors))
	p.store.SetActive(pal.Colors)
}
