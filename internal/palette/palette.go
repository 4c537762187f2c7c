package palette

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a named, ordered collection of colors loaded from an external
// resource.
//
// Order matters: nearest-color search breaks distance ties in favor of the
// earliest entry, so two palettes with the same colors in different orders
// can quantize differently.
type Palette struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Colors      []Color `json:"colors"`
}

// paletteFile is the on-disk JSON shape. Color entries are decoded leniently
// so a file may mix [r,g,b] triples with "#RRGGBB" hex strings.
type paletteFile struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Colors      []json.RawMessage `json:"colors"`
}

// Load reads a palette from a JSON file.
//
// Each entry in the "colors" array is either a three-element [r, g, b] array
// with components 0-255, or a "#RRGGBB" hex string.
//
// Returns an error if the file cannot be read, the JSON is malformed, any
// color entry is invalid, or the color list is empty. Callers are expected
// to treat a load failure as recoverable and keep their current palette.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var pf paletteFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse palette file: %w", err)
	}

	if len(pf.Colors) == 0 {
		return nil, fmt.Errorf("palette %q contains no colors", pf.Name)
	}

	colors := make([]Color, 0, len(pf.Colors))
	for i, raw := range pf.Colors {
		c, err := decodeColor(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid color at index %d: %w", i, err)
		}
		colors = append(colors, c)
	}

	return &Palette{
		Name:        pf.Name,
		Description: pf.Description,
		Colors:      colors,
	}, nil
}

// decodeColor accepts either a [r,g,b] triple or a "#RRGGBB" hex string.
func decodeColor(raw json.RawMessage) (Color, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var hex string
		if err := json.Unmarshal(raw, &hex); err != nil {
			return Color{}, err
		}
		parsed, err := colorful.Hex(hex)
		if err != nil {
			return Color{}, fmt.Errorf("bad hex color %q: %w", hex, err)
		}
		r, g, b := parsed.RGB255()
		return Color{R: r, G: g, B: b}, nil
	}

	var triple [3]uint8
	if err := json.Unmarshal(raw, &triple); err != nil {
		return Color{}, fmt.Errorf("expected [r,g,b] triple or hex string: %w", err)
	}
	return Color{R: triple[0], G: triple[1], B: triple[2]}, nil
}
