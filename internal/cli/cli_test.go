package cli

import (
	"strings"
	"testing"

	"github.com/ironvale/retropix/internal/filter"
)

func TestParse_SingleOperations(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want filter.Operation
	}{
		{"palette", "-pal", filter.Operation{Kind: filter.OpPalette}},
		{"palette from file", "-pal=colors.json", filter.Operation{Kind: filter.OpPalette, PaletteSource: "colors.json"}},
		{"pixelate default", "-pix", filter.Operation{Kind: filter.OpPixelate, BlockSize: 8}},
		{"pixelate sized", "-pix=4", filter.Operation{Kind: filter.OpPixelate, BlockSize: 4}},
		{"dither", "-floyd", filter.Operation{Kind: filter.OpDither}},
		{"invert", "-rev", filter.Operation{Kind: filter.OpInvert}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Parse([]string{tt.arg, "in.png", "out.png"})
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(inv.Ops) != 1 || inv.Ops[0] != tt.want {
				t.Errorf("Ops = %v, want [%v]", inv.Ops, tt.want)
			}
			if inv.InputPath != "in.png" || inv.OutputPath != "out.png" {
				t.Errorf("paths = %q, %q", inv.InputPath, inv.OutputPath)
			}
		})
	}
}

func TestParse_PixPalExpandsToTwoOperations(t *testing.T) {
	inv, err := Parse([]string{"-pixpal", "in.png", "out.png"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []filter.Operation{
		{Kind: filter.OpPixelate, BlockSize: 8},
		{Kind: filter.OpPalette},
	}
	if len(inv.Ops) != 2 || inv.Ops[0] != want[0] || inv.Ops[1] != want[1] {
		t.Errorf("Ops = %v, want %v", inv.Ops, want)
	}
}

func TestParse_PreservesOperationOrder(t *testing.T) {
	inv, err := Parse([]string{"-pal", "-pix=4", "-floyd", "-rev", "-pal", "in.png", "out.png"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	wantKinds := []filter.OpKind{
		filter.OpPalette,
		filter.OpPixelate,
		filter.OpDither,
		filter.OpInvert,
		filter.OpPalette,
	}
	if len(inv.Ops) != len(wantKinds) {
		t.Fatalf("got %d ops, want %d", len(inv.Ops), len(wantKinds))
	}
	for i, k := range wantKinds {
		if inv.Ops[i].Kind != k {
			t.Errorf("Ops[%d].Kind = %v, want %v", i, inv.Ops[i].Kind, k)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"only one path", []string{"out.png"}},
		{"no operations", []string{"in.png", "out.png"}},
		{"unknown token", []string{"-sharpen", "in.png", "out.png"}},
		{"zero pixel size", []string{"-pix=0", "in.png", "out.png"}},
		{"negative pixel size", []string{"-pix=-3", "in.png", "out.png"}},
		{"non-numeric pixel size", []string{"-pix=abc", "in.png", "out.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args); err == nil {
				t.Errorf("Parse(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestUsage_MentionsAllTokens(t *testing.T) {
	usage := Usage()
	for _, token := range []string{"-pal", "-pixpal", "-pix", "-floyd", "-rev"} {
		if !strings.Contains(usage, token) {
			t.Errorf("usage text is missing %s", token)
		}
	}
}
