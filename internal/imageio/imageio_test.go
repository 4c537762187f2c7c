package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironvale/retropix/internal/filter"
)

// writeTestPNG writes a flat-color PNG and returns its path.
func writeTestPNG(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestDecode(t *testing.T) {
	path := writeTestPNG(t, 4, 3, color.RGBA{200, 100, 50, 255})

	r, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if r.Kind() != filter.FullColor {
		t.Errorf("Kind = %v, want FullColor", r.Kind())
	}
	if b := r.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("Bounds = %v, want 4x3", b)
	}
	if got := r.RGB().RGBAAt(0, 0); got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("pixel (0,0) = %v", got)
	}
}

func TestDecode_MissingFile(t *testing.T) {
	if _, err := Decode(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Decode of missing file succeeded, want error")
	}
}

func TestDecode_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Decode(path); err == nil {
		t.Error("Decode of corrupt file succeeded, want error")
	}
}

func TestEncode_FullColorRoundTrip(t *testing.T) {
	src := writeTestPNG(t, 2, 2, color.RGBA{10, 20, 30, 255})
	r, err := Decode(src)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.png")
	if err := Encode(r, out); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	back, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode of written file failed: %v", err)
	}
	if got := back.RGB().RGBAAt(1, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("round-trip pixel = %v, want {10 20 30 255}", got)
	}
}

func TestEncode_ToneWritesGrayscale(t *testing.T) {
	src := writeTestPNG(t, 3, 3, color.RGBA{200, 200, 200, 255})
	r, err := Decode(src)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	dithered := filter.Dither(r)

	out := filepath.Join(t.TempDir(), "tone.png")
	if err := Encode(dithered, out); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("failed to open written file: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("written file is not valid PNG: %v", err)
	}
	if _, ok := decoded.(*image.Gray); !ok {
		t.Errorf("written image decoded as %T, want *image.Gray", decoded)
	}
}

func TestEncode_UnsupportedExtension(t *testing.T) {
	src := writeTestPNG(t, 2, 2, color.RGBA{0, 0, 0, 255})
	r, err := Decode(src)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if err := Encode(r, filepath.Join(t.TempDir(), "out.xyz")); err == nil {
		t.Error("Encode with unsupported extension succeeded, want error")
	}
}

func TestEncode_UnwritablePath(t *testing.T) {
	src := writeTestPNG(t, 2, 2, color.RGBA{0, 0, 0, 255})
	r, err := Decode(src)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "no-such-dir", "out.png")
	if err := Encode(r, out); err == nil {
		t.Error("Encode to missing directory succeeded, want error")
	}
}
