package sprites

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/bombjack/internal/core"
)

var testLayout = core.SheetLayout{
	Width:  200,
	Height: 100,
	Regions: []core.SheetRegion{
		{Name: "background", X: 0, Y: 0, W: 100, H: 100},
		{Name: "bomb.live", X: 110, Y: 10, W: 30, H: 40},
		{Name: "bomb.collected", X: 150, Y: 10, W: 30, H: 40},
		{Name: "jack.idle", X: 110, Y: 55, W: 40, H: 40},
		{Name: "platform", X: 155, Y: 60, W: 40, H: 20},
	},
}

func TestPlaceholderSwatches(t *testing.T) {
	img := Placeholder(testLayout)

	if got := img.Bounds(); got != image.Rect(0, 0, 200, 100) {
		t.Fatalf("bounds = %v, expected 200x100", got)
	}

	for _, r := range testLayout.Regions {
		rect := RegionRect(r)
		// Bottom-right interior pixel sits below the label and inside the border
		got := img.RGBAAt(rect.Max.X-2, rect.Max.Y-2)
		if want := swatchColor(r.Name); got != want {
			t.Errorf("%s interior = %v, expected %v", r.Name, got, want)
		}
		if r.Name == "background" {
			continue
		}
		if got := img.RGBAAt(rect.Min.X, rect.Max.Y-1); got != darken(swatchColor(r.Name)) {
			t.Errorf("%s border = %v, expected darkened fill", r.Name, got)
		}
	}

	// Uncovered sheet area stays transparent
	if got := img.RGBAAt(199, 0); got.A != 0 {
		t.Errorf("uncovered pixel = %v, expected transparent", got)
	}
}

func TestPlaceholderLabelsStayInside(t *testing.T) {
	layout := core.SheetLayout{
		Width:   40,
		Height:  20,
		Regions: []core.SheetRegion{{Name: "jack.upright", X: 0, Y: 0, W: 10, H: 20}},
	}
	img := Placeholder(layout)

	for y := 0; y < 20; y++ {
		for x := 10; x < 40; x++ {
			if img.RGBAAt(x, y).A != 0 {
				t.Fatalf("label leaked outside its region at (%d,%d)", x, y)
			}
		}
	}
}

func TestShortName(t *testing.T) {
	tests := map[string]string{
		"jack.upleft": "upleft",
		"bomb.live":   "live",
		"platform":    "platform",
	}
	for in, want := range tests {
		if got := shortName(in); got != want {
			t.Errorf("shortName(%q) = %q, expected %q", in, got, want)
		}
	}
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	img, err := Load(writePNG(t, 200, 100), testLayout)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("width = %d, expected 200", img.Bounds().Dx())
	}

	if _, err := Load(writePNG(t, 100, 100), testLayout); !errors.Is(err, ErrSheetSize) {
		t.Errorf("expected ErrSheetSize for a narrow sheet, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png"), testLayout); err == nil {
		t.Error("expected error for a missing sheet")
	}
}
