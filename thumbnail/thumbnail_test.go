package thumbnail

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y < h/2 {
				img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
			}
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	img, err := Decode(encodePNG(t, checker(8, 8)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.NRGBAAt(0, 0).R != 255 {
		t.Errorf("Unexpected image %v %v", img.Bounds(), img.NRGBAAt(0, 0))
	}

	if _, err := Decode([]byte("not an image")); !errors.Is(err, ErrDecode) {
		t.Errorf("Expected ErrDecode, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	if err := os.WriteFile(path, encodePNG(t, checker(4, 4)), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load failed: %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestToCellsHalfBlocks(t *testing.T) {
	cells := ToCells(checker(16, 16), 4, 2)
	if cells.Cols != 4 || cells.Rows != 2 || len(cells.Grid) != 8 {
		t.Fatalf("Unexpected grid %dx%d", cells.Cols, cells.Rows)
	}
	top := cells.At(1, 0)
	if top.Top.R < 200 || top.Top.B > 50 {
		t.Errorf("Top row should be red, got %v", top.Top)
	}
	bottom := cells.At(1, 1)
	if bottom.Bottom.B < 200 || bottom.Bottom.R > 50 {
		t.Errorf("Bottom row should be blue, got %v", bottom.Bottom)
	}
	if cells.At(9, 9) != (Cell{}) {
		t.Error("Out of range cell should be zero")
	}
	if empty := ToCells(checker(2, 2), 0, 3); len(empty.Grid) != 0 {
		t.Error("Zero size grid should be empty")
	}
}

func TestCoverKeepsCenter(t *testing.T) {
	// Wide source: left third green, middle white, right third green
	src := image.NewNRGBA(image.Rect(0, 0, 30, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 30; x++ {
			c := color.NRGBA{0, 255, 0, 255}
			if x >= 10 && x < 20 {
				c = color.NRGBA{255, 255, 255, 255}
			}
			src.SetNRGBA(x, y, c)
		}
	}
	dst := Cover(src, 4, 4)
	if c := dst.NRGBAAt(2, 2); c.R < 200 {
		t.Errorf("Square cover should crop to the white middle, got %v", c)
	}
}

func TestPlaceholderDeterministic(t *testing.T) {
	a := Placeholder(4, 6, 120)
	b := Placeholder(4, 6, 120)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Placeholder not deterministic")
	}
	if a.NRGBAAt(0, 0) == a.NRGBAAt(0, 5) {
		t.Error("Expected a gradient")
	}
}

func TestCache(t *testing.T) {
	c := NewCache()
	if _, ok := c.Cells("x", 2, 2); ok {
		t.Error("Missing source produced cells")
	}
	c.Put("x", checker(8, 8))
	g1, ok := c.Cells("x", 2, 2)
	if !ok || len(g1.Grid) != 4 {
		t.Fatal("Expected cells after Put")
	}

	missing := filepath.Join(t.TempDir(), "nope.png")
	if _, err := c.Source("y", missing); err == nil {
		t.Error("Expected load error")
	}
	if _, err := c.Source("y", missing); err == nil {
		t.Error("Failure should be remembered")
	}
	if img, err := c.Source("x", ""); err != nil || img == nil {
		t.Errorf("Cached source not returned: %v", err)
	}
}
