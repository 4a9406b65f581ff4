package image

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

var blue = color.NRGBA{0, 0, 255, 255}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestRenderFillsUniformly(t *testing.T) {
	p := NewProcessor("", false)

	img, err := p.Render(48, 30, blue, "Fav")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 48 || b.Dy() != 30 {
		t.Fatalf("bounds = %v, want 48x30", b)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !sameColor(img.At(x, y), blue) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, img.At(x, y), blue)
			}
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	p := NewProcessor("", false)

	for _, size := range [][2]int{{0, 10}, {10, 0}, {-5, 5}} {
		_, err := p.Render(size[0], size[1], blue, "")
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Render(%d, %d) err = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestRenderDrawsBitmapLabel(t *testing.T) {
	p := NewProcessor("", true)

	img, err := p.Render(200, 100, blue, "Logo")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("bounds = %v, want 200x100", b)
	}

	if countNot(img, blue) == 0 {
		t.Error("label enabled but every pixel still has the fill color")
	}
	if !sameColor(img.At(0, 0), blue) {
		t.Errorf("corner pixel = %v, want fill color", img.At(0, 0))
	}
}

func TestRenderSkipsEmptyLabel(t *testing.T) {
	p := NewProcessor("", true)

	img, err := p.Render(64, 64, blue, "")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n := countNot(img, blue); n != 0 {
		t.Errorf("%d pixels differ from fill with empty label", n)
	}
}

func TestRenderMissingFont(t *testing.T) {
	p := NewProcessor(filepath.Join(t.TempDir(), "missing.ttf"), true)

	if _, err := p.Render(64, 64, blue, "Icon"); err == nil {
		t.Error("Render with missing font succeeded, want error")
	}
}

func TestBitmapSize(t *testing.T) {
	tr := &TextRenderer{}
	b := tr.Bitmap("Fav", color.White).Bounds()

	if b.Dx() != 21 || b.Dy() != 13 {
		t.Errorf("Bitmap(\"Fav\") bounds = %v, want 21x13", b)
	}
}

func TestDrawCentered(t *testing.T) {
	p := &Processor{}
	bgImg := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			bgImg.Set(x, y, blue)
		}
	}
	fg := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			fg.Set(x, y, color.White)
		}
	}

	out := p.DrawCentered(bgImg, fg)
	if !sameColor(out.At(4, 4), color.White) || !sameColor(out.At(5, 5), color.White) {
		t.Error("center pixels are not the overlay color")
	}
	if !sameColor(out.At(3, 3), blue) || !sameColor(out.At(6, 6), blue) {
		t.Error("pixels around the overlay changed")
	}
}

func countNot(img image.Image, c color.Color) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !sameColor(img.At(x, y), c) {
				n++
			}
		}
	}
	return n
}
