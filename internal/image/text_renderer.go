package image

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

type TextRenderer struct {
	FontPath string
}

// DrawCentered draws text in the middle of dc using the TrueType font at
// FontPath, shrunk until it fits within 80% of the canvas width.
func (tr *TextRenderer) DrawCentered(dc *gg.Context, text string, ink color.Color) error {
	fontSize := float64(min(dc.Width(), dc.Height())) / 1000.0 * 150

	if err := dc.LoadFontFace(tr.FontPath, fontSize); err != nil {
		return err
	}

	maxWidth := float64(dc.Width()) * 0.8
	if w, _ := dc.MeasureString(text); w > maxWidth {
		if err := dc.LoadFontFace(tr.FontPath, fontSize*maxWidth/w); err != nil {
			return err
		}
	}

	dc.SetColor(ink)
	dc.DrawStringAnchored(text,
		float64(dc.Width())/2,
		float64(dc.Height())/2,
		0.5, 0.5,
	)
	return nil
}

// Bitmap renders text with the built-in 7x13 face onto a transparent image
// just large enough to hold it.
func (tr *TextRenderer) Bitmap(text string, ink color.Color) image.Image {
	face := basicfont.Face7x13

	probe := gg.NewContext(1, 1)
	probe.SetFontFace(face)
	w, _ := probe.MeasureString(text)

	dc := gg.NewContext(int(math.Ceil(w)), face.Height)
	dc.SetFontFace(face)
	dc.SetColor(ink)
	dc.DrawString(text, 0, float64(face.Ascent))
	return dc.Image()
}
