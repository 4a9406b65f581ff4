package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

var ErrInvalidSize = errors.New("invalid image size")

// Processor synthesizes placeholder canvases. Labels are only drawn when
// RenderLabels is set.
type Processor struct {
	Labels       *TextRenderer
	RenderLabels bool
}

func NewProcessor(fontPath string, renderLabels bool) *Processor {
	return &Processor{
		Labels:       &TextRenderer{FontPath: fontPath},
		RenderLabels: renderLabels,
	}
}

// Render returns a width x height image filled with fill.
func (p *Processor) Render(width, height int, fill color.Color, label string) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(fill)
	dc.Clear()

	if !p.RenderLabels || label == "" {
		return dc.Image(), nil
	}

	labels := p.Labels
	if labels == nil {
		labels = &TextRenderer{}
	}
	ink := inkFor(fill)

	if labels.FontPath != "" {
		if err := labels.DrawCentered(dc, label, ink); err != nil {
			return nil, fmt.Errorf("draw label: %w", err)
		}
		return dc.Image(), nil
	}

	glyphs := labels.Bitmap(label, ink)
	gb := glyphs.Bounds()
	if gb.Empty() {
		return dc.Image(), nil
	}

	scale := min(
		float64(width)*0.6/float64(gb.Dx()),
		float64(height)*0.3/float64(gb.Dy()),
	)
	w, h := int(float64(gb.Dx())*scale), int(float64(gb.Dy())*scale)
	if w < 1 || h < 1 {
		return dc.Image(), nil
	}

	return p.DrawCentered(dc.Image(), p.Resize(glyphs, w, h)), nil
}

// Resize scales img with nearest-neighbour sampling so bitmap glyphs stay sharp.
func (p *Processor) Resize(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.NearestNeighbor)
}

func (p *Processor) DrawCentered(bg image.Image, img image.Image) image.Image {
	bgBounds := bg.Bounds()
	imgBounds := img.Bounds()

	centerX := (bgBounds.Dx() - imgBounds.Dx()) / 2
	centerY := (bgBounds.Dy() - imgBounds.Dy()) / 2

	result := image.NewRGBA(bgBounds)
	draw.Draw(result, bgBounds, bg, image.Point{}, draw.Src)
	draw.Draw(result, imgBounds.Sub(imgBounds.Min).Add(image.Pt(centerX, centerY)), img, imgBounds.Min, draw.Over)

	return result
}
