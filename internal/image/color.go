package image

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var ErrUnknownColor = errors.New("unknown color")

// ParseColor understands SVG color names ("blue"), hex ("#00f", "#0000ff",
// "#0000ff80") and rgb(r, g, b) / rgba(r, g, b, a) with 0-255 channels.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:], s)
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseChannels(v[len("rgba("):len(v)-1], 4, s)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseChannels(v[len("rgb("):len(v)-1], 3, s)
	}

	c, ok := colornames.Map[v]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

func parseHex(hex, orig string) (color.NRGBA, error) {
	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}

	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

func parseChannels(body string, want int, orig string) (color.NRGBA, error) {
	fields := strings.Split(body, ",")
	if len(fields) != want {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
	}

	ch := [4]uint8{255, 255, 255, 255}
	for i, f := range fields {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, orig)
		}
		ch[i] = uint8(n)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// inkFor picks a label color readable on top of fill.
func inkFor(fill color.Color) color.Color {
	r, g, b, _ := fill.RGBA()
	luma := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
	if luma >= 128 {
		return color.NRGBA{R: 33, G: 36, B: 51, A: 255}
	}
	return color.White
}
