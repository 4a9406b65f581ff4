package files

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

type Encoder func(w io.Writer, img image.Image) error

// EncoderFor picks the encoder matching the extension of name.
func EncoderFor(name string) (Encoder, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return encodeJPEG, nil
	case ".gif":
		return encodeGIF, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return encodeTIFF, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

func encodeJPEG(w io.Writer, img image.Image) error {
	options := &jpeg.Options{
		Quality: 100,
	}
	return jpeg.Encode(w, img, options)
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}
