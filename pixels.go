package rttex

import (
	"fmt"
	"image"
)

const bytesPerPixel = 4

// extractPixels copies the base level at offset and returns it in top-left
// origin orientation.
func extractPixels(data []byte, offset int, h *TextureHeader) (*image.NRGBA, error) {
	if h.Format != FormatRGBA8 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, h.Format)
	}

	size, err := pixelDataLength(h.Width, h.Height)
	if err != nil {
		return nil, err
	}

	c := newCursor(data)
	c.pos = offset
	raw, err := c.take(size, "pixel data")
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(h.Width), int(h.Height)))
	copy(img.Pix, raw)

	flipHorizontal(img)
	rotate180(img)

	return img, nil
}

// flipHorizontal reverses the column order of every row in place.
func flipHorizontal(img *image.NRGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*bytesPerPixel]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			swapPixel(row, l*bytesPerPixel, row, r*bytesPerPixel)
		}
	}
}

// rotate180 reverses both row and column order in place.
func rotate180(img *image.NRGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	n := w * h
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a := (i/w)*img.Stride + (i%w)*bytesPerPixel
		b := (j/w)*img.Stride + (j%w)*bytesPerPixel
		swapPixel(img.Pix, a, img.Pix, b)
	}
}

func swapPixel(a []byte, i int, b []byte, j int) {
	var tmp [bytesPerPixel]byte
	copy(tmp[:], a[i:i+bytesPerPixel])
	copy(a[i:i+bytesPerPixel], b[j:j+bytesPerPixel])
	copy(b[j:j+bytesPerPixel], tmp[:])
}
