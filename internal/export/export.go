// Package export re-encodes decoded RTTEX textures as PNG, BMP or DDS.
package export

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/bcn"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// Format is an output container.
type Format string

const (
	// FormatPNG writes PNG.
	FormatPNG Format = "png"
	// FormatBMP writes BMP.
	FormatBMP Format = "bmp"
	// FormatDDS writes DDS.
	FormatDDS Format = "dds"
)

// Options configures export. Nil options write PNG at the source size.
type Options struct {
	// Format is the output container (default PNG).
	Format Format
	// Width and Height resample the image when both are positive.
	Width  int
	Height int

	// DDSFormat is the DDS pixel format (default BGRA8).
	DDSFormat bcn.Format
	// Mipmaps writes a full mip chain into DDS output.
	Mipmaps bool
	// EncodeOptions are passed to the BCn encoder for DDS output.
	EncodeOptions *bcn.EncodeOptions
}

// ParseFormat maps a container name or file extension to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case FormatPNG, FormatBMP, FormatDDS:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath infers the output Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ParseDDSFormat maps a DDS pixel format name to a bcn.Format.
func ParseDDSFormat(name string) (bcn.Format, error) {
	switch strings.ToLower(name) {
	case "rgba8", "rgba":
		return bcn.FormatRGBA8, nil
	case "", "bgra8", "bgra":
		return bcn.FormatBGRA8, nil
	case "dxt1", "bc1":
		return bcn.FormatDXT1, nil
	case "dxt5", "bc3":
		return bcn.FormatDXT5, nil
	default:
		return bcn.FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownDDSFormat, name)
	}
}

// Resize resamples img to width x height with Catmull-Rom filtering.
func Resize(img image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Encode writes img to w.
func Encode(w io.Writer, img *image.NRGBA, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}

	var src = img
	if opts.Width > 0 && opts.Height > 0 {
		resized, err := Resize(img, opts.Width, opts.Height)
		if err != nil {
			return err
		}
		src = resized
	}

	var err error
	switch opts.Format {
	case "", FormatPNG:
		err = png.Encode(w, src)
	case FormatBMP:
		err = bmp.Encode(w, src)
	case FormatDDS:
		var unset bcn.Format
		format := opts.DDSFormat
		if format == unset || format == bcn.FormatUnknown {
			format = bcn.FormatBGRA8
		}
		return writeDDS(w, src, format, opts.Mipmaps, opts.EncodeOptions)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, opts.Format, err)
	}

	return nil
}

// WriteFile encodes img into a new file at path.
func WriteFile(path string, img *image.NRGBA, opts *Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = f.Close() }()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, img, opts); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteFile, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteFile, path, err)
	}

	return nil
}
