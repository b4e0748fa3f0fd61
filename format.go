package rttex

import "fmt"

// Format is the RTTEX pixel format code.
type Format int32

const (
	// FormatRGBA8 is GL_UNSIGNED_BYTE, four bytes per pixel.
	FormatRGBA8 Format = 0x1401
	// FormatRGB565 is GL_UNSIGNED_SHORT_5_6_5.
	FormatRGB565 Format = 0x8363
	// FormatRGBA4444 is GL_UNSIGNED_SHORT_4_4_4_4.
	FormatRGBA4444 Format = 0x8033
	// FormatEmbeddedFile marks a payload that is another encoded file.
	FormatEmbeddedFile Format = 20000000
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatRGB565:
		return "RGB565"
	case FormatRGBA4444:
		return "RGBA4444"
	case FormatEmbeddedFile:
		return "EMBEDDED_FILE"
	default:
		return fmt.Sprintf("Format(%d)", int32(f))
	}
}

// Known reports whether f is one of the documented format codes.
func (f Format) Known() bool {
	switch f {
	case FormatRGBA8, FormatRGB565, FormatRGBA4444, FormatEmbeddedFile:
		return true
	default:
		return false
	}
}

func formatFromCode(code int32) (Format, error) {
	f := Format(code)
	if !f.Known() {
		return 0, fmt.Errorf("%w: 0x%x", ErrUnknownFormat, code)
	}

	return f, nil
}
