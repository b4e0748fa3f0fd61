package rttex

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/klauspost/compress/zlib"
)

// textureFixture describes a synthetic RTTXTR blob.
type textureFixture struct {
	Width, Height int32
	Format        Format
	Version       uint8
	UsesAlpha     bool
	Mips          []MipHeader
	// MipMapCount overrides len(Mips) when non-nil.
	MipMapCount *int32
	Pixels      []byte
}

func buildTexture(t testing.TB, fx textureFixture) []byte {
	t.Helper()

	format := fx.Format
	if format == 0 {
		format = FormatRGBA8
	}
	count := int32(len(fx.Mips))
	if fx.MipMapCount != nil {
		count = *fx.MipMapCount
	}

	var buf bytes.Buffer
	buf.WriteString(TextureMagic)
	buf.WriteByte(fx.Version)
	buf.WriteByte(0)
	le(t, &buf, fx.Height)
	le(t, &buf, fx.Width)
	le(t, &buf, int32(format))
	le(t, &buf, fx.Height)
	le(t, &buf, fx.Width)
	if fx.UsesAlpha {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	buf.WriteByte(0)
	buf.Write([]byte{0, 0})
	le(t, &buf, count)
	buf.Write(make([]byte, 64))
	for _, m := range fx.Mips {
		le(t, &buf, m)
	}
	buf.Write(fx.Pixels)

	return buf.Bytes()
}

// packageFixture describes a synthetic RTPACK container.
type packageFixture struct {
	Version     uint8
	Compression byte
	// CompressedSize and DecompressedSize override the computed sizes when non-nil.
	CompressedSize   *uint32
	DecompressedSize *uint32
}

func buildPackage(t testing.TB, fx packageFixture, payload []byte) []byte {
	t.Helper()

	body := payload
	if CompressionType(fx.Compression) == CompressionZlib {
		body = deflate(t, payload)
	}

	compressed := uint32(len(body))
	if fx.CompressedSize != nil {
		compressed = *fx.CompressedSize
	}
	decompressed := uint32(len(payload))
	if fx.DecompressedSize != nil {
		decompressed = *fx.DecompressedSize
	}

	var buf bytes.Buffer
	buf.WriteString(PackageMagic)
	buf.WriteByte(fx.Version)
	buf.WriteByte(0)
	le(t, &buf, compressed)
	le(t, &buf, decompressed)
	buf.WriteByte(fx.Compression)
	buf.Write(make([]byte, 15))
	buf.Write(body)

	return buf.Bytes()
}

func deflate(t testing.TB, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}

	return buf.Bytes()
}

func le(t testing.TB, buf *bytes.Buffer, v any) {
	t.Helper()

	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		t.Fatalf("binary.Write: %v", err)
	}
}

// storedPixels converts a top-left origin image into the stored RTTEX order,
// the inverse of the decode orientation fix.
func storedPixels(img *image.NRGBA) []byte {
	out := image.NewNRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	rotate180(out)
	flipHorizontal(out)

	return out.Pix
}

// patternImage builds a deterministic image with every pixel distinct.
func patternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x & 0xff),              //nolint:gosec // bounded by mask
				G: uint8(y & 0xff),              //nolint:gosec // bounded by mask
				B: uint8((x*7 + y*13) & 0xff),   //nolint:gosec // bounded by mask
				A: uint8(255 - (x+y)&0x7f),      //nolint:gosec // bounded by mask
			})
		}
	}

	return img
}

func i32p(v int32) *int32 { return &v }

func u32p(v uint32) *uint32 { return &v }
