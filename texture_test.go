package rttex

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseTextureHeader(t *testing.T) {
	t.Parallel()

	mips := []MipHeader{
		{Height: 4, Width: 8, DataSize: 128, MipLevel: 0},
		{Height: 2, Width: 4, DataSize: 32, MipLevel: 1},
	}
	data := buildTexture(t, textureFixture{Width: 8, Height: 4, UsesAlpha: true, Mips: mips})

	h, offset, err := ParseTextureHeader(data)
	if err != nil {
		t.Fatalf("ParseTextureHeader: %v", err)
	}
	if h.String() != TextureMagic {
		t.Fatalf("magic = %q", h.String())
	}
	if h.Width != 8 || h.Height != 4 || h.OriginalWidth != 8 || h.OriginalHeight != 4 {
		t.Fatalf("unexpected dimensions: %+v", h)
	}
	if h.Format != FormatRGBA8 || !h.UsesAlpha || h.AlreadyCompressed {
		t.Fatalf("unexpected format/flags: %v alpha=%v compressed=%v", h.Format, h.UsesAlpha, h.AlreadyCompressed)
	}
	if h.MipMapCount != 2 || len(h.Mips) != 2 {
		t.Fatalf("mips = %d/%d, want 2", h.MipMapCount, len(h.Mips))
	}
	if h.Mips[1] != mips[1] {
		t.Fatalf("mip[1] = %+v, want %+v", h.Mips[1], mips[1])
	}
	if want := TextureHeaderSize + 2*MipHeaderSize; offset != want {
		t.Fatalf("offset = %d, want %d", offset, want)
	}
}

func TestParseTextureHeaderMipAdvance(t *testing.T) {
	t.Parallel()

	// mip contents are arbitrary and must not affect the cursor
	mips := []MipHeader{
		{Height: -1, Width: 1 << 30, DataSize: -5, MipLevel: 9},
		{Height: 0, Width: 0, DataSize: 0, MipLevel: 0},
		{Height: 7, Width: 3, DataSize: 1 << 20, MipLevel: 2, Reserved: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	data := buildTexture(t, textureFixture{Width: 1, Height: 1, Mips: mips, Pixels: []byte{1, 2, 3, 4}})

	_, offset, err := ParseTextureHeader(data)
	if err != nil {
		t.Fatalf("ParseTextureHeader: %v", err)
	}
	if want := TextureHeaderSize + 3*MipHeaderSize; offset != want {
		t.Fatalf("offset = %d, want %d", offset, want)
	}
}

func TestParseTextureHeaderFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    int32
		want    Format
		wantErr error
	}{
		{name: "rgba8", code: 0x1401, want: FormatRGBA8},
		{name: "rgb565", code: 0x8363, want: FormatRGB565},
		{name: "rgba4444", code: 0x8033, want: FormatRGBA4444},
		{name: "embedded", code: 20000000, want: FormatEmbeddedFile},
		{name: "zero", code: 0, wantErr: ErrUnknownFormat},
		{name: "gl-float", code: 0x1406, wantErr: ErrUnknownFormat},
		{name: "negative", code: -1, wantErr: ErrUnknownFormat},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data := buildTexture(t, textureFixture{Width: 1, Height: 1})
			binary.LittleEndian.PutUint32(data[16:20], uint32(tc.code))

			h, _, err := ParseTextureHeader(data)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTextureHeader: %v", err)
			}
			if h.Format != tc.want {
				t.Fatalf("format = %v, want %v", h.Format, tc.want)
			}
		})
	}
}

func TestParseTextureHeaderTruncated(t *testing.T) {
	t.Parallel()

	full := buildTexture(t, textureFixture{
		Width:  2,
		Height: 2,
		Mips:   []MipHeader{{Height: 2, Width: 2}, {Height: 1, Width: 1}},
	})

	tests := []struct {
		name string
		data []byte
	}{
		{name: "in-dimensions", data: full[:12]},
		{name: "in-flags", data: full[:30]},
		{name: "in-reserved", data: full[:TextureHeaderSize-1]},
		{name: "in-first-mip", data: full[:TextureHeaderSize+10]},
		{name: "in-second-mip", data: full[:TextureHeaderSize+MipHeaderSize+23]},
		{
			name: "huge-mip-count",
			data: buildTexture(t, textureFixture{Width: 1, Height: 1, MipMapCount: i32p(1 << 30)}),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := ParseTextureHeader(tc.data)
			if !errors.Is(err, ErrTruncated) {
				t.Fatalf("expected ErrTruncated, got %v", err)
			}
		})
	}
}

func TestParseTextureHeaderNegativeMipCount(t *testing.T) {
	t.Parallel()

	data := buildTexture(t, textureFixture{Width: 1, Height: 1, MipMapCount: i32p(-3)})

	h, offset, err := ParseTextureHeader(data)
	if err != nil {
		t.Fatalf("ParseTextureHeader: %v", err)
	}
	if len(h.Mips) != 0 || offset != TextureHeaderSize {
		t.Fatalf("mips=%d offset=%d, want none at %d", len(h.Mips), offset, TextureHeaderSize)
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	if FormatRGBA8.String() != "RGBA8" || FormatEmbeddedFile.String() != "EMBEDDED_FILE" {
		t.Fatalf("unexpected names %q %q", FormatRGBA8, FormatEmbeddedFile)
	}
	if got := Format(5).String(); got != "Format(5)" {
		t.Fatalf("String() = %q", got)
	}
}
