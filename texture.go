package rttex

import "fmt"

// TextureHeaderSize is the fixed RTTEX header size including the file header.
const TextureHeaderSize = FileHeaderSize + 5*4 + 4 + 4 + 64

// TextureHeader is the fixed RTTEX texture header followed by its mip table.
type TextureHeader struct {
	FileHeader
	Height            int32
	Width             int32
	Format            Format
	OriginalHeight    int32
	OriginalWidth     int32
	UsesAlpha         bool
	AlreadyCompressed bool
	ReservedFlags     [2]byte
	MipMapCount       int32
	Reserved          [64]byte

	// Mips holds the mip headers in stream order.
	Mips []MipHeader
}

// ParseTextureHeader parses the texture header and mip table at the start of
// data and returns the offset of the base level pixels.
// It does not check the magic; use IsTexture first.
func ParseTextureHeader(data []byte) (*TextureHeader, int, error) {
	c := newCursor(data)
	h, err := readTextureHeader(c)
	if err != nil {
		return nil, 0, err
	}

	return h, c.pos, nil
}

func readTextureHeader(c *cursor) (*TextureHeader, error) {
	h := &TextureHeader{}
	if err := readFileHeader(c, &h.FileHeader); err != nil {
		return nil, err
	}

	var err error
	if h.Height, err = c.readI32("texture height"); err != nil {
		return nil, err
	}
	if h.Width, err = c.readI32("texture width"); err != nil {
		return nil, err
	}

	code, err := c.readI32("texture format")
	if err != nil {
		return nil, err
	}
	if h.Format, err = formatFromCode(code); err != nil {
		return nil, err
	}

	if h.OriginalHeight, err = c.readI32("texture original height"); err != nil {
		return nil, err
	}
	if h.OriginalWidth, err = c.readI32("texture original width"); err != nil {
		return nil, err
	}

	alpha, err := c.readU8("texture uses alpha")
	if err != nil {
		return nil, err
	}
	compressed, err := c.readU8("texture already compressed")
	if err != nil {
		return nil, err
	}
	h.UsesAlpha = alpha != 0
	h.AlreadyCompressed = compressed != 0

	if err := c.readBytes(h.ReservedFlags[:], "texture reserved flags"); err != nil {
		return nil, err
	}
	if h.MipMapCount, err = c.readI32("texture mip map count"); err != nil {
		return nil, err
	}
	if err := c.readBytes(h.Reserved[:], "texture reserved"); err != nil {
		return nil, err
	}

	if h.Mips, err = readMipHeaders(c, h.MipMapCount); err != nil {
		return nil, fmt.Errorf("%d mip headers: %w", h.MipMapCount, err)
	}

	return h, nil
}
