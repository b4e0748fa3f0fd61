package rttex

import "fmt"

// MipHeaderSize is the size of one mip header.
const MipHeaderSize = 4*4 + 8

// MipHeader describes one mip level. Levels follow the texture header in
// stream order; MipLevel is descriptive only.
type MipHeader struct {
	Height   int32
	Width    int32
	DataSize int32
	MipLevel int32
	Reserved [8]byte
}

// readMipHeaders consumes count mip headers. Field values are not validated.
func readMipHeaders(c *cursor, count int32) ([]MipHeader, error) {
	if count <= 0 {
		return nil, nil
	}
	// a count larger than the input can hold is a truncation, not an allocation
	if int64(count)*MipHeaderSize > int64(c.remaining()) {
		return nil, fmt.Errorf("%w: %d mip headers need %d bytes at offset %d, have %d",
			ErrTruncated, count, int64(count)*MipHeaderSize, c.pos, c.remaining())
	}

	mips := make([]MipHeader, count)
	for i := range mips {
		m := &mips[i]

		var err error
		if m.Height, err = c.readI32("mip height"); err != nil {
			return nil, err
		}
		if m.Width, err = c.readI32("mip width"); err != nil {
			return nil, err
		}
		if m.DataSize, err = c.readI32("mip data size"); err != nil {
			return nil, err
		}
		if m.MipLevel, err = c.readI32("mip level"); err != nil {
			return nil, err
		}
		if err := c.readBytes(m.Reserved[:], "mip reserved"); err != nil {
			return nil, err
		}
	}

	return mips, nil
}
