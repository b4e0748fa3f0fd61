package rttex

import (
	"encoding/binary"
	"fmt"
)

// cursor reads little-endian fields sequentially from a byte slice.
// Every read is bounds checked and reports the field name on failure.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) take(n int, field string) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, fmt.Errorf("%w: %s: need %d bytes at offset %d, have %d", ErrTruncated, field, n, c.pos, c.remaining())
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) skip(n int, field string) error {
	_, err := c.take(n, field)
	return err
}

func (c *cursor) readBytes(dst []byte, field string) error {
	b, err := c.take(len(dst), field)
	if err != nil {
		return err
	}

	copy(dst, b)
	return nil
}

func (c *cursor) readU8(field string) (uint8, error) {
	b, err := c.take(1, field)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (c *cursor) readU32(field string) (uint32, error) {
	b, err := c.take(4, field)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) readI32(field string) (int32, error) {
	v, err := c.readU32(field)
	if err != nil {
		return 0, err
	}

	// #nosec G115 -- two's complement reinterpretation of the wire value.
	return int32(v), nil
}
