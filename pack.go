package rttex

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// PackageHeaderSize is the full RTPACK header size including the file header.
const PackageHeaderSize = FileHeaderSize + 4 + 4 + 1 + 15

// CompressionType is the RTPACK payload compression.
type CompressionType uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone CompressionType = 0
	// CompressionZlib stores a zlib stream.
	CompressionZlib CompressionType = 1
)

// String returns the compression name.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZlib:
		return "zlib"
	default:
		return fmt.Sprintf("CompressionType(%d)", uint8(c))
	}
}

func compressionFromByte(b byte) (CompressionType, error) {
	switch c := CompressionType(b); c {
	case CompressionNone, CompressionZlib:
		return c, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownCompression, b)
	}
}

// PackageHeader is the RTPACK container header.
type PackageHeader struct {
	FileHeader
	CompressedSize   uint32
	DecompressedSize uint32
	Compression      CompressionType
	Reserved         [15]byte
}

// ParsePackageHeader parses the fixed RTPACK header at the start of data.
// It does not check the magic; use IsPackage first.
func ParsePackageHeader(data []byte) (*PackageHeader, error) {
	return readPackageHeader(newCursor(data))
}

func readPackageHeader(c *cursor) (*PackageHeader, error) {
	h := &PackageHeader{}
	if err := readFileHeader(c, &h.FileHeader); err != nil {
		return nil, err
	}

	var err error
	if h.CompressedSize, err = c.readU32("package compressed size"); err != nil {
		return nil, err
	}
	if h.DecompressedSize, err = c.readU32("package decompressed size"); err != nil {
		return nil, err
	}

	raw, err := c.readU8("package compression type")
	if err != nil {
		return nil, err
	}
	if h.Compression, err = compressionFromByte(raw); err != nil {
		return nil, err
	}

	if err := c.readBytes(h.Reserved[:], "package reserved"); err != nil {
		return nil, err
	}

	return h, nil
}

// Unpack strips the RTPACK container and returns the payload, inflated when
// compressed. Data without the RTPACK tag is returned unchanged. An empty
// payload is returned as a zero-length slice and no error.
func Unpack(data []byte, opts *ReadOptions) ([]byte, error) {
	payload, _, err := unpack(data, opts)
	return payload, err
}

func unpack(data []byte, opts *ReadOptions) ([]byte, *PackageHeader, error) {
	if !IsPackage(data) {
		return data, nil, nil
	}

	c := newCursor(data)
	header, err := readPackageHeader(c)
	if err != nil {
		return nil, nil, err
	}
	if header.Version != PackageVersion {
		return nil, header, fmt.Errorf("%w: %d", ErrUnsupportedVersion, header.Version)
	}

	// the declared compressed size is not a read bound, the rest of the input is the payload
	body := data[c.pos:]
	if opts.strictSizes() && uint64(header.CompressedSize) != uint64(len(body)) {
		return nil, header, fmt.Errorf("%w: compressed size %d, payload %d bytes", ErrSizeMismatch, header.CompressedSize, len(body))
	}

	// an empty body is an empty payload for every compression type
	if len(body) == 0 {
		return body, header, nil
	}

	var payload []byte
	switch header.Compression {
	case CompressionZlib:
		payload, err = inflate(body, opts.maxDecompressedSize())
		if err != nil {
			return nil, header, err
		}
	default:
		if limit := opts.maxDecompressedSize(); limit > 0 && int64(len(body)) > limit {
			return nil, header, fmt.Errorf("%w: %d bytes, limit %d", ErrDecompressedTooLarge, len(body), limit)
		}
		payload = body
	}

	if opts.strictSizes() && uint64(header.DecompressedSize) != uint64(len(payload)) {
		return nil, header, fmt.Errorf("%w: decompressed size %d, payload %d bytes", ErrSizeMismatch, header.DecompressedSize, len(payload))
	}

	return payload, header, nil
}

// inflate decodes a zlib stream. limit <= 0 means unlimited.
func inflate(data []byte, limit int64) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	defer func() { _ = zr.Close() }()

	var src io.Reader = zr
	if limit > 0 {
		src = io.LimitReader(zr, limit+1)
	}

	var out bytes.Buffer
	if _, err := io.Copy(&out, src); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	if limit > 0 && int64(out.Len()) > limit {
		return nil, fmt.Errorf("%w: limit %d", ErrDecompressedTooLarge, limit)
	}

	return out.Bytes(), nil
}
