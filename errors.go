package rttex

import "errors"

var (
	// ErrTruncated indicates the input ends inside a header or the pixel payload.
	ErrTruncated = errors.New("truncated input")
	// ErrUnknownCompression indicates an unknown package compression type.
	ErrUnknownCompression = errors.New("unknown compression type")
	// ErrUnknownFormat indicates an unknown texture format code.
	ErrUnknownFormat = errors.New("unknown texture format")
	// ErrUnsupportedFormat indicates a known texture format that cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported texture format")
	// ErrUnsupportedVersion indicates an unsupported package version.
	ErrUnsupportedVersion = errors.New("unsupported package version")
	// ErrCorruptStream indicates the zlib payload failed to inflate.
	ErrCorruptStream = errors.New("corrupt compressed stream")
	// ErrSizeMismatch indicates a declared package size does not match the payload.
	ErrSizeMismatch = errors.New("package size mismatch")
	// ErrDecompressedTooLarge indicates the inflated payload exceeds the configured limit.
	ErrDecompressedTooLarge = errors.New("decompressed payload too large")
	// ErrInvalidDimensions indicates negative or overflowing texture dimensions.
	ErrInvalidDimensions = errors.New("invalid texture dimensions")
	// ErrNoImage indicates the data holds no decodable texture.
	ErrNoImage = errors.New("no image")
	// ErrOpenFile indicates RTTEX file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrReadFile indicates RTTEX file read failed.
	ErrReadFile = errors.New("read file failed")
)
