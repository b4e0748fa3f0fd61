package rttex

import (
	"fmt"
	"image"
	"io"
	"os"
)

// ReadOptions configures RTTEX decoding. Nil options use defaults.
type ReadOptions struct {
	// StrictSizes checks the package compressed and decompressed sizes
	// against the actual payload. Off by default.
	StrictSizes bool
	// MaxDecompressedSize caps the unpacked payload size in bytes (0 = unlimited).
	MaxDecompressedSize int64
}

func (o *ReadOptions) strictSizes() bool {
	return o != nil && o.StrictSizes
}

func (o *ReadOptions) maxDecompressedSize() int64 {
	if o == nil || o.MaxDecompressedSize < 0 {
		return 0
	}

	return o.MaxDecompressedSize
}

// ReadConfig reads RTTEX file dimensions without decoding pixels.
func ReadConfig(path string) (image.Config, error) {
	data, err := readFile(path)
	if err != nil {
		return image.Config{}, err
	}

	cfg, ok, err := DecodeConfigBytes(data, nil)
	if err != nil {
		return image.Config{}, fmt.Errorf("%q: %w", path, err)
	}
	if !ok {
		return image.Config{}, fmt.Errorf("%w: %q", ErrNoImage, path)
	}

	return cfg, nil
}

// Read reads and decodes an RTTEX file.
func Read(path string) (*image.NRGBA, error) {
	return ReadWithOptions(path, nil)
}

// ReadWithOptions reads and decodes an RTTEX file with the given options.
// It returns ErrNoImage when the file holds no texture.
func ReadWithOptions(path string, opts *ReadOptions) (*image.NRGBA, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	img, ok, err := DecodeBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoImage, path)
	}

	return img, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadFile, path, err)
	}

	return data, nil
}
