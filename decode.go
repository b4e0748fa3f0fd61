package rttex

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("rttex", PackageMagic, Decode, DecodeConfig)
	image.RegisterFormat("rttex", TextureMagic, Decode, DecodeConfig)
}

// Info describes the headers of an RTTEX blob.
type Info struct {
	// Package is nil when the blob is not wrapped in an RTPACK container.
	Package *PackageHeader
	// Texture is nil when the payload is not a texture.
	Texture *TextureHeader
	// PayloadSize is the texture blob size after unpacking.
	PayloadSize int
	// PixelOffset is the base level offset inside the texture blob.
	PixelOffset int
}

// DecodeBytes decodes the base level of an RTTEX blob.
// ok is false with a nil error when data holds no texture: the blob is not
// RTPACK/RTTXTR, or the package payload is empty.
func DecodeBytes(data []byte, opts *ReadOptions) (img *image.NRGBA, ok bool, err error) {
	payload, header, offset, err := locateTexture(data, opts)
	if err != nil || header == nil {
		return nil, false, err
	}

	img, err = extractPixels(payload, offset, header)
	if err != nil {
		return nil, false, err
	}

	return img, true, nil
}

// DecodeConfigBytes returns the base level dimensions without extracting pixels.
func DecodeConfigBytes(data []byte, opts *ReadOptions) (cfg image.Config, ok bool, err error) {
	_, header, _, err := locateTexture(data, opts)
	if err != nil || header == nil {
		return image.Config{}, false, err
	}
	if header.Width < 0 || header.Height < 0 {
		return image.Config{}, false, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, header.Width, header.Height)
	}

	return image.Config{
		Width:      int(header.Width),
		Height:     int(header.Height),
		ColorModel: color.NRGBAModel,
	}, true, nil
}

// Inspect parses all headers of an RTTEX blob without extracting pixels.
func Inspect(data []byte, opts *ReadOptions) (*Info, error) {
	info := &Info{}

	payload, pkg, err := unpack(data, opts)
	info.Package = pkg
	if err != nil {
		return info, err
	}

	info.PayloadSize = len(payload)
	if !IsTexture(payload) {
		return info, nil
	}

	info.Texture, info.PixelOffset, err = ParseTextureHeader(payload)
	if err != nil {
		return info, err
	}

	return info, nil
}

// Decode decodes an RTTEX image from r. It returns ErrNoImage when the data
// holds no texture.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	img, ok, err := DecodeBytes(data, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoImage
	}

	return img, nil
}

// DecodeConfig returns the RTTEX image dimensions from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	cfg, ok, err := DecodeConfigBytes(data, nil)
	if err != nil {
		return image.Config{}, err
	}
	if !ok {
		return image.Config{}, ErrNoImage
	}

	return cfg, nil
}

// locateTexture unpacks data and parses the texture header. A nil header with
// a nil error means there is no texture to decode.
func locateTexture(data []byte, opts *ReadOptions) ([]byte, *TextureHeader, int, error) {
	payload, _, err := unpack(data, opts)
	if err != nil {
		return nil, nil, 0, err
	}
	if len(payload) == 0 || !IsTexture(payload) {
		return nil, nil, 0, nil
	}

	header, offset, err := ParseTextureHeader(payload)
	if err != nil {
		return nil, nil, 0, err
	}

	return payload, header, offset, nil
}
