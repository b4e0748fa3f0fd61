package export

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"

	"github.com/woozymasta/bcn"
)

// writeDDS writes a DDS file with the base level and, when mipmaps is set,
// the full mip chain from largest to smallest.
func writeDDS(w io.Writer, img *image.NRGBA, format bcn.Format, mipmaps bool, encOpts *bcn.EncodeOptions) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	payloads := make([][]byte, 0, 1)
	if mipmaps {
		for i, mip := range bcn.GenerateMipmaps(img, false) {
			data, _, _, err := bcn.EncodeImageWithOptions(mip, format, encOpts)
			if err != nil {
				return fmt.Errorf("%w: DDS mipmap %d: %v", ErrEncode, i, err)
			}
			payloads = append(payloads, data)
		}
	} else {
		data, _, _, err := bcn.EncodeImageWithOptions(img, format, encOpts)
		if err != nil {
			return fmt.Errorf("%w: DDS: %v", ErrEncode, err)
		}
		payloads = append(payloads, data)
	}

	// #nosec G115 -- dimensions come from a decoded int32 texture header.
	header, err := makeDDSHeader(uint32(width), uint32(height), uint32(len(payloads)), format)
	if err != nil {
		return err
	}

	if err := bcn.WriteDDSMagic(w); err != nil {
		return fmt.Errorf("%w: DDS magic: %v", ErrWriteFile, err)
	}
	if err := bcn.WriteDDSHeader(w, header); err != nil {
		return fmt.Errorf("%w: DDS header: %v", ErrWriteFile, err)
	}
	for i, data := range payloads {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("%w: DDS mipmap %d: %v", ErrWriteFile, i, err)
		}
	}

	return nil
}

// ddsLayout is the DDS pixel format description of one output format.
// Block formats set fourCC and blockBytes; uncompressed formats set the masks.
type ddsLayout struct {
	fourCC     string
	blockBytes uint32
	masks      [4]uint32 // R, G, B, A
}

var ddsLayouts = map[bcn.Format]ddsLayout{
	bcn.FormatDXT1:  {fourCC: "DXT1", blockBytes: 8},
	bcn.FormatDXT5:  {fourCC: "DXT5", blockBytes: 16},
	bcn.FormatRGBA8: {masks: [4]uint32{0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000}},
	bcn.FormatBGRA8: {masks: [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000}},
}

// linearSize returns the top level byte size (block formats) or row pitch.
func (l ddsLayout) linearSize(width, height uint32) uint32 {
	if l.fourCC == "" {
		return width * 4
	}

	return ((width + 3) / 4) * ((height + 3) / 4) * l.blockBytes
}

func makeDDSHeader(width, height, mipMapCount uint32, format bcn.Format) (*bcn.DDSHeader, error) {
	layout, ok := ddsLayouts[format]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDDSFormat, format)
	}

	hdr := &bcn.DDSHeader{
		Size:              bcn.DDSHeaderSize,
		Flags:             uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat),
		Height:            height,
		Width:             width,
		Depth:             1,
		MipMapCount:       mipMapCount,
		PitchOrLinearSize: layout.linearSize(width, height),
		Caps:              uint32(bcn.DDSCapsTexture),
	}
	if mipMapCount > 1 {
		hdr.Flags |= bcn.DDSFlagMipmapCount
		hdr.Caps |= bcn.DDSCapsComplex | bcn.DDSCapsMipmap
	}

	pf := &hdr.PixelFormat
	pf.Size = bcn.DDSPixelFormatSize
	if layout.fourCC != "" {
		hdr.Flags |= bcn.DDSFlagLinearSize
		pf.Flags = bcn.DDSPFFourCC
		pf.FourCC = binary.LittleEndian.Uint32([]byte(layout.fourCC))
		return hdr, nil
	}

	hdr.Flags |= bcn.DDSFlagPitch
	pf.Flags = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
	pf.RGBBitCount = 32
	pf.RBitMask, pf.GBitMask, pf.BBitMask, pf.ABitMask = layout.masks[0], layout.masks[1], layout.masks[2], layout.masks[3]

	return hdr, nil
}
