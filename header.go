package rttex

import "bytes"

const (
	// PackageMagic tags an RTPACK container.
	PackageMagic = "RTPACK"
	// TextureMagic tags an RTTEX texture blob.
	TextureMagic = "RTTXTR"

	// PackageVersion is the only supported container version.
	PackageVersion = 0

	magicSize = 6

	// FileHeaderSize is the size of the common tag/version header.
	FileHeaderSize = magicSize + 2
)

// FileHeader is the common 8-byte header of packages and textures.
type FileHeader struct {
	Magic    [magicSize]byte
	Version  uint8
	Reserved uint8
}

// String returns the tag as text.
func (h FileHeader) String() string {
	return string(h.Magic[:])
}

// IsPackage reports whether data starts with an RTPACK header.
func IsPackage(data []byte) bool {
	return hasMagic(data, PackageMagic)
}

// IsTexture reports whether data starts with an RTTXTR header.
func IsTexture(data []byte) bool {
	return hasMagic(data, TextureMagic)
}

// hasMagic requires a complete file header before comparing the tag.
func hasMagic(data []byte, magic string) bool {
	if len(data) < FileHeaderSize {
		return false
	}

	return bytes.Equal(data[:magicSize], []byte(magic))
}

func readFileHeader(c *cursor, h *FileHeader) error {
	if err := c.readBytes(h.Magic[:], "file header magic"); err != nil {
		return err
	}

	var err error
	if h.Version, err = c.readU8("file header version"); err != nil {
		return err
	}
	if h.Reserved, err = c.readU8("file header reserved"); err != nil {
		return err
	}

	return nil
}
