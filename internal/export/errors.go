package export

import "errors"

var (
	// ErrUnknownFormat indicates an unknown output format name.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnknownDDSFormat indicates an unknown DDS pixel format name.
	ErrUnknownDDSFormat = errors.New("unknown DDS format")
	// ErrInvalidSize indicates an invalid resample size.
	ErrInvalidSize = errors.New("invalid output size")
	// ErrEncode indicates image encoding failed.
	ErrEncode = errors.New("encode image failed")
	// ErrCreateFile indicates output file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrWriteFile indicates writing the output file failed.
	ErrWriteFile = errors.New("write file failed")
)
