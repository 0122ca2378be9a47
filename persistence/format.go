package persistence

import "errors"

const (
	// MagicNumber identifies guide-tree blobs (ASCII: "GTB0").
	MagicNumber = 0x47544230
	// Version is the current envelope format version.
	Version = 1

	// fixedHeaderSize covers magic, version, payload length, checksum and
	// the codec name length byte.
	fixedHeaderSize = 4 + 4 + 8 + 4 + 1

	maxCodecName = 255
)

var (
	ErrInvalidMagic   = errors.New("persistence: invalid magic number")
	ErrInvalidVersion = errors.New("persistence: unsupported version")
	ErrUnknownCodec   = errors.New("persistence: unknown codec")
	ErrTruncated      = errors.New("persistence: truncated blob")
)
