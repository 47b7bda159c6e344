// Package ico reads and writes Windows icon (ICO) containers holding one or
// more images at different resolutions.
//
// A container is a 6-byte header, one 16-byte directory entry per image and
// the image payloads concatenated in directory order. All integers are
// little-endian. Payloads are either PNG streams or headerless BMP (DIB)
// bitmaps with a trailing 1-bit AND mask. Bitmap containers and payload
// decoding are handled by github.com/sergeymakinen/go-ico; this package adds
// the all-PNG writer and a directory reader.
package ico

import (
	"errors"
	"fmt"
)

// Format identifies how an entry's payload is stored.
type Format string

const (
	// FormatPNG stores the payload as a complete PNG stream.
	FormatPNG Format = "png"
	// FormatBMP stores payloads as 32-bit DIBs followed by an AND mask. The
	// 256x256 entry is still stored as PNG, as Windows Vista and later expect.
	FormatBMP Format = "bmp"
)

// MaxDimension is the largest width or height a directory entry can describe.
// The directory stores dimensions in one byte with 0 meaning 256.
const MaxDimension = 256

const (
	headerSize   = 6
	dirEntrySize = 16

	typeIcon = 1
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

var (
	// ErrFormat is returned when data is not a well-formed icon container.
	ErrFormat = errors.New("ico: invalid format")
)

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPNG, FormatBMP:
		return Format(name), nil
	case "":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unsupported entry format: %s (supported: png, bmp)", name)
	}
}

// Entry describes one image in the container directory.
type Entry struct {
	Width      int
	Height     int
	ColorCount uint8
	Planes     uint16
	BitCount   uint16
	Size       uint32
	Offset     uint32
	Format     Format
}

// String returns the entry dimensions as "WxH".
func (e Entry) String() string {
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}

// iconDir is the fixed container header.
type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

// iconDirEntry is the on-disk form of Entry.
type iconDirEntry struct {
	Width      uint8
	Height     uint8
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	Size       uint32
	Offset     uint32
}

func dimensionByte(v int) uint8 {
	if v >= MaxDimension {
		return 0
	}
	return uint8(v) // #nosec G115 - bounded by MaxDimension
}

func dimensionFromByte(b uint8) int {
	if b == 0 {
		return MaxDimension
	}
	return int(b)
}
