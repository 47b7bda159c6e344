package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"

	goico "github.com/sergeymakinen/go-ico"
)

// DecodeConfig reads the container directory from r without decoding any
// payload.
func DecodeConfig(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseDirectory(data)
}

// DecodeAll decodes every image in the container, in directory order.
func DecodeAll(r io.Reader) ([]image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	entries, err := parseDirectory(data)
	if err != nil {
		return nil, err
	}

	images, err := goico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if len(images) != len(entries) {
		return nil, fmt.Errorf("%w: decoded %d of %d entries", ErrFormat, len(images), len(entries))
	}

	return images, nil
}

// parseDirectory reads the header and directory. It is kept alongside go-ico
// because that package does not expose per-entry offsets, sizes or payload
// formats.
func parseDirectory(data []byte) ([]Entry, error) {
	r := bytes.NewReader(data)

	var header iconDir
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrFormat)
	}
	if header.Reserved != 0 || header.Type != typeIcon {
		return nil, fmt.Errorf("%w: not an icon (reserved %d, type %d)", ErrFormat, header.Reserved, header.Type)
	}
	if header.Count == 0 {
		return nil, fmt.Errorf("%w: empty directory", ErrFormat)
	}

	entries := make([]Entry, 0, header.Count)
	for i := 0; i < int(header.Count); i++ {
		var raw iconDirEntry
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("%w: truncated directory entry %d", ErrFormat, i)
		}

		end := uint64(raw.Offset) + uint64(raw.Size)
		if raw.Size == 0 || end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d data out of range", ErrFormat, i)
		}

		format := FormatBMP
		if bytes.HasPrefix(data[raw.Offset:end], pngSignature) {
			format = FormatPNG
		}

		entries = append(entries, Entry{
			Width:      dimensionFromByte(raw.Width),
			Height:     dimensionFromByte(raw.Height),
			ColorCount: raw.ColorCount,
			Planes:     raw.Planes,
			BitCount:   raw.BitCount,
			Size:       raw.Size,
			Offset:     raw.Offset,
			Format:     format,
		})
	}

	return entries, nil
}
