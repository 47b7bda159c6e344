package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	goico "github.com/sergeymakinen/go-ico"
)

// Options control how Encode stores entries.
type Options struct {
	// Format selects the payload encoding. Defaults to PNG.
	Format Format
}

// Encode writes images as a single icon container to w. The directory lists
// the images in the order given. Every image must be non-empty and no larger
// than MaxDimension on either side. Nothing is written on error.
func Encode(w io.Writer, images []image.Image, opts *Options) error {
	if len(images) == 0 {
		return fmt.Errorf("ico: no images to encode")
	}
	if len(images) > math.MaxUint16 {
		return fmt.Errorf("ico: too many images: %d", len(images))
	}
	for i, img := range images {
		b := img.Bounds()
		if b.Empty() {
			return fmt.Errorf("ico: image %d is empty", i)
		}
		if b.Dx() > MaxDimension || b.Dy() > MaxDimension {
			return fmt.Errorf("ico: image %d is %dx%d, exceeds %dx%d", i, b.Dx(), b.Dy(), MaxDimension, MaxDimension)
		}
	}

	format := FormatPNG
	if opts != nil && opts.Format != "" {
		format = opts.Format
	}

	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		if err := encodePNG(&buf, images); err != nil {
			return err
		}
	case FormatBMP:
		if err := goico.EncodeAll(&buf, images); err != nil {
			return fmt.Errorf("ico: failed to encode bitmaps: %w", err)
		}
	default:
		return fmt.Errorf("ico: unsupported entry format: %s", format)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// encodePNG writes a container in which every payload is a PNG stream.
func encodePNG(buf *bytes.Buffer, images []image.Image) error {
	payloads := make([][]byte, len(images))
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	for i, img := range images {
		var p bytes.Buffer
		if err := enc.Encode(&p, img); err != nil {
			return fmt.Errorf("ico: failed to encode image %d: %w", i, err)
		}
		payloads[i] = p.Bytes()
	}

	header := iconDir{Type: typeIcon, Count: uint16(len(images))} // #nosec G115 - checked by Encode
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return err
	}

	offset := headerSize + dirEntrySize*len(images)
	for i, img := range images {
		b := img.Bounds()
		entry := iconDirEntry{
			Width:    dimensionByte(b.Dx()),
			Height:   dimensionByte(b.Dy()),
			Planes:   1,
			BitCount: 32,
			Size:     uint32(len(payloads[i])), // #nosec G115
			Offset:   uint32(offset),           // #nosec G115
		}
		if err := binary.Write(buf, binary.LittleEndian, entry); err != nil {
			return err
		}
		offset += len(payloads[i])
	}

	for _, p := range payloads {
		buf.Write(p)
	}
	return nil
}
