package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"testing"

	goico "github.com/sergeymakinen/go-ico"
)

// newSquare returns a size x size image with a transparent top-left quadrant.
func newSquare(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255}
			if x < size/2 && y < size/2 {
				c.A = 0
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodeSizes(t *testing.T, format Format, sizes ...int) []byte {
	t.Helper()
	images := make([]image.Image, len(sizes))
	for i, s := range sizes {
		images[i] = newSquare(s)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, images, &Options{Format: format}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestEncodeDirectory(t *testing.T) {
	sizes := []int{16, 32, 48, 64, 128, 256}

	for _, format := range []Format{FormatPNG, FormatBMP} {
		t.Run(string(format), func(t *testing.T) {
			data := encodeSizes(t, format, sizes...)

			if got := binary.LittleEndian.Uint16(data[2:4]); got != typeIcon {
				t.Errorf("Expected type %d, got %d", typeIcon, got)
			}

			entries, err := DecodeConfig(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("DecodeConfig() error = %v", err)
			}
			if len(entries) != len(sizes) {
				t.Fatalf("Expected %d entries, got %d", len(sizes), len(entries))
			}

			offset := uint32(headerSize + dirEntrySize*len(sizes))
			for i, e := range entries {
				if e.Width != sizes[i] || e.Height != sizes[i] {
					t.Errorf("Entry %d: expected %dx%d, got %s", i, sizes[i], sizes[i], e)
				}
				want := format
				if sizes[i] == MaxDimension {
					// The largest entry is always PNG compressed.
					want = FormatPNG
				}
				if e.Format != want {
					t.Errorf("Entry %d: expected format %s, got %s", i, want, e.Format)
				}
				if format == FormatPNG && (e.BitCount != 32 || e.Planes != 1) {
					t.Errorf("Entry %d: expected 32bpp/1 plane, got %d/%d", i, e.BitCount, e.Planes)
				}
				if e.Offset != offset {
					t.Errorf("Entry %d: expected offset %d, got %d", i, offset, e.Offset)
				}
				offset += e.Size
			}
			if int(offset) != len(data) {
				t.Errorf("Expected payloads to end at %d, container is %d bytes", offset, len(data))
			}
		})
	}
}

func TestEncodeLargestEntryUsesZeroByte(t *testing.T) {
	data := encodeSizes(t, FormatPNG, 256)
	// Width and height bytes of the first directory entry.
	if data[headerSize] != 0 || data[headerSize+1] != 0 {
		t.Errorf("Expected 256 to be stored as 0, got %d/%d", data[headerSize], data[headerSize+1])
	}
}

func TestDecodeAllRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatPNG, FormatBMP} {
		t.Run(string(format), func(t *testing.T) {
			data := encodeSizes(t, format, 16, 48)

			images, err := DecodeAll(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("DecodeAll() error = %v", err)
			}
			if len(images) != 2 {
				t.Fatalf("Expected 2 images, got %d", len(images))
			}

			for i, size := range []int{16, 48} {
				want := newSquare(size)
				got := images[i]
				if got.Bounds().Dx() != size || got.Bounds().Dy() != size {
					t.Fatalf("Image %d: expected %dx%d, got %v", i, size, size, got.Bounds())
				}
				for _, p := range []image.Point{{0, 0}, {size - 1, size - 1}, {size / 2, 1}} {
					wr, wg, wb, wa := want.At(p.X, p.Y).RGBA()
					gr, gg, gb, ga := got.At(p.X, p.Y).RGBA()
					if wa == 0 {
						if ga != 0 {
							t.Errorf("Image %d at %v: expected transparent, got alpha %d", i, p, ga)
						}
						continue
					}
					if wr != gr || wg != gg || wb != gb || wa != ga {
						t.Errorf("Image %d at %v: expected %v, got %v", i, p, want.At(p.X, p.Y), got.At(p.X, p.Y))
					}
				}
			}
		})
	}
}

func TestEncodeBitmapEntries(t *testing.T) {
	data := encodeSizes(t, FormatBMP, 16, 32)

	entries, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	for i, e := range entries {
		if e.Format != FormatBMP {
			t.Errorf("Entry %d: expected bmp, got %s", i, e.Format)
		}
		if e.Width != []int{16, 32}[i] {
			t.Errorf("Entry %d: expected width %d, got %d", i, []int{16, 32}[i], e.Width)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		images []image.Image
		opts   *Options
	}{
		{name: "no images", images: nil},
		{name: "empty image", images: []image.Image{image.NewNRGBA(image.Rect(0, 0, 0, 0))}},
		{name: "too large", images: []image.Image{image.NewNRGBA(image.Rect(0, 0, 257, 257))}},
		{name: "unknown format", images: []image.Image{newSquare(16)}, opts: &Options{Format: "gif"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, tt.images, tt.opts); err == nil {
				t.Error("Expected error, got nil")
			}
			if buf.Len() != 0 {
				t.Errorf("Expected nothing written on error, got %d bytes", buf.Len())
			}
		})
	}
}

func TestDecodeConfigInvalid(t *testing.T) {
	valid := encodeSizes(t, FormatPNG, 16)

	truncated := make([]byte, len(valid)-10)
	copy(truncated, valid)

	cursor := make([]byte, len(valid))
	copy(cursor, valid)
	cursor[2] = 2

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "short header", data: []byte{0, 0, 1}},
		{name: "cursor type", data: cursor},
		{name: "zero count", data: []byte{0, 0, 1, 0, 0, 0}},
		{name: "truncated payload", data: truncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrFormat) {
				t.Errorf("Expected ErrFormat, got %v", err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "png", want: FormatPNG},
		{input: "bmp", want: FormatBMP},
		{input: "", want: FormatPNG},
		{input: "jpeg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestThirdPartyDecoder checks the container against an independent reader.
func TestThirdPartyDecoder(t *testing.T) {
	data := encodeSizes(t, FormatPNG, 16, 32, 256)

	img, err := goico.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("go-ico Decode() error = %v", err)
	}

	b := img.Bounds()
	if b.Dx() != b.Dy() {
		t.Errorf("Expected a square image, got %v", b)
	}
	switch b.Dx() {
	case 16, 32, 256:
	default:
		t.Errorf("Expected one of the encoded sizes, got %v", b)
	}
}
