package favicon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/favico/internal/ico"
)

// Size is one requested icon resolution in pixels.
type Size struct {
	Width  int
	Height int
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Sizes is an ordered list of icon resolutions. Each entry produces exactly
// one image in the container, in list order.
type Sizes []Size

// DefaultSizes is the standard favicon resolution set.
var DefaultSizes = Sizes{
	{16, 16},
	{32, 32},
	{48, 48},
	{64, 64},
	{128, 128},
	{256, 256},
}

// Clone returns a copy that can be modified without affecting s.
func (s Sizes) Clone() Sizes {
	return append(Sizes(nil), s...)
}

// Strings returns every size as "WxH".
func (s Sizes) Strings() []string {
	out := make([]string, len(s))
	for i, size := range s {
		out[i] = size.String()
	}
	return out
}

// Validate checks that the list is non-empty and every entry is a square of
// at most 256 pixels that appears only once.
func (s Sizes) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: at least one size is required", ErrConfig)
	}

	seen := make(map[Size]bool, len(s))
	for i, size := range s {
		switch {
		case size.Width <= 0 || size.Height <= 0:
			return fmt.Errorf("%w: size %d (%s) must be positive", ErrConfig, i, size)
		case size.Width != size.Height:
			return fmt.Errorf("%w: size %d (%s) must be square", ErrConfig, i, size)
		case size.Width > ico.MaxDimension:
			return fmt.Errorf("%w: size %d (%s) exceeds %dx%d", ErrConfig, i, size, ico.MaxDimension, ico.MaxDimension)
		case seen[size]:
			return fmt.Errorf("%w: size %s listed more than once", ErrConfig, size)
		}
		seen[size] = true
	}

	return nil
}

// ParseSize parses "N" or "WxH".
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	w, h, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		h = w
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return Size{}, fmt.Errorf("%w: invalid size %q", ErrConfig, s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Size{}, fmt.Errorf("%w: invalid size %q", ErrConfig, s)
	}

	return Size{Width: width, Height: height}, nil
}

// ParseSizes parses each element with ParseSize. Blank elements are skipped,
// so an empty input yields an empty list.
func ParseSizes(values []string) (Sizes, error) {
	sizes := make(Sizes, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		size, err := ParseSize(v)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
