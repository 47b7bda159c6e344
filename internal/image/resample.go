package image

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Filter names a resampling kernel.
type Filter string

// Available resampling filters.
const (
	FilterLanczos        Filter = "lanczos"
	FilterCatmullRom     Filter = "catmullrom"
	FilterBiLinear       Filter = "bilinear"
	FilterApproxBiLinear Filter = "approxbilinear"
	FilterNearest        Filter = "nearest"
)

// Fit controls how a source is mapped onto a target size whose aspect ratio
// differs from its own.
type Fit string

const (
	// FitStretch scales the source to exactly the target size.
	FitStretch Fit = "stretch"
	// FitContain preserves the source aspect ratio and centres it on a
	// transparent canvas of the target size.
	FitContain Fit = "contain"
)

// ResampleOptions configure Resample. The zero value uses Lanczos with
// FitStretch.
type ResampleOptions struct {
	Filter Filter
	Fit    Fit
}

// Filters returns the supported filter names.
func Filters() []Filter {
	return []Filter{FilterLanczos, FilterCatmullRom, FilterBiLinear, FilterApproxBiLinear, FilterNearest}
}

// Validate checks that the filter and fit are known.
func (o ResampleOptions) Validate() error {
	switch o.Filter {
	case "", FilterLanczos, FilterCatmullRom, FilterBiLinear, FilterApproxBiLinear, FilterNearest:
	default:
		return fmt.Errorf("unsupported filter: %s (supported: %v)", o.Filter, Filters())
	}
	switch o.Fit {
	case "", FitStretch, FitContain:
	default:
		return fmt.Errorf("unsupported fit: %s (supported: stretch, contain)", o.Fit)
	}
	return nil
}

// Resample returns a width x height copy of src. The result is always
// non-premultiplied RGBA anchored at the origin and keeps the source alpha.
func Resample(src image.Image, width, height int, opts ResampleOptions) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sb := src.Bounds()
	if sb.Empty() {
		return nil, fmt.Errorf("source image is empty")
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	dr := dst.Bounds()
	if opts.Fit == FitContain {
		dr = containRect(sb.Dx(), sb.Dy(), width, height)
	}

	scaleInto(dst, dr, src, opts.Filter)
	return dst, nil
}

// containRect returns the largest rectangle with the source aspect ratio that
// fits in width x height, centred.
func containRect(srcW, srcH, width, height int) image.Rectangle {
	scale := math.Min(float64(width)/float64(srcW), float64(height)/float64(srcH))
	w := max(1, int(math.Round(float64(srcW)*scale)))
	h := max(1, int(math.Round(float64(srcH)*scale)))
	offX := (width - w) / 2
	offY := (height - h) / 2
	return image.Rect(offX, offY, offX+w, offY+h)
}

func scaleInto(dst *image.NRGBA, dr image.Rectangle, src image.Image, filter Filter) {
	var scaler draw.Scaler
	switch filter {
	case FilterCatmullRom:
		scaler = draw.CatmullRom
	case FilterBiLinear:
		scaler = draw.BiLinear
	case FilterApproxBiLinear:
		scaler = draw.ApproxBiLinear
	case FilterNearest:
		scaler = draw.NearestNeighbor
	default:
		resized := imaging.Resize(src, dr.Dx(), dr.Dy(), imaging.Lanczos)
		draw.Draw(dst, dr, resized, image.Point{}, draw.Src)
		return
	}
	scaler.Scale(dst, dr, src, src.Bounds(), draw.Src, nil)
}
