// Package favicon turns a single source image into a multi-resolution icon
// file.
package favicon

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/favico/internal/ico"
	"github.com/jmylchreest/favico/internal/image"
)

// Result describes a completed export.
type Result struct {
	// Path is the file that was written.
	Path string
	// Sizes are the embedded resolutions, in directory order.
	Sizes Sizes
	// Bytes is the size of the written container.
	Bytes int
}

// Exporter loads, resamples and packs images into icon files.
type Exporter struct {
	loader image.Loader
	logger hclog.Logger
	notice io.Writer
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLoader replaces the source image loader.
func WithLoader(l image.Loader) Option {
	return func(e *Exporter) { e.loader = l }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l hclog.Logger) Option {
	return func(e *Exporter) { e.logger = l }
}

// WithNotice sets where the success notice is written. Passing nil disables it.
func WithNotice(w io.Writer) Option {
	return func(e *Exporter) { e.notice = w }
}

// New creates an Exporter that reads files from disk, logs nothing and prints
// the success notice to stdout.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		loader: image.NewFileLoader(),
		logger: hclog.NewNullLogger(),
		notice: os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes cfg.Source as an icon container at cfg.Destination using a
// default Exporter.
func Export(cfg Config) error {
	_, err := New().Export(cfg)
	return err
}

// Export validates cfg, decodes the source, resamples it to every size in
// order and writes the container, replacing any existing destination. The
// destination is only replaced once the whole container has been encoded, so
// a failed export leaves it untouched. The success notice is printed only
// after the file is in place.
func (e *Exporter) Export(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := e.logger.With("source", cfg.Source, "destination", cfg.Destination)

	src, err := e.loader.Load(cfg.Source)
	if err != nil {
		if errors.Is(err, image.ErrDecode) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	bounds := src.Bounds()
	log.Debug("loaded source image", "width", bounds.Dx(), "height", bounds.Dy())

	images := make([]stdimage.Image, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		resized, err := image.Resample(src, size.Width, size.Height, cfg.Resample)
		if err != nil {
			return nil, fmt.Errorf("%w: resample to %s: %w", ErrEncode, size, err)
		}
		log.Trace("resampled", "size", size.String(), "filter", cfg.Resample.Filter, "fit", cfg.Resample.Fit)
		images = append(images, resized)
	}

	var buf bytes.Buffer
	if err := ico.Encode(&buf, images, &ico.Options{Format: cfg.Format}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	if err := writeFileAtomic(cfg.Destination, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	log.Debug("wrote icon", "entries", len(images), "size", humanize.Bytes(uint64(buf.Len())))

	if e.notice != nil {
		fmt.Fprintf(e.notice, "%s created successfully.\n", filepath.Base(cfg.Destination))
	}

	return &Result{
		Path:  cfg.Destination,
		Sizes: cfg.Sizes.Clone(),
		Bytes: buf.Len(),
	}, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place. A symlinked destination is followed so the link survives, and
// an existing file keeps its permissions; new files are created 0644.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode().Perm()
		}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr == nil {
		writeErr = os.Chmod(tmpPath, mode) // #nosec G302 - New icons are meant to be world-readable
	}
	if writeErr == nil {
		writeErr = os.Rename(tmpPath, path)
	}
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return writeErr
	}

	return nil
}
