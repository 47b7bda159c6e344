package favicon

import "errors"

// ErrIO is the class of every failure caused by reading the source or writing
// the destination. Use errors.Is(err, ErrIO) to test for it, or one of the
// more specific errors below to tell causes apart.
var ErrIO = errors.New("i/o error")

var (
	// ErrSource means the source image is missing or unreadable.
	ErrSource error = &ioError{"cannot read source image"}
	// ErrDecode means the source file is not a decodable image.
	ErrDecode error = &ioError{"cannot decode source image"}
	// ErrWrite means the destination could not be written.
	ErrWrite error = &ioError{"cannot write icon"}
)

// ErrConfig is returned when a Config fails validation. No file is touched.
var ErrConfig = errors.New("invalid configuration")

// ErrEncode is returned when the resampled images cannot be packed into a
// container.
var ErrEncode = errors.New("cannot encode icon")

type ioError struct {
	msg string
}

func (e *ioError) Error() string { return e.msg }

// Is reports membership of the ErrIO class.
func (e *ioError) Is(target error) bool { return target == ErrIO }
