package skymap

import (
	"errors"
	"fmt"

	"github.com/owlpinetech/healpix"
)

var (
	ErrNilSource = errors.New("cannot create a map like a nil source map")
	ErrNilMap    = errors.New("map constructor returned a nil map")
)

// Returned when a resolution value is not a positive power of two, or is too
// fine for HEALPix to count its pixels.
type InvalidResolutionError struct {
	Nside int
}

func NewInvalidResolutionError(nside int) *InvalidResolutionError {
	return &InvalidResolutionError{Nside: nside}
}

func (r InvalidResolutionError) Error() string {
	return fmt.Sprintf("nside %d is not a valid resolution, must be a positive power of two no larger than 2^%d", r.Nside, int(healpix.MaxOrder()))
}

// Returned when an axis is asked to derive pixels, or is validated, with a
// bin count that is not positive.
type InvalidPixelCountError struct {
	Axis string
	Num  int
}

func NewInvalidPixelCountError(axis string, num int) *InvalidPixelCountError {
	return &InvalidPixelCountError{
		Axis: axis,
		Num:  num,
	}
}

func (p InvalidPixelCountError) Error() string {
	return fmt.Sprintf("axis '%s' has %d pixels, must have at least one", p.Axis, p.Num)
}

type InvalidWidthError struct {
	Axis  string
	Width float64
}

func NewInvalidWidthError(axis string, width float64) *InvalidWidthError {
	return &InvalidWidthError{
		Axis:  axis,
		Width: width,
	}
}

func (w InvalidWidthError) Error() string {
	return fmt.Sprintf("axis '%s' has width %v, must be positive", w.Axis, w.Width)
}

type InvalidFrequencyRangeError struct {
	Lower float64
	Upper float64
}

func NewInvalidFrequencyRangeError(lower float64, upper float64) *InvalidFrequencyRangeError {
	return &InvalidFrequencyRangeError{
		Lower: lower,
		Upper: upper,
	}
}

func (f InvalidFrequencyRangeError) Error() string {
	return fmt.Sprintf("frequency range [%v, %v) is empty, upper bound must exceed lower bound", f.Lower, f.Upper)
}
