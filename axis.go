package skymap

import "gonum.org/v1/gonum/floats"

// Axis names used in descriptor errors and axis maps.
const (
	AxisX  string = "x"
	AxisY  string = "y"
	AxisNu string = "nu"
)

// A uniform partition of the half-open interval [0, Width) into Num equal
// bins, each represented by the coordinate at its center.
type GridAxis struct {
	Width float64 `json:"width"`
	Num   int     `json:"num"`
}

// The width of a single bin along the axis.
func (g GridAxis) Step() float64 {
	return g.Width / float64(g.Num)
}

// The bin-center coordinates of the axis, in the same units as the width.
// A fresh slice is computed on every call. The axis name is only used to
// describe the failure when the axis has no bins.
func (g GridAxis) Pixels(axis string) ([]float64, error) {
	if g.Num <= 0 {
		return nil, NewInvalidPixelCountError(axis, g.Num)
	}
	return binCenters(g.Num, 0, g.Step()), nil
}

// A uniform partition of the half-open frequency band [Lower, Upper) into
// Num equal channels, each represented by its center frequency.
type FrequencyAxis struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Num   int     `json:"num"`
}

// The extent of the band, upper minus lower.
func (f FrequencyAxis) Span() float64 {
	return f.Upper - f.Lower
}

func (f FrequencyAxis) Step() float64 {
	return f.Span() / float64(f.Num)
}

// The center frequency of every channel, lowest first.
func (f FrequencyAxis) Pixels() ([]float64, error) {
	if f.Num <= 0 {
		return nil, NewInvalidPixelCountError(AxisNu, f.Num)
	}
	return binCenters(f.Num, f.Lower, f.Step()), nil
}

// Computes offset + (i + 0.5) * step for i in [0, num).
func binCenters(num int, offset float64, step float64) []float64 {
	centers := make([]float64, num)
	for i := range centers {
		centers[i] = float64(i) + 0.5
	}
	floats.Scale(step, centers)
	if offset != 0 {
		floats.AddConst(offset, centers)
	}
	return centers
}
