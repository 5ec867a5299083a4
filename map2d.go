package skymap

// Geometry given to newly constructed angular maps, in degrees and pixels.
const (
	DefaultXWidth float64 = 5.0
	DefaultYWidth float64 = 5.0
	DefaultXNum   int     = 128
	DefaultYNum   int     = 128
)

// A 2-d sky map descriptor: the angular size of the map along each axis,
// the number of pixels along each axis, and the resolution of the HEALPix
// map it is associated with. No pixel data is held. Fields may be changed
// freely after construction, except the resolution which is only set through
// SetNside.
type Map2d struct {
	XWidth float64 `json:"xWidth"` // angular size along x, in degrees
	YWidth float64 `json:"yWidth"` // angular size along y, in degrees
	XNum   int     `json:"xNum"`
	YNum   int     `json:"yNum"`
	resolution
}

// Create a new map descriptor with the default 5x5 degree, 128x128 pixel
// geometry and a resolution of 128.
func NewMap2d() *Map2d {
	return &Map2d{
		XWidth:     DefaultXWidth,
		YWidth:     DefaultYWidth,
		XNum:       DefaultXNum,
		YNum:       DefaultYNum,
		resolution: resolution{DefaultNside},
	}
}

// Create a new map descriptor with the given geometry, failing if any of it
// would make an unusable map.
func NewMap2dSized(xWidth float64, yWidth float64, xNum int, yNum int, nside int) (*Map2d, error) {
	m := &Map2d{
		XWidth:     xWidth,
		YWidth:     yWidth,
		XNum:       xNum,
		YNum:       yNum,
		resolution: resolution{nside},
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Shape2d returns the map itself, making Map2d and any type embedding it
// usable as a template for LikeMap2d.
func (m *Map2d) Shape2d() *Map2d {
	return m
}

func (m *Map2d) copyShape(src *Map2d) {
	m.XWidth = src.XWidth
	m.YWidth = src.YWidth
	m.XNum = src.XNum
	m.YNum = src.YNum
	m.nside = src.nside
}

func (m *Map2d) XAxis() GridAxis {
	return GridAxis{Width: m.XWidth, Num: m.XNum}
}

func (m *Map2d) YAxis() GridAxis {
	return GridAxis{Width: m.YWidth, Num: m.YNum}
}

// The angular axes keyed by name.
func (m *Map2d) Axes() map[string]GridAxis {
	return map[string]GridAxis{
		AxisX: m.XAxis(),
		AxisY: m.YAxis(),
	}
}

// The pixel-center positions along x, in degrees from the map edge.
func (m *Map2d) XPixels() ([]float64, error) {
	return m.XAxis().Pixels(AxisX)
}

// The pixel-center positions along y, in degrees from the map edge.
func (m *Map2d) YPixels() ([]float64, error) {
	return m.YAxis().Pixels(AxisY)
}

// The (x, y) angular widths in radians.
func (m *Map2d) Widths() [2]float64 {
	return [2]float64{Radians(m.XWidth), Radians(m.YWidth)}
}

// The (x, y) pixel counts.
func (m *Map2d) Counts() [2]int {
	return [2]int{m.XNum, m.YNum}
}

// Reports the first problem with the map geometry, or nil if pixels can be
// derived along every axis and the resolution is valid.
func (m *Map2d) Validate() error {
	if err := validateGrid(AxisX, m.XAxis()); err != nil {
		return err
	}
	if err := validateGrid(AxisY, m.YAxis()); err != nil {
		return err
	}
	return ValidateNside(m.nside)
}

func validateGrid(axis string, g GridAxis) error {
	if !(g.Width > 0) {
		return NewInvalidWidthError(axis, g.Width)
	}
	if g.Num <= 0 {
		return NewInvalidPixelCountError(axis, g.Num)
	}
	return nil
}
