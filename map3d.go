package skymap

// Frequency band given to newly constructed 3-d maps, in MHz and channels.
const (
	DefaultNuLower float64 = 500.0
	DefaultNuUpper float64 = 900.0
	DefaultNuNum   int     = 128
)

// A 3-d sky map descriptor, adding a frequency axis to the angular geometry
// of a Map2d. Axes are ordered frequency first, then x, then y, wherever
// they are returned together.
type Map3d struct {
	XWidth  float64 `json:"xWidth"`  // angular size along x, in degrees
	YWidth  float64 `json:"yWidth"`  // angular size along y, in degrees
	NuLower float64 `json:"nuLower"` // lower edge of the band, in MHz
	NuUpper float64 `json:"nuUpper"` // upper edge of the band, in MHz
	XNum    int     `json:"xNum"`
	YNum    int     `json:"yNum"`
	NuNum   int     `json:"nuNum"`
	resolution
}

func NewMap3d() *Map3d {
	return &Map3d{
		XWidth:     DefaultXWidth,
		YWidth:     DefaultYWidth,
		NuLower:    DefaultNuLower,
		NuUpper:    DefaultNuUpper,
		XNum:       DefaultXNum,
		YNum:       DefaultYNum,
		NuNum:      DefaultNuNum,
		resolution: resolution{DefaultNside},
	}
}

// Create a new 3-d map descriptor with the given geometry and band, failing
// if any of it would make an unusable map.
func NewMap3dSized(xWidth float64, yWidth float64, xNum int, yNum int, nuLower float64, nuUpper float64, nuNum int, nside int) (*Map3d, error) {
	m := &Map3d{
		XWidth:     xWidth,
		YWidth:     yWidth,
		NuLower:    nuLower,
		NuUpper:    nuUpper,
		XNum:       xNum,
		YNum:       yNum,
		NuNum:      nuNum,
		resolution: resolution{nside},
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map3d) Shape3d() *Map3d {
	return m
}

func (m *Map3d) copyShape(src *Map3d) {
	m.XWidth = src.XWidth
	m.YWidth = src.YWidth
	m.NuUpper = src.NuUpper
	m.NuLower = src.NuLower
	m.XNum = src.XNum
	m.YNum = src.YNum
	m.NuNum = src.NuNum
	m.nside = src.nside
}

// A new 2-d descriptor sharing this map's angular geometry and resolution,
// i.e. a single frequency slice of the map.
func (m *Map3d) Angular() *Map2d {
	return &Map2d{
		XWidth:     m.XWidth,
		YWidth:     m.YWidth,
		XNum:       m.XNum,
		YNum:       m.YNum,
		resolution: m.resolution,
	}
}

func (m *Map3d) XAxis() GridAxis {
	return GridAxis{Width: m.XWidth, Num: m.XNum}
}

func (m *Map3d) YAxis() GridAxis {
	return GridAxis{Width: m.YWidth, Num: m.YNum}
}

func (m *Map3d) NuAxis() FrequencyAxis {
	return FrequencyAxis{Lower: m.NuLower, Upper: m.NuUpper, Num: m.NuNum}
}

// The angular axes keyed by name. The frequency axis is reached through
// NuAxis.
func (m *Map3d) Axes() map[string]GridAxis {
	return map[string]GridAxis{
		AxisX: m.XAxis(),
		AxisY: m.YAxis(),
	}
}

func (m *Map3d) XPixels() ([]float64, error) {
	return m.XAxis().Pixels(AxisX)
}

func (m *Map3d) YPixels() ([]float64, error) {
	return m.YAxis().Pixels(AxisY)
}

// The center frequency of every channel, in MHz.
func (m *Map3d) NuPixels() ([]float64, error) {
	return m.NuAxis().Pixels()
}

// The frequency span in MHz followed by the x and y angular widths in
// radians.
func (m *Map3d) Widths() [3]float64 {
	return [3]float64{m.NuAxis().Span(), Radians(m.XWidth), Radians(m.YWidth)}
}

// The (nu, x, y) pixel counts.
func (m *Map3d) Counts() [3]int {
	return [3]int{m.NuNum, m.XNum, m.YNum}
}

func (m *Map3d) Validate() error {
	if !(m.NuUpper > m.NuLower) {
		return NewInvalidFrequencyRangeError(m.NuLower, m.NuUpper)
	}
	if m.NuNum <= 0 {
		return NewInvalidPixelCountError(AxisNu, m.NuNum)
	}
	return m.Angular().Validate()
}
