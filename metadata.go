package skymap

import (
	"encoding/json"
	"fmt"
)

// The serializable description of a Map2d, carrying the resolution as a
// plain field. Maps do not implement json.Marshaler themselves so that types
// embedding them keep their own encoding.
type Map2dMeta struct {
	XWidth float64 `json:"xWidth"`
	YWidth float64 `json:"yWidth"`
	XNum   int     `json:"xNum"`
	YNum   int     `json:"yNum"`
	Nside  int     `json:"nside"`
}

type Map3dMeta struct {
	XWidth  float64 `json:"xWidth"`
	YWidth  float64 `json:"yWidth"`
	NuLower float64 `json:"nuLower"`
	NuUpper float64 `json:"nuUpper"`
	XNum    int     `json:"xNum"`
	YNum    int     `json:"yNum"`
	NuNum   int     `json:"nuNum"`
	Nside   int     `json:"nside"`
}

func (m *Map2d) Meta() Map2dMeta {
	return Map2dMeta{
		XWidth: m.XWidth,
		YWidth: m.YWidth,
		XNum:   m.XNum,
		YNum:   m.YNum,
		Nside:  m.nside,
	}
}

// Build the described map, validating it the same way NewMap2dSized does.
func (d Map2dMeta) Map() (*Map2d, error) {
	return NewMap2dSized(d.XWidth, d.YWidth, d.XNum, d.YNum, d.Nside)
}

func (m *Map3d) Meta() Map3dMeta {
	return Map3dMeta{
		XWidth:  m.XWidth,
		YWidth:  m.YWidth,
		NuLower: m.NuLower,
		NuUpper: m.NuUpper,
		XNum:    m.XNum,
		YNum:    m.YNum,
		NuNum:   m.NuNum,
		Nside:   m.nside,
	}
}

func (d Map3dMeta) Map() (*Map3d, error) {
	return NewMap3dSized(d.XWidth, d.YWidth, d.XNum, d.YNum, d.NuLower, d.NuUpper, d.NuNum, d.Nside)
}

func MarshalMap2d(m *Map2d) ([]byte, error) {
	return json.Marshal(m.Meta())
}

// Decode a map description, failing with the usual validation errors if the
// described geometry is unusable.
func UnmarshalMap2d(data []byte) (*Map2d, error) {
	var meta Map2dMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("skymap: decoding 2-d map: %w", err)
	}
	return meta.Map()
}

func MarshalMap3d(m *Map3d) ([]byte, error) {
	return json.Marshal(m.Meta())
}

func UnmarshalMap3d(data []byte) (*Map3d, error) {
	var meta Map3dMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("skymap: decoding 3-d map: %w", err)
	}
	return meta.Map()
}
