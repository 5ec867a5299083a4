package skymap

import (
	"math/bits"

	"github.com/owlpinetech/healpix"
)

// The resolution given to newly constructed maps.
const DefaultNside int = 128

// Checks that nside is a positive power of two, i.e. that log2(nside) is a
// non-negative integer, and that its order does not exceed the deepest order
// HEALPix can count pixels for without overflowing.
func ValidateNside(nside int) error {
	if nside <= 0 || nside&(nside-1) != 0 {
		return NewInvalidResolutionError(nside)
	}
	if bits.Len(uint(nside))-1 > int(healpix.MaxOrder()) {
		return NewInvalidResolutionError(nside)
	}
	return nil
}

// The HEALPix order of a resolution, the k for which nside = 2^k.
func NsideOrder(nside int) (healpix.HealpixOrder, error) {
	if err := ValidateNside(nside); err != nil {
		return 0, err
	}
	return healpix.HealpixOrder(bits.Len(uint(nside)) - 1), nil
}

// Both map types carry the resolution the same way, so the validated field
// lives here and is embedded by value.
type resolution struct {
	nside int
}

// The resolution of the HEALPix map associated with this map.
func (r resolution) Nside() int {
	return r.nside
}

// Sets the HEALPix resolution. Values that are not a positive power of two
// are rejected and the stored resolution is left unchanged.
func (r *resolution) SetNside(nside int) error {
	if err := ValidateNside(nside); err != nil {
		return err
	}
	r.nside = nside
	return nil
}

// The HEALPix order matching the stored resolution. Fails only for a map
// whose resolution was never set, such as a zero-value literal.
func (r resolution) HealpixOrder() (healpix.HealpixOrder, error) {
	return NsideOrder(r.nside)
}

// The number of equal-area pixels covering the sphere at this resolution.
func (r resolution) HealpixPixels() (int, error) {
	order, err := r.HealpixOrder()
	if err != nil {
		return 0, err
	}
	return order.Pixels(), nil
}
