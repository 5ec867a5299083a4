package skymap

import "reflect"

// Anything that carries a 2-d map geometry. *Map2d implements it, as does a
// pointer to any struct embedding Map2d.
type Shaped2d interface {
	Shape2d() *Map2d
}

// Anything that carries a 3-d map geometry. *Map3d implements it, as does a
// pointer to any struct embedding Map3d.
type Shaped3d interface {
	Shape3d() *Map3d
}

// Create a map of the concrete type built by newMap with the same shape as
// source. Constructor arguments for the new map are captured by newMap; only
// the widths, pixel counts and resolution are then copied over from source,
// leaving every other field as newMap set it. The result shares no state
// with source.
func LikeMap2d[T Shaped2d](source Shaped2d, newMap func() T) (T, error) {
	var empty T
	if isNil(source) || source.Shape2d() == nil {
		return empty, ErrNilSource
	}
	c := newMap()
	if isNil(c) || c.Shape2d() == nil {
		return empty, ErrNilMap
	}
	c.Shape2d().copyShape(source.Shape2d())
	return c, nil
}

// The 3-d counterpart of LikeMap2d, additionally copying the frequency band
// and channel count.
func LikeMap3d[T Shaped3d](source Shaped3d, newMap func() T) (T, error) {
	var empty T
	if isNil(source) || source.Shape3d() == nil {
		return empty, ErrNilSource
	}
	c := newMap()
	if isNil(c) || c.Shape3d() == nil {
		return empty, ErrNilMap
	}
	c.Shape3d().copyShape(source.Shape3d())
	return c, nil
}

// Create a plain Map2d the same shape as source.
func NewMap2dLike(source Shaped2d) (*Map2d, error) {
	return LikeMap2d(source, NewMap2d)
}

// Create a plain Map3d the same shape as source.
func NewMap3dLike(source Shaped3d) (*Map3d, error) {
	return LikeMap3d(source, NewMap3d)
}

// Reports whether shape is nil or a nil pointer. Calling a promoted shape
// method on a nil pointer to an embedding struct would dereference it.
func isNil(shape any) bool {
	if shape == nil {
		return true
	}
	v := reflect.ValueOf(shape)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
