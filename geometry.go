package taffy

// AbsoluteAxis names one of the two fixed layout directions of a grid.
// Unlike flow-relative axes (main/cross), absolute axes do not depend on
// the container's direction.
type AbsoluteAxis uint8

const (
	// Horizontal is the row axis (x, columns run along it).
	Horizontal AbsoluteAxis = iota
	// Vertical is the column axis (y, rows run along it).
	Vertical
)

// Other returns the perpendicular axis.
func (a AbsoluteAxis) Other() AbsoluteAxis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns the string representation of the axis.
func (a AbsoluteAxis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Size holds a width and a height of any unit type.
// Layout computations use Size[float32] for concrete sizes,
// Size[OptionFloat] for possibly-indefinite sizes, and Size[Dimension]
// or Size[LengthPercentage] for style values.
type Size[T any] struct {
	Width  T
	Height T
}

// Axis returns the component of the size along the given absolute axis.
func (s Size[T]) Axis(axis AbsoluteAxis) T {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// SetAxis replaces the component of the size along the given absolute axis.
func (s *Size[T]) SetAxis(axis AbsoluteAxis, value T) {
	if axis == Horizontal {
		s.Width = value
	} else {
		s.Height = value
	}
}

// OptionFloat is an optional float32: either a concrete value or none.
// It is the unit of "definite vs indefinite" sizes throughout the layout
// computations. The zero value is none.
type OptionFloat struct {
	value float32
	valid bool
}

// Some returns an OptionFloat holding v.
func Some(v float32) OptionFloat {
	return OptionFloat{value: v, valid: true}
}

// None returns the empty OptionFloat.
func None() OptionFloat {
	return OptionFloat{}
}

// IsSome reports whether the option holds a value.
func (o OptionFloat) IsSome() bool { return o.valid }

// Get returns the held value and whether one is present.
func (o OptionFloat) Get() (float32, bool) { return o.value, o.valid }

// ValueOr returns the held value, or def if none is present.
func (o OptionFloat) ValueOr(def float32) float32 {
	if o.valid {
		return o.value
	}
	return def
}

// OrElse returns o if it holds a value, otherwise other.
func (o OptionFloat) OrElse(other OptionFloat) OptionFloat {
	if o.valid {
		return o
	}
	return other
}

// SomeSize is a convenience constructor for a definite optional size.
func SomeSize(width, height float32) Size[OptionFloat] {
	return Size[OptionFloat]{Width: Some(width), Height: Some(height)}
}

// NoneSize returns a fully indefinite optional size.
func NoneSize() Size[OptionFloat] {
	return Size[OptionFloat]{}
}
